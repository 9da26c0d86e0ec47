package planner

import (
	"fmt"
	"strings"
	"time"

	"trippy/models"
)

// Vendor is one entry of the rotation table: a display name plus the
// base URL mock booking links are built on.
type Vendor struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// Vendors is the fixed rotation table. Items are assigned a vendor by
// cycling this list (index mod len), so generated plans are reproducible
// with no randomness and no inventory lookups.
var Vendors = []Vendor{
	{Name: "Booking.com", URL: "https://www.booking.com"},
	{Name: "Airbnb", URL: "https://www.airbnb.com"},
	{Name: "Hotels.com", URL: "https://www.hotels.com"},
	{Name: "Expedia", URL: "https://www.expedia.com"},
	{Name: "Viator", URL: "https://www.viator.com"},
	{Name: "GetYourGuide", URL: "https://www.getyourguide.com"},
}

const opentableURL = "https://www.opentable.com"

const dateLayout = "2006-01-02"

func vendorFor(i int) Vendor {
	return Vendors[i%len(Vendors)]
}

// searchLink builds a vendor search URL. Only spaces are rewritten to
// '+'; nothing else gets escaped.
func searchLink(base, q string) string {
	return base + "/search?q=" + strings.ReplaceAll(q, " ", "+")
}

// parseDate reads s as YYYY-MM-DD; anything else counts as absent.
func parseDate(s string) (time.Time, bool) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// Generate builds the mock itinerary for req. It never fails: missing or
// unusable dates fall back to defaults (start = today+14d, end = start+4d)
// and an end date that does not land after the start is discarded the same
// way, so nights is always at least 1.
func Generate(req models.PlanRequest) models.PlanResponse {
	now := time.Now().UTC()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	start, ok := parseDate(req.StartDate)
	if !ok {
		start = today.AddDate(0, 0, 14)
	}
	end, ok := parseDate(req.EndDate)
	if !ok {
		end = start.AddDate(0, 0, 4)
	}
	nights := int(end.Sub(start) / (24 * time.Hour))
	if nights <= 0 {
		end = start.AddDate(0, 0, 4)
		nights = int(end.Sub(start) / (24 * time.Hour))
	}

	travelers := req.Travelers
	if travelers < 1 {
		travelers = 1
	}

	items := make([]models.ItineraryItem, 0, 2+2*nights)

	// Hotels, both bookable from day one.
	for i := 0; i < 2; i++ {
		vendor := vendorFor(i)
		title := fmt.Sprintf("%s Boutique Hotel %d", req.Destination, i+1)
		price := 145 + float64(i)*35
		items = append(items, models.ItineraryItem{
			Day:         1,
			Type:        models.ItemHotel,
			Title:       title,
			Description: fmt.Sprintf("Centrally located stay for %d nights.", nights),
			Location:    req.Destination,
			Price:       &price,
			Currency:    "USD",
			Link:        searchLink(vendor.URL, title),
			Available:   true,
			Vendor:      vendor.Name,
		})
	}

	// One activity and one restaurant per day.
	for d := 1; d <= nights; d++ {
		vendor := vendorFor(d + 2)
		price := 39.0
		items = append(items, models.ItineraryItem{
			Day:         d,
			Type:        models.ItemActivity,
			Title:       fmt.Sprintf("Guided walking tour - Day %d", d),
			Description: "Highly rated experience with instant confirmation.",
			Location:    req.Destination,
			StartTime:   "10:00",
			EndTime:     "12:00",
			Price:       &price,
			Currency:    "USD",
			Link:        searchLink(vendor.URL, req.Destination+" walking tour"),
			Available:   true,
			Vendor:      vendor.Name,
		})
		items = append(items, models.ItineraryItem{
			Day:         d,
			Type:        models.ItemRestaurant,
			Title:       fmt.Sprintf("Cozy local restaurant - Day %d", d),
			Description: "Loved by locals. Reserve a table online.",
			Location:    req.Destination,
			StartTime:   "19:30",
			Link:        searchLink(opentableURL, req.Destination+" dinner"),
			Available:   true,
			Vendor:      "OpenTable",
		})
	}

	summary := fmt.Sprintf("Personalized %d-night plan for %s. Optimized for %d traveler(s)", nights, req.Destination, travelers)
	if req.Style != "" {
		summary += fmt.Sprintf(" with a %s vibe", req.Style)
	}
	if req.Budget != "" {
		summary += fmt.Sprintf(" and %s budget.", req.Budget)
	} else {
		summary += "."
	}

	return models.PlanResponse{
		Destination: req.Destination,
		StartDate:   start.Format(dateLayout),
		EndDate:     end.Format(dateLayout),
		Nights:      nights,
		Travelers:   travelers,
		Summary:     summary,
		Items:       items,
		Sources: []models.Source{
			{Name: "Tripadvisor", URL: "https://www.tripadvisor.com"},
			{Name: "Viator", URL: "https://www.viator.com"},
		},
	}
}
