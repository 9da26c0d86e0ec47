package models

// Itinerary item kinds.
const (
	ItemHotel      = "hotel"
	ItemActivity   = "activity"
	ItemRestaurant = "restaurant"
	ItemTransport  = "transport"
	ItemTip        = "tip"
)

// PlanRequest is the payload for POST /api/plan. Dates are calendar
// dates in YYYY-MM-DD form; both are optional.
type PlanRequest struct {
	Destination string `json:"destination"`
	StartDate   string `json:"start_date,omitempty"`
	EndDate     string `json:"end_date,omitempty"`
	Travelers   int    `json:"travelers"`
	Preferences string `json:"preferences,omitempty"`
	Budget      string `json:"budget,omitempty"`
	Style       string `json:"style,omitempty"`
}

// ItineraryItem is one scheduled element of a plan. Restaurants carry
// no price and no currency; everything else is priced in USD.
type ItineraryItem struct {
	Day         int      `json:"day" bson:"day"`
	Type        string   `json:"type" bson:"type"`
	Title       string   `json:"title" bson:"title"`
	Description string   `json:"description,omitempty" bson:"description,omitempty"`
	Location    string   `json:"location,omitempty" bson:"location,omitempty"`
	StartTime   string   `json:"start_time,omitempty" bson:"start_time,omitempty"`
	EndTime     string   `json:"end_time,omitempty" bson:"end_time,omitempty"`
	Price       *float64 `json:"price,omitempty" bson:"price,omitempty"`
	Currency    string   `json:"currency,omitempty" bson:"currency,omitempty"`
	Link        string   `json:"link,omitempty" bson:"link,omitempty"`
	Available   bool     `json:"available" bson:"available"`
	Vendor      string   `json:"vendor,omitempty" bson:"vendor,omitempty"`
}

// Source is an attribution entry appended to every plan.
type Source struct {
	Name string `json:"name" bson:"name"`
	URL  string `json:"url" bson:"url"`
}

// PlanResponse is the generated itinerary. Items keep generation order:
// hotels first, then one activity/restaurant pair per day.
type PlanResponse struct {
	Destination string          `json:"destination" bson:"destination"`
	StartDate   string          `json:"start_date" bson:"start_date"`
	EndDate     string          `json:"end_date" bson:"end_date"`
	Nights      int             `json:"nights" bson:"nights"`
	Travelers   int             `json:"travelers" bson:"travelers"`
	Summary     string          `json:"summary" bson:"summary"`
	Items       []ItineraryItem `json:"items" bson:"items"`
	Sources     []Source        `json:"sources" bson:"sources"`
}
