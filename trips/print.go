package trips

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"time"

	"trippy/models"

	"github.com/julienschmidt/httprouter"
	"github.com/phpdave11/gofpdf"
	"github.com/skip2/go-qrcode"
)

// GET /api/trips/:id/print
func (h *Handler) PrintTrip(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	if h.Store == nil {
		http.Error(w, "Database not available", http.StatusServiceUnavailable)
		return
	}

	tripID := ps.ByName("id")

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	trip, err := h.Store.Get(ctx, tripID)
	if err == ErrInvalidID {
		http.Error(w, "Invalid trip ID", http.StatusBadRequest)
		return
	}
	if err == ErrNotFound {
		http.Error(w, "Trip not found", http.StatusNotFound)
		return
	}
	if err != nil {
		http.Error(w, "Error fetching trip", http.StatusInternalServerError)
		return
	}

	// QR content with timestamp so scans can be aged
	qrData := fmt.Sprintf("trip=%s&ts=%d", tripID, time.Now().Unix())
	qrPNG, err := qrcode.Encode(qrData, qrcode.Medium, 128)
	if err != nil {
		http.Error(w, "Failed to generate QR code", http.StatusInternalServerError)
		return
	}

	var buf bytes.Buffer
	if err := buildTripPDF(trip, qrPNG).Output(&buf); err != nil {
		http.Error(w, "Failed to generate PDF", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", "attachment; filename=trip-"+tripID+".pdf")
	w.Write(buf.Bytes())
}

func buildTripPDF(trip models.SavedTrip, qrPNG []byte) *gofpdf.Fpdf {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(20, 20, 20)
	pdf.AddPage()

	title := trip.Name
	if title == "" {
		title = trip.Plan.Destination + " Trip"
	}
	pdf.SetFont("Arial", "B", 18)
	pdf.CellFormat(0, 12, title, "", 1, "L", false, 0, "")

	pdf.SetFont("Arial", "", 11)
	pdf.MultiCell(0, 7, fmt.Sprintf(
		"%s\n%s to %s - %d night(s), %d traveler(s)",
		trip.Plan.Summary,
		trip.Plan.StartDate,
		trip.Plan.EndDate,
		trip.Plan.Nights,
		trip.Plan.Travelers,
	), "", "L", false)
	pdf.Ln(4)

	// items arrive in generation order, so a day change means a new block
	day := 0
	for _, item := range trip.Plan.Items {
		if item.Day != day {
			day = item.Day
			pdf.Ln(2)
			pdf.SetFont("Arial", "B", 12)
			pdf.CellFormat(0, 8, fmt.Sprintf("Day %d", day), "B", 1, "L", false, 0, "")
		}

		pdf.SetFont("Arial", "", 10)
		line := fmt.Sprintf("[%s] %s", item.Type, item.Title)
		if item.StartTime != "" {
			line += " at " + item.StartTime
		}
		if item.Price != nil {
			line += fmt.Sprintf(" - %.2f %s", *item.Price, item.Currency)
		}
		if item.Vendor != "" {
			line += " via " + item.Vendor
		}
		pdf.CellFormat(0, 6, line, "", 1, "L", false, 0, "")
	}

	imgOpts := gofpdf.ImageOptions{ImageType: "PNG"}
	pdf.RegisterImageOptionsReader("qr", imgOpts, bytes.NewReader(qrPNG))
	pdf.ImageOptions("qr", 160, 20, 30, 30, false, imgOpts, 0, "")

	pdf.SetY(-30)
	pdf.SetFont("Arial", "I", 9)
	pdf.CellFormat(0, 10, "Prices are estimates. Check vendor links for live availability.", "T", 0, "C", false, 0, "")

	return pdf
}
