package planner

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"trippy/models"
)

func TestPlanTripRejectsEmptyDestination(t *testing.T) {
	for _, body := range []string{`{}`, `{"destination":""}`, `{"destination":"","travelers":2}`} {
		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodPost, "/api/plan", strings.NewReader(body))

		PlanTrip(w, r, nil)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("body %s: expected 400, got %d", body, w.Code)
		}
		var resp map[string]string
		if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
			t.Fatalf("decode error body: %v", err)
		}
		if resp["error"] != "Destination is required" {
			t.Errorf("body %s: error %q", body, resp["error"])
		}
	}
}

func TestPlanTripRejectsMalformedJSON(t *testing.T) {
	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, "/api/plan", strings.NewReader("{destination"))

	PlanTrip(w, r, nil)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "Invalid request payload") {
		t.Fatalf("unexpected body %q", w.Body.String())
	}
}

func TestPlanTripReturnsGeneratedPlan(t *testing.T) {
	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, "/api/plan",
		strings.NewReader(`{"destination":"Paris","start_date":"2025-06-01","end_date":"2025-06-04","travelers":2}`))

	PlanTrip(w, r, nil)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if ct := w.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("content type %q, want application/json", ct)
	}

	var resp models.PlanResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Destination != "Paris" || resp.Nights != 3 || len(resp.Items) != 8 {
		t.Fatalf("unexpected plan: destination=%s nights=%d items=%d",
			resp.Destination, resp.Nights, len(resp.Items))
	}
}

func TestGetVendors(t *testing.T) {
	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/api/vendors", nil)

	GetVendors(w, r, nil)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var resp struct {
		Vendors []Vendor `json:"vendors"`
	}
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(resp.Vendors) != len(Vendors) {
		t.Fatalf("expected %d vendors, got %d", len(Vendors), len(resp.Vendors))
	}
	if resp.Vendors[0].Name != "Booking.com" || resp.Vendors[0].URL != "https://www.booking.com" {
		t.Errorf("first vendor %+v", resp.Vendors[0])
	}
}
