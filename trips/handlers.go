package trips

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"trippy/models"
	"trippy/mq"
	"trippy/utils"

	"github.com/julienschmidt/httprouter"
)

// Handler serves the saved-trip endpoints. Store may be nil when no
// document store is configured; every store-backed endpoint then
// answers 503.
type Handler struct {
	Store TripStore
}

func NewHandler(store TripStore) *Handler {
	return &Handler{Store: store}
}

// POST /api/trips
func (h *Handler) SaveTrip(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	if h.Store == nil {
		utils.RespondWithError(w, http.StatusServiceUnavailable, "Database not available")
		return
	}

	var req models.TripSaveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	now := time.Now().UTC()
	trip := models.SavedTrip{
		Name:      req.Name,
		Plan:      req.Plan,
		CreatedAt: now,
		UpdatedAt: now,
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	id, err := h.Store.Create(ctx, trip)
	if err != nil {
		log.Printf("Error saving trip: %v", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Error saving trip")
		return
	}

	// fire-and-forget; the response never waits on eventing
	go mq.Emit(context.Background(), "trip-saved", models.Index{
		EntityType: "trip",
		Method:     "POST",
		EntityId:   id,
		ItemId:     req.Plan.Destination,
		ItemType:   "plan",
	})

	utils.RespondWithJSON(w, http.StatusOK, utils.M{"id": id, "status": "saved"})
}

// GET /api/trips?limit=N
func (h *Handler) ListTrips(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	if h.Store == nil {
		utils.RespondWithError(w, http.StatusServiceUnavailable, "Database not available")
		return
	}

	limit := utils.ParseLimit(r, 20, 100)

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	saved, err := h.Store.List(ctx, limit)
	if err != nil {
		log.Printf("Error listing trips: %v", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Error fetching trips")
		return
	}

	if saved == nil {
		saved = []models.SavedTrip{}
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{"trips": saved})
}

// GET /api/trips/:id
func (h *Handler) GetTrip(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	if h.Store == nil {
		utils.RespondWithError(w, http.StatusServiceUnavailable, "Database not available")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	trip, err := h.Store.Get(ctx, ps.ByName("id"))
	if err == ErrInvalidID {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid trip ID")
		return
	}
	if err == ErrNotFound {
		utils.RespondWithError(w, http.StatusNotFound, "Trip not found")
		return
	}
	if err != nil {
		log.Printf("Error fetching trip: %v", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Error fetching trip")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, trip)
}
