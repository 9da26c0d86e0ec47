package planner

import (
	"encoding/json"
	"net/http"

	"trippy/models"
	"trippy/utils"

	"github.com/julienschmidt/httprouter"
)

// POST /api/plan
func PlanTrip(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var req models.PlanRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	if req.Destination == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Destination is required")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, Generate(req))
}

// GET /api/vendors
func GetVendors(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"vendors": Vendors})
}
