package home

import (
	"net/http"

	"trippy/utils"

	"github.com/julienschmidt/httprouter"
)

// GET /
func Root(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"message": "Trippy backend is running"})
}

// GET /api/hello
func Hello(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"message": "Hello from Trippy API"})
}
