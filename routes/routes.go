package routes

import (
	"trippy/diag"
	"trippy/home"
	"trippy/planner"
	"trippy/trips"

	"github.com/julienschmidt/httprouter"
)

func AddHomeRoutes(router *httprouter.Router) {
	router.GET("/", home.Root)
	router.GET("/api/hello", home.Hello)
}

func AddPlannerRoutes(router *httprouter.Router) {
	router.POST("/api/plan", planner.PlanTrip)
	router.GET("/api/vendors", planner.GetVendors)
}

// Trip routes take the handler so the store stays injected rather than
// read from a package global.
func AddTripRoutes(router *httprouter.Router, handler *trips.Handler) {
	router.POST("/api/trips", handler.SaveTrip)
	router.GET("/api/trips", handler.ListTrips)
	router.GET("/api/trips/:id", handler.GetTrip)
	router.GET("/api/trips/:id/print", handler.PrintTrip)
}

func AddDiagRoutes(router *httprouter.Router, handler *diag.Handler) {
	router.GET("/test", handler.TestBackend)
}
