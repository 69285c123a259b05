package routes

import (
	"ttm_server/controllers"
	"ttm_server/services"

	"github.com/gorilla/mux"
)

// RegisterMatchmakingRoutes sets up read-only matchmaking routes under /api/matchmaking
func RegisterMatchmakingRoutes(r *mux.Router, engine *services.MatchmakingService) {
	controller := controllers.NewMatchmakingController(engine)

	mmRouter := r.PathPrefix("/api/matchmaking").Subrouter()

	mmRouter.HandleFunc("/status", controller.GetStatus).Methods("GET")
}
