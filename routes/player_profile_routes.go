package routes

import (
	"ttm_server/controllers"
	"ttm_server/services"

	"github.com/gorilla/mux"
)

// RegisterPlayerProfileRoutes sets up routes for profile operations under /api/profiles
func RegisterPlayerProfileRoutes(r *mux.Router, profileService *services.PlayerProfileService) {
	controller := controllers.NewPlayerProfileController(profileService)

	profileRouter := r.PathPrefix("/api/profiles").Subrouter()

	profileRouter.HandleFunc("", controller.CreatePlayerProfile).Methods("POST")
	profileRouter.HandleFunc("/search", controller.SearchPlayers).Methods("GET")
	profileRouter.HandleFunc("/discord/{discordId}", controller.GetPlayerProfileByDiscordID).Methods("GET")
	profileRouter.HandleFunc("/{userId}", controller.GetPlayerProfile).Methods("GET")
	profileRouter.HandleFunc("/{userId}", controller.UpdatePlayerProfile).Methods("PATCH")
	profileRouter.HandleFunc("/{userId}", controller.DeletePlayerProfile).Methods("DELETE")
	profileRouter.HandleFunc("/{userId}/contacts", controller.GetContacts).Methods("GET")
	profileRouter.HandleFunc("/{userId}/contacts/{contactId}", controller.AddContact).Methods("POST")
	profileRouter.HandleFunc("/{userId}/contacts/{contactId}", controller.RemoveContact).Methods("DELETE")
}
