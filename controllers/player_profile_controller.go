package controllers

import (
	"context"
	"encoding/json"
	"log"
	"net/http"

	"ttm_server/models"
	"ttm_server/services"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

// PlayerProfileController struct
type PlayerProfileController struct {
	ProfileService *services.PlayerProfileService
}

// NewPlayerProfileController initializes the profile controller
func NewPlayerProfileController(service *services.PlayerProfileService) *PlayerProfileController {
	return &PlayerProfileController{ProfileService: service}
}

// CreatePlayerProfile - Registers a new player profile
func (c *PlayerProfileController) CreatePlayerProfile(w http.ResponseWriter, r *http.Request) {
	var profile models.PlayerProfile
	if err := json.NewDecoder(r.Body).Decode(&profile); err != nil {
		http.Error(w, `{"error": "Invalid request body"}`, http.StatusBadRequest)
		return
	}

	if profile.Username == "" {
		http.Error(w, `{"error": "username is required"}`, http.StatusBadRequest)
		return
	}
	if profile.UserID == "" {
		profile.UserID = uuid.New().String()
	}

	created, err := c.ProfileService.AddPlayerProfile(context.TODO(), profile)
	if err != nil {
		log.Printf("❌ Failed to create profile: %v", err)
		http.Error(w, `{"error": "Failed to create profile"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(created)
}

// GetPlayerProfile - Fetches a profile by userId
func (c *PlayerProfileController) GetPlayerProfile(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["userId"]

	profile, err := c.ProfileService.GetPlayerProfile(context.TODO(), userID)
	if err != nil {
		http.Error(w, `{"error": "Profile not found"}`, http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(profile)
}

// GetPlayerProfileByDiscordID - Fetches a profile by Discord id
func (c *PlayerProfileController) GetPlayerProfileByDiscordID(w http.ResponseWriter, r *http.Request) {
	discordID := mux.Vars(r)["discordId"]

	profile, err := c.ProfileService.GetPlayerProfileByDiscordID(context.TODO(), discordID)
	if err != nil {
		log.Printf("❌ Failed to fetch profile by discordId: %v", err)
		http.Error(w, `{"error": "Failed to fetch profile"}`, http.StatusInternalServerError)
		return
	}
	if profile == nil {
		http.Error(w, `{"error": "Profile not found"}`, http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(profile)
}

// UpdatePlayerProfile - Applies a partial update to a profile
func (c *PlayerProfileController) UpdatePlayerProfile(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["userId"]

	var updates map[string]interface{}
	if err := json.NewDecoder(r.Body).Decode(&updates); err != nil {
		http.Error(w, `{"error": "Invalid request body"}`, http.StatusBadRequest)
		return
	}
	if len(updates) == 0 {
		http.Error(w, `{"error": "No fields to update"}`, http.StatusBadRequest)
		return
	}

	updated, err := c.ProfileService.UpdatePlayerProfile(context.TODO(), userID, updates)
	if err != nil {
		log.Printf("❌ Failed to update profile %s: %v", userID, err)
		http.Error(w, `{"error": "Failed to update profile"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(updated)
}

// DeletePlayerProfile - Removes a profile
func (c *PlayerProfileController) DeletePlayerProfile(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["userId"]

	if err := c.ProfileService.DeletePlayerProfile(context.TODO(), userID); err != nil {
		log.Printf("❌ Failed to delete profile %s: %v", userID, err)
		http.Error(w, `{"error": "Failed to delete profile"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"status": "success", "message": "Profile deleted"})
}

// SearchPlayers - Searches profiles by tag
func (c *PlayerProfileController) SearchPlayers(w http.ResponseWriter, r *http.Request) {
	tag := r.URL.Query().Get("tag")
	requesterID := r.URL.Query().Get("requesterId")

	if tag == "" {
		http.Error(w, `{"error": "tag is required"}`, http.StatusBadRequest)
		return
	}

	profiles, err := c.ProfileService.SearchPlayersByTag(context.TODO(), tag, requesterID)
	if err != nil {
		log.Printf("❌ Failed to search profiles: %v", err)
		http.Error(w, `{"error": "Failed to search profiles"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(profiles)
}

// AddContact - Adds a contact to a profile
func (c *PlayerProfileController) AddContact(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	profile, err := c.ProfileService.AddContact(context.TODO(), vars["userId"], vars["contactId"])
	if err != nil {
		log.Printf("❌ Failed to add contact: %v", err)
		http.Error(w, `{"error": "Failed to add contact"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(profile)
}

// RemoveContact - Removes a contact from a profile
func (c *PlayerProfileController) RemoveContact(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	profile, err := c.ProfileService.RemoveContact(context.TODO(), vars["userId"], vars["contactId"])
	if err != nil {
		log.Printf("❌ Failed to remove contact: %v", err)
		http.Error(w, `{"error": "Failed to remove contact"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(profile)
}

// GetContacts - Lists a profile's contacts as full profiles
func (c *PlayerProfileController) GetContacts(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["userId"]

	contacts, err := c.ProfileService.GetContacts(context.TODO(), userID)
	if err != nil {
		log.Printf("❌ Failed to fetch contacts: %v", err)
		http.Error(w, `{"error": "Failed to fetch contacts"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(contacts)
}
