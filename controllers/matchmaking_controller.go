package controllers

import (
	"encoding/json"
	"net/http"

	"ttm_server/services"
)

// MatchmakingController exposes read-only engine state over HTTP
type MatchmakingController struct {
	Engine *services.MatchmakingService
}

// NewMatchmakingController initializes the matchmaking controller
func NewMatchmakingController(engine *services.MatchmakingService) *MatchmakingController {
	return &MatchmakingController{Engine: engine}
}

// GetStatus - Reports queue size and active room count
func (c *MatchmakingController) GetStatus(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]int{
		"queueSize":   c.Engine.QueueSize(),
		"activeRooms": c.Engine.ActiveRooms(),
	})
}
