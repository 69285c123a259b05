package controllers

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"strconv"

	"ttm_server/services"
)

// ChatController struct
type ChatController struct {
	ChatHistoryService *services.ChatHistoryService
}

// NewChatController initializes the chat controller
func NewChatController(service *services.ChatHistoryService) *ChatController {
	return &ChatController{ChatHistoryService: service}
}

// GetRoomMessages - Fetches persisted chat history for a room
func (c *ChatController) GetRoomMessages(w http.ResponseWriter, r *http.Request) {
	roomID := r.URL.Query().Get("roomId")
	limitStr := r.URL.Query().Get("limit")

	if roomID == "" {
		http.Error(w, `{"error": "roomId is required"}`, http.StatusBadRequest)
		return
	}

	limit, err := strconv.Atoi(limitStr)
	if err != nil || limit <= 0 {
		limit = 50
	}

	messages, err := c.ChatHistoryService.GetMessagesByRoomID(context.TODO(), roomID, limit)
	if err != nil {
		log.Printf("❌ Failed to fetch messages for room %s: %v", roomID, err)
		http.Error(w, `{"error": "Failed to fetch messages"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(messages)
}
