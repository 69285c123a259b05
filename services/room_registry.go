package services

import (
	"ttm_server/models"

	"github.com/google/uuid"
)

// RoomRegistry tracks the active two-party rooms created by matches. Like the
// queue it is serialized by the MatchmakingService mutex. Rooms are immutable
// once created; dissolving deletes them.
type RoomRegistry struct {
	rooms map[string]*models.Room
}

// NewRoomRegistry creates an empty registry
func NewRoomRegistry() *RoomRegistry {
	return &RoomRegistry{rooms: make(map[string]*models.Room)}
}

// Create stores a fresh room for the two connections and returns its id
func (r *RoomRegistry) Create(connA, connB string) string {
	roomID := "mm_" + uuid.New().String()
	r.rooms[roomID] = &models.Room{
		RoomID:  roomID,
		Members: [2]string{connA, connB},
	}
	return roomID
}

// Get returns the room for an id, or nil if it no longer exists
func (r *RoomRegistry) Get(roomID string) *models.Room {
	return r.rooms[roomID]
}

// Dissolve deletes a room. It is a no-op for unknown ids.
func (r *RoomRegistry) Dissolve(roomID string) {
	delete(r.rooms, roomID)
}

// Size returns the number of active rooms
func (r *RoomRegistry) Size() int {
	return len(r.rooms)
}
