package models

import "time"

// ✅ Socket event names (client ↔ engine)
const (
	EventJoin        = "mm:join"
	EventCancel      = "mm:cancel"
	EventChatMessage = "mm:chat-message"
	EventLeaveRoom   = "mm:leave-room"

	EventWaiting     = "mm:waiting"
	EventMatched     = "mm:matched"
	EventBroadened   = "mm:broadened"
	EventCancelled   = "mm:cancelled"
	EventPartnerLeft = "mm:partner-left"
)

// DisplayInfo is the public identity forwarded verbatim to a matched partner.
// The matching algorithm never inspects it.
type DisplayInfo struct {
	Username string `json:"username"`
	Avatar   string `json:"avatar"`
	Contact  string `json:"contact"`
	Tagline  string `json:"tagline"`
}

// QueueEntry is one waiting player in the matchmaking queue.
type QueueEntry struct {
	ConnectionID string
	Tags         []string
	Profile      DisplayInfo
	JoinedAt     time.Time

	// BroadenedNotified records that the one-time mm:broadened event has
	// already been sent for this entry.
	BroadenedNotified bool
}

// Room is a two-party session created by a successful match.
type Room struct {
	RoomID  string
	Members [2]string
}

// Other returns the member that is not connectionID, if connectionID belongs
// to the room.
func (r *Room) Other(connectionID string) (string, bool) {
	switch connectionID {
	case r.Members[0]:
		return r.Members[1], true
	case r.Members[1]:
		return r.Members[0], true
	}
	return "", false
}

// JoinRequest is the mm:join payload.
type JoinRequest struct {
	Tags     []string `json:"tags"`
	Username string   `json:"username"`
	Avatar   string   `json:"avatar"`
	Contact  string   `json:"contact"`
	Tagline  string   `json:"tagline"`
}

// ChatMessageRequest is the mm:chat-message payload.
type ChatMessageRequest struct {
	RoomID   string `json:"roomId"`
	Username string `json:"username"`
	Text     string `json:"text"`
}

// LeaveRoomRequest is the mm:leave-room payload.
type LeaveRoomRequest struct {
	RoomID string `json:"roomId"`
}

// WaitingResponse acknowledges mm:join.
type WaitingResponse struct {
	QueueSize int `json:"queueSize"`
}

// MatchedResponse is sent to both parties of a successful match.
type MatchedResponse struct {
	RoomID      string      `json:"roomId"`
	Partner     DisplayInfo `json:"partner"`
	MatchedTags []string    `json:"matchedTags"`
}

// ChatMessageResponse is the relayed room chat message.
type ChatMessageResponse struct {
	Username string `json:"username"`
	Text     string `json:"text"`
}
