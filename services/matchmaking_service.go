package services

import (
	"context"
	"log"
	"sync"
	"time"

	"ttm_server/models"
)

const (
	// tickInterval is the matchmaking cadence
	tickInterval = 2 * time.Second
	// broadenDelay is how long a player waits before criteria are relaxed
	broadenDelay = 30 * time.Second
)

// Notifier delivers engine events to live connections. The socket gateway
// implements it; tests substitute a recorder.
type Notifier interface {
	Notify(connectionID string, event string, payload interface{})
	JoinRoom(connectionID string, roomID string)
	LeaveRoom(connectionID string, roomID string)
}

// MatchmakingService owns the waiting queue, the room registry and the tick
// scheduler. Every mutation (join, cancel, chat relay, leave, disconnect,
// scheduler tick) runs under one mutex, so partial mutations never
// interleave.
type MatchmakingService struct {
	mu        sync.Mutex
	queue     *QueueService
	rooms     *RoomRegistry
	connRooms map[string]string // advisory lookup: connection → roomId

	notifier Notifier
	history  *ChatHistoryService // optional, may be nil

	tickInterval time.Duration
	broadenDelay time.Duration
	now          func() time.Time

	tickerStop chan struct{} // non-nil while the scheduler runs
}

// NewMatchmakingService creates an engine with an empty queue. The chat
// history service is optional; without it relayed messages are not persisted.
func NewMatchmakingService(history *ChatHistoryService) *MatchmakingService {
	return &MatchmakingService{
		queue:        NewQueueService(),
		rooms:        NewRoomRegistry(),
		connRooms:    make(map[string]string),
		history:      history,
		tickInterval: tickInterval,
		broadenDelay: broadenDelay,
		now:          time.Now,
	}
}

// SetNotifier attaches the outbound delivery channel. Called once by the
// socket gateway during wiring.
func (s *MatchmakingService) SetNotifier(n Notifier) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.notifier = n
}

// Join inserts (or replaces) a queue entry for the connection, acknowledges
// it with the current queue size and makes sure the scheduler is running.
func (s *MatchmakingService) Join(connectionID string, req models.JoinRequest) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry := &models.QueueEntry{
		ConnectionID: connectionID,
		Tags:         models.NormalizeTags(req.Tags),
		Profile: models.DisplayInfo{
			Username: req.Username,
			Avatar:   req.Avatar,
			Contact:  req.Contact,
			Tagline:  req.Tagline,
		},
		JoinedAt: s.now(),
	}
	s.queue.Insert(entry)

	log.Printf("🔍 %s joined the matchmaking queue (%d waiting)", entry.Profile.Username, s.queue.Size())
	s.notify(connectionID, models.EventWaiting, models.WaitingResponse{QueueSize: s.queue.Size()})
	s.startSchedulerLocked()
}

// Cancel removes the connection from the queue and acknowledges the cancel.
// Cancelling while not queued is acknowledged all the same.
func (s *MatchmakingService) Cancel(connectionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.queue.RemoveByConnection(connectionID) {
		log.Printf("❌ %s left the matchmaking queue (%d waiting)", connectionID, s.queue.Size())
	}
	s.notify(connectionID, models.EventCancelled, nil)
	s.stopSchedulerIfEmptyLocked()
}

// ChatMessage relays a room message to the other member of the room. Stale
// room ids and messages from non-members are dropped silently; that is
// expected under disconnect races.
func (s *MatchmakingService) ChatMessage(connectionID string, req models.ChatMessageRequest) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if req.RoomID == "" {
		return
	}
	room := s.rooms.Get(req.RoomID)
	if room == nil {
		return
	}
	partner, ok := room.Other(connectionID)
	if !ok {
		return
	}

	username := req.Username
	if username == "" {
		username = "Anonymous"
	}
	s.notify(partner, models.EventChatMessage, models.ChatMessageResponse{
		Username: username,
		Text:     req.Text,
	})

	if s.history != nil {
		// Best effort, off the relay path.
		message := models.RoomMessage{
			RoomID:   req.RoomID,
			SenderID: connectionID,
			Username: username,
			Text:     req.Text,
		}
		go func() {
			if err := s.history.SaveMessage(context.Background(), message); err != nil {
				log.Printf("⚠️ Failed to persist room message: %v", err)
			}
		}()
	}
}

// LeaveRoom removes the connection from its room, notifies the partner and
// dissolves the room. Unknown room ids are ignored.
func (s *MatchmakingService) LeaveRoom(connectionID string, req models.LeaveRoomRequest) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if req.RoomID == "" {
		return
	}
	room := s.rooms.Get(req.RoomID)
	if room == nil {
		return
	}
	if _, ok := room.Other(connectionID); !ok {
		return
	}
	s.leaveRoomTransport(connectionID, req.RoomID)
	s.dissolveRoomLocked(room, connectionID)
}

// Disconnect handles an abrupt connection loss: the queue entry is removed
// and, if the connection was inside a room, the partner is notified and the
// room dissolved.
func (s *MatchmakingService) Disconnect(connectionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.queue.RemoveByConnection(connectionID) {
		log.Printf("❌ %s disconnected (removed from queue, %d waiting)", connectionID, s.queue.Size())
		s.stopSchedulerIfEmptyLocked()
	}

	if roomID, ok := s.connRooms[connectionID]; ok {
		if room := s.rooms.Get(roomID); room != nil {
			s.dissolveRoomLocked(room, connectionID)
		} else {
			delete(s.connRooms, connectionID)
		}
	}
}

// QueueSize reports the number of waiting players
func (s *MatchmakingService) QueueSize() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.queue.Size()
}

// ActiveRooms reports the number of active rooms
func (s *MatchmakingService) ActiveRooms() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rooms.Size()
}

// RoomFor returns the advisory room id for a connection, if any
func (s *MatchmakingService) RoomFor(connectionID string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	roomID, ok := s.connRooms[connectionID]
	return roomID, ok
}

// startSchedulerLocked starts the tick loop if it is not already running.
// Caller holds mu.
func (s *MatchmakingService) startSchedulerLocked() {
	if s.tickerStop != nil {
		return
	}
	stop := make(chan struct{})
	s.tickerStop = stop
	go s.runScheduler(stop)
}

// stopSchedulerIfEmptyLocked stops the tick loop once the queue is empty.
// Caller holds mu.
func (s *MatchmakingService) stopSchedulerIfEmptyLocked() {
	if s.tickerStop != nil && s.queue.Size() == 0 {
		close(s.tickerStop)
		s.tickerStop = nil
	}
}

func (s *MatchmakingService) runScheduler(stop chan struct{}) {
	ticker := time.NewTicker(s.tickInterval)
	defer ticker.Stop()
	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			s.Tick()
		}
	}
}

// Tick runs one matchmaking pass over the current queue: the broadening
// eligibility sweep, then the exact pass, then the relaxed pass. At most one
// match is created per tick.
func (s *MatchmakingService) Tick() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.tickLocked()
	s.stopSchedulerIfEmptyLocked()
}

func (s *MatchmakingService) tickLocked() {
	now := s.now()
	snapshot := s.queue.Snapshot()

	// One-time broadened notifications go out before any pairing, even when
	// the queue holds a single waiting player.
	for _, entry := range broadeningEligible(snapshot, now, s.broadenDelay) {
		entry.BroadenedNotified = true
		s.notify(entry.ConnectionID, models.EventBroadened, nil)
	}

	if len(snapshot) < 2 {
		return
	}

	result := findExactMatch(snapshot)
	if result == nil {
		result = findBroadenedMatch(snapshot, now, s.broadenDelay)
	}
	if result == nil {
		return
	}
	s.createMatchLocked(result)
}

// createMatchLocked removes both entries from the queue, registers the room
// and notifies both parties. Caller holds mu.
func (s *MatchmakingService) createMatchLocked(result *matchResult) {
	s.queue.RemoveByConnection(result.A.ConnectionID)
	s.queue.RemoveByConnection(result.B.ConnectionID)

	roomID := s.rooms.Create(result.A.ConnectionID, result.B.ConnectionID)
	s.connRooms[result.A.ConnectionID] = roomID
	s.connRooms[result.B.ConnectionID] = roomID

	s.joinRoomTransport(result.A.ConnectionID, roomID)
	s.joinRoomTransport(result.B.ConnectionID, roomID)

	s.notify(result.A.ConnectionID, models.EventMatched, models.MatchedResponse{
		RoomID:      roomID,
		Partner:     result.B.Profile,
		MatchedTags: result.MatchedTags,
	})
	s.notify(result.B.ConnectionID, models.EventMatched, models.MatchedResponse{
		RoomID:      roomID,
		Partner:     result.A.Profile,
		MatchedTags: result.MatchedTags,
	})

	log.Printf("⚡ Match: %s <-> %s (room: %s)", result.A.Profile.Username, result.B.Profile.Username, roomID)
}

// dissolveRoomLocked notifies the remaining member, dissolves the room and
// clears both advisory back-references. Caller holds mu.
func (s *MatchmakingService) dissolveRoomLocked(room *models.Room, leaver string) {
	if partner, ok := room.Other(leaver); ok {
		s.notify(partner, models.EventPartnerLeft, nil)
		s.leaveRoomTransport(partner, room.RoomID)
		delete(s.connRooms, partner)
	}
	delete(s.connRooms, leaver)
	s.rooms.Dissolve(room.RoomID)
}

func (s *MatchmakingService) notify(connectionID, event string, payload interface{}) {
	if s.notifier != nil {
		s.notifier.Notify(connectionID, event, payload)
	}
}

func (s *MatchmakingService) joinRoomTransport(connectionID, roomID string) {
	if s.notifier != nil {
		s.notifier.JoinRoom(connectionID, roomID)
	}
}

func (s *MatchmakingService) leaveRoomTransport(connectionID, roomID string) {
	if s.notifier != nil {
		s.notifier.LeaveRoom(connectionID, roomID)
	}
}
