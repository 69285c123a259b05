package socket

import (
	"context"
	"log"
	"sync"

	"ttm_server/models"
	"ttm_server/services"

	socketio "github.com/googollee/go-socket.io"
)

// Server is the connection gateway: it bridges live socket.io connections to
// the matchmaking engine and owns the registry of connected sockets, which is
// how the engine reaches a specific party (it implements services.Notifier).
type Server struct {
	IO       *socketio.Server
	engine   *services.MatchmakingService
	profiles *services.PlayerProfileService

	mu    sync.RWMutex
	conns map[string]socketio.Conn
	users map[string]string // connection id → authenticated user id
}

// NewServer wires the socket.io event handlers to the engine and attaches
// itself as the engine's notifier. The profile service is optional; with it,
// clients that identify themselves via a userId query parameter get presence
// updates on connect and disconnect.
func NewServer(engine *services.MatchmakingService, profiles *services.PlayerProfileService) *Server {
	gw := &Server{
		IO:       socketio.NewServer(nil),
		engine:   engine,
		profiles: profiles,
		conns:    make(map[string]socketio.Conn),
		users:    make(map[string]string),
	}
	engine.SetNotifier(gw)

	gw.IO.OnConnect("/", func(c socketio.Conn) error {
		c.SetContext("")
		gw.register(c)
		log.Println("✅ Socket connected:", c.ID())

		u := c.URL()
		if userID := u.Query().Get("userId"); userID != "" {
			gw.setUser(c.ID(), userID)
			gw.updateStatus(userID, models.StatusOnline)
		}
		return nil
	})

	gw.IO.OnEvent("/", models.EventJoin, func(c socketio.Conn, req models.JoinRequest) {
		gw.engine.Join(c.ID(), req)
	})

	gw.IO.OnEvent("/", models.EventCancel, func(c socketio.Conn) {
		gw.engine.Cancel(c.ID())
	})

	gw.IO.OnEvent("/", models.EventChatMessage, func(c socketio.Conn, req models.ChatMessageRequest) {
		gw.engine.ChatMessage(c.ID(), req)
	})

	gw.IO.OnEvent("/", models.EventLeaveRoom, func(c socketio.Conn, req models.LeaveRoomRequest) {
		gw.engine.LeaveRoom(c.ID(), req)
	})

	gw.IO.OnError("/", func(c socketio.Conn, err error) {
		log.Printf("⚠️ Socket error: %v", err)
	})

	gw.IO.OnDisconnect("/", func(c socketio.Conn, reason string) {
		log.Println("❌ Socket disconnected:", c.ID(), reason)
		gw.engine.Disconnect(c.ID())

		if userID, ok := gw.userFor(c.ID()); ok {
			gw.updateStatus(userID, models.StatusOffline)
		}
		gw.unregister(c.ID())
	})

	return gw
}

// Notify emits an event to one connection. Unknown connections are ignored;
// they have already disconnected.
func (gw *Server) Notify(connectionID string, event string, payload interface{}) {
	gw.mu.RLock()
	c, ok := gw.conns[connectionID]
	gw.mu.RUnlock()
	if !ok {
		return
	}
	if payload == nil {
		c.Emit(event)
		return
	}
	c.Emit(event, payload)
}

// JoinRoom adds a connection to a room's transport group
func (gw *Server) JoinRoom(connectionID string, roomID string) {
	gw.mu.RLock()
	c, ok := gw.conns[connectionID]
	gw.mu.RUnlock()
	if ok {
		c.Join(roomID)
	}
}

// LeaveRoom removes a connection from a room's transport group
func (gw *Server) LeaveRoom(connectionID string, roomID string) {
	gw.mu.RLock()
	c, ok := gw.conns[connectionID]
	gw.mu.RUnlock()
	if ok {
		c.Leave(roomID)
	}
}

func (gw *Server) register(c socketio.Conn) {
	gw.mu.Lock()
	defer gw.mu.Unlock()
	gw.conns[c.ID()] = c
}

func (gw *Server) unregister(connectionID string) {
	gw.mu.Lock()
	defer gw.mu.Unlock()
	delete(gw.conns, connectionID)
	delete(gw.users, connectionID)
}

func (gw *Server) setUser(connectionID, userID string) {
	gw.mu.Lock()
	defer gw.mu.Unlock()
	gw.users[connectionID] = userID
}

func (gw *Server) userFor(connectionID string) (string, bool) {
	gw.mu.RLock()
	defer gw.mu.RUnlock()
	userID, ok := gw.users[connectionID]
	return userID, ok
}

func (gw *Server) updateStatus(userID, status string) {
	if gw.profiles == nil {
		return
	}
	go func() {
		if err := gw.profiles.UpdatePlayerStatus(context.Background(), userID, status); err != nil {
			log.Printf("⚠️ Failed to update status for %s: %v", userID, err)
		}
	}()
}
