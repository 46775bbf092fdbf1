// Package render assembles what the graph-drawing frontend receives and tracks the
// active render session. A new session token tells the renderer to discard any
// cached positions and lay the elements out from scratch.
package render

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

const writeWait = 5 * time.Second

// Message is the frame pushed to connected renderers.
type Message struct {
	Type    string   `json:"type"`
	Session *Session `json:"session"`
}

const MessageSession = "session"

// Hub pushes every new render session to the connected websocket clients.
type Hub struct {
	upgrader  websocket.Upgrader
	clients   map[*websocket.Conn]bool
	broadcast chan []byte
	mutex     sync.Mutex
}

// NewHub creates a hub accepting connections from allowedOrigin ("*" allows any).
func NewHub(allowedOrigin string) *Hub {
	return &Hub{
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				if allowedOrigin == "" || allowedOrigin == "*" {
					return true
				}
				return r.Header.Get("Origin") == allowedOrigin
			},
		},
		clients:   make(map[*websocket.Conn]bool),
		broadcast: make(chan []byte, 64),
	}
}

// Run delivers queued messages until ctx is done, then closes every client.
func (h *Hub) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			h.mutex.Lock()
			for client := range h.clients {
				client.Close()
				delete(h.clients, client)
			}
			h.mutex.Unlock()
			return

		case message := <-h.broadcast:
			h.mutex.Lock()
			for client := range h.clients {
				if err := h.writeLocked(client, message); err != nil {
					slog.Warn("websocket write failed", "remote_addr", client.RemoteAddr().String(), "error", err)
					client.Close()
					delete(h.clients, client)
				}
			}
			h.mutex.Unlock()
		}
	}
}

// Publish queues a session for delivery. It never blocks; when the queue is
// full the session is dropped, and clients catch up on the next one.
func (h *Hub) Publish(session *Session) {
	data, err := encodeSession(session)
	if err != nil {
		slog.Error("failed to encode render session", "error", err)
		return
	}

	select {
	case h.broadcast <- data:
	default:
		slog.Warn("render session dropped, broadcast queue full", "token", session.Token)
	}
}

// Subscribe upgrades the request and registers the client. The session returned
// by current, if any, is sent first so the client starts from the active one. It
// is read under the hub lock, so no broadcast can slip between it and registration.
func (h *Hub) Subscribe(w http.ResponseWriter, r *http.Request, current func() *Session) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		slog.Warn("failed to upgrade websocket", "error", err)
		return
	}

	h.mutex.Lock()
	if session := current(); session != nil {
		data, err := encodeSession(session)
		if err == nil {
			err = h.writeLocked(conn, data)
		}
		if err != nil {
			h.mutex.Unlock()
			slog.Warn("failed to send current session", "error", err)
			conn.Close()
			return
		}
	}
	h.clients[conn] = true
	total := len(h.clients)
	h.mutex.Unlock()

	slog.Info("renderer connected", "clients", total)

	// Clients only listen; reading detects disconnects.
	go func() {
		defer func() {
			h.mutex.Lock()
			delete(h.clients, conn)
			total := len(h.clients)
			h.mutex.Unlock()
			conn.Close()
			slog.Info("renderer disconnected", "clients", total)
		}()
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
					slog.Warn("websocket read failed", "error", err)
				}
				return
			}
		}
	}()
}

func (h *Hub) ClientCount() int {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	return len(h.clients)
}

// writeLocked writes one frame. Caller must hold h.mutex.
func (h *Hub) writeLocked(conn *websocket.Conn, data []byte) error {
	_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
	return conn.WriteMessage(websocket.TextMessage, data)
}

func encodeSession(session *Session) ([]byte, error) {
	return json.Marshal(Message{Type: MessageSession, Session: session})
}
