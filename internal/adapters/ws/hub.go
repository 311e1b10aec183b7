package ws

import (
	"encoding/json"
	"log/slog"
	"sync"

	"github.com/google/uuid"
)

// Hub is the in-process connection registry. Identities map to their live
// connections; fan-out enumerates a snapshot under the read lock so relays to
// one identity never serialize against registration of another.
//
// Presence is identity-level: online fires on an identity's first connection,
// offline on its last close. A device dropping while a second remains active
// emits nothing.
type Hub struct {
	mu    sync.RWMutex
	conns map[uuid.UUID]map[*Client]struct{}

	logger *slog.Logger
}

func NewHub(logger *slog.Logger) *Hub {
	if logger == nil {
		logger = slog.Default()
	}
	return &Hub{
		conns:  make(map[uuid.UUID]map[*Client]struct{}),
		logger: logger,
	}
}

// Register adds the connection and reports whether it is the identity's first.
func (h *Hub) Register(c *Client) bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	set, ok := h.conns[c.userID]
	if !ok {
		set = make(map[*Client]struct{})
		h.conns[c.userID] = set
	}
	set[c] = struct{}{}
	return len(set) == 1
}

// Unregister removes the connection and reports whether the identity has gone
// fully offline.
func (h *Hub) Unregister(c *Client) bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	set, ok := h.conns[c.userID]
	if !ok {
		return false
	}
	if _, present := set[c]; !present {
		return false
	}
	delete(set, c)
	if len(set) == 0 {
		delete(h.conns, c.userID)
		return true
	}
	return false
}

// IsOnline reports whether the identity holds at least one live connection.
func (h *Hub) IsOnline(userID uuid.UUID) bool {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.conns[userID]) > 0
}

// OnlineUsers lists identities with at least one live connection.
func (h *Hub) OnlineUsers() []uuid.UUID {
	h.mu.RLock()
	defer h.mu.RUnlock()
	out := make([]uuid.UUID, 0, len(h.conns))
	for id := range h.conns {
		out = append(out, id)
	}
	return out
}

// NotifyUser delivers one event to every live connection of userID.
// Zero connections drops the event silently; a full peer buffer drops the
// frame for that peer rather than blocking the caller.
func (h *Hub) NotifyUser(userID uuid.UUID, event string, payload any) {
	frame, err := marshalEvent(event, payload)
	if err != nil {
		h.logger.Warn("drop undeliverable event", "event", event, "error", err)
		return
	}

	h.mu.RLock()
	targets := make([]*Client, 0, len(h.conns[userID]))
	for c := range h.conns[userID] {
		targets = append(targets, c)
	}
	h.mu.RUnlock()

	for _, c := range targets {
		c.trySend(frame)
	}
}

// Broadcast delivers one event to every connection except those held by
// exceptUser. Used for process-wide presence transitions.
func (h *Hub) Broadcast(event string, payload any, exceptUser uuid.UUID) {
	frame, err := marshalEvent(event, payload)
	if err != nil {
		h.logger.Warn("drop undeliverable event", "event", event, "error", err)
		return
	}

	h.mu.RLock()
	targets := make([]*Client, 0, len(h.conns))
	for userID, set := range h.conns {
		if userID == exceptUser {
			continue
		}
		for c := range set {
			targets = append(targets, c)
		}
	}
	h.mu.RUnlock()

	for _, c := range targets {
		c.trySend(frame)
	}
}

func marshalEvent(event string, payload any) ([]byte, error) {
	return json.Marshal(outboundEnvelope{Event: event, Data: payload})
}
