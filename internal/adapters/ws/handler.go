package ws

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/workhub/workhub/internal/domain"
	"github.com/workhub/workhub/internal/ports"
)

// TokenValidator is the handshake's view of the gatekeeper. The same policy
// backs the HTTP middleware, so both transports accept exactly the same
// credentials.
type TokenValidator interface {
	ValidateToken(ctx context.Context, raw string) (ports.AuthClaims, error)
}

// Handler upgrades authenticated requests into hub-registered connections.
type Handler struct {
	hub      *Hub
	tokens   TokenValidator
	upgrader websocket.Upgrader
	logger   *slog.Logger
	nowFn    func() time.Time
}

func NewHandler(hub *Hub, tokens TokenValidator, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{
		hub:    hub,
		tokens: tokens,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  4096,
			WriteBufferSize: 4096,
			// Browser clients connect cross-origin in every deployment we
			// run; auth is the token, not the Origin header.
			CheckOrigin: func(*http.Request) bool { return true },
		},
		logger: logger,
		nowFn:  func() time.Time { return time.Now().UTC() },
	}
}

// ServeHTTP authenticates the handshake, upgrades, and runs the connection
// until close. A missing or invalid token is rejected before registration.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	token := r.URL.Query().Get("token")
	if token == "" {
		http.Error(w, "missing token", http.StatusUnauthorized)
		return
	}
	claims, err := h.tokens.ValidateToken(r.Context(), token)
	if err != nil {
		http.Error(w, "invalid token", http.StatusUnauthorized)
		return
	}

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Warn("websocket upgrade failed", "error", err)
		return
	}

	client := newClient(conn, claims.UserID, claims.Username, h.logger)
	first := h.hub.Register(client)
	h.logger.Info("websocket connected",
		"user_id", claims.UserID,
		"first_connection", first,
	)
	if first {
		h.hub.Broadcast(eventUserOnline, map[string]any{
			"userId":   claims.UserID.String(),
			"username": claims.Username,
		}, claims.UserID)
		h.hub.Broadcast(eventUserStatus, map[string]any{
			"userId": claims.UserID.String(),
			"status": "online",
		}, claims.UserID)
	}

	go client.writePump()
	client.readPump(h.dispatch)

	last := h.hub.Unregister(client)
	client.close()
	h.logger.Info("websocket disconnected",
		"user_id", claims.UserID,
		"last_connection", last,
	)
	if last {
		h.hub.Broadcast(eventUserStatus, map[string]any{
			"userId": claims.UserID.String(),
			"status": "offline",
		}, claims.UserID)
	}
}

// dispatch routes one inbound envelope. Unknown events are dropped; this is a
// best-effort surface and the peer gets no error channel.
func (h *Handler) dispatch(c *Client, env inboundEnvelope) {
	switch env.Event {
	case eventPrivateMessage:
		h.handlePrivateMessage(c, env.Data)
	case eventTyping:
		h.relayTyping(c, env.Data, eventUserTyping)
	case eventStopTyping:
		h.relayTyping(c, env.Data, eventUserStopTyping)
	default:
		h.logger.Debug("unknown websocket event", "event", env.Event, "user_id", c.userID)
	}
}

// handlePrivateMessage relays a live-only message to the receiver's
// connections and echoes an acknowledgment to the sender. Durable delivery is
// the REST send endpoint's job; this path never writes to the store.
func (h *Handler) handlePrivateMessage(c *Client, raw json.RawMessage) {
	var payload privateMessagePayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		return
	}
	receiverID, err := uuid.Parse(payload.ReceiverID)
	if err != nil || payload.Content == "" {
		return
	}
	if payload.MessageType == "" {
		payload.MessageType = domain.DefaultMessageType
	}

	sentAt := h.nowFn()
	h.hub.NotifyUser(receiverID, eventNewMessage, map[string]any{
		"senderId":    c.userID.String(),
		"senderName":  c.username,
		"content":     payload.Content,
		"messageType": payload.MessageType,
		"createdAt":   sentAt,
	})
	c.trySend(mustMarshalEvent(eventMessageSent, map[string]any{
		"receiverId":  receiverID.String(),
		"content":     payload.Content,
		"messageType": payload.MessageType,
		"createdAt":   sentAt,
	}))
}

func (h *Handler) relayTyping(c *Client, raw json.RawMessage, outEvent string) {
	var payload typingPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		return
	}
	receiverID, err := uuid.Parse(payload.ReceiverID)
	if err != nil {
		return
	}
	h.hub.NotifyUser(receiverID, outEvent, map[string]any{
		"senderId":   c.userID.String(),
		"senderName": c.username,
	})
}

func mustMarshalEvent(event string, payload any) []byte {
	frame, err := marshalEvent(event, payload)
	if err != nil {
		return []byte(`{"event":"` + event + `"}`)
	}
	return frame
}
