package ws

import "encoding/json"

// Wire event names. Inbound events carry the authenticated connection's
// identity as implicit sender; outbound events are addressed by the hub.
const (
	eventPrivateMessage = "private_message"
	eventTyping         = "typing"
	eventStopTyping     = "stop_typing"

	eventNewMessage     = "new_message"
	eventMessageSent    = "message_sent"
	eventUserTyping     = "user_typing"
	eventUserStopTyping = "user_stop_typing"
	eventUserOnline     = "user_online"
	eventUserStatus     = "user_status"
)

type inboundEnvelope struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data"`
}

type outboundEnvelope struct {
	Event string `json:"event"`
	Data  any    `json:"data"`
}

type privateMessagePayload struct {
	ReceiverID  string `json:"receiverId"`
	Content     string `json:"content"`
	MessageType string `json:"messageType"`
}

type typingPayload struct {
	ReceiverID string `json:"receiverId"`
}
