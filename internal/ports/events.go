package ports

import "context"

// Domain event types emitted by the application layer.
const (
	EventUserRegistered  = "user.registered"
	EventChatMessageSent = "chat.message.sent"
)

// EventPublisher is the outbound domain-event publish port.
// The application uses this abstraction to keep broker/client concerns in adapters.
type EventPublisher interface {
	Publish(ctx context.Context, eventType string, payload []byte, partitionKey string) error
}
