package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// DefaultMessageType is assumed when the caller does not tag the payload.
const DefaultMessageType = "text"

// HistoryLimit caps thread history reads. Oldest entries beyond the cap are
// silently dropped; there is no cursor pagination on this surface.
const HistoryLimit = 50

// Message is a directed message between two identities. Records are immutable
// after insert except for IsRead, which transitions false->true exactly once via
// the bulk mark-thread-read path. Self-messages are structurally allowed.
type Message struct {
	MessageID   uuid.UUID  `json:"id"`
	SenderID    uuid.UUID  `json:"senderId"`
	ReceiverID  uuid.UUID  `json:"receiverId"`
	Content     string     `json:"content"`
	MessageType string     `json:"messageType"`
	IsRead      bool       `json:"isRead"`
	CreatedAt   time.Time  `json:"createdAt"`
	Sender      PublicUser `json:"sender"`
	Receiver    PublicUser `json:"receiver"`
}

// ConversationSummary is the derived per-counterpart view: the most recent
// message in either direction plus the count of unread messages from the
// counterpart. It is computed on demand, never stored.
type ConversationSummary struct {
	User        PublicUser   `json:"user"`
	LastMessage *LastMessage `json:"lastMessage"`
	UnreadCount int          `json:"unreadCount"`
}

// LastMessage is the trimmed preview attached to conversation summaries.
type LastMessage struct {
	Content   string    `json:"content"`
	Sender    string    `json:"sender"`
	CreatedAt time.Time `json:"createdAt"`
}

// ValidateMessage checks the send input. Receiver existence is the store's concern.
func ValidateMessage(receiverID uuid.UUID, content string) error {
	if receiverID == uuid.Nil {
		return fmt.Errorf("%w: receiver is required", ErrInvalidInput)
	}
	if strings.TrimSpace(content) == "" {
		return fmt.Errorf("%w: content is required", ErrInvalidInput)
	}
	return nil
}

// MinSearchQueryLength guards the counterpart email search.
const MinSearchQueryLength = 2

func ValidateSearchQuery(query string) error {
	if len(strings.TrimSpace(query)) < MinSearchQueryLength {
		return fmt.Errorf("%w: search query must be at least %d characters", ErrInvalidInput, MinSearchQueryLength)
	}
	return nil
}
