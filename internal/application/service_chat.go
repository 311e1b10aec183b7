package application

import (
	"context"
	"encoding/json"
	"log/slog"
	"sort"
	"strings"

	"github.com/google/uuid"
	"github.com/workhub/workhub/internal/domain"
	"github.com/workhub/workhub/internal/ports"
)

// SendMessage persists a message and returns the record enriched with sender
// and receiver identity. After commit it relays a new_message event to the
// receiver's live connections and publishes a chat.message.sent domain event;
// both are best-effort and never fail the send.
func (s *Service) SendMessage(ctx context.Context, senderID uuid.UUID, req SendMessageRequest) (domain.Message, error) {
	if err := domain.ValidateMessage(req.ReceiverID, req.Content); err != nil {
		return domain.Message{}, err
	}
	if _, err := s.users.GetByID(ctx, req.ReceiverID); err != nil {
		return domain.Message{}, err
	}

	messageType := strings.TrimSpace(req.MessageType)
	if messageType == "" {
		messageType = domain.DefaultMessageType
	}

	msg, err := s.messages.Create(ctx, ports.SendMessageParams{
		SenderID:     senderID,
		ReceiverID:   req.ReceiverID,
		Content:      req.Content,
		MessageType:  messageType,
		CreatedAtUTC: s.nowFn(),
	})
	if err != nil {
		return domain.Message{}, err
	}

	s.invalidateUnread(ctx, req.ReceiverID)

	if s.notifier != nil {
		s.notifier.NotifyUser(req.ReceiverID, "new_message", msg)
	}
	s.publishMessageSent(ctx, msg)
	return msg, nil
}

// History returns up to limit messages between the two users, ascending by
// creation time. The cap keeps the newest records and silently drops older
// ones; callers needing more must live without cursors on this surface.
func (s *Service) History(ctx context.Context, userID, counterpartID uuid.UUID, limit int) ([]domain.Message, error) {
	if limit <= 0 || limit > domain.HistoryLimit {
		limit = domain.HistoryLimit
	}
	return s.messages.History(ctx, userID, counterpartID, limit)
}

// MarkThreadRead flips every unread message from counterpart to reader.
// Repeated calls are no-ops beyond the first. No read-receipt event reaches the
// counterpart; that is an explicit non-goal of this surface.
func (s *Service) MarkThreadRead(ctx context.Context, reader, counterpart uuid.UUID) error {
	if _, err := s.messages.MarkThreadRead(ctx, reader, counterpart); err != nil {
		return err
	}
	s.invalidateUnread(ctx, reader)
	return nil
}

// UnreadCount totals unread messages addressed to reader across all
// counterparts, served from the cache tier when warm.
func (s *Service) UnreadCount(ctx context.Context, reader uuid.UUID) (int, error) {
	if s.unreadCache != nil {
		if count, ok, err := s.unreadCache.Get(ctx, reader); err == nil && ok {
			return count, nil
		}
	}
	count, err := s.messages.UnreadCount(ctx, reader)
	if err != nil {
		return 0, err
	}
	if s.unreadCache != nil {
		_ = s.unreadCache.Set(ctx, reader, count, s.cfg.UnreadCacheTTL)
	}
	return count, nil
}

// ListChatUsers builds the conversation index: every counterpart with a shared
// message, annotated with the latest message and unread count, most recent
// first. The counterpart set comes from a targeted distinct query and each
// summary from indexed lookups; the store is never scanned whole.
func (s *Service) ListChatUsers(ctx context.Context, userID uuid.UUID) ([]domain.ConversationSummary, error) {
	counterpartIDs, err := s.messages.Counterparts(ctx, userID)
	if err != nil {
		return nil, err
	}

	summaries := make([]domain.ConversationSummary, 0, len(counterpartIDs))
	for _, id := range counterpartIDs {
		if id == userID {
			continue
		}
		summary, err := s.summarize(ctx, userID, id)
		if err != nil {
			return nil, err
		}
		summaries = append(summaries, summary)
	}

	sortSummaries(summaries)
	return summaries, nil
}

// SearchChatUsers finds candidate counterparts by email substring and annotates
// them like ListChatUsers. Queries under two characters are rejected before any
// store access.
func (s *Service) SearchChatUsers(ctx context.Context, userID uuid.UUID, query string) ([]domain.ConversationSummary, error) {
	if err := domain.ValidateSearchQuery(query); err != nil {
		return nil, err
	}

	matches, err := s.users.SearchByEmail(ctx, strings.TrimSpace(query), userID, 10)
	if err != nil {
		return nil, err
	}

	results := make([]domain.ConversationSummary, 0, len(matches))
	for _, match := range matches {
		lastMessage, unread, err := s.messages.Summary(ctx, userID, match.UserID)
		if err != nil {
			return nil, err
		}
		results = append(results, domain.ConversationSummary{
			User:        match,
			LastMessage: lastMessage,
			UnreadCount: unread,
		})
	}
	return results, nil
}

func (s *Service) summarize(ctx context.Context, userID, counterpartID uuid.UUID) (domain.ConversationSummary, error) {
	counterpart, err := s.users.GetByID(ctx, counterpartID)
	if err != nil {
		return domain.ConversationSummary{}, err
	}
	lastMessage, unread, err := s.messages.Summary(ctx, userID, counterpartID)
	if err != nil {
		return domain.ConversationSummary{}, err
	}
	return domain.ConversationSummary{
		User:        counterpart.Public(),
		LastMessage: lastMessage,
		UnreadCount: unread,
	}, nil
}

// sortSummaries orders by last-message recency descending; entries without a
// last message sort after everything else in no further guaranteed order.
func sortSummaries(summaries []domain.ConversationSummary) {
	sort.SliceStable(summaries, func(i, j int) bool {
		a, b := summaries[i].LastMessage, summaries[j].LastMessage
		switch {
		case a == nil:
			return false
		case b == nil:
			return true
		default:
			return a.CreatedAt.After(b.CreatedAt)
		}
	})
}

func (s *Service) invalidateUnread(ctx context.Context, userID uuid.UUID) {
	if s.unreadCache == nil {
		return
	}
	_ = s.unreadCache.Invalidate(ctx, userID)
}

func (s *Service) publishMessageSent(ctx context.Context, msg domain.Message) {
	if s.publisher == nil {
		return
	}
	payload, _ := json.Marshal(map[string]any{
		"message_id":  msg.MessageID.String(),
		"sender_id":   msg.SenderID.String(),
		"receiver_id": msg.ReceiverID.String(),
		"sent_at":     msg.CreatedAt,
	})
	if err := s.publisher.Publish(ctx, ports.EventChatMessageSent, payload, msg.ReceiverID.String()); err != nil {
		slog.Default().WarnContext(ctx, "publish chat.message.sent failed",
			"service", "workhub-api",
			"module", "application",
			"layer", "application",
			"operation", "publish_event",
			"outcome", "failure",
			"error", err.Error(),
		)
	}
}
