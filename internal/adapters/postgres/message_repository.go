package postgres

import (
	"context"
	"errors"
	"sort"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/workhub/workhub/internal/domain"
	"github.com/workhub/workhub/internal/ports"
)

type messageRepository struct {
	db *gorm.DB
}

func (r *messageRepository) Create(ctx context.Context, params ports.SendMessageParams) (domain.Message, error) {
	rec := messageModel{
		ID:          uuid.New(),
		SenderID:    params.SenderID,
		ReceiverID:  params.ReceiverID,
		Content:     params.Content,
		MessageType: params.MessageType,
		CreatedAt:   params.CreatedAtUTC,
	}
	if err := r.db.WithContext(ctx).Omit("Sender", "Receiver").Create(&rec).Error; err != nil {
		return domain.Message{}, err
	}

	var loaded messageModel
	err := r.db.WithContext(ctx).
		Preload("Sender").
		Preload("Receiver").
		Take(&loaded, "id = ?", rec.ID).Error
	if err != nil {
		return domain.Message{}, err
	}
	return toDomainMessage(loaded), nil
}

// History reads the newest `limit` messages between the pair and returns them
// ascending so clients append in render order.
func (r *messageRepository) History(ctx context.Context, userA, userB uuid.UUID, limit int) ([]domain.Message, error) {
	var recs []messageModel
	err := r.db.WithContext(ctx).
		Preload("Sender").
		Preload("Receiver").
		Where("(sender_id = ? AND receiver_id = ?) OR (sender_id = ? AND receiver_id = ?)",
			userA, userB, userB, userA).
		Order("created_at DESC").
		Limit(limit).
		Find(&recs).Error
	if err != nil {
		return nil, err
	}

	messages := make([]domain.Message, 0, len(recs))
	for _, rec := range recs {
		messages = append(messages, toDomainMessage(rec))
	}
	sort.Slice(messages, func(i, j int) bool {
		return messages[i].CreatedAt.Before(messages[j].CreatedAt)
	})
	return messages, nil
}

func (r *messageRepository) MarkThreadRead(ctx context.Context, reader, counterpart uuid.UUID) (int64, error) {
	res := r.db.WithContext(ctx).
		Model(&messageModel{}).
		Where("sender_id = ? AND receiver_id = ? AND is_read = false", counterpart, reader).
		Update("is_read", true)
	if res.Error != nil {
		return 0, res.Error
	}
	return res.RowsAffected, nil
}

func (r *messageRepository) UnreadCount(ctx context.Context, reader uuid.UUID) (int, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&messageModel{}).
		Where("receiver_id = ? AND is_read = false", reader).
		Count(&count).Error
	if err != nil {
		return 0, err
	}
	return int(count), nil
}

// Counterparts resolves the distinct other side of every thread touching
// userID. Both directions hit the composite sender/receiver indexes, so cost
// scales with the user's own traffic rather than the whole table.
func (r *messageRepository) Counterparts(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	err := r.db.WithContext(ctx).
		Raw(`SELECT DISTINCT CASE WHEN sender_id = @uid THEN receiver_id ELSE sender_id END
		     FROM messages
		     WHERE sender_id = @uid OR receiver_id = @uid`,
			map[string]any{"uid": userID}).
		Scan(&ids).Error
	if err != nil {
		return nil, err
	}
	return ids, nil
}

func (r *messageRepository) Summary(ctx context.Context, userID, counterpartID uuid.UUID) (*domain.LastMessage, int, error) {
	var rec messageModel
	err := r.db.WithContext(ctx).
		Where("(sender_id = ? AND receiver_id = ?) OR (sender_id = ? AND receiver_id = ?)",
			userID, counterpartID, counterpartID, userID).
		Order("created_at DESC").
		Take(&rec).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, 0, nil
		}
		return nil, 0, err
	}

	var unread int64
	err = r.db.WithContext(ctx).
		Model(&messageModel{}).
		Where("sender_id = ? AND receiver_id = ? AND is_read = false", counterpartID, userID).
		Count(&unread).Error
	if err != nil {
		return nil, 0, err
	}

	last := &domain.LastMessage{
		Content:   rec.Content,
		Sender:    rec.SenderID.String(),
		CreatedAt: rec.CreatedAt,
	}
	return last, int(unread), nil
}
