package postgres

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"

	"github.com/workhub/workhub/internal/domain"
)

type noteRepository struct {
	db *gorm.DB
}

func (r *noteRepository) Create(ctx context.Context, note domain.Note) (domain.Note, error) {
	rec := noteModel{
		ID:        note.NoteID,
		UserID:    note.UserID,
		Title:     note.Title,
		Content:   note.Content,
		Tags:      pq.StringArray(note.Tags),
		CreatedAt: note.CreatedAt,
		UpdatedAt: note.UpdatedAt,
	}
	if err := r.db.WithContext(ctx).Create(&rec).Error; err != nil {
		return domain.Note{}, err
	}
	return toDomainNote(rec), nil
}

func (r *noteRepository) ListByUser(ctx context.Context, userID uuid.UUID, tag string) ([]domain.Note, error) {
	q := r.db.WithContext(ctx).Where("user_id = ?", userID)
	if tag != "" {
		q = q.Where("? = ANY(tags)", tag)
	}
	var recs []noteModel
	if err := q.Order("updated_at DESC").Find(&recs).Error; err != nil {
		return nil, err
	}
	notes := make([]domain.Note, 0, len(recs))
	for _, rec := range recs {
		notes = append(notes, toDomainNote(rec))
	}
	return notes, nil
}

func (r *noteRepository) GetByID(ctx context.Context, noteID, userID uuid.UUID) (domain.Note, error) {
	var rec noteModel
	err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", noteID, userID).
		Take(&rec).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.Note{}, domain.ErrNotFound
		}
		return domain.Note{}, err
	}
	return toDomainNote(rec), nil
}

func (r *noteRepository) Update(ctx context.Context, note domain.Note) (domain.Note, error) {
	res := r.db.WithContext(ctx).
		Model(&noteModel{}).
		Where("id = ? AND user_id = ?", note.NoteID, note.UserID).
		Updates(map[string]any{
			"title":      note.Title,
			"content":    note.Content,
			"tags":       pq.StringArray(note.Tags),
			"updated_at": note.UpdatedAt,
		})
	if res.Error != nil {
		return domain.Note{}, res.Error
	}
	if res.RowsAffected == 0 {
		return domain.Note{}, domain.ErrNotFound
	}
	return r.GetByID(ctx, note.NoteID, note.UserID)
}

func (r *noteRepository) Delete(ctx context.Context, noteID, userID uuid.UUID) error {
	res := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", noteID, userID).
		Delete(&noteModel{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}
