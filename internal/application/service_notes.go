package application

import (
	"context"

	"github.com/google/uuid"
	"github.com/workhub/workhub/internal/domain"
)

// ListNotes returns the caller's notes, newest first, optionally narrowed to a tag.
func (s *Service) ListNotes(ctx context.Context, userID uuid.UUID, tag string) ([]domain.Note, error) {
	return s.notes.ListByUser(ctx, userID, tag)
}

func (s *Service) CreateNote(ctx context.Context, userID uuid.UUID, req CreateNoteRequest) (domain.Note, error) {
	if err := domain.ValidateNote(req.Title); err != nil {
		return domain.Note{}, err
	}
	now := s.nowFn()
	tags := req.Tags
	if tags == nil {
		tags = []string{}
	}
	return s.notes.Create(ctx, domain.Note{
		NoteID:    uuid.New(),
		UserID:    userID,
		Title:     req.Title,
		Content:   req.Content,
		Tags:      tags,
		CreatedAt: now,
		UpdatedAt: now,
	})
}

// UpdateNote applies only the fields present in the request. A note owned by
// someone else is indistinguishable from a missing one.
func (s *Service) UpdateNote(ctx context.Context, userID, noteID uuid.UUID, req UpdateNoteRequest) (domain.Note, error) {
	note, err := s.notes.GetByID(ctx, noteID, userID)
	if err != nil {
		return domain.Note{}, err
	}
	if req.Title != nil {
		if err := domain.ValidateNote(*req.Title); err != nil {
			return domain.Note{}, err
		}
		note.Title = *req.Title
	}
	if req.Content != nil {
		note.Content = *req.Content
	}
	if req.Tags != nil {
		note.Tags = *req.Tags
	}
	note.UpdatedAt = s.nowFn()
	return s.notes.Update(ctx, note)
}

func (s *Service) DeleteNote(ctx context.Context, userID, noteID uuid.UUID) error {
	return s.notes.Delete(ctx, noteID, userID)
}
