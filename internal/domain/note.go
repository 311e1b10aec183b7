package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Note is a private per-user note. Ownership is enforced at the repository
// level: every note query is scoped by UserID.
type Note struct {
	NoteID    uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"userId"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Tags      []string  `json:"tags"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func ValidateNote(title string) error {
	if strings.TrimSpace(title) == "" {
		return fmt.Errorf("%w: title is required", ErrInvalidInput)
	}
	return nil
}
