package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Task statuses and priorities mirror the client vocabulary; unknown values are
// rejected at validation rather than stored.
const (
	TaskStatusPending    = "pending"
	TaskStatusInProgress = "in-progress"
	TaskStatusCompleted  = "completed"

	TaskPriorityLow    = "low"
	TaskPriorityMedium = "medium"
	TaskPriorityHigh   = "high"
)

// Collaborator roles. Editors and admins may update task fields; only the owner
// manages the collaborator list itself.
const (
	CollabRoleViewer = "viewer"
	CollabRoleEditor = "editor"
	CollabRoleAdmin  = "admin"
)

type Collaborator struct {
	User    PublicUser `json:"user"`
	Role    string     `json:"role"`
	AddedAt time.Time  `json:"addedAt"`
}

// Task is a shared work item. The owner (UserID) always has full access;
// collaborators see it in listings and act according to their role.
type Task struct {
	TaskID        uuid.UUID      `json:"id"`
	UserID        uuid.UUID      `json:"userId"`
	Owner         PublicUser     `json:"owner"`
	Title         string         `json:"title"`
	Description   string         `json:"description"`
	Status        string         `json:"status"`
	Priority      string         `json:"priority"`
	DueDate       *time.Time     `json:"dueDate"`
	Tags          []string       `json:"tags"`
	Collaborators []Collaborator `json:"collaborators"`
	CreatedAt     time.Time      `json:"createdAt"`
	UpdatedAt     time.Time      `json:"updatedAt"`
}

// TaskFilter narrows task listings. Keyword matches title or description,
// case-insensitively.
type TaskFilter struct {
	Status       string
	Priority     string
	Keyword      string
	Collaborator uuid.UUID
}

// CanEdit reports whether userID may modify task fields.
func (t Task) CanEdit(userID uuid.UUID) bool {
	if t.UserID == userID {
		return true
	}
	for _, c := range t.Collaborators {
		if c.User.UserID == userID && (c.Role == CollabRoleEditor || c.Role == CollabRoleAdmin) {
			return true
		}
	}
	return false
}

// IsVisibleTo reports whether userID is the owner or any collaborator.
func (t Task) IsVisibleTo(userID uuid.UUID) bool {
	if t.UserID == userID {
		return true
	}
	for _, c := range t.Collaborators {
		if c.User.UserID == userID {
			return true
		}
	}
	return false
}

func ValidTaskStatus(status string) bool {
	switch status {
	case TaskStatusPending, TaskStatusInProgress, TaskStatusCompleted:
		return true
	}
	return false
}

func ValidTaskPriority(priority string) bool {
	switch priority {
	case TaskPriorityLow, TaskPriorityMedium, TaskPriorityHigh:
		return true
	}
	return false
}

func ValidCollabRole(role string) bool {
	switch role {
	case CollabRoleViewer, CollabRoleEditor, CollabRoleAdmin:
		return true
	}
	return false
}

func ValidateTask(title, status, priority string) error {
	if strings.TrimSpace(title) == "" {
		return fmt.Errorf("%w: title is required", ErrInvalidInput)
	}
	if status != "" && !ValidTaskStatus(status) {
		return fmt.Errorf("%w: unknown status %q", ErrInvalidInput, status)
	}
	if priority != "" && !ValidTaskPriority(priority) {
		return fmt.Errorf("%w: unknown priority %q", ErrInvalidInput, priority)
	}
	return nil
}
