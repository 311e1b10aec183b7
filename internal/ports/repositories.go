package ports

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/workhub/workhub/internal/domain"
)

// CreateUserParams carries everything the identity store needs for an insert.
// Timestamps are assigned by the application so clock behavior stays testable.
type CreateUserParams struct {
	Username     string
	Email        string
	PasswordHash string
	AuthProvider string
	CreatedAtUTC time.Time
}

type UserRepository interface {
	Create(ctx context.Context, params CreateUserParams) (domain.User, error)
	GetByEmail(ctx context.Context, email string) (domain.User, error)
	GetByID(ctx context.Context, userID uuid.UUID) (domain.User, error)
	// SearchByEmail matches email substrings case-insensitively, excluding
	// excludeID, capped at limit, ordered by username.
	SearchByEmail(ctx context.Context, query string, excludeID uuid.UUID, limit int) ([]domain.PublicUser, error)
}

// SendMessageParams is the insert shape for the message store. The repository
// returns the record enriched with sender/receiver identity in one round trip.
type SendMessageParams struct {
	SenderID     uuid.UUID
	ReceiverID   uuid.UUID
	Content      string
	MessageType  string
	CreatedAtUTC time.Time
}

type MessageRepository interface {
	Create(ctx context.Context, params SendMessageParams) (domain.Message, error)
	// History returns messages between the two users in either direction,
	// ascending by creation time, keeping only the newest `limit` records.
	History(ctx context.Context, userA, userB uuid.UUID, limit int) ([]domain.Message, error)
	// MarkThreadRead flips unread messages from counterpart to reader and
	// reports how many rows changed. Idempotent by construction.
	MarkThreadRead(ctx context.Context, reader, counterpart uuid.UUID) (int64, error)
	UnreadCount(ctx context.Context, reader uuid.UUID) (int, error)
	// Counterparts returns the distinct set of users who share at least one
	// message with userID. Implementations must not scan the full store.
	Counterparts(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error)
	// Summary computes the last message and unread count for one counterpart.
	Summary(ctx context.Context, userID, counterpartID uuid.UUID) (*domain.LastMessage, int, error)
}

type NoteRepository interface {
	Create(ctx context.Context, note domain.Note) (domain.Note, error)
	ListByUser(ctx context.Context, userID uuid.UUID, tag string) ([]domain.Note, error)
	GetByID(ctx context.Context, noteID, userID uuid.UUID) (domain.Note, error)
	Update(ctx context.Context, note domain.Note) (domain.Note, error)
	Delete(ctx context.Context, noteID, userID uuid.UUID) error
}

type TaskRepository interface {
	Create(ctx context.Context, task domain.Task) (domain.Task, error)
	ListVisible(ctx context.Context, userID uuid.UUID, filter domain.TaskFilter) ([]domain.Task, error)
	// GetByID loads the task with owner and collaborators resolved; access
	// control is the application's job.
	GetByID(ctx context.Context, taskID uuid.UUID) (domain.Task, error)
	Update(ctx context.Context, task domain.Task) (domain.Task, error)
	Delete(ctx context.Context, taskID uuid.UUID) error
	AddCollaborator(ctx context.Context, taskID, userID uuid.UUID, role string, addedAt time.Time) error
	RemoveCollaborator(ctx context.Context, taskID, userID uuid.UUID) error
}

type CompanyRepository interface {
	Create(ctx context.Context, company domain.Company) (domain.Company, error)
	List(ctx context.Context) ([]domain.Company, error)
	GetByID(ctx context.Context, companyID uuid.UUID) (domain.Company, error)
}

type CategoryRepository interface {
	Create(ctx context.Context, category domain.JobCategory) (domain.JobCategory, error)
	List(ctx context.Context) ([]domain.JobCategory, error)
	GetByID(ctx context.Context, categoryID uuid.UUID) (domain.JobCategory, error)
	ListChildren(ctx context.Context, parentID uuid.UUID) ([]domain.JobCategory, error)
	Update(ctx context.Context, category domain.JobCategory) (domain.JobCategory, error)
	// Delete fails with domain.ErrConflict while subcategories or job posts
	// still reference the category.
	Delete(ctx context.Context, categoryID uuid.UUID) error
}

type SkillRepository interface {
	Create(ctx context.Context, skill domain.Skill) (domain.Skill, error)
	List(ctx context.Context, category string) ([]domain.Skill, error)
	GetByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.Skill, error)
}

// JobPostPage pairs a listing slice with the total match count for pagination.
type JobPostPage struct {
	Jobs       []domain.JobPost
	TotalItems int
}

type JobPostRepository interface {
	// CreateWithSkills inserts the post and its skill links in one transaction.
	CreateWithSkills(ctx context.Context, post domain.JobPost, skills []domain.JobSkill) (domain.JobPost, error)
	List(ctx context.Context, filter domain.JobFilter) (JobPostPage, error)
	// GetByID resolves company, category, and skills, and increments the view
	// counter as a side effect of the public detail read.
	GetByID(ctx context.Context, jobPostID uuid.UUID, countView bool) (domain.JobPost, error)
	ListByCompany(ctx context.Context, companyID uuid.UUID, activeOnly bool) ([]domain.JobPost, error)
}
