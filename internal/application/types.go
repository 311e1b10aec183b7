package application

import (
	"time"

	"github.com/google/uuid"
	"github.com/workhub/workhub/internal/domain"
)

type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type GoogleAuthRequest struct {
	Credential string `json:"credential"`
}

// AuthResponse is the shared shape for login and Google auth: a bearer token
// plus the identity it was issued for.
type AuthResponse struct {
	Token string            `json:"token"`
	User  domain.PublicUser `json:"user"`
}

type SendMessageRequest struct {
	ReceiverID  uuid.UUID `json:"receiverId"`
	Content     string    `json:"content"`
	MessageType string    `json:"messageType"`
}

type CreateNoteRequest struct {
	Title   string   `json:"title"`
	Content string   `json:"content"`
	Tags    []string `json:"tags"`
}

// UpdateNoteRequest uses pointers so absent fields leave the note untouched.
type UpdateNoteRequest struct {
	Title   *string   `json:"title"`
	Content *string   `json:"content"`
	Tags    *[]string `json:"tags"`
}

type CollaboratorInput struct {
	UserID uuid.UUID `json:"userId"`
	Role   string    `json:"role"`
}

type CreateTaskRequest struct {
	Title         string              `json:"title"`
	Description   string              `json:"description"`
	Status        string              `json:"status"`
	Priority      string              `json:"priority"`
	DueDate       *time.Time          `json:"dueDate"`
	Tags          []string            `json:"tags"`
	Collaborators []CollaboratorInput `json:"collaborators"`
}

type UpdateTaskRequest struct {
	Title         *string              `json:"title"`
	Description   *string              `json:"description"`
	Status        *string              `json:"status"`
	Priority      *string              `json:"priority"`
	DueDate       *time.Time           `json:"dueDate"`
	Tags          *[]string            `json:"tags"`
	Collaborators *[]CollaboratorInput `json:"collaborators"`
}

type CreateCompanyRequest struct {
	Name         string `json:"name"`
	Description  string `json:"description"`
	Industry     string `json:"industry"`
	Size         string `json:"size"`
	Website      string `json:"website"`
	LogoURL      string `json:"logoUrl"`
	Headquarters string `json:"headquarters"`
	FoundedYear  int    `json:"foundedYear"`
}

type CreateCategoryRequest struct {
	Name        string     `json:"name"`
	Description string     `json:"description"`
	ParentID    *uuid.UUID `json:"parentId"`
}

type UpdateCategoryRequest struct {
	Name        *string    `json:"name"`
	Description *string    `json:"description"`
	ParentID    *uuid.UUID `json:"parentId"`
}

type CreateSkillRequest struct {
	Name     string `json:"name"`
	Category string `json:"category"`
}

type JobSkillInput struct {
	SkillID    uuid.UUID `json:"skillId"`
	IsRequired bool      `json:"isRequired"`
}

type CreateJobPostRequest struct {
	CompanyID           uuid.UUID       `json:"companyId"`
	Title               string          `json:"title"`
	Description         string          `json:"description"`
	Requirements        string          `json:"requirements"`
	Responsibilities    string          `json:"responsibilities"`
	Benefits            string          `json:"benefits"`
	CategoryID          *uuid.UUID      `json:"categoryId"`
	JobType             string          `json:"jobType"`
	EmploymentType      string          `json:"employmentType"`
	ExperienceLevel     string          `json:"experienceLevel"`
	Location            string          `json:"location"`
	SalaryMin           *int            `json:"salaryMin"`
	SalaryMax           *int            `json:"salaryMax"`
	Currency            string          `json:"currency"`
	IsSalaryNegotiable  bool            `json:"isSalaryNegotiable"`
	ApplicationDeadline *time.Time      `json:"applicationDeadline"`
	Status              string          `json:"status"`
	Skills              []JobSkillInput `json:"skills"`
}

// JobListResponse mirrors the public listing payload: one page of posts plus
// pagination bookkeeping.
type JobListResponse struct {
	Jobs       []domain.JobPost `json:"jobs"`
	Pagination Pagination       `json:"pagination"`
}

type Pagination struct {
	CurrentPage  int `json:"currentPage"`
	TotalPages   int `json:"totalPages"`
	TotalItems   int `json:"totalItems"`
	ItemsPerPage int `json:"itemsPerPage"`
}
