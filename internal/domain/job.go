package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Job post enumerations, kept as plain strings validated on write so the read
// path stays a straight projection.
const (
	JobTypeFullTime   = "full-time"
	JobTypePartTime   = "part-time"
	JobTypeContract   = "contract"
	JobTypeFreelance  = "freelance"
	JobTypeInternship = "internship"

	JobStatusDraft    = "draft"
	JobStatusPending  = "pending"
	JobStatusActive   = "active"
	JobStatusClosed   = "closed"
	JobStatusRejected = "rejected"
)

var (
	jobTypes         = map[string]bool{JobTypeFullTime: true, JobTypePartTime: true, JobTypeContract: true, JobTypeFreelance: true, JobTypeInternship: true}
	employmentTypes  = map[string]bool{"permanent": true, "temporary": true, "contract": true}
	experienceLevels = map[string]bool{"entry": true, "junior": true, "mid": true, "senior": true, "lead": true, "executive": true}
	jobStatuses      = map[string]bool{JobStatusDraft: true, JobStatusPending: true, JobStatusActive: true, JobStatusClosed: true, JobStatusRejected: true}
	currencies       = map[string]bool{"USD": true, "VND": true, "EUR": true, "GBP": true}
	companySizes     = map[string]bool{"1-10": true, "11-50": true, "51-200": true, "201-500": true, "501-1000": true, "1000+": true}
	skillCategories  = map[string]bool{"technical": true, "soft": true, "language": true, "certification": true, "other": true}
)

type Company struct {
	CompanyID    uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Description  string    `json:"description"`
	Industry     string    `json:"industry"`
	Size         string    `json:"size"`
	Website      string    `json:"website"`
	LogoURL      string    `json:"logoUrl"`
	Headquarters string    `json:"headquarters"`
	FoundedYear  int       `json:"foundedYear"`
	Status       string    `json:"status"`
	CreatedBy    uuid.UUID `json:"createdBy"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

type JobCategory struct {
	CategoryID    uuid.UUID     `json:"id"`
	Name          string        `json:"name"`
	Description   string        `json:"description"`
	ParentID      *uuid.UUID    `json:"parentId"`
	Subcategories []JobCategory `json:"subcategories,omitempty"`
	CreatedAt     time.Time     `json:"createdAt"`
	UpdatedAt     time.Time     `json:"updatedAt"`
}

type Skill struct {
	SkillID   uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Category  string    `json:"category"`
	CreatedAt time.Time `json:"createdAt"`
}

// JobSkill annotates a skill attached to a post.
type JobSkill struct {
	Skill
	IsRequired bool `json:"isRequired"`
}

type JobPost struct {
	JobPostID           uuid.UUID  `json:"id"`
	CompanyID           uuid.UUID  `json:"companyId"`
	Company             *Company   `json:"company,omitempty"`
	CreatedBy           uuid.UUID  `json:"createdBy"`
	Title               string     `json:"title"`
	Description         string     `json:"description"`
	Requirements        string     `json:"requirements"`
	Responsibilities    string     `json:"responsibilities"`
	Benefits            string     `json:"benefits"`
	CategoryID          *uuid.UUID `json:"categoryId"`
	Category            *JobCategory `json:"category,omitempty"`
	JobType             string     `json:"jobType"`
	EmploymentType      string     `json:"employmentType"`
	ExperienceLevel     string     `json:"experienceLevel"`
	Location            string     `json:"location"`
	SalaryMin           *int       `json:"salaryMin"`
	SalaryMax           *int       `json:"salaryMax"`
	Currency            string     `json:"currency"`
	IsSalaryNegotiable  bool       `json:"isSalaryNegotiable"`
	ApplicationDeadline *time.Time `json:"applicationDeadline"`
	Status              string     `json:"status"`
	ViewsCount          int        `json:"viewsCount"`
	ApplicationsCount   int        `json:"applicationsCount"`
	SavedCount          int        `json:"savedCount"`
	Skills              []JobSkill `json:"skills"`
	CreatedAt           time.Time  `json:"createdAt"`
	UpdatedAt           time.Time  `json:"updatedAt"`
}

// JobFilter narrows the public listing. Zero values mean "no constraint".
type JobFilter struct {
	Search          string
	Location        string
	JobType         string
	ExperienceLevel string
	CategoryID      uuid.UUID
	CompanyID       uuid.UUID
	SalaryMin       int
	SalaryMax       int
	SortBy          string
	SortDesc        bool
	Page            int
	PageSize        int
}

func ValidateCompany(name, size string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("%w: company name is required", ErrInvalidInput)
	}
	if size != "" && !companySizes[size] {
		return fmt.Errorf("%w: unknown company size %q", ErrInvalidInput, size)
	}
	return nil
}

func ValidateSkill(name, category string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("%w: skill name is required", ErrInvalidInput)
	}
	if category != "" && !skillCategories[category] {
		return fmt.Errorf("%w: unknown skill category %q", ErrInvalidInput, category)
	}
	return nil
}

func ValidateJobPost(p JobPost) error {
	if strings.TrimSpace(p.Title) == "" {
		return fmt.Errorf("%w: title is required", ErrInvalidInput)
	}
	if strings.TrimSpace(p.Description) == "" {
		return fmt.Errorf("%w: description is required", ErrInvalidInput)
	}
	if strings.TrimSpace(p.Location) == "" {
		return fmt.Errorf("%w: location is required", ErrInvalidInput)
	}
	if p.CompanyID == uuid.Nil {
		return fmt.Errorf("%w: company is required", ErrInvalidInput)
	}
	if !jobTypes[p.JobType] {
		return fmt.Errorf("%w: unknown job type %q", ErrInvalidInput, p.JobType)
	}
	if p.EmploymentType != "" && !employmentTypes[p.EmploymentType] {
		return fmt.Errorf("%w: unknown employment type %q", ErrInvalidInput, p.EmploymentType)
	}
	if !experienceLevels[p.ExperienceLevel] {
		return fmt.Errorf("%w: unknown experience level %q", ErrInvalidInput, p.ExperienceLevel)
	}
	if p.Status != "" && !jobStatuses[p.Status] {
		return fmt.Errorf("%w: unknown status %q", ErrInvalidInput, p.Status)
	}
	if p.Currency != "" && !currencies[p.Currency] {
		return fmt.Errorf("%w: unknown currency %q", ErrInvalidInput, p.Currency)
	}
	if p.SalaryMin != nil && p.SalaryMax != nil && *p.SalaryMin > *p.SalaryMax {
		return fmt.Errorf("%w: salary_min exceeds salary_max", ErrInvalidInput)
	}
	return nil
}
