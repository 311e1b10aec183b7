package application

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/workhub/workhub/internal/domain"
)

const (
	defaultJobPageSize = 10
	maxJobPageSize     = 100
)

// ListJobs serves the public listing: active posts only, filtered, paginated.
func (s *Service) ListJobs(ctx context.Context, filter domain.JobFilter) (JobListResponse, error) {
	if filter.Page <= 0 {
		filter.Page = 1
	}
	if filter.PageSize <= 0 {
		filter.PageSize = defaultJobPageSize
	}
	if filter.PageSize > maxJobPageSize {
		filter.PageSize = maxJobPageSize
	}
	if filter.SortBy == "" {
		filter.SortBy = "created_at"
		filter.SortDesc = true
	}

	page, err := s.jobPosts.List(ctx, filter)
	if err != nil {
		return JobListResponse{}, err
	}

	totalPages := page.TotalItems / filter.PageSize
	if page.TotalItems%filter.PageSize != 0 {
		totalPages++
	}
	return JobListResponse{
		Jobs: page.Jobs,
		Pagination: Pagination{
			CurrentPage:  filter.Page,
			TotalPages:   totalPages,
			TotalItems:   page.TotalItems,
			ItemsPerPage: filter.PageSize,
		},
	}, nil
}

// GetJob returns the full post with company, category, and skills resolved.
// Public detail reads bump the view counter.
func (s *Service) GetJob(ctx context.Context, jobPostID uuid.UUID) (domain.JobPost, error) {
	return s.jobPosts.GetByID(ctx, jobPostID, true)
}

func (s *Service) ListJobsByCompany(ctx context.Context, companyID uuid.UUID) ([]domain.JobPost, error) {
	if _, err := s.companies.GetByID(ctx, companyID); err != nil {
		return nil, err
	}
	return s.jobPosts.ListByCompany(ctx, companyID, true)
}

// CreateJob validates references (company, category, skills) before the
// transactional insert of the post plus its skill links.
func (s *Service) CreateJob(ctx context.Context, userID uuid.UUID, req CreateJobPostRequest) (domain.JobPost, error) {
	status := req.Status
	if status == "" {
		status = domain.JobStatusDraft
	}
	employmentType := req.EmploymentType
	if employmentType == "" {
		employmentType = "permanent"
	}
	currency := req.Currency
	if currency == "" {
		currency = "USD"
	}

	now := s.nowFn()
	post := domain.JobPost{
		JobPostID:           uuid.New(),
		CompanyID:           req.CompanyID,
		CreatedBy:           userID,
		Title:               req.Title,
		Description:         req.Description,
		Requirements:        req.Requirements,
		Responsibilities:    req.Responsibilities,
		Benefits:            req.Benefits,
		CategoryID:          req.CategoryID,
		JobType:             req.JobType,
		EmploymentType:      employmentType,
		ExperienceLevel:     req.ExperienceLevel,
		Location:            req.Location,
		SalaryMin:           req.SalaryMin,
		SalaryMax:           req.SalaryMax,
		Currency:            currency,
		IsSalaryNegotiable:  req.IsSalaryNegotiable,
		ApplicationDeadline: req.ApplicationDeadline,
		Status:              status,
		CreatedAt:           now,
		UpdatedAt:           now,
	}
	if err := domain.ValidateJobPost(post); err != nil {
		return domain.JobPost{}, err
	}

	if _, err := s.companies.GetByID(ctx, req.CompanyID); err != nil {
		return domain.JobPost{}, fmt.Errorf("%w: company not found", domain.ErrNotFound)
	}
	if req.CategoryID != nil {
		if _, err := s.categories.GetByID(ctx, *req.CategoryID); err != nil {
			return domain.JobPost{}, fmt.Errorf("%w: category not found", domain.ErrNotFound)
		}
	}

	skills, err := s.resolveJobSkills(ctx, req.Skills)
	if err != nil {
		return domain.JobPost{}, err
	}

	return s.jobPosts.CreateWithSkills(ctx, post, skills)
}

// CreateJobsBulk inserts posts one by one, reporting per-index failures
// without aborting the batch.
func (s *Service) CreateJobsBulk(ctx context.Context, userID uuid.UUID, reqs []CreateJobPostRequest) ([]domain.JobPost, []error) {
	created := make([]domain.JobPost, 0, len(reqs))
	failures := make([]error, len(reqs))
	for i, req := range reqs {
		post, err := s.CreateJob(ctx, userID, req)
		if err != nil {
			failures[i] = err
			continue
		}
		created = append(created, post)
	}
	return created, failures
}

func (s *Service) resolveJobSkills(ctx context.Context, inputs []JobSkillInput) ([]domain.JobSkill, error) {
	if len(inputs) == 0 {
		return nil, nil
	}
	ids := make([]uuid.UUID, 0, len(inputs))
	required := make(map[uuid.UUID]bool, len(inputs))
	for _, input := range inputs {
		ids = append(ids, input.SkillID)
		required[input.SkillID] = input.IsRequired
	}
	found, err := s.skills.GetByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	if len(found) != len(required) {
		return nil, fmt.Errorf("%w: one or more skills not found", domain.ErrNotFound)
	}
	out := make([]domain.JobSkill, 0, len(found))
	for _, skill := range found {
		out = append(out, domain.JobSkill{Skill: skill, IsRequired: required[skill.SkillID]})
	}
	return out, nil
}
