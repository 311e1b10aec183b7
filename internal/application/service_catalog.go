package application

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/workhub/workhub/internal/domain"
)

// CreateCompany registers a company owned by the caller, active by default.
func (s *Service) CreateCompany(ctx context.Context, userID uuid.UUID, req CreateCompanyRequest) (domain.Company, error) {
	if err := domain.ValidateCompany(req.Name, req.Size); err != nil {
		return domain.Company{}, err
	}
	now := s.nowFn()
	return s.companies.Create(ctx, domain.Company{
		CompanyID:    uuid.New(),
		Name:         strings.TrimSpace(req.Name),
		Description:  strings.TrimSpace(req.Description),
		Industry:     strings.TrimSpace(req.Industry),
		Size:         req.Size,
		Website:      strings.TrimSpace(req.Website),
		LogoURL:      strings.TrimSpace(req.LogoURL),
		Headquarters: strings.TrimSpace(req.Headquarters),
		FoundedYear:  req.FoundedYear,
		Status:       "active",
		CreatedBy:    userID,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
}

func (s *Service) ListCompanies(ctx context.Context) ([]domain.Company, error) {
	return s.companies.List(ctx)
}

// CreateCategory optionally attaches to a parent, which must exist.
func (s *Service) CreateCategory(ctx context.Context, req CreateCategoryRequest) (domain.JobCategory, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return domain.JobCategory{}, fmt.Errorf("%w: name is required", domain.ErrInvalidInput)
	}
	if req.ParentID != nil {
		if _, err := s.categories.GetByID(ctx, *req.ParentID); err != nil {
			return domain.JobCategory{}, fmt.Errorf("%w: parent category not found", domain.ErrNotFound)
		}
	}
	now := s.nowFn()
	return s.categories.Create(ctx, domain.JobCategory{
		CategoryID:  uuid.New(),
		Name:        name,
		Description: strings.TrimSpace(req.Description),
		ParentID:    req.ParentID,
		CreatedAt:   now,
		UpdatedAt:   now,
	})
}

// CreateCategoriesBulk shares CreateCategory semantics per entry; failures are
// reported per index and do not abort the batch.
func (s *Service) CreateCategoriesBulk(ctx context.Context, reqs []CreateCategoryRequest) ([]domain.JobCategory, []error) {
	created := make([]domain.JobCategory, 0, len(reqs))
	failures := make([]error, len(reqs))
	for i, req := range reqs {
		category, err := s.CreateCategory(ctx, req)
		if err != nil {
			failures[i] = err
			continue
		}
		created = append(created, category)
	}
	return created, failures
}

func (s *Service) ListCategories(ctx context.Context) ([]domain.JobCategory, error) {
	return s.categories.List(ctx)
}

// GetCategory loads one category with its direct subcategories attached.
func (s *Service) GetCategory(ctx context.Context, categoryID uuid.UUID) (domain.JobCategory, error) {
	category, err := s.categories.GetByID(ctx, categoryID)
	if err != nil {
		return domain.JobCategory{}, err
	}
	children, err := s.categories.ListChildren(ctx, categoryID)
	if err != nil {
		return domain.JobCategory{}, err
	}
	category.Subcategories = children
	return category, nil
}

func (s *Service) UpdateCategory(ctx context.Context, categoryID uuid.UUID, req UpdateCategoryRequest) (domain.JobCategory, error) {
	category, err := s.categories.GetByID(ctx, categoryID)
	if err != nil {
		return domain.JobCategory{}, err
	}
	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return domain.JobCategory{}, fmt.Errorf("%w: name is required", domain.ErrInvalidInput)
		}
		category.Name = name
	}
	if req.Description != nil {
		category.Description = strings.TrimSpace(*req.Description)
	}
	if req.ParentID != nil {
		if *req.ParentID == categoryID {
			return domain.JobCategory{}, fmt.Errorf("%w: category cannot be its own parent", domain.ErrInvalidInput)
		}
		if _, err := s.categories.GetByID(ctx, *req.ParentID); err != nil {
			return domain.JobCategory{}, fmt.Errorf("%w: parent category not found", domain.ErrNotFound)
		}
		category.ParentID = req.ParentID
	}
	category.UpdatedAt = s.nowFn()
	return s.categories.Update(ctx, category)
}

func (s *Service) DeleteCategory(ctx context.Context, categoryID uuid.UUID) error {
	return s.categories.Delete(ctx, categoryID)
}

// CategoryTree returns the full hierarchy: root categories with children nested
// one level deep, built from a single listing.
func (s *Service) CategoryTree(ctx context.Context) ([]domain.JobCategory, error) {
	all, err := s.categories.List(ctx)
	if err != nil {
		return nil, err
	}
	childrenOf := make(map[uuid.UUID][]domain.JobCategory)
	roots := make([]domain.JobCategory, 0)
	for _, c := range all {
		if c.ParentID == nil {
			roots = append(roots, c)
			continue
		}
		childrenOf[*c.ParentID] = append(childrenOf[*c.ParentID], c)
	}
	for i := range roots {
		roots[i].Subcategories = childrenOf[roots[i].CategoryID]
	}
	return roots, nil
}

func (s *Service) CreateSkill(ctx context.Context, req CreateSkillRequest) (domain.Skill, error) {
	if err := domain.ValidateSkill(req.Name, req.Category); err != nil {
		return domain.Skill{}, err
	}
	category := req.Category
	if category == "" {
		category = "other"
	}
	return s.skills.Create(ctx, domain.Skill{
		SkillID:   uuid.New(),
		Name:      strings.TrimSpace(req.Name),
		Category:  category,
		CreatedAt: s.nowFn(),
	})
}

func (s *Service) CreateSkillsBulk(ctx context.Context, reqs []CreateSkillRequest) ([]domain.Skill, []error) {
	created := make([]domain.Skill, 0, len(reqs))
	failures := make([]error, len(reqs))
	for i, req := range reqs {
		skill, err := s.CreateSkill(ctx, req)
		if err != nil {
			failures[i] = err
			continue
		}
		created = append(created, skill)
	}
	return created, failures
}

func (s *Service) ListSkills(ctx context.Context, category string) ([]domain.Skill, error) {
	return s.skills.List(ctx, category)
}
