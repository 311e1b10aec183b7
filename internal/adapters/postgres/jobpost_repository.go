package postgres

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/workhub/workhub/internal/domain"
	"github.com/workhub/workhub/internal/ports"
)

type jobPostRepository struct {
	db *gorm.DB
}

func (r *jobPostRepository) CreateWithSkills(ctx context.Context, post domain.JobPost, skills []domain.JobSkill) (domain.JobPost, error) {
	rec := jobPostModel{
		ID:                  post.JobPostID,
		CompanyID:           post.CompanyID,
		CreatedBy:           post.CreatedBy,
		Title:               post.Title,
		Description:         post.Description,
		Requirements:        post.Requirements,
		Responsibilities:    post.Responsibilities,
		Benefits:            post.Benefits,
		CategoryID:          post.CategoryID,
		JobType:             post.JobType,
		EmploymentType:      post.EmploymentType,
		ExperienceLevel:     post.ExperienceLevel,
		Location:            post.Location,
		SalaryMin:           post.SalaryMin,
		SalaryMax:           post.SalaryMax,
		Currency:            post.Currency,
		IsSalaryNegotiable:  post.IsSalaryNegotiable,
		ApplicationDeadline: post.ApplicationDeadline,
		Status:              post.Status,
		CreatedAt:           post.CreatedAt,
		UpdatedAt:           post.UpdatedAt,
	}
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Company", "Category", "Skills").Create(&rec).Error; err != nil {
			return err
		}
		for _, s := range skills {
			link := jobSkillModel{
				JobPostID:  rec.ID,
				SkillID:    s.SkillID,
				IsRequired: s.IsRequired,
			}
			if err := tx.Omit("Skill").Create(&link).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return domain.JobPost{}, err
	}
	return r.GetByID(ctx, rec.ID, false)
}

func (r *jobPostRepository) List(ctx context.Context, filter domain.JobFilter) (ports.JobPostPage, error) {
	base := r.db.WithContext(ctx).Model(&jobPostModel{}).Where("status = ?", domain.JobStatusActive)

	if filter.Search != "" {
		like := likeContains(filter.Search)
		base = base.Where(`title ILIKE ? ESCAPE '\' OR description ILIKE ? ESCAPE '\'`, like, like)
	}
	if filter.Location != "" {
		base = base.Where(`location ILIKE ? ESCAPE '\'`, likeContains(filter.Location))
	}
	if filter.JobType != "" {
		base = base.Where("job_type = ?", filter.JobType)
	}
	if filter.ExperienceLevel != "" {
		base = base.Where("experience_level = ?", filter.ExperienceLevel)
	}
	if filter.CategoryID != uuid.Nil {
		base = base.Where("category_id = ?", filter.CategoryID)
	}
	if filter.CompanyID != uuid.Nil {
		base = base.Where("company_id = ?", filter.CompanyID)
	}
	if filter.SalaryMin > 0 {
		base = base.Where("salary_max IS NULL OR salary_max >= ?", filter.SalaryMin)
	}
	if filter.SalaryMax > 0 {
		base = base.Where("salary_min IS NULL OR salary_min <= ?", filter.SalaryMax)
	}

	var total int64
	if err := base.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return ports.JobPostPage{}, err
	}

	order := "created_at"
	switch filter.SortBy {
	case "salary":
		order = "salary_min"
	case "views":
		order = "views_count"
	case "created_at", "":
		order = "created_at"
	}
	if filter.SortDesc {
		order += " DESC"
	} else {
		order += " ASC"
	}

	offset := (filter.Page - 1) * filter.PageSize
	var recs []jobPostModel
	err := base.Session(&gorm.Session{}).
		Preload("Company").
		Preload("Category").
		Preload("Skills").
		Preload("Skills.Skill").
		Order(order).
		Limit(filter.PageSize).
		Offset(offset).
		Find(&recs).Error
	if err != nil {
		return ports.JobPostPage{}, err
	}

	jobs := make([]domain.JobPost, 0, len(recs))
	for _, rec := range recs {
		jobs = append(jobs, toDomainJobPost(rec))
	}
	return ports.JobPostPage{Jobs: jobs, TotalItems: int(total)}, nil
}

func (r *jobPostRepository) GetByID(ctx context.Context, jobPostID uuid.UUID, countView bool) (domain.JobPost, error) {
	if countView {
		// Counted before the read so the returned record reflects this view.
		err := r.db.WithContext(ctx).
			Model(&jobPostModel{}).
			Where("id = ?", jobPostID).
			UpdateColumn("views_count", gorm.Expr("views_count + 1")).Error
		if err != nil {
			return domain.JobPost{}, err
		}
	}

	var rec jobPostModel
	err := r.db.WithContext(ctx).
		Preload("Company").
		Preload("Category").
		Preload("Skills").
		Preload("Skills.Skill").
		Take(&rec, "id = ?", jobPostID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.JobPost{}, domain.ErrNotFound
		}
		return domain.JobPost{}, err
	}
	return toDomainJobPost(rec), nil
}

func (r *jobPostRepository) ListByCompany(ctx context.Context, companyID uuid.UUID, activeOnly bool) ([]domain.JobPost, error) {
	q := r.db.WithContext(ctx).
		Preload("Company").
		Preload("Category").
		Preload("Skills").
		Preload("Skills.Skill").
		Where("company_id = ?", companyID)
	if activeOnly {
		q = q.Where("status = ?", domain.JobStatusActive)
	}
	var recs []jobPostModel
	if err := q.Order("created_at DESC").Find(&recs).Error; err != nil {
		return nil, err
	}
	jobs := make([]domain.JobPost, 0, len(recs))
	for _, rec := range recs {
		jobs = append(jobs, toDomainJobPost(rec))
	}
	return jobs, nil
}
