package postgres

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/workhub/workhub/internal/domain"
)

type companyRepository struct {
	db *gorm.DB
}

func (r *companyRepository) Create(ctx context.Context, company domain.Company) (domain.Company, error) {
	rec := companyModel{
		ID:           company.CompanyID,
		Name:         company.Name,
		Description:  company.Description,
		Industry:     company.Industry,
		Size:         company.Size,
		Website:      company.Website,
		LogoURL:      company.LogoURL,
		Headquarters: company.Headquarters,
		FoundedYear:  company.FoundedYear,
		Status:       company.Status,
		CreatedBy:    company.CreatedBy,
		CreatedAt:    company.CreatedAt,
		UpdatedAt:    company.UpdatedAt,
	}
	if err := r.db.WithContext(ctx).Create(&rec).Error; err != nil {
		if isUniqueViolation(err) {
			return domain.Company{}, domain.ErrConflict
		}
		return domain.Company{}, err
	}
	return toDomainCompany(rec), nil
}

func (r *companyRepository) List(ctx context.Context) ([]domain.Company, error) {
	var recs []companyModel
	if err := r.db.WithContext(ctx).Order("name ASC").Find(&recs).Error; err != nil {
		return nil, err
	}
	companies := make([]domain.Company, 0, len(recs))
	for _, rec := range recs {
		companies = append(companies, toDomainCompany(rec))
	}
	return companies, nil
}

func (r *companyRepository) GetByID(ctx context.Context, companyID uuid.UUID) (domain.Company, error) {
	var rec companyModel
	if err := r.db.WithContext(ctx).Take(&rec, "id = ?", companyID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.Company{}, domain.ErrNotFound
		}
		return domain.Company{}, err
	}
	return toDomainCompany(rec), nil
}

type categoryRepository struct {
	db *gorm.DB
}

func (r *categoryRepository) Create(ctx context.Context, category domain.JobCategory) (domain.JobCategory, error) {
	rec := jobCategoryModel{
		ID:          category.CategoryID,
		Name:        category.Name,
		Description: category.Description,
		ParentID:    category.ParentID,
		CreatedAt:   category.CreatedAt,
		UpdatedAt:   category.UpdatedAt,
	}
	if err := r.db.WithContext(ctx).Create(&rec).Error; err != nil {
		if isUniqueViolation(err) {
			return domain.JobCategory{}, domain.ErrConflict
		}
		return domain.JobCategory{}, err
	}
	return toDomainCategory(rec), nil
}

func (r *categoryRepository) List(ctx context.Context) ([]domain.JobCategory, error) {
	var recs []jobCategoryModel
	if err := r.db.WithContext(ctx).Order("name ASC").Find(&recs).Error; err != nil {
		return nil, err
	}
	categories := make([]domain.JobCategory, 0, len(recs))
	for _, rec := range recs {
		categories = append(categories, toDomainCategory(rec))
	}
	return categories, nil
}

func (r *categoryRepository) GetByID(ctx context.Context, categoryID uuid.UUID) (domain.JobCategory, error) {
	var rec jobCategoryModel
	if err := r.db.WithContext(ctx).Take(&rec, "id = ?", categoryID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.JobCategory{}, domain.ErrNotFound
		}
		return domain.JobCategory{}, err
	}
	return toDomainCategory(rec), nil
}

func (r *categoryRepository) ListChildren(ctx context.Context, parentID uuid.UUID) ([]domain.JobCategory, error) {
	var recs []jobCategoryModel
	err := r.db.WithContext(ctx).
		Where("parent_id = ?", parentID).
		Order("name ASC").
		Find(&recs).Error
	if err != nil {
		return nil, err
	}
	children := make([]domain.JobCategory, 0, len(recs))
	for _, rec := range recs {
		children = append(children, toDomainCategory(rec))
	}
	return children, nil
}

func (r *categoryRepository) Update(ctx context.Context, category domain.JobCategory) (domain.JobCategory, error) {
	res := r.db.WithContext(ctx).
		Model(&jobCategoryModel{}).
		Where("id = ?", category.CategoryID).
		Updates(map[string]any{
			"name":        category.Name,
			"description": category.Description,
			"parent_id":   category.ParentID,
			"updated_at":  category.UpdatedAt,
		})
	if res.Error != nil {
		if isUniqueViolation(res.Error) {
			return domain.JobCategory{}, domain.ErrConflict
		}
		return domain.JobCategory{}, res.Error
	}
	if res.RowsAffected == 0 {
		return domain.JobCategory{}, domain.ErrNotFound
	}
	return r.GetByID(ctx, category.CategoryID)
}

// Delete refuses while subcategories or job posts still reference the record.
func (r *categoryRepository) Delete(ctx context.Context, categoryID uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var children int64
		if err := tx.Model(&jobCategoryModel{}).Where("parent_id = ?", categoryID).Count(&children).Error; err != nil {
			return err
		}
		if children > 0 {
			return domain.ErrConflict
		}
		var posts int64
		if err := tx.Model(&jobPostModel{}).Where("category_id = ?", categoryID).Count(&posts).Error; err != nil {
			return err
		}
		if posts > 0 {
			return domain.ErrConflict
		}
		res := tx.Where("id = ?", categoryID).Delete(&jobCategoryModel{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return domain.ErrNotFound
		}
		return nil
	})
}

type skillRepository struct {
	db *gorm.DB
}

func (r *skillRepository) Create(ctx context.Context, skill domain.Skill) (domain.Skill, error) {
	rec := skillModel{
		ID:        skill.SkillID,
		Name:      skill.Name,
		Category:  skill.Category,
		CreatedAt: skill.CreatedAt,
	}
	if err := r.db.WithContext(ctx).Create(&rec).Error; err != nil {
		if isUniqueViolation(err) {
			return domain.Skill{}, domain.ErrConflict
		}
		return domain.Skill{}, err
	}
	return toDomainSkill(rec), nil
}

func (r *skillRepository) List(ctx context.Context, category string) ([]domain.Skill, error) {
	q := r.db.WithContext(ctx)
	if category != "" {
		q = q.Where("category = ?", category)
	}
	var recs []skillModel
	if err := q.Order("name ASC").Find(&recs).Error; err != nil {
		return nil, err
	}
	skills := make([]domain.Skill, 0, len(recs))
	for _, rec := range recs {
		skills = append(skills, toDomainSkill(rec))
	}
	return skills, nil
}

func (r *skillRepository) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.Skill, error) {
	if len(ids) == 0 {
		return []domain.Skill{}, nil
	}
	var recs []skillModel
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&recs).Error; err != nil {
		return nil, err
	}
	skills := make([]domain.Skill, 0, len(recs))
	for _, rec := range recs {
		skills = append(skills, toDomainSkill(rec))
	}
	return skills, nil
}
