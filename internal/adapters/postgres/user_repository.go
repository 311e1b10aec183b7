package postgres

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/workhub/workhub/internal/domain"
	"github.com/workhub/workhub/internal/ports"
)

type userRepository struct {
	db *gorm.DB
}

func (r *userRepository) Create(ctx context.Context, params ports.CreateUserParams) (domain.User, error) {
	rec := userModel{
		ID:           uuid.New(),
		Username:     params.Username,
		Email:        params.Email,
		PasswordHash: params.PasswordHash,
		AuthProvider: params.AuthProvider,
		CreatedAt:    params.CreatedAtUTC,
		UpdatedAt:    params.CreatedAtUTC,
	}
	if err := r.db.WithContext(ctx).Create(&rec).Error; err != nil {
		if isUniqueViolation(err) {
			return domain.User{}, domain.ErrConflict
		}
		return domain.User{}, err
	}
	return toDomainUser(rec), nil
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (domain.User, error) {
	var rec userModel
	if err := r.db.WithContext(ctx).Where("email = ?", email).Take(&rec).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.User{}, domain.ErrNotFound
		}
		return domain.User{}, err
	}
	return toDomainUser(rec), nil
}

func (r *userRepository) GetByID(ctx context.Context, userID uuid.UUID) (domain.User, error) {
	var rec userModel
	if err := r.db.WithContext(ctx).Where("id = ?", userID).Take(&rec).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.User{}, domain.ErrNotFound
		}
		return domain.User{}, err
	}
	return toDomainUser(rec), nil
}

func (r *userRepository) SearchByEmail(ctx context.Context, query string, excludeID uuid.UUID, limit int) ([]domain.PublicUser, error) {
	var recs []userModel
	err := r.db.WithContext(ctx).
		Where(`email ILIKE ? ESCAPE '\'`, likeContains(query)).
		Where("id <> ?", excludeID).
		Order("username ASC").
		Limit(limit).
		Find(&recs).Error
	if err != nil {
		return nil, err
	}
	users := make([]domain.PublicUser, 0, len(recs))
	for _, rec := range recs {
		users = append(users, toPublicUser(rec))
	}
	return users, nil
}
