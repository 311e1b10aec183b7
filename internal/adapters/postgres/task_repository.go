package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"

	"github.com/workhub/workhub/internal/domain"
)

type taskRepository struct {
	db *gorm.DB
}

func (r *taskRepository) Create(ctx context.Context, task domain.Task) (domain.Task, error) {
	rec := taskModel{
		ID:          task.TaskID,
		UserID:      task.UserID,
		Title:       task.Title,
		Description: task.Description,
		Status:      task.Status,
		Priority:    task.Priority,
		DueDate:     task.DueDate,
		Tags:        pq.StringArray(task.Tags),
		CreatedAt:   task.CreatedAt,
		UpdatedAt:   task.UpdatedAt,
	}
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Owner", "Collaborators").Create(&rec).Error; err != nil {
			return err
		}
		for _, c := range task.Collaborators {
			link := taskCollaboratorModel{
				TaskID:  rec.ID,
				UserID:  c.User.UserID,
				Role:    c.Role,
				AddedAt: c.AddedAt,
			}
			if err := tx.Omit("User").Create(&link).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return domain.Task{}, err
	}
	return r.GetByID(ctx, rec.ID)
}

func (r *taskRepository) ListVisible(ctx context.Context, userID uuid.UUID, filter domain.TaskFilter) ([]domain.Task, error) {
	q := r.db.WithContext(ctx).
		Preload("Owner").
		Preload("Collaborators").
		Preload("Collaborators.User").
		Where("user_id = ? OR id IN (SELECT task_id FROM task_collaborators WHERE user_id = ?)", userID, userID)

	if filter.Status != "" {
		q = q.Where("status = ?", filter.Status)
	}
	if filter.Priority != "" {
		q = q.Where("priority = ?", filter.Priority)
	}
	if filter.Keyword != "" {
		like := likeContains(filter.Keyword)
		q = q.Where(`title ILIKE ? ESCAPE '\' OR description ILIKE ? ESCAPE '\'`, like, like)
	}
	if filter.Collaborator != uuid.Nil {
		q = q.Where("id IN (SELECT task_id FROM task_collaborators WHERE user_id = ?)", filter.Collaborator)
	}

	var recs []taskModel
	if err := q.Order("updated_at DESC").Find(&recs).Error; err != nil {
		return nil, err
	}
	tasks := make([]domain.Task, 0, len(recs))
	for _, rec := range recs {
		tasks = append(tasks, toDomainTask(rec))
	}
	return tasks, nil
}

func (r *taskRepository) GetByID(ctx context.Context, taskID uuid.UUID) (domain.Task, error) {
	var rec taskModel
	err := r.db.WithContext(ctx).
		Preload("Owner").
		Preload("Collaborators").
		Preload("Collaborators.User").
		Take(&rec, "id = ?", taskID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.Task{}, domain.ErrNotFound
		}
		return domain.Task{}, err
	}
	return toDomainTask(rec), nil
}

// Update writes the scalar columns and replaces the collaborator link rows in
// one transaction. Callers pass the full collaborator set, so the rows are
// rebuilt rather than diffed.
func (r *taskRepository) Update(ctx context.Context, task domain.Task) (domain.Task, error) {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&taskModel{}).
			Where("id = ?", task.TaskID).
			Updates(map[string]any{
				"title":       task.Title,
				"description": task.Description,
				"status":      task.Status,
				"priority":    task.Priority,
				"due_date":    task.DueDate,
				"tags":        pq.StringArray(task.Tags),
				"updated_at":  task.UpdatedAt,
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return domain.ErrNotFound
		}
		if err := tx.Where("task_id = ?", task.TaskID).Delete(&taskCollaboratorModel{}).Error; err != nil {
			return err
		}
		for _, c := range task.Collaborators {
			link := taskCollaboratorModel{
				TaskID:  task.TaskID,
				UserID:  c.User.UserID,
				Role:    c.Role,
				AddedAt: c.AddedAt,
			}
			if err := tx.Omit("User").Create(&link).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return domain.Task{}, err
	}
	return r.GetByID(ctx, task.TaskID)
}

func (r *taskRepository) Delete(ctx context.Context, taskID uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("task_id = ?", taskID).Delete(&taskCollaboratorModel{}).Error; err != nil {
			return err
		}
		res := tx.Where("id = ?", taskID).Delete(&taskModel{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return domain.ErrNotFound
		}
		return nil
	})
}

func (r *taskRepository) AddCollaborator(ctx context.Context, taskID, userID uuid.UUID, role string, addedAt time.Time) error {
	link := taskCollaboratorModel{
		TaskID:  taskID,
		UserID:  userID,
		Role:    role,
		AddedAt: addedAt,
	}
	if err := r.db.WithContext(ctx).Omit("User").Create(&link).Error; err != nil {
		if isUniqueViolation(err) {
			return domain.ErrConflict
		}
		return err
	}
	return nil
}

func (r *taskRepository) RemoveCollaborator(ctx context.Context, taskID, userID uuid.UUID) error {
	res := r.db.WithContext(ctx).
		Where("task_id = ? AND user_id = ?", taskID, userID).
		Delete(&taskCollaboratorModel{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}
