package application

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/workhub/workhub/internal/domain"
)

// ListTasks returns tasks the caller owns or collaborates on, filtered and
// newest first.
func (s *Service) ListTasks(ctx context.Context, userID uuid.UUID, filter domain.TaskFilter) ([]domain.Task, error) {
	return s.tasks.ListVisible(ctx, userID, filter)
}

func (s *Service) GetTask(ctx context.Context, userID, taskID uuid.UUID) (domain.Task, error) {
	task, err := s.tasks.GetByID(ctx, taskID)
	if err != nil {
		return domain.Task{}, err
	}
	if !task.IsVisibleTo(userID) {
		return domain.Task{}, domain.ErrNotFound
	}
	return task, nil
}

// CreateTask validates collaborator references up front; unknown users are
// silently skipped to match the tolerant behavior clients already rely on.
func (s *Service) CreateTask(ctx context.Context, userID uuid.UUID, req CreateTaskRequest) (domain.Task, error) {
	if err := domain.ValidateTask(req.Title, req.Status, req.Priority); err != nil {
		return domain.Task{}, err
	}

	status := req.Status
	if status == "" {
		status = domain.TaskStatusPending
	}
	priority := req.Priority
	if priority == "" {
		priority = domain.TaskPriorityMedium
	}
	now := s.nowFn()

	collaborators, err := s.resolveCollaborators(ctx, userID, req.Collaborators)
	if err != nil {
		return domain.Task{}, err
	}

	owner, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return domain.Task{}, err
	}

	tags := req.Tags
	if tags == nil {
		tags = []string{}
	}
	return s.tasks.Create(ctx, domain.Task{
		TaskID:        uuid.New(),
		UserID:        userID,
		Owner:         owner.Public(),
		Title:         req.Title,
		Description:   req.Description,
		Status:        status,
		Priority:      priority,
		DueDate:       req.DueDate,
		Tags:          tags,
		Collaborators: collaborators,
		CreatedAt:     now,
		UpdatedAt:     now,
	})
}

// UpdateTask lets the owner or an editor/admin collaborator change fields; the
// collaborator list itself only moves when the owner sends it.
func (s *Service) UpdateTask(ctx context.Context, userID, taskID uuid.UUID, req UpdateTaskRequest) (domain.Task, error) {
	task, err := s.tasks.GetByID(ctx, taskID)
	if err != nil {
		return domain.Task{}, err
	}
	if !task.CanEdit(userID) {
		return domain.Task{}, domain.ErrNotFound
	}

	if req.Title != nil {
		task.Title = *req.Title
	}
	if req.Description != nil {
		task.Description = *req.Description
	}
	if req.Status != nil {
		if !domain.ValidTaskStatus(*req.Status) {
			return domain.Task{}, fmt.Errorf("%w: unknown status %q", domain.ErrInvalidInput, *req.Status)
		}
		task.Status = *req.Status
	}
	if req.Priority != nil {
		if !domain.ValidTaskPriority(*req.Priority) {
			return domain.Task{}, fmt.Errorf("%w: unknown priority %q", domain.ErrInvalidInput, *req.Priority)
		}
		task.Priority = *req.Priority
	}
	if req.DueDate != nil {
		task.DueDate = req.DueDate
	}
	if req.Tags != nil {
		task.Tags = *req.Tags
	}
	if req.Collaborators != nil && task.UserID == userID {
		collaborators, err := s.resolveCollaborators(ctx, userID, *req.Collaborators)
		if err != nil {
			return domain.Task{}, err
		}
		task.Collaborators = collaborators
	}
	if err := domain.ValidateTask(task.Title, task.Status, task.Priority); err != nil {
		return domain.Task{}, err
	}

	task.UpdatedAt = s.nowFn()
	return s.tasks.Update(ctx, task)
}

// UpdateTaskStatus is the narrow status-only transition used by board views.
// Any collaborator may move the status, viewers included; full field edits
// stay role-gated in UpdateTask.
func (s *Service) UpdateTaskStatus(ctx context.Context, userID, taskID uuid.UUID, status string) (domain.Task, error) {
	if !domain.ValidTaskStatus(status) {
		return domain.Task{}, fmt.Errorf("%w: unknown status %q", domain.ErrInvalidInput, status)
	}
	task, err := s.tasks.GetByID(ctx, taskID)
	if err != nil {
		return domain.Task{}, err
	}
	if !task.IsVisibleTo(userID) {
		return domain.Task{}, domain.ErrNotFound
	}
	task.Status = status
	task.UpdatedAt = s.nowFn()
	return s.tasks.Update(ctx, task)
}

// DeleteTask is owner-only.
func (s *Service) DeleteTask(ctx context.Context, userID, taskID uuid.UUID) error {
	task, err := s.tasks.GetByID(ctx, taskID)
	if err != nil {
		return err
	}
	if task.UserID != userID {
		return domain.ErrNotFound
	}
	return s.tasks.Delete(ctx, taskID)
}

// AddCollaborator is owner-only; readding an existing collaborator is rejected.
func (s *Service) AddCollaborator(ctx context.Context, ownerID, taskID uuid.UUID, input CollaboratorInput) (domain.Task, error) {
	role := input.Role
	if role == "" {
		role = domain.CollabRoleViewer
	}
	if !domain.ValidCollabRole(role) {
		return domain.Task{}, fmt.Errorf("%w: unknown role %q", domain.ErrInvalidInput, role)
	}

	task, err := s.tasks.GetByID(ctx, taskID)
	if err != nil {
		return domain.Task{}, err
	}
	if task.UserID != ownerID {
		return domain.Task{}, domain.ErrNotFound
	}
	if _, err := s.users.GetByID(ctx, input.UserID); err != nil {
		return domain.Task{}, err
	}
	for _, c := range task.Collaborators {
		if c.User.UserID == input.UserID {
			return domain.Task{}, fmt.Errorf("%w: user is already a collaborator", domain.ErrConflict)
		}
	}

	if err := s.tasks.AddCollaborator(ctx, taskID, input.UserID, role, s.nowFn()); err != nil {
		return domain.Task{}, err
	}
	return s.tasks.GetByID(ctx, taskID)
}

func (s *Service) RemoveCollaborator(ctx context.Context, ownerID, taskID, userID uuid.UUID) (domain.Task, error) {
	task, err := s.tasks.GetByID(ctx, taskID)
	if err != nil {
		return domain.Task{}, err
	}
	if task.UserID != ownerID {
		return domain.Task{}, domain.ErrNotFound
	}
	if err := s.tasks.RemoveCollaborator(ctx, taskID, userID); err != nil {
		return domain.Task{}, err
	}
	return s.tasks.GetByID(ctx, taskID)
}

func (s *Service) resolveCollaborators(ctx context.Context, ownerID uuid.UUID, inputs []CollaboratorInput) ([]domain.Collaborator, error) {
	collaborators := make([]domain.Collaborator, 0, len(inputs))
	now := s.nowFn()
	for _, input := range inputs {
		if input.UserID == ownerID {
			continue
		}
		role := input.Role
		if role == "" {
			role = domain.CollabRoleViewer
		}
		if !domain.ValidCollabRole(role) {
			return nil, fmt.Errorf("%w: unknown role %q", domain.ErrInvalidInput, role)
		}
		user, err := s.users.GetByID(ctx, input.UserID)
		if err != nil {
			// Unknown collaborators are dropped rather than failing the task.
			continue
		}
		collaborators = append(collaborators, domain.Collaborator{
			User:    user.Public(),
			Role:    role,
			AddedAt: now,
		})
	}
	return collaborators, nil
}
