package http

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/workhub/workhub/internal/application"
	"github.com/workhub/workhub/internal/domain"
)

func (h *Handler) listTasks(w http.ResponseWriter, r *http.Request) {
	claims, _ := claimsFromContext(r.Context())

	filter := domain.TaskFilter{
		Status:   r.URL.Query().Get("status"),
		Priority: r.URL.Query().Get("priority"),
		Keyword:  r.URL.Query().Get("search"),
	}
	if raw := r.URL.Query().Get("collaborator"); raw != "" {
		if id, err := uuid.Parse(raw); err == nil {
			filter.Collaborator = id
		}
	}

	tasks, err := h.service.ListTasks(r.Context(), claims.UserID, filter)
	if err != nil {
		writeMappedError(r.Context(), w, "list_tasks", err)
		return
	}
	writeSuccess(w, http.StatusOK, tasks)
}

func (h *Handler) getTask(w http.ResponseWriter, r *http.Request) {
	claims, _ := claimsFromContext(r.Context())
	taskID, err := uuidParam(r, "taskId")
	if err != nil {
		writeBadIDError(r.Context(), w, "get_task", "task id")
		return
	}

	task, err := h.service.GetTask(r.Context(), claims.UserID, taskID)
	if err != nil {
		writeMappedError(r.Context(), w, "get_task", err)
		return
	}
	writeSuccess(w, http.StatusOK, task)
}

func (h *Handler) createTask(w http.ResponseWriter, r *http.Request) {
	claims, _ := claimsFromContext(r.Context())

	var req application.CreateTaskRequest
	if err := decodeBody(r, &req); err != nil {
		writeValidationError(r.Context(), w, "create_task", err)
		return
	}

	task, err := h.service.CreateTask(r.Context(), claims.UserID, req)
	if err != nil {
		writeMappedError(r.Context(), w, "create_task", err)
		return
	}
	writeSuccess(w, http.StatusCreated, task)
}

func (h *Handler) updateTask(w http.ResponseWriter, r *http.Request) {
	claims, _ := claimsFromContext(r.Context())
	taskID, err := uuidParam(r, "taskId")
	if err != nil {
		writeBadIDError(r.Context(), w, "update_task", "task id")
		return
	}

	var req application.UpdateTaskRequest
	if err := decodeBody(r, &req); err != nil {
		writeValidationError(r.Context(), w, "update_task", err)
		return
	}

	task, err := h.service.UpdateTask(r.Context(), claims.UserID, taskID, req)
	if err != nil {
		writeMappedError(r.Context(), w, "update_task", err)
		return
	}
	writeSuccess(w, http.StatusOK, task)
}

func (h *Handler) updateTaskStatus(w http.ResponseWriter, r *http.Request) {
	claims, _ := claimsFromContext(r.Context())
	taskID, err := uuidParam(r, "taskId")
	if err != nil {
		writeBadIDError(r.Context(), w, "update_task_status", "task id")
		return
	}

	var req struct {
		Status string `json:"status"`
	}
	if err := decodeBody(r, &req); err != nil {
		writeValidationError(r.Context(), w, "update_task_status", err)
		return
	}

	task, err := h.service.UpdateTaskStatus(r.Context(), claims.UserID, taskID, req.Status)
	if err != nil {
		writeMappedError(r.Context(), w, "update_task_status", err)
		return
	}
	writeSuccess(w, http.StatusOK, task)
}

func (h *Handler) deleteTask(w http.ResponseWriter, r *http.Request) {
	claims, _ := claimsFromContext(r.Context())
	taskID, err := uuidParam(r, "taskId")
	if err != nil {
		writeBadIDError(r.Context(), w, "delete_task", "task id")
		return
	}

	if err := h.service.DeleteTask(r.Context(), claims.UserID, taskID); err != nil {
		writeMappedError(r.Context(), w, "delete_task", err)
		return
	}
	writeMessage(w, http.StatusOK, "task deleted")
}

func (h *Handler) addCollaborator(w http.ResponseWriter, r *http.Request) {
	claims, _ := claimsFromContext(r.Context())
	taskID, err := uuidParam(r, "taskId")
	if err != nil {
		writeBadIDError(r.Context(), w, "add_collaborator", "task id")
		return
	}

	var req application.CollaboratorInput
	if err := decodeBody(r, &req); err != nil {
		writeValidationError(r.Context(), w, "add_collaborator", err)
		return
	}

	task, err := h.service.AddCollaborator(r.Context(), claims.UserID, taskID, req)
	if err != nil {
		writeMappedError(r.Context(), w, "add_collaborator", err)
		return
	}
	writeSuccess(w, http.StatusOK, task)
}

func (h *Handler) removeCollaborator(w http.ResponseWriter, r *http.Request) {
	claims, _ := claimsFromContext(r.Context())
	taskID, err := uuidParam(r, "taskId")
	if err != nil {
		writeBadIDError(r.Context(), w, "remove_collaborator", "task id")
		return
	}
	userID, err := uuidParam(r, "userId")
	if err != nil {
		writeBadIDError(r.Context(), w, "remove_collaborator", "user id")
		return
	}

	task, err := h.service.RemoveCollaborator(r.Context(), claims.UserID, taskID, userID)
	if err != nil {
		writeMappedError(r.Context(), w, "remove_collaborator", err)
		return
	}
	writeSuccess(w, http.StatusOK, task)
}
