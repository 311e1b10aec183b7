package http

import (
	"net/http"

	"github.com/workhub/workhub/internal/application"
	"github.com/workhub/workhub/internal/domain"
)

func (h *Handler) listChatUsers(w http.ResponseWriter, r *http.Request) {
	claims, _ := claimsFromContext(r.Context())

	summaries, err := h.service.ListChatUsers(r.Context(), claims.UserID)
	if err != nil {
		writeMappedError(r.Context(), w, "list_chat_users", err)
		return
	}
	writeSuccess(w, http.StatusOK, summaries)
}

func (h *Handler) searchChatUsers(w http.ResponseWriter, r *http.Request) {
	claims, _ := claimsFromContext(r.Context())
	query := r.URL.Query().Get("email")

	summaries, err := h.service.SearchChatUsers(r.Context(), claims.UserID, query)
	if err != nil {
		writeMappedError(r.Context(), w, "search_chat_users", err)
		return
	}
	writeSuccess(w, http.StatusOK, summaries)
}

func (h *Handler) chatHistory(w http.ResponseWriter, r *http.Request) {
	claims, _ := claimsFromContext(r.Context())
	counterpartID, err := uuidParam(r, "userId")
	if err != nil {
		writeBadIDError(r.Context(), w, "chat_history", "user id")
		return
	}

	messages, err := h.service.History(r.Context(), claims.UserID, counterpartID, domain.HistoryLimit)
	if err != nil {
		writeMappedError(r.Context(), w, "chat_history", err)
		return
	}
	writeSuccess(w, http.StatusOK, messages)
}

func (h *Handler) sendMessage(w http.ResponseWriter, r *http.Request) {
	claims, _ := claimsFromContext(r.Context())

	var req application.SendMessageRequest
	if err := decodeBody(r, &req); err != nil {
		writeValidationError(r.Context(), w, "send_message", err)
		return
	}

	msg, err := h.service.SendMessage(r.Context(), claims.UserID, req)
	if err != nil {
		writeMappedError(r.Context(), w, "send_message", err)
		return
	}
	writeSuccess(w, http.StatusCreated, msg)
}

func (h *Handler) markThreadRead(w http.ResponseWriter, r *http.Request) {
	claims, _ := claimsFromContext(r.Context())
	senderID, err := uuidParam(r, "senderId")
	if err != nil {
		writeBadIDError(r.Context(), w, "mark_thread_read", "sender id")
		return
	}

	if err := h.service.MarkThreadRead(r.Context(), claims.UserID, senderID); err != nil {
		writeMappedError(r.Context(), w, "mark_thread_read", err)
		return
	}
	writeMessage(w, http.StatusOK, "messages marked as read")
}

func (h *Handler) unreadCount(w http.ResponseWriter, r *http.Request) {
	claims, _ := claimsFromContext(r.Context())

	count, err := h.service.UnreadCount(r.Context(), claims.UserID)
	if err != nil {
		writeMappedError(r.Context(), w, "unread_count", err)
		return
	}
	writeSuccess(w, http.StatusOK, map[string]int{"unreadCount": count})
}
