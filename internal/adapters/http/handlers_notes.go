package http

import (
	"net/http"

	"github.com/workhub/workhub/internal/application"
)

func (h *Handler) listNotes(w http.ResponseWriter, r *http.Request) {
	claims, _ := claimsFromContext(r.Context())
	tag := r.URL.Query().Get("tag")

	notes, err := h.service.ListNotes(r.Context(), claims.UserID, tag)
	if err != nil {
		writeMappedError(r.Context(), w, "list_notes", err)
		return
	}
	writeSuccess(w, http.StatusOK, notes)
}

func (h *Handler) createNote(w http.ResponseWriter, r *http.Request) {
	claims, _ := claimsFromContext(r.Context())

	var req application.CreateNoteRequest
	if err := decodeBody(r, &req); err != nil {
		writeValidationError(r.Context(), w, "create_note", err)
		return
	}

	note, err := h.service.CreateNote(r.Context(), claims.UserID, req)
	if err != nil {
		writeMappedError(r.Context(), w, "create_note", err)
		return
	}
	writeSuccess(w, http.StatusCreated, note)
}

func (h *Handler) updateNote(w http.ResponseWriter, r *http.Request) {
	claims, _ := claimsFromContext(r.Context())
	noteID, err := uuidParam(r, "noteId")
	if err != nil {
		writeBadIDError(r.Context(), w, "update_note", "note id")
		return
	}

	var req application.UpdateNoteRequest
	if err := decodeBody(r, &req); err != nil {
		writeValidationError(r.Context(), w, "update_note", err)
		return
	}

	note, err := h.service.UpdateNote(r.Context(), claims.UserID, noteID, req)
	if err != nil {
		writeMappedError(r.Context(), w, "update_note", err)
		return
	}
	writeSuccess(w, http.StatusOK, note)
}

func (h *Handler) deleteNote(w http.ResponseWriter, r *http.Request) {
	claims, _ := claimsFromContext(r.Context())
	noteID, err := uuidParam(r, "noteId")
	if err != nil {
		writeBadIDError(r.Context(), w, "delete_note", "note id")
		return
	}

	if err := h.service.DeleteNote(r.Context(), claims.UserID, noteID); err != nil {
		writeMappedError(r.Context(), w, "delete_note", err)
		return
	}
	writeMessage(w, http.StatusOK, "note deleted")
}
