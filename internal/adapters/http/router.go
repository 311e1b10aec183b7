package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// NewRouter registers the HTTP routes and middleware stack.
// Centralizing routes here ensures consistent auth and error behavior across endpoints.
func NewRouter(handler *Handler, wsHandler http.Handler) http.Handler {
	r := chi.NewRouter()
	r.Use(requestIDMiddleware)
	r.Use(recoverMiddleware)
	r.Use(loggingMiddleware)

	r.Get("/healthz", handler.healthz)
	r.Get("/readyz", handler.readyz)

	r.Route("/api/auth", func(r chi.Router) {
		r.Post("/register", handler.register)
		r.Post("/login", handler.login)
		r.Post("/google", handler.googleAuth)

		r.Group(func(r chi.Router) {
			r.Use(handler.authMiddleware)
			r.Get("/me", handler.currentUser)
		})
	})

	r.Route("/api/chat", func(r chi.Router) {
		r.Use(handler.authMiddleware)
		r.Get("/users", handler.listChatUsers)
		r.Get("/search-users", handler.searchChatUsers)
		r.Get("/messages/{userId}", handler.chatHistory)
		r.Post("/messages", handler.sendMessage)
		r.Put("/messages/read/{senderId}", handler.markThreadRead)
		r.Get("/unread-count", handler.unreadCount)
	})

	r.Route("/api/notes", func(r chi.Router) {
		r.Use(handler.authMiddleware)
		r.Get("/", handler.listNotes)
		r.Post("/", handler.createNote)
		r.Put("/{noteId}", handler.updateNote)
		r.Delete("/{noteId}", handler.deleteNote)
	})

	r.Route("/api/tasks", func(r chi.Router) {
		r.Use(handler.authMiddleware)
		r.Get("/", handler.listTasks)
		r.Post("/", handler.createTask)
		r.Get("/{taskId}", handler.getTask)
		r.Put("/{taskId}", handler.updateTask)
		r.Put("/{taskId}/status", handler.updateTaskStatus)
		r.Delete("/{taskId}", handler.deleteTask)
		r.Post("/{taskId}/collaborators", handler.addCollaborator)
		r.Delete("/{taskId}/collaborators/{userId}", handler.removeCollaborator)
	})

	r.Route("/api/jobs", func(r chi.Router) {
		r.Get("/", handler.listJobs)
		r.Get("/{jobId}", handler.getJob)
		r.Get("/company/{companyId}", handler.listJobsByCompany)

		r.Group(func(r chi.Router) {
			r.Use(handler.authMiddleware)
			r.Post("/", handler.createJob)
			r.Post("/bulk", handler.createJobsBulk)
		})
	})

	r.Route("/api/companies", func(r chi.Router) {
		r.Get("/", handler.listCompanies)

		r.Group(func(r chi.Router) {
			r.Use(handler.authMiddleware)
			r.Post("/", handler.createCompany)
		})
	})

	r.Route("/api/categories", func(r chi.Router) {
		r.Get("/", handler.listCategories)
		r.Get("/{categoryId}", handler.getCategory)

		r.Group(func(r chi.Router) {
			r.Use(handler.authMiddleware)
			r.Post("/", handler.createCategory)
			r.Post("/bulk", handler.createCategoriesBulk)
			r.Put("/{categoryId}", handler.updateCategory)
			r.Delete("/{categoryId}", handler.deleteCategory)
		})
	})

	r.Route("/api/skills", func(r chi.Router) {
		r.Get("/", handler.listSkills)

		r.Group(func(r chi.Router) {
			r.Use(handler.authMiddleware)
			r.Post("/", handler.createSkill)
			r.Post("/bulk", handler.createSkillsBulk)
		})
	})

	// Token checks happen inside the websocket handshake, not here; the auth
	// middleware cannot read handshake query parameters sensibly.
	r.Handle("/ws", wsHandler)

	return r
}
