package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/hanzicards/hanzicards-backend/internal/handlers"
)

func SetupRoutes(r *chi.Mux, h *handlers.Handlers) {
	// Authentication
	r.Post("/api/register", h.Register)
	r.Post("/api/login", h.Login)
	r.Post("/api/logout", h.Logout)
	r.Get("/api/check-auth", h.CheckAuth)

	// Flashcards (all session-scoped). The literal /clear route takes
	// precedence over the {id} route in chi's tree.
	r.Get("/api/flashcards", h.ListFlashcards)
	r.Post("/api/flashcards", h.AddFlashcard)
	r.Put("/api/flashcards/{id}", h.UpdateFlashcard)
	r.Delete("/api/flashcards/clear", h.ClearFlashcards)
	r.Delete("/api/flashcards/{id}", h.DeleteFlashcard)

	// Review history
	r.Get("/api/history", h.GetReviewHistory)

	// WebSocket feed of the user's own card changes
	r.Get("/ws/flashcards", h.FlashcardEvents)
}
