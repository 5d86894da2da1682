package handlers

import (
	"errors"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/hanzicards/hanzicards-backend/internal/live"
	"github.com/hanzicards/hanzicards-backend/internal/models"
	"github.com/hanzicards/hanzicards-backend/internal/store"
)

type AddFlashcardRequest struct {
	Character string `json:"character"`
	Pinyin    string `json:"pinyin"`
	Zhuyin    string `json:"zhuyin"`
	Meaning   string `json:"meaning"`
}

// UpdateFlashcardRequest overwrites all six review fields. nextReview is
// required; lastReview may be null; the numeric fields default to zero when
// omitted.
type UpdateFlashcardRequest struct {
	Level          int        `json:"level"`
	LastReview     *time.Time `json:"lastReview"`
	NextReview     *time.Time `json:"nextReview"`
	CorrectCount   int        `json:"correctCount"`
	IncorrectCount int        `json:"incorrectCount"`
	Streak         int        `json:"streak"`
}

// ListFlashcards returns every card owned by the session user.
func (h *Handlers) ListFlashcards(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.requireAuth(r)
	if !ok {
		writeError(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	cards, err := h.cards.ListByOwner(r.Context(), sess.UserID)
	if err != nil {
		log.Printf("flashcards: list failed: %v", err)
		writeError(w, http.StatusInternalServerError, "Database error")
		return
	}
	writeJSON(w, http.StatusOK, cards)
}

// AddFlashcard creates a card for the session user. Empty pronunciation
// strings are stored as absent, never as "".
func (h *Handlers) AddFlashcard(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.requireAuth(r)
	if !ok {
		writeError(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	var req AddFlashcardRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.Character == "" || req.Meaning == "" {
		writeError(w, http.StatusBadRequest, "Character and meaning are required")
		return
	}
	if req.Pinyin == "" && req.Zhuyin == "" {
		writeError(w, http.StatusBadRequest, "Pinyin or zhuyin is required")
		return
	}

	card := models.Flashcard{
		UserID:     sess.UserID,
		Character:  req.Character,
		Meaning:    req.Meaning,
		NextReview: time.Now(),
	}
	if req.Pinyin != "" {
		card.Pinyin = &req.Pinyin
	}
	if req.Zhuyin != "" {
		card.Zhuyin = &req.Zhuyin
	}

	if err := h.cards.Create(r.Context(), &card); err != nil {
		log.Printf("flashcards: create failed: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to create flashcard")
		return
	}

	h.live.Publish(r.Context(), sess.UserID, live.Event{Type: live.EventCardAdded, CardID: card.ID})
	writeJSON(w, http.StatusOK, card)
}

// UpdateFlashcard overwrites the review fields of one card. The update is a
// single statement filtered by both card id and owner id, so a card owned by
// someone else looks exactly like a card that does not exist.
func (h *Handlers) UpdateFlashcard(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.requireAuth(r)
	if !ok {
		writeError(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	cardID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusNotFound, "Flashcard not found")
		return
	}

	var req UpdateFlashcardRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.NextReview == nil {
		writeError(w, http.StatusBadRequest, "nextReview is required")
		return
	}

	upd := models.ReviewUpdate{
		Level:          req.Level,
		LastReview:     req.LastReview,
		NextReview:     *req.NextReview,
		CorrectCount:   req.CorrectCount,
		IncorrectCount: req.IncorrectCount,
		Streak:         req.Streak,
	}

	if err := h.cards.UpdateReview(r.Context(), sess.UserID, cardID, upd); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Flashcard not found")
			return
		}
		log.Printf("flashcards: update failed: %v", err)
		writeError(w, http.StatusInternalServerError, "Database error")
		return
	}

	// Best-effort history append; a failed write never fails the update.
	reviewedAt := time.Now()
	if req.LastReview != nil {
		reviewedAt = *req.LastReview
	}
	if err := h.history.Record(r.Context(), models.ReviewEvent{
		EventID:        uuid.NewString(),
		UserID:         sess.UserID,
		CardID:         cardID,
		Level:          req.Level,
		CorrectCount:   req.CorrectCount,
		IncorrectCount: req.IncorrectCount,
		Streak:         req.Streak,
		ReviewedAt:     reviewedAt,
	}); err != nil {
		log.Printf("flashcards: record review event failed: %v", err)
	}

	h.live.Publish(r.Context(), sess.UserID, live.Event{Type: live.EventCardUpdated, CardID: cardID})
	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}

// DeleteFlashcard removes one card. It succeeds whether or not a matching
// card exists; ownership is filtered silently, not reported.
func (h *Handlers) DeleteFlashcard(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.requireAuth(r)
	if !ok {
		writeError(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	cardID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusNotFound, "Flashcard not found")
		return
	}

	if err := h.cards.Delete(r.Context(), sess.UserID, cardID); err != nil {
		log.Printf("flashcards: delete failed: %v", err)
		writeError(w, http.StatusInternalServerError, "Database error")
		return
	}

	h.live.Publish(r.Context(), sess.UserID, live.Event{Type: live.EventCardDeleted, CardID: cardID})
	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}

// ClearFlashcards removes every card the session user owns, along with the
// user's review history.
func (h *Handlers) ClearFlashcards(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.requireAuth(r)
	if !ok {
		writeError(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	if err := h.cards.DeleteAllByOwner(r.Context(), sess.UserID); err != nil {
		log.Printf("flashcards: clear failed: %v", err)
		writeError(w, http.StatusInternalServerError, "Database error")
		return
	}
	if err := h.history.Clear(r.Context(), sess.UserID); err != nil {
		log.Printf("flashcards: clear history failed: %v", err)
	}

	h.live.Publish(r.Context(), sess.UserID, live.Event{Type: live.EventCardsCleared})
	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}
