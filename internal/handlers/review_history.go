package handlers

import (
	"log"
	"net/http"
	"strconv"

	"github.com/hanzicards/hanzicards-backend/internal/models"
)

type ReviewHistoryResponse struct {
	Success bool                 `json:"success"`
	Events  []models.ReviewEvent `json:"events"`
	Total   int64                `json:"total"`
}

// GetReviewHistory returns the session user's review events, newest first.
// Supports limit/skip pagination.
func (h *Handlers) GetReviewHistory(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.requireAuth(r)
	if !ok {
		writeError(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	limit := 20
	if s := r.URL.Query().Get("limit"); s != "" {
		if parsed, err := strconv.Atoi(s); err == nil && parsed > 0 {
			limit = parsed
		}
	}
	skip := 0
	if s := r.URL.Query().Get("skip"); s != "" {
		if parsed, err := strconv.Atoi(s); err == nil && parsed >= 0 {
			skip = parsed
		}
	}

	events, total, err := h.history.List(r.Context(), sess.UserID, limit, skip)
	if err != nil {
		log.Printf("history: list failed: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to load review history")
		return
	}

	writeJSON(w, http.StatusOK, ReviewHistoryResponse{Success: true, Events: events, Total: total})
}
