// Package handlers contains the HTTP handlers for authentication and the
// ownership-scoped flashcard CRUD. All collaborators (stores, sessions,
// history, live events) are injected interfaces.
package handlers

import (
	"net/http"
	"strings"

	"github.com/hanzicards/hanzicards-backend/internal/history"
	"github.com/hanzicards/hanzicards-backend/internal/live"
	"github.com/hanzicards/hanzicards-backend/internal/session"
	"github.com/hanzicards/hanzicards-backend/internal/store"
)

// SessionCookieName is the cookie carrying the opaque session token.
const SessionCookieName = "session_token"

type Handlers struct {
	users    store.UserStore
	cards    store.FlashcardStore
	sessions session.Store
	history  history.Recorder
	live     live.Broadcaster
}

func New(users store.UserStore, cards store.FlashcardStore, sessions session.Store,
	recorder history.Recorder, broadcaster live.Broadcaster) *Handlers {
	return &Handlers{
		users:    users,
		cards:    cards,
		sessions: sessions,
		history:  recorder,
		live:     broadcaster,
	}
}

// sessionToken extracts the session token from the cookie, falling back to
// an Authorization bearer header for non-browser clients.
func sessionToken(r *http.Request) string {
	if cookie, err := r.Cookie(SessionCookieName); err == nil && cookie.Value != "" {
		return cookie.Value
	}
	auth := r.Header.Get("Authorization")
	if parts := strings.SplitN(auth, " ", 2); len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
		return strings.TrimSpace(parts[1])
	}
	return ""
}

// requireAuth validates the request's session. Returns (session, false) when
// there is none; callers respond with 401.
func (h *Handlers) requireAuth(r *http.Request) (session.Session, bool) {
	token := sessionToken(r)
	if token == "" {
		return session.Session{}, false
	}
	sess, ok, err := h.sessions.Get(r.Context(), token)
	if err != nil || !ok {
		return session.Session{}, false
	}
	return sess, true
}

func setSessionCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

func clearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   -1,
	})
}
