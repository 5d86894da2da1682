package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/hanzicards/hanzicards-backend/internal/session"
	"github.com/hanzicards/hanzicards-backend/internal/store"
	"github.com/hanzicards/hanzicards-backend/pkg/utils"
)

type RegisterRequest struct {
	Name     string `json:"name"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Name     string `json:"name"`
	Password string `json:"password"`
}

// AuthResponse is the success body for register and login.
type AuthResponse struct {
	Success  bool   `json:"success"`
	UserName string `json:"user_name"`
}

type CheckAuthResponse struct {
	Authenticated bool   `json:"authenticated"`
	UserName      string `json:"user_name,omitempty"`
}

// Register creates a user account and logs it in. Duplicate names are caught
// by the database's unique constraint, so two concurrent registrations of
// the same name cannot both succeed.
func (h *Handlers) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.Name == "" || req.Password == "" {
		writeError(w, http.StatusBadRequest, "Name and password are required")
		return
	}

	passwordHash, err := utils.HashPassword(req.Password)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to hash password")
		return
	}

	user, err := h.users.Create(r.Context(), req.Name, passwordHash)
	if err != nil {
		if errors.Is(err, store.ErrDuplicateName) {
			writeError(w, http.StatusBadRequest, "Username already exists")
			return
		}
		log.Printf("register: create user failed: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to create user")
		return
	}

	token, err := h.sessions.Create(r.Context(), session.Session{UserID: user.ID, UserName: user.Name})
	if err != nil {
		log.Printf("register: create session failed: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to create session")
		return
	}

	setSessionCookie(w, token)
	writeJSON(w, http.StatusOK, AuthResponse{Success: true, UserName: user.Name})
}

// Login authenticates a name/password pair. A wrong name and a wrong
// password produce the same response; nothing distinguishes which was bad.
func (h *Handlers) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.Name == "" || req.Password == "" {
		writeError(w, http.StatusBadRequest, "Name and password are required")
		return
	}

	user, err := h.users.GetByName(r.Context(), req.Name)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusUnauthorized, "Invalid username or password")
			return
		}
		log.Printf("login: lookup failed: %v", err)
		writeError(w, http.StatusInternalServerError, "Database error")
		return
	}

	valid, err := utils.VerifyPassword(req.Password, user.PasswordHash)
	if err != nil || !valid {
		writeError(w, http.StatusUnauthorized, "Invalid username or password")
		return
	}

	token, err := h.sessions.Create(r.Context(), session.Session{UserID: user.ID, UserName: user.Name})
	if err != nil {
		log.Printf("login: create session failed: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to create session")
		return
	}

	setSessionCookie(w, token)
	writeJSON(w, http.StatusOK, AuthResponse{Success: true, UserName: user.Name})
}

// Logout destroys the current session. Logging out without a session is
// also a success.
func (h *Handlers) Logout(w http.ResponseWriter, r *http.Request) {
	if token := sessionToken(r); token != "" {
		if err := h.sessions.Delete(r.Context(), token); err != nil {
			log.Printf("logout: delete session failed: %v", err)
		}
	}
	clearSessionCookie(w)
	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}

// CheckAuth reports the current session state. It never fails.
func (h *Handlers) CheckAuth(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.requireAuth(r)
	if !ok {
		writeJSON(w, http.StatusOK, CheckAuthResponse{Authenticated: false})
		return
	}
	writeJSON(w, http.StatusOK, CheckAuthResponse{Authenticated: true, UserName: sess.UserName})
}
