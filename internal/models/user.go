package models

import "time"

// User is an account in the flashcard tracker. Names are unique and
// case-sensitive; the password hash never leaves the server.
type User struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	PasswordHash string    `json:"-"` // Don't return password hash in JSON
	CreatedAt    time.Time `json:"created_at"`
}
