// Package store holds the persistence interfaces for users and flashcards,
// a PostgreSQL implementation used in production, and an in-memory
// implementation used in tests.
package store

import (
	"context"
	"errors"

	"github.com/hanzicards/hanzicards-backend/internal/models"
)

var (
	// ErrDuplicateName is returned when a user name is already taken.
	ErrDuplicateName = errors.New("name already exists")
	// ErrNotFound is returned when a record does not exist or is owned by
	// another user. The two cases are deliberately indistinguishable.
	ErrNotFound = errors.New("not found")
)

// UserStore persists user accounts. Users are never updated or deleted.
type UserStore interface {
	// Create inserts a new user. Returns ErrDuplicateName if the name is
	// taken (enforced by a unique constraint, not a prior existence check).
	Create(ctx context.Context, name, passwordHash string) (*models.User, error)
	// GetByName looks a user up by exact, case-sensitive name. Returns
	// ErrNotFound when no such user exists.
	GetByName(ctx context.Context, name string) (*models.User, error)
}

// FlashcardStore persists flashcards. Every operation is scoped by the
// owner's user id; a card is invisible to everyone but its owner.
type FlashcardStore interface {
	// ListByOwner returns all cards owned by ownerID, oldest first.
	ListByOwner(ctx context.Context, ownerID int64) ([]models.Flashcard, error)
	// Create inserts the card and fills in its ID and CreatedAt.
	Create(ctx context.Context, card *models.Flashcard) error
	// UpdateReview overwrites the six review fields of the card matching
	// both cardID and ownerID in a single conditional statement. Returns
	// ErrNotFound when no row matches.
	UpdateReview(ctx context.Context, ownerID, cardID int64, upd models.ReviewUpdate) error
	// Delete removes the card matching both cardID and ownerID. Deleting a
	// card that does not exist (or belongs to someone else) is not an error.
	Delete(ctx context.Context, ownerID, cardID int64) error
	// DeleteAllByOwner removes every card owned by ownerID.
	DeleteAllByOwner(ctx context.Context, ownerID int64) error
}
