package store

import (
	"context"
	"sync"
	"time"

	"github.com/hanzicards/hanzicards-backend/internal/models"
)

// MemoryUserStore is an in-memory UserStore used by tests.
type MemoryUserStore struct {
	mu     sync.Mutex
	nextID int64
	users  map[string]models.User // keyed by name
}

func NewMemoryUserStore() *MemoryUserStore {
	return &MemoryUserStore{users: make(map[string]models.User)}
}

func (s *MemoryUserStore) Create(ctx context.Context, name, passwordHash string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.users[name]; exists {
		return nil, ErrDuplicateName
	}
	s.nextID++
	user := models.User{
		ID:           s.nextID,
		Name:         name,
		PasswordHash: passwordHash,
		CreatedAt:    time.Now(),
	}
	s.users[name] = user
	return &user, nil
}

func (s *MemoryUserStore) GetByName(ctx context.Context, name string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	user, exists := s.users[name]
	if !exists {
		return nil, ErrNotFound
	}
	return &user, nil
}

// MemoryFlashcardStore is an in-memory FlashcardStore used by tests. Cards
// are kept in insertion order, matching the Postgres ORDER BY id.
type MemoryFlashcardStore struct {
	mu     sync.Mutex
	nextID int64
	cards  []models.Flashcard
}

func NewMemoryFlashcardStore() *MemoryFlashcardStore {
	return &MemoryFlashcardStore{}
}

func (s *MemoryFlashcardStore) ListByOwner(ctx context.Context, ownerID int64) ([]models.Flashcard, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := []models.Flashcard{}
	for _, card := range s.cards {
		if card.UserID == ownerID {
			out = append(out, card)
		}
	}
	return out, nil
}

func (s *MemoryFlashcardStore) Create(ctx context.Context, card *models.Flashcard) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextID++
	card.ID = s.nextID
	card.CreatedAt = time.Now()
	s.cards = append(s.cards, *card)
	return nil
}

func (s *MemoryFlashcardStore) UpdateReview(ctx context.Context, ownerID, cardID int64, upd models.ReviewUpdate) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.cards {
		if s.cards[i].ID == cardID && s.cards[i].UserID == ownerID {
			s.cards[i].Level = upd.Level
			s.cards[i].LastReview = upd.LastReview
			s.cards[i].NextReview = upd.NextReview
			s.cards[i].CorrectCount = upd.CorrectCount
			s.cards[i].IncorrectCount = upd.IncorrectCount
			s.cards[i].Streak = upd.Streak
			return nil
		}
	}
	return ErrNotFound
}

func (s *MemoryFlashcardStore) Delete(ctx context.Context, ownerID, cardID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.cards {
		if s.cards[i].ID == cardID && s.cards[i].UserID == ownerID {
			s.cards = append(s.cards[:i], s.cards[i+1:]...)
			return nil
		}
	}
	return nil
}

func (s *MemoryFlashcardStore) DeleteAllByOwner(ctx context.Context, ownerID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	kept := s.cards[:0]
	for _, card := range s.cards {
		if card.UserID != ownerID {
			kept = append(kept, card)
		}
	}
	s.cards = kept
	return nil
}
