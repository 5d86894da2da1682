package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hanzicards/hanzicards-backend/internal/models"
)

func TestMemoryUserStoreDuplicateName(t *testing.T) {
	s := NewMemoryUserStore()
	ctx := context.Background()

	user, err := s.Create(ctx, "alice", "hash1")
	require.NoError(t, err)
	assert.Equal(t, int64(1), user.ID)

	_, err = s.Create(ctx, "alice", "hash2")
	assert.ErrorIs(t, err, ErrDuplicateName)

	_, err = s.GetByName(ctx, "bob")
	assert.ErrorIs(t, err, ErrNotFound)

	found, err := s.GetByName(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, "hash1", found.PasswordHash)
}

func newCard(owner int64, character string) *models.Flashcard {
	return &models.Flashcard{
		UserID:     owner,
		Character:  character,
		Meaning:    "meaning",
		NextReview: time.Now(),
	}
}

func TestMemoryFlashcardStoreOwnershipScoping(t *testing.T) {
	s := NewMemoryFlashcardStore()
	ctx := context.Background()

	card := newCard(1, "你")
	require.NoError(t, s.Create(ctx, card))
	require.NoError(t, s.Create(ctx, newCard(2, "水")))

	// Update filtered by the wrong owner behaves like a missing card.
	err := s.UpdateReview(ctx, 2, card.ID, models.ReviewUpdate{Level: 5, NextReview: time.Now()})
	assert.ErrorIs(t, err, ErrNotFound)

	// The right owner succeeds.
	require.NoError(t, s.UpdateReview(ctx, 1, card.ID, models.ReviewUpdate{Level: 5, NextReview: time.Now()}))

	cards, err := s.ListByOwner(ctx, 1)
	require.NoError(t, err)
	require.Len(t, cards, 1)
	assert.Equal(t, 5, cards[0].Level)

	// Foreign delete is a silent no-op.
	require.NoError(t, s.Delete(ctx, 2, card.ID))
	cards, _ = s.ListByOwner(ctx, 1)
	assert.Len(t, cards, 1)

	// Owner delete removes the card; repeating it stays successful.
	require.NoError(t, s.Delete(ctx, 1, card.ID))
	require.NoError(t, s.Delete(ctx, 1, card.ID))
	cards, _ = s.ListByOwner(ctx, 1)
	assert.Empty(t, cards)
}

func TestMemoryFlashcardStoreDeleteAllByOwner(t *testing.T) {
	s := NewMemoryFlashcardStore()
	ctx := context.Background()

	for _, c := range []string{"一", "二", "三"} {
		require.NoError(t, s.Create(ctx, newCard(1, c)))
	}
	require.NoError(t, s.Create(ctx, newCard(2, "水")))

	require.NoError(t, s.DeleteAllByOwner(ctx, 1))

	mine, _ := s.ListByOwner(ctx, 1)
	assert.Empty(t, mine)
	theirs, _ := s.ListByOwner(ctx, 2)
	assert.Len(t, theirs, 1)

	// Clearing an already-empty deck is fine.
	require.NoError(t, s.DeleteAllByOwner(ctx, 1))
}
