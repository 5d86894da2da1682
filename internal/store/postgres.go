package store

import (
	"context"
	"database/sql"

	"github.com/lib/pq"

	"github.com/hanzicards/hanzicards-backend/internal/models"
)

const pqUniqueViolation = "23505"

// PostgresUserStore implements UserStore on top of database/sql + lib/pq.
type PostgresUserStore struct {
	db *sql.DB
}

func NewPostgresUserStore(db *sql.DB) *PostgresUserStore {
	return &PostgresUserStore{db: db}
}

func (s *PostgresUserStore) Create(ctx context.Context, name, passwordHash string) (*models.User, error) {
	user := &models.User{Name: name, PasswordHash: passwordHash}
	err := s.db.QueryRowContext(ctx, `
		INSERT INTO users (name, password_hash)
		VALUES ($1, $2)
		RETURNING id, created_at
	`, name, passwordHash).Scan(&user.ID, &user.CreatedAt)
	if err != nil {
		// The unique constraint on users.name closes the register race;
		// there is no separate existence check.
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == pqUniqueViolation {
			return nil, ErrDuplicateName
		}
		return nil, err
	}
	return user, nil
}

func (s *PostgresUserStore) GetByName(ctx context.Context, name string) (*models.User, error) {
	var user models.User
	err := s.db.QueryRowContext(ctx, `
		SELECT id, name, password_hash, created_at
		FROM users WHERE name = $1
	`, name).Scan(&user.ID, &user.Name, &user.PasswordHash, &user.CreatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

// PostgresFlashcardStore implements FlashcardStore.
type PostgresFlashcardStore struct {
	db *sql.DB
}

func NewPostgresFlashcardStore(db *sql.DB) *PostgresFlashcardStore {
	return &PostgresFlashcardStore{db: db}
}

func (s *PostgresFlashcardStore) ListByOwner(ctx context.Context, ownerID int64) ([]models.Flashcard, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, user_id, character, pinyin, zhuyin, meaning, level,
		       last_review, next_review, correct_count, incorrect_count, streak, created_at
		FROM flashcards
		WHERE user_id = $1
		ORDER BY id
	`, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	cards := []models.Flashcard{}
	for rows.Next() {
		var card models.Flashcard
		var pinyin, zhuyin sql.NullString
		var lastReview sql.NullTime
		if err := rows.Scan(&card.ID, &card.UserID, &card.Character, &pinyin, &zhuyin,
			&card.Meaning, &card.Level, &lastReview, &card.NextReview,
			&card.CorrectCount, &card.IncorrectCount, &card.Streak, &card.CreatedAt); err != nil {
			return nil, err
		}
		if pinyin.Valid {
			card.Pinyin = &pinyin.String
		}
		if zhuyin.Valid {
			card.Zhuyin = &zhuyin.String
		}
		if lastReview.Valid {
			card.LastReview = &lastReview.Time
		}
		cards = append(cards, card)
	}
	return cards, rows.Err()
}

func (s *PostgresFlashcardStore) Create(ctx context.Context, card *models.Flashcard) error {
	return s.db.QueryRowContext(ctx, `
		INSERT INTO flashcards (user_id, character, pinyin, zhuyin, meaning, next_review)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at
	`, card.UserID, card.Character, card.Pinyin, card.Zhuyin, card.Meaning, card.NextReview).
		Scan(&card.ID, &card.CreatedAt)
}

func (s *PostgresFlashcardStore) UpdateReview(ctx context.Context, ownerID, cardID int64, upd models.ReviewUpdate) error {
	// Single conditional statement: the ownership check and the write cannot
	// race, and a foreign card is indistinguishable from a missing one.
	res, err := s.db.ExecContext(ctx, `
		UPDATE flashcards
		SET level = $1, last_review = $2, next_review = $3,
		    correct_count = $4, incorrect_count = $5, streak = $6
		WHERE id = $7 AND user_id = $8
	`, upd.Level, upd.LastReview, upd.NextReview,
		upd.CorrectCount, upd.IncorrectCount, upd.Streak, cardID, ownerID)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *PostgresFlashcardStore) Delete(ctx context.Context, ownerID, cardID int64) error {
	_, err := s.db.ExecContext(ctx, `
		DELETE FROM flashcards WHERE id = $1 AND user_id = $2
	`, cardID, ownerID)
	return err
}

func (s *PostgresFlashcardStore) DeleteAllByOwner(ctx context.Context, ownerID int64) error {
	_, err := s.db.ExecContext(ctx, `
		DELETE FROM flashcards WHERE user_id = $1
	`, ownerID)
	return err
}
