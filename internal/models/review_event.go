package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ReviewEvent is one append-only history record, written whenever a user
// reports a review result for a card.
type ReviewEvent struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	EventID        string             `bson:"event_id" json:"event_id"`
	UserID         int64              `bson:"user_id" json:"-"`
	CardID         int64              `bson:"card_id" json:"card_id"`
	Level          int                `bson:"level" json:"level"`
	CorrectCount   int                `bson:"correct_count" json:"correct_count"`
	IncorrectCount int                `bson:"incorrect_count" json:"incorrect_count"`
	Streak         int                `bson:"streak" json:"streak"`
	ReviewedAt     time.Time          `bson:"reviewed_at" json:"reviewed_at"`
}
