package models

import "time"

// Flashcard is one character a user is learning. The review-progress fields
// (level, counts, streak, review timestamps) are owned by the client; the
// server stores whatever the last update supplied.
//
// Pinyin and Zhuyin are pointers so an absent pronunciation is stored and
// returned as null, never as an empty string. At least one of the two must be
// present at creation.
type Flashcard struct {
	ID             int64      `json:"id"`
	UserID         int64      `json:"-"`
	Character      string     `json:"character"`
	Pinyin         *string    `json:"pinyin"`
	Zhuyin         *string    `json:"zhuyin"`
	Meaning        string     `json:"meaning"`
	Level          int        `json:"level"`
	LastReview     *time.Time `json:"lastReview"`
	NextReview     time.Time  `json:"nextReview"`
	CorrectCount   int        `json:"correctCount"`
	IncorrectCount int        `json:"incorrectCount"`
	Streak         int        `json:"streak"`
	CreatedAt      time.Time  `json:"-"`
}

// ReviewUpdate carries the six client-managed fields overwritten by an
// update. It is a full overwrite, not a patch.
type ReviewUpdate struct {
	Level          int
	LastReview     *time.Time
	NextReview     time.Time
	CorrectCount   int
	IncorrectCount int
	Streak         int
}
