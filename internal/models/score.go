package models

import "time"

// Difficulty is one of the fixed game difficulty tiers. Scores are ranked
// independently per tier.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyNormal Difficulty = "normal"
	DifficultyHard   Difficulty = "hard"
)

// Valid reports whether d is one of the known tiers.
func (d Difficulty) Valid() bool {
	switch d {
	case DifficultyEasy, DifficultyNormal, DifficultyHard:
		return true
	}
	return false
}

// MaxScoreValue bounds a single submitted score.
const MaxScoreValue = 1_000_000

// Score is an immutable fact: one game run's result. Never updated or deleted
// by the application.
type Score struct {
	ID         uint       `gorm:"primarykey" json:"id"`
	UserID     uint       `gorm:"not null;index" json:"user_id"`
	Difficulty Difficulty `gorm:"type:varchar(10);not null;index" json:"difficulty"`
	Score      int        `gorm:"not null" json:"score"`
	CreatedAt  time.Time  `json:"created_at"`

	User User `gorm:"foreignKey:UserID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
}
