// Package store defines the persistence boundary for users, join requests and scores.
package store

import (
	"context"
	"errors"
	"time"

	"spaceshooter/backend/internal/models"
)

// Errors
var (
	ErrUserNotFound    = errors.New("user not found")
	ErrRequestNotFound = errors.New("join request not found")
)

// LeaderboardRow is one entry of the per-difficulty ranking.
type LeaderboardRow struct {
	UserID     uint      `json:"user_id"`
	TelegramID int64     `json:"telegram_id"`
	Username   string    `json:"username,omitempty"`
	FirstName  string    `json:"first_name"`
	BestScore  int       `json:"score"`
	AchievedAt time.Time `json:"achieved_at"`
}

// Store defines the interface for data persistence.
//
// WithTx runs fn against a transactional view of the store: either every write
// made inside fn commits, or none of them do. Implementations must be safe to
// retry after a failed commit.
type Store interface {
	WithTx(ctx context.Context, fn func(Store) error) error

	// User operations
	GetUserByID(ctx context.Context, id uint) (*models.User, error)
	GetUserByTelegramID(ctx context.Context, telegramID int64) (*models.User, error)
	CreateUser(ctx context.Context, user *models.User) error
	SaveUser(ctx context.Context, user *models.User) error
	ListUsers(ctx context.Context, page, limit int) ([]models.User, int64, error)

	// Join request operations
	GetJoinRequest(ctx context.Context, id uint) (*models.JoinRequest, error)
	PendingJoinRequest(ctx context.Context, userID uint) (*models.JoinRequest, error)
	LatestJoinRequest(ctx context.Context, userID uint) (*models.JoinRequest, error)
	CreateJoinRequest(ctx context.Context, req *models.JoinRequest) error
	SaveJoinRequest(ctx context.Context, req *models.JoinRequest) error
	ListJoinRequests(ctx context.Context, page, limit int) ([]models.JoinRequest, int64, error)

	// Score operations
	CreateScore(ctx context.Context, score *models.Score) error
	Leaderboard(ctx context.Context, difficulty models.Difficulty, limit int) ([]LeaderboardRow, error)
}
