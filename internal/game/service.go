// Package game covers score submission and the leaderboard.
package game

import (
	"context"
	"fmt"

	"spaceshooter/backend/internal/models"
	"spaceshooter/backend/internal/store"
)

// DefaultLeaderboardSize is how many entries a leaderboard query returns.
const DefaultLeaderboardSize = 10

// Service handles gameplay reads and writes for approved users.
type Service struct {
	store store.Store
}

// New creates a game Service.
func New(st store.Store) *Service {
	return &Service{store: st}
}

// SubmitScore records one immutable game result for the user.
func (s *Service) SubmitScore(ctx context.Context, userID uint, difficulty models.Difficulty, value int) error {
	if !difficulty.Valid() {
		return fmt.Errorf("unknown difficulty %q", difficulty)
	}
	score := &models.Score{
		UserID:     userID,
		Difficulty: difficulty,
		Score:      value,
	}
	return s.store.CreateScore(ctx, score)
}

// Leaderboard returns the top entries for one difficulty: each approved user's
// best score, ordered descending with ties broken by ascending user id. The
// reported timestamp is the user's latest submission equal to their maximum.
func (s *Service) Leaderboard(ctx context.Context, difficulty models.Difficulty) ([]store.LeaderboardRow, error) {
	if !difficulty.Valid() {
		return nil, fmt.Errorf("unknown difficulty %q", difficulty)
	}
	return s.store.Leaderboard(ctx, difficulty, DefaultLeaderboardSize)
}
