// Package gormstore implements the store interface on gorm/Postgres.
package gormstore

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"spaceshooter/backend/internal/models"
	"spaceshooter/backend/internal/store"
)

// Store is the gorm-backed implementation of store.Store.
type Store struct {
	db *gorm.DB
}

// New creates a Store on top of an open gorm connection.
func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

// Ensure Store implements the interface
var _ store.Store = (*Store)(nil)

// WithTx runs fn inside a database transaction; fn sees a Store bound to it.
func (s *Store) WithTx(ctx context.Context, fn func(store.Store) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&Store{db: tx})
	})
}

// User operations

func (s *Store) GetUserByID(ctx context.Context, id uint) (*models.User, error) {
	var user models.User
	if err := s.db.WithContext(ctx).First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, store.ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (s *Store) GetUserByTelegramID(ctx context.Context, telegramID int64) (*models.User, error) {
	var user models.User
	if err := s.db.WithContext(ctx).Where("telegram_id = ?", telegramID).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, store.ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (s *Store) CreateUser(ctx context.Context, user *models.User) error {
	return s.db.WithContext(ctx).Create(user).Error
}

func (s *Store) SaveUser(ctx context.Context, user *models.User) error {
	return s.db.WithContext(ctx).Save(user).Error
}

func (s *Store) ListUsers(ctx context.Context, page, limit int) ([]models.User, int64, error) {
	var totalItems int64
	if err := s.db.WithContext(ctx).Model(&models.User{}).Count(&totalItems).Error; err != nil {
		return nil, 0, err
	}

	var users []models.User
	err := s.db.WithContext(ctx).
		Order("created_at DESC, id DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&users).Error
	if err != nil {
		return nil, 0, err
	}
	return users, totalItems, nil
}

// Join request operations

func (s *Store) GetJoinRequest(ctx context.Context, id uint) (*models.JoinRequest, error) {
	var req models.JoinRequest
	if err := s.db.WithContext(ctx).First(&req, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, store.ErrRequestNotFound
		}
		return nil, err
	}
	return &req, nil
}

func (s *Store) PendingJoinRequest(ctx context.Context, userID uint) (*models.JoinRequest, error) {
	var req models.JoinRequest
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND status = ?", userID, models.RequestPending).
		First(&req).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, store.ErrRequestNotFound
		}
		return nil, err
	}
	return &req, nil
}

func (s *Store) LatestJoinRequest(ctx context.Context, userID uint) (*models.JoinRequest, error) {
	var req models.JoinRequest
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC, id DESC").
		First(&req).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, store.ErrRequestNotFound
		}
		return nil, err
	}
	return &req, nil
}

func (s *Store) CreateJoinRequest(ctx context.Context, req *models.JoinRequest) error {
	return s.db.WithContext(ctx).Create(req).Error
}

func (s *Store) SaveJoinRequest(ctx context.Context, req *models.JoinRequest) error {
	return s.db.WithContext(ctx).Save(req).Error
}

func (s *Store) ListJoinRequests(ctx context.Context, page, limit int) ([]models.JoinRequest, int64, error) {
	var totalItems int64
	if err := s.db.WithContext(ctx).Model(&models.JoinRequest{}).Count(&totalItems).Error; err != nil {
		return nil, 0, err
	}

	var requests []models.JoinRequest
	err := s.db.WithContext(ctx).
		Preload("User").
		Order("created_at DESC, id DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&requests).Error
	if err != nil {
		return nil, 0, err
	}
	return requests, totalItems, nil
}

// Score operations

func (s *Store) CreateScore(ctx context.Context, score *models.Score) error {
	return s.db.WithContext(ctx).Create(score).Error
}

// Leaderboard ranks approved users by their best score for one difficulty.
// For each user's winning value the reported timestamp is the latest submission
// equal to that maximum, and ties are broken by ascending user id.
func (s *Store) Leaderboard(ctx context.Context, difficulty models.Difficulty, limit int) ([]store.LeaderboardRow, error) {
	var rows []store.LeaderboardRow
	err := s.db.WithContext(ctx).Raw(`
		SELECT u.id AS user_id,
		       u.telegram_id,
		       u.username,
		       u.first_name,
		       best.best_score,
		       MAX(sc.created_at) AS achieved_at
		FROM users u
		JOIN (
			SELECT s2.user_id, MAX(s2.score) AS best_score
			FROM scores s2
			JOIN users u2 ON u2.id = s2.user_id
			WHERE s2.difficulty = ? AND u2.status = ?
			GROUP BY s2.user_id
		) best ON best.user_id = u.id
		JOIN scores sc ON sc.user_id = u.id
			AND sc.score = best.best_score
			AND sc.difficulty = ?
		GROUP BY u.id, u.telegram_id, u.username, u.first_name, best.best_score
		ORDER BY best.best_score DESC, u.id ASC
		LIMIT ?`,
		difficulty, models.StatusApproved, difficulty, limit,
	).Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
