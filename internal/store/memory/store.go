// Package memory is an in-memory store implementation used by tests.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"spaceshooter/backend/internal/models"
	"spaceshooter/backend/internal/store"
)

// Store is an in-memory implementation of the store interface. It mirrors the
// gorm store's semantics, including the commit-or-nothing WithTx contract and
// the leaderboard ranking rules.
type Store struct {
	mu   sync.RWMutex
	txMu sync.Mutex

	users        map[uint]models.User
	joinRequests map[uint]models.JoinRequest
	scores       map[uint]models.Score

	nextUserID    uint
	nextRequestID uint
	nextScoreID   uint
}

// New creates a new in-memory store instance.
func New() *Store {
	return &Store{
		users:         make(map[uint]models.User),
		joinRequests:  make(map[uint]models.JoinRequest),
		scores:        make(map[uint]models.Score),
		nextUserID:    1,
		nextRequestID: 1,
		nextScoreID:   1,
	}
}

// Ensure Store implements the interface
var _ store.Store = (*Store)(nil)

// WithTx serializes transactional sections and rolls the whole store back to
// its pre-transaction state when fn fails, so partial writes never survive.
func (s *Store) WithTx(ctx context.Context, fn func(store.Store) error) error {
	s.txMu.Lock()
	defer s.txMu.Unlock()

	snapshot := s.snapshot()
	if err := fn(s); err != nil {
		s.restore(snapshot)
		return err
	}
	return nil
}

type state struct {
	users         map[uint]models.User
	joinRequests  map[uint]models.JoinRequest
	scores        map[uint]models.Score
	nextUserID    uint
	nextRequestID uint
	nextScoreID   uint
}

func (s *Store) snapshot() state {
	s.mu.RLock()
	defer s.mu.RUnlock()

	st := state{
		users:         make(map[uint]models.User, len(s.users)),
		joinRequests:  make(map[uint]models.JoinRequest, len(s.joinRequests)),
		scores:        make(map[uint]models.Score, len(s.scores)),
		nextUserID:    s.nextUserID,
		nextRequestID: s.nextRequestID,
		nextScoreID:   s.nextScoreID,
	}
	for id, u := range s.users {
		st.users[id] = u
	}
	for id, r := range s.joinRequests {
		st.joinRequests[id] = r
	}
	for id, sc := range s.scores {
		st.scores[id] = sc
	}
	return st
}

func (s *Store) restore(st state) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.users = st.users
	s.joinRequests = st.joinRequests
	s.scores = st.scores
	s.nextUserID = st.nextUserID
	s.nextRequestID = st.nextRequestID
	s.nextScoreID = st.nextScoreID
}

// User operations

func (s *Store) GetUserByID(ctx context.Context, id uint) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, ok := s.users[id]
	if !ok {
		return nil, store.ErrUserNotFound
	}
	return &user, nil
}

func (s *Store) GetUserByTelegramID(ctx context.Context, telegramID int64) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, user := range s.users {
		if user.TelegramID == telegramID {
			u := user
			return &u, nil
		}
	}
	return nil, store.ErrUserNotFound
}

func (s *Store) CreateUser(ctx context.Context, user *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	user.ID = s.nextUserID
	s.nextUserID++
	now := time.Now()
	if user.CreatedAt.IsZero() {
		user.CreatedAt = now
	}
	user.UpdatedAt = now
	s.users[user.ID] = *user
	return nil
}

func (s *Store) SaveUser(ctx context.Context, user *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	user.UpdatedAt = time.Now()
	s.users[user.ID] = *user
	return nil
}

func (s *Store) ListUsers(ctx context.Context, page, limit int) ([]models.User, int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	users := make([]models.User, 0, len(s.users))
	for _, u := range s.users {
		users = append(users, u)
	}
	sort.Slice(users, func(i, j int) bool {
		if !users[i].CreatedAt.Equal(users[j].CreatedAt) {
			return users[i].CreatedAt.After(users[j].CreatedAt)
		}
		return users[i].ID > users[j].ID
	})

	total := int64(len(users))
	return paginate(users, page, limit), total, nil
}

// Join request operations

func (s *Store) GetJoinRequest(ctx context.Context, id uint) (*models.JoinRequest, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	req, ok := s.joinRequests[id]
	if !ok {
		return nil, store.ErrRequestNotFound
	}
	return &req, nil
}

func (s *Store) PendingJoinRequest(ctx context.Context, userID uint) (*models.JoinRequest, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, req := range s.joinRequests {
		if req.UserID == userID && req.Status == models.RequestPending {
			r := req
			return &r, nil
		}
	}
	return nil, store.ErrRequestNotFound
}

func (s *Store) LatestJoinRequest(ctx context.Context, userID uint) (*models.JoinRequest, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var latest *models.JoinRequest
	for id := range s.joinRequests {
		req := s.joinRequests[id]
		if req.UserID != userID {
			continue
		}
		if latest == nil || req.CreatedAt.After(latest.CreatedAt) ||
			(req.CreatedAt.Equal(latest.CreatedAt) && req.ID > latest.ID) {
			r := req
			latest = &r
		}
	}
	if latest == nil {
		return nil, store.ErrRequestNotFound
	}
	return latest, nil
}

func (s *Store) CreateJoinRequest(ctx context.Context, req *models.JoinRequest) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	req.ID = s.nextRequestID
	s.nextRequestID++
	if req.CreatedAt.IsZero() {
		req.CreatedAt = time.Now()
	}
	s.joinRequests[req.ID] = *req
	return nil
}

func (s *Store) SaveJoinRequest(ctx context.Context, req *models.JoinRequest) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.joinRequests[req.ID] = *req
	return nil
}

func (s *Store) ListJoinRequests(ctx context.Context, page, limit int) ([]models.JoinRequest, int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	requests := make([]models.JoinRequest, 0, len(s.joinRequests))
	for _, req := range s.joinRequests {
		req.User = s.users[req.UserID]
		requests = append(requests, req)
	}
	sort.Slice(requests, func(i, j int) bool {
		if !requests[i].CreatedAt.Equal(requests[j].CreatedAt) {
			return requests[i].CreatedAt.After(requests[j].CreatedAt)
		}
		return requests[i].ID > requests[j].ID
	})

	total := int64(len(requests))
	return paginate(requests, page, limit), total, nil
}

// Score operations

func (s *Store) CreateScore(ctx context.Context, score *models.Score) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	score.ID = s.nextScoreID
	s.nextScoreID++
	if score.CreatedAt.IsZero() {
		score.CreatedAt = time.Now()
	}
	s.scores[score.ID] = *score
	return nil
}

func (s *Store) Leaderboard(ctx context.Context, difficulty models.Difficulty, limit int) ([]store.LeaderboardRow, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	best := make(map[uint]int)
	for _, sc := range s.scores {
		if sc.Difficulty != difficulty {
			continue
		}
		user, ok := s.users[sc.UserID]
		if !ok || user.Status != models.StatusApproved {
			continue
		}
		if cur, seen := best[sc.UserID]; !seen || sc.Score > cur {
			best[sc.UserID] = sc.Score
		}
	}

	rows := make([]store.LeaderboardRow, 0, len(best))
	for userID, bestScore := range best {
		// The reported timestamp is the latest submission equal to the maximum.
		var achievedAt time.Time
		for _, sc := range s.scores {
			if sc.UserID == userID && sc.Difficulty == difficulty && sc.Score == bestScore &&
				sc.CreatedAt.After(achievedAt) {
				achievedAt = sc.CreatedAt
			}
		}
		user := s.users[userID]
		rows = append(rows, store.LeaderboardRow{
			UserID:     userID,
			TelegramID: user.TelegramID,
			Username:   user.Username,
			FirstName:  user.FirstName,
			BestScore:  bestScore,
			AchievedAt: achievedAt,
		})
	}

	sort.Slice(rows, func(i, j int) bool {
		if rows[i].BestScore != rows[j].BestScore {
			return rows[i].BestScore > rows[j].BestScore
		}
		return rows[i].UserID < rows[j].UserID
	})

	if len(rows) > limit {
		rows = rows[:limit]
	}
	return rows, nil
}

func paginate[T any](items []T, page, limit int) []T {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		return items
	}
	start := (page - 1) * limit
	if start >= len(items) {
		return []T{}
	}
	end := start + limit
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}
