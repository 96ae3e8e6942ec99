// Package access owns identity resolution and the join-request approval workflow.
package access

import (
	"context"
	"errors"
	"fmt"

	"spaceshooter/backend/internal/clock"
	"spaceshooter/backend/internal/models"
	"spaceshooter/backend/internal/store"
	"spaceshooter/backend/internal/telegram"
)

// Errors
var (
	ErrAlreadyApproved       = errors.New("user already approved")
	ErrRequestAlreadyPending = errors.New("pending request already exists")
	ErrRequestNotFound       = errors.New("request not found")
	ErrAlreadyDecided        = errors.New("request already decided")
	ErrUserNotFound          = errors.New("user not found")
)

// Decision is an admin's verdict on a pending join request.
type Decision string

const (
	DecisionApprove Decision = "approve"
	DecisionReject  Decision = "reject"
)

// NewRequestNotification is the payload handed to the outbound admin notifier.
type NewRequestNotification struct {
	RequestID  uint   `json:"request_id"`
	TelegramID int64  `json:"telegram_id"`
	Username   string `json:"username,omitempty"`
	FirstName  string `json:"first_name"`
	LastName   string `json:"last_name,omitempty"`
	Comment    string `json:"comment,omitempty"`
}

// Notifier delivers a best-effort "new request" signal to admins. Implementations
// must swallow their own failures; delivery never affects the triggering action.
type Notifier interface {
	NotifyNewRequest(ctx context.Context, n NewRequestNotification)
}

// Service drives the user-status and join-request state machines.
type Service struct {
	store    store.Store
	clock    clock.Clock
	notifier Notifier
	adminIDs map[int64]struct{}
}

// New creates an access Service.
func New(st store.Store, clk clock.Clock, notifier Notifier, adminTelegramIDs []int64) *Service {
	ids := make(map[int64]struct{}, len(adminTelegramIDs))
	for _, id := range adminTelegramIDs {
		ids[id] = struct{}{}
	}
	return &Service{store: st, clock: clk, notifier: notifier, adminIDs: ids}
}

// IsAdmin reports whether the given Telegram id belongs to the configured admin set.
func (s *Service) IsAdmin(telegramID int64) bool {
	_, ok := s.adminIDs[telegramID]
	return ok
}

// ResolveIdentity finds or creates the local user for a verified Telegram claim.
//
// Profile fields are refreshed last-write-wins on every login: username, last
// name and photo URL are overwritten with the claim's current values even when
// empty. The first name keeps its stored value when the claim omits one (and
// falls back to "Unknown" on first sight). This mirrors the issuing platform's
// "trust the latest assertion" contract and is intentional, not a merge bug.
func (s *Service) ResolveIdentity(ctx context.Context, claim *telegram.WebAppUser) (*models.User, error) {
	user, err := s.store.GetUserByTelegramID(ctx, claim.ID)
	if errors.Is(err, store.ErrUserNotFound) {
		firstName := claim.FirstName
		if firstName == "" {
			firstName = "Unknown"
		}
		user = &models.User{
			TelegramID: claim.ID,
			Username:   claim.Username,
			FirstName:  firstName,
			LastName:   claim.LastName,
			PhotoURL:   claim.PhotoURL,
			Status:     models.StatusNew,
		}
		if err := s.store.CreateUser(ctx, user); err != nil {
			return nil, fmt.Errorf("create user: %w", err)
		}
		return user, nil
	}
	if err != nil {
		return nil, fmt.Errorf("lookup user: %w", err)
	}

	user.Username = claim.Username
	if claim.FirstName != "" {
		user.FirstName = claim.FirstName
	}
	user.LastName = claim.LastName
	user.PhotoURL = claim.PhotoURL
	if err := s.store.SaveUser(ctx, user); err != nil {
		return nil, fmt.Errorf("refresh user: %w", err)
	}
	return user, nil
}

// FileJoinRequest opens a new PENDING request for the user and moves them to
// REQUESTED, as one atomic unit. Approved users cannot re-apply; a user with an
// open request cannot file a second one.
func (s *Service) FileJoinRequest(ctx context.Context, userID uint, comment string) (*models.JoinRequest, error) {
	var created *models.JoinRequest
	var notification NewRequestNotification

	err := s.store.WithTx(ctx, func(tx store.Store) error {
		user, err := tx.GetUserByID(ctx, userID)
		if errors.Is(err, store.ErrUserNotFound) {
			return ErrUserNotFound
		}
		if err != nil {
			return err
		}

		if user.Status == models.StatusApproved {
			return ErrAlreadyApproved
		}

		if _, err := tx.PendingJoinRequest(ctx, user.ID); err == nil {
			return ErrRequestAlreadyPending
		} else if !errors.Is(err, store.ErrRequestNotFound) {
			return err
		}

		req := &models.JoinRequest{
			UserID:    user.ID,
			Status:    models.RequestPending,
			Comment:   comment,
			CreatedAt: s.clock.Now(),
		}
		if err := tx.CreateJoinRequest(ctx, req); err != nil {
			return err
		}

		user.Status = models.StatusRequested
		if err := tx.SaveUser(ctx, user); err != nil {
			return err
		}

		created = req
		notification = NewRequestNotification{
			RequestID:  req.ID,
			TelegramID: user.TelegramID,
			Username:   user.Username,
			FirstName:  user.FirstName,
			LastName:   user.LastName,
			Comment:    req.Comment,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	// Best effort only; the notifier logs and swallows its own failures.
	if s.notifier != nil {
		s.notifier.NotifyNewRequest(ctx, notification)
	}

	return created, nil
}

// Decide applies an admin's verdict to a pending request exactly once: the
// request's terminal fields and the owner's status change in one atomic unit.
// A request that is already decided is never touched again.
func (s *Service) Decide(ctx context.Context, requestID uint, decision Decision, adminTelegramID int64, reason string) error {
	return s.store.WithTx(ctx, func(tx store.Store) error {
		req, err := tx.GetJoinRequest(ctx, requestID)
		if errors.Is(err, store.ErrRequestNotFound) {
			return ErrRequestNotFound
		}
		if err != nil {
			return err
		}

		if req.Status.Decided() {
			return ErrAlreadyDecided
		}

		user, err := tx.GetUserByID(ctx, req.UserID)
		if errors.Is(err, store.ErrUserNotFound) {
			return ErrUserNotFound
		}
		if err != nil {
			return err
		}

		decidedAt := s.clock.Now()
		switch decision {
		case DecisionApprove:
			req.Status = models.RequestApproved
			user.Status = models.StatusApproved
		case DecisionReject:
			req.Status = models.RequestRejected
			user.Status = models.StatusRejected
		default:
			return fmt.Errorf("unknown decision %q", decision)
		}
		req.DecisionReason = reason
		req.DecidedByAdminTgID = adminTelegramID
		req.DecidedAt = &decidedAt

		if err := tx.SaveJoinRequest(ctx, req); err != nil {
			return err
		}
		return tx.SaveUser(ctx, user)
	})
}

// AccessStatus returns the user's current status and their most recent request
// (any status; latest by creation time, ties broken by highest id), or nil when
// the user has never filed one.
func (s *Service) AccessStatus(ctx context.Context, userID uint) (models.UserStatus, *models.JoinRequest, error) {
	user, err := s.store.GetUserByID(ctx, userID)
	if errors.Is(err, store.ErrUserNotFound) {
		return "", nil, ErrUserNotFound
	}
	if err != nil {
		return "", nil, err
	}

	latest, err := s.store.LatestJoinRequest(ctx, userID)
	if errors.Is(err, store.ErrRequestNotFound) {
		return user.Status, nil, nil
	}
	if err != nil {
		return "", nil, err
	}
	return user.Status, latest, nil
}
