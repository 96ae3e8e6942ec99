package memory

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"spaceshooter/backend/internal/models"
	"spaceshooter/backend/internal/store"
)

func TestWithTxCommitsOnSuccess(t *testing.T) {
	s := New()
	ctx := context.Background()

	err := s.WithTx(ctx, func(tx store.Store) error {
		return tx.CreateUser(ctx, &models.User{TelegramID: 100, FirstName: "Ada", Status: models.StatusNew})
	})
	require.NoError(t, err)

	user, err := s.GetUserByTelegramID(ctx, 100)
	require.NoError(t, err)
	assert.Equal(t, "Ada", user.FirstName)
}

func TestWithTxRollsBackAllWrites(t *testing.T) {
	s := New()
	ctx := context.Background()

	user := &models.User{TelegramID: 100, FirstName: "Ada", Status: models.StatusNew}
	require.NoError(t, s.CreateUser(ctx, user))

	boom := errors.New("boom")
	err := s.WithTx(ctx, func(tx store.Store) error {
		u, err := tx.GetUserByID(ctx, user.ID)
		if err != nil {
			return err
		}
		u.Status = models.StatusRequested
		if err := tx.SaveUser(ctx, u); err != nil {
			return err
		}
		if err := tx.CreateJoinRequest(ctx, &models.JoinRequest{UserID: u.ID, Status: models.RequestPending}); err != nil {
			return err
		}
		return boom
	})
	require.ErrorIs(t, err, boom)

	// Both writes are gone.
	reloaded, err := s.GetUserByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusNew, reloaded.Status)

	_, err = s.LatestJoinRequest(ctx, user.ID)
	assert.ErrorIs(t, err, store.ErrRequestNotFound)
}

func TestWithTxRollbackReleasesIDs(t *testing.T) {
	s := New()
	ctx := context.Background()

	boom := errors.New("boom")
	err := s.WithTx(ctx, func(tx store.Store) error {
		if err := tx.CreateUser(ctx, &models.User{TelegramID: 1, FirstName: "A"}); err != nil {
			return err
		}
		return boom
	})
	require.ErrorIs(t, err, boom)

	user := &models.User{TelegramID: 2, FirstName: "B"}
	require.NoError(t, s.CreateUser(ctx, user))
	assert.Equal(t, uint(1), user.ID)
}

func TestNotFoundSentinels(t *testing.T) {
	s := New()
	ctx := context.Background()

	_, err := s.GetUserByID(ctx, 5)
	assert.ErrorIs(t, err, store.ErrUserNotFound)

	_, err = s.GetUserByTelegramID(ctx, 5)
	assert.ErrorIs(t, err, store.ErrUserNotFound)

	_, err = s.GetJoinRequest(ctx, 5)
	assert.ErrorIs(t, err, store.ErrRequestNotFound)

	_, err = s.PendingJoinRequest(ctx, 5)
	assert.ErrorIs(t, err, store.ErrRequestNotFound)
}

func TestListUsersPaginates(t *testing.T) {
	s := New()
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		require.NoError(t, s.CreateUser(ctx, &models.User{TelegramID: int64(100 + i), FirstName: "U"}))
	}

	items, total, err := s.ListUsers(ctx, 1, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(5), total)
	require.Len(t, items, 2)

	last, total, err := s.ListUsers(ctx, 3, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(5), total)
	assert.Len(t, last, 1)

	empty, _, err := s.ListUsers(ctx, 4, 2)
	require.NoError(t, err)
	assert.Empty(t, empty)
}
