package access

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"spaceshooter/backend/internal/clock"
	"spaceshooter/backend/internal/models"
	"spaceshooter/backend/internal/store/memory"
	"spaceshooter/backend/internal/telegram"
)

type recordingNotifier struct {
	notifications []NewRequestNotification
}

func (n *recordingNotifier) NotifyNewRequest(_ context.Context, notification NewRequestNotification) {
	n.notifications = append(n.notifications, notification)
}

type ServiceSuite struct {
	suite.Suite
	storage  *memory.Store
	clock    *clock.Mock
	notifier *recordingNotifier
	service  *Service
	ctx      context.Context
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.storage = memory.New()
	s.clock = clock.NewMock(time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC))
	s.notifier = &recordingNotifier{}
	s.service = New(s.storage, s.clock, s.notifier, []int64{111, 222})
	s.ctx = context.Background()
}

func (s *ServiceSuite) createUser(telegramID int64, status models.UserStatus) *models.User {
	user := &models.User{
		TelegramID: telegramID,
		FirstName:  "Ada",
		Username:   "adal",
		Status:     status,
	}
	s.Require().NoError(s.storage.CreateUser(s.ctx, user))
	return user
}

// ResolveIdentity tests

func (s *ServiceSuite) TestResolveIdentityCreatesNewUser() {
	user, err := s.service.ResolveIdentity(s.ctx, &telegram.WebAppUser{
		ID: 99, Username: "adal", FirstName: "Ada", LastName: "Lovelace", PhotoURL: "https://example.com/a.jpg",
	})
	s.Require().NoError(err)

	s.NotZero(user.ID)
	s.Equal(int64(99), user.TelegramID)
	s.Equal(models.StatusNew, user.Status)
	s.Equal("Ada", user.FirstName)
	s.Equal("Lovelace", user.LastName)
}

func (s *ServiceSuite) TestResolveIdentityFallsBackToUnknownFirstName() {
	user, err := s.service.ResolveIdentity(s.ctx, &telegram.WebAppUser{ID: 99})
	s.Require().NoError(err)
	s.Equal("Unknown", user.FirstName)
}

func (s *ServiceSuite) TestResolveIdentityOverwritesChangedHandle() {
	first, err := s.service.ResolveIdentity(s.ctx, &telegram.WebAppUser{ID: 99, Username: "adal", FirstName: "Ada"})
	s.Require().NoError(err)

	second, err := s.service.ResolveIdentity(s.ctx, &telegram.WebAppUser{ID: 99, Username: "countess", FirstName: "Ada"})
	s.Require().NoError(err)

	s.Equal(first.ID, second.ID)
	s.Equal("countess", second.Username)

	stored, err := s.storage.GetUserByID(s.ctx, first.ID)
	s.Require().NoError(err)
	s.Equal("countess", stored.Username)
}

func (s *ServiceSuite) TestResolveIdentityClearsOmittedOptionalFields() {
	_, err := s.service.ResolveIdentity(s.ctx, &telegram.WebAppUser{
		ID: 99, FirstName: "Ada", LastName: "Lovelace", PhotoURL: "https://example.com/a.jpg",
	})
	s.Require().NoError(err)

	// A claim omitting optional fields clears them: last write wins, no merge.
	refreshed, err := s.service.ResolveIdentity(s.ctx, &telegram.WebAppUser{ID: 99, FirstName: "Ada"})
	s.Require().NoError(err)

	s.Empty(refreshed.LastName)
	s.Empty(refreshed.PhotoURL)
}

func (s *ServiceSuite) TestResolveIdentityKeepsFirstNameWhenClaimOmitsIt() {
	_, err := s.service.ResolveIdentity(s.ctx, &telegram.WebAppUser{ID: 99, FirstName: "Ada"})
	s.Require().NoError(err)

	refreshed, err := s.service.ResolveIdentity(s.ctx, &telegram.WebAppUser{ID: 99})
	s.Require().NoError(err)
	s.Equal("Ada", refreshed.FirstName)
}

// FileJoinRequest tests

func (s *ServiceSuite) TestFileJoinRequestMovesUserToRequested() {
	user := s.createUser(99, models.StatusNew)

	req, err := s.service.FileJoinRequest(s.ctx, user.ID, "let me in")
	s.Require().NoError(err)

	s.Equal(models.RequestPending, req.Status)
	s.Equal("let me in", req.Comment)

	stored, err := s.storage.GetUserByID(s.ctx, user.ID)
	s.Require().NoError(err)
	s.Equal(models.StatusRequested, stored.Status)
}

func (s *ServiceSuite) TestFileJoinRequestNotifiesAdmins() {
	user := s.createUser(99, models.StatusNew)

	req, err := s.service.FileJoinRequest(s.ctx, user.ID, "let me in")
	s.Require().NoError(err)

	s.Require().Len(s.notifier.notifications, 1)
	n := s.notifier.notifications[0]
	s.Equal(req.ID, n.RequestID)
	s.Equal(int64(99), n.TelegramID)
	s.Equal("adal", n.Username)
	s.Equal("let me in", n.Comment)
}

func (s *ServiceSuite) TestFileJoinRequestFailsWhenPendingExists() {
	user := s.createUser(99, models.StatusNew)

	_, err := s.service.FileJoinRequest(s.ctx, user.ID, "first")
	s.Require().NoError(err)

	_, err = s.service.FileJoinRequest(s.ctx, user.ID, "second")
	s.ErrorIs(err, ErrRequestAlreadyPending)

	// No second record was created.
	_, total, err := s.storage.ListJoinRequests(s.ctx, 1, 50)
	s.Require().NoError(err)
	s.EqualValues(1, total)
	s.Len(s.notifier.notifications, 1)
}

func (s *ServiceSuite) TestFileJoinRequestFailsForApprovedUser() {
	user := s.createUser(99, models.StatusApproved)

	_, err := s.service.FileJoinRequest(s.ctx, user.ID, "again")
	s.ErrorIs(err, ErrAlreadyApproved)
	s.Empty(s.notifier.notifications)
}

func (s *ServiceSuite) TestFileJoinRequestAllowedAfterRejection() {
	user := s.createUser(99, models.StatusNew)

	req, err := s.service.FileJoinRequest(s.ctx, user.ID, "first try")
	s.Require().NoError(err)
	s.Require().NoError(s.service.Decide(s.ctx, req.ID, DecisionReject, 111, "not yet"))

	// Rejected users may re-apply; approved users never can.
	s.clock.Advance(time.Hour)
	second, err := s.service.FileJoinRequest(s.ctx, user.ID, "second try")
	s.Require().NoError(err)
	s.Equal(models.RequestPending, second.Status)

	stored, err := s.storage.GetUserByID(s.ctx, user.ID)
	s.Require().NoError(err)
	s.Equal(models.StatusRequested, stored.Status)
}

func (s *ServiceSuite) TestFileJoinRequestUnknownUser() {
	_, err := s.service.FileJoinRequest(s.ctx, 12345, "hello")
	s.ErrorIs(err, ErrUserNotFound)
}

// Decide tests

func (s *ServiceSuite) TestDecideApprove() {
	user := s.createUser(99, models.StatusNew)
	req, err := s.service.FileJoinRequest(s.ctx, user.ID, "please")
	s.Require().NoError(err)

	s.Require().NoError(s.service.Decide(s.ctx, req.ID, DecisionApprove, 111, "welcome"))

	decided, err := s.storage.GetJoinRequest(s.ctx, req.ID)
	s.Require().NoError(err)
	s.Equal(models.RequestApproved, decided.Status)
	s.Equal("welcome", decided.DecisionReason)
	s.Equal(int64(111), decided.DecidedByAdminTgID)
	s.Require().NotNil(decided.DecidedAt)
	s.Equal(s.clock.Now(), *decided.DecidedAt)

	stored, err := s.storage.GetUserByID(s.ctx, user.ID)
	s.Require().NoError(err)
	s.Equal(models.StatusApproved, stored.Status)
}

func (s *ServiceSuite) TestDecideReject() {
	user := s.createUser(99, models.StatusNew)
	req, err := s.service.FileJoinRequest(s.ctx, user.ID, "please")
	s.Require().NoError(err)

	s.Require().NoError(s.service.Decide(s.ctx, req.ID, DecisionReject, 222, "no room"))

	decided, err := s.storage.GetJoinRequest(s.ctx, req.ID)
	s.Require().NoError(err)
	s.Equal(models.RequestRejected, decided.Status)

	stored, err := s.storage.GetUserByID(s.ctx, user.ID)
	s.Require().NoError(err)
	s.Equal(models.StatusRejected, stored.Status)
}

func (s *ServiceSuite) TestDecideTwiceFailsAndKeepsFirstDecision() {
	user := s.createUser(99, models.StatusNew)
	req, err := s.service.FileJoinRequest(s.ctx, user.ID, "please")
	s.Require().NoError(err)

	s.Require().NoError(s.service.Decide(s.ctx, req.ID, DecisionApprove, 111, "welcome"))
	first, err := s.storage.GetJoinRequest(s.ctx, req.ID)
	s.Require().NoError(err)

	s.clock.Advance(time.Hour)
	err = s.service.Decide(s.ctx, req.ID, DecisionReject, 222, "changed my mind")
	s.ErrorIs(err, ErrAlreadyDecided)

	// The second attempt must not touch the record or the user.
	unchanged, err := s.storage.GetJoinRequest(s.ctx, req.ID)
	s.Require().NoError(err)
	s.Equal(first, unchanged)

	stored, err := s.storage.GetUserByID(s.ctx, user.ID)
	s.Require().NoError(err)
	s.Equal(models.StatusApproved, stored.Status)
}

func (s *ServiceSuite) TestDecideUnknownRequest() {
	err := s.service.Decide(s.ctx, 4242, DecisionApprove, 111, "")
	s.ErrorIs(err, ErrRequestNotFound)
}

// AccessStatus tests

func (s *ServiceSuite) TestAccessStatusWithoutRequest() {
	user := s.createUser(99, models.StatusNew)

	status, latest, err := s.service.AccessStatus(s.ctx, user.ID)
	s.Require().NoError(err)
	s.Equal(models.StatusNew, status)
	s.Nil(latest)
}

func (s *ServiceSuite) TestAccessStatusReturnsLatestRequest() {
	user := s.createUser(99, models.StatusNew)

	first, err := s.service.FileJoinRequest(s.ctx, user.ID, "first")
	s.Require().NoError(err)
	s.Require().NoError(s.service.Decide(s.ctx, first.ID, DecisionReject, 111, "no"))

	s.clock.Advance(time.Hour)
	second, err := s.service.FileJoinRequest(s.ctx, user.ID, "second")
	s.Require().NoError(err)

	status, latest, err := s.service.AccessStatus(s.ctx, user.ID)
	s.Require().NoError(err)
	s.Equal(models.StatusRequested, status)
	s.Require().NotNil(latest)
	s.Equal(second.ID, latest.ID)
	s.Equal("second", latest.Comment)
}

// IsAdmin tests

func (s *ServiceSuite) TestIsAdmin() {
	s.True(s.service.IsAdmin(111))
	s.True(s.service.IsAdmin(222))
	s.False(s.service.IsAdmin(333))
}
