package telegram

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"spaceshooter/backend/internal/clock"
)

const testBotToken = "123456:ABC-DEF1234ghIkl-zyx57W2v1u123ew11"

// signInitData builds a signed initData query string the way the Telegram client
// would, implemented independently of the code under test.
func signInitData(t *testing.T, pairs map[string]string) string {
	t.Helper()

	keys := make([]string, 0, len(pairs))
	for k := range pairs {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	lines := make([]string, 0, len(keys))
	for _, k := range keys {
		lines = append(lines, k+"="+pairs[k])
	}

	secret := hmac.New(sha256.New, []byte("WebAppData"))
	secret.Write([]byte(testBotToken))
	mac := hmac.New(sha256.New, secret.Sum(nil))
	mac.Write([]byte(strings.Join(lines, "\n")))
	hash := hex.EncodeToString(mac.Sum(nil))

	values := url.Values{}
	for k, v := range pairs {
		values.Set(k, v)
	}
	values.Set("hash", hash)
	return values.Encode()
}

func basePairs(authedAt time.Time) map[string]string {
	return map[string]string{
		"query_id":  "AAHdF6IQAAAAAN0XohDhrOrc",
		"user":      `{"id":99001122,"first_name":"Ada","last_name":"Lovelace","username":"adal","photo_url":"https://t.me/i/userpic/320/adal.jpg"}`,
		"auth_date": strconv.FormatInt(authedAt.Unix(), 10),
	}
}

func newTestVerifier(now time.Time) *Verifier {
	return NewVerifier(testBotToken, 24*time.Hour, clock.NewMock(now))
}

func TestVerifyValidInitData(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	v := newTestVerifier(now)

	user, err := v.Verify(signInitData(t, basePairs(now.Add(-time.Hour))))
	require.NoError(t, err)

	assert.Equal(t, int64(99001122), user.ID)
	assert.Equal(t, "adal", user.Username)
	assert.Equal(t, "Ada", user.FirstName)
	assert.Equal(t, "Lovelace", user.LastName)
	assert.Equal(t, "https://t.me/i/userpic/320/adal.jpg", user.PhotoURL)
}

func TestVerifyIsDeterministic(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	v := newTestVerifier(now)
	initData := signInitData(t, basePairs(now.Add(-time.Hour)))

	first, err := v.Verify(initData)
	require.NoError(t, err)
	second, err := v.Verify(initData)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestVerifyRejectsTamperedField(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	v := newTestVerifier(now)

	pairs := basePairs(now.Add(-time.Hour))
	initData := signInitData(t, pairs)

	// Flip a single character in a signed field after signing.
	tampered := strings.Replace(initData, "query_id=AAHdF6IQ", "query_id=AAHdF6IX", 1)
	require.NotEqual(t, initData, tampered)

	_, err := v.Verify(tampered)
	assert.ErrorIs(t, err, ErrInvalidHash)
}

func TestVerifyRejectsTamperedUserPayload(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	v := newTestVerifier(now)

	initData := signInitData(t, basePairs(now.Add(-time.Hour)))
	tampered := strings.Replace(initData, "99001122", "99001123", 1)
	require.NotEqual(t, initData, tampered)

	_, err := v.Verify(tampered)
	assert.ErrorIs(t, err, ErrInvalidHash)
}

func TestVerifyMissingHash(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	v := newTestVerifier(now)

	values := url.Values{}
	for k, val := range basePairs(now.Add(-time.Hour)) {
		values.Set(k, val)
	}

	_, err := v.Verify(values.Encode())
	assert.ErrorIs(t, err, ErrMissingHash)
}

func TestVerifyMissingAuthDate(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	v := newTestVerifier(now)

	pairs := basePairs(now)
	delete(pairs, "auth_date")

	_, err := v.Verify(signInitData(t, pairs))
	assert.ErrorIs(t, err, ErrMissingAuthDate)
}

func TestVerifyExpiryBoundaryIsInclusive(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	maxAge := 24 * time.Hour
	v := NewVerifier(testBotToken, maxAge, clock.NewMock(now))

	// Exactly at the window edge: accepted.
	atBoundary := signInitData(t, basePairs(now.Add(-maxAge)))
	_, err := v.Verify(atBoundary)
	assert.NoError(t, err)

	// One second past: rejected.
	pastBoundary := signInitData(t, basePairs(now.Add(-maxAge-time.Second)))
	_, err = v.Verify(pastBoundary)
	assert.ErrorIs(t, err, ErrExpiredAuthData)
}

func TestVerifyMissingUser(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	v := newTestVerifier(now)

	pairs := basePairs(now.Add(-time.Hour))
	delete(pairs, "user")

	_, err := v.Verify(signInitData(t, pairs))
	assert.ErrorIs(t, err, ErrMissingUser)
}

func TestVerifyMalformedUser(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	v := newTestVerifier(now)

	pairs := basePairs(now.Add(-time.Hour))
	pairs["user"] = `{"id":`

	_, err := v.Verify(signInitData(t, pairs))
	assert.ErrorIs(t, err, ErrInvalidUser)
}
