// Package telegram verifies Telegram Mini App initData assertions.
package telegram

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"time"

	"spaceshooter/backend/internal/clock"
)

// Errors
var (
	ErrMissingHash     = errors.New("missing initData hash")
	ErrInvalidHash     = errors.New("invalid initData hash")
	ErrMissingAuthDate = errors.New("missing auth_date")
	ErrExpiredAuthData = errors.New("telegram auth data expired")
	ErrMissingUser     = errors.New("missing telegram user payload")
	ErrInvalidUser     = errors.New("invalid telegram user payload")
)

// WebAppUser is the identity claim carried inside a verified initData payload.
type WebAppUser struct {
	ID        int64  `json:"id"`
	Username  string `json:"username"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	PhotoURL  string `json:"photo_url"`
}

// Verifier checks initData signatures against the bot token and a freshness window.
type Verifier struct {
	botToken string
	maxAge   time.Duration
	clock    clock.Clock
}

// NewVerifier creates a Verifier for the given bot token and maximum auth_date age.
func NewVerifier(botToken string, maxAge time.Duration, clk clock.Clock) *Verifier {
	return &Verifier{botToken: botToken, maxAge: maxAge, clock: clk}
}

// Verify validates a raw initData query string and returns the embedded user claim.
//
// The check follows Telegram's WebApp scheme: the "hash" field is removed, the
// remaining decoded key/value pairs are sorted by key and joined as "k=v" lines,
// and the result is HMAC-SHA256'd with a secret key derived from the bot token
// (HMAC-SHA256 keyed with the literal "WebAppData"). The supplied hash must match
// in constant time, auth_date must be within maxAge (inclusive), and the "user"
// field must carry valid JSON.
func (v *Verifier) Verify(initData string) (*WebAppUser, error) {
	values, err := url.ParseQuery(initData)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMissingHash, err)
	}

	receivedHash := values.Get("hash")
	if receivedHash == "" {
		return nil, ErrMissingHash
	}
	values.Del("hash")

	calculated := computeHash(values, v.botToken)
	if !hmac.Equal([]byte(calculated), []byte(receivedHash)) {
		return nil, ErrInvalidHash
	}

	authDateRaw := values.Get("auth_date")
	if authDateRaw == "" {
		return nil, ErrMissingAuthDate
	}
	authUnix, err := strconv.ParseInt(authDateRaw, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMissingAuthDate, err)
	}
	// Boundary is inclusive: auth data aged exactly maxAge is still accepted.
	if v.clock.Now().Sub(time.Unix(authUnix, 0)) > v.maxAge {
		return nil, ErrExpiredAuthData
	}

	userRaw := values.Get("user")
	if userRaw == "" {
		return nil, ErrMissingUser
	}

	var user WebAppUser
	if err := json.Unmarshal([]byte(userRaw), &user); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidUser, err)
	}

	return &user, nil
}

// computeHash builds the canonical data-check-string from the remaining pairs and
// signs it with the per-bot derived secret key.
func computeHash(values url.Values, botToken string) string {
	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	lines := make([]string, 0, len(keys))
	for _, k := range keys {
		lines = append(lines, k+"="+values.Get(k))
	}
	checkString := strings.Join(lines, "\n")

	secret := hmac.New(sha256.New, []byte("WebAppData"))
	secret.Write([]byte(botToken))

	mac := hmac.New(sha256.New, secret.Sum(nil))
	mac.Write([]byte(checkString))
	return hex.EncodeToString(mac.Sum(nil))
}
