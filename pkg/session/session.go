// Package session issues and validates the backend's signed session credential.
package session

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"spaceshooter/backend/internal/clock"
)

// Errors
var (
	ErrInvalidToken = errors.New("invalid session token")
	ErrExpiredToken = errors.New("session token expired")
)

// Claims binds a local user id (subject) to a Telegram identity with an expiry.
type Claims struct {
	TelegramID int64 `json:"telegram_id"`
	jwt.RegisteredClaims
}

// UserID parses the local user id out of the subject claim.
func (c *Claims) UserID() (uint, error) {
	id, err := strconv.ParseUint(c.Subject, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("%w: bad subject", ErrInvalidToken)
	}
	return uint(id), nil
}

// Codec is a pure encode/decode boundary for session tokens. It performs no
// storage lookups; binding a token to a live user record is the caller's job.
type Codec struct {
	secret []byte
	clock  clock.Clock
}

// NewCodec creates a Codec signing with the given symmetric secret.
func NewCodec(secret string, clk clock.Clock) *Codec {
	return &Codec{secret: []byte(secret), clock: clk}
}

// Issue creates a signed HS256 token for the given user, valid for ttl.
func (c *Codec) Issue(userID uint, telegramID int64, ttl time.Duration) (string, error) {
	now := c.clock.Now()
	claims := Claims{
		TelegramID: telegramID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatUint(uint64(userID), 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(c.secret)
}

// Validate parses and verifies a token. A structurally valid but expired token
// fails with ErrExpiredToken; any other defect fails with ErrInvalidToken.
func (c *Codec) Validate(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return c.secret, nil
	}, jwt.WithTimeFunc(c.clock.Now))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if !token.Valid {
		return nil, ErrInvalidToken
	}

	return claims, nil
}
