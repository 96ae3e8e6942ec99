package auth

import (
	"errors"

	"github.com/gin-gonic/gin"

	"spaceshooter/backend/internal/apierr"
	"spaceshooter/backend/internal/models"
	"spaceshooter/backend/internal/store"
	"spaceshooter/backend/pkg/session"
)

const userContextKey = "currentUser"

// RequireSession creates a gin middleware that authenticates the session cookie.
// It validates the token, loads the user record and requires the token's
// Telegram id to match the stored one, then stashes the user in the context.
func RequireSession(codec *session.Codec, st store.Store, cookieName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(cookieName)
		if err != nil || token == "" {
			apierr.Abort(c, apierr.NewUnauthorizedError())
			return
		}

		claims, err := codec.Validate(token)
		if err != nil {
			apierr.Abort(c, err)
			return
		}

		userID, err := claims.UserID()
		if err != nil {
			apierr.Abort(c, err)
			return
		}

		user, err := st.GetUserByID(c.Request.Context(), userID)
		if err != nil {
			if errors.Is(err, store.ErrUserNotFound) {
				apierr.Abort(c, apierr.NewUnauthorizedError())
				return
			}
			apierr.Abort(c, err)
			return
		}

		if user.TelegramID != claims.TelegramID {
			apierr.Abort(c, apierr.NewUnauthorizedError())
			return
		}

		c.Set(userContextKey, user)
		c.Next()
	}
}

// CurrentUser returns the authenticated user stashed by RequireSession.
func CurrentUser(c *gin.Context) (*models.User, bool) {
	value, exists := c.Get(userContextKey)
	if !exists {
		return nil, false
	}
	user, ok := value.(*models.User)
	return user, ok
}
