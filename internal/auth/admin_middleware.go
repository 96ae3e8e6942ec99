package auth

import (
	"github.com/gin-gonic/gin"

	"spaceshooter/backend/internal/access"
	"spaceshooter/backend/internal/apierr"
)

// RequireAdmin creates a gin middleware that restricts a route to configured
// admins. Membership is a pure predicate over the caller's Telegram id, not a
// stored role. It must be used AFTER RequireSession.
func RequireAdmin(svc *access.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := CurrentUser(c)
		if !ok {
			apierr.Abort(c, apierr.NewUnauthorizedError())
			return
		}

		if !svc.IsAdmin(user.TelegramID) {
			apierr.Abort(c, apierr.NewAdminRequiredError())
			return
		}

		c.Next()
	}
}
