package auth

import (
	"github.com/gin-gonic/gin"

	"spaceshooter/backend/internal/apierr"
	"spaceshooter/backend/internal/models"
)

// RequireApproved creates a gin middleware that gates gameplay endpoints.
// It must be used AFTER RequireSession.
func RequireApproved() gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := CurrentUser(c)
		if !ok {
			apierr.Abort(c, apierr.NewUnauthorizedError())
			return
		}

		if user.Status != models.StatusApproved {
			apierr.Abort(c, apierr.NewNotApprovedError())
			return
		}

		c.Next()
	}
}
