package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"spaceshooter/backend/internal/access"
	"spaceshooter/backend/internal/apierr"
	"spaceshooter/backend/internal/models"
	"spaceshooter/backend/internal/telegram"
	"spaceshooter/backend/pkg/session"
)

// region --- DTOs ---

// TelegramAuthInput carries the raw initData payload from the Mini App.
type TelegramAuthInput struct {
	InitData string `json:"initData" binding:"required"`
}

// UserResponse is the user profile as exposed over the API.
type UserResponse struct {
	ID         uint              `json:"id" example:"1"`
	TelegramID int64             `json:"telegram_id" example:"99001122"`
	Username   string            `json:"username,omitempty" example:"adal"`
	FirstName  string            `json:"first_name" example:"Ada"`
	LastName   string            `json:"last_name,omitempty" example:"Lovelace"`
	PhotoURL   string            `json:"photo_url,omitempty"`
	Status     models.UserStatus `json:"status" example:"NEW"`
}

// TelegramAuthResponse is returned after a successful login.
type TelegramAuthResponse struct {
	User    UserResponse      `json:"user"`
	Status  models.UserStatus `json:"status"`
	IsAdmin bool              `json:"is_admin"`
}

// endregion

// AuthHandler serves the Telegram login endpoint.
type AuthHandler struct {
	verifier     *telegram.Verifier
	accessSvc    *access.Service
	codec        *session.Codec
	cookieName   string
	cookieSecure bool
	sessionTTL   time.Duration
}

// NewAuthHandler creates an AuthHandler.
func NewAuthHandler(verifier *telegram.Verifier, accessSvc *access.Service, codec *session.Codec,
	cookieName string, cookieSecure bool, sessionTTL time.Duration) *AuthHandler {
	return &AuthHandler{
		verifier:     verifier,
		accessSvc:    accessSvc,
		codec:        codec,
		cookieName:   cookieName,
		cookieSecure: cookieSecure,
		sessionTTL:   sessionTTL,
	}
}

// AuthTelegram godoc
// @Summary      Authenticate with Telegram initData
// @Description  Verifies the Mini App initData signature, upserts the user and sets the session cookie.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        input body TelegramAuthInput true "Telegram initData"
// @Success      200  {object}  TelegramAuthResponse
// @Failure      400  {object}  apierr.ErrorResponse
// @Failure      401  {object}  apierr.ErrorResponse
// @Router       /auth/telegram [post]
func (h *AuthHandler) AuthTelegram(c *gin.Context) {
	var input TelegramAuthInput
	if err := c.ShouldBindJSON(&input); err != nil {
		apierr.Abort(c, apierr.NewInvalidRequestError(err.Error()))
		return
	}

	claim, err := h.verifier.Verify(input.InitData)
	if err != nil {
		apierr.Abort(c, err)
		return
	}

	user, err := h.accessSvc.ResolveIdentity(c.Request.Context(), claim)
	if err != nil {
		apierr.Abort(c, err)
		return
	}

	token, err := h.codec.Issue(user.ID, user.TelegramID, h.sessionTTL)
	if err != nil {
		apierr.Abort(c, err)
		return
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(h.cookieName, token, int(h.sessionTTL.Seconds()), "/", "", h.cookieSecure, true)

	c.JSON(http.StatusOK, TelegramAuthResponse{
		User:    buildUserResponse(user),
		Status:  user.Status,
		IsAdmin: h.accessSvc.IsAdmin(user.TelegramID),
	})
}

func buildUserResponse(user *models.User) UserResponse {
	return UserResponse{
		ID:         user.ID,
		TelegramID: user.TelegramID,
		Username:   user.Username,
		FirstName:  user.FirstName,
		LastName:   user.LastName,
		PhotoURL:   user.PhotoURL,
		Status:     user.Status,
	}
}
