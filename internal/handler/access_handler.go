package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"spaceshooter/backend/internal/access"
	"spaceshooter/backend/internal/apierr"
	"spaceshooter/backend/internal/auth"
	"spaceshooter/backend/internal/models"
)

// region --- DTOs ---

// AccessRequestInput carries the optional comment for a new join request.
type AccessRequestInput struct {
	Comment string `json:"comment" binding:"max=1024" example:"I play on hard"`
}

// AccessRequestInfo summarizes the user's most recent join request.
type AccessRequestInfo struct {
	ID             uint                     `json:"id" example:"1"`
	Status         models.JoinRequestStatus `json:"status" example:"PENDING"`
	Comment        string                   `json:"comment,omitempty"`
	DecisionReason string                   `json:"decision_reason,omitempty"`
}

// AccessStatusResponse reports the user's status and latest request, if any.
type AccessStatusResponse struct {
	Status  models.UserStatus  `json:"status" example:"REQUESTED"`
	Request *AccessRequestInfo `json:"request"`
}

// OkResponse is the generic success body.
type OkResponse struct {
	OK bool `json:"ok" example:"true"`
}

// endregion

// AccessHandler serves the join-request workflow from the user's side.
type AccessHandler struct {
	accessSvc *access.Service
}

// NewAccessHandler creates an AccessHandler.
func NewAccessHandler(accessSvc *access.Service) *AccessHandler {
	return &AccessHandler{accessSvc: accessSvc}
}

// GetStatus godoc
// @Summary      Get current access status
// @Description  Returns the caller's authorization status and their most recent join request.
// @Tags         access
// @Produce      json
// @Success      200  {object}  AccessStatusResponse
// @Failure      401  {object}  apierr.ErrorResponse
// @Router       /access/status [get]
func (h *AccessHandler) GetStatus(c *gin.Context) {
	user, ok := auth.CurrentUser(c)
	if !ok {
		apierr.Abort(c, apierr.NewUnauthorizedError())
		return
	}

	status, latest, err := h.accessSvc.AccessStatus(c.Request.Context(), user.ID)
	if err != nil {
		apierr.Abort(c, err)
		return
	}

	response := AccessStatusResponse{Status: status}
	if latest != nil {
		response.Request = &AccessRequestInfo{
			ID:             latest.ID,
			Status:         latest.Status,
			Comment:        latest.Comment,
			DecisionReason: latest.DecisionReason,
		}
	}

	c.JSON(http.StatusOK, response)
}

// CreateRequest godoc
// @Summary      File a join request
// @Description  Opens a new pending join request for the caller and notifies admins.
// @Tags         access
// @Accept       json
// @Produce      json
// @Param        input body AccessRequestInput true "Request comment"
// @Success      200  {object}  OkResponse
// @Failure      400  {object}  apierr.ErrorResponse
// @Failure      401  {object}  apierr.ErrorResponse
// @Failure      409  {object}  apierr.ErrorResponse
// @Router       /access/request [post]
func (h *AccessHandler) CreateRequest(c *gin.Context) {
	user, ok := auth.CurrentUser(c)
	if !ok {
		apierr.Abort(c, apierr.NewUnauthorizedError())
		return
	}

	var input AccessRequestInput
	if err := c.ShouldBindJSON(&input); err != nil {
		apierr.Abort(c, apierr.NewInvalidRequestError(err.Error()))
		return
	}

	if _, err := h.accessSvc.FileJoinRequest(c.Request.Context(), user.ID, input.Comment); err != nil {
		apierr.Abort(c, err)
		return
	}

	c.JSON(http.StatusOK, OkResponse{OK: true})
}
