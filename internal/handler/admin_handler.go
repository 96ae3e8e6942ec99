package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"spaceshooter/backend/internal/access"
	"spaceshooter/backend/internal/apierr"
	"spaceshooter/backend/internal/auth"
	"spaceshooter/backend/internal/models"
	"spaceshooter/backend/internal/store"
)

// region --- DTOs ---

// AdminDecisionInput carries the optional reason for an approve/reject decision.
type AdminDecisionInput struct {
	Reason string `json:"reason" binding:"max=1024" example:"welcome aboard"`
}

// AdminRequestItem is one join request with its owner's profile, for the admin panel.
type AdminRequestItem struct {
	RequestID      uint                     `json:"request_id"`
	CreatedAt      time.Time                `json:"created_at"`
	Status         models.JoinRequestStatus `json:"status"`
	Comment        string                   `json:"comment,omitempty"`
	DecisionReason string                   `json:"decision_reason,omitempty"`
	TelegramID     int64                    `json:"telegram_id"`
	Username       string                   `json:"username,omitempty"`
	FirstName      string                   `json:"first_name"`
	LastName       string                   `json:"last_name,omitempty"`
}

// AdminUserItem is one user row for the admin panel.
type AdminUserItem struct {
	ID         uint              `json:"id"`
	TelegramID int64             `json:"telegram_id"`
	Username   string            `json:"username,omitempty"`
	FirstName  string            `json:"first_name"`
	LastName   string            `json:"last_name,omitempty"`
	Status     models.UserStatus `json:"status"`
	CreatedAt  time.Time         `json:"created_at"`
}

// endregion

// AdminHandler serves the admin decision surface.
type AdminHandler struct {
	accessSvc *access.Service
	store     store.Store
}

// NewAdminHandler creates an AdminHandler.
func NewAdminHandler(accessSvc *access.Service, st store.Store) *AdminHandler {
	return &AdminHandler{accessSvc: accessSvc, store: st}
}

// ListRequests godoc
// @Summary      List join requests
// @Description  Lists all join requests, newest first, with the requesting user's profile.
// @Tags         admin
// @Produce      json
// @Param        page  query     int  false  "Page number" default(1)
// @Param        limit query     int  false  "Items per page" default(50)
// @Success      200  {object}  PaginatedResponse[AdminRequestItem]
// @Failure      401  {object}  apierr.ErrorResponse
// @Failure      403  {object}  apierr.ErrorResponse
// @Router       /admin/requests [get]
func (h *AdminHandler) ListRequests(c *gin.Context) {
	page, limit := pageParams(c)

	requests, totalItems, err := h.store.ListJoinRequests(c.Request.Context(), page, limit)
	if err != nil {
		apierr.Abort(c, err)
		return
	}

	items := make([]AdminRequestItem, 0, len(requests))
	for _, req := range requests {
		items = append(items, AdminRequestItem{
			RequestID:      req.ID,
			CreatedAt:      req.CreatedAt,
			Status:         req.Status,
			Comment:        req.Comment,
			DecisionReason: req.DecisionReason,
			TelegramID:     req.User.TelegramID,
			Username:       req.User.Username,
			FirstName:      req.User.FirstName,
			LastName:       req.User.LastName,
		})
	}

	c.JSON(http.StatusOK, NewPaginatedResponse(items, totalItems, page, limit))
}

// ApproveRequest godoc
// @Summary      Approve a join request
// @Description  Approves a pending request and grants the owner gameplay access.
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        id    path  int                 true  "Request ID"
// @Param        input body  AdminDecisionInput  true  "Decision reason"
// @Success      200  {object}  OkResponse
// @Failure      400  {object}  apierr.ErrorResponse
// @Failure      404  {object}  apierr.ErrorResponse
// @Failure      409  {object}  apierr.ErrorResponse
// @Router       /admin/requests/{id}/approve [post]
func (h *AdminHandler) ApproveRequest(c *gin.Context) {
	h.decide(c, access.DecisionApprove)
}

// RejectRequest godoc
// @Summary      Reject a join request
// @Description  Rejects a pending request; the owner may file a new one later.
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        id    path  int                 true  "Request ID"
// @Param        input body  AdminDecisionInput  true  "Decision reason"
// @Success      200  {object}  OkResponse
// @Failure      400  {object}  apierr.ErrorResponse
// @Failure      404  {object}  apierr.ErrorResponse
// @Failure      409  {object}  apierr.ErrorResponse
// @Router       /admin/requests/{id}/reject [post]
func (h *AdminHandler) RejectRequest(c *gin.Context) {
	h.decide(c, access.DecisionReject)
}

func (h *AdminHandler) decide(c *gin.Context, decision access.Decision) {
	admin, ok := auth.CurrentUser(c)
	if !ok {
		apierr.Abort(c, apierr.NewUnauthorizedError())
		return
	}

	requestID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		apierr.Abort(c, apierr.NewInvalidRequestError("Invalid request ID"))
		return
	}

	var input AdminDecisionInput
	if err := c.ShouldBindJSON(&input); err != nil {
		apierr.Abort(c, apierr.NewInvalidRequestError(err.Error()))
		return
	}

	if err := h.accessSvc.Decide(c.Request.Context(), uint(requestID), decision, admin.TelegramID, input.Reason); err != nil {
		apierr.Abort(c, err)
		return
	}

	c.JSON(http.StatusOK, OkResponse{OK: true})
}

// ListUsers godoc
// @Summary      List users
// @Description  Lists all known users, newest first.
// @Tags         admin
// @Produce      json
// @Param        page  query     int  false  "Page number" default(1)
// @Param        limit query     int  false  "Items per page" default(50)
// @Success      200  {object}  PaginatedResponse[AdminUserItem]
// @Failure      401  {object}  apierr.ErrorResponse
// @Failure      403  {object}  apierr.ErrorResponse
// @Router       /admin/users [get]
func (h *AdminHandler) ListUsers(c *gin.Context) {
	page, limit := pageParams(c)

	users, totalItems, err := h.store.ListUsers(c.Request.Context(), page, limit)
	if err != nil {
		apierr.Abort(c, err)
		return
	}

	items := make([]AdminUserItem, 0, len(users))
	for _, user := range users {
		items = append(items, AdminUserItem{
			ID:         user.ID,
			TelegramID: user.TelegramID,
			Username:   user.Username,
			FirstName:  user.FirstName,
			LastName:   user.LastName,
			Status:     user.Status,
			CreatedAt:  user.CreatedAt,
		})
	}

	c.JSON(http.StatusOK, NewPaginatedResponse(items, totalItems, page, limit))
}
