package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"spaceshooter/backend/internal/apierr"
	"spaceshooter/backend/internal/auth"
	"spaceshooter/backend/internal/game"
	"spaceshooter/backend/internal/models"
)

// region --- DTOs ---

// ScoreInput carries one finished game run.
type ScoreInput struct {
	Difficulty models.Difficulty `json:"difficulty" binding:"required,oneof=easy normal hard" example:"easy"`
	Score      *int              `json:"score" binding:"required,min=0,max=1000000" example:"1500"`
}

// endregion

// GameHandler serves gameplay endpoints for approved users.
type GameHandler struct {
	gameSvc *game.Service
}

// NewGameHandler creates a GameHandler.
func NewGameHandler(gameSvc *game.Service) *GameHandler {
	return &GameHandler{gameSvc: gameSvc}
}

// SubmitScore godoc
// @Summary      Submit a score
// @Description  Records one game result for the authenticated, approved user.
// @Tags         game
// @Accept       json
// @Produce      json
// @Param        input body ScoreInput true "Game result"
// @Success      200  {object}  OkResponse
// @Failure      400  {object}  apierr.ErrorResponse
// @Failure      401  {object}  apierr.ErrorResponse
// @Failure      403  {object}  apierr.ErrorResponse
// @Router       /game/score [post]
func (h *GameHandler) SubmitScore(c *gin.Context) {
	user, ok := auth.CurrentUser(c)
	if !ok {
		apierr.Abort(c, apierr.NewUnauthorizedError())
		return
	}

	var input ScoreInput
	if err := c.ShouldBindJSON(&input); err != nil {
		apierr.Abort(c, apierr.NewInvalidRequestError(err.Error()))
		return
	}

	if err := h.gameSvc.SubmitScore(c.Request.Context(), user.ID, input.Difficulty, *input.Score); err != nil {
		apierr.Abort(c, err)
		return
	}

	c.JSON(http.StatusOK, OkResponse{OK: true})
}

// GetLeaderboard godoc
// @Summary      Get the leaderboard
// @Description  Returns the top approved players for one difficulty tier.
// @Tags         game
// @Produce      json
// @Param        difficulty query string false "Difficulty tier" Enums(easy, normal, hard) default(easy)
// @Success      200  {array}   store.LeaderboardRow
// @Failure      400  {object}  apierr.ErrorResponse
// @Failure      401  {object}  apierr.ErrorResponse
// @Failure      403  {object}  apierr.ErrorResponse
// @Router       /game/leaderboard [get]
func (h *GameHandler) GetLeaderboard(c *gin.Context) {
	difficulty := models.Difficulty(c.DefaultQuery("difficulty", string(models.DifficultyEasy)))
	if !difficulty.Valid() {
		apierr.Abort(c, apierr.NewInvalidRequestError("unknown difficulty"))
		return
	}

	rows, err := h.gameSvc.Leaderboard(c.Request.Context(), difficulty)
	if err != nil {
		apierr.Abort(c, err)
		return
	}

	c.JSON(http.StatusOK, rows)
}
