package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "kakeibo/internal/errors"
	"kakeibo/internal/services"
)

// LimitHandler handles limit settings requests.
type LimitHandler struct {
	limitService services.LimitServicer
	auditService services.AuditServicer
}

// NewLimitHandler creates a new LimitHandler.
func NewLimitHandler(limitService services.LimitServicer, auditService services.AuditServicer) *LimitHandler {
	return &LimitHandler{limitService: limitService, auditService: auditService}
}

// LimitRequest represents the payload for setting the spending limits.
type LimitRequest struct {
	WeeklyLimit  float64 `json:"weekly_limit" binding:"gte=0"`
	MonthlyLimit float64 `json:"monthly_limit" binding:"gte=0"`
}

// UpsertLimit handles creating or replacing the limit settings.
// @Summary     Set spending limits
// @Description Create or replace the weekly and monthly spending limits
// @Tags        limits
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body LimitRequest true "Limit settings"
// @Success     200 {object} models.LimitSettings "Limit settings saved"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /limit [put]
func (h *LimitHandler) UpsertLimit(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req LimitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	limit, err := h.limitService.UpsertLimit(req.WeeklyLimit, req.MonthlyLimit)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "SET_LIMIT", "limit_settings", limit.ID, c.ClientIP(),
		map[string]interface{}{"weekly_limit": req.WeeklyLimit, "monthly_limit": req.MonthlyLimit})

	c.JSON(http.StatusOK, gin.H{"limit": limit})
}

// GetLimit handles retrieving the limit settings.
// @Summary     Get spending limits
// @Description Get the configured limits; unset limits read as zero
// @Tags        limits
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} models.LimitSettings "Limit settings"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /limit [get]
func (h *LimitHandler) GetLimit(c *gin.Context) {
	limit, err := h.limitService.GetLimit()
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"limit": limit})
}
