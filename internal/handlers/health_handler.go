package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	apperrors "ecoshop/internal/errors"
)

// HealthHandler reports service liveness
type HealthHandler struct {
	db *gorm.DB
}

// NewHealthHandler creates a new HealthHandler
func NewHealthHandler(db *gorm.DB) *HealthHandler {
	return &HealthHandler{db: db}
}

// Check pings the database and reports status.
// @Summary     Health check
// @Tags        health
// @Produce     json
// @Success     200 {object} APIResponse "Service healthy"
// @Failure     503 {object} ErrorResponse "Database unreachable"
// @Router      /health [get]
func (h *HealthHandler) Check(c *gin.Context) {
	sqlDB, err := h.db.DB()
	if err != nil {
		respondError(c, apperrors.Wrap(apperrors.ErrUnavailable, err))
		return
	}
	if err := sqlDB.PingContext(c.Request.Context()); err != nil {
		respondError(c, apperrors.Wrap(apperrors.ErrUnavailable, err))
		return
	}

	respondSuccess(c, http.StatusOK, "OK", gin.H{"status": "healthy"})
}
