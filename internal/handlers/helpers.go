package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "ecoshop/internal/errors"
	"ecoshop/internal/logger"
)

// APIResponse is the envelope every endpoint returns.
type APIResponse struct {
	Success   bool        `json:"success"`
	Message   string      `json:"message"`
	Data      interface{} `json:"data,omitempty"`
	Timestamp string      `json:"timestamp"`
}

// ErrorResponse documents the failure shape for swagger.
type ErrorResponse struct {
	Success   bool   `json:"success" example:"false"`
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
}

func timestamp() string {
	return time.Now().UTC().Format(time.RFC3339)
}

// respondSuccess writes the success envelope.
func respondSuccess(c *gin.Context, status int, message string, data interface{}) {
	c.JSON(status, APIResponse{
		Success:   true,
		Message:   message,
		Data:      data,
		Timestamp: timestamp(),
	})
}

// respondError writes a consistent JSON error response. If the error is an
// *AppError it uses the error's status code and message. Otherwise it logs
// the unexpected error and returns a generic internal server error.
func respondError(c *gin.Context, err error) {
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		if appErr.Internal != nil {
			logger.Get().Errorw("app error",
				"code", appErr.Code,
				"internal", appErr.Internal.Error(),
				"path", c.Request.URL.Path,
			)
		}
		c.JSON(appErr.StatusCode, APIResponse{
			Success:   false,
			Message:   appErr.Message,
			Timestamp: timestamp(),
		})
		return
	}

	logger.Get().Errorw("unexpected error",
		"error", err.Error(),
		"path", c.Request.URL.Path,
		"method", c.Request.Method,
	)
	c.JSON(http.StatusInternalServerError, APIResponse{
		Success:   false,
		Message:   apperrors.ErrInternalServer.Message,
		Timestamp: timestamp(),
	})
}

// userProjection is the client-safe view of an account. The session IP and
// password hash never appear here.
func userProjection(id uint, email, name string, isAdmin bool) gin.H {
	return gin.H{
		"id":       id,
		"email":    email,
		"name":     name,
		"is_admin": isAdmin,
	}
}
