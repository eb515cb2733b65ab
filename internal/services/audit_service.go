package services

import (
	"encoding/json"

	"gorm.io/gorm"

	"ecoshop/internal/logger"
	"ecoshop/internal/models"
)

// auditService appends security events to the audit table.
type auditService struct {
	db *gorm.DB
}

// NewAuditService creates a new AuditServicer.
func NewAuditService(db *gorm.DB) AuditServicer {
	return &auditService{db: db}
}

// Record persists a security event. Errors are logged but never propagate
// to avoid disrupting the main operation.
func (s *auditService) Record(event string, userID uint, ipAddress, userAgent string, details map[string]interface{}) {
	var detailsJSON string
	if details != nil {
		data, err := json.Marshal(details)
		if err != nil {
			logger.Get().Errorw("failed to marshal security event details", "error", err, "event", event)
			detailsJSON = "{}"
		} else {
			detailsJSON = string(data)
		}
	}

	entry := &models.SecurityEvent{
		Event:     event,
		UserID:    userID,
		IPAddress: ipAddress,
		UserAgent: userAgent,
		Details:   detailsJSON,
	}

	if err := s.db.Create(entry).Error; err != nil {
		logger.Get().Errorw("failed to record security event",
			"error", err,
			"event", event,
			"user_id", userID,
			"ip", ipAddress,
		)
	}
}
