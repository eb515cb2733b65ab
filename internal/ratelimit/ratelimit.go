// Package ratelimit implements a fixed-window attempt counter backed by a
// database row per (key, window). The count only ever advances through a
// conditional UPDATE, so concurrent requests cannot push it past the limit.
package ratelimit

import (
	"strings"
	"time"

	"gorm.io/gorm"

	"ecoshop/internal/models"
)

// Limiter counts attempts per string identifier, e.g. "login:"+IP.
type Limiter interface {
	// Allow records an attempt and reports whether it is within
	// maxAttempts per window. It fails closed at the limit.
	Allow(key string, maxAttempts int, window time.Duration) (bool, error)
}

type dbLimiter struct {
	db  *gorm.DB
	now func() time.Time
}

// NewLimiter creates a database-backed limiter.
func NewLimiter(db *gorm.DB) Limiter {
	return &dbLimiter{db: db, now: time.Now}
}

func (l *dbLimiter) Allow(key string, maxAttempts int, window time.Duration) (bool, error) {
	windowStart := l.now().Truncate(window)

	ok, err := l.increment(key, windowStart, maxAttempts)
	if err != nil || ok {
		return ok, err
	}

	// No row updated: either the window row does not exist yet or the
	// limit is reached. Try to open the window; a unique-constraint
	// failure means another request opened it first, so retry the
	// conditional increment once.
	counter := models.RateLimitCounter{Key: key, WindowStart: windowStart, Count: 1}
	createErr := l.db.Create(&counter).Error
	if createErr == nil {
		l.reapStaleWindows(key, windowStart)
		return true, nil
	}
	if !isUniqueConstraintError(createErr) {
		return false, createErr
	}

	return l.increment(key, windowStart, maxAttempts)
}

// increment bumps the counter only while it is below the limit. A zero
// RowsAffected means the row is missing or the limit is reached.
func (l *dbLimiter) increment(key string, windowStart time.Time, maxAttempts int) (bool, error) {
	result := l.db.Model(&models.RateLimitCounter{}).
		Where("key = ? AND window_start = ? AND count < ?", key, windowStart, maxAttempts).
		Update("count", gorm.Expr("count + 1"))
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// reapStaleWindows drops this key's rows from earlier windows.
func (l *dbLimiter) reapStaleWindows(key string, windowStart time.Time) {
	l.db.Where("key = ? AND window_start < ?", key, windowStart).
		Delete(&models.RateLimitCounter{})
}

// isUniqueConstraintError checks if a GORM error is a unique constraint violation.
func isUniqueConstraintError(err error) bool {
	msg := err.Error()
	return strings.Contains(msg, "UNIQUE constraint failed") || // SQLite
		strings.Contains(msg, "duplicate key value violates unique constraint") // PostgreSQL
}
