package models

import "time"

// RateLimitCounter is a fixed-window attempt counter. One row exists per
// (key, window_start); Count advances only through a conditional UPDATE so
// concurrent requests cannot exceed the limit.
type RateLimitCounter struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Key         string    `gorm:"not null;uniqueIndex:idx_rate_key_window" json:"key"`
	WindowStart time.Time `gorm:"not null;uniqueIndex:idx_rate_key_window" json:"window_start"`
	Count       int       `gorm:"not null;default:0" json:"count"`
}
