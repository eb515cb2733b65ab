package models

// SecurityEvent is one row of the append-only security audit log:
// failed logins, lockouts, session anomalies, rate-limit hits.
type SecurityEvent struct {
	Base
	Event     string `gorm:"not null;index" json:"event"`
	UserID    uint   `gorm:"index" json:"user_id,omitempty"`
	IPAddress string `json:"ip_address"`
	UserAgent string `json:"user_agent"`
	Details   string `json:"details,omitempty"`
}
