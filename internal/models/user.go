package models

import "time"

// User represents a storefront account. The password hash and the
// lockout bookkeeping never serialize to clients.
type User struct {
	Base
	Email               string     `gorm:"uniqueIndex;not null" json:"email"`
	Name                string     `gorm:"not null" json:"name"`
	PasswordHash        string     `gorm:"not null" json:"-"`
	IsAdmin             bool       `gorm:"default:false" json:"is_admin"`
	IsActive            bool       `gorm:"default:true" json:"is_active"`
	FailedLoginAttempts int        `gorm:"default:0" json:"-"`
	LockedUntil         *time.Time `json:"-"`
	LastLogin           *time.Time `json:"last_login,omitempty"`
	Orders              []Order    `gorm:"foreignKey:UserID" json:"orders,omitempty"`
}

// AdminUserView is the projection admins see in the user list: it exposes
// the lockout counters the default JSON shape hides.
type AdminUserView struct {
	ID                  uint       `json:"id"`
	Email               string     `json:"email"`
	Name                string     `json:"name"`
	IsAdmin             bool       `json:"is_admin"`
	IsActive            bool       `json:"is_active"`
	FailedLoginAttempts int        `json:"failed_login_attempts"`
	LockedUntil         *time.Time `json:"locked_until,omitempty"`
	LastLogin           *time.Time `json:"last_login,omitempty"`
	CreatedAt           time.Time  `json:"created_at"`
}

// AdminView returns the admin projection of the user.
func (u *User) AdminView() AdminUserView {
	return AdminUserView{
		ID:                  u.ID,
		Email:               u.Email,
		Name:                u.Name,
		IsAdmin:             u.IsAdmin,
		IsActive:            u.IsActive,
		FailedLoginAttempts: u.FailedLoginAttempts,
		LockedUntil:         u.LockedUntil,
		LastLogin:           u.LastLogin,
		CreatedAt:           u.CreatedAt,
	}
}
