package services

import (
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"

	apperrors "ecoshop/internal/errors"
	"ecoshop/internal/models"
	"ecoshop/internal/pagination"
	"ecoshop/internal/password"
	"ecoshop/internal/validator"
)

const (
	maxFailedLogins = 5
	lockoutDuration = 30 * time.Minute
)

// userService handles account and credential business logic.
type userService struct {
	db *gorm.DB
}

// NewUserService creates a new UserServicer.
func NewUserService(db *gorm.DB) UserServicer {
	return &userService{db: db}
}

// Register validates and creates a new storefront account. The user row is
// written inside a transaction so a failure never leaves a partial account.
func (s *userService) Register(email, name, plaintext string) (*models.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	name = strings.TrimSpace(name)

	if email == "" || name == "" || plaintext == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "email, name and password are required")
	}
	if validator.IsDisposableEmail(email) {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "Invalid email format")
	}
	if violations := validator.PasswordRuleViolations(plaintext); len(violations) > 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, strings.Join(violations, ". "))
	}

	var count int64
	if err := s.db.Model(&models.User{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if count > 0 {
		return nil, apperrors.ErrDuplicateEmail
	}

	hash, err := password.Hash(plaintext)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	user := &models.User{
		Email:        email,
		Name:         name,
		PasswordHash: hash,
		IsAdmin:      false,
		IsActive:     true,
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(user).Error; err != nil {
			if isUniqueConstraintError(err) {
				return apperrors.ErrDuplicateEmail
			}
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		return nil
	})
	if err != nil {
		var appErr *apperrors.AppError
		if errors.As(err, &appErr) {
			return nil, appErr
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return user, nil
}

// AttemptLogin verifies credentials with lockout bookkeeping. A failure
// increments the counter and locks the account at the threshold; success
// resets it and stamps the login time. The not-found and wrong-password
// paths return the same error so accounts cannot be enumerated.
func (s *userService) AttemptLogin(email, plaintext string) (*models.User, error) {
	user, err := s.GetUserByEmail(email)
	if err != nil {
		return nil, apperrors.ErrInvalidCredentials
	}

	if user.LockedUntil != nil && user.LockedUntil.After(time.Now()) {
		return nil, apperrors.ErrAccountLocked
	}

	ok, err := password.Verify(plaintext, user.PasswordHash)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if !ok {
		attempts := user.FailedLoginAttempts + 1
		updates := map[string]interface{}{"failed_login_attempts": attempts}
		if attempts >= maxFailedLogins {
			updates["locked_until"] = time.Now().Add(lockoutDuration)
		}
		if err := s.db.Model(user).Updates(updates).Error; err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		return nil, apperrors.ErrInvalidCredentials
	}

	now := time.Now()
	if err := s.db.Model(user).Updates(map[string]interface{}{
		"failed_login_attempts": 0,
		"locked_until":          nil,
		"last_login":            now,
	}).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	user.FailedLoginAttempts = 0
	user.LockedUntil = nil
	user.LastLogin = &now

	return user, nil
}

// GetUserByEmail retrieves an active user by email.
func (s *userService) GetUserByEmail(email string) (*models.User, error) {
	var user models.User
	if err := s.db.Where("email = ? AND is_active = ?", strings.ToLower(email), true).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &user, nil
}

// GetUserByID retrieves a user by ID.
func (s *userService) GetUserByID(id uint) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &user, nil
}

// ListUsers returns the admin projection of all users, newest first.
func (s *userService) ListUsers(page pagination.PageRequest) (*pagination.Page[models.AdminUserView], error) {
	page.Defaults()

	var totalItems int64
	if err := s.db.Model(&models.User{}).Count(&totalItems).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var users []models.User
	if err := s.db.Order("created_at DESC").Scopes(pagination.Scope(page)).Find(&users).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	views := make([]models.AdminUserView, 0, len(users))
	for i := range users {
		views = append(views, users[i].AdminView())
	}

	result := pagination.NewPage(views, page, totalItems)
	return &result, nil
}

// UpdateUser applies an admin partial update.
func (s *userService) UpdateUser(id uint, update UserUpdate) (*models.User, error) {
	user, err := s.GetUserByID(id)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if update.Name != nil {
		name := strings.TrimSpace(*update.Name)
		if name == "" {
			return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "Name cannot be empty")
		}
		updates["name"] = name
	}
	if update.IsActive != nil {
		updates["is_active"] = *update.IsActive
	}
	if update.IsAdmin != nil {
		updates["is_admin"] = *update.IsAdmin
	}

	if len(updates) == 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "No valid fields to update")
	}

	if err := s.db.Model(user).Updates(updates).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return s.GetUserByID(id)
}

// isUniqueConstraintError checks if a GORM error is a unique constraint violation.
func isUniqueConstraintError(err error) bool {
	msg := err.Error()
	return strings.Contains(msg, "UNIQUE constraint failed") || // SQLite
		strings.Contains(msg, "duplicate key value violates unique constraint") // PostgreSQL
}
