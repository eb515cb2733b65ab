// Package errors provides custom error types for the EcoShop API.
// All service-layer errors should use AppError to ensure consistent,
// secure error responses that never leak internal details to clients.
package errors

import "net/http"

// AppError represents a structured application error with an error code,
// human-readable message, HTTP status code, and optional internal error.
type AppError struct {
	Code       string `json:"code"`
	Message    string `json:"message"`
	StatusCode int    `json:"-"`
	Internal   error  `json:"-"`
}

// Error implements the error interface.
func (e *AppError) Error() string { return e.Message }

// Unwrap returns the internal error for use with errors.Is/As.
func (e *AppError) Unwrap() error { return e.Internal }

// Wrap creates a new AppError with the same code/message/status but wraps an internal error.
func Wrap(sentinel *AppError, internal error) *AppError {
	return &AppError{
		Code:       sentinel.Code,
		Message:    sentinel.Message,
		StatusCode: sentinel.StatusCode,
		Internal:   internal,
	}
}

// WithMessage creates a new AppError with a custom message.
func WithMessage(sentinel *AppError, message string) *AppError {
	return &AppError{
		Code:       sentinel.Code,
		Message:    message,
		StatusCode: sentinel.StatusCode,
		Internal:   sentinel.Internal,
	}
}

// Authentication & authorization errors.
var (
	ErrUnauthorized       = &AppError{Code: "UNAUTHORIZED", Message: "Authentication required", StatusCode: http.StatusUnauthorized}
	ErrInvalidCredentials = &AppError{Code: "INVALID_CREDENTIALS", Message: "Invalid email or password", StatusCode: http.StatusUnauthorized}
	ErrSessionInvalid     = &AppError{Code: "SESSION_INVALID", Message: "Session invalid", StatusCode: http.StatusUnauthorized}
	ErrSessionExpired     = &AppError{Code: "SESSION_EXPIRED", Message: "Session expired", StatusCode: http.StatusUnauthorized}
	ErrForbidden          = &AppError{Code: "FORBIDDEN", Message: "Admin privileges required", StatusCode: http.StatusForbidden}
	ErrAccountLocked      = &AppError{Code: "ACCOUNT_LOCKED", Message: "Account temporarily locked due to multiple failed attempts", StatusCode: http.StatusLocked}
	ErrCSRFMismatch       = &AppError{Code: "CSRF_MISMATCH", Message: "Invalid or missing CSRF token", StatusCode: http.StatusForbidden}
	ErrRateLimited        = &AppError{Code: "RATE_LIMITED", Message: "Too many attempts. Please try again later.", StatusCode: http.StatusTooManyRequests}
)

// General errors.
var (
	ErrInvalidInput   = &AppError{Code: "INVALID_INPUT", Message: "Invalid input", StatusCode: http.StatusBadRequest}
	ErrNotFound       = &AppError{Code: "NOT_FOUND", Message: "Resource not found", StatusCode: http.StatusNotFound}
	ErrInternalServer = &AppError{Code: "INTERNAL_ERROR", Message: "An internal error occurred", StatusCode: http.StatusInternalServerError}
	ErrUnavailable    = &AppError{Code: "SERVICE_UNAVAILABLE", Message: "Service temporarily unavailable", StatusCode: http.StatusServiceUnavailable}
)

// User errors.
var (
	ErrUserNotFound   = &AppError{Code: "USER_NOT_FOUND", Message: "User not found", StatusCode: http.StatusNotFound}
	ErrDuplicateEmail = &AppError{Code: "DUPLICATE_EMAIL", Message: "Email already registered", StatusCode: http.StatusConflict}
)

// Product errors.
var (
	ErrProductNotFound    = &AppError{Code: "PRODUCT_NOT_FOUND", Message: "Product not found", StatusCode: http.StatusNotFound}
	ErrProductUnavailable = &AppError{Code: "PRODUCT_UNAVAILABLE", Message: "Product not found or out of stock", StatusCode: http.StatusNotFound}
)

// Cart errors.
var (
	ErrCartItemNotFound = &AppError{Code: "CART_ITEM_NOT_FOUND", Message: "Product not found in cart", StatusCode: http.StatusNotFound}
)

// Order errors.
var (
	ErrOrderNotFound      = &AppError{Code: "ORDER_NOT_FOUND", Message: "Order not found", StatusCode: http.StatusNotFound}
	ErrInvalidOrderStatus = &AppError{Code: "INVALID_ORDER_STATUS", Message: "Invalid order status", StatusCode: http.StatusBadRequest}
)
