// Package validator provides custom validation functions for Gin's binding
// engine plus the credential checks that need rule-level error messages.
package validator

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// personNameRegex allows letters, spaces, apostrophes and hyphens.
var personNameRegex = regexp.MustCompile(`^[a-zA-Z\s'-]+$`)

// disposableDomains are rejected at registration to keep throwaway
// accounts out.
var disposableDomains = map[string]bool{
	"10minutemail.com": true,
	"tempmail.org":     true,
	"guerrillamail.com": true,
}

// Register registers all custom validators with the Gin binding engine.
func Register() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("person_name", validatePersonName)
		_ = v.RegisterValidation("order_status", validateOrderStatus)
	}
}

func validatePersonName(fl validator.FieldLevel) bool {
	return personNameRegex.MatchString(fl.Field().String())
}

func validateOrderStatus(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "pending", "processing", "shipped", "delivered", "cancelled":
		return true
	}
	return false
}

// IsDisposableEmail reports whether the email's domain is on the
// disposable-provider denylist.
func IsDisposableEmail(email string) bool {
	at := strings.LastIndex(email, "@")
	if at < 0 {
		return false
	}
	return disposableDomains[strings.ToLower(email[at+1:])]
}

// PasswordRuleViolations checks the five password strength rules and
// returns a message for every unmet one so clients can show them all.
func PasswordRuleViolations(pw string) []string {
	var violations []string

	if len(pw) < 8 {
		violations = append(violations, "Password must be at least 8 characters long")
	}

	var hasUpper, hasLower, hasDigit, hasSpecial bool
	for _, r := range pw {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasDigit = true
		default:
			hasSpecial = true
		}
	}

	if !hasUpper {
		violations = append(violations, "Password must contain at least one uppercase letter")
	}
	if !hasLower {
		violations = append(violations, "Password must contain at least one lowercase letter")
	}
	if !hasDigit {
		violations = append(violations, "Password must contain at least one number")
	}
	if !hasSpecial {
		violations = append(violations, "Password must contain at least one special character")
	}

	return violations
}
