package middleware

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"ecoshop/internal/config"
	"ecoshop/internal/models"
)

// restoreTokenExpiry bounds how long a browser can re-establish a session
// without logging in again.
const restoreTokenExpiry = 7 * 24 * time.Hour

// getSessionKey returns the restore token signing key from configuration
func getSessionKey() []byte {
	return []byte(config.Get().SessionSecret)
}

// RestoreClaims represents the claims in a session restore token
type RestoreClaims struct {
	UserID    uint   `json:"user_id"`
	Email     string `json:"email"`
	TokenType string `json:"token_type"`
	jwt.RegisteredClaims
}

// GenerateRestoreToken generates a long-lived signed token the client can
// exchange for a fresh session after its cookie expires.
func GenerateRestoreToken(user *models.User) (string, error) {
	claims := &RestoreClaims{
		UserID:    user.ID,
		Email:     user.Email,
		TokenType: "restore",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(restoreTokenExpiry)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			NotBefore: jwt.NewNumericDate(time.Now()),
			Issuer:    "ecoshop-api",
			Subject:   fmt.Sprintf("%d", user.ID),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(getSessionKey())
}

// ValidateRestoreToken parses and validates a restore token.
// Returns the claims if valid, or an error if the token is invalid,
// expired, or not a restore token.
func ValidateRestoreToken(tokenString string) (*RestoreClaims, error) {
	claims := &RestoreClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return getSessionKey(), nil
	})

	if err != nil || !token.Valid {
		return nil, fmt.Errorf("invalid restore token")
	}

	if claims.TokenType != "restore" {
		return nil, fmt.Errorf("token is not a restore token")
	}

	return claims, nil
}
