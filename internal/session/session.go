// Package session implements the server-side session state backing the
// storefront: the authenticated identity, the CSRF token, and the cart.
package session

import (
	"crypto/rand"
	"encoding/hex"
	"time"

	"github.com/google/uuid"
)

// TTL is the session lifetime. A session older than this is invalid
// regardless of activity.
const TTL = time.Hour

// CookieName is the browser cookie carrying the session ID.
const CookieName = "ecoshop_session"

// CartItem is one cart line. At most one item per product exists in a cart.
type CartItem struct {
	ProductID uint      `json:"product_id"`
	Quantity  int       `json:"quantity"`
	AddedAt   time.Time `json:"added_at"`
}

// Session is per-browser state. UserID is zero for anonymous sessions
// (a cart can exist before login).
type Session struct {
	ID        string     `json:"id"`
	UserID    uint       `json:"user_id"`
	Email     string     `json:"email"`
	Name      string     `json:"name"`
	IsAdmin   bool       `json:"is_admin"`
	LoginTime time.Time  `json:"login_time"`
	IP        string     `json:"ip"`
	CSRFToken string     `json:"csrf_token"`
	Cart      []CartItem `json:"cart"`
}

// New creates an empty anonymous session with a fresh ID.
func New() *Session {
	return &Session{ID: uuid.NewString()}
}

// Authenticated reports whether a user is bound to the session.
func (s *Session) Authenticated() bool {
	return s.UserID != 0
}

// Expired reports whether the login is older than the session TTL.
// Anonymous sessions never expire this way; the store TTL reaps them.
func (s *Session) Expired(now time.Time) bool {
	return s.Authenticated() && now.Sub(s.LoginTime) > TTL
}

// IPMismatch reports whether the request IP differs from the IP the
// session was established from.
func (s *Session) IPMismatch(clientIP string) bool {
	return s.Authenticated() && s.IP != "" && s.IP != clientIP
}

// FindCartItem returns a pointer into the cart for the product, or nil.
func (s *Session) FindCartItem(productID uint) *CartItem {
	for i := range s.Cart {
		if s.Cart[i].ProductID == productID {
			return &s.Cart[i]
		}
	}
	return nil
}

// RemoveCartItem drops the product's entry. Returns false if absent.
func (s *Session) RemoveCartItem(productID uint) bool {
	for i := range s.Cart {
		if s.Cart[i].ProductID == productID {
			s.Cart = append(s.Cart[:i], s.Cart[i+1:]...)
			return true
		}
	}
	return false
}

// NewCSRFToken generates a fresh CSRF token for the session.
func NewCSRFToken() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}
