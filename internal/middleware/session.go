package middleware

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "ecoshop/internal/errors"
	"ecoshop/internal/services"
	"ecoshop/internal/session"
)

const sessionContextKey = "session"

// SessionLoad reads the session cookie and attaches the stored session to
// the request context. Requests with no cookie, or with an ID the store no
// longer knows, proceed anonymously.
func SessionLoad(store session.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := c.Cookie(session.CookieName)
		if err == nil && id != "" {
			if sess, err := store.Get(c.Request.Context(), id); err == nil {
				c.Set(sessionContextKey, sess)
			}
		}
		c.Next()
	}
}

// CurrentSession returns the session attached to the request, or nil.
func CurrentSession(c *gin.Context) *session.Session {
	v, ok := c.Get(sessionContextKey)
	if !ok {
		return nil
	}
	return v.(*session.Session)
}

// RequireUser rejects requests without a live authenticated session. An
// expired session or one presented from a different IP than it was
// established from is destroyed, not just rejected.
func RequireUser(store session.Store, audit services.AuditServicer) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := CurrentSession(c)
		if sess == nil || !sess.Authenticated() {
			abortWithError(c, apperrors.ErrUnauthorized)
			return
		}

		if sess.Expired(time.Now()) {
			_ = store.Delete(c.Request.Context(), sess.ID)
			ClearSessionCookie(c)
			audit.Record("session_expired", sess.UserID, c.ClientIP(), c.Request.UserAgent(), nil)
			abortWithError(c, apperrors.ErrSessionExpired)
			return
		}

		if sess.IPMismatch(c.ClientIP()) {
			_ = store.Delete(c.Request.Context(), sess.ID)
			ClearSessionCookie(c)
			audit.Record("session_ip_mismatch", sess.UserID, c.ClientIP(), c.Request.UserAgent(), map[string]interface{}{
				"session_ip": sess.IP,
			})
			abortWithError(c, apperrors.ErrSessionInvalid)
			return
		}

		c.Next()
	}
}

// RequireAdmin rejects non-admin sessions. Must run after RequireUser.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := CurrentSession(c)
		if sess == nil || !sess.IsAdmin {
			abortWithError(c, apperrors.ErrForbidden)
			return
		}
		c.Next()
	}
}

// SetSessionCookie writes the session cookie. HttpOnly keeps scripts away
// from the ID; SameSite=Lax blocks cross-site POSTs from carrying it.
func SetSessionCookie(c *gin.Context, id string) {
	http.SetCookie(c.Writer, &http.Cookie{
		Name:     session.CookieName,
		Value:    id,
		Path:     "/",
		MaxAge:   int(session.TTL.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// ClearSessionCookie expires the session cookie.
func ClearSessionCookie(c *gin.Context) {
	http.SetCookie(c.Writer, &http.Cookie{
		Name:     session.CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// abortWithError stops the request with the standard response envelope.
func abortWithError(c *gin.Context, err *apperrors.AppError) {
	c.AbortWithStatusJSON(err.StatusCode, gin.H{
		"success":   false,
		"message":   err.Message,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}
