package middleware

import (
	"crypto/subtle"

	"github.com/gin-gonic/gin"

	apperrors "ecoshop/internal/errors"
)

// CSRFHeader carries the token clients echo back on mutating requests.
const CSRFHeader = "X-CSRF-Token"

// csrfExemptPaths are mutating endpoints reachable before a CSRF token can
// be fetched: login, registration, and session restore.
var csrfExemptPaths = map[string]bool{
	"/api/auth":            true,
	"/api/session/restore": true,
}

// CSRF validates the token header on mutating requests from authenticated
// sessions. Anonymous sessions are not CSRF targets here because they hold
// no server-side privileges beyond their own cart.
func CSRF() gin.HandlerFunc {
	return func(c *gin.Context) {
		switch c.Request.Method {
		case "GET", "HEAD", "OPTIONS":
			c.Next()
			return
		}
		if csrfExemptPaths[c.Request.URL.Path] {
			c.Next()
			return
		}

		sess := CurrentSession(c)
		if sess == nil || !sess.Authenticated() {
			c.Next()
			return
		}

		token := c.GetHeader(CSRFHeader)
		if token == "" || sess.CSRFToken == "" ||
			subtle.ConstantTimeCompare([]byte(token), []byte(sess.CSRFToken)) != 1 {
			abortWithError(c, apperrors.ErrCSRFMismatch)
			return
		}

		c.Next()
	}
}
