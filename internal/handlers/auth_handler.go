package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "ecoshop/internal/errors"
	"ecoshop/internal/middleware"
	"ecoshop/internal/models"
	"ecoshop/internal/ratelimit"
	"ecoshop/internal/services"
	"ecoshop/internal/session"
)

const (
	loginRateLimit     = 5
	loginRateWindow    = 15 * time.Minute
	registerRateLimit  = 3
	registerRateWindow = time.Hour
)

// AuthHandler handles authentication-related requests
type AuthHandler struct {
	users   services.UserServicer
	audit   services.AuditServicer
	limiter ratelimit.Limiter
	store   session.Store
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(users services.UserServicer, audit services.AuditServicer, limiter ratelimit.Limiter, store session.Store) *AuthHandler {
	return &AuthHandler{users: users, audit: audit, limiter: limiter, store: store}
}

// AuthRequest is the dispatch payload: action selects login or register.
type AuthRequest struct {
	Action   string `json:"action" binding:"required,oneof=login register"`
	Email    string `json:"email" binding:"required,email,max=255"`
	Password string `json:"password" binding:"required,max=128"`
	Name     string `json:"name" binding:"omitempty,min=2,max=100,person_name"`
}

// AuthResponse carries the user projection and the session CSRF token.
type AuthResponse struct {
	User      interface{} `json:"user"`
	CSRFToken string      `json:"csrf_token"`
	Restore   string      `json:"restore_token,omitempty"`
}

// Handle dispatches POST /api/auth on the action field.
// @Summary     Login or register
// @Description Authenticate or create an account; action is "login" or "register"
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       request body AuthRequest true "Credentials"
// @Success     200 {object} APIResponse "Logged in"
// @Success     201 {object} APIResponse "Registered"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Invalid credentials"
// @Failure     409 {object} ErrorResponse "Email already registered"
// @Failure     423 {object} ErrorResponse "Account locked"
// @Failure     429 {object} ErrorResponse "Rate limited"
// @Router      /auth [post]
func (h *AuthHandler) Handle(c *gin.Context) {
	var req AuthRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	switch req.Action {
	case "login":
		h.login(c, req)
	case "register":
		h.register(c, req)
	}
}

func (h *AuthHandler) login(c *gin.Context, req AuthRequest) {
	ip := c.ClientIP()

	ok, err := h.limiter.Allow("login:"+ip, loginRateLimit, loginRateWindow)
	if err != nil {
		respondError(c, apperrors.Wrap(apperrors.ErrInternalServer, err))
		return
	}
	if !ok {
		h.audit.Record("login_rate_limited", 0, ip, c.Request.UserAgent(), nil)
		respondError(c, apperrors.ErrRateLimited)
		return
	}

	user, err := h.users.AttemptLogin(req.Email, req.Password)
	if err != nil {
		h.audit.Record("login_failed", 0, ip, c.Request.UserAgent(), map[string]interface{}{
			"email": req.Email,
		})
		respondError(c, err)
		return
	}

	resp, err := h.establishSession(c, user)
	if err != nil {
		respondError(c, err)
		return
	}

	h.audit.Record("login_success", user.ID, ip, c.Request.UserAgent(), nil)
	respondSuccess(c, http.StatusOK, "Login successful", resp)
}

func (h *AuthHandler) register(c *gin.Context, req AuthRequest) {
	ip := c.ClientIP()

	if req.Name == "" {
		respondError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "Name is required"))
		return
	}

	ok, err := h.limiter.Allow("register:"+ip, registerRateLimit, registerRateWindow)
	if err != nil {
		respondError(c, apperrors.Wrap(apperrors.ErrInternalServer, err))
		return
	}
	if !ok {
		h.audit.Record("register_rate_limited", 0, ip, c.Request.UserAgent(), nil)
		respondError(c, apperrors.ErrRateLimited)
		return
	}

	user, err := h.users.Register(req.Email, req.Name, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	resp, err := h.establishSession(c, user)
	if err != nil {
		respondError(c, err)
		return
	}

	h.audit.Record("user_registered", user.ID, ip, c.Request.UserAgent(), nil)
	respondSuccess(c, http.StatusCreated, "Registration successful", resp)
}

// establishSession binds the user to the request's session under a rotated
// ID, mints a CSRF token and a restore token, and sets the cookie. The
// anonymous cart, if any, survives the rotation.
func (h *AuthHandler) establishSession(c *gin.Context, user *models.User) (*AuthResponse, error) {
	sess := middleware.CurrentSession(c)
	if sess == nil {
		sess = session.New()
	}

	csrf, err := session.NewCSRFToken()
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	sess.UserID = user.ID
	sess.Email = user.Email
	sess.Name = user.Name
	sess.IsAdmin = user.IsAdmin
	sess.LoginTime = time.Now()
	sess.IP = c.ClientIP()
	sess.CSRFToken = csrf

	if err := session.Rotate(c.Request.Context(), h.store, sess); err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	middleware.SetSessionCookie(c, sess.ID)

	restore, err := middleware.GenerateRestoreToken(user)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return &AuthResponse{
		User:      userProjection(user.ID, user.Email, user.Name, user.IsAdmin),
		CSRFToken: csrf,
		Restore:   restore,
	}, nil
}

// CurrentUser returns the session's user projection with a fresh CSRF token.
// @Summary     Current user
// @Description Get the authenticated user's projection and a fresh CSRF token
// @Tags        auth
// @Produce     json
// @Success     200 {object} APIResponse "Current user"
// @Failure     401 {object} ErrorResponse "No valid session"
// @Router      /auth [get]
func (h *AuthHandler) CurrentUser(c *gin.Context) {
	sess := middleware.CurrentSession(c)

	csrf, err := session.NewCSRFToken()
	if err != nil {
		respondError(c, apperrors.Wrap(apperrors.ErrInternalServer, err))
		return
	}
	sess.CSRFToken = csrf
	if err := h.store.Save(c.Request.Context(), sess); err != nil {
		respondError(c, apperrors.Wrap(apperrors.ErrInternalServer, err))
		return
	}

	respondSuccess(c, http.StatusOK, "Authenticated", AuthResponse{
		User:      userProjection(sess.UserID, sess.Email, sess.Name, sess.IsAdmin),
		CSRFToken: csrf,
	})
}

// Logout destroys the session. Idempotent: succeeds with or without one.
// @Summary     Logout
// @Tags        auth
// @Produce     json
// @Success     200 {object} APIResponse "Logged out"
// @Router      /auth [delete]
func (h *AuthHandler) Logout(c *gin.Context) {
	if sess := middleware.CurrentSession(c); sess != nil {
		_ = h.store.Delete(c.Request.Context(), sess.ID)
		if sess.Authenticated() {
			h.audit.Record("logout", sess.UserID, c.ClientIP(), c.Request.UserAgent(), nil)
		}
	}
	middleware.ClearSessionCookie(c)
	respondSuccess(c, http.StatusOK, "Logged out", nil)
}

// RestoreRequest carries the signed restore token.
type RestoreRequest struct {
	RestoreToken string `json:"restore_token" binding:"required"`
}

// Restore exchanges a valid restore token for a fresh session. The user row
// is re-checked so deactivated accounts cannot resurrect a session.
// @Summary     Restore session
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       request body RestoreRequest true "Restore token"
// @Success     200 {object} APIResponse "Session restored"
// @Failure     401 {object} ErrorResponse "Invalid token"
// @Router      /session/restore [post]
func (h *AuthHandler) Restore(c *gin.Context) {
	var req RestoreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	claims, err := middleware.ValidateRestoreToken(req.RestoreToken)
	if err != nil {
		h.audit.Record("session_restore_failed", 0, c.ClientIP(), c.Request.UserAgent(), nil)
		respondError(c, apperrors.ErrSessionInvalid)
		return
	}

	user, err := h.users.GetUserByID(claims.UserID)
	if err != nil || !user.IsActive || user.Email != claims.Email {
		respondError(c, apperrors.ErrSessionInvalid)
		return
	}

	resp, err := h.establishSession(c, user)
	if err != nil {
		respondError(c, err)
		return
	}

	h.audit.Record("session_restored", user.ID, c.ClientIP(), c.Request.UserAgent(), nil)
	respondSuccess(c, http.StatusOK, "Session restored", resp)
}
