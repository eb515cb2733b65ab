package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "ecoshop/internal/errors"
	"ecoshop/internal/pagination"
	"ecoshop/internal/services"
)

// UserHandler handles admin user management
type UserHandler struct {
	users services.UserServicer
}

// NewUserHandler creates a new UserHandler
func NewUserHandler(users services.UserServicer) *UserHandler {
	return &UserHandler{users: users}
}

// UpdateUserRequest is the admin partial-update payload; the ID rides in
// the body.
type UpdateUserRequest struct {
	ID       uint    `json:"id" binding:"required"`
	Name     *string `json:"name" binding:"omitempty,min=2,max=100,person_name"`
	IsActive *bool   `json:"is_active"`
	IsAdmin  *bool   `json:"is_admin"`
}

// List returns the paginated admin view of all accounts.
// @Summary     List users
// @Tags        users
// @Produce     json
// @Security    SessionCookie
// @Param       page query int false "Page number"
// @Param       per_page query int false "Items per page"
// @Success     200 {object} APIResponse "Users"
// @Failure     403 {object} ErrorResponse "Admin required"
// @Router      /users [get]
func (h *UserHandler) List(c *gin.Context) {
	var page pagination.PageRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		respondError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	users, err := h.users.ListUsers(page)
	if err != nil {
		respondError(c, err)
		return
	}

	respondSuccess(c, http.StatusOK, "Users retrieved", users)
}

// Update applies an admin partial update to an account.
// @Summary     Update user
// @Tags        users
// @Accept      json
// @Produce     json
// @Security    SessionCookie
// @Param       request body UpdateUserRequest true "Fields to update"
// @Success     200 {object} APIResponse "User updated"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     403 {object} ErrorResponse "Admin required"
// @Failure     404 {object} ErrorResponse "User not found"
// @Router      /users [put]
func (h *UserHandler) Update(c *gin.Context) {
	var req UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	user, err := h.users.UpdateUser(req.ID, services.UserUpdate{
		Name:     req.Name,
		IsActive: req.IsActive,
		IsAdmin:  req.IsAdmin,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	respondSuccess(c, http.StatusOK, "User updated", gin.H{"user": user.AdminView()})
}
