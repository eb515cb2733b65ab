package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "ecoshop/internal/errors"
	"ecoshop/internal/middleware"
	"ecoshop/internal/models"
	"ecoshop/internal/services"
	"ecoshop/internal/session"
)

// OrderHandler handles checkout and order management
type OrderHandler struct {
	orders services.OrderServicer
	audit  services.AuditServicer
	store  session.Store
}

// NewOrderHandler creates a new OrderHandler
func NewOrderHandler(orders services.OrderServicer, audit services.AuditServicer, store session.Store) *OrderHandler {
	return &OrderHandler{orders: orders, audit: audit, store: store}
}

// CreateOrderRequest is the checkout payload.
type CreateOrderRequest struct {
	Items           []services.OrderItemInput `json:"items" binding:"required,min=1,dive"`
	ShippingAddress string                    `json:"shipping_address" binding:"required,min=10"`
}

// UpdateOrderRequest moves an order to a new status; the ID rides in the body.
type UpdateOrderRequest struct {
	ID     uint   `json:"id" binding:"required"`
	Status string `json:"status" binding:"required,order_status"`
}

// DeleteOrderRequest identifies the order to remove.
type DeleteOrderRequest struct {
	ID uint `json:"id" binding:"required"`
}

// OrderListQuery selects between the order list and the admin statistics.
type OrderListQuery struct {
	Stats bool `form:"stats"`
}

// Create places an order for the session user and clears the cart.
// @Summary     Place order
// @Tags        orders
// @Accept      json
// @Produce     json
// @Security    SessionCookie
// @Param       request body CreateOrderRequest true "Items and shipping address"
// @Success     201 {object} APIResponse "Order placed"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Authentication required"
// @Failure     404 {object} ErrorResponse "Product not found or out of stock"
// @Router      /orders [post]
func (h *OrderHandler) Create(c *gin.Context) {
	var req CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	sess := middleware.CurrentSession(c)

	order, err := h.orders.CreateOrder(sess.UserID, req.Items, req.ShippingAddress)
	if err != nil {
		respondError(c, err)
		return
	}

	sess.Cart = nil
	if err := h.store.Save(c.Request.Context(), sess); err != nil {
		respondError(c, apperrors.Wrap(apperrors.ErrInternalServer, err))
		return
	}

	h.audit.Record("order_placed", sess.UserID, c.ClientIP(), c.Request.UserAgent(), map[string]interface{}{
		"order_id": order.ID,
		"total":    order.Total,
	})
	respondSuccess(c, http.StatusCreated, "Order placed", gin.H{"order": order})
}

// List returns the session user's orders, every order for admins, or the
// statistics block when ?stats=1 (admin only).
// @Summary     List orders
// @Tags        orders
// @Produce     json
// @Security    SessionCookie
// @Param       stats query bool false "Return admin statistics instead"
// @Success     200 {object} APIResponse "Orders"
// @Failure     401 {object} ErrorResponse "Authentication required"
// @Failure     403 {object} ErrorResponse "Admin required for stats"
// @Router      /orders [get]
func (h *OrderHandler) List(c *gin.Context) {
	var q OrderListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		respondError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	sess := middleware.CurrentSession(c)

	if q.Stats {
		if !sess.IsAdmin {
			respondError(c, apperrors.ErrForbidden)
			return
		}
		stats, err := h.orders.Statistics()
		if err != nil {
			respondError(c, err)
			return
		}
		respondSuccess(c, http.StatusOK, "Statistics retrieved", gin.H{"statistics": stats})
		return
	}

	orders, err := h.orders.ListOrders(sess.UserID, sess.IsAdmin)
	if err != nil {
		respondError(c, err)
		return
	}
	respondSuccess(c, http.StatusOK, "Orders retrieved", gin.H{"orders": orders})
}

// UpdateStatus moves an order through its lifecycle.
// @Summary     Update order status
// @Tags        orders
// @Accept      json
// @Produce     json
// @Security    SessionCookie
// @Param       request body UpdateOrderRequest true "Order and new status"
// @Success     200 {object} APIResponse "Order updated"
// @Failure     400 {object} ErrorResponse "Invalid status"
// @Failure     403 {object} ErrorResponse "Admin required"
// @Failure     404 {object} ErrorResponse "Order not found"
// @Router      /orders [put]
func (h *OrderHandler) UpdateStatus(c *gin.Context) {
	var req UpdateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	order, err := h.orders.UpdateStatus(req.ID, models.OrderStatus(req.Status))
	if err != nil {
		respondError(c, err)
		return
	}

	respondSuccess(c, http.StatusOK, "Order updated", gin.H{"order": order})
}

// Delete removes an order and its items.
// @Summary     Delete order
// @Tags        orders
// @Accept      json
// @Produce     json
// @Security    SessionCookie
// @Param       request body DeleteOrderRequest true "Order ID"
// @Success     200 {object} APIResponse "Order deleted"
// @Failure     403 {object} ErrorResponse "Admin required"
// @Failure     404 {object} ErrorResponse "Order not found"
// @Router      /orders [delete]
func (h *OrderHandler) Delete(c *gin.Context) {
	var req DeleteOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	if err := h.orders.DeleteOrder(req.ID); err != nil {
		respondError(c, err)
		return
	}

	respondSuccess(c, http.StatusOK, "Order deleted", nil)
}
