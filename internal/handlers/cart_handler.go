package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "ecoshop/internal/errors"
	"ecoshop/internal/middleware"
	"ecoshop/internal/services"
	"ecoshop/internal/session"
)

// CartHandler handles the session-scoped shopping cart. Anonymous visitors
// get a session created on first cart touch.
type CartHandler struct {
	cart  services.CartServicer
	store session.Store
}

// NewCartHandler creates a new CartHandler
func NewCartHandler(cart services.CartServicer, store session.Store) *CartHandler {
	return &CartHandler{cart: cart, store: store}
}

// CartItemRequest addresses one cart line.
type CartItemRequest struct {
	ProductID uint `json:"product_id" binding:"required"`
	Quantity  int  `json:"quantity"`
}

// ensureSession returns the request's session, creating an anonymous one
// (and its cookie) when the browser has none yet.
func (h *CartHandler) ensureSession(c *gin.Context) *session.Session {
	if sess := middleware.CurrentSession(c); sess != nil {
		return sess
	}
	sess := session.New()
	middleware.SetSessionCookie(c, sess.ID)
	return sess
}

// persist writes the mutated session back to the store.
func (h *CartHandler) persist(c *gin.Context, sess *session.Session) error {
	if err := h.store.Save(c.Request.Context(), sess); err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}

// Get returns the cart joined against live product data.
// @Summary     Get cart
// @Tags        cart
// @Produce     json
// @Success     200 {object} APIResponse "Cart contents"
// @Router      /cart [get]
func (h *CartHandler) Get(c *gin.Context) {
	sess := h.ensureSession(c)

	entries, err := h.cart.GetDetailed(sess)
	if err != nil {
		respondError(c, err)
		return
	}
	total, err := h.cart.Total(sess)
	if err != nil {
		respondError(c, err)
		return
	}

	respondSuccess(c, http.StatusOK, "Cart retrieved", gin.H{
		"items": entries,
		"total": total,
	})
}

// Add merges a product into the cart.
// @Summary     Add to cart
// @Tags        cart
// @Accept      json
// @Produce     json
// @Param       request body CartItemRequest true "Product and quantity"
// @Success     200 {object} APIResponse "Item added"
// @Failure     400 {object} ErrorResponse "Invalid quantity"
// @Failure     404 {object} ErrorResponse "Product not found or out of stock"
// @Router      /cart [post]
func (h *CartHandler) Add(c *gin.Context) {
	var req CartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	sess := h.ensureSession(c)
	if err := h.cart.Add(sess, req.ProductID, req.Quantity); err != nil {
		respondError(c, err)
		return
	}
	if err := h.persist(c, sess); err != nil {
		respondError(c, err)
		return
	}

	respondSuccess(c, http.StatusOK, "Item added to cart", gin.H{"cart": sess.Cart})
}

// Update replaces a cart line's quantity; zero removes it.
// @Summary     Update cart line
// @Tags        cart
// @Accept      json
// @Produce     json
// @Param       request body CartItemRequest true "Product and new quantity"
// @Success     200 {object} APIResponse "Cart updated"
// @Failure     400 {object} ErrorResponse "Invalid quantity"
// @Failure     404 {object} ErrorResponse "Product not in cart"
// @Router      /cart [put]
func (h *CartHandler) Update(c *gin.Context) {
	var req CartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	sess := h.ensureSession(c)
	if err := h.cart.Update(sess, req.ProductID, req.Quantity); err != nil {
		respondError(c, err)
		return
	}
	if err := h.persist(c, sess); err != nil {
		respondError(c, err)
		return
	}

	respondSuccess(c, http.StatusOK, "Cart updated", gin.H{"cart": sess.Cart})
}

// Remove drops a cart line.
// @Summary     Remove from cart
// @Tags        cart
// @Accept      json
// @Produce     json
// @Param       request body CartItemRequest true "Product to remove"
// @Success     200 {object} APIResponse "Item removed"
// @Failure     404 {object} ErrorResponse "Product not in cart"
// @Router      /cart [delete]
func (h *CartHandler) Remove(c *gin.Context) {
	var req CartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	sess := h.ensureSession(c)
	if err := h.cart.Remove(sess, req.ProductID); err != nil {
		respondError(c, err)
		return
	}
	if err := h.persist(c, sess); err != nil {
		respondError(c, err)
		return
	}

	respondSuccess(c, http.StatusOK, "Item removed from cart", gin.H{"cart": sess.Cart})
}
