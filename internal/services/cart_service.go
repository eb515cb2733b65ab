package services

import (
	"errors"
	"math"
	"time"

	"gorm.io/gorm"

	apperrors "ecoshop/internal/errors"
	"ecoshop/internal/models"
	"ecoshop/internal/session"
)

// cartService mutates session carts, consulting live product data.
type cartService struct {
	db *gorm.DB
}

// NewCartService creates a new CartServicer.
func NewCartService(db *gorm.DB) CartServicer {
	return &cartService{db: db}
}

// Add merges quantity into an existing cart line or appends a new one.
// The product must exist and be in stock.
func (s *cartService) Add(sess *session.Session, productID uint, quantity int) error {
	if quantity <= 0 {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "Quantity must be greater than 0")
	}

	var product models.Product
	err := s.db.Where("id = ? AND in_stock = ?", productID, true).First(&product).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperrors.ErrProductUnavailable
	}
	if err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	if item := sess.FindCartItem(productID); item != nil {
		item.Quantity += quantity
		return nil
	}

	sess.Cart = append(sess.Cart, session.CartItem{
		ProductID: productID,
		Quantity:  quantity,
		AddedAt:   time.Now(),
	})
	return nil
}

// Update replaces a cart line's quantity. Zero removes the line.
func (s *cartService) Update(sess *session.Session, productID uint, quantity int) error {
	if quantity < 0 {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "Quantity cannot be negative")
	}

	item := sess.FindCartItem(productID)
	if item == nil {
		return apperrors.ErrCartItemNotFound
	}

	if quantity == 0 {
		sess.RemoveCartItem(productID)
		return nil
	}

	item.Quantity = quantity
	return nil
}

// Remove drops a cart line.
func (s *cartService) Remove(sess *session.Session, productID uint) error {
	if !sess.RemoveCartItem(productID) {
		return apperrors.ErrCartItemNotFound
	}
	return nil
}

// GetDetailed joins every cart line against current product data.
// Lines referencing deleted products are silently dropped.
func (s *cartService) GetDetailed(sess *session.Session) ([]CartEntry, error) {
	entries := make([]CartEntry, 0, len(sess.Cart))

	for _, item := range sess.Cart {
		var product models.Product
		err := s.db.First(&product, item.ProductID).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			continue
		}
		if err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		entries = append(entries, CartEntry{
			Product:  product,
			Quantity: item.Quantity,
			AddedAt:  item.AddedAt,
		})
	}

	return entries, nil
}

// Total sums quantity times the live discounted price, rounded to 2
// decimals. Order items snapshot their own price; this is the cart view.
func (s *cartService) Total(sess *session.Session) (float64, error) {
	entries, err := s.GetDetailed(sess)
	if err != nil {
		return 0, err
	}

	var total float64
	for _, entry := range entries {
		total += entry.Product.DiscountedPrice() * float64(entry.Quantity)
	}
	return round2(total), nil
}

// round2 rounds to 2 decimal places.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
