package services

import (
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"

	apperrors "ecoshop/internal/errors"
	"ecoshop/internal/models"
)

const minShippingAddressLen = 10

// orderService handles order placement and admin order management.
type orderService struct {
	db *gorm.DB
}

// NewOrderService creates a new OrderServicer.
func NewOrderService(db *gorm.DB) OrderServicer {
	return &orderService{db: db}
}

// CreateOrder validates every requested item against live product data and
// persists the order header plus item rows in one transaction. Per-item
// prices have the current discount applied and are snapshotted, so later
// catalog edits never touch historical orders. Validation is fail-fast: a
// single missing or out-of-stock product aborts the whole order.
func (s *orderService) CreateOrder(userID uint, items []OrderItemInput, shippingAddress string) (*models.Order, error) {
	if userID == 0 {
		return nil, apperrors.ErrUnauthorized
	}
	if len(items) == 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "Order must contain at least one item")
	}
	shippingAddress = strings.TrimSpace(shippingAddress)
	if len(shippingAddress) < minShippingAddressLen {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "Shipping address must be at least 10 characters long")
	}

	order := &models.Order{
		UserID:          userID,
		ShippingAddress: shippingAddress,
		Status:          models.OrderStatusPending,
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		var total float64
		for _, item := range items {
			if item.Quantity <= 0 {
				return apperrors.WithMessage(apperrors.ErrInvalidInput, "Item quantity must be greater than 0")
			}

			var product models.Product
			err := tx.Where("id = ? AND in_stock = ?", item.ProductID, true).First(&product).Error
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.ErrProductUnavailable
			}
			if err != nil {
				return apperrors.Wrap(apperrors.ErrInternalServer, err)
			}

			price := round2(product.DiscountedPrice())
			total += price * float64(item.Quantity)

			order.Items = append(order.Items, models.OrderItem{
				ProductID: product.ID,
				Quantity:  item.Quantity,
				Price:     price,
			})
		}

		order.Total = round2(total)
		if err := tx.Create(order).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		return nil
	})
	if err != nil {
		var appErr *apperrors.AppError
		if errors.As(err, &appErr) {
			return nil, appErr
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return s.GetOrderByID(order.ID)
}

// ListOrders returns orders newest first. Admins see every order with the
// buyer's name and email joined; other users see only their own.
func (s *orderService) ListOrders(userID uint, isAdmin bool) ([]models.Order, error) {
	var orders []models.Order

	if isAdmin {
		rows, err := s.db.Raw(`
			SELECT o.id, o.user_id, u.name AS user_name, u.email AS user_email
			FROM orders o JOIN users u ON o.user_id = u.id
			ORDER BY o.created_at DESC`).Rows()
		if err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		defer rows.Close()

		displayNames := map[uint][2]string{}
		for rows.Next() {
			var id, uid uint
			var name, email string
			if err := rows.Scan(&id, &uid, &name, &email); err != nil {
				return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
			}
			displayNames[id] = [2]string{name, email}
		}

		if err := s.db.Order("created_at DESC").Find(&orders).Error; err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		for i := range orders {
			if d, ok := displayNames[orders[i].ID]; ok {
				orders[i].UserName = d[0]
				orders[i].UserEmail = d[1]
			}
		}
	} else {
		if err := s.db.Where("user_id = ?", userID).Order("created_at DESC").Find(&orders).Error; err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
	}

	for i := range orders {
		items, err := s.loadItems(orders[i].ID)
		if err != nil {
			return nil, err
		}
		orders[i].Items = items
	}

	return orders, nil
}

// GetOrderByID returns an order with its items and product display fields.
func (s *orderService) GetOrderByID(id uint) (*models.Order, error) {
	var order models.Order
	if err := s.db.First(&order, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrOrderNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	items, err := s.loadItems(order.ID)
	if err != nil {
		return nil, err
	}
	order.Items = items

	return &order, nil
}

// loadItems loads an order's items with product name and image joined.
func (s *orderService) loadItems(orderID uint) ([]models.OrderItem, error) {
	var items []models.OrderItem
	if err := s.db.Where("order_id = ?", orderID).Find(&items).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	for i := range items {
		var product models.Product
		if err := s.db.First(&product, items[i].ProductID).Error; err == nil {
			items[i].ProductName = product.Name
			items[i].ProductImage = product.Image
		}
	}
	return items, nil
}

// UpdateStatus moves an order to a new lifecycle status. Admin only;
// enforcement sits in the handler layer.
func (s *orderService) UpdateStatus(orderID uint, status models.OrderStatus) (*models.Order, error) {
	if !models.ValidOrderStatus(status) {
		return nil, apperrors.ErrInvalidOrderStatus
	}

	order, err := s.GetOrderByID(orderID)
	if err != nil {
		return nil, err
	}

	if err := s.db.Model(&models.Order{}).Where("id = ?", order.ID).Update("status", status).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return s.GetOrderByID(orderID)
}

// DeleteOrder removes an order and, via cascade, its items.
func (s *orderService) DeleteOrder(orderID uint) error {
	order, err := s.GetOrderByID(orderID)
	if err != nil {
		return err
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		// Explicit item delete keeps SQLite test databases consistent
		// with the FK cascade in the PostgreSQL schema.
		if err := tx.Where("order_id = ?", order.ID).Delete(&models.OrderItem{}).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		if err := tx.Delete(&models.Order{}, order.ID).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		return nil
	})
}

// Statistics aggregates order counts and revenue for the admin dashboard.
func (s *orderService) Statistics() (*OrderStatistics, error) {
	stats := &OrderStatistics{OrdersByStatus: map[models.OrderStatus]int{}}

	if err := s.db.Model(&models.Order{}).Count(&stats.TotalOrders).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var revenue *float64
	err := s.db.Model(&models.Order{}).
		Where("status <> ?", models.OrderStatusCancelled).
		Select("SUM(total)").Scan(&revenue).Error
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if revenue != nil {
		stats.TotalRevenue = round2(*revenue)
	}

	rows, err := s.db.Model(&models.Order{}).
		Select("status, COUNT(*) AS count").
		Group("status").Rows()
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	defer rows.Close()
	for rows.Next() {
		var status models.OrderStatus
		var count int
		if err := rows.Scan(&status, &count); err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		stats.OrdersByStatus[status] = count
	}

	cutoff := time.Now().AddDate(0, 0, -30)
	err = s.db.Model(&models.Order{}).
		Where("created_at >= ?", cutoff).
		Count(&stats.RecentOrders).Error
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return stats, nil
}
