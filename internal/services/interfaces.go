package services

import (
	"time"

	"ecoshop/internal/models"
	"ecoshop/internal/pagination"
	"ecoshop/internal/session"
)

// UserServicer defines the contract for account and credential logic.
type UserServicer interface {
	Register(email, name, plaintext string) (*models.User, error)
	AttemptLogin(email, plaintext string) (*models.User, error)
	GetUserByID(id uint) (*models.User, error)
	GetUserByEmail(email string) (*models.User, error)
	ListUsers(page pagination.PageRequest) (*pagination.Page[models.AdminUserView], error)
	UpdateUser(id uint, update UserUpdate) (*models.User, error)
}

// UserUpdate is the partial-update schema for admin user edits.
// Nil fields are left untouched; at least one must be set.
type UserUpdate struct {
	Name     *string
	IsActive *bool
	IsAdmin  *bool
}

// ProductFilter holds optional list parameters for the catalog.
type ProductFilter struct {
	Category string
	Search   string
	Sort     string
	Order    string
}

// ProductUpdate is the partial-update schema for admin product edits.
type ProductUpdate struct {
	Name        *string
	Price       *float64
	Image       *string
	Description *string
	Category    *string
	Rating      *float64
	InStock     *bool
	Discount    *int
}

// ProductServicer defines the contract for catalog logic.
type ProductServicer interface {
	ListProducts(filter ProductFilter) ([]models.Product, error)
	ListCategories() ([]string, error)
	GetProductByID(id uint) (*models.Product, error)
	CreateProduct(p *models.Product) (*models.Product, error)
	UpdateProduct(id uint, update ProductUpdate) (*models.Product, error)
	DeleteProduct(id uint) error
}

// CartEntry joins a cart line against live product data.
type CartEntry struct {
	Product  models.Product `json:"product"`
	Quantity int            `json:"quantity"`
	AddedAt  time.Time      `json:"added_at"`
}

// CartServicer mutates the session-resident cart. Callers persist the
// session after a successful mutation.
type CartServicer interface {
	Add(sess *session.Session, productID uint, quantity int) error
	Update(sess *session.Session, productID uint, quantity int) error
	Remove(sess *session.Session, productID uint) error
	GetDetailed(sess *session.Session) ([]CartEntry, error)
	Total(sess *session.Session) (float64, error)
}

// OrderItemInput is one requested order line.
type OrderItemInput struct {
	ProductID uint `json:"product_id" binding:"required"`
	Quantity  int  `json:"quantity" binding:"required,min=1"`
}

// OrderStatistics aggregates order data for the admin dashboard.
type OrderStatistics struct {
	TotalOrders    int64                      `json:"total_orders"`
	TotalRevenue   float64                    `json:"total_revenue"`
	OrdersByStatus map[models.OrderStatus]int `json:"orders_by_status"`
	RecentOrders   int64                      `json:"recent_orders"`
}

// OrderServicer defines the contract for order logic.
type OrderServicer interface {
	CreateOrder(userID uint, items []OrderItemInput, shippingAddress string) (*models.Order, error)
	ListOrders(userID uint, isAdmin bool) ([]models.Order, error)
	GetOrderByID(id uint) (*models.Order, error)
	UpdateStatus(orderID uint, status models.OrderStatus) (*models.Order, error)
	DeleteOrder(orderID uint) error
	Statistics() (*OrderStatistics, error)
}

// AuditServicer defines the contract for the security audit log.
type AuditServicer interface {
	Record(event string, userID uint, ipAddress, userAgent string, details map[string]interface{})
}
