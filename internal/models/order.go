package models

// OrderStatus is the fixed order lifecycle enum.
type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusShipped    OrderStatus = "shipped"
	OrderStatusDelivered  OrderStatus = "delivered"
	OrderStatusCancelled  OrderStatus = "cancelled"
)

// ValidOrderStatus reports whether s is a member of the status enum.
func ValidOrderStatus(s OrderStatus) bool {
	switch s {
	case OrderStatusPending, OrderStatusProcessing, OrderStatusShipped,
		OrderStatusDelivered, OrderStatusCancelled:
		return true
	}
	return false
}

// Order is an order header. Total is the discount-applied sum computed
// at creation time; it never tracks later price edits.
type Order struct {
	Base
	UserID          uint        `gorm:"not null;index" json:"user_id"`
	Total           float64     `gorm:"not null" json:"total"`
	ShippingAddress string      `gorm:"not null" json:"shipping_address"`
	Status          OrderStatus `gorm:"not null;default:'pending'" json:"status"`
	Items           []OrderItem `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items"`

	// Display fields joined from users for admin listings.
	UserName  string `gorm:"-" json:"user_name,omitempty"`
	UserEmail string `gorm:"-" json:"user_email,omitempty"`
}

// OrderItem is one line of an order. Price is the per-unit price
// snapshot taken when the order was placed.
type OrderItem struct {
	Base
	OrderID   uint    `gorm:"not null;index" json:"order_id"`
	ProductID uint    `gorm:"not null" json:"product_id"`
	Quantity  int     `gorm:"not null" json:"quantity"`
	Price     float64 `gorm:"not null" json:"price"`

	// Display fields joined from products.
	ProductName  string `gorm:"-" json:"product_name,omitempty"`
	ProductImage string `gorm:"-" json:"product_image,omitempty"`
}
