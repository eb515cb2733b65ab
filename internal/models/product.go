package models

// Product represents a catalog entry. Discount is a percentage in [0,100]
// applied to Price at cart-total and order-validation time.
type Product struct {
	Base
	Name        string  `gorm:"not null" json:"name"`
	Price       float64 `gorm:"not null" json:"price"`
	Image       string  `json:"image"`
	Description string  `json:"description"`
	Category    string  `gorm:"index" json:"category"`
	Rating      float64 `gorm:"default:0" json:"rating"`
	InStock     bool    `gorm:"default:true" json:"in_stock"`
	Discount    int     `gorm:"default:0" json:"discount"`
}

// DiscountedPrice returns the live per-unit price with the current
// discount percentage applied. Callers round once at aggregation time.
func (p *Product) DiscountedPrice() float64 {
	if p.Discount > 0 {
		return p.Price * (1 - float64(p.Discount)/100)
	}
	return p.Price
}
