// Package pagination provides offset pagination for admin list endpoints.
package pagination

import (
	"math"

	"gorm.io/gorm"
)

const defaultPerPage = 20

// PageRequest holds pagination parameters parsed from query strings.
type PageRequest struct {
	Page    int `form:"page" binding:"omitempty,min=1"`
	PerPage int `form:"per_page" binding:"omitempty,min=1,max=100"`
}

// Defaults fills in default values when page or per_page are not provided.
func (p *PageRequest) Defaults() {
	if p.Page == 0 {
		p.Page = 1
	}
	if p.PerPage == 0 {
		p.PerPage = defaultPerPage
	}
}

// Page wraps a page of items with list metadata.
type Page[T any] struct {
	Items      []T   `json:"items"`
	Page       int   `json:"page"`
	PerPage    int   `json:"per_page"`
	TotalItems int64 `json:"total_items"`
	TotalPages int   `json:"total_pages"`
}

// NewPage creates a Page from the given items and total count.
func NewPage[T any](items []T, req PageRequest, totalItems int64) Page[T] {
	if items == nil {
		items = []T{}
	}
	return Page[T]{
		Items:      items,
		Page:       req.Page,
		PerPage:    req.PerPage,
		TotalItems: totalItems,
		TotalPages: int(math.Ceil(float64(totalItems) / float64(req.PerPage))),
	}
}

// Scope returns a GORM scope applying OFFSET and LIMIT for the request.
func Scope(req PageRequest) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Offset((req.Page - 1) * req.PerPage).Limit(req.PerPage)
	}
}
