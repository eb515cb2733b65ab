package services

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	apperrors "ecoshop/internal/errors"
	"ecoshop/internal/models"
)

// allowedSortColumns whitelists catalog sort columns; anything else
// falls back to name.
var allowedSortColumns = map[string]bool{
	"name":       true,
	"price":      true,
	"rating":     true,
	"created_at": true,
}

// productService handles catalog business logic.
type productService struct {
	db *gorm.DB
}

// NewProductService creates a new ProductServicer.
func NewProductService(db *gorm.DB) ProductServicer {
	return &productService{db: db}
}

// ListProducts returns catalog entries matching the filter.
func (s *productService) ListProducts(filter ProductFilter) ([]models.Product, error) {
	query := s.db.Model(&models.Product{})

	if filter.Category != "" && filter.Category != "all" {
		query = query.Where("category = ?", filter.Category)
	}
	if filter.Search != "" {
		term := "%" + filter.Search + "%"
		query = query.Where("name LIKE ? OR description LIKE ? OR category LIKE ?", term, term, term)
	}

	sort := filter.Sort
	if !allowedSortColumns[sort] {
		sort = "name"
	}
	order := strings.ToUpper(filter.Order)
	if order != "ASC" && order != "DESC" {
		order = "ASC"
	}

	var products []models.Product
	if err := query.Order(sort + " " + order).Find(&products).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return products, nil
}

// ListCategories returns the distinct product categories.
func (s *productService) ListCategories() ([]string, error) {
	var categories []string
	err := s.db.Model(&models.Product{}).
		Distinct("category").
		Order("category").
		Pluck("category", &categories).Error
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return categories, nil
}

// GetProductByID returns a product by its ID.
func (s *productService) GetProductByID(id uint) (*models.Product, error) {
	var product models.Product
	if err := s.db.First(&product, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrProductNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &product, nil
}

// CreateProduct persists a new catalog entry.
func (s *productService) CreateProduct(p *models.Product) (*models.Product, error) {
	if strings.TrimSpace(p.Name) == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "Name is required")
	}
	if p.Price <= 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "Price must be greater than 0")
	}
	if p.Discount < 0 || p.Discount > 100 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "Discount must be between 0 and 100")
	}

	if err := s.db.Create(p).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return p, nil
}

// UpdateProduct applies an admin partial update.
func (s *productService) UpdateProduct(id uint, update ProductUpdate) (*models.Product, error) {
	product, err := s.GetProductByID(id)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if update.Name != nil {
		updates["name"] = *update.Name
	}
	if update.Price != nil {
		if *update.Price <= 0 {
			return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "Price must be greater than 0")
		}
		updates["price"] = *update.Price
	}
	if update.Image != nil {
		updates["image"] = *update.Image
	}
	if update.Description != nil {
		updates["description"] = *update.Description
	}
	if update.Category != nil {
		updates["category"] = *update.Category
	}
	if update.Rating != nil {
		updates["rating"] = *update.Rating
	}
	if update.InStock != nil {
		updates["in_stock"] = *update.InStock
	}
	if update.Discount != nil {
		if *update.Discount < 0 || *update.Discount > 100 {
			return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "Discount must be between 0 and 100")
		}
		updates["discount"] = *update.Discount
	}

	if len(updates) == 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "No valid fields to update")
	}

	if err := s.db.Model(product).Updates(updates).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return s.GetProductByID(id)
}

// DeleteProduct removes a catalog entry.
func (s *productService) DeleteProduct(id uint) error {
	if _, err := s.GetProductByID(id); err != nil {
		return err
	}
	if err := s.db.Delete(&models.Product{}, id).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}
