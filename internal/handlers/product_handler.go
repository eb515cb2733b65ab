package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "ecoshop/internal/errors"
	"ecoshop/internal/models"
	"ecoshop/internal/services"
)

// ProductHandler handles catalog requests
type ProductHandler struct {
	products services.ProductServicer
}

// NewProductHandler creates a new ProductHandler
func NewProductHandler(products services.ProductServicer) *ProductHandler {
	return &ProductHandler{products: products}
}

// ProductListQuery holds the public catalog filters.
type ProductListQuery struct {
	Category   string `form:"category"`
	Search     string `form:"search"`
	Sort       string `form:"sort"`
	Order      string `form:"order"`
	ID         uint   `form:"id"`
	Categories bool   `form:"categories"`
}

// CreateProductRequest is the admin product creation payload.
type CreateProductRequest struct {
	Name        string  `json:"name" binding:"required,max=255"`
	Price       float64 `json:"price" binding:"required,gt=0"`
	Image       string  `json:"image" binding:"max=512"`
	Description string  `json:"description"`
	Category    string  `json:"category" binding:"max=100"`
	Rating      float64 `json:"rating" binding:"gte=0,lte=5"`
	InStock     *bool   `json:"in_stock"`
	Discount    int     `json:"discount" binding:"gte=0,lte=100"`
}

// UpdateProductRequest is the admin partial-update payload; the ID rides in
// the body and absent fields stay untouched.
type UpdateProductRequest struct {
	ID          uint     `json:"id" binding:"required"`
	Name        *string  `json:"name" binding:"omitempty,max=255"`
	Price       *float64 `json:"price"`
	Image       *string  `json:"image" binding:"omitempty,max=512"`
	Description *string  `json:"description"`
	Category    *string  `json:"category" binding:"omitempty,max=100"`
	Rating      *float64 `json:"rating" binding:"omitempty,gte=0,lte=5"`
	InStock     *bool    `json:"in_stock"`
	Discount    *int     `json:"discount"`
}

// DeleteProductRequest identifies the product to remove.
type DeleteProductRequest struct {
	ID uint `json:"id" binding:"required"`
}

// List serves the public catalog: full listing with filters, a single
// product by id, or the distinct category list.
// @Summary     List products
// @Description List products with optional category, search and sort filters
// @Tags        products
// @Produce     json
// @Param       category query string false "Category filter"
// @Param       search query string false "Search term"
// @Param       sort query string false "Sort column (name, price, rating, created_at)"
// @Param       order query string false "asc or desc"
// @Param       id query int false "Single product by ID"
// @Param       categories query bool false "Return the distinct category list"
// @Success     200 {object} APIResponse "Products"
// @Failure     404 {object} ErrorResponse "Product not found"
// @Router      /products [get]
func (h *ProductHandler) List(c *gin.Context) {
	var q ProductListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		respondError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	if q.Categories {
		categories, err := h.products.ListCategories()
		if err != nil {
			respondError(c, err)
			return
		}
		respondSuccess(c, http.StatusOK, "Categories retrieved", gin.H{"categories": categories})
		return
	}

	if q.ID != 0 {
		product, err := h.products.GetProductByID(q.ID)
		if err != nil {
			respondError(c, err)
			return
		}
		respondSuccess(c, http.StatusOK, "Product retrieved", gin.H{"product": product})
		return
	}

	products, err := h.products.ListProducts(services.ProductFilter{
		Category: q.Category,
		Search:   q.Search,
		Sort:     q.Sort,
		Order:    q.Order,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	respondSuccess(c, http.StatusOK, "Products retrieved", gin.H{"products": products})
}

// Create adds a catalog entry.
// @Summary     Create product
// @Tags        products
// @Accept      json
// @Produce     json
// @Security    SessionCookie
// @Param       request body CreateProductRequest true "Product data"
// @Success     201 {object} APIResponse "Product created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     403 {object} ErrorResponse "Admin required"
// @Router      /products [post]
func (h *ProductHandler) Create(c *gin.Context) {
	var req CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	inStock := true
	if req.InStock != nil {
		inStock = *req.InStock
	}

	product, err := h.products.CreateProduct(&models.Product{
		Name:        req.Name,
		Price:       req.Price,
		Image:       req.Image,
		Description: req.Description,
		Category:    req.Category,
		Rating:      req.Rating,
		InStock:     inStock,
		Discount:    req.Discount,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	respondSuccess(c, http.StatusCreated, "Product created", gin.H{"product": product})
}

// Update applies a partial product update.
// @Summary     Update product
// @Tags        products
// @Accept      json
// @Produce     json
// @Security    SessionCookie
// @Param       request body UpdateProductRequest true "Fields to update"
// @Success     200 {object} APIResponse "Product updated"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     403 {object} ErrorResponse "Admin required"
// @Failure     404 {object} ErrorResponse "Product not found"
// @Router      /products [put]
func (h *ProductHandler) Update(c *gin.Context) {
	var req UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	product, err := h.products.UpdateProduct(req.ID, services.ProductUpdate{
		Name:        req.Name,
		Price:       req.Price,
		Image:       req.Image,
		Description: req.Description,
		Category:    req.Category,
		Rating:      req.Rating,
		InStock:     req.InStock,
		Discount:    req.Discount,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	respondSuccess(c, http.StatusOK, "Product updated", gin.H{"product": product})
}

// Delete removes a catalog entry.
// @Summary     Delete product
// @Tags        products
// @Accept      json
// @Produce     json
// @Security    SessionCookie
// @Param       request body DeleteProductRequest true "Product ID"
// @Success     200 {object} APIResponse "Product deleted"
// @Failure     403 {object} ErrorResponse "Admin required"
// @Failure     404 {object} ErrorResponse "Product not found"
// @Router      /products [delete]
func (h *ProductHandler) Delete(c *gin.Context) {
	var req DeleteProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	if err := h.products.DeleteProduct(req.ID); err != nil {
		respondError(c, err)
		return
	}

	respondSuccess(c, http.StatusOK, "Product deleted", nil)
}
