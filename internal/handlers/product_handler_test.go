package handlers

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"

	apperrors "ecoshop/internal/errors"
	"ecoshop/internal/middleware"
	"ecoshop/internal/models"
	"ecoshop/internal/services"
	"ecoshop/internal/session"
)

// --- mock product service ---

type mockProductService struct {
	listProductsFn   func(filter services.ProductFilter) ([]models.Product, error)
	listCategoriesFn func() ([]string, error)
	getProductFn     func(id uint) (*models.Product, error)
	createProductFn  func(p *models.Product) (*models.Product, error)
	updateProductFn  func(id uint, update services.ProductUpdate) (*models.Product, error)
	deleteProductFn  func(id uint) error
}

func (m *mockProductService) ListProducts(filter services.ProductFilter) ([]models.Product, error) {
	if m.listProductsFn != nil {
		return m.listProductsFn(filter)
	}
	return []models.Product{}, nil
}

func (m *mockProductService) ListCategories() ([]string, error) {
	if m.listCategoriesFn != nil {
		return m.listCategoriesFn()
	}
	return []string{}, nil
}

func (m *mockProductService) GetProductByID(id uint) (*models.Product, error) {
	if m.getProductFn != nil {
		return m.getProductFn(id)
	}
	return &models.Product{Base: models.Base{ID: id}}, nil
}

func (m *mockProductService) CreateProduct(p *models.Product) (*models.Product, error) {
	if m.createProductFn != nil {
		return m.createProductFn(p)
	}
	p.ID = 1
	return p, nil
}

func (m *mockProductService) UpdateProduct(id uint, update services.ProductUpdate) (*models.Product, error) {
	if m.updateProductFn != nil {
		return m.updateProductFn(id, update)
	}
	return &models.Product{Base: models.Base{ID: id}}, nil
}

func (m *mockProductService) DeleteProduct(id uint) error {
	if m.deleteProductFn != nil {
		return m.deleteProductFn(id)
	}
	return nil
}

var _ services.ProductServicer = (*mockProductService)(nil)

func setupProductRouter(products services.ProductServicer, store session.Store) *gin.Engine {
	r := gin.New()
	r.Use(sessionChain(store)...)
	handler := NewProductHandler(products)
	audit := &mockAuditService{}
	r.GET("/api/products", handler.List)
	admin := r.Group("", middleware.RequireUser(store, audit), middleware.RequireAdmin())
	admin.POST("/api/products", handler.Create)
	admin.PUT("/api/products", handler.Update)
	admin.DELETE("/api/products", handler.Delete)
	return r
}

func TestProductHandler_List(t *testing.T) {
	store := session.NewMemoryStore()

	t.Run("is public and forwards filters", func(t *testing.T) {
		var got services.ProductFilter
		products := &mockProductService{
			listProductsFn: func(filter services.ProductFilter) ([]models.Product, error) {
				got = filter
				return []models.Product{{Base: models.Base{ID: 1}, Name: "Bamboo Toothbrush"}}, nil
			},
		}
		r := setupProductRouter(products, store)

		rec := doRequest(r, "GET", "/api/products?category=kitchen&search=bamboo&sort=price&order=desc", "", "")
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		if got.Category != "kitchen" || got.Search != "bamboo" || got.Sort != "price" || got.Order != "desc" {
			t.Errorf("filters not forwarded: %+v", got)
		}
	})

	t.Run("id query returns a single product", func(t *testing.T) {
		products := &mockProductService{
			getProductFn: func(id uint) (*models.Product, error) {
				return &models.Product{Base: models.Base{ID: id}, Name: "Solar Charger"}, nil
			},
		}
		r := setupProductRouter(products, store)

		rec := doRequest(r, "GET", "/api/products?id=5", "", "")
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		data := dataField(t, rec)
		product := data["product"].(map[string]interface{})
		if product["name"] != "Solar Charger" {
			t.Errorf("expected single product, got %v", data)
		}
	})

	t.Run("unknown id returns 404", func(t *testing.T) {
		products := &mockProductService{
			getProductFn: func(id uint) (*models.Product, error) {
				return nil, apperrors.ErrProductNotFound
			},
		}
		r := setupProductRouter(products, store)

		rec := doRequest(r, "GET", "/api/products?id=99", "", "")
		if rec.Code != http.StatusNotFound {
			t.Errorf("expected 404, got %d", rec.Code)
		}
	})

	t.Run("categories query returns the category list", func(t *testing.T) {
		products := &mockProductService{
			listCategoriesFn: func() ([]string, error) {
				return []string{"electronics", "kitchen"}, nil
			},
		}
		r := setupProductRouter(products, store)

		rec := doRequest(r, "GET", "/api/products?categories=1", "", "")
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		data := dataField(t, rec)
		categories := data["categories"].([]interface{})
		if len(categories) != 2 {
			t.Errorf("expected 2 categories, got %v", categories)
		}
	})
}

func TestProductHandler_AdminGate(t *testing.T) {
	store := session.NewMemoryStore()
	r := setupProductRouter(&mockProductService{}, store)

	t.Run("anonymous gets 401", func(t *testing.T) {
		rec := doRequest(r, "POST", "/api/products", `{"name":"X","price":1}`, "")
		if rec.Code != http.StatusUnauthorized {
			t.Errorf("expected 401, got %d", rec.Code)
		}
	})

	t.Run("non-admin gets 403", func(t *testing.T) {
		sess := storedSession(t, store, 2, false)
		rec := doRequest(r, "POST", "/api/products", `{"name":"X","price":1}`, sess.ID)
		if rec.Code != http.StatusForbidden {
			t.Errorf("expected 403, got %d", rec.Code)
		}
	})
}

func TestProductHandler_Create(t *testing.T) {
	store := session.NewMemoryStore()

	t.Run("returns 201 on success", func(t *testing.T) {
		r := setupProductRouter(&mockProductService{}, store)
		sess := storedSession(t, store, 1, true)

		rec := doRequest(r, "POST", "/api/products",
			`{"name":"Beeswax Wraps","price":14.99,"category":"kitchen","discount":10}`, sess.ID)
		if rec.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
		}
		data := dataField(t, rec)
		product := data["product"].(map[string]interface{})
		if product["name"] != "Beeswax Wraps" {
			t.Errorf("expected created product, got %v", product)
		}
	})

	t.Run("rejects invalid payloads", func(t *testing.T) {
		r := setupProductRouter(&mockProductService{}, store)
		sess := storedSession(t, store, 1, true)

		for _, body := range []string{
			`{"price":9.99}`,
			`{"name":"X","price":0}`,
			`{"name":"X","price":5,"discount":101}`,
			`{"name":"X","price":5,"rating":6}`,
		} {
			rec := doRequest(r, "POST", "/api/products", body, sess.ID)
			if rec.Code != http.StatusBadRequest {
				t.Errorf("expected 400 for %s, got %d", body, rec.Code)
			}
		}
	})
}

func TestProductHandler_Update(t *testing.T) {
	store := session.NewMemoryStore()

	t.Run("forwards partial update with id from body", func(t *testing.T) {
		var gotID uint
		var gotUpdate services.ProductUpdate
		products := &mockProductService{
			updateProductFn: func(id uint, update services.ProductUpdate) (*models.Product, error) {
				gotID = id
				gotUpdate = update
				return &models.Product{Base: models.Base{ID: id}}, nil
			},
		}
		r := setupProductRouter(products, store)
		sess := storedSession(t, store, 1, true)

		rec := doRequest(r, "PUT", "/api/products", `{"id":4,"price":21.50,"in_stock":false}`, sess.ID)
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		if gotID != 4 {
			t.Errorf("expected id 4, got %d", gotID)
		}
		if gotUpdate.Price == nil || *gotUpdate.Price != 21.50 {
			t.Error("expected price forwarded")
		}
		if gotUpdate.InStock == nil || *gotUpdate.InStock {
			t.Error("expected in_stock false forwarded")
		}
		if gotUpdate.Name != nil {
			t.Error("absent fields must stay nil")
		}
	})

	t.Run("missing id returns 400", func(t *testing.T) {
		r := setupProductRouter(&mockProductService{}, store)
		sess := storedSession(t, store, 1, true)

		rec := doRequest(r, "PUT", "/api/products", `{"price":21.50}`, sess.ID)
		if rec.Code != http.StatusBadRequest {
			t.Errorf("expected 400, got %d", rec.Code)
		}
	})
}

func TestProductHandler_Delete(t *testing.T) {
	store := session.NewMemoryStore()

	t.Run("deletes by body id", func(t *testing.T) {
		var gotID uint
		products := &mockProductService{
			deleteProductFn: func(id uint) error {
				gotID = id
				return nil
			},
		}
		r := setupProductRouter(products, store)
		sess := storedSession(t, store, 1, true)

		rec := doRequest(r, "DELETE", "/api/products", `{"id":9}`, sess.ID)
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		if gotID != 9 {
			t.Errorf("expected id 9, got %d", gotID)
		}
	})

	t.Run("unknown product returns 404", func(t *testing.T) {
		products := &mockProductService{
			deleteProductFn: func(id uint) error { return apperrors.ErrProductNotFound },
		}
		r := setupProductRouter(products, store)
		sess := storedSession(t, store, 1, true)

		rec := doRequest(r, "DELETE", "/api/products", `{"id":9}`, sess.ID)
		if rec.Code != http.StatusNotFound {
			t.Errorf("expected 404, got %d", rec.Code)
		}
	})
}
