package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"

	"ecoshop/internal/models"
	"ecoshop/internal/password"

	"gorm.io/gorm"
)

// TestPassword is the plaintext behind every fixture user's hash.
const TestPassword = "Password123!"

// counter provides unique values across fixtures within a test run.
var counter atomic.Int64

func nextID() int64 {
	return counter.Add(1)
}

// CreateTestUser creates an active user with a hashed password and unique email.
func CreateTestUser(t *testing.T, db *gorm.DB) *models.User {
	t.Helper()
	email := fmt.Sprintf("user%d@test.com", nextID())
	return CreateTestUserWithEmail(t, db, email)
}

// CreateTestUserWithEmail creates a user with the given email.
func CreateTestUserWithEmail(t *testing.T, db *gorm.DB, email string) *models.User {
	t.Helper()

	hash, err := password.Hash(TestPassword)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	user := &models.User{
		Email:        email,
		Name:         fmt.Sprintf("Test User %d", nextID()),
		PasswordHash: hash,
		IsActive:     true,
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create test user: %v", err)
	}
	return user
}

// CreateTestAdmin creates an active admin user.
func CreateTestAdmin(t *testing.T, db *gorm.DB) *models.User {
	t.Helper()

	user := CreateTestUser(t, db)
	if err := db.Model(user).Update("is_admin", true).Error; err != nil {
		t.Fatalf("failed to promote test admin: %v", err)
	}
	user.IsAdmin = true
	return user
}

// CreateTestProduct creates an in-stock product with no discount.
func CreateTestProduct(t *testing.T, db *gorm.DB, price float64) *models.Product {
	t.Helper()
	return CreateTestProductWithDiscount(t, db, price, 0)
}

// CreateTestProductWithDiscount creates an in-stock product with the given
// price and discount percentage.
func CreateTestProductWithDiscount(t *testing.T, db *gorm.DB, price float64, discount int) *models.Product {
	t.Helper()

	n := nextID()
	product := &models.Product{
		Name:        fmt.Sprintf("Test Product %d", n),
		Price:       price,
		Image:       fmt.Sprintf("product-%d.jpg", n),
		Description: "A test product",
		Category:    "test",
		InStock:     true,
		Discount:    discount,
	}
	if err := db.Create(product).Error; err != nil {
		t.Fatalf("failed to create test product: %v", err)
	}
	return product
}

// CreateTestOutOfStockProduct creates a product that cannot be purchased.
func CreateTestOutOfStockProduct(t *testing.T, db *gorm.DB, price float64) *models.Product {
	t.Helper()

	product := CreateTestProduct(t, db, price)
	if err := db.Model(product).Update("in_stock", false).Error; err != nil {
		t.Fatalf("failed to mark product out of stock: %v", err)
	}
	product.InStock = false
	return product
}

// CreateTestOrder creates a pending order with a single item for the product.
func CreateTestOrder(t *testing.T, db *gorm.DB, userID uint, product *models.Product, quantity int) *models.Order {
	t.Helper()

	order := &models.Order{
		UserID:          userID,
		Total:           product.DiscountedPrice() * float64(quantity),
		ShippingAddress: "1 Test Street, Testville 00000",
		Status:          models.OrderStatusPending,
		Items: []models.OrderItem{
			{ProductID: product.ID, Quantity: quantity, Price: product.DiscountedPrice()},
		},
	}
	if err := db.Create(order).Error; err != nil {
		t.Fatalf("failed to create test order: %v", err)
	}
	return order
}
