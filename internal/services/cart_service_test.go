package services

import (
	"testing"

	"ecoshop/internal/session"
	"ecoshop/internal/testutil"
)

func TestCartService_Add(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)

	svc := NewCartService(db)

	t.Run("adds a new line", func(t *testing.T) {
		product := testutil.CreateTestProduct(t, db, 9.99)
		sess := session.New()

		testutil.AssertNoError(t, svc.Add(sess, product.ID, 2))

		if len(sess.Cart) != 1 {
			t.Fatalf("expected 1 cart line, got %d", len(sess.Cart))
		}
		if sess.Cart[0].Quantity != 2 {
			t.Errorf("expected quantity 2, got %d", sess.Cart[0].Quantity)
		}
		if sess.Cart[0].AddedAt.IsZero() {
			t.Error("expected added-at timestamp")
		}
	})

	t.Run("merges into an existing line", func(t *testing.T) {
		product := testutil.CreateTestProduct(t, db, 9.99)
		sess := session.New()

		testutil.AssertNoError(t, svc.Add(sess, product.ID, 2))
		testutil.AssertNoError(t, svc.Add(sess, product.ID, 3))

		if len(sess.Cart) != 1 {
			t.Fatalf("expected merged line, got %d lines", len(sess.Cart))
		}
		if sess.Cart[0].Quantity != 5 {
			t.Errorf("expected quantity 5, got %d", sess.Cart[0].Quantity)
		}
	})

	t.Run("rejects non-positive quantity", func(t *testing.T) {
		product := testutil.CreateTestProduct(t, db, 9.99)
		sess := session.New()

		testutil.AssertAppError(t, svc.Add(sess, product.ID, 0), "INVALID_INPUT")
		testutil.AssertAppError(t, svc.Add(sess, product.ID, -1), "INVALID_INPUT")
	})

	t.Run("rejects out-of-stock product", func(t *testing.T) {
		product := testutil.CreateTestOutOfStockProduct(t, db, 9.99)
		sess := session.New()

		testutil.AssertAppError(t, svc.Add(sess, product.ID, 1), "PRODUCT_UNAVAILABLE")
		if len(sess.Cart) != 0 {
			t.Error("cart must stay empty after a rejected add")
		}
	})

	t.Run("rejects unknown product", func(t *testing.T) {
		sess := session.New()
		testutil.AssertAppError(t, svc.Add(sess, 99999, 1), "PRODUCT_UNAVAILABLE")
	})
}

func TestCartService_Update(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)

	svc := NewCartService(db)

	t.Run("replaces quantity", func(t *testing.T) {
		product := testutil.CreateTestProduct(t, db, 9.99)
		sess := session.New()
		testutil.AssertNoError(t, svc.Add(sess, product.ID, 2))

		testutil.AssertNoError(t, svc.Update(sess, product.ID, 7))
		if sess.Cart[0].Quantity != 7 {
			t.Errorf("expected quantity 7, got %d", sess.Cart[0].Quantity)
		}
	})

	t.Run("zero removes the line", func(t *testing.T) {
		product := testutil.CreateTestProduct(t, db, 9.99)
		sess := session.New()
		testutil.AssertNoError(t, svc.Add(sess, product.ID, 2))

		testutil.AssertNoError(t, svc.Update(sess, product.ID, 0))
		if len(sess.Cart) != 0 {
			t.Errorf("expected empty cart, got %d lines", len(sess.Cart))
		}
	})

	t.Run("rejects negative quantity", func(t *testing.T) {
		product := testutil.CreateTestProduct(t, db, 9.99)
		sess := session.New()
		testutil.AssertNoError(t, svc.Add(sess, product.ID, 2))

		testutil.AssertAppError(t, svc.Update(sess, product.ID, -1), "INVALID_INPUT")
	})

	t.Run("missing line", func(t *testing.T) {
		sess := session.New()
		testutil.AssertAppError(t, svc.Update(sess, 99999, 1), "CART_ITEM_NOT_FOUND")
	})
}

func TestCartService_Remove(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)

	svc := NewCartService(db)

	product := testutil.CreateTestProduct(t, db, 9.99)
	sess := session.New()
	testutil.AssertNoError(t, svc.Add(sess, product.ID, 1))

	testutil.AssertNoError(t, svc.Remove(sess, product.ID))
	if len(sess.Cart) != 0 {
		t.Errorf("expected empty cart, got %d lines", len(sess.Cart))
	}

	testutil.AssertAppError(t, svc.Remove(sess, product.ID), "CART_ITEM_NOT_FOUND")
}

func TestCartService_GetDetailed(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)

	svc := NewCartService(db)

	t.Run("joins live product data", func(t *testing.T) {
		product := testutil.CreateTestProductWithDiscount(t, db, 50, 10)
		sess := session.New()
		testutil.AssertNoError(t, svc.Add(sess, product.ID, 2))

		entries, err := svc.GetDetailed(sess)
		testutil.AssertNoError(t, err)

		if len(entries) != 1 {
			t.Fatalf("expected 1 entry, got %d", len(entries))
		}
		if entries[0].Product.Name != product.Name {
			t.Errorf("expected product %q, got %q", product.Name, entries[0].Product.Name)
		}
		if entries[0].Quantity != 2 {
			t.Errorf("expected quantity 2, got %d", entries[0].Quantity)
		}
	})

	t.Run("skips lines whose product was deleted", func(t *testing.T) {
		kept := testutil.CreateTestProduct(t, db, 10)
		doomed := testutil.CreateTestProduct(t, db, 20)
		sess := session.New()
		testutil.AssertNoError(t, svc.Add(sess, kept.ID, 1))
		testutil.AssertNoError(t, svc.Add(sess, doomed.ID, 1))

		if err := db.Delete(doomed).Error; err != nil {
			t.Fatalf("failed to delete product: %v", err)
		}

		entries, err := svc.GetDetailed(sess)
		testutil.AssertNoError(t, err)
		if len(entries) != 1 {
			t.Fatalf("expected 1 entry, got %d", len(entries))
		}
		if entries[0].Product.ID != kept.ID {
			t.Errorf("expected surviving product %d, got %d", kept.ID, entries[0].Product.ID)
		}
	})
}

func TestCartService_Total(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)

	svc := NewCartService(db)

	t.Run("applies the live discount per unit", func(t *testing.T) {
		product := testutil.CreateTestProductWithDiscount(t, db, 10.00, 20)
		sess := session.New()
		testutil.AssertNoError(t, svc.Add(sess, product.ID, 3))

		total, err := svc.Total(sess)
		testutil.AssertNoError(t, err)
		if total != 24.00 {
			t.Errorf("expected total 24.00, got %v", total)
		}
	})

	t.Run("sums multiple lines rounded to cents", func(t *testing.T) {
		a := testutil.CreateTestProduct(t, db, 19.99)
		b := testutil.CreateTestProductWithDiscount(t, db, 5.50, 50)
		sess := session.New()
		testutil.AssertNoError(t, svc.Add(sess, a.ID, 2))
		testutil.AssertNoError(t, svc.Add(sess, b.ID, 1))

		total, err := svc.Total(sess)
		testutil.AssertNoError(t, err)
		if total != 42.73 {
			t.Errorf("expected total 42.73, got %v", total)
		}
	})

	t.Run("empty cart totals zero", func(t *testing.T) {
		total, err := svc.Total(session.New())
		testutil.AssertNoError(t, err)
		if total != 0 {
			t.Errorf("expected 0, got %v", total)
		}
	})
}
