package session

import (
	"context"
	"testing"
	"time"
)

func TestSessionValidity(t *testing.T) {
	t.Run("expired_after_ttl", func(t *testing.T) {
		sess := New()
		sess.UserID = 1
		sess.LoginTime = time.Now().Add(-TTL - time.Minute)

		if !sess.Expired(time.Now()) {
			t.Error("expected session older than TTL to be expired")
		}
	})

	t.Run("fresh_session_valid", func(t *testing.T) {
		sess := New()
		sess.UserID = 1
		sess.LoginTime = time.Now()

		if sess.Expired(time.Now()) {
			t.Error("expected fresh session to be valid")
		}
	})

	t.Run("anonymous_never_login_expired", func(t *testing.T) {
		sess := New()
		if sess.Expired(time.Now().Add(48 * time.Hour)) {
			t.Error("anonymous sessions have no login to expire")
		}
	})

	t.Run("ip_mismatch", func(t *testing.T) {
		sess := New()
		sess.UserID = 1
		sess.IP = "10.0.0.1"

		if !sess.IPMismatch("10.0.0.2") {
			t.Error("expected mismatch for a different client IP")
		}
		if sess.IPMismatch("10.0.0.1") {
			t.Error("expected no mismatch for the original IP")
		}
	})
}

func TestCartHelpers(t *testing.T) {
	sess := New()
	sess.Cart = []CartItem{
		{ProductID: 1, Quantity: 2, AddedAt: time.Now()},
		{ProductID: 2, Quantity: 1, AddedAt: time.Now()},
	}

	if item := sess.FindCartItem(1); item == nil || item.Quantity != 2 {
		t.Fatalf("expected to find product 1 with quantity 2, got %+v", item)
	}
	if item := sess.FindCartItem(99); item != nil {
		t.Errorf("expected nil for absent product, got %+v", item)
	}

	if !sess.RemoveCartItem(1) {
		t.Error("expected removal of existing item to succeed")
	}
	if sess.RemoveCartItem(1) {
		t.Error("expected second removal to report absence")
	}
	if len(sess.Cart) != 1 || sess.Cart[0].ProductID != 2 {
		t.Errorf("expected only product 2 to remain, got %+v", sess.Cart)
	}
}

func TestMemoryStore(t *testing.T) {
	ctx := context.Background()

	t.Run("save_and_get", func(t *testing.T) {
		store := NewMemoryStore()
		sess := New()
		sess.UserID = 7
		sess.Cart = []CartItem{{ProductID: 3, Quantity: 1}}

		if err := store.Save(ctx, sess); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		got, err := store.Get(ctx, sess.ID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.UserID != 7 || len(got.Cart) != 1 {
			t.Errorf("round trip lost data: %+v", got)
		}

		// Mutating the returned session must not affect the stored copy.
		got.Cart[0].Quantity = 99
		again, err := store.Get(ctx, sess.ID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if again.Cart[0].Quantity != 1 {
			t.Error("store leaked a shared cart slice")
		}
	})

	t.Run("missing_id", func(t *testing.T) {
		store := NewMemoryStore()
		if _, err := store.Get(ctx, "nope"); err != ErrNotFound {
			t.Errorf("expected ErrNotFound, got %v", err)
		}
	})

	t.Run("delete_is_idempotent", func(t *testing.T) {
		store := NewMemoryStore()
		sess := New()
		if err := store.Save(ctx, sess); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if err := store.Delete(ctx, sess.ID); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if err := store.Delete(ctx, sess.ID); err != nil {
			t.Fatalf("expected idempotent delete, got %v", err)
		}
		if _, err := store.Get(ctx, sess.ID); err != ErrNotFound {
			t.Errorf("expected ErrNotFound after delete, got %v", err)
		}
	})
}

func TestRotate(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	sess := New()
	sess.Cart = []CartItem{{ProductID: 5, Quantity: 2}}
	if err := store.Save(ctx, sess); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	oldID := sess.ID

	if err := Rotate(ctx, store, sess); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if sess.ID == oldID {
		t.Error("expected a fresh session ID after rotation")
	}
	if _, err := store.Get(ctx, oldID); err != ErrNotFound {
		t.Error("expected the old session ID to be invalidated")
	}

	got, err := store.Get(ctx, sess.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got.Cart) != 1 || got.Cart[0].ProductID != 5 {
		t.Errorf("expected cart to survive rotation, got %+v", got.Cart)
	}
}

func TestNewCSRFToken(t *testing.T) {
	a, err := NewCSRFToken()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	b, err := NewCSRFToken()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(a) != 64 {
		t.Errorf("expected 64 hex chars, got %d", len(a))
	}
	if a == b {
		t.Error("expected unique tokens")
	}
}
