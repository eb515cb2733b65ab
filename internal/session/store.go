package session

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

// ErrNotFound is returned when no session exists for an ID (or it expired).
var ErrNotFound = errors.New("session not found")

// Store persists sessions keyed by ID. Implementations enforce the TTL.
type Store interface {
	Get(ctx context.Context, id string) (*Session, error)
	Save(ctx context.Context, sess *Session) error
	Delete(ctx context.Context, id string) error
}

// Rotate assigns the session a fresh ID and removes the old entry.
// Called on login to defeat session fixation; cart contents survive.
func Rotate(ctx context.Context, store Store, sess *Session) error {
	oldID := sess.ID
	sess.ID = uuid.NewString()
	if err := store.Save(ctx, sess); err != nil {
		sess.ID = oldID
		return err
	}
	if oldID != "" {
		if err := store.Delete(ctx, oldID); err != nil {
			return err
		}
	}
	return nil
}
