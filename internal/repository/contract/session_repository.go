package contract

import (
	"context"

	"coverquote-be/pkg/store"
)

// SessionRepository persists per-conversation state. Expiry is the store's
// concern; the core never deletes sessions on its own.
type SessionRepository interface {
	Get(ctx context.Context, id string) (*store.Session, bool, error)
	Save(ctx context.Context, sess *store.Session) error
	Delete(ctx context.Context, id string) error
}
