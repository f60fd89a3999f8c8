package memory

import (
	"context"
	"time"

	"github.com/patrickmn/go-cache"

	"coverquote-be/internal/repository/contract"
	"coverquote-be/pkg/store"
)

type SessionRepository struct {
	cache *cache.Cache
}

func NewSessionRepository() *SessionRepository {
	// Default expiration of 1 hour, expired items purged every 10 minutes
	c := cache.New(1*time.Hour, 10*time.Minute)
	return &SessionRepository{
		cache: c,
	}
}

func (r *SessionRepository) Get(_ context.Context, id string) (*store.Session, bool, error) {
	if x, found := r.cache.Get(id); found {
		return x.(*store.Session), true, nil
	}
	return nil, false, nil
}

func (r *SessionRepository) Save(_ context.Context, sess *store.Session) error {
	r.cache.Set(sess.ID, sess, cache.DefaultExpiration)
	return nil
}

func (r *SessionRepository) Delete(_ context.Context, id string) error {
	r.cache.Delete(id)
	return nil
}

var _ contract.SessionRepository = (*SessionRepository)(nil)
