// Package redisrepo stores sessions in redis so conversations survive
// process restarts in multi-instance deployments.
package redisrepo

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"coverquote-be/internal/repository/contract"
	"coverquote-be/pkg/store"
)

const (
	sessionKeyPrefix = "sess:"
	defaultTTL       = 14 * 24 * time.Hour
)

type SessionRepository struct {
	client *redis.Client
	ttl    time.Duration
}

func NewSessionRepository(client *redis.Client, ttl time.Duration) *SessionRepository {
	if ttl <= 0 {
		ttl = defaultTTL
	}
	return &SessionRepository{client: client, ttl: ttl}
}

func (r *SessionRepository) Get(ctx context.Context, id string) (*store.Session, bool, error) {
	val, err := r.client.Get(ctx, sessionKeyPrefix+id).Result()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	var sess store.Session
	if err := json.Unmarshal([]byte(val), &sess); err != nil {
		return nil, false, err
	}
	if sess.UmbrellaSlots == nil {
		sess.UmbrellaSlots = map[string]string{}
	}
	return &sess, true, nil
}

func (r *SessionRepository) Save(ctx context.Context, sess *store.Session) error {
	val, err := json.Marshal(sess)
	if err != nil {
		return err
	}
	return r.client.Set(ctx, sessionKeyPrefix+sess.ID, val, r.ttl).Err()
}

func (r *SessionRepository) Delete(ctx context.Context, id string) error {
	return r.client.Del(ctx, sessionKeyPrefix+id).Err()
}

var _ contract.SessionRepository = (*SessionRepository)(nil)
