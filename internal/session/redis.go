package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// redisStore persists sessions in Redis with the session TTL as the key
// expiry, so abandoned sessions reap themselves.
type redisStore struct {
	client *redis.Client
}

// NewRedisStore creates a Redis-backed session store.
func NewRedisStore(client *redis.Client) Store {
	return &redisStore{client: client}
}

func sessionKey(id string) string {
	return fmt.Sprintf("session:%s", id)
}

func (s *redisStore) Get(ctx context.Context, id string) (*Session, error) {
	data, err := s.client.Get(ctx, sessionKey(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	var sess Session
	if err := json.Unmarshal(data, &sess); err != nil {
		return nil, err
	}
	return &sess, nil
}

func (s *redisStore) Save(ctx context.Context, sess *Session) error {
	data, err := json.Marshal(sess)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, sessionKey(sess.ID), data, TTL).Err()
}

func (s *redisStore) Delete(ctx context.Context, id string) error {
	return s.client.Del(ctx, sessionKey(id)).Err()
}
