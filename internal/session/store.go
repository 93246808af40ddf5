package session

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// Store keeps one State per session id. Loading an unknown id yields New().
type Store interface {
	Load(ctx context.Context, id string) (State, error)
	Save(ctx context.Context, id string, st State) error
}

type MemoryStore struct {
	states map[string]State
	mu     sync.RWMutex
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{states: map[string]State{}}
}

func (m *MemoryStore) Load(_ context.Context, id string) (State, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	st, ok := m.states[id]
	if !ok {
		return New(), nil
	}
	return st, nil
}

func (m *MemoryStore) Save(_ context.Context, id string, st State) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.states[id] = st
	return nil
}

// RedisStore keeps states as JSON under session:{id}:state, refreshing the
// TTL on every save so idle sessions expire.
type RedisStore struct {
	redis *redis.Client
	ttl   time.Duration
}

func NewRedisStore(client *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{redis: client, ttl: ttl}
}

func (r *RedisStore) Load(ctx context.Context, id string) (State, error) {
	raw, err := r.redis.Get(ctx, stateKey(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return New(), nil
	}
	if err != nil {
		return State{}, err
	}
	var st State
	if err := json.Unmarshal(raw, &st); err != nil {
		return State{}, err
	}
	return st, nil
}

func (r *RedisStore) Save(ctx context.Context, id string, st State) error {
	payload, err := json.Marshal(st)
	if err != nil {
		return err
	}
	return r.redis.Set(ctx, stateKey(id), payload, r.ttl).Err()
}

func stateKey(id string) string {
	return "session:" + id + ":state"
}
