package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/goccy/go-json"
	"github.com/redis/go-redis/v9"

	"pathwise-core/internal/domain/entity"
)

const profileKeyPrefix = "profile:"

type RedisProfileStore struct {
	client *redis.Client
}

func NewRedisProfileStore(client *redis.Client) *RedisProfileStore {
	return &RedisProfileStore{client: client}
}

func (r *RedisProfileStore) Load(ctx context.Context, userID string) (*entity.UserProfile, error) {
	val, err := r.client.Get(ctx, profileKeyPrefix+userID).Bytes()
	if errors.Is(err, redis.Nil) {
		return entity.NewUserProfile(userID), nil // First visit
	}
	if err != nil {
		return nil, fmt.Errorf("load profile %s: %w", userID, err)
	}

	p := entity.NewUserProfile(userID)
	if err := json.Unmarshal(val, p); err != nil {
		return nil, fmt.Errorf("decode profile %s: %w", userID, err)
	}
	if p.WeightedProfile == nil {
		p.WeightedProfile = make(map[string]float64)
	}
	return p, nil
}

// Save overwrites the whole profile; entries are never expired here.
func (r *RedisProfileStore) Save(ctx context.Context, p *entity.UserProfile) error {
	p.UpdatedAt = time.Now().UTC()
	val, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("encode profile %s: %w", p.UserID, err)
	}
	if err := r.client.Set(ctx, profileKeyPrefix+p.UserID, val, 0).Err(); err != nil {
		return fmt.Errorf("save profile %s: %w", p.UserID, err)
	}
	return nil
}

func (r *RedisProfileStore) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}
