package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/goccy/go-json"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"pathwise-core/internal/domain/entity"
)

const profileSchema = `
CREATE TABLE IF NOT EXISTS user_profiles (
	user_id          TEXT PRIMARY KEY,
	weighted_profile JSONB NOT NULL DEFAULT '{}'::jsonb,
	updated_at       TIMESTAMPTZ NOT NULL DEFAULT now()
)`

type PostgresProfileStore struct {
	pool *pgxpool.Pool
}

func NewPostgresProfileStore(pool *pgxpool.Pool) *PostgresProfileStore {
	return &PostgresProfileStore{pool: pool}
}

func (s *PostgresProfileStore) EnsureSchema(ctx context.Context) error {
	if _, err := s.pool.Exec(ctx, profileSchema); err != nil {
		return fmt.Errorf("create user_profiles: %w", err)
	}
	return nil
}

func (s *PostgresProfileStore) Load(ctx context.Context, userID string) (*entity.UserProfile, error) {
	var (
		raw       []byte
		updatedAt time.Time
	)
	err := s.pool.QueryRow(ctx,
		`SELECT weighted_profile, updated_at FROM user_profiles WHERE user_id = $1`,
		userID,
	).Scan(&raw, &updatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return entity.NewUserProfile(userID), nil
	}
	if err != nil {
		return nil, fmt.Errorf("query profile %s: %w", userID, err)
	}

	p := entity.NewUserProfile(userID)
	p.UpdatedAt = updatedAt
	if err := json.Unmarshal(raw, &p.WeightedProfile); err != nil {
		return nil, fmt.Errorf("decode profile %s: %w", userID, err)
	}
	if p.WeightedProfile == nil {
		p.WeightedProfile = make(map[string]float64)
	}
	return p, nil
}

func (s *PostgresProfileStore) Save(ctx context.Context, p *entity.UserProfile) error {
	raw, err := json.Marshal(p.WeightedProfile)
	if err != nil {
		return fmt.Errorf("encode profile %s: %w", p.UserID, err)
	}
	p.UpdatedAt = time.Now().UTC()
	_, err = s.pool.Exec(ctx,
		`INSERT INTO user_profiles (user_id, weighted_profile, updated_at)
		 VALUES ($1, $2, $3)
		 ON CONFLICT (user_id) DO UPDATE
		 SET weighted_profile = EXCLUDED.weighted_profile, updated_at = EXCLUDED.updated_at`,
		p.UserID, raw, p.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("upsert profile %s: %w", p.UserID, err)
	}
	return nil
}
