package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/GoSim-25-26J-441/archgen-backend/internal/architecture_generation/domain"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	architectureKeyPrefix = "archgen:arch:" // archgen:arch:{id} -> JSON record
	diagramSVGKeyPrefix   = "archgen:svg:"  // archgen:svg:{id} -> last rendered SVG
	DefaultSessionTTL     = 24 * time.Hour
)

// SessionRepository keeps submitted architectures in redis for the session TTL.
type SessionRepository struct {
	client *redis.Client
	ttl    time.Duration
}

func NewSessionRepository(client *redis.Client, ttl time.Duration) *SessionRepository {
	if ttl <= 0 {
		ttl = DefaultSessionTTL
	}
	return &SessionRepository{client: client, ttl: ttl}
}

// Create stores a new architecture. ID and CreatedAt are filled when empty.
func (r *SessionRepository) Create(ctx context.Context, a *domain.Architecture) error {
	if a.ID == "" {
		a.ID = uuid.New().String()
	}
	if a.CreatedAt.IsZero() {
		a.CreatedAt = time.Now().UTC()
	}

	data, err := json.Marshal(a)
	if err != nil {
		return fmt.Errorf("failed to marshal architecture: %w", err)
	}

	ok, err := r.client.SetNX(ctx, r.architectureKey(a.ID), data, r.ttl).Result()
	if err != nil {
		return fmt.Errorf("failed to create architecture: %w", err)
	}
	if !ok {
		return fmt.Errorf("architecture %s already exists", a.ID)
	}
	return nil
}

func (r *SessionRepository) Get(ctx context.Context, id string) (*domain.Architecture, error) {
	data, err := r.client.Get(ctx, r.architectureKey(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, domain.ErrArchitectureNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get architecture: %w", err)
	}

	var a domain.Architecture
	if err := json.Unmarshal(data, &a); err != nil {
		return nil, fmt.Errorf("failed to unmarshal architecture: %w", err)
	}
	return &a, nil
}

func (r *SessionRepository) Delete(ctx context.Context, id string) error {
	n, err := r.client.Del(ctx, r.architectureKey(id), r.diagramSVGKey(id)).Result()
	if err != nil {
		return fmt.Errorf("failed to delete architecture: %w", err)
	}
	if n == 0 {
		return domain.ErrArchitectureNotFound
	}
	return nil
}

// SetDiagramSVG overwrites the session's last rendered diagram. Concurrent
// renders are not sequenced; the last write wins.
func (r *SessionRepository) SetDiagramSVG(ctx context.Context, id string, svg []byte) error {
	ttl, err := r.client.TTL(ctx, r.architectureKey(id)).Result()
	if err != nil {
		return fmt.Errorf("failed to read session ttl: %w", err)
	}
	if ttl <= 0 {
		ttl = r.ttl
	}
	if err := r.client.Set(ctx, r.diagramSVGKey(id), svg, ttl).Err(); err != nil {
		return fmt.Errorf("failed to store diagram: %w", err)
	}
	return nil
}

// GetDiagramSVG returns the last rendered diagram, or nil when none exists.
func (r *SessionRepository) GetDiagramSVG(ctx context.Context, id string) ([]byte, error) {
	svg, err := r.client.Get(ctx, r.diagramSVGKey(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get diagram: %w", err)
	}
	return svg, nil
}

func (r *SessionRepository) architectureKey(id string) string {
	return fmt.Sprintf("%s%s", architectureKeyPrefix, id)
}

func (r *SessionRepository) diagramSVGKey(id string) string {
	return fmt.Sprintf("%s%s", diagramSVGKeyPrefix, id)
}
