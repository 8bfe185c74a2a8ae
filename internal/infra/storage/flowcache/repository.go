package flowcache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/m04kA/SMC-BookingFlow/internal/domain"
	"github.com/m04kA/SMC-BookingFlow/internal/infra/storage"
)

const keyPrefix = "booking_flow:"

// Repository хранит состояние booking flow в Redis
// Один ключ на сессию, TTL продлевается при каждом чтении и записи
type Repository struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRepository создает новый экземпляр репозитория
// ttl <= 0 означает хранение без срока жизни
func NewRepository(client *redis.Client, ttl time.Duration) *Repository {
	return &Repository{client: client, ttl: ttl}
}

// Key возвращает ключ Redis для сессии
func Key(sessionID string) string {
	return keyPrefix + sessionID
}

// Get получает состояние сессии
func (r *Repository) Get(ctx context.Context, sessionID string) (*domain.BookingFlowState, error) {
	data, err := r.client.Get(ctx, Key(sessionID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrFlowNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Get - GET %s: %v", ErrRedis, Key(sessionID), err)
	}

	if r.ttl > 0 {
		// Скользящий срок жизни: активная сессия не истекает
		if err := r.client.Expire(ctx, Key(sessionID), r.ttl).Err(); err != nil {
			return nil, fmt.Errorf("%w: Get - EXPIRE %s: %v", ErrRedis, Key(sessionID), err)
		}
	}

	return storage.Decode(data)
}

// Save сохраняет состояние сессии целиком одной командой SET
func (r *Repository) Save(ctx context.Context, sessionID string, state *domain.BookingFlowState) error {
	data, err := storage.Encode(state)
	if err != nil {
		return err
	}

	if err := r.client.Set(ctx, Key(sessionID), data, r.ttl).Err(); err != nil {
		return fmt.Errorf("%w: Save - SET %s: %v", ErrRedis, Key(sessionID), err)
	}

	return nil
}

// Delete удаляет состояние сессии
func (r *Repository) Delete(ctx context.Context, sessionID string) error {
	if err := r.client.Del(ctx, Key(sessionID)).Err(); err != nil {
		return fmt.Errorf("%w: Delete - DEL %s: %v", ErrRedis, Key(sessionID), err)
	}
	return nil
}
