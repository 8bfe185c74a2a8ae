package memory

import (
	"context"
	"sync"

	"github.com/m04kA/SMC-BookingFlow/internal/domain"
	"github.com/m04kA/SMC-BookingFlow/internal/infra/storage"
)

// Repository хранит состояние booking flow в памяти процесса
// Используется для локального запуска (storage.backend = "memory") и в тестах
// Значения хранятся сериализованными, как в PostgreSQL и Redis
type Repository struct {
	mu    sync.RWMutex
	blobs map[string][]byte
}

// NewRepository создает пустой репозиторий
func NewRepository() *Repository {
	return &Repository{blobs: make(map[string][]byte)}
}

// Get получает состояние сессии
func (r *Repository) Get(_ context.Context, sessionID string) (*domain.BookingFlowState, error) {
	r.mu.RLock()
	data, ok := r.blobs[sessionID]
	r.mu.RUnlock()

	if !ok {
		return nil, storage.ErrFlowNotFound
	}
	return storage.Decode(data)
}

// Save сохраняет состояние сессии целиком
func (r *Repository) Save(_ context.Context, sessionID string, state *domain.BookingFlowState) error {
	data, err := storage.Encode(state)
	if err != nil {
		return err
	}

	r.mu.Lock()
	r.blobs[sessionID] = data
	r.mu.Unlock()
	return nil
}

// Delete удаляет состояние сессии
func (r *Repository) Delete(_ context.Context, sessionID string) error {
	r.mu.Lock()
	delete(r.blobs, sessionID)
	r.mu.Unlock()
	return nil
}

// Put записывает сырой блоб в обход сериализации
func (r *Repository) Put(sessionID string, data []byte) {
	r.mu.Lock()
	r.blobs[sessionID] = append([]byte(nil), data...)
	r.mu.Unlock()
}
