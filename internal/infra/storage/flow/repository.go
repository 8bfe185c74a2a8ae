package flow

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-BookingFlow/internal/domain"
	"github.com/m04kA/SMC-BookingFlow/internal/infra/storage"
	"github.com/m04kA/SMC-BookingFlow/pkg/psqlbuilder"
)

const tableName = "booking_flows"

const createTableQuery = `CREATE TABLE IF NOT EXISTS booking_flows (
	session_id VARCHAR(64) PRIMARY KEY,
	state      JSONB       NOT NULL,
	updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
)`

// Repository хранит состояние booking flow в PostgreSQL
// Одна строка на сессию, состояние целиком в колонке state
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// EnsureSchema создает таблицу booking_flows, если её нет
func (r *Repository) EnsureSchema(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, createTableQuery); err != nil {
		return fmt.Errorf("%w: EnsureSchema - create table: %v", ErrExecQuery, err)
	}
	return nil
}

// Get получает состояние сессии
func (r *Repository) Get(ctx context.Context, sessionID string) (*domain.BookingFlowState, error) {
	query, args, err := psqlbuilder.Select("state").
		From(tableName).
		Where(squirrel.Eq{"session_id": sessionID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Get - build select query: %v", ErrBuildQuery, err)
	}

	var data []byte
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrFlowNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Get - scan state: %v", ErrScanRow, err)
	}

	return storage.Decode(data)
}

// Save сохраняет состояние сессии целиком одним UPSERT
// Частичная запись невозможна: строка заменяется атомарно
func (r *Repository) Save(ctx context.Context, sessionID string, state *domain.BookingFlowState) error {
	data, err := storage.Encode(state)
	if err != nil {
		return err
	}

	query, args, err := psqlbuilder.Insert(tableName).
		Columns("session_id", "state", "updated_at").
		Values(sessionID, data, squirrel.Expr("NOW()")).
		Suffix("ON CONFLICT (session_id) DO UPDATE SET state = EXCLUDED.state, updated_at = EXCLUDED.updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Save - build upsert query: %v", ErrBuildQuery, err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: Save - execute upsert: %v", ErrExecQuery, err)
	}

	return nil
}

// Delete удаляет состояние сессии
// Отсутствие строки не считается ошибкой
func (r *Repository) Delete(ctx context.Context, sessionID string) error {
	query, args, err := psqlbuilder.Delete(tableName).
		Where(squirrel.Eq{"session_id": sessionID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	return nil
}
