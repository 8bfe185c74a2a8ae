package flow

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-BookingFlow/internal/domain"
	"github.com/m04kA/SMC-BookingFlow/internal/infra/storage"
)

var (
	selectStateQuery = regexp.QuoteMeta(`SELECT state FROM booking_flows WHERE session_id = $1`)
	upsertQuery      = `INSERT INTO booking_flows .* ON CONFLICT \(session_id\) DO UPDATE SET state = EXCLUDED.state`
	deleteQuery      = regexp.QuoteMeta(`DELETE FROM booking_flows WHERE session_id = $1`)
)

func sampleState() *domain.BookingFlowState {
	state := domain.NewBookingFlowState()
	state.AddService(domain.Service{ID: "s1", Name: "Aroma massage", Duration: 60, Price: 300, Category: domain.NewCategory("massage")})
	state.AssignProfessionalToAll(domain.Professional{ID: "e1", Name: "Jane Doe", Position: "Therapist"})
	state.SelectedTimeSlot = "12:00"
	return state
}

func TestRepository_Get(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)
	ctx := context.Background()

	blob, err := storage.Encode(sampleState())
	require.NoError(t, err)

	tests := []struct {
		name    string
		setup   func()
		want    *domain.BookingFlowState
		wantErr error
	}{
		{
			name: "found",
			setup: func() {
				mock.ExpectQuery(selectStateQuery).
					WithArgs("sess-1").
					WillReturnRows(sqlmock.NewRows([]string{"state"}).AddRow(blob))
			},
			want: sampleState(),
		},
		{
			name: "not found",
			setup: func() {
				mock.ExpectQuery(selectStateQuery).
					WithArgs("sess-1").
					WillReturnRows(sqlmock.NewRows([]string{"state"}))
			},
			wantErr: ErrFlowNotFound,
		},
		{
			name: "corrupt blob",
			setup: func() {
				mock.ExpectQuery(selectStateQuery).
					WithArgs("sess-1").
					WillReturnRows(sqlmock.NewRows([]string{"state"}).AddRow([]byte(`{"selectedServices":`)))
			},
			wantErr: ErrCorruptState,
		},
		{
			name: "database error",
			setup: func() {
				mock.ExpectQuery(selectStateQuery).
					WithArgs("sess-1").
					WillReturnError(errors.New("connection reset"))
			},
			wantErr: ErrScanRow,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()

			got, err := repo.Get(ctx, "sess-1")
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, got)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.want, got)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_Save(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)

	mock.ExpectExec(upsertQuery).
		WithArgs("sess-1", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.Save(context.Background(), "sess-1", sampleState()))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_SaveError(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)

	mock.ExpectExec(upsertQuery).
		WithArgs("sess-1", sqlmock.AnyArg()).
		WillReturnError(errors.New("disk full"))

	err = repo.Save(context.Background(), "sess-1", sampleState())
	assert.ErrorIs(t, err, ErrExecQuery)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Delete(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)

	mock.ExpectExec(deleteQuery).
		WithArgs("sess-1").
		WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, repo.Delete(context.Background(), "sess-1"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_EnsureSchema(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec(`CREATE TABLE IF NOT EXISTS booking_flows`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, NewRepository(db).EnsureSchema(context.Background()))
	assert.NoError(t, mock.ExpectationsWereMet())
}
