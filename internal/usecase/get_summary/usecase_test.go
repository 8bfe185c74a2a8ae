package get_summary

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-BookingFlow/internal/domain"
	"github.com/m04kA/SMC-BookingFlow/internal/infra/notifier"
	"github.com/m04kA/SMC-BookingFlow/internal/infra/storage/memory"
	"github.com/m04kA/SMC-BookingFlow/internal/service/flow"
	"github.com/m04kA/SMC-BookingFlow/pkg/logger"
)

const session = "8c2d1e4f-3a5b-4c6d-9e7f-0a1b2c3d4e5f"

type brokenStore struct{}

func (brokenStore) Load(context.Context, string) (*domain.BookingFlowState, error) {
	return nil, errors.New("redis: connection pool timeout")
}

func TestSummary_ReflectsLatestState(t *testing.T) {
	ctx := context.Background()
	store := flow.NewStore(memory.NewRepository(), notifier.NewHub(), nil, logger.Nop())
	uc := NewUseCase(store, logger.Nop())

	_, err := store.AddService(ctx, session, domain.Service{ID: "s1", Name: "Swedish massage", Duration: 30, Price: 100})
	require.NoError(t, err)

	summary, err := uc.Summary(ctx, session, "/professionals")
	require.NoError(t, err)
	assert.Equal(t, "30 min", summary.TotalDuration)
	assert.Equal(t, "AED 100", summary.TotalPrice)
	assert.False(t, summary.ContinueEnabled)

	bar, err := uc.BottomBar(ctx, session)
	require.NoError(t, err)
	assert.Equal(t, 30, bar.TotalDuration)
	assert.Equal(t, 100.0, bar.TotalPrice)
	assert.False(t, bar.CanContinue)

	_, err = store.AssignProfessionalToAll(ctx, session, domain.AnyProfessional())
	require.NoError(t, err)

	summary, err = uc.Summary(ctx, session, "/professionals")
	require.NoError(t, err)
	assert.True(t, summary.ContinueEnabled)
	assert.Equal(t, "Any professional", summary.Services[0].Professional)

	bar, err = uc.BottomBar(ctx, session)
	require.NoError(t, err)
	assert.True(t, bar.CanContinue)
}

func TestSummary_StoreFailure(t *testing.T) {
	uc := NewUseCase(brokenStore{}, logger.Nop())

	_, err := uc.Summary(context.Background(), session, "/")
	assert.ErrorIs(t, err, ErrInternal)

	_, err = uc.BottomBar(context.Background(), session)
	assert.ErrorIs(t, err, ErrInternal)
}
