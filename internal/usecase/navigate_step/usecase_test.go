package navigate_step

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-BookingFlow/internal/domain"
	"github.com/m04kA/SMC-BookingFlow/internal/infra/notifier"
	"github.com/m04kA/SMC-BookingFlow/internal/infra/storage/memory"
	"github.com/m04kA/SMC-BookingFlow/internal/service/flow"
	"github.com/m04kA/SMC-BookingFlow/internal/wizard"
	"github.com/m04kA/SMC-BookingFlow/pkg/logger"
)

const session = "5e0c8a3f-2b7d-4c19-8f6a-9d1e2c3b4a50"

func TestContinue_WalksTheWizard(t *testing.T) {
	ctx := context.Background()
	store := flow.NewStore(memory.NewRepository(), notifier.NewHub(), nil, logger.Nop())
	uc := NewUseCase(store, wizard.NewController(2*time.Second), logger.Nop())

	resp, err := uc.Continue(ctx, &Request{SessionID: session, Path: "/"})
	require.NoError(t, err)
	assert.True(t, resp.Blocked())
	assert.Equal(t, "Service Required", resp.Notice.Title)
	assert.Equal(t, 2*time.Second, resp.Notice.AutoDismiss)

	_, err = store.AddService(ctx, session, domain.Service{ID: "s1", Duration: 30, Price: 100})
	require.NoError(t, err)

	resp, err = uc.Continue(ctx, &Request{SessionID: session, Path: "/"})
	require.NoError(t, err)
	assert.Equal(t, "/professionals", resp.NavigateTo)

	resp, err = uc.Continue(ctx, &Request{SessionID: session, Path: "/professionals"})
	require.NoError(t, err)
	assert.True(t, resp.Blocked())
	assert.Equal(t, "Professional Required", resp.Notice.Title)

	_, err = store.AssignProfessionalToAll(ctx, session, domain.AnyProfessional())
	require.NoError(t, err)

	resp, err = uc.Continue(ctx, &Request{SessionID: session, Path: "/professionals"})
	require.NoError(t, err)
	assert.Equal(t, "/time", resp.NavigateTo)

	resp, err = uc.Continue(ctx, &Request{SessionID: session, Path: "/time"})
	require.NoError(t, err)
	assert.True(t, resp.Blocked())

	_, err = store.SetTimeSlot(ctx, session, "15:00")
	require.NoError(t, err)

	resp, err = uc.Continue(ctx, &Request{SessionID: session, Path: "/time"})
	require.NoError(t, err)
	assert.Equal(t, "/payment", resp.NavigateTo)

	resp, err = uc.Continue(ctx, &Request{SessionID: session, Path: "/payment"})
	require.NoError(t, err)
	assert.Equal(t, wizard.StepPayment, resp.Step)
	require.NotNil(t, resp.Notice)
	assert.Equal(t, wizard.SeverityInfo, resp.Notice.Severity)
	assert.False(t, resp.Blocked())
}

func TestBack(t *testing.T) {
	store := flow.NewStore(memory.NewRepository(), notifier.NewHub(), nil, logger.Nop())
	uc := NewUseCase(store, wizard.NewController(0), logger.Nop())

	tests := map[string]string{
		"/":              "/",
		"/professionals": "/",
		"/time":          "/professionals",
		"/payment":       "/time",
		"/whatever":      "/",
	}

	for path, want := range tests {
		resp, err := uc.Back(context.Background(), &Request{SessionID: session, Path: path})
		require.NoError(t, err)
		assert.Equal(t, want, resp.NavigateTo, path)
		assert.False(t, resp.Blocked())
	}
}
