package add_service

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-BookingFlow/internal/api/middleware"
	"github.com/m04kA/SMC-BookingFlow/internal/domain"
	"github.com/m04kA/SMC-BookingFlow/internal/service/flow"
	"github.com/m04kA/SMC-BookingFlow/pkg/logger"
)

const session = "5e0c8a3f-2b7d-4c19-8f6a-9d1e2c3b4a50"

type mockAdder struct {
	mock.Mock
}

func (m *mockAdder) AddService(ctx context.Context, sessionID string, svc domain.Service) (*domain.BookingFlowState, error) {
	args := m.Called(ctx, sessionID, svc)
	state, _ := args.Get(0).(*domain.BookingFlowState)
	return state, args.Error(1)
}

func newRequest(body string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/flow/services", strings.NewReader(body))
	return req.WithContext(middleware.WithSessionID(req.Context(), session))
}

func TestHandle_AddsService(t *testing.T) {
	store := &mockAdder{}
	svc := domain.Service{ID: "s1", Name: "Aroma massage", Duration: 60, Price: 300, Category: domain.NewCategory("massage")}

	state := domain.NewBookingFlowState()
	state.AddService(svc)
	store.On("AddService", mock.Anything, session, svc).Return(state, nil)

	rr := httptest.NewRecorder()
	NewHandler(store, logger.Nop()).Handle(rr, newRequest(
		`{"_id":"s1","name":"Aroma massage","duration":60,"price":300,"category":"massage","currency":"AED"}`))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `"totalDuration":60`)
	assert.Contains(t, rr.Body.String(), session)
	store.AssertExpectations(t)
}

func TestHandle_Errors(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		storeErr   error
		wantStatus int
	}{
		{name: "malformed body", body: `{"_id":`, wantStatus: http.StatusBadRequest},
		{name: "invalid service", body: `{"_id":"","duration":30}`, storeErr: fmt.Errorf("%w: empty id", flow.ErrInvalidService), wantStatus: http.StatusBadRequest},
		{name: "storage failure", body: `{"_id":"s1","duration":30}`, storeErr: fmt.Errorf("%w: save: %v", flow.ErrInternal, errors.New("boom")), wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := &mockAdder{}
			if tt.storeErr != nil {
				store.On("AddService", mock.Anything, session, mock.Anything).Return(nil, tt.storeErr)
			}

			rr := httptest.NewRecorder()
			NewHandler(store, logger.Nop()).Handle(rr, newRequest(tt.body))

			assert.Equal(t, tt.wantStatus, rr.Code)
			store.AssertExpectations(t)
		})
	}
}

func TestHandle_MissingSession(t *testing.T) {
	store := &mockAdder{}
	req := httptest.NewRequest(http.MethodPost, "/api/v1/flow/services", strings.NewReader(`{}`))
	rr := httptest.NewRecorder()

	NewHandler(store, logger.Nop()).Handle(rr, req)

	require.Equal(t, http.StatusUnauthorized, rr.Code)
	store.AssertNotCalled(t, "AddService", mock.Anything, mock.Anything, mock.Anything)
}
