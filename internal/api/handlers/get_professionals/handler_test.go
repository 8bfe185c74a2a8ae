package get_professionals

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-BookingFlow/internal/api/middleware"
	"github.com/m04kA/SMC-BookingFlow/internal/domain"
	getProfessionals "github.com/m04kA/SMC-BookingFlow/internal/usecase/get_professionals"
	"github.com/m04kA/SMC-BookingFlow/pkg/logger"
)

const session = "5e0c8a3f-2b7d-4c19-8f6a-9d1e2c3b4a50"

type mockUseCase struct {
	mock.Mock
}

func (m *mockUseCase) Execute(ctx context.Context, req *getProfessionals.Request) (*getProfessionals.Response, error) {
	args := m.Called(ctx, req)
	resp, _ := args.Get(0).(*getProfessionals.Response)
	return resp, args.Error(1)
}

func newRequest(query string) *http.Request {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/flow/professionals"+query, nil)
	return req.WithContext(middleware.WithSessionID(req.Context(), session))
}

func TestHandle_ReturnsList(t *testing.T) {
	uc := &mockUseCase{}
	uc.On("Execute", mock.Anything, &getProfessionals.Request{SessionID: session}).Return(&getProfessionals.Response{
		Professionals: []domain.Professional{
			domain.AnyProfessionalOption(),
			{ID: "e1", Name: "Jane Doe", Subtitle: "Therapist", Letter: "J", IsAvailable: true},
		},
		SelectedID: "e1",
		ServiceID:  "s1",
		Date:       "2025-03-14",
	}, nil)

	rr := httptest.NewRecorder()
	NewHandler(uc, logger.Nop()).Handle(rr, newRequest(""))

	require.Equal(t, http.StatusOK, rr.Code)

	var body ProfessionalsResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	require.Len(t, body.Professionals, 2)
	assert.Equal(t, domain.AnyProfessionalID, body.Professionals[0].ID)
	assert.Equal(t, "e1", body.SelectedID)
	assert.False(t, body.Retry)
	uc.AssertExpectations(t)
}

func TestHandle_Refresh(t *testing.T) {
	uc := &mockUseCase{}
	uc.On("Execute", mock.Anything, &getProfessionals.Request{SessionID: session, Refresh: true}).
		Return(&getProfessionals.Response{NoServices: true, Message: getProfessionals.MsgNoServices}, nil)

	rr := httptest.NewRecorder()
	NewHandler(uc, logger.Nop()).Handle(rr, newRequest("?refresh=true"))

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `"professionals":[]`)
	assert.Contains(t, rr.Body.String(), `"noServices":true`)
	uc.AssertExpectations(t)
}

func TestHandle_Errors(t *testing.T) {
	tests := []struct {
		name       string
		query      string
		err        error
		wantStatus int
	}{
		{name: "bad refresh flag", query: "?refresh=maybe", wantStatus: http.StatusBadRequest},
		{name: "superseded", err: getProfessionals.ErrSuperseded, wantStatus: http.StatusConflict},
		{name: "internal", err: fmt.Errorf("%w: load flow: %v", getProfessionals.ErrInternal, errors.New("boom")), wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &mockUseCase{}
			if tt.err != nil {
				uc.On("Execute", mock.Anything, mock.Anything).Return(nil, tt.err)
			}

			rr := httptest.NewRecorder()
			NewHandler(uc, logger.Nop()).Handle(rr, newRequest(tt.query))

			assert.Equal(t, tt.wantStatus, rr.Code)
			uc.AssertExpectations(t)
		})
	}
}
