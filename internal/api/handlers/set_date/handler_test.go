package set_date

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-BookingFlow/internal/api/middleware"
	"github.com/m04kA/SMC-BookingFlow/internal/infra/notifier"
	"github.com/m04kA/SMC-BookingFlow/internal/infra/storage/memory"
	"github.com/m04kA/SMC-BookingFlow/internal/service/flow"
	"github.com/m04kA/SMC-BookingFlow/pkg/logger"
)

const session = "5e0c8a3f-2b7d-4c19-8f6a-9d1e2c3b4a50"

func TestHandle(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		wantStatus int
		wantBody   string
	}{
		{name: "valid date", body: `{"date":"2025-10-15"}`, wantStatus: http.StatusOK, wantBody: `"selectedDate":"2025-10-15"`},
		{name: "clear date", body: `{"date":""}`, wantStatus: http.StatusOK, wantBody: `"selectedDate":null`},
		{name: "wrong format", body: `{"date":"15.10.2025"}`, wantStatus: http.StatusBadRequest},
		{name: "impossible date", body: `{"date":"2025-02-30"}`, wantStatus: http.StatusBadRequest},
		{name: "malformed body", body: `{"date":`, wantStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := flow.NewStore(memory.NewRepository(), notifier.NewHub(), nil, logger.Nop())
			h := NewHandler(store, logger.Nop())

			req := httptest.NewRequest(http.MethodPut, "/api/v1/flow/date", strings.NewReader(tt.body))
			req = req.WithContext(middleware.WithSessionID(req.Context(), session))
			rr := httptest.NewRecorder()

			h.Handle(rr, req)

			require.Equal(t, tt.wantStatus, rr.Code)
			if tt.wantBody != "" {
				assert.Contains(t, rr.Body.String(), tt.wantBody)
			}
		})
	}
}
