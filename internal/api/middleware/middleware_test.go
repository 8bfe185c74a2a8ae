package middleware

import (
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-BookingFlow/pkg/logger"
)

type observation struct {
	method, route, status string
}

type recordingObserver struct {
	mu   sync.Mutex
	seen []observation
}

func (o *recordingObserver) ObserveHTTPRequest(method, route, status string, _ float64) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.seen = append(o.seen, observation{method, route, status})
}

func TestSession(t *testing.T) {
	var gotID string
	handler := Session(logger.Nop())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotID, _ = GetSessionID(r.Context())
		w.WriteHeader(http.StatusNoContent)
	}))

	tests := []struct {
		name       string
		header     string
		query      string
		wantStatus int
		wantID     string
	}{
		{name: "valid header", header: "6F9619FF-8B86-D011-B42D-00CF4FC964FF", wantStatus: http.StatusNoContent, wantID: "6f9619ff-8b86-d011-b42d-00cf4fc964ff"},
		{name: "query fallback", query: "?sessionId=6f9619ff-8b86-d011-b42d-00cf4fc964ff", wantStatus: http.StatusNoContent, wantID: "6f9619ff-8b86-d011-b42d-00cf4fc964ff"},
		{name: "missing", wantStatus: http.StatusUnauthorized},
		{name: "not a uuid", header: "session-1", wantStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotID = ""
			req := httptest.NewRequest(http.MethodGet, "/api/v1/flow"+tt.query, nil)
			if tt.header != "" {
				req.Header.Set(SessionHeader, tt.header)
			}
			rr := httptest.NewRecorder()

			handler.ServeHTTP(rr, req)

			assert.Equal(t, tt.wantStatus, rr.Code)
			assert.Equal(t, tt.wantID, gotID)
		})
	}
}

func TestMetrics_UsesRouteTemplate(t *testing.T) {
	observer := &recordingObserver{}

	router := mux.NewRouter()
	router.Use(Metrics(observer))
	router.HandleFunc("/api/v1/flow/services/{serviceId}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusAccepted)
	}).Methods(http.MethodDelete)
	router.HandleFunc("/ok", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("ok"))
	})

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodDelete, "/api/v1/flow/services/s1", nil))
	rr = httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/ok", nil))

	require.Len(t, observer.seen, 2)
	assert.Equal(t, observation{"DELETE", "/api/v1/flow/services/{serviceId}", "202"}, observer.seen[0])
	assert.Equal(t, observation{"GET", "/ok", "200"}, observer.seen[1])
}

func TestRecover(t *testing.T) {
	handler := Recover(logger.Nop())(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	}))

	rr := httptest.NewRecorder()
	require.NotPanics(t, func() {
		handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))
	})
	assert.Equal(t, http.StatusInternalServerError, rr.Code)
}

func TestStatusRecorder_HijackUnsupported(t *testing.T) {
	rec := &statusRecorder{ResponseWriter: httptest.NewRecorder()}
	_, _, err := rec.Hijack()
	assert.Error(t, err)
}
