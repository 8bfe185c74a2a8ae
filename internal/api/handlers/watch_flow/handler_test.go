package watch_flow

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-BookingFlow/internal/api/middleware"
	"github.com/m04kA/SMC-BookingFlow/internal/infra/notifier"
	"github.com/m04kA/SMC-BookingFlow/pkg/logger"
)

const session = "5e0c8a3f-2b7d-4c19-8f6a-9d1e2c3b4a50"

func dial(t *testing.T, hub *notifier.Hub) *websocket.Conn {
	t.Helper()

	h := NewHandler(hub, nil, logger.Nop())
	server := httptest.NewServer(middleware.Session(logger.Nop())(http.HandlerFunc(h.Handle)))
	t.Cleanup(server.Close)

	url := "ws" + strings.TrimPrefix(server.URL, "http") + "/api/v1/flow/watch?sessionId=" + session
	conn, resp, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	require.Equal(t, http.StatusSwitchingProtocols, resp.StatusCode)
	t.Cleanup(func() { conn.Close() })

	return conn
}

func readMessage(t *testing.T, conn *websocket.Conn) ChangeMessage {
	t.Helper()

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	_, data, err := conn.ReadMessage()
	require.NoError(t, err)

	var msg ChangeMessage
	require.NoError(t, json.Unmarshal(data, &msg))
	return msg
}

func TestHandle_ForwardsSessionEvents(t *testing.T) {
	hub := notifier.NewHub()
	conn := dial(t, hub)

	hello := readMessage(t, conn)
	assert.Equal(t, MessageSubscribed, hello.Type)
	assert.Equal(t, session, hello.SessionID)

	// Подписка оформлена до отправки приветствия
	require.Equal(t, 1, hub.Count(session))

	hub.Publish(notifier.Event{Name: notifier.EventBookingFlowChange, SessionID: "other-session"})
	hub.Publish(notifier.Event{Name: notifier.EventBookingFlowChange, SessionID: session})

	msg := readMessage(t, conn)
	assert.Equal(t, notifier.EventBookingFlowChange, msg.Type)
	assert.Equal(t, session, msg.SessionID)
	assert.NotZero(t, msg.Timestamp)
}

func TestHandle_UnsubscribesOnClose(t *testing.T) {
	hub := notifier.NewHub()
	conn := dial(t, hub)
	readMessage(t, conn)

	require.NoError(t, conn.WriteMessage(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, "")))
	conn.Close()

	assert.Eventually(t, func() bool {
		return hub.Count(session) == 0
	}, 2*time.Second, 10*time.Millisecond)
}

func TestHandle_RequiresSession(t *testing.T) {
	h := NewHandler(notifier.NewHub(), nil, logger.Nop())
	rr := httptest.NewRecorder()

	h.Handle(rr, httptest.NewRequest(http.MethodGet, "/api/v1/flow/watch", nil))

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}
