package watch_flow

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"github.com/m04kA/SMC-BookingFlow/internal/api/handlers"
	"github.com/m04kA/SMC-BookingFlow/internal/api/middleware"
	"github.com/m04kA/SMC-BookingFlow/internal/infra/notifier"
)

const (
	msgMissingSession = "не указан идентификатор сессии"

	sendBuffer = 16
	writeWait  = 5 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = pongWait * 9 / 10
)

type Handler struct {
	changes  ChangeSubscriber
	metrics  WatchRecorder
	upgrader websocket.Upgrader
	logger   Logger
}

func NewHandler(changes ChangeSubscriber, metrics WatchRecorder, logger Logger) *Handler {
	return &Handler{
		changes: changes,
		metrics: metrics,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(r *http.Request) bool { return true },
		},
		logger: logger,
	}
}

// Handle GET /api/v1/flow/watch
// Пересылает события bookingFlowChange сессии в WebSocket до закрытия соединения
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := middleware.GetSessionID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgMissingSession)
		return
	}

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade сам ответил клиенту
		h.logger.Warn("GET /flow/watch - Upgrade failed: session_id=%s, error=%v", sessionID, err)
		return
	}
	defer conn.Close()

	if h.metrics != nil {
		h.metrics.WatchOpened()
		defer h.metrics.WatchClosed()
	}

	send := make(chan []byte, sendBuffer)
	done := make(chan struct{})

	unsubscribe := h.changes.Subscribe(sessionID, func(e notifier.Event) {
		payload, err := json.Marshal(fromEvent(e))
		if err != nil {
			h.logger.Error("GET /flow/watch - Failed to encode event: session_id=%s, error=%v", sessionID, err)
			return
		}
		select {
		case send <- payload:
		case <-done:
		default:
			// Медленный клиент: событие теряется, следующее все равно заставит перечитать состояние
			h.logger.Warn("GET /flow/watch - Send buffer full, event dropped: session_id=%s", sessionID)
		}
	})
	defer unsubscribe()

	h.logger.Info("GET /flow/watch - Subscribed: session_id=%s", sessionID)

	go h.writeLoop(conn, sessionID, send, done)

	h.readLoop(conn)
	close(done)

	h.logger.Info("GET /flow/watch - Unsubscribed: session_id=%s", sessionID)
}

// readLoop читает входящие кадры только ради pong и close
func (h *Handler) readLoop(conn *websocket.Conn) {
	conn.SetReadLimit(512)
	_ = conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		if _, _, err := conn.NextReader(); err != nil {
			return
		}
	}
}

// writeLoop единственный писатель в соединение
func (h *Handler) writeLoop(conn *websocket.Conn, sessionID string, send <-chan []byte, done <-chan struct{}) {
	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()

	hello, _ := json.Marshal(ChangeMessage{
		Type:      MessageSubscribed,
		SessionID: sessionID,
		Timestamp: time.Now().UnixMilli(),
	})
	if err := h.write(conn, websocket.TextMessage, hello); err != nil {
		conn.Close()
		return
	}

	for {
		select {
		case payload := <-send:
			if err := h.write(conn, websocket.TextMessage, payload); err != nil {
				conn.Close()
				return
			}

		case <-ticker.C:
			if err := h.write(conn, websocket.PingMessage, nil); err != nil {
				conn.Close()
				return
			}

		case <-done:
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			_ = conn.WriteMessage(websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
			return
		}
	}
}

func (h *Handler) write(conn *websocket.Conn, messageType int, payload []byte) error {
	if err := conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
		return err
	}
	return conn.WriteMessage(messageType, payload)
}
