package watch_flow

import "github.com/m04kA/SMC-BookingFlow/internal/infra/notifier"

// MessageSubscribed первое сообщение после установки соединения
const MessageSubscribed = "subscribed"

// ChangeMessage сообщение об изменении состояния сессии
// Клиент перечитывает состояние через GET /flow, данные в сообщении не передаются
type ChangeMessage struct {
	Type      string `json:"type"`
	SessionID string `json:"sessionId"`
	Origin    string `json:"origin,omitempty"`
	Timestamp int64  `json:"timestamp"` // unix ms
}

func fromEvent(e notifier.Event) ChangeMessage {
	return ChangeMessage{
		Type:      e.Name,
		SessionID: e.SessionID,
		Origin:    e.Origin,
		Timestamp: e.At.UnixMilli(),
	}
}
