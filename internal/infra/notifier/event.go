package notifier

import "time"

// Event names
const (
	// EventBookingFlowChange публикуется хранилищем после каждой сохраненной мутации
	EventBookingFlowChange = "bookingFlowChange"

	// EventStorage ретранслирует изменение, сделанное другим экземпляром или окном
	EventStorage = "storage"
)

// Event is a content-free change signal: listeners re-read the flow themselves.
type Event struct {
	Name      string    `json:"type"`
	SessionID string    `json:"sessionId"`
	Origin    string    `json:"origin,omitempty"`
	At        time.Time `json:"timestamp"`
}

// Listener callback вызывается синхронно в горутине публикующего
type Listener func(Event)
