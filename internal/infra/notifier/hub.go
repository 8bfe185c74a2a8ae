package notifier

import (
	"sync"
	"time"
)

// Hub рассылает события подписчикам одной сессии внутри процесса
// Доставка синхронная и best effort, порядок между подписчиками не гарантируется
// Поздний подписчик не получает прошлых событий
type Hub struct {
	mu        sync.RWMutex
	nextID    uint64
	listeners map[string]map[uint64]Listener
}

// NewHub создает пустой хаб
func NewHub() *Hub {
	return &Hub{listeners: make(map[string]map[uint64]Listener)}
}

// Subscribe регистрирует listener для сессии и возвращает функцию отписки
// Повторный вызов функции отписки безопасен
func (h *Hub) Subscribe(sessionID string, l Listener) func() {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.nextID++
	id := h.nextID
	if h.listeners[sessionID] == nil {
		h.listeners[sessionID] = make(map[uint64]Listener)
	}
	h.listeners[sessionID][id] = l

	var once sync.Once
	return func() {
		once.Do(func() {
			h.mu.Lock()
			defer h.mu.Unlock()
			delete(h.listeners[sessionID], id)
			if len(h.listeners[sessionID]) == 0 {
				delete(h.listeners, sessionID)
			}
		})
	}
}

// Publish доставляет событие всем текущим подписчикам сессии
// Подписчики вызываются вне блокировки, поэтому могут отписываться и публиковать сами
func (h *Hub) Publish(e Event) {
	if e.At.IsZero() {
		e.At = time.Now()
	}

	h.mu.RLock()
	snapshot := make([]Listener, 0, len(h.listeners[e.SessionID]))
	for _, l := range h.listeners[e.SessionID] {
		snapshot = append(snapshot, l)
	}
	h.mu.RUnlock()

	for _, l := range snapshot {
		l(e)
	}
}

// Count возвращает число подписчиков сессии
func (h *Hub) Count(sessionID string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.listeners[sessionID])
}
