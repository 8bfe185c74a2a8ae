package watch_flow

import "github.com/m04kA/SMC-BookingFlow/internal/infra/notifier"

// ChangeSubscriber источник событий bookingFlowChange
type ChangeSubscriber interface {
	Subscribe(sessionID string, listener notifier.Listener) func()
}

// WatchRecorder учитывает открытые подписки
type WatchRecorder interface {
	WatchOpened()
	WatchClosed()
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
