package middleware

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// HTTPObserver интерфейс учета HTTP запросов в метриках
type HTTPObserver interface {
	ObserveHTTPRequest(method, route, status string, seconds float64)
}
