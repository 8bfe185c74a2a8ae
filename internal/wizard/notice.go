package wizard

import (
	"encoding/json"
	"time"
)

// Severity уровень уведомления
type Severity string

const (
	SeverityInfo    Severity = "info"
	SeverityWarning Severity = "warning"
)

// DefaultNoticeDelay время автоскрытия уведомления
const DefaultNoticeDelay = 3 * time.Second

// ConfirmLabel текст кнопки подтверждения
const ConfirmLabel = "OK"

// Notice is a modal message shown to the user instead of navigating
type Notice struct {
	Title       string
	Message     string
	Severity    Severity
	AutoDismiss time.Duration
}

func newNotice(severity Severity, title, message string) *Notice {
	return &Notice{
		Title:       title,
		Message:     message,
		Severity:    severity,
		AutoDismiss: DefaultNoticeDelay,
	}
}

// WithDelay returns a copy with a different auto-dismiss delay
func (n *Notice) WithDelay(d time.Duration) *Notice {
	if n == nil {
		return nil
	}
	out := *n
	if d > 0 {
		out.AutoDismiss = d
	}
	return &out
}

type noticeJSON struct {
	Title             string   `json:"title"`
	Message           string   `json:"message"`
	Severity          Severity `json:"severity"`
	AutoDismissMs     int64    `json:"autoDismissMs"`
	ConfirmButtonText string   `json:"confirmButtonText"`
}

func (n Notice) MarshalJSON() ([]byte, error) {
	return json.Marshal(noticeJSON{
		Title:             n.Title,
		Message:           n.Message,
		Severity:          n.Severity,
		AutoDismissMs:     n.AutoDismiss.Milliseconds(),
		ConfirmButtonText: ConfirmLabel,
	})
}
