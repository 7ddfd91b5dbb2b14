package store

import "github.com/rs/zerolog"

// Severity classifies a notification for the consuming UI.
type Severity string

const (
	SeverityInfo  Severity = "info"
	SeverityError Severity = "error"
)

// Notification is a user-facing message emitted by the coordinator, the
// equivalent of a toast in the UI layer.
type Notification struct {
	Title    string
	Message  string
	Severity Severity
}

// Notifier receives coordinator notifications.
type Notifier interface {
	Notify(n Notification)
}

// NotifierFunc adapts a function to the Notifier interface.
type NotifierFunc func(n Notification)

func (f NotifierFunc) Notify(n Notification) { f(n) }

// NewLogNotifier returns a notifier that writes notifications to the given
// logger, for hosts with no UI surface of their own.
func NewLogNotifier(logger zerolog.Logger) Notifier {
	logger = logger.With().Str("component", "notifier").Logger()
	return NotifierFunc(func(n Notification) {
		event := logger.Info()
		if n.Severity == SeverityError {
			event = logger.Warn()
		}
		event.Str("title", n.Title).Msg(n.Message)
	})
}
