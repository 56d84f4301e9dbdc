// Package notify delivers short user-facing messages about completed or
// failed operations. Components receive a Notifier through their constructor.
package notify

import (
	"fmt"
	"sync"

	"fjacquet/fintrack/internal/logging"
)

// Level is the severity of a notification.
type Level int

const (
	Success Level = iota
	Info
	Warning
	Error
)

func (l Level) String() string {
	switch l {
	case Success:
		return "success"
	case Info:
		return "info"
	case Warning:
		return "warning"
	case Error:
		return "error"
	}
	return fmt.Sprintf("level(%d)", int(l))
}

// Notification is one message shown to the user.
type Notification struct {
	Level   Level
	Message string
}

// Notifier receives notifications. Implementations must not block.
type Notifier interface {
	Notify(level Level, message string)
}

// LogNotifier writes notifications to a logger.
type LogNotifier struct {
	logger logging.Logger
}

// NewLogNotifier creates a LogNotifier.
func NewLogNotifier(logger logging.Logger) *LogNotifier {
	return &LogNotifier{logger: logger}
}

func (n *LogNotifier) Notify(level Level, message string) {
	field := logging.Field{Key: logging.FieldLevel, Value: level.String()}
	switch level {
	case Warning:
		n.logger.Warn(message, field)
	case Error:
		n.logger.Error(message, field)
	default:
		n.logger.Info(message, field)
	}
}

// Recorder keeps every notification in memory. The CLI uses it to print the
// outcome of a command; tests use it for assertions.
type Recorder struct {
	mu    sync.Mutex
	items []Notification
}

func NewRecorder() *Recorder { return &Recorder{} }

func (r *Recorder) Notify(level Level, message string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items = append(r.items, Notification{Level: level, Message: message})
}

// All returns a copy of the recorded notifications.
func (r *Recorder) All() []Notification {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Notification, len(r.items))
	copy(out, r.items)
	return out
}

// Last returns the most recent notification.
func (r *Recorder) Last() (Notification, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.items) == 0 {
		return Notification{}, false
	}
	return r.items[len(r.items)-1], true
}

// Drain returns and clears the recorded notifications.
func (r *Recorder) Drain() []Notification {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := r.items
	r.items = nil
	return out
}

// Fanout forwards each notification to every notifier in order.
type Fanout []Notifier

func (f Fanout) Notify(level Level, message string) {
	for _, n := range f {
		n.Notify(level, message)
	}
}

// Discard drops every notification.
var Discard Notifier = discard{}

type discard struct{}

func (discard) Notify(Level, string) {}
