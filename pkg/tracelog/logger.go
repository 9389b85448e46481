package tracelog

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/davecgh/go-spew/spew"
)

// Logger accumulates trace events in memory for one logical run. A single
// mutex guards the buffer, the process-time mark and the memoized thread
// name, so the whole capture sequence is atomic and the Logger is safe for
// concurrent use.
type Logger struct {
	mu          sync.Mutex
	events      []Event
	startTime   time.Time
	processTime time.Time
	threadName  string
}

// New creates a Logger whose start and process marks are the current time.
// The first event's escape time is measured from this moment.
func New() *Logger {
	now := time.Now()
	return &Logger{
		startTime:   now,
		processTime: now,
	}
}

// Debug records an event at DEBUG level. The optional caller hint is
// accepted for symmetry with Log and is not used; the location is resolved
// from the call stack.
func (l *Logger) Debug(message any, caller ...string) {
	l.capture(LevelDebug, message)
}

// Info records an event at INFO level.
func (l *Logger) Info(message any, caller ...string) {
	l.capture(LevelInfo, message)
}

// Warn records an event at WARN level.
func (l *Logger) Warn(message any, caller ...string) {
	l.capture(LevelWarn, message)
}

// Error records an event at ERROR level.
func (l *Logger) Error(message any, caller ...string) {
	l.capture(LevelError, message)
}

// Fatal records an event at FATAL level. It does not terminate the process;
// the level only affects labeling.
func (l *Logger) Fatal(message any, caller ...string) {
	l.capture(LevelFatal, message)
}

// Log is the generic record primitive behind the leveled methods. Every
// level is recorded; filtering is left to whoever reads the report.
func (l *Logger) Log(message any, level Level, caller string) {
	_ = caller
	l.capture(level, message)
}

func (l *Logger) capture(level Level, message any) {
	loc := ResolveLocation(callStack(2))

	l.mu.Lock()
	defer l.mu.Unlock()

	l.events = append(l.events, Event{
		Level:      level,
		Message:    messageText(message),
		Timestamp:  time.Now().Unix(),
		ThreadName: l.threadNameLocked(),
		Location:   loc,
		EscapeTime: l.processTimeLocked(),
	})

	// The start mark is read after every capture but never advances.
	_ = l.startTime
}

// Clear discards all buffered events. Captures after Clear populate a fresh
// sequence; the timing marks are left alone.
func (l *Logger) Clear() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.events = nil
}

// Events returns a copy of the buffered events in capture order.
func (l *Logger) Events() []Event {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]Event, len(l.events))
	copy(out, l.events)
	return out
}

// StartTime returns the construction-time start mark. It never advances.
func (l *Logger) StartTime() time.Time {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.startTime
}

// ProcessTime returns the seconds elapsed since the previous call (or since
// construction) and resets the mark, so successive calls telescope. Capture
// invokes it exactly once per event to produce the escape time.
func (l *Logger) ProcessTime() float64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.processTimeLocked()
}

func (l *Logger) processTimeLocked() float64 {
	now := time.Now()
	elapsed := now.Sub(l.processTime).Seconds()
	l.processTime = now
	return elapsed
}

// ThreadName returns the identifier attached to every event: the owning
// process id rendered as text, resolved once and memoized.
func (l *Logger) ThreadName() string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.threadNameLocked()
}

func (l *Logger) threadNameLocked() string {
	if l.threadName == "" {
		l.threadName = strconv.Itoa(os.Getpid())
	}
	return l.threadName
}

// String renders the buffer as a plain-text report, one line per event in
// the form "<timestamp> [<LEVEL>] <thread>: <message> (at <file> line <line>)".
func (l *Logger) String() string {
	l.mu.Lock()
	defer l.mu.Unlock()

	var b strings.Builder
	for _, e := range l.events {
		fmt.Fprintf(&b, "%s [%s] %s: %s (at %s line %d)\n",
			time.Unix(e.Timestamp, 0).Format(time.DateTime),
			e.Level.Label(), e.ThreadName, e.Message,
			e.Location.File, e.Location.Line)
	}
	return b.String()
}

// messageText normalizes a message to text. Strings pass through untouched;
// anything else is stored as a spew dump so structured values stay readable
// in the report.
func messageText(message any) string {
	if s, ok := message.(string); ok {
		return s
	}
	return strings.TrimRight(spew.Sdump(message), "\n")
}
