// Package tracelog is an in-process trace accumulator. A Logger buffers
// leveled log events together with their call-site location and the wall
// clock time elapsed since the previous event, and renders the buffer as an
// HTML table, a plain-text report, or a slice of structured events.
package tracelog

// Level is the numeric severity of a trace event. The magnitudes follow the
// classic log4-style table, so levels compare and sort naturally and leave
// room for intermediate values.
type Level int32

const (
	LevelAll   Level = -2147483647
	LevelDebug Level = 10000
	LevelInfo  Level = 20000
	LevelWarn  Level = 30000
	LevelError Level = 40000
	LevelFatal Level = 50000
	LevelOff   Level = 2147483647
)

// Label returns the display label for the level. Any value outside the
// defined table falls back to "ALL", the most permissive label.
func (l Level) Label() string {
	switch l {
	case LevelAll:
		return "ALL"
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	case LevelFatal:
		return "FATAL"
	case LevelOff:
		return "OFF"
	default:
		return "ALL"
	}
}

// LevelString maps a numeric level to its display label.
func LevelString(level Level) string {
	return level.Label()
}
