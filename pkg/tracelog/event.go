package tracelog

// Location identifies where in the caller's source an event originated.
// File and Line may be empty when the call-site walk found no boundary
// frame; Class and Function default to "main" rather than staying empty.
type Location struct {
	File     string
	Line     int
	Class    string
	Function string
}

// Event is one recorded logging call. Events are immutable once captured and
// are kept in strict call order by the owning Logger.
type Event struct {
	Level      Level
	Message    string
	Timestamp  int64 // whole-second Unix time of capture
	ThreadName string
	Location   Location
	EscapeTime float64 // seconds since the previous capture on the same Logger
}
