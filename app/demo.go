package app

import (
	"time"

	"github.com/sunseesiu/quice/pkg/tracelog"
)

// RunDemoTrace fills the logger with a short scripted session so the viewer
// has something to show when no instrumented program feeds it. The sleeps
// give each event a visible escape time.
func RunDemoTrace(trace *tracelog.Logger) {
	trace.Info("Viewer started in demo mode")
	time.Sleep(15 * time.Millisecond)
	trace.Debug("Loading fixtures")
	time.Sleep(40 * time.Millisecond)
	trace.Info(struct {
		Fixtures int
		Source   string
	}{Fixtures: 3, Source: "builtin"})
	time.Sleep(5 * time.Millisecond)
	trace.Warn("Fixture cache is cold")
	time.Sleep(25 * time.Millisecond)
	trace.Error("Fixture 2 failed a checksum, using fallback")
	time.Sleep(10 * time.Millisecond)
	trace.Info("Demo session complete")
}
