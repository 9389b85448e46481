package tracelog_test

import (
	"os"
	"regexp"
	"strconv"
	"testing"
	"time"

	"github.com/sunseesiu/quice/pkg/tracelog"
)

func TestEventOrdering(t *testing.T) {
	l := tracelog.New()
	l.Debug("first")
	l.Info("second")
	l.Warn("third")
	l.Error("fourth")
	l.Fatal("fifth")

	events := l.Events()
	if len(events) != 5 {
		t.Fatalf("got %d events, want 5", len(events))
	}
	wantLevels := []tracelog.Level{
		tracelog.LevelDebug, tracelog.LevelInfo, tracelog.LevelWarn,
		tracelog.LevelError, tracelog.LevelFatal,
	}
	wantMessages := []string{"first", "second", "third", "fourth", "fifth"}
	for i, e := range events {
		if e.Level != wantLevels[i] {
			t.Errorf("event %d level = %d, want %d", i, e.Level, wantLevels[i])
		}
		if e.Message != wantMessages[i] {
			t.Errorf("event %d message = %q, want %q", i, e.Message, wantMessages[i])
		}
	}
}

func TestEscapeTimeAccrual(t *testing.T) {
	l := tracelog.New()
	time.Sleep(50 * time.Millisecond)
	l.Info("after first gap")
	time.Sleep(30 * time.Millisecond)
	l.Debug("after second gap")

	events := l.Events()
	if len(events) != 2 {
		t.Fatalf("got %d events, want 2", len(events))
	}
	// Sleeps only guarantee a lower bound; allow generous jitter above it.
	if got := events[0].EscapeTime; got < 0.045 || got > 5 {
		t.Errorf("first escape time = %f, want about 0.05", got)
	}
	if got := events[1].EscapeTime; got < 0.025 || got > 5 {
		t.Errorf("second escape time = %f, want about 0.03", got)
	}
}

func TestProcessTimeResets(t *testing.T) {
	l := tracelog.New()
	l.ProcessTime()
	time.Sleep(25 * time.Millisecond)
	if got := l.ProcessTime(); got < 0.02 || got > 5 {
		t.Errorf("elapsed = %f, want about 0.025", got)
	}
	// The previous call reset the mark, so the gap does not leak forward.
	if got := l.ProcessTime(); got < 0 || got > 0.02 {
		t.Errorf("elapsed after reset = %f, want near zero", got)
	}
}

func TestClearResetsBuffer(t *testing.T) {
	l := tracelog.New()
	l.Info("one")
	l.Info("two")
	l.Clear()

	if got := l.Events(); len(got) != 0 {
		t.Fatalf("got %d events after Clear, want 0", len(got))
	}

	l.Warn("fresh start")
	events := l.Events()
	if len(events) != 1 {
		t.Fatalf("got %d events after relogging, want 1", len(events))
	}
	if events[0].Message != "fresh start" {
		t.Errorf("message = %q, want %q", events[0].Message, "fresh start")
	}
}

func TestThreadNameIsProcessID(t *testing.T) {
	l := tracelog.New()
	want := strconv.Itoa(os.Getpid())
	if got := l.ThreadName(); got != want {
		t.Errorf("ThreadName() = %q, want %q", got, want)
	}
	l.Info("a")
	l.Info("b")
	for i, e := range l.Events() {
		if e.ThreadName != want {
			t.Errorf("event %d thread = %q, want %q", i, e.ThreadName, want)
		}
	}
}

func TestNonStringMessageDumped(t *testing.T) {
	type request struct {
		Method string
		Tries  int
	}
	l := tracelog.New()
	l.Error(request{Method: "GET", Tries: 3})

	events := l.Events()
	if len(events) != 1 {
		t.Fatalf("got %d events, want 1", len(events))
	}
	msg := events[0].Message
	for _, want := range []string{"request", "Method", "GET", "Tries", "3"} {
		if !regexp.MustCompile(regexp.QuoteMeta(want)).MatchString(msg) {
			t.Errorf("dump %q does not mention %q", msg, want)
		}
	}
}

func TestGenericLog(t *testing.T) {
	l := tracelog.New()
	l.Log("generic", tracelog.LevelWarn, "")

	events := l.Events()
	if len(events) != 1 {
		t.Fatalf("got %d events, want 1", len(events))
	}
	if got := events[0].Level.Label(); got != "WARN" {
		t.Errorf("label = %q, want %q", got, "WARN")
	}
}

func TestStartTimeStaysFixed(t *testing.T) {
	l := tracelog.New()
	before := l.StartTime()
	l.Info("a")
	time.Sleep(10 * time.Millisecond)
	l.Info("b")
	if after := l.StartTime(); !after.Equal(before) {
		t.Errorf("start time moved from %v to %v", before, after)
	}
}

var stringReportPattern = regexp.MustCompile(
	`^\d{4}-\d{2}-\d{2} \d{2}:\d{2}:\d{2} \[INFO\] \d+: hello \(at .+ line \d+\)\n$`)

func TestStringReportFormat(t *testing.T) {
	l := tracelog.New()
	l.Info("hello")
	if got := l.String(); !stringReportPattern.MatchString(got) {
		t.Errorf("String() = %q, want to match %s", got, stringReportPattern)
	}
}

// TestHelloWorldScenario walks the canonical two-call session end to end.
func TestHelloWorldScenario(t *testing.T) {
	l := tracelog.New()
	l.Info("Hello World!")
	l.Debug("Second line")

	events := l.Events()
	if len(events) != 2 {
		t.Fatalf("got %d events, want 2", len(events))
	}
	if got := events[0].Level.Label(); got != "INFO" {
		t.Errorf("event 0 label = %q, want INFO", got)
	}
	if got := events[1].Level.Label(); got != "DEBUG" {
		t.Errorf("event 1 label = %q, want DEBUG", got)
	}
	for i, e := range events {
		if e.EscapeTime < 0 {
			t.Errorf("event %d escape time = %f, want >= 0", i, e.EscapeTime)
		}
	}

	report := l.ToHTML()
	for _, want := range []string{`class="odd"`, `class="even"`, "Total time"} {
		if !regexp.MustCompile(regexp.QuoteMeta(want)).MatchString(report) {
			t.Errorf("report missing %q", want)
		}
	}
}
