package tracelog

import (
	"fmt"
	"html"
	"strings"
	"time"
)

// levelColors maps display labels to the colors used in the HTML report.
// Labels without an entry render grey.
var levelColors = map[string]string{
	"DEBUG": "blue",
	"INFO":  "green",
	"WARN":  "orange",
	"ERROR": "red",
	"FATAL": "purple",
}

// wrapWidth is the rendered length a run of path segments may reach before
// the trace cell inserts a line break.
const wrapWidth = 60

// ToHTML renders the buffered events as a self-contained HTML table with
// Level, Message, Trace and Escape columns, one row per event in capture
// order, followed by a summary row holding the total time since the Logger
// was constructed. Row classes alternate "odd" and "even" starting "odd".
//
// The file path in the trace cell is HTML-escaped; the message cell is the
// stored text verbatim. Callers that log untrusted input and publish the
// report must escape the message themselves.
func (l *Logger) ToHTML() string {
	l.mu.Lock()
	defer l.mu.Unlock()

	var b strings.Builder
	b.Grow(512 + len(l.events)*256)
	b.WriteString("<table class=\"trace-log\" cellspacing=\"0\">\n")
	b.WriteString("<tr><th>Level</th><th>Message</th><th>Trace</th><th>Escape</th></tr>\n")

	for i, e := range l.events {
		rowClass := "odd"
		if i%2 == 1 {
			rowClass = "even"
		}
		label := e.Level.Label()
		color, ok := levelColors[label]
		if !ok {
			color = "grey"
		}

		fmt.Fprintf(&b, "<tr class=\"%s\">", rowClass)
		fmt.Fprintf(&b, "<td><span style=\"color: %s\">%s</span></td>", color, label)
		fmt.Fprintf(&b, "<td>%s</td>", e.Message)
		fmt.Fprintf(&b, "<td>%s:%d<br />%s:%s</td>",
			wrapPath(e.Location.File), e.Location.Line,
			e.Location.Class, e.Location.Function)
		fmt.Fprintf(&b, "<td>%.6f</td>", e.EscapeTime)
		b.WriteString("</tr>\n")
	}

	total := time.Since(l.startTime).Seconds()
	fmt.Fprintf(&b, "<tr><td colspan=\"3\">Total time</td><td>%.6f</td></tr>\n", total)
	b.WriteString("</table>\n")
	return b.String()
}

// wrapPath HTML-escapes a file path and inserts a line break after the path
// segment that pushes the rendered length of the current run past wrapWidth.
func wrapPath(path string) string {
	if path == "" {
		return ""
	}
	var b strings.Builder
	run := 0
	for _, seg := range strings.SplitAfter(path, "/") {
		b.WriteString(html.EscapeString(seg))
		run += len(seg)
		if run > wrapWidth {
			b.WriteString("<br />")
			run = 0
		}
	}
	return b.String()
}
