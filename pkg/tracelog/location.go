package tracelog

import (
	"runtime"
	"strings"
)

// sentinelClass is the frame class the location walk searches for to find
// the boundary between logger frames and caller frames. The comparison is
// case-insensitive. Frames synthesized from within this package carry it.
const sentinelClass = "QuiceLogger"

// pkgPath qualifies the functions whose frames belong to the logger itself.
const pkgPath = "github.com/sunseesiu/quice/pkg/tracelog"

const maxStackDepth = 64

// inclusionFuncs are pseudo-function names some runtimes emit when control
// crosses a file boundary. They never name a useful enclosing scope, so the
// walk treats them as absent.
var inclusionFuncs = map[string]bool{
	"include":      true,
	"include_once": true,
	"require":      true,
	"require_once": true,
}

// Frame is one stack record as seen by the location walk. File and Line
// refer to the call site of Function, not to the function body.
type Frame struct {
	Class    string
	Function string
	File     string
	Line     int
}

// ResolveLocation derives a Location from frames ordered oldest first. The
// walk stops at the first frame whose class matches the sentinel and takes
// that frame's file and line; the class and function are reported from the
// previously visited frame, defaulting to "main". A walk that never reaches
// the sentinel leaves file and line empty but still reports the best-effort
// class and function, and an empty slice yields the full fallback record.
func ResolveLocation(frames []Frame) Location {
	loc := Location{Class: "main", Function: "main"}
	var prev *Frame
	for i := range frames {
		f := &frames[i]
		if strings.EqualFold(f.Class, sentinelClass) {
			loc.File = f.File
			loc.Line = f.Line
			break
		}
		prev = f
	}
	if prev != nil {
		if prev.Class != "" {
			loc.Class = prev.Class
		}
		if prev.Function != "" && !inclusionFuncs[prev.Function] {
			loc.Function = prev.Function
		}
	}
	return loc
}

// callStack converts the current goroutine's stack into Frames ordered
// oldest first. Each record pairs a function with the file and line of the
// place it was called from, which is the shape ResolveLocation expects.
func callStack(skip int) []Frame {
	pcs := make([]uintptr, maxStackDepth)
	n := runtime.Callers(skip+1, pcs)
	if n == 0 {
		return nil
	}

	var raw []runtime.Frame
	iter := runtime.CallersFrames(pcs[:n])
	for {
		f, more := iter.Next()
		raw = append(raw, f)
		if !more {
			break
		}
	}

	frames := make([]Frame, len(raw))
	for i, f := range raw {
		class, function := splitFuncName(f.Function)
		if strings.HasPrefix(f.Function, pkgPath+".") {
			class = sentinelClass
		}
		fr := Frame{Class: class, Function: function}
		// The call site of frame i lives one frame further out.
		if i+1 < len(raw) {
			fr.File = raw[i+1].File
			fr.Line = raw[i+1].Line
		}
		frames[i] = fr
	}
	for i, j := 0, len(frames)-1; i < j; i, j = i+1, j-1 {
		frames[i], frames[j] = frames[j], frames[i]
	}
	return frames
}

// splitFuncName breaks a fully qualified function name such as
// "example.com/pkg.(*Type).Method" into a bare class ("Type") and function
// ("Method"). Plain functions have no class.
func splitFuncName(qualified string) (class, function string) {
	name := qualified
	if i := strings.LastIndex(name, "/"); i >= 0 {
		name = name[i+1:]
	}
	parts := strings.Split(name, ".")
	function = parts[len(parts)-1]
	if len(parts) >= 3 {
		class = strings.Trim(parts[len(parts)-2], "(*)")
	}
	return class, function
}
