// log/stack.go
// Copyright(c) 2026 glpaint contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package log

import (
	"path/filepath"
	"runtime"
	"strconv"
	"strings"
)

// maxStackDepth bounds the number of frames recorded with a log message.
const maxStackDepth = 16

// A StackFrame is one call site in a logged callstack.
type StackFrame struct {
	File     string `json:"file"`
	Line     int    `json:"line"`
	Function string `json:"function"`
}

func newStackFrame(frame runtime.Frame) StackFrame {
	fn := strings.TrimPrefix(frame.Function, "github.com/glpaint/glpaint/")
	fn = strings.TrimPrefix(fn, "main.")
	return StackFrame{
		File:     filepath.Base(frame.File),
		Line:     frame.Line,
		Function: fn,
	}
}

// Callstack returns the stack of the function that called the logging
// method, innermost first, stopping at main.main. The storage of fr is
// reused when it is large enough.
func Callstack(fr []StackFrame) []StackFrame {
	var pcs [maxStackDepth]uintptr
	n := runtime.Callers(3, pcs[:]) // runtime.Callers, Callstack, and the logging method
	fr = fr[:0]
	if n == 0 {
		return fr
	}

	frames := runtime.CallersFrames(pcs[:n])
	for {
		frame, more := frames.Next()
		fr = append(fr, newStackFrame(frame))
		if !more || frame.Function == "main.main" {
			return fr
		}
	}
}

func (f StackFrame) String() string {
	return f.File + ":" + strconv.Itoa(f.Line) + ":" + f.Function
}
