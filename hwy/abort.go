package hwy

import (
	"fmt"
	"os"
	"runtime"
	"sync/atomic"
)

// AbortFunc handles a fatal invariant violation. It receives the source
// location of the Abort call and the already-formatted message. The
// built-in behavior (when no handler is installed) prints both to stderr
// and terminates the process. A replacement handler may decide for itself
// whether to terminate, but Abort never returns control to its caller
// either way.
type AbortFunc func(file string, line int, msg string)

// abortState owns the process-wide abort handler. Routing all access
// through this single cell keeps the lifecycle explicit: install with
// SetAbortFunc, restore the default with SetAbortFunc(nil).
type abortState struct {
	handler atomic.Pointer[AbortFunc]
}

var abortCtx abortState

// GetAbortFunc returns the currently installed handler, or nil if the
// built-in default behavior is active.
func GetAbortFunc() AbortFunc {
	p := abortCtx.handler.Load()
	if p == nil {
		return nil
	}
	return *p
}

// SetAbortFunc atomically installs f as the abort handler and returns the
// previously installed handler (nil if the default was active). Passing
// nil restores the built-in default. Safe for concurrent use; a racing
// Abort observes either the old or the new handler, never a torn value.
func SetAbortFunc(f AbortFunc) AbortFunc {
	var next *AbortFunc
	if f != nil {
		next = &f
	}
	prev := abortCtx.handler.Swap(next)
	if prev == nil {
		return nil
	}
	return *prev
}

// Abort reports a fatal invariant violation and does not return. With no
// handler installed it prints "Abort at file:line: message" to stderr and
// exits. With a handler installed, the handler is invoked; if it returns,
// Abort panics with the same message so the fatal path never resumes.
func Abort(format string, args ...any) {
	file := "?"
	line := 0
	if _, f, l, ok := runtime.Caller(1); ok {
		file, line = f, l
	}
	msg := fmt.Sprintf(format, args...)

	if handler := GetAbortFunc(); handler != nil {
		handler(file, line, msg)
		panic(fmt.Sprintf("Abort at %s:%d: %s", file, line, msg))
	}

	fmt.Fprintf(os.Stderr, "Abort at %s:%d: %s\n", file, line, msg)
	os.Exit(1)
}
