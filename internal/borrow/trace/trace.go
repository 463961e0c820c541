package trace

import (
	"fmt"
	"os"
	"runtime"
	"strings"

	"go.uber.org/zap"
)

// EnvVar enables tracing when set to "1" or "true" at process start.
const EnvVar = "BORROWCELL_TRACE"

// MaxFrames is the number of stack frames captured at a write-guard
// acquisition site. Eight frames is enough to identify the holder in
// practice without making capture expensive.
const MaxFrames = 8

var (
	enabled bool
	logger  = zap.NewNop()
)

func init() {
	switch os.Getenv(EnvVar) {
	case "1", "true":
		enableDefault()
	}
}

// enableDefault builds the stderr logger used when tracing is switched
// on via the environment. Falls back to the nop logger if zap cannot
// build one, so a broken tracing setup never takes the library down.
func enableDefault() {
	cfg := zap.NewDevelopmentConfig()
	cfg.DisableStacktrace = true
	l, err := cfg.Build()
	if err != nil {
		return
	}
	enabled = true
	logger = l.Named("borrowcell")
}

// Enabled reports whether tracing is active.
func Enabled() bool {
	return enabled
}

// Enable switches tracing on with the given logger. Intended for
// tests; production use goes through the environment variable.
func Enable(l *zap.Logger) {
	enabled = true
	logger = l.Named("borrowcell")
}

// Disable switches tracing off and drops the logger.
func Disable() {
	enabled = false
	logger = zap.NewNop()
}

// Transition logs one successful borrow-state transition.
func Transition(cell uint64, op, from, to string) {
	if !enabled {
		return
	}
	logger.Debug("transition",
		zap.Uint64("cell", cell),
		zap.String("op", op),
		zap.String("from", from),
		zap.String("to", to))
}

// Denied logs a rejected borrow. holder, when non-empty, is the
// acquisition stack of the guard that caused the denial.
func Denied(cell uint64, op, state string, holder []uintptr) {
	if !enabled {
		return
	}
	fields := []zap.Field{
		zap.Uint64("cell", cell),
		zap.String("op", op),
		zap.String("state", state),
	}
	if len(holder) > 0 {
		fields = append(fields, zap.String("holder", FormatStack(holder)))
	}
	logger.Warn("borrow denied", fields...)
}

// Capture records up to MaxFrames program counters of the caller's
// stack, skipping skip frames above Capture itself. Returns nil when
// tracing is disabled, so the disabled path stays allocation-free.
func Capture(skip int) []uintptr {
	if !enabled {
		return nil
	}
	pcs := make([]uintptr, MaxFrames)
	n := runtime.Callers(skip+2, pcs)
	return pcs[:n]
}

// FormatStack renders captured program counters as one "func
// (file:line)" entry per line, the same shape the runtime uses in
// panic output.
func FormatStack(pcs []uintptr) string {
	if len(pcs) == 0 {
		return "<no stack>"
	}

	var b strings.Builder
	frames := runtime.CallersFrames(pcs)
	for {
		frame, more := frames.Next()
		if frame.Function != "" {
			fmt.Fprintf(&b, "%s (%s:%d)\n", frame.Function, frame.File, frame.Line)
		}
		if !more {
			break
		}
	}
	return b.String()
}
