// Package goid extracts the current goroutine's ID.
//
// The ID comes from parsing the "goroutine N [state]:" header that
// runtime.Stack emits for the current goroutine. This costs a few
// microseconds per call, which is fine here: the only consumer is the
// opt-in owner check in the checked layer, a debug feature that trades
// speed for catching cross-goroutine misuse of a single-threaded cell.
package goid

import (
	"runtime"
	"strconv"
)

// stackBufSize is enough for the first line of a single-goroutine
// stack dump, which is all parseGID reads.
const stackBufSize = 64

// Current returns the ID of the calling goroutine, or 0 if the runtime
// output could not be parsed (which would indicate a runtime format
// change, not a caller error).
func Current() int64 {
	var buf [stackBufSize]byte
	n := runtime.Stack(buf[:], false)
	return parseGID(buf[:n])
}

// parseGID extracts the goroutine ID from runtime.Stack output of the
// form "goroutine 123 [running]:\n...".
func parseGID(buf []byte) int64 {
	const prefix = "goroutine "
	if len(buf) < len(prefix) || string(buf[:len(prefix)]) != prefix {
		return 0
	}
	buf = buf[len(prefix):]

	end := 0
	for end < len(buf) && buf[end] >= '0' && buf[end] <= '9' {
		end++
	}
	if end == 0 {
		return 0
	}

	gid, err := strconv.ParseInt(string(buf[:end]), 10, 64)
	if err != nil {
		return 0
	}
	return gid
}
