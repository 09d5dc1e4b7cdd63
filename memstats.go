// Package procmem reads OS-exposed memory accounting for the calling
// process and reports it as normalized byte counts.
//
// Every call is a fresh read of the platform source, with no caching
// and no shared state, so concurrent calls are safe. Memory stats are
// best-effort diagnostics: failures surface as an absent result, never
// as a panic or an error crossing the package boundary.
package procmem

import (
	"sync/atomic"

	"github.com/sirupsen/logrus"
)

// MemoryStats reports process memory usage in bytes. Shared, Text and
// Data are only filled on platforms that account for them (Linux); the
// other platform sources report virtual size and resident set only.
type MemoryStats struct {
	VSize    uint64 // virtual memory size
	Resident uint64 // resident set size
	Shared   uint64 // resident shared pages
	Text     uint64 // text (code)
	Data     uint64 // data + stack
}

var logp atomic.Pointer[logrus.FieldLogger]

// SetLogger directs the package's warnings to l instead of the
// standard logrus logger. It is safe to call concurrently with the
// read entry points.
func SetLogger(l logrus.FieldLogger) {
	logp.Store(&l)
}

func logger() logrus.FieldLogger {
	if l := logp.Load(); l != nil {
		return *l
	}
	return logrus.StandardLogger()
}

// ReadMemoryStats returns memory usage of the calling process, read
// from the platform source: /proc/self/statm on Linux, the mach
// task-info call on Darwin, the process memory counters on Windows.
// The second return value is false when the source could not be read
// or parsed; the failure is logged as a warning and never escalates.
func ReadMemoryStats() (MemoryStats, bool) {
	stats, err := collectMemoryStats()
	if err != nil {
		logger().WithError(err).Warn("failed to collect process memory stats")
		return MemoryStats{}, false
	}
	return stats, true
}
