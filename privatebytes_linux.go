//go:build linux

package procmem

import (
	"os"

	"github.com/procsight/procmem/linux"
)

// PrivateBytes returns the total Private_Dirty bytes across the memory
// mappings of the calling process, read from /proc/self/smaps. This is
// the usual proxy for the process's true incremental memory cost. The
// second return value is false when the file could not be read or the
// aggregation failed; the failure is logged as a warning.
func PrivateBytes() (uint64, bool) {
	n, err := linux.ReadPrivateBytes(os.Getpid())
	if err != nil {
		logger().WithError(err).Warn("failed to compute private bytes")
		return 0, false
	}
	return n, true
}
