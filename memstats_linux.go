//go:build linux

package procmem

import (
	"os"
	"syscall"

	"github.com/procsight/procmem/linux"
)

// Linux has no cheap task-info call, so stats come from the statm
// pipeline: page counts read from /proc/self/statm, scaled by the
// system page size. The two always-zero statm fields are consumed by
// the parser for position alignment and discarded here.
func collectMemoryStats() (MemoryStats, error) {
	statm, err := linux.ReadProcStatm(os.Getpid())
	if err != nil {
		return MemoryStats{}, err
	}
	return statmMemoryStats(statm, uint64(syscall.Getpagesize())), nil
}

func statmMemoryStats(statm linux.ProcStatm, pagesize uint64) MemoryStats {
	return MemoryStats{
		VSize:    pagesize * statm.Size,
		Resident: pagesize * statm.Resident,
		Shared:   pagesize * statm.Shared,
		Text:     pagesize * statm.Text,
		Data:     pagesize * statm.Data,
	}
}
