//go:build windows

package procmem

import (
	"unsafe"

	"golang.org/x/sys/windows"
)

// Windows has no statm equivalent; the process memory counters give the
// working set, and the global memory status gives the committed virtual
// space (total minus available).
func collectMemoryStats() (MemoryStats, error) {
	var counters windows.PROCESS_MEMORY_COUNTERS
	if err := windows.GetProcessMemoryInfo(windows.CurrentProcess(), &counters, uint32(unsafe.Sizeof(counters))); err != nil {
		return MemoryStats{}, err
	}

	status := windows.MemoryStatusEx{}
	status.Length = uint32(unsafe.Sizeof(status))
	if err := windows.GlobalMemoryStatusEx(&status); err != nil {
		return MemoryStats{}, err
	}

	return MemoryStats{
		VSize:    status.TotalVirtual - status.AvailVirtual,
		Resident: uint64(counters.WorkingSetSize),
	}, nil
}
