//go:build !linux

package procmem

// PrivateBytes reports no data: the per-mapping smaps format backing it
// only exists on Linux.
func PrivateBytes() (uint64, bool) {
	return 0, false
}
