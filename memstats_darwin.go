//go:build darwin

package procmem

/*
#include <mach/mach_init.h>
#include <mach/task_info.h>
#include <mach/task.h>

// CGO fails to call a macro that just references a global variable...
#ifdef mach_task_self
#undef mach_task_self
static mach_port_t mach_task_self() { return mach_task_self_; }
#endif
*/
import "C"
import (
	"fmt"
	"unsafe"
)

// Darwin reports through the mach task-info call on the current task,
// which gives virtual and resident size directly.
func collectMemoryStats() (MemoryStats, error) {
	info := C.mach_task_basic_info_data_t{}
	count := C.mach_msg_type_number_t(C.MACH_TASK_BASIC_INFO_COUNT)

	rc := C.task_info(
		C.task_name_t(C.mach_task_self()),
		C.MACH_TASK_BASIC_INFO,
		(*C.integer_t)(unsafe.Pointer(&info)),
		&count,
	)
	if rc != C.KERN_SUCCESS {
		return MemoryStats{}, fmt.Errorf("task_info: mach kernel error code %d", rc)
	}

	return MemoryStats{
		VSize:    uint64(info.virtual_size),
		Resident: uint64(info.resident_size),
	}, nil
}
