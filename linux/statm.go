package linux

import "fmt"

// ProcStatm holds the raw page counts reported by /proc/<pid>/statm.
// Lib and Dt are always zero since Linux 2.6 but stay in the struct to
// keep the positional layout of the file.
type ProcStatm struct {
	Size     uint64 // (1) total program size
	Resident uint64 // (2) resident set size
	Shared   uint64 // (3) resident shared pages
	Text     uint64 // (4) text (code)
	Lib      uint64 // (5) library, always 0
	Data     uint64 // (6) data + stack
	Dt       uint64 // (7) dirty pages, always 0
}

func ReadProcStatm(pid int) (proc ProcStatm, err error) {
	defer func() {
		if e := convertPanicToError(recover()); e != nil {
			proc, err = ProcStatm{}, e
		}
	}()
	return ParseProcStatm(readProcFile(pid, "statm"))
}

// ParseProcStatm parses the 7 whitespace-separated page counts of the
// statm format. The parse is all-or-nothing: the fields are positional,
// so a short or misaligned line would corrupt every derived value.
func ParseProcStatm(s string) (ProcStatm, error) {
	var proc ProcStatm

	_, err := fmt.Sscan(s,
		&proc.Size,
		&proc.Resident,
		&proc.Shared,
		&proc.Text,
		&proc.Lib,
		&proc.Data,
		&proc.Dt,
	)
	if err != nil {
		return ProcStatm{}, fmt.Errorf("parsing statm %q: %w", s, err)
	}

	return proc, nil
}
