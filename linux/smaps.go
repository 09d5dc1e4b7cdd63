package linux

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
)

// SmapsRecord maps the field names of one memory mapping to their raw
// textual values, unit suffix included (typically " kB"). Values are
// normalized only at the point of use.
type SmapsRecord map[string]string

// SmapsReport lists the mappings of a smaps file in appearance order.
type SmapsReport []SmapsRecord

// SmapsParser parses the content of /proc/<pid>/smaps. The file is
// kernel-maintained and can be irregular or truncated mid-read, so
// malformed lines are skipped with a warning on Log instead of aborting
// the parse.
type SmapsParser struct {
	Log logrus.FieldLogger // defaults to logrus.StandardLogger()
}

// Parse splits s into one record per mapping. A line containing a '-'
// is an address-range header and starts a new record; every other line
// is a "Key: Value" field of the current record, both sides trimmed,
// last value winning on duplicate keys. Field lines seen before any
// header, or field lines that don't split into two non-empty parts, are
// skipped with a warning.
func (p *SmapsParser) Parse(s string) SmapsReport {
	var report SmapsReport
	var record SmapsRecord

	forEachLine(s, func(line string) {
		if strings.IndexByte(line, '-') >= 0 {
			if len(record) != 0 {
				report = append(report, record)
			}
			record = SmapsRecord{}
			return
		}

		if record == nil {
			p.warn("smaps field line before any mapping header", line)
			return
		}

		key, val := splitProperty(line)
		if key == "" || val == "" {
			p.warn("malformed smaps field line", line)
			return
		}
		record[key] = val
	})

	if len(record) != 0 {
		report = append(report, record)
	}
	return report
}

func (p *SmapsParser) warn(msg string, line string) {
	log := p.Log
	if log == nil {
		log = logrus.StandardLogger()
	}
	log.WithField("line", line).Warn(msg)
}

// ParseProcSmaps parses s with a default parser.
func ParseProcSmaps(s string) SmapsReport {
	return (&SmapsParser{}).Parse(s)
}

// ReadProcSmaps reads and parses /proc/<pid>/smaps.
func ReadProcSmaps(pid int) (report SmapsReport, err error) {
	defer func() {
		if e := convertPanicToError(recover()); e != nil {
			report, err = nil, e
		}
	}()
	report = ParseProcSmaps(readProcFile(pid, "smaps"))
	return
}

// CalculatePrivateBytes sums the Private_Dirty field of every record,
// in bytes. Records without the field contribute zero; a report where
// no record carries it at all sums to a valid zero. A present value
// missing its " kB" suffix, or whose digits don't parse, fails the
// whole aggregation: the total is reported as one trustworthy number
// and a silently short sum is worse than no number.
func CalculatePrivateBytes(report SmapsReport) (uint64, error) {
	var total uint64

	for _, record := range report {
		val, ok := record["Private_Dirty"]
		if !ok {
			continue
		}

		kb, ok := strings.CutSuffix(val, " kB")
		if !ok {
			return 0, fmt.Errorf("smaps Private_Dirty value %q carries no kB unit", val)
		}

		n, err := strconv.ParseUint(kb, 10, 64)
		if err != nil {
			return 0, fmt.Errorf("smaps Private_Dirty value %q: %w", val, err)
		}
		if n > math.MaxUint64/1024 {
			return 0, fmt.Errorf("smaps Private_Dirty value %q overflows", val)
		}

		total += n * 1024
	}

	return total, nil
}

// ReadPrivateBytes reads /proc/<pid>/smaps and aggregates its
// Private_Dirty fields into a byte count.
func ReadPrivateBytes(pid int) (n uint64, err error) {
	defer func() {
		if e := convertPanicToError(recover()); e != nil {
			n, err = 0, e
		}
	}()
	return CalculatePrivateBytes(ParseProcSmaps(readProcFile(pid, "smaps")))
}
