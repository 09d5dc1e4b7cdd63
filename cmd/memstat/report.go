package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/segmentio/encoding/json"
	"github.com/sirupsen/logrus"

	"github.com/procsight/procmem"
	"github.com/procsight/procmem/linux"
)

// report is the output shape of one collection. Absent values are nil
// so "no data" stays distinguishable from zero.
type report struct {
	Pid          int           `json:"pid"`
	Memory       *memoryReport `json:"memory"`
	PrivateBytes *uint64       `json:"private_bytes"`
}

type memoryReport struct {
	VSize    uint64 `json:"vsize"`
	Resident uint64 `json:"resident"`
	Shared   uint64 `json:"shared"`
	Text     uint64 `json:"text"`
	Data     uint64 `json:"data"`
}

func run(w io.Writer, config Config) error {
	r := collect(config.Pid)

	switch config.Format {
	case "table":
		return renderTable(w, r)
	case "json":
		return renderJSON(w, r)
	default:
		return fmt.Errorf("unknown format %q", config.Format)
	}
}

func collect(pid int) report {
	r := report{Pid: pid}

	if pid == os.Getpid() {
		if stats, ok := procmem.ReadMemoryStats(); ok {
			r.Memory = &memoryReport{
				VSize:    stats.VSize,
				Resident: stats.Resident,
				Shared:   stats.Shared,
				Text:     stats.Text,
				Data:     stats.Data,
			}
		}
		if n, ok := procmem.PrivateBytes(); ok {
			r.PrivateBytes = &n
		}
		return r
	}

	// Other processes are read straight from /proc, which only exists
	// on Linux.
	if statm, err := linux.ReadProcStatm(pid); err != nil {
		logrus.WithError(err).WithField("pid", pid).Warn("failed to read statm")
	} else {
		pagesize := uint64(os.Getpagesize())
		r.Memory = &memoryReport{
			VSize:    pagesize * statm.Size,
			Resident: pagesize * statm.Resident,
			Shared:   pagesize * statm.Shared,
			Text:     pagesize * statm.Text,
			Data:     pagesize * statm.Data,
		}
	}

	if n, err := linux.ReadPrivateBytes(pid); err != nil {
		logrus.WithError(err).WithField("pid", pid).Warn("failed to read smaps")
	} else {
		r.PrivateBytes = &n
	}

	return r
}

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Width(16)
	absentStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Italic(true)
)

func renderTable(w io.Writer, r report) error {
	fmt.Fprintln(w, titleStyle.Render(fmt.Sprintf("memory report for pid %d", r.Pid)))

	if r.Memory == nil {
		fmt.Fprintln(w, absentStyle.Render("memory stats unavailable"))
	} else {
		row(w, "virtual size", r.Memory.VSize)
		row(w, "resident set", r.Memory.Resident)
		row(w, "shared", r.Memory.Shared)
		row(w, "text", r.Memory.Text)
		row(w, "data", r.Memory.Data)
	}

	if r.PrivateBytes == nil {
		fmt.Fprintln(w, absentStyle.Render("private bytes unavailable"))
	} else {
		row(w, "private bytes", *r.PrivateBytes)
	}

	return nil
}

func row(w io.Writer, label string, v uint64) {
	fmt.Fprintf(w, "%s %s\n", labelStyle.Render(label), formatBytes(v))
}

func renderJSON(w io.Writer, r report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(r)
}

func formatBytes(v uint64) string {
	const unit = 1024
	if v < unit {
		return fmt.Sprintf("%d B", v)
	}
	div, exp := uint64(unit), 0
	for n := v / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %ciB (%d)", float64(v)/float64(div), "KMGTPE"[exp], v)
}
