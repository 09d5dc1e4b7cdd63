package linux

import (
	"reflect"
	"testing"

	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/require"
)

const smapsText = `00400000-00452000 r-xp 00000000 08:02 173521      /usr/bin/dbus-daemon
Size:                328 kB
Rss:                 292 kB
Private_Dirty:         4 kB
VmFlags: rd ex mr mw me dw
00e03000-00e24000 rw-p 00000000 00:00 0           [heap]
Size:                132 kB
Rss:                  12 kB
Private_Dirty:         8 kB
`

func TestParseProcSmaps(t *testing.T) {
	report := ParseProcSmaps(smapsText)

	if len(report) != 2 {
		t.Fatal("wrong number of records:", len(report))
	}

	if !reflect.DeepEqual(report[0], SmapsRecord{
		"Size":          "328 kB",
		"Rss":           "292 kB",
		"Private_Dirty": "4 kB",
		"VmFlags":       "rd ex mr mw me dw",
	}) {
		t.Error(report[0])
	}

	if !reflect.DeepEqual(report[1], SmapsRecord{
		"Size":          "132 kB",
		"Rss":           "12 kB",
		"Private_Dirty": "8 kB",
	}) {
		t.Error(report[1])
	}
}

func TestParseProcSmapsEmpty(t *testing.T) {
	if report := ParseProcSmaps(""); len(report) != 0 {
		t.Error(report)
	}
}

func TestParseProcSmapsFieldBeforeHeader(t *testing.T) {
	logger, hook := logtest.NewNullLogger()
	parser := &SmapsParser{Log: logger}

	report := parser.Parse("Rss: 4 kB\n" + smapsText)

	require.Len(t, report, 2)
	require.Equal(t, "292 kB", report[0]["Rss"])
	require.Len(t, hook.Entries, 1)
	require.Equal(t, "Rss: 4 kB", hook.LastEntry().Data["line"])
}

func TestParseProcSmapsMalformedField(t *testing.T) {
	logger, hook := logtest.NewNullLogger()
	parser := &SmapsParser{Log: logger}

	report := parser.Parse(`00e03000-00e24000 rw-p 00000000 00:00 0
Rss: 12 kB
some junk without a delimiter
VmFlags:
Size: 132 kB
`)

	require.Equal(t, SmapsReport{{"Rss": "12 kB", "Size": "132 kB"}}, report)
	require.Len(t, hook.Entries, 2)
}

func TestParseProcSmapsDuplicateKey(t *testing.T) {
	report := ParseProcSmaps("00-01 rw-p\nRss: 4 kB\nRss: 8 kB\n")

	require.Equal(t, SmapsReport{{"Rss": "8 kB"}}, report)
}

func TestCalculatePrivateBytes(t *testing.T) {
	n, err := CalculatePrivateBytes(ParseProcSmaps(smapsText))

	require.NoError(t, err)
	require.Equal(t, uint64(12288), n)
}

func TestCalculatePrivateBytesNoField(t *testing.T) {
	report := SmapsReport{
		{"Rss": "292 kB"},
		{"Size": "132 kB"},
	}

	n, err := CalculatePrivateBytes(report)

	// Valid but nothing to report, which is not a failure.
	require.NoError(t, err)
	require.Equal(t, uint64(0), n)
}

func TestCalculatePrivateBytesFailure(t *testing.T) {
	tests := []struct {
		name  string
		value string
	}{
		{name: "wrong unit", value: "4MB"},
		{name: "missing unit", value: "4"},
		{name: "non-numeric digits", value: "four kB"},
		{name: "negative", value: "-4 kB"},
		{name: "overflows once scaled", value: "18446744073709551615 kB"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			report := SmapsReport{
				{"Private_Dirty": "4 kB"},
				{"Private_Dirty": test.value},
			}

			n, err := CalculatePrivateBytes(report)

			// Whole-aggregation failure, not a partial sum.
			require.Error(t, err)
			require.Equal(t, uint64(0), n)
		})
	}
}
