package version

import (
	"runtime"
	"strings"
	"sync"
)

const Version = "0.1.0"

var (
	vsnOnce sync.Once
	vsn     string
)

func isDevel(vsn string) bool {
	return strings.Count(vsn, " ") > 2 || strings.HasPrefix(vsn, "devel")
}

// GoVersion reports the Go version without its "go" prefix.
func GoVersion() string {
	vsnOnce.Do(func() {
		vsn = strings.TrimPrefix(runtime.Version(), "go")
	})
	return vsn
}

// DevelGoVersion reports whether the version of Go that compiled or ran this
// library is a development ("tip") version. Tip versions include a commit SHA
// and change frequently, so they are worth flagging in version output.
func DevelGoVersion() bool {
	return isDevel(GoVersion())
}
