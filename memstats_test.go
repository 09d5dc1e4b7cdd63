package procmem

import (
	"sync"
	"testing"

	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
)

func TestSetLogger(t *testing.T) {
	defer SetLogger(logrus.StandardLogger())

	l, _ := logtest.NewNullLogger()
	SetLogger(l)

	if logger() != logrus.FieldLogger(l) {
		t.Error("SetLogger: logger was not installed")
	}
}

func TestSetLoggerConcurrentWithReads(t *testing.T) {
	defer SetLogger(logrus.StandardLogger())

	l, _ := logtest.NewNullLogger()

	var wg sync.WaitGroup
	for i := 0; i != 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ReadMemoryStats()
			PrivateBytes()
		}()
	}
	SetLogger(l)
	wg.Wait()
}
