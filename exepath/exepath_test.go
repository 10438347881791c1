package exepath_test

import (
	"os"
	"runtime"
	"strings"
	"testing"

	"github.com/icetools/icepath/exepath"
	"github.com/icetools/icepath/test"
)

func TestDir(t *testing.T) {
	d, err := exepath.Dir()
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, len(d) > 0)
	test.ExpectSuccess(t, strings.HasSuffix(d, "/") || strings.HasSuffix(d, `\`))

	// the result must name a real directory
	info, err := os.Stat(d)
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, info.IsDir())

	// same answer every time
	e, err := exepath.Dir()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, d, e)
}

func TestDirContainsExecutable(t *testing.T) {
	switch runtime.GOOS {
	case "windows":
		t.Skip("result is in the short path form")
	case "openbsd":
		t.Skip("result depends on how the test binary was invoked")
	}

	exe, err := os.Executable()
	test.ExpectSuccess(t, err)

	d, err := exepath.Dir()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, d, exe[:strings.LastIndexAny(exe, `/\`)+1])
}
