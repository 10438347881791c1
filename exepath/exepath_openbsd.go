//go:build openbsd

package exepath

import (
	"os"
	"path/filepath"
	"strings"
)

// there is no kernel facility for querying the path of an executable image
// on openbsd. the next best thing is the argument vector the process was
// started with. an argv[0] containing a path element is resolved directly,
// anything else is searched for in the $PATH list.
//
// the whole procedure is best effort. failure yields an empty directory
// rather than an error, leaving it to the caller's fallbacks
func dir() (string, error) {
	arg0 := os.Args[0]
	if arg0 == "" {
		return "", nil
	}

	if strings.HasPrefix(arg0, "/") || strings.HasPrefix(arg0, ".") {
		path, err := filepath.Abs(arg0)
		if err != nil {
			return "", nil
		}
		path, err = filepath.EvalSymlinks(path)
		if err != nil {
			return "", nil
		}
		return trimExecutable(path), nil
	}

	for _, p := range strings.Split(os.Getenv("PATH"), ":") {
		path := p + "/" + arg0
		info, err := os.Stat(path)
		if err != nil {
			continue
		}
		if info.Mode().Perm()&0o100 != 0 {
			return trimExecutable(path), nil
		}
	}

	return "", nil
}
