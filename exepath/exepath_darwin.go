//go:build darwin

package exepath

import (
	"fmt"
	"os"
)

// the runtime records the result of the kernel's executable path query at
// startup. without cgo the _NSGetExecutablePath() route is not available but
// the answer is the same
func dir() (string, error) {
	path, err := os.Executable()
	if err != nil {
		return "", fmt.Errorf("exepath: %w", err)
	}
	return trimExecutable(path), nil
}
