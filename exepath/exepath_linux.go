//go:build linux

package exepath

import (
	"fmt"
	"os"
)

func dir() (string, error) {
	path, err := os.Readlink("/proc/self/exe")
	if err != nil {
		return "", fmt.Errorf("exepath: readlink /proc/self/exe: %w", err)
	}
	return trimExecutable(path), nil
}
