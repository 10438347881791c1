//go:build !windows

package chipdb

import "os"

func homeDir() string {
	return os.Getenv("HOME")
}
