//go:build freebsd

package exepath

import (
	"fmt"

	"golang.org/x/sys/unix"
)

// a pid of -1 means the calling process. the sysctl is made twice, once to
// learn the size of the result and once to fill the buffer
func dir() (string, error) {
	buf, err := unix.SysctlRaw("kern.proc.pathname", -1)
	if err != nil {
		return "", fmt.Errorf("exepath: sysctl kern.proc.pathname: %w", err)
	}

	// result is NUL terminated
	if n := len(buf); n > 0 && buf[n-1] == 0 {
		buf = buf[:n-1]
	}

	return trimExecutable(string(buf)), nil
}
