//go:build windows

package exepath

import (
	"fmt"

	"golang.org/x/sys/windows"
)

func dir() (string, error) {
	// the only indication that the buffer is too small is a truncated
	// result, so the buffer grows until the result fits
	long := make([]uint16, windows.MAX_PATH)
	for {
		n, err := windows.GetModuleFileName(0, &long[0], uint32(len(long)))
		if err == windows.ERROR_INSUFFICIENT_BUFFER || (err == nil && int(n) == len(long)) {
			long = make([]uint16, len(long)*2)
			continue
		}
		if err != nil {
			return "", fmt.Errorf("exepath: GetModuleFileName: %w", err)
		}
		long = long[:n+1]
		break
	}

	// the short form of the path contains no wide characters. a return value
	// larger than the buffer is the required buffer size
	short := make([]uint16, len(long))
	for {
		n, err := windows.GetShortPathName(&long[0], &short[0], uint32(len(short)))
		if err != nil {
			return "", fmt.Errorf("exepath: GetShortPathName: %w", err)
		}
		if int(n) < len(short) {
			short = short[:n]
			break
		}
		short = make([]uint16, n)
	}

	return trimExecutable(windows.UTF16ToString(short)), nil
}
