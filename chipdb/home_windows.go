//go:build windows

package chipdb

import "os"

// USERPROFILE is preferred. HOMEDRIVE and HOMEPATH are only combined when
// USERPROFILE is absent
func homeDir() string {
	if p, ok := os.LookupEnv("USERPROFILE"); ok {
		return p
	}

	drive, okDrive := os.LookupEnv("HOMEDRIVE")
	path, okPath := os.LookupEnv("HOMEPATH")
	if okDrive && okPath {
		return drive + path
	}

	return ""
}
