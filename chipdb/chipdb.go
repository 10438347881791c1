package chipdb

import (
	"fmt"
	"strings"

	"github.com/icetools/icepath/exepath"
	"github.com/icetools/icepath/logger"
)

// Build time defaults for the Locator. Both can be overridden at build time
// with the -X linker flag.
var (
	// Prefix is the installation prefix the tool was built for. A prefix
	// beginning with "~/" roots the highest priority search candidate in
	// the user's home directory.
	Prefix = "/usr/local"

	// Subdir is the name of the directory, under the prefix or next to the
	// executable, that holds the database files.
	Subdir = "icebox"
)

// Locator searches the filesystem for chip database files. The zero value is
// usable and searches with the build time defaults.
//
// Locator holds no state between calls to Find(). Two calls with the same
// device and an unchanged filesystem return the same result.
type Locator struct {
	// Prefix and Subdir default to the package level values of the same
	// name when left empty.
	Prefix string
	Subdir string

	// ExecDir locates the directory of the running executable for the
	// lowest priority candidate. Defaults to exepath.Dir.
	ExecDir func() (string, error)

	// Perm controls whether candidate paths are added to the central log as
	// they are tried. Defaults to logger.Deny.
	Perm logger.Permission
}

// Find returns the path of the database file for the named device. The
// candidate locations described in the package documentation are tried in
// order and the first one that can be opened for reading is returned. An
// empty string means no candidate exists.
//
// A non-nil error means the directory of the running executable could not be
// found. The two higher priority candidates are probed before that can
// happen and a database found by either is returned without consulting the
// executable path at all.
func (l Locator) Find(device string) (string, error) {
	prefix := l.Prefix
	if prefix == "" {
		prefix = Prefix
	}
	subdir := l.Subdir
	if subdir == "" {
		subdir = Subdir
	}
	perm := l.Perm
	if perm == nil {
		perm = logger.Deny
	}

	file := fmt.Sprintf("chipdb-%s.txt", device)

	if strings.HasPrefix(prefix, "~/") {
		p := homeDir() + prefix[1:] + "/" + subdir + "/" + file
		logger.Logf(perm, "chipdb", "looking for chipdb '%s' at %s", device, p)
		if testOpen(p) {
			return p, nil
		}
	}

	p := prefix + "/share/" + subdir + "/" + file
	logger.Logf(perm, "chipdb", "looking for chipdb '%s' at %s", device, p)
	if testOpen(p) {
		return p, nil
	}

	execDir := l.ExecDir
	if execDir == nil {
		execDir = exepath.Dir
	}
	d, err := execDir()
	if err != nil {
		return "", fmt.Errorf("chipdb: %w", err)
	}

	p = d + "../share/" + subdir + "/" + file
	logger.Logf(perm, "chipdb", "looking for chipdb '%s' at %s", device, p)
	if testOpen(p) {
		return p, nil
	}

	return "", nil
}
