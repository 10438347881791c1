// Package chipdb locates the chip database file for a named device.
//
// The Find() function returns the path of the database file for the device
// specified in the argument. It probes candidate locations but does not
// otherwise touch, create or read the file.
//
// Find() handles the inclusion of the correct base path. Three bases are
// tried in a fixed priority order:
//
// A prefix beginning with "~/" means the databases of a user-local install
// are preferred. The tilde is expanded with the user's home directory and
// the first candidate is rooted there:
//
//	/home/user/custom/icebox/
//
// The second candidate is rooted in the installation prefix the tool was
// built for:
//
//	/usr/local/share/icebox/
//
// The final candidate is relative to the directory of the running
// executable, covering the case of a tool run straight from its build
// directory:
//
//	<executable dir>/../share/icebox/
//
// The package does this because the same binary may be run from a system
// install, from a per-user override of that install, or without being
// installed at all. The first candidate that can be opened wins.
//
// Database files are named for the device:
//
//	chipdb-<device>.txt
package chipdb
