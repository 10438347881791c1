// Package exepath finds the directory containing the executable image of the
// running process.
//
// There is no common operating system facility for this so the strategy
// depends on the build target. Exactly one implementation of the dir()
// function is compiled into the program. An unsupported target fails at
// build time because no file provides the function.
//
// The strategies are:
//
//   - linux: the kernel maintained "/proc/self/exe" symlink
//   - freebsd: the kern.proc.pathname sysctl
//   - darwin: the kernel's executable path query (via the runtime)
//   - windows: GetModuleFileName() converted to the short path form
//   - openbsd: the process argument vector and, if necessary, a $PATH search
//   - js/wasip1: the filesystem root (there is no executable image)
package exepath

// Dir returns the directory containing the running executable. A successful
// result is never empty and always ends with a path separator.
//
// The openbsd implementation is an exception. Locating the executable on
// that target is best effort and an empty string (with a nil error) is
// returned when the search fails.
func Dir() (string, error) {
	return dir()
}

// trimExecutable removes the filename component after the last path
// separator. The separator itself is retained.
func trimExecutable(path string) string {
	i := len(path)
	for i > 0 && path[i-1] != '/' && path[i-1] != '\\' {
		i--
	}
	return path[:i]
}
