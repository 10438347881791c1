//go:build js || wasip1

package exepath

// no executable image to speak of in the sandboxed environment. the root of
// the (virtual) filesystem is as good an answer as any
func dir() (string, error) {
	return "/", nil
}
