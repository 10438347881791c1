// Package logger is the central log for the application. Entries are tagged
// with the package or subsystem making them and can be echoed to an output
// stream as they are made.
package logger

import (
	"fmt"
	"io"
	"strings"
	"sync"
)

// Permission indicates whether the environment making a Log() request allows
// logging to take place.
type Permission interface {
	AllowLogging() bool
}

type allow struct{}

func (allow) AllowLogging() bool { return true }

type deny struct{}

func (deny) AllowLogging() bool { return false }

// Allow can be used as the Permission argument when the log request should
// always succeed. Deny is the inverse and is a good default for types that
// carry a Permission but have not been given one.
var (
	Allow Permission = allow{}
	Deny  Permission = deny{}
)

type entry struct {
	tag    string
	detail string
}

func (e entry) String() string {
	return fmt.Sprintf("%s: %s", e.tag, e.detail)
}

// maximum number of entries to keep before dropping the oldest
const maxEntries = 256

type central struct {
	crit    sync.Mutex
	entries []entry
	echo    io.Writer
}

var log central

func (l *central) add(e entry) {
	l.crit.Lock()
	defer l.crit.Unlock()

	l.entries = append(l.entries, e)
	if len(l.entries) > maxEntries {
		l.entries = l.entries[1:]
	}

	if l.echo != nil {
		io.WriteString(l.echo, e.String())
		io.WriteString(l.echo, "\n")
	}
}

// Log adds an entry to the central log. The detail argument is converted to
// a string with the %v verb. Nothing is added if perm does not allow logging.
func Log(perm Permission, tag string, detail any) {
	if perm == nil || !perm.AllowLogging() {
		return
	}

	for _, d := range strings.Split(fmt.Sprintf("%v", detail), "\n") {
		log.add(entry{tag: tag, detail: d})
	}
}

// Logf is a formatted version of Log().
func Logf(perm Permission, tag string, spec string, args ...any) {
	Log(perm, tag, fmt.Sprintf(spec, args...))
}

// SetEcho causes future entries to be written to output as they are made. If
// writeRecent is true then entries made before the call are written
// immediately. A nil output stops any echoing.
func SetEcho(output io.Writer, writeRecent bool) {
	log.crit.Lock()
	log.echo = output
	log.crit.Unlock()

	if output != nil && writeRecent {
		Tail(output, -1)
	}
}

// Tail writes the most recent entries to output. A number of -1 writes every
// entry in the log.
func Tail(output io.Writer, number int) {
	log.crit.Lock()
	defer log.crit.Unlock()

	if output == nil {
		return
	}

	s := 0
	if number >= 0 && number < len(log.entries) {
		s = len(log.entries) - number
	}

	for _, e := range log.entries[s:] {
		io.WriteString(output, e.String())
		io.WriteString(output, "\n")
	}
}

// Clear empties the central log. Intended for test preparation, there is no
// good reason to clear the log during normal execution.
func Clear() {
	log.crit.Lock()
	defer log.crit.Unlock()
	log.entries = log.entries[:0]
}
