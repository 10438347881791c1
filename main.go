package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/icetools/icepath/chipdb"
	"github.com/icetools/icepath/logger"
	"github.com/icetools/icepath/version"
)

const programName = "icepath"

func run(args []string) error {
	var verbose bool
	var showVersion bool
	var prefix string
	var subdir string

	flgs := flag.NewFlagSet(programName, flag.ExitOnError)
	flgs.BoolVar(&verbose, "v", false, "log each candidate path as it is tried")
	flgs.StringVar(&prefix, "prefix", chipdb.Prefix, "installation prefix to search under")
	flgs.StringVar(&subdir, "subdir", chipdb.Subdir, "name of the directory holding the chipdb files")
	flgs.BoolVar(&showVersion, "version", false, "print version information")
	err := flgs.Parse(args)
	if err != nil {
		return err
	}
	args = flgs.Args()

	if showVersion {
		fmt.Println(version.Title())
		return nil
	}

	if len(args) == 0 {
		return fmt.Errorf("no devices specified")
	}

	// candidate paths are logged by the locator. echo them as they are made
	logger.SetEcho(os.Stderr, false)

	perm := logger.Deny
	if verbose {
		perm = logger.Allow
	}

	loc := chipdb.Locator{
		Prefix: prefix,
		Subdir: subdir,
		Perm:   perm,
	}

	for _, device := range args {
		path, err := loc.Find(device)
		if err != nil {
			return err
		}
		if path == "" {
			return fmt.Errorf("no chipdb file found for device '%s'", device)
		}
		fmt.Println(path)
	}

	return nil
}

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, newStyles().err.Render(
			fmt.Sprintf("*** %s", err),
		))
		os.Exit(1)
	}
}
