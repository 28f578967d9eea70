package main

import (
	"fmt"
	"os"

	"go.uber.org/automaxprocs/maxprocs"
)

// Version is set at build time via ldflags.
var Version = "dev"

func main() {
	if len(os.Args) < 2 {
		printUsage(os.Stderr)
		os.Exit(1)
	}

	command := os.Args[1]
	args := os.Args[2:]

	switch command {
	case "convert":
		if err := mainConvert(args); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	case "import":
		if err := runImport(args, os.Stdout); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	case "themes":
		runThemes(os.Stdout)
	case "version":
		fmt.Fprintf(os.Stdout, "note2doc %s\n", Version)
	case "help", "--help", "-h":
		runHelp(args, os.Stdout, os.Stderr)
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		printUsage(os.Stderr)
		os.Exit(1)
	}
}

// mainConvert wires flag parsing, GOMAXPROCS tuning, and the converter
// pool around runConvert.
func mainConvert(args []string) error {
	flags, positional, err := parseConvertFlags(args)
	if err != nil {
		return err
	}

	// Error ignored: maxprocs.Set only fails if the GOMAXPROCS env is
	// invalid, in which case Go runtime defaults apply and the program
	// continues safely.
	if flags.common.verbose {
		_, _ = maxprocs.Set(maxprocs.Logger(func(format string, a ...interface{}) {
			fmt.Fprintf(os.Stderr, format+"\n", a...)
		}))
	} else {
		_, _ = maxprocs.Set(maxprocs.Logger(func(string, ...interface{}) {}))
	}

	pool, err := newPool(flags)
	if err != nil {
		return err
	}
	defer pool.Close()

	if flags.common.verbose {
		fmt.Fprintf(os.Stderr, "Pool size: %d\n", pool.Size())
	}

	return runConvert(positional, flags, pool, os.Stdout, os.Stderr)
}
