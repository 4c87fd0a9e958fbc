package cli

import (
	"flag"
	"fmt"
	"io"
	"strings"
)

// parseFlags parses args for cmd. A non-negative exit code means the caller
// should return it immediately.
func parseFlags(cmd *Command, flags *flag.FlagSet, args []string, allowArgs bool, stdout, stderr io.Writer) int {
	flags.SetOutput(stderr)
	if err := flags.Parse(args); err != nil {
		if err == flag.ErrHelp {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}
		fmt.Fprintf(stderr, "invalid arguments: %v\n", err)
		printCommandUsage(cmd, stderr)
		return ExitUsage
	}
	if !allowArgs && flags.NArg() > 0 {
		fmt.Fprintf(stderr, "unexpected arguments: %s\n", strings.Join(flags.Args(), " "))
		printCommandUsage(cmd, stderr)
		return ExitUsage
	}
	return -1
}
