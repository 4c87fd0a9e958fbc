package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"

	"statadvisor/internal/config"
)

// runValidate builds the handler for the validate command.
func runValidate(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}

		flags := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		configPath := flags.String("config", "", "Path to config file (default: search for .statadvisor/config.yml)")
		kbPath := flags.String("kb", "", "Path to a knowledge base file (overrides the config)")
		if code := parseFlags(cmd, flags, args, false, stdout, stderr); code >= 0 {
			return code
		}

		resolved, err := resolveConfigPath(*configPath)
		switch {
		case errors.Is(err, config.ErrConfigNotFound):
			fmt.Fprintln(stdout, "No config file found; using defaults")
		case err != nil:
			fmt.Fprintf(stderr, "Validation failed:\n%v\n", err)
			return ExitError
		default:
			if _, err := config.Load(resolved); err != nil {
				fmt.Fprintf(stderr, "Validation failed:\n%s\n", err.Error())
				return ExitError
			}
			fmt.Fprintln(stdout, "Config OK")
		}

		base, _, err := loadKnowledgeBase(resolved, *kbPath)
		if err != nil {
			fmt.Fprintf(stderr, "Validation failed:\n%s\n", err.Error())
			return ExitError
		}
		fmt.Fprintf(stdout, "Knowledge base OK (%d questions, %d tests, %d rules)\n",
			len(base.Order()), base.TestCount(), len(base.Rules()))
		return ExitOK
	}
}
