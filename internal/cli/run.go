package cli

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"go.uber.org/zap"

	"statadvisor/internal/logging"
	"statadvisor/internal/session"
	"statadvisor/internal/ui/live"
	"statadvisor/internal/ui/plain"
)

// sessionInput allows tests to override stdin for interactive sessions.
var sessionInput io.Reader = os.Stdin

// runLive starts the Bubble Tea surface; tests replace it.
var runLive = live.Run

// runRun builds the handler for the run command.
func runRun(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}

		flags := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		configPath := flags.String("config", "", "Path to config file (default: search for .statadvisor/config.yml)")
		kbPath := flags.String("kb", "", "Path to a knowledge base file (overrides the config)")
		uiMode := flags.String("ui", "", "UI mode: auto|live|plain (overrides the config)")
		noColor := flags.Bool("no-color", false, "Disable colored output")
		logPath := flags.String("log", "", "Write a JSON session log to this file")
		verbose := flags.Bool("verbose", false, "Use plain prompts and debug-level logs")
		if code := parseFlags(cmd, flags, args, false, stdout, stderr); code >= 0 {
			return code
		}

		base, cfg, err := loadKnowledgeBase(*configPath, *kbPath)
		if err != nil {
			fmt.Fprintf(stderr, "Failed to load knowledge base:\n%v\n", err)
			return ExitError
		}
		if strings.TrimSpace(*uiMode) != "" {
			cfg.UI = *uiMode
		}
		if strings.TrimSpace(*logPath) != "" {
			cfg.Log.Path = *logPath
		}

		in := sessionInput
		if in == nil {
			in = os.Stdin
		}
		decision, err := resolveUIMode(cfg.UI, *verbose, in, stdout)
		if err != nil {
			fmt.Fprintf(stderr, "Invalid UI mode: %v\n", err)
			return ExitUsage
		}
		if decision.warning != "" {
			fmt.Fprintln(stderr, decision.warning)
		}

		logger, err := logging.New(logging.Options{Path: cfg.Log.Path, Level: cfg.Log.Level, Verbose: *verbose})
		if err != nil {
			fmt.Fprintf(stderr, "Failed to open log: %v\n", err)
			return ExitError
		}
		defer func() { _ = logger.Sync() }()

		c, err := session.New(base, session.Options{Logger: logger})
		if err != nil {
			fmt.Fprintf(stderr, "Failed to start session: %v\n", err)
			return ExitError
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()

		if decision.useLive {
			err = runLive(ctx, c, in, stdout, live.Options{NoColor: cfg.NoColor || *noColor})
			if err == nil && c.State() == session.StateDone {
				if view, viewErr := c.View(); viewErr == nil {
					fmt.Fprint(stdout, plain.FormatResult(view.Result))
				}
			}
		} else {
			err = plain.Run(ctx, c, in, stdout)
		}
		if err != nil {
			logger.Error("session ended with error", zap.Error(err))
			if errors.Is(err, plain.ErrInputClosed) || errors.Is(err, context.Canceled) {
				fmt.Fprintf(stderr, "Session ended: %v\n", err)
			} else {
				fmt.Fprintf(stderr, "Session failed: %v\n", err)
			}
			return ExitError
		}
		logger.Info("session finished", zap.String("state", string(c.State())))
		return ExitOK
	}
}
