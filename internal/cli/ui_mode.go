package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"

	"statadvisor/internal/config"
)

// uiModeDecision captures which surface a session uses.
type uiModeDecision struct {
	useLive bool
	warning string
}

// isTerminal reports whether a stream is a TTY.
var isTerminal = defaultIsTerminal

// resolveUIMode picks the live or plain surface. The live UI needs a TTY on
// both ends; verbose runs always use plain output.
func resolveUIMode(mode string, verbose bool, stdin io.Reader, stdout io.Writer) (uiModeDecision, error) {
	normalized := strings.ToLower(strings.TrimSpace(mode))
	if normalized == "" {
		normalized = config.UIAuto
	}
	interactive := isTerminal(stdin) && isTerminal(stdout)
	switch normalized {
	case config.UIAuto:
		return uiModeDecision{useLive: interactive && !verbose}, nil
	case config.UILive:
		if verbose {
			return uiModeDecision{warning: "Verbose output requested; using the plain surface."}, nil
		}
		if interactive {
			return uiModeDecision{useLive: true}, nil
		}
		return uiModeDecision{
			warning: "Live UI requested but the terminal is not interactive; falling back to plain prompts.",
		}, nil
	case config.UIPlain:
		return uiModeDecision{}, nil
	default:
		return uiModeDecision{}, fmt.Errorf("invalid ui mode %q (expected auto|live|plain)", mode)
	}
}

// defaultIsTerminal inspects a stream for TTY support.
func defaultIsTerminal(stream any) bool {
	if stream == nil {
		return false
	}
	if file, ok := stream.(*os.File); ok {
		return term.IsTerminal(int(file.Fd()))
	}
	if fder, ok := stream.(interface{ Fd() uintptr }); ok {
		return term.IsTerminal(int(fder.Fd()))
	}
	return false
}
