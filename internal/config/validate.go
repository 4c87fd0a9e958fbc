package config

import (
	"fmt"
	"strings"

	"statadvisor/internal/logging"
)

// Issue captures a validation problem with a config field.
type Issue struct {
	Field   string
	Message string
}

// ValidationError aggregates config validation issues.
type ValidationError struct {
	Issues []Issue
}

// Error renders validation errors as a multi-line string.
func (err *ValidationError) Error() string {
	if err == nil || len(err.Issues) == 0 {
		return "config validation failed"
	}
	lines := make([]string, 0, len(err.Issues))
	for _, issue := range err.Issues {
		lines = append(lines, fmt.Sprintf("%s: %s", issue.Field, issue.Message))
	}
	return strings.Join(lines, "\n")
}

// Validate checks a normalized config.
func Validate(cfg *Config) error {
	var issues []Issue
	add := func(field, message string) {
		issues = append(issues, Issue{Field: field, Message: message})
	}

	if cfg.Version == 0 {
		add("version", "is required")
	} else if cfg.Version != 1 {
		add("version", fmt.Sprintf("unsupported version %d", cfg.Version))
	}

	switch cfg.UI {
	case UIAuto, UILive, UIPlain:
	default:
		add("ui", fmt.Sprintf("invalid mode %q (expected auto|live|plain)", cfg.UI))
	}

	if _, err := logging.ParseLevel(cfg.Log.Level); err != nil {
		add("log.level", err.Error())
	}

	if len(issues) > 0 {
		return &ValidationError{Issues: issues}
	}
	return nil
}
