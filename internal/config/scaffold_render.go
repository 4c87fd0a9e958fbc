package config

import (
	"context"
	"strconv"
	"strings"
)

//go:generate templ generate -f scaffold.templ

// ScaffoldOptions fills the generated config file. An empty LogPath leaves
// the log section out.
type ScaffoldOptions struct {
	KnowledgeBase string
	LogPath       string
}

// yamlQuote renders value as a double-quoted YAML scalar.
func yamlQuote(value string) string {
	return strconv.Quote(value)
}

// renderScaffoldConfig builds the scaffold YAML via the component.
func renderScaffoldConfig(opts ScaffoldOptions) (string, error) {
	var builder strings.Builder
	if err := ScaffoldConfig(opts).Render(context.Background(), &builder); err != nil {
		return "", err
	}
	return builder.String(), nil
}
