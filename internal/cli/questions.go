package cli

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"strings"
)

// runQuestions builds the handler for the questions command.
func runQuestions(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}

		flags := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		configPath := flags.String("config", "", "Path to config file (default: search for .statadvisor/config.yml)")
		kbPath := flags.String("kb", "", "Path to a knowledge base file (overrides the config)")
		asJSON := flags.Bool("json", false, "Print JSON output")
		if code := parseFlags(cmd, flags, args, false, stdout, stderr); code >= 0 {
			return code
		}

		base, _, err := loadKnowledgeBase(*configPath, *kbPath)
		if err != nil {
			fmt.Fprintf(stderr, "Failed to load knowledge base:\n%v\n", err)
			return ExitError
		}

		if *asJSON {
			list := make([]askQuestion, 0, len(base.Order()))
			for _, question := range base.Questions() {
				list = append(list, askQuestion{ID: question.ID, Text: question.Text, Options: question.Options, Guidance: question.Guidance})
			}
			encoder := json.NewEncoder(stdout)
			encoder.SetIndent("", "  ")
			if err := encoder.Encode(list); err != nil {
				fmt.Fprintf(stderr, "Failed to write output: %v\n", err)
				return ExitError
			}
			return ExitOK
		}

		for i, question := range base.Questions() {
			marker := ""
			if question.HasGuidance() {
				marker = " (guidance)"
			}
			fmt.Fprintf(stdout, "%d. %s%s\n   %s\n   options: %s\n",
				i+1, question.ID, marker, question.Text, strings.Join(question.Options, ", "))
		}
		return ExitOK
	}
}
