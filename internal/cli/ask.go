package cli

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	"statadvisor/internal/facts"
	"statadvisor/internal/inference"
	"statadvisor/internal/knowledge"
	"statadvisor/internal/session"
	"statadvisor/internal/ui/plain"
)

// askOutput is the JSON document printed by ask --json.
type askOutput struct {
	Status  string           `json:"status"`
	Next    *askQuestion     `json:"next,omitempty"`
	Result  *session.Result  `json:"result,omitempty"`
	Answers []session.Answer `json:"answers"`
}

type askQuestion struct {
	ID       string   `json:"id"`
	Text     string   `json:"text"`
	Options  []string `json:"options"`
	Guidance string   `json:"guidance,omitempty"`
}

// runAsk builds the handler for the ask command.
func runAsk(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}

		flags := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		configPath := flags.String("config", "", "Path to config file (default: search for .statadvisor/config.yml)")
		kbPath := flags.String("kb", "", "Path to a knowledge base file (overrides the config)")
		asJSON := flags.Bool("json", false, "Print JSON output")
		if code := parseFlags(cmd, flags, args, true, stdout, stderr); code >= 0 {
			return code
		}

		base, _, err := loadKnowledgeBase(*configPath, *kbPath)
		if err != nil {
			fmt.Fprintf(stderr, "Failed to load knowledge base:\n%v\n", err)
			return ExitError
		}
		store, err := parseAnswers(base, flags.Args())
		if err != nil {
			fmt.Fprintf(stderr, "Invalid answers: %v\n", err)
			return ExitUsage
		}

		output := evaluateAnswers(base, store)
		if *asJSON {
			encoder := json.NewEncoder(stdout)
			encoder.SetIndent("", "  ")
			if err := encoder.Encode(output); err != nil {
				fmt.Fprintf(stderr, "Failed to write output: %v\n", err)
				return ExitError
			}
			return ExitOK
		}
		writeAskText(stdout, output)
		return ExitOK
	}
}

// parseAnswers turns question=option arguments into a fact store.
func parseAnswers(base *knowledge.Base, args []string) (*facts.Store, error) {
	store := facts.NewStore()
	for _, arg := range args {
		id, value, ok := strings.Cut(arg, "=")
		id = strings.TrimSpace(id)
		value = strings.TrimSpace(value)
		if !ok || id == "" || value == "" {
			return nil, fmt.Errorf("expected <question>=<option>, got %q", arg)
		}
		question, err := base.Question(id)
		if err != nil {
			return nil, err
		}
		if !question.HasOption(value) {
			return nil, fmt.Errorf("%w %q for question %s (expected %s)",
				session.ErrInvalidOption, value, id, strings.Join(question.Options, "|"))
		}
		if value == base.UnknownOption() {
			return nil, fmt.Errorf("%s cannot be answered with %q here; run \"statadvisor questions\" for guidance", id, value)
		}
		if store.Has(id) {
			return nil, fmt.Errorf("question %s answered more than once", id)
		}
		store.Assert(id, value)
	}
	return store, nil
}

// evaluateAnswers reports the next pending question or the conclusion.
func evaluateAnswers(base *knowledge.Base, store *facts.Store) askOutput {
	output := askOutput{Answers: []session.Answer{}}
	for _, id := range base.Order() {
		if value, ok := store.Get(id); ok {
			output.Answers = append(output.Answers, session.Answer{QuestionID: id, Value: value, Label: knowledge.OptionLabel(value)})
		}
	}

	engine := inference.New(base)
	if next, ok := engine.Next(store); ok {
		question, _ := base.Question(next)
		output.Status = "pending"
		output.Next = &askQuestion{ID: question.ID, Text: question.Text, Options: question.Options, Guidance: question.Guidance}
		return output
	}

	output.Status = "done"
	conclusion, err := engine.Conclude(store)
	if errors.Is(err, inference.ErrNoMatch) {
		output.Result = &session.Result{Explanation: session.NoDeterminationMessage}
		return output
	}
	output.Result = &session.Result{
		Determined:  !conclusion.Default,
		Default:     conclusion.Default,
		RuleID:      conclusion.RuleID,
		TestID:      conclusion.TestID,
		TestName:    conclusion.TestName,
		Explanation: conclusion.Explanation,
	}
	return output
}

func writeAskText(w io.Writer, output askOutput) {
	if output.Next != nil {
		fmt.Fprintf(w, "Next question: %s\n%s\n", output.Next.ID, output.Next.Text)
		for _, option := range output.Next.Options {
			fmt.Fprintf(w, "  %s=%s\n", output.Next.ID, option)
		}
		return
	}
	if output.Result != nil {
		fmt.Fprint(w, plain.FormatResult(*output.Result))
	}
}
