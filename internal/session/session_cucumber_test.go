//go:build cucumber

package session

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"testing"

	"github.com/cucumber/godog"

	"statadvisor/internal/knowledge"
)

// TestSessionScenarios runs the advisor session feature scenarios.
func TestSessionScenarios(t *testing.T) {
	featurePath := filepath.Join("..", "..", "spec", "features", "advisor", "session.feature")
	suite := godog.TestSuite{
		Name:                "advisor-session",
		ScenarioInitializer: InitializeSessionScenario,
		Options: &godog.Options{
			Format:   "pretty",
			Paths:    []string{featurePath},
			Strict:   true,
			TestingT: t,
		},
	}
	if suite.Run() != 0 {
		t.Fatalf("non-zero godog status")
	}
}

// InitializeSessionScenario wires steps for session scenarios.
func InitializeSessionScenario(ctx *godog.ScenarioContext) {
	state := &sessionScenarioState{}
	ctx.Before(func(ctx context.Context, _ *godog.Scenario) (context.Context, error) {
		state.controller = nil
		return ctx, nil
	})

	ctx.Step(`^a new advisor session$`, state.givenNewSession)
	ctx.Step(`^I answer "([^"]+)"$`, state.whenIAnswer)
	ctx.Step(`^I answer in order "([^"]+)"$`, state.whenIAnswerInOrder)
	ctx.Step(`^I redo the question$`, state.whenIRedo)
	ctx.Step(`^I reset the session$`, state.whenIReset)
	ctx.Step(`^the current question is "([^"]+)"$`, state.thenCurrentQuestion)
	ctx.Step(`^the answer for "([^"]+)" is "([^"]+)"$`, state.thenAnswer)
	ctx.Step(`^no answer is recorded for "([^"]+)"$`, state.thenNoAnswer)
	ctx.Step(`^no answers are recorded$`, state.thenNoAnswers)
	ctx.Step(`^guidance mentioning "([^"]+)" is shown$`, state.thenGuidance)
	ctx.Step(`^no guidance is shown$`, state.thenNoGuidance)
	ctx.Step(`^the recommended test is "([^"]+)"$`, state.thenRecommended)
	ctx.Step(`^the result is determined$`, state.thenDetermined(true))
	ctx.Step(`^the result is not determined$`, state.thenDetermined(false))
}

type sessionScenarioState struct {
	controller *Controller
}

func (s *sessionScenarioState) givenNewSession() error {
	base, err := knowledge.Default()
	if err != nil {
		return err
	}
	s.controller, err = New(base, Options{ID: "scenario"})
	return err
}

func (s *sessionScenarioState) whenIAnswer(value string) error {
	return s.controller.Submit(value)
}

func (s *sessionScenarioState) whenIAnswerInOrder(values string) error {
	for _, value := range strings.Split(values, ",") {
		if err := s.controller.Submit(value); err != nil {
			return fmt.Errorf("answer %q: %w", value, err)
		}
	}
	return nil
}

func (s *sessionScenarioState) whenIRedo() error {
	return s.controller.Redo()
}

func (s *sessionScenarioState) whenIReset() error {
	s.controller.Reset()
	return nil
}

func (s *sessionScenarioState) thenCurrentQuestion(id string) error {
	if got := s.controller.Current(); got != id {
		return fmt.Errorf("expected current question %q, got %q", id, got)
	}
	return nil
}

func (s *sessionScenarioState) thenAnswer(id, value string) error {
	got, ok := s.controller.Answer(id)
	if !ok || got != value {
		return fmt.Errorf("expected %s=%s, got %q (recorded=%v)", id, value, got, ok)
	}
	return nil
}

func (s *sessionScenarioState) thenNoAnswer(id string) error {
	if value, ok := s.controller.Answer(id); ok {
		return fmt.Errorf("expected no answer for %s, got %q", id, value)
	}
	return nil
}

func (s *sessionScenarioState) thenNoAnswers() error {
	if answers := s.controller.Answers(); len(answers) != 0 {
		return fmt.Errorf("expected no answers, got %+v", answers)
	}
	return nil
}

func (s *sessionScenarioState) thenGuidance(fragment string) error {
	view, err := s.controller.View()
	if err != nil {
		return err
	}
	if view.State != StateShowingGuidance || !strings.Contains(view.Guidance, fragment) {
		return fmt.Errorf("expected guidance mentioning %q, got %s %q", fragment, view.State, view.Guidance)
	}
	return nil
}

func (s *sessionScenarioState) thenNoGuidance() error {
	view, err := s.controller.View()
	if err != nil {
		return err
	}
	if view.State != StateAsking || view.Guidance != "" {
		return fmt.Errorf("expected plain question, got %s %q", view.State, view.Guidance)
	}
	return nil
}

func (s *sessionScenarioState) thenRecommended(testID string) error {
	view, err := s.controller.View()
	if err != nil {
		return err
	}
	if view.State != StateDone || view.Result.TestID != testID {
		return fmt.Errorf("expected %s recommendation, got %s %+v", testID, view.State, view.Result)
	}
	return nil
}

func (s *sessionScenarioState) thenDetermined(want bool) func() error {
	return func() error {
		view, err := s.controller.View()
		if err != nil {
			return err
		}
		if view.Result.Determined != want {
			return fmt.Errorf("expected determined=%v, got %+v", want, view.Result)
		}
		return nil
	}
}
