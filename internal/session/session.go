// Package session drives one questionnaire run: it asks the inference
// engine for the next question, records answers in a fact store, and
// exposes what a presentation surface should display.
//
// States:
//
//	asking            a question is displayed; Submit, Redo, Revisit, Reset
//	showing_guidance  same question, plus help text after a "no_se" answer
//	done              the result is displayed; only Reset is accepted
package session

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"statadvisor/internal/facts"
	"statadvisor/internal/inference"
	"statadvisor/internal/knowledge"
)

// State identifies where a session is in the question flow.
type State string

const (
	StateAsking          State = "asking"
	StateShowingGuidance State = "showing_guidance"
	StateDone            State = "done"
)

// Options configures a session.
type Options struct {
	// ID identifies the session in logs. A random UUID is used when empty.
	ID     string
	Logger *zap.Logger
}

// Controller owns the facts for a single session. It is not safe for
// concurrent use; the knowledge base it reads may be shared.
type Controller struct {
	id       string
	base     *knowledge.Base
	engine   *inference.Engine
	facts    *facts.Store
	logger   *zap.Logger
	state    State
	current  string
	guidance string
	result   Result
}

// New starts a session on the first question of base.
func New(base *knowledge.Base, opts Options) (*Controller, error) {
	if base == nil {
		return nil, errors.New("session: knowledge base is required")
	}
	id := strings.TrimSpace(opts.ID)
	if id == "" {
		id = uuid.NewString()
	}
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	c := &Controller{
		id:     id,
		base:   base,
		engine: inference.New(base),
		facts:  facts.NewStore(),
		logger: logger.With(zap.String("session", id)),
	}
	c.Reset()
	c.logger.Info("session started", zap.Int("questions", len(base.Order())))
	return c, nil
}

// ID returns the session identifier.
func (c *Controller) ID() string {
	return c.id
}

// State returns the current state.
func (c *Controller) State() State {
	return c.state
}

// Current returns the displayed question id, or "" once done.
func (c *Controller) Current() string {
	return c.current
}

// Answer returns the recorded answer for questionID.
func (c *Controller) Answer(questionID string) (string, bool) {
	return c.facts.Get(questionID)
}

// Answers returns the recorded answers in question order.
func (c *Controller) Answers() []Answer {
	out := make([]Answer, 0, c.facts.Len())
	for _, id := range c.base.Order() {
		value, ok := c.facts.Get(id)
		if !ok {
			continue
		}
		out = append(out, Answer{QuestionID: id, Value: value, Label: knowledge.OptionLabel(value)})
	}
	return out
}

// Submit answers the current question. The unknown option records nothing
// and keeps the question displayed, with guidance when the question has it.
func (c *Controller) Submit(value string) error {
	if c.state == StateDone {
		return ErrSessionDone
	}
	value = strings.TrimSpace(value)
	if value == "" {
		return ErrNoSelection
	}
	question, err := c.base.Question(c.current)
	if err != nil {
		return err
	}
	if !question.HasOption(value) {
		return fmt.Errorf("%w %q for question %s", ErrInvalidOption, value, question.ID)
	}

	if value == c.base.UnknownOption() {
		if question.HasGuidance() {
			c.state = StateShowingGuidance
			c.guidance = question.Guidance
			c.logger.Info("guidance shown", zap.String("question", question.ID))
		} else {
			c.state = StateAsking
			c.guidance = ""
			c.logger.Info("unknown answer without guidance", zap.String("question", question.ID))
		}
		return nil
	}

	c.facts.Assert(question.ID, value)
	c.logger.Info("answer asserted", zap.String("question", question.ID), zap.String("value", value))
	c.advance()
	return nil
}

// Redo clears the answer for the current question and asks it again. Only
// questions with guidance accept a redo.
func (c *Controller) Redo() error {
	if c.state == StateDone {
		return ErrSessionDone
	}
	question, err := c.base.Question(c.current)
	if err != nil {
		return err
	}
	if !question.HasGuidance() {
		return ErrRedoNotAllowed
	}
	c.facts.Retract(question.ID)
	c.state = StateAsking
	c.guidance = ""
	c.logger.Info("question redone", zap.String("question", question.ID))
	return nil
}

// Revisit clears the answer for questionID and displays it again.
func (c *Controller) Revisit(questionID string) error {
	if c.state == StateDone {
		return ErrSessionDone
	}
	question, err := c.base.Question(strings.TrimSpace(questionID))
	if err != nil {
		return err
	}
	c.facts.Retract(question.ID)
	c.current = question.ID
	c.state = StateAsking
	c.guidance = ""
	c.logger.Info("question revisited", zap.String("question", question.ID))
	return nil
}

// Reset clears every answer and returns to the first question.
func (c *Controller) Reset() {
	c.facts.RetractAll()
	c.current = c.base.Order()[0]
	c.state = StateAsking
	c.guidance = ""
	c.result = Result{}
	c.logger.Debug("session reset", zap.String("question", c.current))
}

// View returns the render instruction for the current state.
func (c *Controller) View() (View, error) {
	if c.state == StateDone {
		return View{State: c.state, Result: c.result}, nil
	}
	question, err := c.base.Question(c.current)
	if err != nil {
		return View{}, err
	}
	position, _ := c.base.Position(question.ID)
	options := make([]Option, 0, len(question.Options))
	for _, option := range question.Options {
		options = append(options, Option{Value: option, Label: knowledge.OptionLabel(option)})
	}
	return View{
		State: c.state,
		Question: QuestionView{
			ID:                question.ID,
			Text:              question.Text,
			Options:           options,
			GuidanceAvailable: question.HasGuidance(),
			Position:          position + 1,
			Total:             len(c.base.Order()),
		},
		Guidance: c.guidance,
	}, nil
}

func (c *Controller) advance() {
	c.guidance = ""
	if next, ok := c.engine.Next(c.facts); ok {
		c.current = next
		c.state = StateAsking
		return
	}
	c.current = ""
	c.state = StateDone
	conclusion, err := c.engine.Conclude(c.facts)
	if err != nil {
		c.result = Result{Explanation: NoDeterminationMessage}
		c.logger.Warn("no rule matched", zap.Error(err), zap.Any("facts", c.facts.Snapshot()))
		return
	}
	c.result = Result{
		Determined:  !conclusion.Default,
		Default:     conclusion.Default,
		RuleID:      conclusion.RuleID,
		TestID:      conclusion.TestID,
		TestName:    conclusion.TestName,
		Explanation: conclusion.Explanation,
	}
	c.logger.Info("test recommended",
		zap.String("rule", conclusion.RuleID),
		zap.String("test", conclusion.TestID),
		zap.Bool("default", conclusion.Default))
}
