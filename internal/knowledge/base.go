package knowledge

import (
	"errors"
	"fmt"
)

// ErrUnknownQuestion indicates a question id with no matching record.
var ErrUnknownQuestion = errors.New("unknown question")

// ErrNoMatch indicates that no rule, including a default, matched the facts.
var ErrNoMatch = errors.New("no rule matched")

// Base is a validated, read-only knowledge base. It is safe to share across
// sessions.
type Base struct {
	unknown   string
	questions []Question
	index     map[string]int
	tests     map[string]Test
	rules     []Rule
	fallback  *Rule
}

// New validates a spec and builds a Base from it.
func New(spec Spec) (*Base, error) {
	normalized, err := NormalizeSpec(spec)
	if err != nil {
		return nil, err
	}
	base := &Base{
		unknown:   normalized.UnknownOption,
		questions: normalized.Questions,
		index:     make(map[string]int, len(normalized.Questions)),
		tests:     make(map[string]Test, len(normalized.Tests)),
	}
	for i, question := range normalized.Questions {
		base.index[question.ID] = i
	}
	for _, test := range normalized.Tests {
		base.tests[test.ID] = test
	}
	for i := range normalized.Rules {
		rule := normalized.Rules[i]
		if rule.Default {
			base.fallback = &rule
			continue
		}
		base.rules = append(base.rules, rule)
	}
	return base, nil
}

// UnknownOption returns the "I don't know" answer token.
func (b *Base) UnknownOption() string {
	return b.unknown
}

// Order returns question ids in the order they are asked.
func (b *Base) Order() []string {
	ids := make([]string, len(b.questions))
	for i, question := range b.questions {
		ids[i] = question.ID
	}
	return ids
}

// Questions returns every question in order.
func (b *Base) Questions() []Question {
	out := make([]Question, len(b.questions))
	copy(out, b.questions)
	return out
}

// Question looks up a question by id.
func (b *Base) Question(id string) (Question, error) {
	i, ok := b.index[id]
	if !ok {
		return Question{}, fmt.Errorf("%w: %q", ErrUnknownQuestion, id)
	}
	return b.questions[i], nil
}

// Position returns the zero-based position of id in the question order.
func (b *Base) Position(id string) (int, bool) {
	i, ok := b.index[id]
	return i, ok
}

// Test looks up a test by id.
func (b *Base) Test(id string) (Test, bool) {
	test, ok := b.tests[id]
	return test, ok
}

// TestCount returns the number of catalogued tests.
func (b *Base) TestCount() int {
	return len(b.tests)
}

// Rules returns the non-default rules in declaration order followed by the
// default rule, if any.
func (b *Base) Rules() []Rule {
	out := make([]Rule, 0, len(b.rules)+1)
	out = append(out, b.rules...)
	if b.fallback != nil {
		out = append(out, *b.fallback)
	}
	return out
}

// Evaluate returns the conclusion of the first rule whose guard is fully
// satisfied by facts. Declaration order decides between overlapping rules.
// When nothing matches the default rule applies; without one, ErrNoMatch.
func (b *Base) Evaluate(facts FactReader) (Conclusion, error) {
	for _, rule := range b.rules {
		if matches(rule, facts) {
			return b.conclude(rule), nil
		}
	}
	if b.fallback != nil {
		return b.conclude(*b.fallback), nil
	}
	return Conclusion{}, ErrNoMatch
}

func matches(rule Rule, facts FactReader) bool {
	for _, condition := range rule.conditions {
		value, ok := facts.Get(condition.Question)
		if !ok || value != condition.Value {
			return false
		}
	}
	return true
}

func (b *Base) conclude(rule Rule) Conclusion {
	test := b.tests[rule.Test]
	name := test.Name
	if name == "" {
		name = TestDisplayName(rule.Test)
	}
	return Conclusion{
		RuleID:      rule.ID,
		TestID:      rule.Test,
		TestName:    name,
		Explanation: test.Explanation,
		Default:     rule.Default,
	}
}
