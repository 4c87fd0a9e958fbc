package knowledge

// DefaultUnknownOption is the "I don't know" answer token used when a base
// does not declare its own.
const DefaultUnknownOption = "no_se"

// Spec defines the knowledge base schema loaded from YAML or JSON.
type Spec struct {
	Version       int        `json:"version" yaml:"version"`
	UnknownOption string     `json:"unknown_option,omitempty" yaml:"unknown_option,omitempty"`
	Questions     []Question `json:"questions" yaml:"questions"`
	Tests         []Test     `json:"tests" yaml:"tests"`
	Rules         []Rule     `json:"rules" yaml:"rules"`
}

// Question is a single prompt with its ordered answer tokens.
type Question struct {
	ID       string   `json:"id" yaml:"id"`
	Text     string   `json:"text" yaml:"text"`
	Options  []string `json:"options" yaml:"options"`
	Guidance string   `json:"guidance,omitempty" yaml:"guidance,omitempty"`
}

// HasGuidance reports whether the question carries help text. Questions with
// guidance also accept redo requests.
func (q Question) HasGuidance() bool {
	return q.Guidance != ""
}

// HasOption reports whether value is one of the question's answer tokens.
func (q Question) HasOption(value string) bool {
	for _, option := range q.Options {
		if option == value {
			return true
		}
	}
	return false
}

// Test describes a recommendable statistical test.
type Test struct {
	ID          string `json:"id" yaml:"id"`
	Name        string `json:"name,omitempty" yaml:"name,omitempty"`
	Explanation string `json:"explanation,omitempty" yaml:"explanation,omitempty"`
}

// Rule maps a conjunction of answers to a test. A default rule has no guard
// and always matches.
type Rule struct {
	ID      string            `json:"id,omitempty" yaml:"id,omitempty"`
	When    map[string]string `json:"when,omitempty" yaml:"when,omitempty"`
	Default bool              `json:"default,omitempty" yaml:"default,omitempty"`
	Test    string            `json:"test" yaml:"test"`

	conditions []Condition
}

// Condition requires a fact for Question equal to Value.
type Condition struct {
	Question string
	Value    string
}

// Conditions returns the guard in question order.
func (r Rule) Conditions() []Condition {
	out := make([]Condition, len(r.conditions))
	copy(out, r.conditions)
	return out
}

// Conclusion is the outcome of rule evaluation.
type Conclusion struct {
	RuleID      string
	TestID      string
	TestName    string
	Explanation string
	Default     bool
}

// FactReader is the read side of a fact store.
type FactReader interface {
	Get(questionID string) (string, bool)
}
