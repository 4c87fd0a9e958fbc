package session

// QuestionView is the render instruction for a question.
type QuestionView struct {
	ID                string
	Text              string
	Options           []Option
	GuidanceAvailable bool
	// Position is 1-based within the question order.
	Position int
	Total    int
}

// Option is an answer token with its display label.
type Option struct {
	Value string
	Label string
}

// Result is the render instruction for the final recommendation.
type Result struct {
	// Determined is false when no rule matched or the default rule fired.
	Determined  bool   `json:"determined"`
	Default     bool   `json:"default"`
	RuleID      string `json:"rule_id,omitempty"`
	TestID      string `json:"test_id,omitempty"`
	TestName    string `json:"test_name,omitempty"`
	Explanation string `json:"explanation"`
}

// View is what a presentation surface should display right now.
type View struct {
	State    State
	Question QuestionView
	Guidance string
	Result   Result
}

// Answer is a recorded answer in question order.
type Answer struct {
	QuestionID string `json:"question_id"`
	Value      string `json:"value"`
	Label      string `json:"label"`
}

// Surface displays session output. Implementations forward user input back
// to the controller through Submit, Redo, Revisit, and Reset.
type Surface interface {
	RenderQuestion(question QuestionView)
	RenderGuidance(text string)
	RenderResult(result Result)
}

// Render sends view to surface.
func Render(surface Surface, view View) {
	if view.State == StateDone {
		surface.RenderResult(view.Result)
		return
	}
	surface.RenderQuestion(view.Question)
	if view.State == StateShowingGuidance && view.Guidance != "" {
		surface.RenderGuidance(view.Guidance)
	}
}
