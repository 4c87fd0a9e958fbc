// Package inference decides what to ask next and, once every question has
// an answer, which test to recommend.
//
// The engine is a pure function of the fact store contents and the
// knowledge base. It keeps no state of its own and never mutates facts.
package inference

import (
	"statadvisor/internal/knowledge"
)

// ErrNoMatch indicates that no rule, including a default, matched.
var ErrNoMatch = knowledge.ErrNoMatch

// Facts is the read side of a fact store.
type Facts interface {
	Has(questionID string) bool
	Get(questionID string) (string, bool)
}

// Engine evaluates facts against a knowledge base.
type Engine struct {
	base *knowledge.Base
}

// New returns an engine for base.
func New(base *knowledge.Base) *Engine {
	return &Engine{base: base}
}

// Base returns the knowledge base the engine reads.
func (e *Engine) Base() *knowledge.Base {
	return e.base
}

// Next returns the first question in order that has no answer. ok is false
// once every question is answered.
func (e *Engine) Next(facts Facts) (id string, ok bool) {
	for _, questionID := range e.base.Order() {
		if !facts.Has(questionID) {
			return questionID, true
		}
	}
	return "", false
}

// Exhausted reports whether every question has an answer.
func (e *Engine) Exhausted(facts Facts) bool {
	_, pending := e.Next(facts)
	return !pending
}

// Conclude evaluates the rules against facts. Callers normally invoke it
// only once Exhausted reports true.
func (e *Engine) Conclude(facts Facts) (knowledge.Conclusion, error) {
	return e.base.Evaluate(facts)
}
