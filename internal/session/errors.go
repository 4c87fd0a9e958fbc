package session

import (
	"errors"

	"statadvisor/internal/inference"
	"statadvisor/internal/knowledge"
)

var (
	// ErrNoSelection indicates a submit without a chosen option.
	ErrNoSelection = errors.New("no option selected")
	// ErrInvalidOption indicates a value outside the current question's options.
	ErrInvalidOption = errors.New("invalid option")
	// ErrRedoNotAllowed indicates a redo on a question without guidance.
	ErrRedoNotAllowed = errors.New("redo is not available for this question")
	// ErrSessionDone indicates an answer-changing request after the result
	// was shown. Only Reset is accepted then.
	ErrSessionDone = errors.New("session is finished; reset to start again")
	// ErrUnknownQuestion indicates a question id missing from the knowledge base.
	ErrUnknownQuestion = knowledge.ErrUnknownQuestion
	// ErrNoMatch indicates that no rule matched. Sessions report it as an
	// undetermined result rather than an error.
	ErrNoMatch = inference.ErrNoMatch
)

// NoDeterminationMessage is shown when no rule matched the answers.
const NoDeterminationMessage = "No se pudo determinar una prueba estadística con la información proporcionada. " +
	"Por favor, revise sus respuestas o la base de conocimiento."
