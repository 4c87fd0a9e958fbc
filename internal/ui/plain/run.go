package plain

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"statadvisor/internal/session"
)

// ErrInputClosed indicates the input ended before a recommendation.
var ErrInputClosed = errors.New("input ended before a recommendation was reached")

// Messages shown for recoverable input problems.
const (
	noSelectionMessage = "Por favor selecciona una opción antes de continuar."
	resetMessage       = "El sistema ha sido reiniciado exitosamente."
	donePrompt         = "Escribe :reset para empezar de nuevo o :quit para salir."
)

// Run drives c from line-oriented input until the user quits, the input
// ends, or ctx is cancelled. Reaching a result and then closing the input is
// not an error. Only a failure to build the view ends the session with an
// error; mistakes in a typed command are reported and the prompt repeats.
func Run(ctx context.Context, c *session.Controller, in io.Reader, out io.Writer) error {
	lines := readLines(ctx, in)
	surface := NewSurface(out)
	render := true
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		if render {
			view, err := c.View()
			if err != nil {
				return err
			}
			session.Render(surface, view)
			if view.State == session.StateDone {
				fmt.Fprintln(out, donePrompt)
			}
		}
		render = true

		fmt.Fprint(out, "> ")
		var next lineResult
		select {
		case <-ctx.Done():
			return ctx.Err()
		case next = <-lines:
		}
		line, readErr := next.line, next.err
		if readErr != nil && readErr != io.EOF {
			return readErr
		}
		line = strings.TrimSpace(line)
		if line == "" && readErr == io.EOF {
			if c.State() == session.StateDone {
				return nil
			}
			return ErrInputClosed
		}

		quit, err := apply(c, line)
		if quit {
			return nil
		}
		switch {
		case err == nil:
			if line == ":reset" {
				fmt.Fprintln(out, resetMessage)
			}
		case errors.Is(err, session.ErrNoSelection):
			fmt.Fprintln(out, noSelectionMessage)
			render = false
		default:
			fmt.Fprintf(out, "%v\n", err)
			render = false
		}
		if readErr == io.EOF {
			if c.State() == session.StateDone {
				view, viewErr := c.View()
				if viewErr == nil {
					session.Render(surface, view)
				}
				return nil
			}
			return ErrInputClosed
		}
	}
}

// apply maps an input line to a controller call.
func apply(c *session.Controller, line string) (quit bool, err error) {
	switch {
	case line == ":quit" || line == ":q":
		return true, nil
	case line == ":reset":
		c.Reset()
		return false, nil
	case line == ":redo":
		return false, c.Redo()
	case strings.HasPrefix(line, ":revisit"):
		id := strings.TrimSpace(strings.TrimPrefix(line, ":revisit"))
		if id == "" {
			return false, fmt.Errorf("usage: :revisit <question-id>")
		}
		return false, c.Revisit(id)
	case strings.HasPrefix(line, ":"):
		return false, fmt.Errorf("unknown command %q", line)
	}
	return false, c.Submit(resolveOption(c, line))
}

// resolveOption turns a 1-based option number into its token.
func resolveOption(c *session.Controller, line string) string {
	n, err := strconv.Atoi(line)
	if err != nil {
		return line
	}
	view, viewErr := c.View()
	if viewErr != nil || n < 1 || n > len(view.Question.Options) {
		return line
	}
	return view.Question.Options[n-1].Value
}

type lineResult struct {
	line string
	err  error
}

// readLines reads from in on its own goroutine so a blocked read never
// delays cancellation. The channel closes after the first read error.
func readLines(ctx context.Context, in io.Reader) <-chan lineResult {
	lines := make(chan lineResult)
	go func() {
		defer close(lines)
		reader := bufio.NewReader(in)
		for {
			line, err := ReadLine(reader)
			select {
			case lines <- lineResult{line: line, err: err}:
			case <-ctx.Done():
				return
			}
			if err != nil {
				return
			}
		}
	}()
	return lines
}

// ReadLine reads a line from the reader, trimming line endings. At the end
// of input it returns the partial line together with io.EOF.
func ReadLine(reader *bufio.Reader) (string, error) {
	line, err := reader.ReadString('\n')
	if err != nil && err != io.EOF {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), err
}
