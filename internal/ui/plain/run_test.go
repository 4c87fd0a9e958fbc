package plain

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"statadvisor/internal/knowledge"
	"statadvisor/internal/session"
	"statadvisor/internal/testutil"
)

func newSession(t *testing.T) *session.Controller {
	t.Helper()
	base, err := knowledge.Default()
	if err != nil {
		t.Fatalf("default base: %v", err)
	}
	c, err := session.New(base, session.Options{ID: "plain-test"})
	if err != nil {
		t.Fatalf("new session: %v", err)
	}
	return c
}

func runScript(t *testing.T, c *session.Controller, lines ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	err := Run(testutil.Context(t, 0), c, testutil.Lines(lines...), &out)
	return out.String(), err
}

func TestRunReachesRecommendation(t *testing.T) {
	c := newSession(t)
	output, err := runScript(t, c, "comparar", "1", "dos", "independientes", "si", "si", "no_aplica", "4")
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if !strings.Contains(output, "Prueba sugerida: Prueba t de Student para muestras independientes") {
		t.Fatalf("expected recommendation, got:\n%s", output)
	}
	if c.State() != session.StateDone {
		t.Fatalf("expected done, got %s", c.State())
	}
}

func TestRunShowsGuidanceForUnknownNormality(t *testing.T) {
	c := newSession(t)
	output, err := runScript(t, c, "comparar", "cuantitativa", "dos", "independientes", "no_se", ":quit")
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if !strings.Contains(output, "shapiro.test") {
		t.Fatalf("expected guidance, got:\n%s", output)
	}
	if !strings.Contains(output, ":redo") {
		t.Fatalf("expected redo command to be offered, got:\n%s", output)
	}
	if c.Current() != "normalidad" {
		t.Fatalf("expected normalidad to stay current, got %s", c.Current())
	}
	if _, ok := c.Answer("normalidad"); ok {
		t.Fatalf("expected no answer for normalidad")
	}
}

func TestRunEmptyLineWarns(t *testing.T) {
	c := newSession(t)
	output, err := runScript(t, c, "", ":quit")
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if !strings.Contains(output, noSelectionMessage) {
		t.Fatalf("expected no-selection warning, got:\n%s", output)
	}
	if c.Current() != "objetivo" {
		t.Fatalf("expected objetivo, got %s", c.Current())
	}
}

func TestRunResetAndRevisit(t *testing.T) {
	c := newSession(t)
	output, err := runScript(t, c, "comparar", "cuantitativa", ":revisit objetivo", "predecir", ":reset", ":quit")
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if !strings.Contains(output, resetMessage) {
		t.Fatalf("expected reset message, got:\n%s", output)
	}
	if c.Current() != "objetivo" || len(c.Answers()) != 0 {
		t.Fatalf("expected fresh session, got %s with %d answers", c.Current(), len(c.Answers()))
	}
}

func TestRunRevisitUnknownIDReprompts(t *testing.T) {
	c := newSession(t)
	output, err := runScript(t, c, ":revisit objetivoo", "comparar", ":quit")
	if err != nil {
		t.Fatalf("expected the session to continue, got %v", err)
	}
	if !strings.Contains(output, `unknown question: "objetivoo"`) {
		t.Fatalf("expected unknown question message, got:\n%s", output)
	}
	if value, ok := c.Answer("objetivo"); !ok || value != "comparar" {
		t.Fatalf("expected objetivo=comparar after the typo, got %q %v", value, ok)
	}
}

func TestRunInputClosedEarly(t *testing.T) {
	c := newSession(t)
	_, err := runScript(t, c, "comparar")
	if !errors.Is(err, ErrInputClosed) {
		t.Fatalf("expected ErrInputClosed, got %v", err)
	}
}

func TestRunReportsInvalidOption(t *testing.T) {
	c := newSession(t)
	output, err := runScript(t, c, "9", ":quit")
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if !strings.Contains(output, "invalid option") {
		t.Fatalf("expected invalid option message, got:\n%s", output)
	}
}

func TestFormatResultWithoutExplanation(t *testing.T) {
	text := FormatResult(session.Result{Determined: true, TestID: "x", TestName: "X"})
	if !strings.Contains(text, "No se encontró una explicación detallada") {
		t.Fatalf("expected missing explanation notice, got %q", text)
	}
	text = FormatResult(session.Result{Explanation: session.NoDeterminationMessage})
	if strings.Contains(text, "Prueba sugerida") {
		t.Fatalf("expected no test line for undetermined result, got %q", text)
	}
}

func TestRunStopsWhenContextCancelled(t *testing.T) {
	c := newSession(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	var out bytes.Buffer
	err := Run(ctx, c, testutil.Lines("comparar"), &out)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestRunCancelledWhileWaitingForInput(t *testing.T) {
	c := newSession(t)
	reader, writer := io.Pipe()
	t.Cleanup(func() {
		writer.Close()
	})
	ctx, cancel := context.WithCancel(testutil.Context(t, 0))
	defer cancel()

	done := make(chan error, 1)
	var out bytes.Buffer
	go func() {
		done <- Run(ctx, c, reader, &out)
	}()
	time.Sleep(20 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		if !errors.Is(err, context.Canceled) {
			t.Fatalf("expected context.Canceled, got %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatalf("run did not return after cancellation")
	}
}

func TestReadLineTrimsLineEndings(t *testing.T) {
	reader := bufio.NewReader(strings.NewReader("uno\r\ndos\ntres"))
	for _, want := range []string{"uno", "dos"} {
		line, err := ReadLine(reader)
		if err != nil || line != want {
			t.Fatalf("expected %q, got %q (%v)", want, line, err)
		}
	}
	line, err := ReadLine(reader)
	if line != "tres" || err != io.EOF {
		t.Fatalf("expected partial last line with io.EOF, got %q (%v)", line, err)
	}
}
