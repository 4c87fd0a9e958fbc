package testutil

import (
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestContextUsesTimeout(t *testing.T) {
	ctx := Context(t, time.Minute)
	deadline, ok := ctx.Deadline()
	if !ok {
		t.Fatalf("expected a deadline")
	}
	if remaining := time.Until(deadline); remaining <= 0 || remaining > time.Minute {
		t.Fatalf("expected deadline within a minute, got %v", remaining)
	}
	if ctx.Err() != nil {
		t.Fatalf("expected live context, got %v", ctx.Err())
	}
}

func TestContextDefaultTimeoutForBenchmarks(t *testing.T) {
	var ctx interface{ Err() error }
	testing.Benchmark(func(b *testing.B) {
		ctx = Context(b, 0)
	})
	if ctx == nil {
		t.Fatalf("expected context from benchmark")
	}
}

func TestLinesAndWriteFile(t *testing.T) {
	data, err := io.ReadAll(Lines("a", "b"))
	if err != nil || string(data) != "a\nb\n" {
		t.Fatalf("unexpected lines %q (%v)", data, err)
	}
	path := WriteFile(t, t.TempDir(), filepath.Join("nested", "file.txt"), "content")
	got, err := os.ReadFile(path)
	if err != nil || string(got) != "content" {
		t.Fatalf("unexpected file %q (%v)", got, err)
	}
}
