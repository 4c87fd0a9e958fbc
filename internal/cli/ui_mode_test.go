package cli

import (
	"bytes"
	"strings"
	"testing"
)

// TestResolveUIMode verifies ui mode decision logic.
func TestResolveUIMode(t *testing.T) {
	cases := []struct {
		name       string
		mode       string
		verbose    bool
		isTTY      bool
		expectLive bool
		wantWarn   bool
		wantErr    bool
	}{
		{name: "auto tty", mode: "auto", isTTY: true, expectLive: true},
		{name: "empty means auto", mode: "", isTTY: true, expectLive: true},
		{name: "auto non-tty", mode: "auto", isTTY: false, expectLive: false},
		{name: "plain", mode: "plain", isTTY: true, expectLive: false},
		{name: "verbose disables", mode: "auto", verbose: true, isTTY: true, expectLive: false},
		{name: "verbose live warns", mode: "live", verbose: true, isTTY: true, expectLive: false, wantWarn: true},
		{name: "live tty", mode: "LIVE", isTTY: true, expectLive: true},
		{name: "live non-tty warning", mode: "live", isTTY: false, expectLive: false, wantWarn: true},
		{name: "invalid mode", mode: "nope", isTTY: true, wantErr: true},
	}

	original := isTerminal
	t.Cleanup(func() { isTerminal = original })

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			isTerminal = func(any) bool { return tc.isTTY }
			decision, err := resolveUIMode(tc.mode, tc.verbose, nil, nil)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if decision.useLive != tc.expectLive {
				t.Fatalf("expected useLive=%v, got %v", tc.expectLive, decision.useLive)
			}
			if tc.wantWarn && decision.warning == "" {
				t.Fatalf("expected warning")
			}
			if !tc.wantWarn && decision.warning != "" {
				t.Fatalf("did not expect warning, got %q", decision.warning)
			}
		})
	}
}

func TestResolveUIModeNeedsInteractiveStdin(t *testing.T) {
	original := isTerminal
	t.Cleanup(func() { isTerminal = original })

	stdin := strings.NewReader("")
	stdout := &bytes.Buffer{}
	isTerminal = func(stream any) bool { return stream == any(stdout) }
	decision, err := resolveUIMode("auto", false, stdin, stdout)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if decision.useLive {
		t.Fatalf("expected plain surface when stdin is not a terminal")
	}
}
