package failure_test

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"pvrank/internal/failure"
)

func TestWrapIncludesContext(t *testing.T) {
	base := errors.New("boom")
	err := failure.Wrap(failure.ErrParse, "records", "load", "rankings-500.json", base)
	if err == nil {
		t.Fatal("expected error")
	}
	if !errors.Is(err, failure.ErrParse) {
		t.Fatalf("expected marker to be retained, got %v", err)
	}
	if !errors.Is(err, base) {
		t.Fatalf("expected wrapped error to contain base error, got %v", err)
	}
	msg := err.Error()
	for _, fragment := range []string{"records", "load", "rankings-500.json", "boom"} {
		if !strings.Contains(msg, fragment) {
			t.Fatalf("expected %q in error string %q", fragment, msg)
		}
	}
}

func TestWrapWithoutCause(t *testing.T) {
	err := failure.Wrap(failure.ErrSourceUnavailable, "", "", "", nil)
	if !errors.Is(err, failure.ErrSourceUnavailable) {
		t.Fatalf("expected marker, got %v", err)
	}
	if !strings.Contains(err.Error(), "operation failed") {
		t.Fatalf("expected fallback detail, got %q", err.Error())
	}
}

func TestExitCodeMapping(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, 0},
		{"source", failure.Wrap(failure.ErrSourceUnavailable, "datasync", "fetch", "", nil), failure.ExitSourceUnavailable},
		{"parse", fmt.Errorf("prepare: %w", failure.Wrap(failure.ErrParse, "records", "decode", "", nil)), failure.ExitParse},
		{"config", failure.Wrap(failure.ErrConfiguration, "config", "load", "", nil), failure.ExitGeneric},
		{"plain", errors.New("other"), failure.ExitGeneric},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := failure.ExitCode(tc.err); got != tc.want {
				t.Fatalf("ExitCode = %d, want %d", got, tc.want)
			}
		})
	}
}
