package client

import (
	"errors"
	"fmt"
	"testing"
)

func TestErrorMatchesByCode(t *testing.T) {
	err := Newf(CodeExpired, "end time %d is in the past", 42)
	if !errors.Is(err, New(CodeExpired, "")) {
		t.Fatal("expected errors with the same code to match")
	}
	if errors.Is(err, New(CodeTooDistant, "")) {
		t.Fatal("expected errors with different codes not to match")
	}
}

func TestErrorMatchesThroughWrapping(t *testing.T) {
	cause := fmt.Errorf("socket closed")
	err := fmt.Errorf("submit: %w", Wrap(CodeInternalServer, "robot rejected command", cause))

	if !errors.Is(err, New(CodeInternalServer, "")) {
		t.Fatal("expected wrapped error to match by code")
	}
	if !errors.Is(err, cause) {
		t.Fatal("expected cause to remain reachable through Unwrap")
	}
}

func TestCodeOf(t *testing.T) {
	if got := CodeOf(New(CodeDocked, "robot is docked")); got != CodeDocked {
		t.Fatalf("CodeOf = %q, want %q", got, CodeDocked)
	}
	if got := CodeOf(fmt.Errorf("plain")); got != "" {
		t.Fatalf("CodeOf plain error = %q, want empty", got)
	}
}

func TestErrorStringIncludesCause(t *testing.T) {
	err := Wrap(CodeCommandFailed, "stand did not finish", fmt.Errorf("boom"))
	want := "command_failed: stand did not finish: boom"
	if err.Error() != want {
		t.Fatalf("Error() = %q, want %q", err.Error(), want)
	}
}
