package errors

import (
	stderrors "errors"
	"strings"
	"testing"
)

func TestNewAndIs(t *testing.T) {
	err := New(ErrCodeInvalidConfig, "invalid theme: %s", "neon")
	if !Is(err, ErrCodeInvalidConfig) {
		t.Error("Is() should match the error's own code")
	}
	if Is(err, ErrCodeNotFound) {
		t.Error("Is() matched a different code")
	}
	if got := err.Error(); !strings.Contains(got, "INVALID_CONFIG") || !strings.Contains(got, "neon") {
		t.Errorf("Error() = %q", got)
	}
}

func TestWrapPreservesCause(t *testing.T) {
	cause := stderrors.New("disk full")
	err := Wrap(ErrCodeRenderFailed, cause, "render %s", "png")

	if !stderrors.Is(err, cause) {
		t.Error("wrapped cause not reachable via errors.Is")
	}
	if GetCode(err) != ErrCodeRenderFailed {
		t.Errorf("GetCode() = %q", GetCode(err))
	}
	if !strings.Contains(err.Error(), "disk full") {
		t.Errorf("Error() = %q", err.Error())
	}
}

func TestCodeSurvivesFurtherWrapping(t *testing.T) {
	inner := New(ErrCodeInvalidSnapshot, "resource 0 has no name")
	outer := Wrap(ErrCodeInternal, inner, "loading input")

	// The outermost code wins, but the chain keeps the inner error reachable.
	if GetCode(outer) != ErrCodeInternal {
		t.Errorf("GetCode() = %q", GetCode(outer))
	}
	var e *Error
	if !stderrors.As(stderrors.Unwrap(outer), &e) || e.Code != ErrCodeInvalidSnapshot {
		t.Error("inner structured error lost")
	}
}

func TestGetCodePlainError(t *testing.T) {
	if GetCode(stderrors.New("plain")) != "" {
		t.Error("plain errors carry no code")
	}
	if Is(stderrors.New("plain"), ErrCodeInternal) {
		t.Error("Is() matched a plain error")
	}
}

func TestUserMessage(t *testing.T) {
	err := New(ErrCodeNoResources, "no resources matched the selection")
	if got := UserMessage(err); got != "no resources matched the selection" {
		t.Errorf("UserMessage() = %q", got)
	}
	plain := stderrors.New("boom")
	if got := UserMessage(plain); got != "boom" {
		t.Errorf("UserMessage(plain) = %q", got)
	}
}
