package errors

import (
	stderrors "errors"
	"strings"
	"testing"
)

func TestErrorMessage(t *testing.T) {
	err := New(ErrCodeInvalidInput, "empty vehicle %s", "make")
	want := "INVALID_INPUT: empty vehicle make"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestErrorMessageWithCause(t *testing.T) {
	cause := stderrors.New("connection refused")
	err := Wrap(ErrCodeNetwork, cause, "fetching recalls")

	if !strings.Contains(err.Error(), "NETWORK_ERROR") {
		t.Errorf("Error() missing code: %q", err.Error())
	}
	if !strings.Contains(err.Error(), "connection refused") {
		t.Errorf("Error() missing cause: %q", err.Error())
	}
}

func TestUnwrap(t *testing.T) {
	cause := stderrors.New("boom")
	err := Wrap(ErrCodeInternal, cause, "wrapped")

	if !stderrors.Is(err, cause) {
		t.Error("errors.Is should find the wrapped cause")
	}
	if err.Unwrap() != cause {
		t.Error("Unwrap() should return the cause")
	}
}

func TestIs(t *testing.T) {
	err := New(ErrCodeTimeout, "request timed out")

	if !Is(err, ErrCodeTimeout) {
		t.Error("Is() should match the error's code")
	}
	if Is(err, ErrCodeNetwork) {
		t.Error("Is() should not match a different code")
	}
	if Is(stderrors.New("plain"), ErrCodeTimeout) {
		t.Error("Is() should not match a plain error")
	}
	if Is(nil, ErrCodeTimeout) {
		t.Error("Is() should not match nil")
	}
}

func TestIsWrappedChain(t *testing.T) {
	inner := New(ErrCodeNotFound, "no results")
	outer := Wrap(ErrCodeInternal, inner, "lookup")

	// The outermost code wins.
	if !Is(outer, ErrCodeInternal) {
		t.Error("Is() should match outer code")
	}
}

func TestGetCode(t *testing.T) {
	if got := GetCode(New(ErrCodeDecode, "bad json")); got != ErrCodeDecode {
		t.Errorf("GetCode() = %q, want %q", got, ErrCodeDecode)
	}
	if got := GetCode(stderrors.New("plain")); got != "" {
		t.Errorf("GetCode() = %q, want empty", got)
	}
}

func TestUserMessage(t *testing.T) {
	err := New(ErrCodeInvalidConfig, "unknown cache backend %q", "etcd")
	if got := UserMessage(err); got != `unknown cache backend "etcd"` {
		t.Errorf("UserMessage() = %q", got)
	}

	plain := stderrors.New("plain failure")
	if got := UserMessage(plain); got != "plain failure" {
		t.Errorf("UserMessage() = %q", got)
	}
}
