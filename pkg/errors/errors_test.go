package errors

import (
	stderrors "errors"
	"fmt"
	"testing"
)

func TestNew(t *testing.T) {
	err := New(ErrCodeOpenFailed, "open %s", "cube.obj")

	if err.Code != ErrCodeOpenFailed {
		t.Errorf("Code = %s, want %s", err.Code, ErrCodeOpenFailed)
	}
	if err.Message != "open cube.obj" {
		t.Errorf("Message = %q, want %q", err.Message, "open cube.obj")
	}
	if err.Cause != nil {
		t.Errorf("Cause = %v, want nil", err.Cause)
	}
	if got := err.Error(); got != "OPEN_FAILED: open cube.obj" {
		t.Errorf("Error() = %q", got)
	}
}

func TestWrap(t *testing.T) {
	cause := stderrors.New("permission denied")
	err := Wrap(ErrCodeOpenFailed, cause, "open %s", "cube.obj")

	if err.Cause != cause {
		t.Errorf("Cause = %v, want %v", err.Cause, cause)
	}
	if !stderrors.Is(err, cause) {
		t.Error("wrapped error should match cause with errors.Is")
	}
	want := "OPEN_FAILED: open cube.obj: permission denied"
	if got := err.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestIs(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code Code
		want bool
	}{
		{"MatchingCode", New(ErrCodeIncorrectData, "bad vertex"), ErrCodeIncorrectData, true},
		{"DifferentCode", New(ErrCodeIncorrectData, "bad vertex"), ErrCodeOpenFailed, false},
		{"WrappedInFmt", fmt.Errorf("load: %w", New(ErrCodeInvalidExtension, "not obj")), ErrCodeInvalidExtension, true},
		{"PlainError", stderrors.New("plain"), ErrCodeInternal, false},
		{"NilError", nil, ErrCodeInternal, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Is(tt.err, tt.code); got != tt.want {
				t.Errorf("Is = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestGetCode(t *testing.T) {
	if got := GetCode(New(ErrCodeInvalidInput, "bad axis")); got != ErrCodeInvalidInput {
		t.Errorf("GetCode = %s, want %s", got, ErrCodeInvalidInput)
	}
	if got := GetCode(stderrors.New("plain")); got != "" {
		t.Errorf("GetCode on plain error = %s, want empty", got)
	}
	if got := GetCode(nil); got != "" {
		t.Errorf("GetCode on nil = %s, want empty", got)
	}
}

func TestUserMessage(t *testing.T) {
	err := New(ErrCodeIncorrectData, "malformed vertex on line 3")
	if got := UserMessage(err); got != "malformed vertex on line 3" {
		t.Errorf("UserMessage = %q", got)
	}

	plain := stderrors.New("plain failure")
	if got := UserMessage(plain); got != "plain failure" {
		t.Errorf("UserMessage on plain error = %q", got)
	}
}
