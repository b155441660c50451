package storage

import (
	"errors"
	"testing"
)

func TestWrap(t *testing.T) {
	if err := Wrap("add user", nil); err != nil {
		t.Fatalf("Wrap(nil) = %v, want nil", err)
	}

	cause := errors.New("disk full")
	err := Wrap("add payment", cause)

	var se *Error
	if !errors.As(err, &se) {
		t.Fatalf("expected *Error, got %T", err)
	}
	if se.Op != "add payment" {
		t.Errorf("Op = %q, want %q", se.Op, "add payment")
	}
	if !errors.Is(err, cause) {
		t.Error("expected wrapped error to match cause")
	}
	if got, want := err.Error(), "storage: add payment: disk full"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}
