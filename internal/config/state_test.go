package config

import (
	"errors"
	"testing"
)

func TestSlot_SetOnce(t *testing.T) {
	var s slot[int]

	if err := s.set(1); err != nil {
		t.Fatalf("first set() error = %v", err)
	}
	if err := s.set(2); !errors.Is(err, ErrAlreadyInitialized) {
		t.Fatalf("second set() error = %v, want ErrAlreadyInitialized", err)
	}
	if got := *s.get("unset"); got != 1 {
		t.Errorf("get() = %d, the failed second set must not corrupt the value", got)
	}
}

func TestSlot_GetBeforeSetPanics(t *testing.T) {
	var s slot[int]

	defer func() {
		if r := recover(); r != "unset" {
			t.Errorf("recover() = %v, want the panic message %q", r, "unset")
		}
	}()
	s.get("unset")
}
