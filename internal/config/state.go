package config

// slot is a set-once container backing the process-wide Config and Login
// instances. The zero value is an uninitialized slot.
//
// set succeeds exactly once; any later call fails with
// ErrAlreadyInitialized and leaves the stored value untouched. get panics
// while the slot is uninitialized: reads are only legal after the startup
// sequence has completed, so an early read is a programming error rather
// than a recoverable condition.
type slot[T any] struct {
	value *T
}

func (s *slot[T]) set(v T) error {
	if s.value != nil {
		return ErrAlreadyInitialized
	}
	s.value = &v
	return nil
}

func (s *slot[T]) get(msg string) *T {
	if s.value == nil {
		panic(msg)
	}
	return s.value
}
