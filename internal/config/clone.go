package config

// cloner is implemented by sections that hold references (slices, pointers)
// and therefore need more than a shallow copy.
type cloner[T any] interface {
	Clone() *T
}

func cloneSection[T any](s *T) *T {
	if s == nil {
		return nil
	}
	if c, ok := any(s).(cloner[T]); ok {
		return c.Clone()
	}
	out := *s
	return &out
}
