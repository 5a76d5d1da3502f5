package version

import (
	"errors"
	"fmt"
)

// ErrEmptyVersion is returned when a version string yields no components to parse.
var ErrEmptyVersion = errors.New("empty version provided")

// MalformedComponentError represents a dotted version component that is not a
// non-negative integer.
type MalformedComponentError struct {
	Raw       string
	Component string
	Index     int
}

func newMalformedComponentError(raw, component string, index int) *MalformedComponentError {
	return &MalformedComponentError{
		Raw:       raw,
		Component: component,
		Index:     index,
	}
}

func (e *MalformedComponentError) Error() string {
	return fmt.Sprintf("malformed version component %q (index=%d) from %q", e.Component, e.Index, e.Raw)
}

func (e *MalformedComponentError) Is(target error) bool {
	var t *MalformedComponentError
	ok := errors.As(target, &t)
	if !ok {
		return false
	}
	return (t.Raw == "" || t.Raw == e.Raw) &&
		(t.Component == "" || t.Component == e.Component)
}
