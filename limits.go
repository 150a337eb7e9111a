package linediff

import (
	"errors"
	"fmt"
)

// ErrTooLarge is returned by Limits.Check when an input pair exceeds the
// configured size.
var ErrTooLarge = errors.New("linediff: input too large")

// Limits is a caller-side size policy. Diff itself never enforces limits;
// callers that need to bound time or memory check inputs first.
type Limits struct {
	// MaxLines bounds len(a)+len(b). Zero means unlimited.
	MaxLines int
}

// Check returns an error wrapping ErrTooLarge if a and b exceed l.
func (l Limits) Check(a, b []string) error {
	if l.MaxLines <= 0 {
		return nil
	}
	if total := len(a) + len(b); total > l.MaxLines {
		return fmt.Errorf("%w: %d lines exceeds limit of %d", ErrTooLarge, total, l.MaxLines)
	}
	return nil
}
