package linediff

import (
	"fmt"
)

// Stats counts the edits in a Script by type.
type Stats struct {
	Equal    int
	Inserted int
	Deleted  int
}

// Stats returns the number of edits of each type.
func (s Script) Stats() Stats {
	var st Stats
	for _, e := range s {
		switch e.Op {
		case Equal:
			st.Equal++
		case Insert:
			st.Inserted++
		case Delete:
			st.Deleted++
		}
	}
	return st
}

// Distance returns the number of non-Equal edits.
func (s Script) Distance() int {
	st := s.Stats()
	return st.Inserted + st.Deleted
}

// HasChanges reports whether s contains any Insert or Delete.
func (s Script) HasChanges() bool {
	for _, e := range s {
		if e.Op != Equal {
			return true
		}
	}
	return false
}

// Old replays the Equal and Delete edits, reconstructing the original sequence.
func (s Script) Old() []string {
	var out []string
	for _, e := range s {
		if e.Op != Insert {
			out = append(out, e.Line)
		}
	}
	return out
}

// New replays the Equal and Insert edits, reconstructing the modified sequence.
func (s Script) New() []string {
	var out []string
	for _, e := range s {
		if e.Op != Delete {
			out = append(out, e.Line)
		}
	}
	return out
}

// Invert returns the script that transforms the modified sequence back into
// the original: Insert and Delete swap, as do the two indices.
//
// Invert(Diff(a, b)) is a shortest script for (b, a), but it need not equal
// Diff(b, a): the canonical order puts deletions first, and inversion turns
// those into insertions.
func (s Script) Invert() Script {
	if s == nil {
		return nil
	}
	out := make(Script, len(s))
	for i, e := range s {
		inv := Edit{Op: e.Op, OldIndex: e.NewIndex, NewIndex: e.OldIndex, Line: e.Line}
		switch e.Op {
		case Insert:
			inv.Op = Delete
		case Delete:
			inv.Op = Insert
		}
		out[i] = inv
	}
	return out
}

// ValidationError reports the first edit that breaks a Script invariant.
// Index is the position of the edit in the script, or the script length when
// the script ends before covering a whole sequence.
type ValidationError struct {
	Index  int
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("edit[%d]: %s", e.Index, e.Reason)
}

// Validate checks that s is a well-formed edit script from a to b: every
// edit carries the right indices and line value, and replaying each side
// visits every index of a and b exactly once in increasing order. It returns
// a *ValidationError on the first violation.
func (s Script) Validate(a, b []string) error {
	i, j := 0, 0
	fail := func(idx int, format string, args ...any) error {
		return &ValidationError{Index: idx, Reason: fmt.Sprintf(format, args...)}
	}

	for idx, e := range s {
		switch e.Op {
		case Equal:
			if e.OldIndex != i || e.NewIndex != j {
				return fail(idx, "Equal at (%d,%d), want (%d,%d)", e.OldIndex, e.NewIndex, i, j)
			}
			if i >= len(a) || j >= len(b) {
				return fail(idx, "Equal past end of input")
			}
			if a[i] != e.Line || b[j] != e.Line {
				return fail(idx, "Equal line %q does not match both inputs", e.Line)
			}
			i++
			j++
		case Delete:
			if e.OldIndex != i || e.NewIndex != NoIndex {
				return fail(idx, "Delete at (%d,%d), want (%d,%d)", e.OldIndex, e.NewIndex, i, NoIndex)
			}
			if i >= len(a) {
				return fail(idx, "Delete past end of original")
			}
			if a[i] != e.Line {
				return fail(idx, "Delete line %q, want %q", e.Line, a[i])
			}
			i++
		case Insert:
			if e.OldIndex != NoIndex || e.NewIndex != j {
				return fail(idx, "Insert at (%d,%d), want (%d,%d)", e.OldIndex, e.NewIndex, NoIndex, j)
			}
			if j >= len(b) {
				return fail(idx, "Insert past end of modified")
			}
			if b[j] != e.Line {
				return fail(idx, "Insert line %q, want %q", e.Line, b[j])
			}
			j++
		default:
			return fail(idx, "unknown op %v", e.Op)
		}
	}

	if i != len(a) {
		return fail(len(s), "script covers %d of %d original lines", i, len(a))
	}
	if j != len(b) {
		return fail(len(s), "script covers %d of %d modified lines", j, len(b))
	}
	return nil
}
