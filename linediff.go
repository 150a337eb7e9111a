// Package linediff computes minimal line-level edit scripts between two
// sequences of lines.
//
// The engine finds a shortest edit script using a greedy Myers O(ND) search.
// Results are exact, not heuristic: the number of non-Equal edits is always
// len(a) + len(b) - 2*LCS(a, b).
//
// When several shortest scripts exist, the result is canonical. Walking from
// the start of both sequences:
//   - equal lines are always matched;
//   - otherwise a Delete is emitted if it stays on a shortest path;
//   - otherwise an Insert is emitted.
//
// As a consequence an Insert is never directly followed by a Delete, so change
// blocks always read as deletions followed by insertions.
package linediff

// OpType identifies the type of edit operation.
type OpType int

const (
	// Equal means the line is unchanged and occupies both positions.
	Equal OpType = iota
	// Insert means the line exists only in the modified sequence.
	Insert
	// Delete means the line exists only in the original sequence.
	Delete
)

// String returns a string representation of the OpType.
func (t OpType) String() string {
	switch t {
	case Equal:
		return "Equal"
	case Insert:
		return "Insert"
	case Delete:
		return "Delete"
	default:
		return "Unknown"
	}
}

// NoIndex is the index recorded for the side an edit does not touch.
const NoIndex = -1

// Edit is a single-line edit operation.
//
// For Delete, NewIndex is NoIndex. For Insert, OldIndex is NoIndex.
type Edit struct {
	Op       OpType
	OldIndex int    // index in the original sequence
	NewIndex int    // index in the modified sequence
	Line     string // the line value
}

// EqualEdit returns an Equal edit pairing a[i] with b[j].
func EqualEdit(i, j int, line string) Edit {
	return Edit{Op: Equal, OldIndex: i, NewIndex: j, Line: line}
}

// DeleteEdit returns a Delete edit for a[i].
func DeleteEdit(i int, line string) Edit {
	return Edit{Op: Delete, OldIndex: i, NewIndex: NoIndex, Line: line}
}

// InsertEdit returns an Insert edit for b[j].
func InsertEdit(j int, line string) Edit {
	return Edit{Op: Insert, OldIndex: NoIndex, NewIndex: j, Line: line}
}

// Script is an ordered edit script. Replaying its Equal and Delete edits
// yields the original sequence; replaying its Equal and Insert edits yields
// the modified sequence.
type Script []Edit

// DiffOp represents a run of edits of the same type as index ranges.
// Insert ops have an empty A range positioned at the alignment point, and
// Delete ops an empty B range.
type DiffOp struct {
	Type   OpType
	AStart int // start index in sequence A (inclusive)
	AEnd   int // end index in sequence A (exclusive)
	BStart int // start index in sequence B (inclusive)
	BEnd   int // end index in sequence B (exclusive)
}

// Diff compares two line slices and returns a minimal edit script.
// It never fails; empty inputs are valid. The returned script is owned by the
// caller and does not alias a or b.
func Diff(a, b []string) Script {
	if len(a) == 0 && len(b) == 0 {
		return nil
	}

	ctx := newDiffContext(a, b)
	ctx.search()
	return ctx.walk()
}

// DiffOps compares two line slices and returns the minimal edit script
// grouped into ranges.
func DiffOps(a, b []string) []DiffOp {
	return Diff(a, b).Ops()
}

// Distance returns the shortest edit distance between a and b: the minimum
// number of line insertions and deletions that turn a into b.
func Distance(a, b []string) int {
	if len(a) == 0 || len(b) == 0 {
		return len(a) + len(b)
	}

	ctx := newDiffContext(a, b)
	ctx.search()
	return ctx.cost
}

// LCSLength returns the length of the longest common subsequence of a and b.
func LCSLength(a, b []string) int {
	return (len(a) + len(b) - Distance(a, b)) / 2
}
