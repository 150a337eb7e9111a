package linediff

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func TestWalk_MatchesReference(t *testing.T) {
	pairs := randomPairs(t, 1000, 14, 3)
	pairs = append(pairs, randomPairs(t, 200, 40, 6)...)

	for _, tc := range pairs {
		got := Diff(tc.a, tc.b)
		want := referenceDiff(tc.a, tc.b)
		if diff := cmp.Diff(want, got); diff != "" {
			t.Fatalf("Diff(%q, %q) mismatch (-want +got):\n%s", tc.a, tc.b, diff)
		}
	}
}

func TestWalk_SharedSuffixLinesMayMatchEarlier(t *testing.T) {
	// The common suffix "a b b a b" is not stripped: walking from the
	// front matches b's leading "a a b" first.
	a := fields("b a a b b a b")
	b := fields("a a b a b b a b")

	got := Diff(a, b)

	want := Script{
		DeleteEdit(0, "b"),
		EqualEdit(1, 0, "a"),
		EqualEdit(2, 1, "a"),
		EqualEdit(3, 2, "b"),
		InsertEdit(3, "a"),
		EqualEdit(4, 4, "b"),
		InsertEdit(5, "b"),
		EqualEdit(5, 6, "a"),
		EqualEdit(6, 7, "b"),
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Diff() mismatch (-want +got):\n%s", diff)
	}
}

func TestScript_Ops(t *testing.T) {
	s := Script{
		DeleteEdit(0, "a"),
		InsertEdit(0, "x"),
		InsertEdit(1, "y"),
		EqualEdit(1, 2, "b"),
		DeleteEdit(2, "c"),
	}

	want := []DiffOp{
		{Type: Delete, AStart: 0, AEnd: 1, BStart: 0, BEnd: 0},
		{Type: Insert, AStart: 1, AEnd: 1, BStart: 0, BEnd: 2},
		{Type: Equal, AStart: 1, AEnd: 2, BStart: 2, BEnd: 3},
		{Type: Delete, AStart: 2, AEnd: 3, BStart: 3, BEnd: 3},
	}
	assert.Equal(t, want, s.Ops())
	assert.Nil(t, Script(nil).Ops())
}
