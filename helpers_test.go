package linediff

import (
	"math/rand"
	"strings"
	"testing"
)

type linePair struct {
	a, b []string
}

// randomPairs returns count deterministic input pairs of up to maxLen lines
// drawn from an alphabet of the given size. Small alphabets force repeated
// lines and many equally short scripts.
func randomPairs(t testing.TB, count, maxLen, alphabet int) []linePair {
	t.Helper()
	rng := rand.New(rand.NewSource(int64(count*1000 + maxLen*10 + alphabet)))
	gen := func() []string {
		n := rng.Intn(maxLen + 1)
		lines := make([]string, n)
		for i := range lines {
			lines[i] = string(rune('a' + rng.Intn(alphabet)))
		}
		return lines
	}

	pairs := make([]linePair, count)
	for i := range pairs {
		pairs[i] = linePair{a: gen(), b: gen()}
	}
	return pairs
}

// suffixCosts returns S where S[i][j] is the edit distance between a[i:] and b[j:].
func suffixCosts(a, b []string) [][]int {
	n, m := len(a), len(b)
	s := make([][]int, n+1)
	for i := range s {
		s[i] = make([]int, m+1)
	}
	for i := n; i >= 0; i-- {
		for j := m; j >= 0; j-- {
			switch {
			case i == n:
				s[i][j] = m - j
			case j == m:
				s[i][j] = n - i
			case a[i] == b[j]:
				s[i][j] = s[i+1][j+1]
			default:
				s[i][j] = 1 + min(s[i+1][j], s[i][j+1])
			}
		}
	}
	return s
}

// lcsTable returns L where L[i][j] is the LCS length of a[i:] and b[j:].
func lcsTable(a, b []string) [][]int {
	s := suffixCosts(a, b)
	l := make([][]int, len(s))
	for i := range s {
		l[i] = make([]int, len(s[i]))
		for j := range s[i] {
			l[i][j] = (len(a) - i + len(b) - j - s[i][j]) / 2
		}
	}
	return l
}

// referenceDiff applies the canonical walk over a full dynamic-programming
// table. It is quadratic and exists only to check Diff.
func referenceDiff(a, b []string) Script {
	s := suffixCosts(a, b)
	var out Script
	i, j := 0, 0
	for i < len(a) || j < len(b) {
		switch {
		case i < len(a) && j < len(b) && a[i] == b[j]:
			out = append(out, EqualEdit(i, j, a[i]))
			i++
			j++
		case i < len(a) && s[i+1][j]+1 == s[i][j]:
			out = append(out, DeleteEdit(i, a[i]))
			i++
		default:
			out = append(out, InsertEdit(j, b[j]))
			j++
		}
	}
	return out
}

func nonNil(lines []string) []string {
	if lines == nil {
		return []string{}
	}
	return lines
}

func fields(s string) []string {
	return strings.Fields(s)
}
