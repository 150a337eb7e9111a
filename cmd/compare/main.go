// Comparison tool for validating linediff output against go-diff's line mode.
//
// Both engines run on generated input pairs; every linediff script is checked
// for reconstruction, and both edit distances must agree. The exit status is
// non-zero on any disagreement.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/dacharyc/linediff"
	godiff "github.com/sergi/go-diff/diffmatchpatch"
	"go.uber.org/zap"
)

type testCase struct {
	name string
	a, b []string
}

func main() {
	lines := flag.Int("lines", 500, "lines per generated input")
	seeds := flag.Int("seeds", 8, "number of generated input pairs")
	maxLines := flag.Int("max-lines", 0, "skip pairs whose combined line count exceeds this (0 = unlimited)")
	verbose := flag.Bool("v", false, "print scripts for small cases")
	flag.Parse()

	zl, err := zap.NewDevelopment()
	if err != nil {
		fmt.Fprintf(os.Stderr, "compare: %v\n", err)
		os.Exit(1)
	}
	defer zl.Sync() //nolint:errcheck
	logger := zl.Sugar()

	cases := []testCase{
		{
			name: "Fox example (common anchor word)",
			a:    []string{"The", "quick", "brown", "fox", "jumps"},
			b:    []string{"A", "slow", "red", "fox", "leaps"},
		},
		{
			name: "Repeated lines",
			a:    []string{"a", "a", "b"},
			b:    []string{"a", "b", "a"},
		},
		{
			name: "Code-like lines",
			a:    strings.Split("func main() {\n\tfmt.Println(hello)\n}", "\n"),
			b:    strings.Split("func main() {\n\tlog.Printf(world)\n\treturn\n}", "\n"),
		},
	}
	for seed := 1; seed <= *seeds; seed++ {
		cases = append(cases, testCase{
			name: fmt.Sprintf("Generated (%d lines, seed %d)", *lines, seed),
			a:    generateLargeText(*lines, 0),
			b:    generateLargeText(*lines, seed*7),
		})
	}

	limits := linediff.Limits{MaxLines: *maxLines}
	failures := 0
	for _, tc := range cases {
		if err := limits.Check(tc.a, tc.b); err != nil {
			logger.Infow("skipping case", "case", tc.name, "err", err)
			continue
		}
		if !runCase(logger, tc, *verbose) {
			failures++
		}
	}

	if failures > 0 {
		logger.Errorw("comparison failed", "failures", failures, "cases", len(cases))
		os.Exit(1)
	}
	logger.Infow("all cases agree", "cases", len(cases))
}

// runCase diffs one pair with both engines and reports whether they agree.
func runCase(logger *zap.SugaredLogger, tc testCase, verbose bool) bool {
	fmt.Printf("\n=== %s ===\n", tc.name)
	fmt.Printf("A: %d lines, B: %d lines\n", len(tc.a), len(tc.b))

	start := time.Now()
	script := linediff.Diff(tc.a, tc.b)
	linediffTime := time.Since(start)

	start = time.Now()
	want := goDiffDistance(tc.a, tc.b)
	goDiffTime := time.Since(start)

	st := script.Stats()
	fmt.Printf("\nlinediff: %v\n", linediffTime)
	fmt.Printf("  Edits: %d (Equal: %d, Delete: %d, Insert: %d)\n", len(script), st.Equal, st.Deleted, st.Inserted)
	fmt.Printf("  Change regions: %d\n", changeRegions(script))
	fmt.Printf("\ngo-diff:  %v\n", goDiffTime)
	fmt.Printf("  Distance: %d\n", want)

	if verbose && len(script) <= 40 {
		fmt.Println("\nlinediff output:")
		fmt.Print(script.String())
	}

	ok := true
	if err := script.Validate(tc.a, tc.b); err != nil {
		logger.Errorw("invalid script", "case", tc.name, "err", err)
		ok = false
	}
	if d := script.Distance(); d != want {
		logger.Errorw("edit distance mismatch", "case", tc.name, "linediff", d, "godiff", want)
		ok = false
	}
	return ok
}

// goDiffDistance returns the number of inserted and deleted lines reported by
// go-diff's line mode with no timeout, which makes its bisection exact.
func goDiffDistance(a, b []string) int {
	dmp := godiff.New()
	dmp.DiffTimeout = 0

	ra, rb, _ := dmp.DiffLinesToRunes(joinLines(a), joinLines(b))
	diffs := dmp.DiffMainRunes(ra, rb, false)

	d := 0
	for _, diff := range diffs {
		if diff.Type != godiff.DiffEqual {
			d += utf8.RuneCountInString(diff.Text)
		}
	}
	return d
}

// joinLines terminates every line so go-diff sees identical last lines as equal.
func joinLines(lines []string) string {
	var b strings.Builder
	for _, l := range lines {
		b.WriteString(l)
		b.WriteByte('\n')
	}
	return b.String()
}

// changeRegions counts maximal runs of non-Equal edits.
func changeRegions(s linediff.Script) int {
	regions := 0
	inChange := false
	for _, e := range s {
		if e.Op == linediff.Equal {
			inChange = false
			continue
		}
		if !inChange {
			regions++
			inChange = true
		}
	}
	return regions
}

func generateLargeText(lines int, seed int) []string {
	words := []string{"the", "quick", "brown", "fox", "jumps", "over", "lazy", "dog",
		"func", "main", "return", "if", "else", "for", "range", "var", "const",
		"import", "package", "type", "struct", "interface", "map", "slice"}

	result := make([]string, lines)
	for i := 0; i < lines; i++ {
		lineWords := make([]string, 5+i%3)
		for j := range lineWords {
			idx := (i*7 + j*13 + seed) % len(words)
			lineWords[j] = words[idx]
		}
		result[i] = strings.Join(lineWords, " ")
	}

	for i := seed % 10; i < lines; i += 10 + seed%5 {
		result[i] = "CHANGED LINE " + fmt.Sprint(i)
	}

	return result
}
