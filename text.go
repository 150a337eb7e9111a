package linediff

import "strings"

// defaultEOL is the line terminator used by SplitLines and DiffText.
const defaultEOL = "\n"

// SplitLines splits text into lines on "\n". Lines never contain the
// terminator. A trailing "\n" does not produce an empty final line, and an
// empty text has no lines.
func SplitLines(text string) []string {
	return SplitLinesEOL(text, defaultEOL)
}

// SplitLinesEOL splits text into lines on eol, which must be non-empty
// (an empty eol is treated as "\n").
func SplitLinesEOL(text, eol string) []string {
	if text == "" {
		return nil
	}
	if eol == "" {
		eol = defaultEOL
	}
	lines := strings.Split(text, eol)
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

// DiffText splits both texts with SplitLines and diffs the resulting lines.
func DiffText(oldText, newText string) Script {
	return Diff(SplitLines(oldText), SplitLines(newText))
}
