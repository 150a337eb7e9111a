package linediff

import (
	"bufio"
	"io"
	"strings"
)

// ANSI colors applied by Render when color is true.
const (
	ansiReset = "\x1b[0m"
	ansiRed   = "\x1b[31m"
	ansiGreen = "\x1b[32m"
)

// Render writes s to w, one line per edit in script order. Equal lines are
// prefixed with " ", deleted lines with "-" and inserted lines with "+". If
// color, deleted lines are red and inserted lines green.
func (s Script) Render(w io.Writer, color bool) error {
	bw := bufio.NewWriter(w)
	for _, e := range s {
		prefix, code := " ", ""
		switch e.Op {
		case Delete:
			prefix, code = "-", ansiRed
		case Insert:
			prefix, code = "+", ansiGreen
		}

		if color && code != "" {
			bw.WriteString(code)
		}
		bw.WriteString(prefix)
		bw.WriteString(e.Line)
		if color && code != "" {
			bw.WriteString(ansiReset)
		}
		bw.WriteByte('\n')
	}
	return bw.Flush()
}

// String returns the uncolored rendering of s.
func (s Script) String() string {
	var b strings.Builder
	_ = s.Render(&b, false)
	return b.String()
}
