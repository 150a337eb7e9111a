package linediff

// diagLevel holds, for one edit cost d, the smallest x on each diagonal whose
// suffix cost is at most d. Diagonal k is the line x - y = k in the edit graph
// of the region after the common prefix. Only diagonals kMin, kMin+2, ...
// kMin+2*(len(x)-1) are stored.
type diagLevel struct {
	kMin int
	x    []int
}

// unreached marks a diagonal that no path of this cost touches.
const unreached = -1

// at returns the stored x for diagonal k, or unreached.
func (l *diagLevel) at(k int) int {
	off := k - l.kMin
	if off < 0 || off&1 != 0 || off/2 >= len(l.x) {
		return unreached
	}
	return l.x[off/2]
}

// diffContext holds algorithm state during comparison.
type diffContext struct {
	a, b       []string    // original lines
	xvec, yvec []int       // interned symbols for a and b
	xoff, yoff int         // length of the common prefix in a and b
	levels     []diagLevel // backward search trace, indexed by cost
	cost       int         // shortest edit distance, set by search
}

// newDiffContext interns both sequences and strips their common prefix, which
// the canonical script always matches line-for-line.
//
// The common suffix is left in place: the walk may match its lines against
// earlier positions, so stripping it could change the result. The backward
// search covers it at cost 0.
func newDiffContext(a, b []string) *diffContext {
	syms := newSymbolTable(len(a) + len(b))
	ctx := &diffContext{
		a:    a,
		b:    b,
		xvec: syms.symbols(a),
		yvec: syms.symbols(b),
	}

	for ctx.xoff < len(a) && ctx.yoff < len(b) && ctx.xvec[ctx.xoff] == ctx.yvec[ctx.yoff] {
		ctx.xoff++
		ctx.yoff++
	}

	return ctx
}

// n returns the length of the region of a after the common prefix.
func (ctx *diffContext) n() int {
	return len(ctx.xvec) - ctx.xoff
}

// m returns the length of the region of b after the common prefix.
func (ctx *diffContext) m() int {
	return len(ctx.yvec) - ctx.yoff
}

// equal reports whether the region-local positions x in a and y in b hold
// the same line.
func (ctx *diffContext) equal(x, y int) bool {
	return ctx.xvec[ctx.xoff+x] == ctx.yvec[ctx.yoff+y]
}
