package linediff

// The search follows the greedy algorithm from Myers 1986, "An O(ND) Difference
// Algorithm and Its Variations", run backward from the end of both sequences.
// http://www.xmailserver.org/diff2.pdf
//
// Coordinates are local to the region after the common prefix: x indexes
// a[xoff:] and y indexes b[yoff:]. The suffix cost S(x, y) is the edit
// distance between a[x:] and b[y:]. Along any diagonal S never increases as x
// grows, so the points on diagonal k with S <= d form a range that starts at
// some smallest x. Level d of the trace stores that smallest x for every
// diagonal.

// search runs the backward search until it reaches (0, 0), recording one
// diagLevel per cost, and sets ctx.cost to the shortest edit distance.
func (ctx *diffContext) search() {
	n := ctx.n()
	m := ctx.m()
	ctx.levels = ctx.levels[:0]

	if n == 0 || m == 0 {
		ctx.cost = n + m
		return
	}

	// Every path from (x, y) to (n, m) ends on diagonal delta.
	delta := n - m

	for d := 0; ; d++ {
		// Diagonals reachable with cost d share the parity of delta+d and
		// must cross the grid, which spans diagonals -m..n.
		kMin := delta - d
		if kMin < -m {
			kMin = -m
			if (delta-d-kMin)&1 != 0 {
				kMin++
			}
		}
		kMax := delta + d
		if kMax > n {
			kMax = n
			if (delta+d-kMax)&1 != 0 {
				kMax--
			}
		}

		level := diagLevel{kMin: kMin}
		if kMax >= kMin {
			level.x = make([]int, (kMax-kMin)/2+1)
		}

		found := false
		for k := kMin; k <= kMax; k += 2 {
			x := ctx.startOn(d, k, n)
			if x != unreached {
				x = ctx.slideBack(x, k)
				if k == 0 && x == 0 {
					found = true
				}
			}
			level.x[(k-kMin)/2] = x
		}

		ctx.levels = append(ctx.levels, level)
		if found {
			ctx.cost = d
			return
		}
	}
}

// startOn returns the smallest x on diagonal k that is known to have suffix
// cost at most d from the previous two levels, before following matches.
func (ctx *diffContext) startOn(d, k, n int) int {
	if d == 0 {
		return n
	}

	best := unreached
	prev := &ctx.levels[d-1]

	// From (r, r-k-1) on diagonal k+1: deleting a[r-1] gives (r-1, r-k-1).
	// At r == 0, inserting instead gives (0, -k).
	if r := prev.at(k + 1); r != unreached {
		best = max(r-1, 0)
	}

	// From (r, r-k+1) on diagonal k-1: inserting b[r-k] gives (r, r-k).
	// When that row is 0, deleting instead gives (k, 0).
	if r := prev.at(k - 1); r != unreached {
		if c := max(r, k); best == unreached || c < best {
			best = c
		}
	}

	// Points already within cost d-2 stay within cost d.
	if d >= 2 {
		if r := ctx.levels[d-2].at(k); r != unreached && (best == unreached || r < best) {
			best = r
		}
	}

	return best
}

// slideBack follows matching lines backward along diagonal k from x.
func (ctx *diffContext) slideBack(x, k int) int {
	y := x - k
	for x > 0 && y > 0 && ctx.equal(x-1, y-1) {
		x--
		y--
	}
	return x
}

// withinCost reports whether the local point (x, y) has suffix cost at most d.
// It requires a completed search and 0 <= d <= ctx.cost.
func (ctx *diffContext) withinCost(x, y, d int) bool {
	if d < 0 || d >= len(ctx.levels) {
		return false
	}
	r := ctx.levels[d].at(x - y)
	return r != unreached && x >= r
}
