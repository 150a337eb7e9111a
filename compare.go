package linediff

// walk emits the canonical shortest edit script using the trace recorded by
// search. The stripped common prefix becomes leading Equal edits.
//
// At each local point (x, y) with remaining cost r:
//   - if a[x] == b[y], emit Equal;
//   - else if deleting a[x] leaves suffix cost r-1, emit Delete;
//   - else emit Insert.
//
// Matching equal lines never increases the suffix cost, so the first rule
// keeps the script minimal.
func (ctx *diffContext) walk() Script {
	// A shortest script holds LCS Equal edits and cost other edits.
	script := make(Script, 0, (len(ctx.a)+len(ctx.b)+ctx.cost)/2)

	for i := 0; i < ctx.xoff; i++ {
		script = append(script, EqualEdit(i, i, ctx.a[i]))
	}

	n := ctx.n()
	m := ctx.m()
	x, y, r := 0, 0, ctx.cost
	for x < n || y < m {
		switch {
		case x < n && y < m && ctx.equal(x, y):
			script = append(script, EqualEdit(ctx.xoff+x, ctx.yoff+y, ctx.a[ctx.xoff+x]))
			x++
			y++
		case y == m || (x < n && ctx.withinCost(x+1, y, r-1)):
			script = append(script, DeleteEdit(ctx.xoff+x, ctx.a[ctx.xoff+x]))
			x++
			r--
		default:
			script = append(script, InsertEdit(ctx.yoff+y, ctx.b[ctx.yoff+y]))
			y++
			r--
		}
	}

	return script
}

// Ops groups consecutive edits of the same type into index ranges.
func (s Script) Ops() []DiffOp {
	var ops []DiffOp
	i, j := 0, 0

	for _, e := range s {
		n := len(ops)
		if n == 0 || ops[n-1].Type != e.Op {
			ops = append(ops, DiffOp{Type: e.Op, AStart: i, AEnd: i, BStart: j, BEnd: j})
			n++
		}
		last := &ops[n-1]
		if e.Op != Insert {
			i++
			last.AEnd = i
		}
		if e.Op != Delete {
			j++
			last.BEnd = j
		}
	}

	return ops
}
