package linediff

// symbolTable maps distinct lines to dense integer symbols so the search
// compares ints instead of strings. Lines are keyed by their exact bytes.
type symbolTable struct {
	ids map[string]int
}

// newSymbolTable creates a table sized for the given number of lines.
func newSymbolTable(sizeHint int) *symbolTable {
	return &symbolTable{ids: make(map[string]int, sizeHint)}
}

// intern returns the symbol for line, allocating a new one on first sight.
func (t *symbolTable) intern(line string) int {
	if id, ok := t.ids[line]; ok {
		return id
	}
	id := len(t.ids)
	t.ids[line] = id
	return id
}

// symbols converts lines to their symbols.
func (t *symbolTable) symbols(lines []string) []int {
	out := make([]int, len(lines))
	for i, s := range lines {
		out[i] = t.intern(s)
	}
	return out
}
