package libdiff

// Reverse turns a diff from a to b into one from b to a.
func Reverse(lines []Line) []Line {
	res := make([]Line, len(lines))
	for i, ln := range lines {
		switch ln.Op {
		case Delete:
			ln.Op = Insert
		case Insert:
			ln.Op = Delete
		}
		res[i] = ln
	}
	return res
}
