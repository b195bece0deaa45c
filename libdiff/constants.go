package libdiff

// Op is what happened to a line.
type Op int

const (
	Equal Op = iota
	Delete
	Insert
)

func (op Op) String() string {
	switch op {
	case Equal:
		return "equal"
	case Delete:
		return "delete"
	case Insert:
		return "insert"
	}
	return "<unknown op>"
}

// Prefix is the column shown before a line in a rendered diff.
func (op Op) Prefix() string {
	switch op {
	case Delete:
		return "-"
	case Insert:
		return "+"
	}
	return " "
}
