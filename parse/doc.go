// Package parse turns marc source text into statements.
//
// A marc file is a sequence of lines.  Each non-blank line is either a
// comment, starting with '#', or an entry
//
//	path = value
//
// where path is one or more accesses written without separators:
//
//	.name     object field
//	{name}    map key
//	[name]    explicit array slot
//	[+]       new array slot
//
// Names are bare words ([A-Za-z0-9_-]+) or string literals.  Values are
// strings, integers, numbers, true, false or null.
//
// The comment lines preceding an entry become that entry's comment; a
// comment block with no following entry is returned as a [*Comment]
// statement.
package parse
