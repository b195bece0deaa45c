// Package encode prints trees as canonical marc text.
//
// Every scalar of the tree becomes one line
//
//	path = literal
//
// where path spells out the accesses from the root.  Object and map
// fields are printed in ascending order of their key; array slots in
// slot order, implicit slots as [+].  A scalar's comment is printed on the
// lines above it, preceded by a blank line unless it starts the output.
//
// Printing the result of evaluating printed text reproduces that text.
// Empty containers have no lines and so do not survive a round trip.
package encode
