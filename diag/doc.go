// Package diag renders errors as annotated source excerpts.
//
// Each error the marc packages produce maps to a [Report]: a title plus
// labeled spans of the source, each with a [Severity].  [Render] draws a
// report against the source text it came from:
//
//	error: Duplicate Assignment
//	  |
//	1 | .x = 2
//	  |      - info: A value was previously assigned at this path.
//	2 | .x = 3
//	  |      ^ Attempting to assign a new value at the same path is not allowed.
//	  |
//
// Only byte offsets and the source are needed; no line table is kept
// anywhere else.
package diag
