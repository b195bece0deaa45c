// Package token provides tokenization support for the marc format.
//
// [Tokenize] turns source bytes into a flat sequence of [Token]s, each
// carrying the [Span] of the bytes it was produced from.  Spans are byte
// offsets into the original source; [PosDoc] maps them back to lines and
// columns for diagnostics.
//
// The package also owns string literal handling: [DecodeString] applies
// the escaping and multi-line rules of the four string forms, and
// [Literal] selects the canonical form used when printing.
package token
