// Package interchange converts between marc trees and the generic
// null/boolean/number/string/array/object model shared by JSON, YAML
// and TOML.
//
// Generic values are nil, bool, [Number], string, []any and [*Object].
// Numbers are carried as decimal text so no precision is lost in either
// direction.
//
// Converting to a tree maps objects to object containers and arrays to
// array containers.  An array element that prints as more than one line
// gets an explicit key equal to its index so the printed text stays
// addressable; other elements get implicit keys.
package interchange
