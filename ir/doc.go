// Package ir is the in-memory tree of a marc document.
//
// A [Node] is either a scalar (string, integer, number, boolean, null), a
// container (object, map or array) holding an ordered mapping from
// [MapKey] to child nodes, or the transient [UninitializedType] used while
// a tree is under construction.
//
// Object and map containers are keyed by [Identifier]s.  Array containers
// mix explicit identifier keys with implicit keys minted by a [KeyGen];
// implicit keys are unique per generator and never shown to users.
package ir
