// Package eval folds parsed marc statements into a single tree.
//
// Entries are applied in order.  Each access along an entry's path
// descends from the root, materializing containers as it goes: the first
// access that reaches a node fixes its type (.name makes an object,
// {name} a map, [..] an array) and every later access must agree.  The
// entry's value lands at the end of the path, which must not already hold
// a scalar.
//
// Evaluation stops at the first error; no partial tree is returned.
package eval
