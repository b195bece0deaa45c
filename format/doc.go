// Package format names the document formats the marc tools read and
// write.
package format
