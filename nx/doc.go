// Package nx provides read-only, memory-mapped access to NX archives.
//
// An NX archive (magic "PKG4") packs a tree of named nodes into a single
// file: fixed-width node records, a string table, and two blob tables for
// bitmap and audio resources. The file is mapped into the process address
// space and every lookup walks the mapped bytes directly: nothing is
// decoded up front.
//
// The zero value of Node, Bitmap and Audio is a valid "null" handle: every
// accessor on it returns the type's zero value instead of failing, so
// traversal code can chase a path through an archive without checking for
// "not found" at every step.
package nx
