// Package xmlnode holds the generic tree produced by decoding an xctrace
// XML export, plus the id/ref resolution layer built on top of it.
//
// xctrace deduplicates repeated substructure (a process record shared by
// thousands of rows) by giving a node an "id" attribute on first
// occurrence and emitting later occurrences as empty nodes carrying a
// "ref" attribute. Node keeps that shape untyped; Index and Resolve undo
// the indirection without ever failing.
package xmlnode
