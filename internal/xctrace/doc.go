// Package xctrace runs the capturing tool and exports its result.
//
// This is the process-control collaborator around the pure decode/render
// core: it records a command under `xcrun xctrace`, keeps the temporary
// .trace bundle alive for the duration of one export, discovers the
// syscall table in the bundle's table of contents, and exports it as XML
// for the extractor. The mutable "currently captured subprocess" state
// used for signal forwarding lives here and nowhere else.
package xctrace
