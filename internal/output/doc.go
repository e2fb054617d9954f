// Package output renders extracted trace events.
//
// Formatter is a pure formatting layer that:
//   - Receives fully extracted TraceEvent records
//   - Composes one aligned, optionally colorized line per event
//   - Delegates argument and result decoding to the syscalls package
//
// It does NOT:
//   - Walk the export tree
//   - Perform I/O
//   - Hold mutable state between events
//
// OTELFormatter is the span-emitting sibling: one OpenTelemetry span per
// event, with timestamps converted by the timesync package.
package output
