// Package extract flattens an xctrace syscall export into TraceEvent
// records, one per row, in document order.
//
// Extraction never fails on a malformed row: missing fields degrade to
// their zero values and exactly one event is still produced, so the event
// count always matches the captured row count.
package extract
