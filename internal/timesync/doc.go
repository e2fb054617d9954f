// Package timesync converts trace-relative event times to wall-clock time.
//
// Event timestamps in the export are seconds.milliseconds strings
// relative to the start of the recording. Converter anchors them to the
// wall-clock instant the recording began, which is what the span
// exporter needs for absolute start and end times.
package timesync
