package extract

// TraceEvent is one captured syscall invocation, flattened from a row of
// the export. Events are created once by Extract and never mutated by
// downstream decoding or rendering.
type TraceEvent struct {
	// Timestamp is the start-time formatted value (seconds.milliseconds).
	Timestamp string
	// Duration is the formatted duration, empty when the row has none.
	Duration string
	// Syscall is the normalized name, class-marker prefix stripped.
	// Empty when the row carried no name; the event is still emitted.
	Syscall string
	// Signature is the symbolication signature, when present.
	Signature string
	// Process is the formatted process label.
	Process string
	// Pid is the numeric process id; valid only when HasPid is set.
	Pid    int
	HasPid bool
	// Tid is the thread id, parsed as hexadecimal; valid when HasTid.
	Tid    uint64
	HasTid bool
	// Result is the raw return value, kept as a string because some
	// values need the full 64 bits.
	Result    string
	HasResult bool
	// ErrLabel is the narrative error label, empty when absent.
	ErrLabel string
	// Args are the raw argument strings in positional order.
	Args []string
}

// Undecodable reports whether the row carried no syscall name.
func (e *TraceEvent) Undecodable() bool {
	return e.Syscall == ""
}
