package extract

import (
	"strconv"
	"strings"

	"sctrace/internal/xmlnode"
)

// Row children as exported by the syscall table schema.
const (
	rowElem       = "row"
	startTimeElem = "start-time"
	durationElem  = "duration"
	syscallElem   = "syscall"
	signatureElem = "signature"
	processElem   = "process"
	pidElem       = "pid"
	threadElem    = "thread"
	tidElem       = "tid"
	narrativeElem = "narrative"
	errorElem     = "error"
	argElem       = "arg"
)

// The return value appears as up to three sibling nodes carrying typed
// and raw forms of the same field; the first with a non-empty formatted
// value wins.
var returnCandidates = []string{"return-value", "raw-return", "return"}

// Extract flattens the export document into one TraceEvent per row, in
// document order. Rows are never reordered, deduplicated or dropped.
func Extract(root *xmlnode.Node) []TraceEvent {
	idx := xmlnode.BuildIndex(root)

	var events []TraceEvent
	root.Walk(func(n *xmlnode.Node) {
		if n.Name == rowElem {
			events = append(events, extractRow(n, idx))
		}
	})
	return events
}

func extractRow(row *xmlnode.Node, idx xmlnode.Index) TraceEvent {
	ev := TraceEvent{
		Timestamp: xmlnode.FormattedValue(row.Child(startTimeElem), idx),
		Duration:  xmlnode.FormattedValue(row.Child(durationElem), idx),
		Syscall:   NormalizeSyscallName(xmlnode.TextOrFormatted(row.Child(syscallElem), idx)),
		Signature: xmlnode.FormattedValue(row.Child(signatureElem), idx),
	}

	if proc := xmlnode.Resolve(row.Child(processElem), idx); proc != nil {
		ev.Process = proc.Fmt
		if s := xmlnode.TextOrFormatted(proc.Child(pidElem), idx); s != "" {
			if pid, err := strconv.Atoi(s); err == nil {
				ev.Pid = pid
				ev.HasPid = true
			}
		}
	}

	if thread := xmlnode.Resolve(row.Child(threadElem), idx); thread != nil {
		if s := xmlnode.TextOrFormatted(thread.Child(tidElem), idx); s != "" {
			if tid, err := strconv.ParseUint(strings.TrimPrefix(s, "0x"), 16, 64); err == nil {
				ev.Tid = tid
				ev.HasTid = true
			}
		}
	}

	for _, name := range returnCandidates {
		if v := xmlnode.FormattedValue(row.Child(name), idx); v != "" {
			ev.Result = v
			ev.HasResult = true
			break
		}
	}

	// The narrative (and its error child) is frequently absent entirely.
	if nar := xmlnode.Resolve(row.Child(narrativeElem), idx); nar != nil {
		ev.ErrLabel = xmlnode.TextOrFormatted(nar.Child(errorElem), idx)
	}

	for _, a := range row.ChildrenNamed(argElem) {
		if v := xmlnode.FormattedValue(a, idx); v != "" {
			ev.Args = append(ev.Args, v)
		}
	}

	return ev
}

// NormalizeSyscallName strips the two-letter uppercase class marker the
// tool prefixes onto names to distinguish BSD-layer calls from Mach
// traps. The marker carries no display meaning and must be removed
// before any lookup, decoding or display.
func NormalizeSyscallName(name string) string {
	if len(name) >= 3 && name[2] == '_' &&
		name[0] >= 'A' && name[0] <= 'Z' &&
		name[1] >= 'A' && name[1] <= 'Z' {
		return name[3:]
	}
	return name
}
