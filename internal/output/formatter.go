package output

import (
	"fmt"
	"strings"

	"sctrace/internal/extract"
	"sctrace/internal/syscalls"
)

// Palette holds the ANSI codes for one rendering mode. Color is
// all-or-nothing: either every code of the fixed palette or every code
// empty, never a partial mix.
type Palette struct {
	Timestamp string
	Duration  string
	Process   string
	Bold      string
	Red       string
	Dim       string
	Reset     string
}

// ColorPalette is the fixed styling used on terminals.
var ColorPalette = Palette{
	Timestamp: "\x1b[90m",
	Duration:  "\x1b[33m",
	Process:   "\x1b[36m",
	Bold:      "\x1b[1m",
	Red:       "\x1b[31m",
	Dim:       "\x1b[2m",
	Reset:     "\x1b[0m",
}

// PlainPalette renders without any escape codes.
var PlainPalette = Palette{}

// The tool sometimes attaches an errno-shaped label to calls that did not
// fail. Labels starting with one of these are not real errors.
var benignErrorLabels = []string{
	"success",
	"unknown",
	"reachable",
	"operation not supported",
}

// RealError reports whether an error label marks an actual failure.
func RealError(label string) bool {
	if label == "" {
		return false
	}
	l := strings.ToLower(label)
	for _, benign := range benignErrorLabels {
		if strings.HasPrefix(l, benign) {
			return false
		}
	}
	return true
}

// Formatter renders trace events as single strace-like lines.
type Formatter struct {
	pal Palette
}

// NewFormatter creates a line formatter. With color enabled the full
// fixed palette is used.
func NewFormatter(color bool) *Formatter {
	pal := PlainPalette
	if color {
		pal = ColorPalette
	}
	return &Formatter{pal: pal}
}

// maxProcessName bounds the process label inside the process/pid column.
const maxProcessName = 10

// Render composes one line: timestamp, duration, process/pid, syscall
// name, decoded arguments and decoded result. Never fails; events it
// cannot fully interpret degrade to their most literal representation.
func (f *Formatter) Render(ev *extract.TraceEvent) string {
	p := f.pal
	var b strings.Builder

	// Seconds-truncated timestamp, right-aligned.
	ts := ev.Timestamp
	if i := strings.IndexByte(ts, '.'); i >= 0 {
		ts = ts[:i]
	}
	b.WriteString(p.Timestamp)
	fmt.Fprintf(&b, "%6s", ts)
	b.WriteString(p.Reset)

	b.WriteString(" ")
	b.WriteString(p.Duration)
	fmt.Fprintf(&b, "%9s", ev.Duration)
	b.WriteString(p.Reset)

	proc := ev.Process
	if len(proc) > maxProcessName {
		proc = proc[:maxProcessName]
	}
	label := proc
	if ev.HasPid {
		label = fmt.Sprintf("%s/%d", proc, ev.Pid)
	}
	b.WriteString(" ")
	b.WriteString(p.Process)
	fmt.Fprintf(&b, "%-16s", label)
	b.WriteString(p.Reset)

	isErr := RealError(ev.ErrLabel)

	name := ev.Syscall
	if name == "" {
		name = "<unknown>"
	}
	b.WriteString(" ")
	b.WriteString(p.Bold)
	if isErr {
		b.WriteString(p.Red)
	}
	b.WriteString(name)
	b.WriteString(p.Reset)

	parts := syscalls.DecodeArgs(ev.Syscall, ev.Args)
	b.WriteString(p.Dim + "(" + p.Reset)
	for i, part := range parts {
		if i > 0 {
			b.WriteString(p.Dim + "," + p.Reset + " ")
		}
		b.WriteString(part)
	}
	b.WriteString(p.Dim + ")" + p.Reset)

	if ev.HasResult {
		res := syscalls.FormatResult(ev.Syscall, ev.Result, isErr)
		if isErr {
			b.WriteString(" " + p.Red + "= " + res + " " + ev.ErrLabel + p.Reset)
		} else {
			b.WriteString(" " + p.Dim + "= " + res + p.Reset)
		}
	}

	return strings.TrimRight(b.String(), " \t")
}
