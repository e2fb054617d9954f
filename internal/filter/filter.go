// Package filter evaluates user-supplied event filter expressions.
package filter

import (
	"fmt"

	"sctrace/internal/extract"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

// Filter is a compiled event predicate.
type Filter struct {
	source string
	prog   *vm.Program
}

// Compile pre-compiles a filter expression. The expression sees the
// fields of one event: syscall, process, pid, tid, args, result, error
// and timestamp.
func Compile(expression string) (*Filter, error) {
	prog, err := expr.Compile(expression,
		expr.Env(eventEnv(&extract.TraceEvent{})),
		expr.AsBool(),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to compile filter expression %q: %w", expression, err)
	}
	return &Filter{source: expression, prog: prog}, nil
}

// Match reports whether an event satisfies the filter. Evaluation
// failures keep the event rather than dropping it.
func (f *Filter) Match(ev *extract.TraceEvent) bool {
	out, err := expr.Run(f.prog, eventEnv(ev))
	if err != nil {
		return true
	}
	keep, ok := out.(bool)
	if !ok {
		return true
	}
	return keep
}

// Source returns the original expression text.
func (f *Filter) Source() string {
	return f.source
}

func eventEnv(ev *extract.TraceEvent) map[string]interface{} {
	return map[string]interface{}{
		"syscall":   ev.Syscall,
		"process":   ev.Process,
		"pid":       ev.Pid,
		"tid":       ev.Tid,
		"args":      ev.Args,
		"result":    ev.Result,
		"error":     ev.ErrLabel,
		"timestamp": ev.Timestamp,
	}
}
