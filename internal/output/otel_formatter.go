package output

import (
	"context"
	"strconv"
	"strings"

	"sctrace/internal/extract"
	"sctrace/internal/syscalls"
	"sctrace/internal/timesync"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// OTELFormatter emits one OpenTelemetry span per trace event.
type OTELFormatter struct {
	tracer trace.Tracer
	conv   *timesync.Converter
}

// NewOTELFormatter creates a span formatter anchored at the recording
// start time held by the converter.
func NewOTELFormatter(tracer trace.Tracer, conv *timesync.Converter) *OTELFormatter {
	return &OTELFormatter{
		tracer: tracer,
		conv:   conv,
	}
}

// HandleEvent creates and ends a span for one event. Span start is the
// converted event timestamp; span end adds the parsed duration.
func (f *OTELFormatter) HandleEvent(ev *extract.TraceEvent) error {
	name := ev.Syscall
	if name == "" {
		name = "unknown"
	}

	startTime := f.conv.EventTime(ev.Timestamp)

	_, span := f.tracer.Start(context.Background(), "syscall."+name,
		trace.WithSpanKind(trace.SpanKindInternal),
		trace.WithTimestamp(startTime),
	)

	attrs := []attribute.KeyValue{
		attribute.String("syscall.name", name),
		attribute.String("syscall.args", syscalls.Decode(ev.Syscall, ev.Args)),
	}
	if ev.HasPid {
		attrs = append(attrs,
			attribute.Int("process.pid", ev.Pid),
			attribute.String("process.name", ev.Process),
		)
	}
	if ev.HasTid {
		attrs = append(attrs, attribute.String("thread.id", "0x"+strconv.FormatUint(ev.Tid, 16)))
	}

	isErr := RealError(ev.ErrLabel)
	if ev.HasResult {
		attrs = append(attrs, attribute.String("syscall.result", syscalls.FormatResult(ev.Syscall, ev.Result, isErr)))
	}

	if isErr {
		// The label leads with the errno name ("ENOENT no such file...").
		if errnoName, _, _ := strings.Cut(ev.ErrLabel, " "); errnoName != "" {
			if code, ok := syscalls.ErrnoCode(errnoName); ok {
				attrs = append(attrs,
					attribute.Int64("syscall.errno", int64(code)),
					attribute.String("syscall.errno_name", errnoName),
				)
			}
		}
		span.SetStatus(codes.Error, ev.ErrLabel)
	}

	span.SetAttributes(attrs...)
	span.End(trace.WithTimestamp(startTime.Add(f.conv.EventDuration(ev.Duration))))

	return nil
}
