package timesync

import (
	"strconv"
	"strings"
	"time"
)

// Converter handles conversion from trace-relative timestamps to
// wall-clock time.
type Converter struct {
	base time.Time
}

// NewConverter creates a converter anchored at the recording start time.
func NewConverter(base time.Time) *Converter {
	return &Converter{base: base}
}

// Base returns the recording start time used for conversions.
func (c *Converter) Base() time.Time {
	return c.base
}

// EventTime converts a seconds.milliseconds timestamp string to
// wall-clock time. An unparseable timestamp yields the base time.
func (c *Converter) EventTime(timestamp string) time.Time {
	secs, err := strconv.ParseFloat(timestamp, 64)
	if err != nil {
		return c.base
	}
	return c.base.Add(time.Duration(secs * float64(time.Second)))
}

// EventDuration parses a formatted duration such as "1.04 ms" or
// "875.00 µs". Unparseable durations yield zero.
func (c *Converter) EventDuration(duration string) time.Duration {
	s := strings.TrimSpace(duration)
	if s == "" {
		return 0
	}

	unit := time.Nanosecond
	for _, u := range []struct {
		suffix string
		d      time.Duration
	}{
		{"ns", time.Nanosecond},
		{"µs", time.Microsecond},
		{"us", time.Microsecond},
		{"ms", time.Millisecond},
		{"s", time.Second},
	} {
		if strings.HasSuffix(s, u.suffix) {
			unit = u.d
			s = strings.TrimSpace(strings.TrimSuffix(s, u.suffix))
			break
		}
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return time.Duration(v * float64(unit))
}
