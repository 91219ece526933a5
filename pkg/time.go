// Package pkg contains small shared helpers.
package pkg

import (
	"strconv"
	"strings"
	"time"
)

type timeUnit struct {
	ShortName string
	Value     time.Duration
}

// Units from largest to smallest, used by the formatter below.
var units = []timeUnit{
	{ShortName: "d", Value: 24 * time.Hour},
	{ShortName: "h", Value: time.Hour},
	{ShortName: "m", Value: time.Minute},
	{ShortName: "s", Value: time.Second},
	{ShortName: "ms", Value: time.Millisecond},
	{ShortName: "μs", Value: time.Microsecond},
	{ShortName: "ns", Value: time.Nanosecond},
}

// SmartDurationFormat renders a duration compactly: sub-second values use a
// single unit (ms/μs/ns), longer values use at most the two largest units
// (e.g. "1m30s", "2h5m").
func SmartDurationFormat(d time.Duration) string {
	if d == 0 {
		return "0"
	}
	if d < time.Second {
		if d >= time.Millisecond {
			return strconv.FormatInt(d.Milliseconds(), 10) + "ms"
		}
		if d >= time.Microsecond {
			return strconv.FormatInt(d.Microseconds(), 10) + "μs"
		}
		return strconv.FormatInt(d.Nanoseconds(), 10) + "ns"
	}

	var b strings.Builder
	remaining := d
	parts := 0
	for _, u := range units {
		if remaining < u.Value {
			continue
		}
		count := remaining / u.Value
		b.WriteString(strconv.FormatInt(int64(count), 10))
		b.WriteString(u.ShortName)
		remaining %= u.Value
		parts++
		if parts == 2 || remaining == 0 {
			break
		}
	}
	return b.String()
}
