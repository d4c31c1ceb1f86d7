package prim

import (
	"math"
	"time"
)

// unixToInternal is the offset between the Unix epoch and the zero Time,
// in seconds. Time stores seconds since year 1 in an int64.
const unixToInternal int64 = (1969*365 + 1969/4 - 1969/100 + 1969/400) * 86400

// AddTime returns t+d, failing when the result leaves the range of Time.
func AddTime(t time.Time, d time.Duration) (time.Time, bool) {
	if !shiftFits(t, int64(d/time.Second), int64(d%time.Second)) {
		return time.Time{}, false
	}

	return t.Add(d), true
}

// SubTime returns t-d, failing when the result leaves the range of Time.
func SubTime(t time.Time, d time.Duration) (time.Time, bool) {
	if !shiftFits(t, -int64(d/time.Second), -int64(d%time.Second)) {
		return time.Time{}, false
	}
	if d == math.MinInt64 {
		return t.Add(math.MaxInt64).Add(1), true
	}

	return t.Add(-d), true
}

func shiftFits(t time.Time, sec, nsec int64) bool {
	nsec += int64(t.Nanosecond())
	switch {
	case nsec >= int64(time.Second):
		sec++
	case nsec < 0:
		sec--
	}

	unix, ok := Add(t.Unix(), sec)
	if !ok {
		return false
	}

	_, ok = Add(unix, unixToInternal)
	return ok
}
