package timespec

import (
	"slices"
	"time"
)

// Target returns the time at which the wait for the TimeSpec ends. For an
// Absolute TimeSpec this is the first time after now that the local clock
// shows the time of day, which is either today or tomorrow. When the clocks
// go back the time of day can occur twice; the earlier occurrence is used
// if it has not yet passed.
func Target(ts TimeSpec, now time.Time) time.Time {
	if ts.Kind == Relative {
		return now.Add(time.Duration(ts.Seconds()) * time.Second)
	}

	var target time.Time

	for day := range 2 {
		d := time.Date(now.Year(), now.Month(), now.Day()+day,
			12, 0, 0, 0, now.Location())
		for _, target = range instantsOn(d, ts) {
			if target.After(now) {
				return target
			}
		}
	}

	return target
}

// instantsOn returns, in order, the instants on the date of d at which the
// clock in d's location shows the time of day given by the TimeSpec. There
// may be two of these when the clocks go back.
func instantsOn(d time.Time, ts TimeSpec) []time.Time {
	t := time.Date(d.Year(), d.Month(), d.Day(),
		ts.Hour, ts.Minute, ts.Second, 0, d.Location())
	instants := []time.Time{t}

	_, tOff := t.Zone()

	for _, near := range []time.Duration{-12 * time.Hour, 12 * time.Hour} {
		_, off := t.Add(near).Zone()
		if off == tOff {
			continue
		}

		alt := t.Add(time.Duration(tOff-off) * time.Second)
		if alt.Equal(t) || alt.Day() != t.Day() {
			continue
		}

		if h, m, s := alt.Clock(); h == ts.Hour &&
			m == ts.Minute &&
			s == ts.Second {
			instants = append(instants, alt)
		}
	}

	slices.SortFunc(instants, func(a, b time.Time) int { return a.Compare(b) })

	return slices.CompactFunc(instants, time.Time.Equal)
}

// Wait returns the number of whole seconds to wait from now until the time
// given by the TimeSpec. Any fraction of a second is discarded. A Relative
// TimeSpec gives the same wait whatever the value of now.
func Wait(ts TimeSpec, now time.Time) int64 {
	if ts.Kind == Relative {
		return ts.Seconds()
	}

	return int64(Target(ts, now).Sub(now) / time.Second)
}
