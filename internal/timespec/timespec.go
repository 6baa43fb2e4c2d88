package timespec

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/nickwells/tempus.mod/tempus"
)

// Kind records whether a TimeSpec is a time of day or an offset from now
type Kind int

const (
	Absolute Kind = iota
	Relative
)

// RelativeMarker is the prefix which marks a time specification as an offset
// from the current time rather than a time of day
const RelativeMarker = "+"

const (
	minutesLayout = "15:04"
	secondsLayout = "15:04:05"
)

// ErrBadTimeSpec is wrapped by every error returned by Parse
var ErrBadTimeSpec = errors.New("invalid time format")

// TimeSpec holds a parsed time specification. HasSeconds records whether
// the seconds were given explicitly; if not the Second field is zero.
type TimeSpec struct {
	Kind       Kind
	Hour       int
	Minute     int
	Second     int
	HasSeconds bool
}

// String returns the time specification in the form it would be given on
// the command line
func (ts TimeSpec) String() string {
	s := fmt.Sprintf("%02d:%02d", ts.Hour, ts.Minute)
	if ts.HasSeconds {
		s += fmt.Sprintf(":%02d", ts.Second)
	}

	if ts.Kind == Relative {
		return RelativeMarker + s
	}

	return s
}

// Seconds returns the number of seconds from midnight to the time of day
// held in the TimeSpec
func (ts TimeSpec) Seconds() int64 {
	return int64(ts.Hour)*tempus.SecondsPerHour +
		int64(ts.Minute)*tempus.SecondsPerMinute +
		int64(ts.Second)
}

// Parse converts the string into a TimeSpec. A leading RelativeMarker makes
// the TimeSpec Relative. The remainder is parsed as "HH:MM:SS" if it is
// longer than "HH:MM" and as "HH:MM" otherwise; there is no fallback from
// one form to the other. Every field must have exactly two digits. Any
// error returned wraps ErrBadTimeSpec.
func Parse(s string) (TimeSpec, error) {
	ts := TimeSpec{Kind: Absolute}

	tod := s
	if rest, ok := strings.CutPrefix(s, RelativeMarker); ok {
		ts.Kind = Relative
		tod = rest
	}

	layout, form := minutesLayout, "HH:MM"
	if len(tod) > len(minutesLayout) {
		layout, form = secondsLayout, "HH:MM:SS"
		ts.HasSeconds = true
	}

	if ts.Kind == Relative {
		form = RelativeMarker + form
	}

	// time.Parse will silently accept fractional seconds
	if strings.ContainsAny(tod, ".,") {
		return TimeSpec{},
			fmt.Errorf("%w: %q: fractional seconds are not allowed",
				ErrBadTimeSpec, s)
	}

	// time.Parse will accept a single digit hour
	if len(tod) != len(layout) {
		return TimeSpec{},
			fmt.Errorf("%w: %q is not of the form %s", ErrBadTimeSpec, s, form)
	}

	t, err := time.Parse(layout, tod)
	if err != nil {
		return TimeSpec{},
			fmt.Errorf("%w: %q is not of the form %s", ErrBadTimeSpec, s, form)
	}

	ts.Hour, ts.Minute, ts.Second = t.Clock()

	return ts, nil
}
