package datekit

import "time"

const (
	isoMilliLayout = "2006-01-02T15:04:05.000Z07:00"
	invalidString  = "Invalid Date"
)

// Instant is a point in time with millisecond precision, normalized to UTC.
// The zero value is the invalid instant: the parsers return it when the input
// cannot be read, and callers are expected to check Valid.
type Instant struct {
	t     time.Time
	valid bool
}

// Invalid returns the sentinel instant.
func Invalid() Instant {
	return Instant{}
}

// At converts t to an Instant. Precision below one millisecond is dropped.
func At(t time.Time) Instant {
	return FromUnixMilli(t.UnixMilli())
}

func FromUnixMilli(ms int64) Instant {
	return Instant{t: time.UnixMilli(ms).UTC(), valid: true}
}

// Date builds a UTC instant from calendar fields. Out-of-range values are
// normalized the way time.Date does it (month 13 is January of the next year).
func Date(year int, month time.Month, day, hour, min, sec, msec int) Instant {
	return At(time.Date(year, month, day, hour, min, sec, msec*int(time.Millisecond), time.UTC))
}

func (in Instant) Valid() bool {
	return in.valid
}

// Time returns the UTC time of the instant, or the zero time.Time if the
// instant is invalid.
func (in Instant) Time() time.Time {
	return in.t
}

func (in Instant) UnixMilli() int64 {
	if !in.valid {
		return 0
	}
	return in.t.UnixMilli()
}

func (in Instant) Year() int {
	return in.t.Year()
}

func (in Instant) Hour() int {
	return in.t.Hour()
}

func (in Instant) Minute() int {
	return in.t.Minute()
}

func (in Instant) Equal(other Instant) bool {
	if in.valid != other.valid {
		return false
	}
	return in.t.Equal(other.t)
}

// String renders the instant as ISO 8601 extended format with milliseconds,
// e.g. "2016-01-19T08:07:37.000Z".
func (in Instant) String() string {
	if !in.valid {
		return invalidString
	}
	return in.t.Format(isoMilliLayout)
}
