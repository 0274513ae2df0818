package datekit

import (
	"errors"
	"math"
	"time"

	"github.com/sporadisk/datekit/format"
)

var (
	ErrInvalidInstant = errors.New("invalid instant")
	ErrInvalidRange   = errors.New("end is before start")
	ErrSpanOverflow   = errors.New("span exceeds time.Duration range")
)

// TimeSpanToString renders the time elapsed between start and end as
// "HH:mm:ss.sss". Hours are not capped at 24 and grow past two digits when
// the span is long enough.
func TimeSpanToString(start, end Instant) (string, error) {
	ms, err := SpanMillis(start, end)
	if err != nil {
		return "", err
	}
	return format.Clock(ms), nil
}

// SpanMillis returns the number of milliseconds from start to end.
func SpanMillis(start, end Instant) (int64, error) {
	if !start.Valid() || !end.Valid() {
		return 0, ErrInvalidInstant
	}

	ms := end.UnixMilli() - start.UnixMilli()
	if ms < 0 {
		return 0, ErrInvalidRange
	}
	return ms, nil
}

// Span returns the elapsed time between start and end in whole milliseconds.
// Spans longer than a time.Duration can hold return ErrSpanOverflow; use
// SpanMillis for those.
func Span(start, end Instant) (time.Duration, error) {
	ms, err := SpanMillis(start, end)
	if err != nil {
		return 0, err
	}
	if ms > math.MaxInt64/int64(time.Millisecond) {
		return 0, ErrSpanOverflow
	}
	return time.Duration(ms) * time.Millisecond, nil
}
