package format

import (
	"fmt"
	"strings"
	"time"

	"github.com/leekchan/timeutil"
)

const (
	// duration formats
	TimeClock = "clock" // HH:mm:ss.sss (default)
	TimeHMS   = "hms"   // hours, minutes and seconds
	TimeHM    = "hm"    // hours and minutes
	TimeM     = "m"     // minutes

	isoLayout = "2006-01-02T15:04:05.000Z07:00"

	msPerSecond = int64(time.Second / time.Millisecond)
	msPerMinute = int64(time.Minute / time.Millisecond)
	msPerHour   = int64(time.Hour / time.Millisecond)
)

// Duration renders d in one of the duration formats. Unknown formats fall
// back to TimeClock.
func Duration(d time.Duration, timeFormat string) string {
	return Millis(d.Milliseconds(), timeFormat)
}

// Millis renders a millisecond count in one of the duration formats. Spans
// between calendar dates can exceed what time.Duration holds (about 292
// years), so they are rendered from milliseconds.
func Millis(ms int64, timeFormat string) string {
	switch timeFormat {
	case TimeM:
		return fmt.Sprintf("%dm", ms/msPerMinute)
	case TimeHM:
		hours, minutes, _, _ := SplitMillis(ms)
		return joinUnits(unit{hours, "h"}, unit{minutes, "m"})
	case TimeHMS:
		hours, minutes, seconds, _ := SplitMillis(ms)
		return joinUnits(unit{hours, "h"}, unit{minutes, "m"}, unit{seconds, "s"})
	default:
		return Clock(ms)
	}
}

// DurationClock renders d as "HH:mm:ss.sss". The hour field is padded to two
// digits but never truncated.
func DurationClock(d time.Duration) string {
	return Clock(d.Milliseconds())
}

// Clock renders a non-negative millisecond count as "HH:mm:ss.sss".
func Clock(ms int64) string {
	hours, minutes, seconds, millis := SplitMillis(ms)
	return fmt.Sprintf("%02d:%02d:%02d.%03d", hours, minutes, seconds, millis)
}

// Split decomposes a non-negative duration into whole hours and the minute,
// second and millisecond remainders. Precision below a millisecond is dropped.
func Split(d time.Duration) (hours, minutes, seconds, millis int64) {
	return SplitMillis(d.Milliseconds())
}

func SplitMillis(ms int64) (hours, minutes, seconds, millis int64) {
	hours = ms / msPerHour
	ms %= msPerHour
	minutes = ms / msPerMinute
	ms %= msPerMinute
	seconds = ms / msPerSecond
	millis = ms % msPerSecond
	return hours, minutes, seconds, millis
}

func DurationM(d time.Duration) string {
	return Millis(d.Milliseconds(), TimeM)
}

func DurationHM(d time.Duration) string {
	return Millis(d.Milliseconds(), TimeHM)
}

func DurationHMS(d time.Duration) string {
	return Millis(d.Milliseconds(), TimeHMS)
}

type unit struct {
	value  int64
	suffix string
}

// joinUnits writes the non-zero units separated by spaces. When every unit
// is zero the smallest one is written, so the result is never empty.
func joinUnits(units ...unit) string {
	var sb strings.Builder
	for _, u := range units {
		if u.value == 0 {
			continue
		}
		if sb.Len() > 0 {
			sb.WriteString(" ")
		}
		sb.WriteString(fmt.Sprintf("%d%s", u.value, u.suffix))
	}

	if sb.Len() == 0 {
		last := units[len(units)-1]
		return "0" + last.suffix
	}
	return sb.String()
}

// Instant renders t with a strftime layout such as "%Y-%m-%d %H:%M:%S".
// An empty layout renders ISO 8601 with milliseconds.
func Instant(t time.Time, layout string) string {
	if layout == "" {
		return t.Format(isoLayout)
	}
	return timeutil.Strftime(&t, layout)
}
