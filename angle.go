package datekit

import "math"

// AngleBetweenClockHands returns the smaller angle, in radians, between the
// hour and the minute hand of a 12-hour analog clock showing the UTC time of
// in. The hour hand advances continuously with the minutes. The result is in
// [0, π]; the invalid instant yields NaN.
func AngleBetweenClockHands(in Instant) float64 {
	if !in.Valid() {
		return math.NaN()
	}

	minutes := float64(in.Minute())
	hours := float64(in.Hour()%12) + minutes/60

	// fraction of a full turn
	hourHand := hours / 12
	minuteHand := minutes / 60

	angle := math.Abs(hourHand-minuteHand) * 2 * math.Pi
	if angle > math.Pi {
		angle = 2*math.Pi - angle
	}
	return angle
}
