package datekit

import "time"

// daysInMonth is the number of days for non-leap years in each calendar month starting at 1
var daysInMonth = [...]int{0, 31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

// IsLeapYear reports whether the UTC calendar year of in is a Gregorian leap
// year. The invalid instant is never in a leap year.
func IsLeapYear(in Instant) bool {
	if !in.Valid() {
		return false
	}
	return IsLeap(in.Year())
}

// IsLeap applies the Gregorian rule: every fourth year, except centuries not
// divisible by 400.
func IsLeap(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

func DaysIn(m time.Month, year int) int {
	if m < time.January || m > time.December {
		return 0
	}
	if m == time.February && IsLeap(year) {
		return 29
	}
	return daysInMonth[int(m)]
}
