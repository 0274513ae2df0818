package datekit

import (
	"net/mail"
	"regexp"
	"strings"
	"time"
)

// Loose forms accepted by ParseRFC2822 once the RFC 2822 grammar has
// rejected the input. Zone-less layouts are read as UTC.
var looseLayouts = []string{
	"Mon, 2 Jan 2006 15:04:05",
	"Mon, 2 Jan 2006 15:04",
	"Mon, 2 Jan 06 15:04:05",
	"2 Jan 2006 15:04:05",
	"2 Jan 2006 15:04",
	"January 2, 2006 15:04:05",
	"January 2, 2006 15:04:05 MST",
	"January 2, 2006 15:04:05 -0700",
	"January 2, 2006 15:04",
	"January 2, 2006",
	"Monday, January 2, 2006 15:04:05",
	"Jan 2, 2006 15:04:05",
	"Jan 2, 2006 15:04",
	"Jan 2, 2006",
	"2 January 2006 15:04:05",
	"2 January 2006",
}

// ISO 8601 extended forms, most specific first. Fractional seconds are
// accepted by time.Parse after any seconds field.
var isoLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05Z0700",
	"2006-01-02 15:04:05Z07:00",
	"2006-01-02T15:04Z07:00",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02",
}

// "GMT+01", "UTC-0530", "GMT+1:30"
var gmtOffsetPattern = regexp.MustCompile(`(?i)\s*\b(?:GMT|UTC|UT)\s*([+-])(\d{1,2})(?::?(\d{2}))?\s*$`)

var obsoleteZonePattern = regexp.MustCompile(`(?i)\s+(UT|UTC|GMT|EST|EDT|CST|CDT|MST|MDT|PST|PDT)\s*$`)

// RFC 2822 section 4.3 obsolete zone names.
var obsoleteZones = map[string]string{
	"UT":  "+0000",
	"UTC": "+0000",
	"GMT": "+0000",
	"EST": "-0500",
	"EDT": "-0400",
	"CST": "-0600",
	"CDT": "-0500",
	"MST": "-0700",
	"MDT": "-0600",
	"PST": "-0800",
	"PDT": "-0700",
}

// ParseRFC2822 parses a date in RFC 2822 section 3.3 syntax, such as
// "Tue, 26 Jan 2016 13:48:02 GMT". The weekday and the seconds are optional,
// the zone may be numeric ("+0100"), named ("GMT", "EST") or written as a GMT
// offset ("GMT+01"). The natural form "December 17, 1995 03:24:00" is
// accepted as well.
//
// An unparseable value yields the invalid instant.
func ParseRFC2822(value string) Instant {
	value = normalizeZone(strings.TrimSpace(value))
	if value == "" {
		return Invalid()
	}

	t, err := mail.ParseDate(value)
	if err == nil {
		return At(t)
	}

	return parseLayouts(value, looseLayouts)
}

// ParseISO8601 parses an ISO 8601 extended date-time such as
// "2016-01-19T16:07:37+00:00" or "2016-01-19T08:07:37Z". Values without a
// zone designator, including date-only values, are read as UTC.
//
// An unparseable value yields the invalid instant.
func ParseISO8601(value string) Instant {
	value = strings.TrimSpace(value)
	if value == "" {
		return Invalid()
	}
	return parseLayouts(value, isoLayouts)
}

// Parse tries ISO 8601 first and falls back to RFC 2822.
func Parse(value string) Instant {
	in := ParseISO8601(value)
	if in.Valid() {
		return in
	}
	return ParseRFC2822(value)
}

func parseLayouts(value string, layouts []string) Instant {
	for _, layout := range layouts {
		t, err := time.ParseInLocation(layout, value, time.UTC)
		if err == nil {
			return At(t)
		}
	}
	return Invalid()
}

// normalizeZone rewrites a trailing GMT offset or obsolete zone name into
// the numeric zone form: "GMT+01" becomes "+0100", "EST" becomes "-0500".
func normalizeZone(value string) string {
	m := gmtOffsetPattern.FindStringSubmatchIndex(value)
	if m == nil {
		zm := obsoleteZonePattern.FindStringSubmatchIndex(value)
		if zm == nil {
			return value
		}
		zone := obsoleteZones[strings.ToUpper(value[zm[2]:zm[3]])]
		return value[:zm[0]] + " " + zone
	}

	sign := value[m[2]:m[3]]
	hours := value[m[4]:m[5]]
	if len(hours) == 1 {
		hours = "0" + hours
	}
	minutes := "00"
	if m[6] >= 0 {
		minutes = value[m[6]:m[7]]
	}

	return value[:m[0]] + " " + sign + hours + minutes
}
