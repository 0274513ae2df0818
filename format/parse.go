package format

import (
	"strings"
	"time"
	"unicode"
)

// ParseDuration accepts Go duration strings with embedded spaces, "1h 20m".
func ParseDuration(d string) (time.Duration, error) {
	return time.ParseDuration(RemoveSpaces(d))
}

func RemoveSpaces(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, rune := range s {
		if !unicode.IsSpace(rune) {
			b.WriteRune(rune)
		}
	}
	return b.String()
}
