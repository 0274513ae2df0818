package format

import (
	"fmt"
	"strings"
)

var validTimeFormats = []string{
	TimeClock, TimeHMS, TimeHM, TimeM,
}

func ValidateTimeFormat(format string) error {
	for _, vf := range validTimeFormats {
		if format == vf {
			return nil
		}
	}

	return fmt.Errorf("invalid time format %q - Valid formats: %s", format, strings.Join(validTimeFormats, ", "))
}
