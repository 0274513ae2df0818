package parameter

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
)

// Validate matches param against validOptions, ignoring case and surrounding
// whitespace, and returns the canonical option.
func Validate(param string, validOptions []string) (string, error) {
	cleanParam := Clean(param)

	for _, option := range validOptions {
		if cleanParam == fold(option) {
			return option, nil
		}
	}

	validParamStr := strings.Join(validOptions, ", ")
	return "", fmt.Errorf("invalid param %q: Expected one of: %s", cleanParam, validParamStr)
}

// ValidateOr returns def when param is empty, and validates it otherwise.
func ValidateOr(param, def string, validOptions []string) (string, error) {
	if Clean(param) == "" {
		return def, nil
	}
	return Validate(param, validOptions)
}

func Clean(param string) string {
	return fold(strings.TrimSpace(param))
}

// Casers keep state between calls, so each call gets its own.
func fold(s string) string {
	return cases.Fold().String(s)
}
