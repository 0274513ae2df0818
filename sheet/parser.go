package sheet

import (
	"fmt"
	"regexp"
)

type Parser struct {
	rfc2822Pattern *regexp.Regexp
	iso8601Pattern *regexp.Regexp
	leapPattern    *regexp.Regexp
	spanPattern    *regexp.Regexp
	anglePattern   *regexp.Regexp
	outputPattern  *regexp.Regexp
	warnings       []string
}

func (p *Parser) Init() error {
	rfc2822Pattern, err := regexp.Compile(rfc2822PatternRegex)
	if err != nil {
		return fmt.Errorf("failed to compile rfc2822 pattern: %w", err)
	}
	p.rfc2822Pattern = rfc2822Pattern

	iso8601Pattern, err := regexp.Compile(iso8601PatternRegex)
	if err != nil {
		return fmt.Errorf("failed to compile iso8601 pattern: %w", err)
	}
	p.iso8601Pattern = iso8601Pattern

	leapPattern, err := regexp.Compile(leapPatternRegex)
	if err != nil {
		return fmt.Errorf("failed to compile leap pattern: %w", err)
	}
	p.leapPattern = leapPattern

	spanPattern, err := regexp.Compile(spanPatternRegex)
	if err != nil {
		return fmt.Errorf("failed to compile span pattern: %w", err)
	}
	p.spanPattern = spanPattern

	anglePattern, err := regexp.Compile(anglePatternRegex)
	if err != nil {
		return fmt.Errorf("failed to compile angle pattern: %w", err)
	}
	p.anglePattern = anglePattern

	outputPattern, err := regexp.Compile(outputPatternRegex)
	if err != nil {
		return fmt.Errorf("failed to compile format pattern: %w", err)
	}
	p.outputPattern = outputPattern

	p.warnings = []string{}
	return nil
}

func (p *Parser) addWarning(w string) {
	p.warnings = append(p.warnings, w)
}

func (p *Parser) addWarningf(format string, v ...any) {
	p.addWarning(fmt.Sprintf(format, v...))
}
