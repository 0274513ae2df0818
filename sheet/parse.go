package sheet

import (
	"strings"
)

const (
	rfc2822PatternRegex = `(?i)^\s*(rfc\s*-?\s*2822)\s*:\s*(.*?)\s*$`
	iso8601PatternRegex = `(?i)^\s*(iso\s*-?\s*8601)\s*:\s*(.*?)\s*$`
	leapPatternRegex    = `(?i)^\s*(leap|leap year)\s*:\s*(.*?)\s*$`
	spanPatternRegex    = `(?i)^\s*(span|timespan)\s*:\s*(.*?)\s*$`
	anglePatternRegex   = `(?i)^\s*(angle|clock)\s*:\s*(.*?)\s*$`
	outputPatternRegex  = `(?i)^\s*(output|format)\s*:\s*(clock|hms|hm|m)\s*$`

	// separates the two dates of a span line
	spanSeparator = "->"
)

// Parse reads a date sheet. Lines that match no directive are ignored, so
// headings, blank lines and notes can be mixed freely with directives.
func (p *Parser) Parse(text string) Sheet {
	p.warnings = []string{}
	lines := strings.Split(text, "\n")
	entries := []Entry{}

	for i, line := range lines {
		valid, entry := p.parseLine(line, i+1)
		if valid {
			entries = append(entries, entry)
		}
	}

	return Sheet{
		Entries:  entries,
		Warnings: p.warnings,
	}
}

func (p *Parser) parseLine(text string, lineNumber int) (valid bool, entry Entry) {
	entry.LineNumber = lineNumber

	// checked before the single-date directives: "format:" must not be taken
	// for anything else
	formatMatches := p.outputPattern.FindStringSubmatch(text)
	if formatMatches != nil {
		entry.Action = ActionOutputFormat
		entry.Command = formatMatches[1]
		entry.Operands = []string{strings.ToLower(formatMatches[2])}
		return true, entry
	}

	singleDate := []struct {
		action  string
		matches []string
	}{
		{ActionRFC2822, p.rfc2822Pattern.FindStringSubmatch(text)},
		{ActionISO8601, p.iso8601Pattern.FindStringSubmatch(text)},
		{ActionLeap, p.leapPattern.FindStringSubmatch(text)},
		{ActionAngle, p.anglePattern.FindStringSubmatch(text)},
	}

	for _, sd := range singleDate {
		if sd.matches == nil {
			continue
		}
		if sd.matches[2] == "" {
			p.addWarningf("%q on line %d has no date", sd.matches[1], lineNumber)
			return false, Entry{}
		}
		entry.Action = sd.action
		entry.Command = sd.matches[1]
		entry.Operands = []string{sd.matches[2]}
		return true, entry
	}

	spanMatches := p.spanPattern.FindStringSubmatch(text)
	if spanMatches != nil {
		start, end, ok := splitSpan(spanMatches[2])
		if !ok {
			p.addWarningf("%q on line %d needs two dates separated by %q, got %#v", spanMatches[1], lineNumber, spanSeparator, spanMatches[2])
			return false, Entry{}
		}
		entry.Action = ActionSpan
		entry.Command = spanMatches[1]
		entry.Operands = []string{start, end}
		return true, entry
	}

	return false, Entry{}
}

func splitSpan(s string) (start, end string, ok bool) {
	parts := strings.Split(s, spanSeparator)
	if len(parts) != 2 {
		return "", "", false
	}

	start = strings.TrimSpace(parts[0])
	end = strings.TrimSpace(parts[1])
	if start == "" || end == "" {
		return "", "", false
	}
	return start, end, true
}
