package evaluator

import (
	"errors"
	"fmt"
	"strings"

	"github.com/sporadisk/datekit"
	"github.com/sporadisk/datekit/format"
	"github.com/sporadisk/datekit/report"
	"github.com/sporadisk/datekit/sheet"
)

var (
	ErrUnparseable   = errors.New("unparseable date")
	ErrUnknownAction = errors.New("unknown action")
	ErrOperands      = errors.New("wrong number of operands")
)

// Evaluate runs every entry of the sheet. A "format" entry changes the
// duration format for the entries after it.
func (e *Evaluator) Evaluate(s sheet.Sheet) report.Report {
	rep := report.Report{
		Warnings: append([]string{}, s.Warnings...),
	}
	timeFormat := e.TimeFormat

	for _, entry := range s.Entries {
		if entry.Action == sheet.ActionOutputFormat {
			if len(entry.Operands) != 1 {
				rep.Warnings = append(rep.Warnings, fmt.Sprintf("format on line %d: %s", entry.LineNumber, ErrOperands))
				continue
			}
			err := format.ValidateTimeFormat(entry.Operands[0])
			if err != nil {
				rep.Warnings = append(rep.Warnings, fmt.Sprintf("format on line %d: %s", entry.LineNumber, err))
				continue
			}
			timeFormat = entry.Operands[0]
			continue
		}

		rep.Add(evaluateEntry(entry, timeFormat))
	}

	return rep
}

// EvaluateEntry runs a single date operation with the evaluator's default
// duration format.
func (e *Evaluator) EvaluateEntry(entry sheet.Entry) report.Result {
	return evaluateEntry(entry, e.TimeFormat)
}

// evaluateEntry runs a single date operation. Spans are rendered later, in
// timeFormat.
func evaluateEntry(entry sheet.Entry, timeFormat string) report.Result {
	res := report.Result{
		LineNumber: entry.LineNumber,
		Action:     entry.Action,
		Input:      strings.Join(entry.Operands, " -> "),
	}

	want := 1
	if entry.Action == sheet.ActionSpan {
		want = 2
	}
	if len(entry.Operands) != want {
		res.Err = fmt.Errorf("%w: %s expects %d, got %d", ErrOperands, entry.Action, want, len(entry.Operands))
		return res
	}

	switch entry.Action {
	case sheet.ActionRFC2822:
		res.Instant, res.Err = parsed(datekit.ParseRFC2822, entry.Operands[0])

	case sheet.ActionISO8601:
		res.Instant, res.Err = parsed(datekit.ParseISO8601, entry.Operands[0])

	case sheet.ActionLeap:
		in, err := parsed(datekit.Parse, entry.Operands[0])
		if err != nil {
			res.Err = err
			return res
		}
		leap := datekit.IsLeapYear(*in)
		res.Leap = &leap

	case sheet.ActionSpan:
		start, err := parsed(datekit.Parse, entry.Operands[0])
		if err != nil {
			res.Err = fmt.Errorf("start: %w", err)
			return res
		}
		end, err := parsed(datekit.Parse, entry.Operands[1])
		if err != nil {
			res.Err = fmt.Errorf("end: %w", err)
			return res
		}
		ms, err := datekit.SpanMillis(*start, *end)
		if err != nil {
			res.Err = fmt.Errorf("datekit.SpanMillis: %w", err)
			return res
		}
		res.Span = &ms
		res.SpanFormat = timeFormat

	case sheet.ActionAngle:
		in, err := parsed(datekit.Parse, entry.Operands[0])
		if err != nil {
			res.Err = err
			return res
		}
		angle := datekit.AngleBetweenClockHands(*in)
		res.Angle = &angle

	default:
		res.Err = fmt.Errorf("%w: %q", ErrUnknownAction, entry.Action)
	}

	return res
}

func parsed(parse func(string) datekit.Instant, value string) (*datekit.Instant, error) {
	in := parse(value)
	if !in.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrUnparseable, value)
	}
	return &in, nil
}
