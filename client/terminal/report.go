package terminal

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/sporadisk/datekit/format"
	"github.com/sporadisk/datekit/report"
)

var (
	ErrInvalidInput = errors.New("invalid input")
)

// OutputReport prints the report. It returns ErrInvalidInput after printing
// when any result failed.
func (c *Client) OutputReport(rep report.Report) error {
	outStr, err := c.Report(rep)
	fmt.Fprint(c.Out, outStr)
	return err
}

func (c *Client) Report(rep report.Report) (string, error) {
	var sb strings.Builder

	sb.WriteString("\n- Report / " + c.Now().Format("15:04") + " -\n")

	if len(rep.Results) == 0 {
		sb.WriteString("No date directives found.\n")
	}

	for i := range rep.Results {
		res := &rep.Results[i]
		sb.WriteString(fmt.Sprintf(" %3d  %-8s %s => %s\n", res.LineNumber, res.Action, res.Input, c.Value(res)))
	}

	if len(rep.Warnings) > 0 {
		sb.WriteString("\nWarnings:\n")
		for i, w := range rep.Warnings {
			sb.WriteString(fmt.Sprintf(" %d - %s\n", i+1, w))
		}
	}

	if failures := rep.Failures(); failures > 0 {
		sb.WriteString(fmt.Sprintf("\n%d of %d directives failed.\n", failures, len(rep.Results)))
		return sb.String(), ErrInvalidInput
	}

	return sb.String(), nil
}

// Value renders the outcome of a single result.
func (c *Client) Value(res *report.Result) string {
	switch {
	case res.Failed():
		return "error: " + res.Err.Error()
	case res.Instant != nil:
		return format.Instant(res.Instant.Time(), c.InstantLayout)
	case res.Leap != nil:
		return strconv.FormatBool(*res.Leap)
	case res.Span != nil:
		return format.Millis(*res.Span, res.SpanFormat)
	case res.Angle != nil:
		return c.angle(*res.Angle)
	default:
		return "-"
	}
}

func (c *Client) angle(rad float64) string {
	if c.AngleUnit == AngleDegrees {
		deg := math.Round(rad*180/math.Pi*1e6) / 1e6
		return strconv.FormatFloat(deg, 'f', -1, 64) + "°"
	}
	return strconv.FormatFloat(rad, 'f', -1, 64)
}
