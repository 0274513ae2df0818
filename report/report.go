package report

import "github.com/sporadisk/datekit"

// Result is the outcome of evaluating one sheet entry. Exactly one of the
// value fields is set, matching Action, unless Err is set.
type Result struct {
	LineNumber int
	Action     string
	Input      string

	Instant    *datekit.Instant
	Leap       *bool
	Span       *int64 // milliseconds
	SpanFormat string // duration format in effect when the span was evaluated
	Angle      *float64

	Err error
}

func (r *Result) Failed() bool {
	return r.Err != nil
}

type Report struct {
	Results  []Result
	Warnings []string
}

func (rep *Report) Add(res Result) {
	rep.Results = append(rep.Results, res)
}

// Failures counts the results that could not be evaluated.
func (rep *Report) Failures() int {
	n := 0
	for i := range rep.Results {
		if rep.Results[i].Failed() {
			n++
		}
	}
	return n
}

type Output interface {
	OutputReport(rep Report) error
}
