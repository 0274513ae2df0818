package evaluator

import (
	"bytes"
	"context"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sporadisk/datekit"
	"github.com/sporadisk/datekit/client/terminal"
	"github.com/sporadisk/datekit/config"
	"github.com/sporadisk/datekit/format"
	"github.com/sporadisk/datekit/report"
	"github.com/sporadisk/datekit/sheet"
)

func parseSheet(t *testing.T, text string) sheet.Sheet {
	t.Helper()
	p := sheet.Parser{}
	require.NoError(t, p.Init())
	return p.Parse(text)
}

func newTestEvaluator(t *testing.T, conf *config.Config) (*Evaluator, *bytes.Buffer) {
	t.Helper()

	out := &bytes.Buffer{}
	client := &terminal.Client{
		Out: out,
		Now: func() time.Time { return time.Date(2016, time.April, 5, 12, 0, 0, 0, time.UTC) },
	}
	require.NoError(t, client.Init())

	ev := &Evaluator{Conf: conf, ReportOutput: client}
	require.NoError(t, ev.Init())
	return ev, out
}

func TestEvaluate(t *testing.T) {
	ev, _ := newTestEvaluator(t, nil)

	rep := ev.Evaluate(parseSheet(t, `
	rfc2822: Tue, 26 Jan 2016 13:48:02 GMT
	iso8601: 2016-01-19T08:07:37Z
	leap: 1900-01-01
	leap: Sat, 01 Jan 2000 00:00:00 GMT
	span: 2000-01-01T10:00:00Z -> 2000-01-01T15:20:10.453Z
	angle: 2016-04-05T21:00:00Z
	`))

	require.Len(t, rep.Results, 6)
	assert.Zero(t, rep.Failures())

	require.NotNil(t, rep.Results[0].Instant)
	assert.True(t, rep.Results[0].Instant.Equal(datekit.Date(2016, time.January, 26, 13, 48, 2, 0)))

	require.NotNil(t, rep.Results[1].Instant)
	assert.True(t, rep.Results[1].Instant.Equal(datekit.Date(2016, time.January, 19, 8, 7, 37, 0)))

	require.NotNil(t, rep.Results[2].Leap)
	assert.False(t, *rep.Results[2].Leap)
	require.NotNil(t, rep.Results[3].Leap)
	assert.True(t, *rep.Results[3].Leap)

	require.NotNil(t, rep.Results[4].Span)
	assert.Equal(t, format.TimeClock, rep.Results[4].SpanFormat)
	assert.Equal(t, "05:20:10.453", format.Clock(*rep.Results[4].Span))

	require.NotNil(t, rep.Results[5].Angle)
	assert.InDelta(t, math.Pi/2, *rep.Results[5].Angle, 1e-9)
}

func TestEvaluateFormatDirective(t *testing.T) {
	ev, _ := newTestEvaluator(t, nil)

	rep := ev.Evaluate(parseSheet(t, `
	span: 2000-01-01T10:00:00Z -> 2000-01-01T11:30:00Z
	format: hm
	span: 2000-01-01T10:00:00Z -> 2000-01-01T11:30:00Z
	`))

	require.Len(t, rep.Results, 2)
	assert.Equal(t, format.TimeClock, rep.Results[0].SpanFormat)
	assert.Equal(t, format.TimeHM, rep.Results[1].SpanFormat)
}

func TestEvaluateFailures(t *testing.T) {
	ev, _ := newTestEvaluator(t, nil)

	rep := ev.Evaluate(parseSheet(t, `
	iso8601: Tue, 26 Jan 2016 13:48:02 GMT
	rfc2822: someday
	span: 2000-01-01T11:00:00Z -> 2000-01-01T10:00:00Z
	span: 2000-01-01T11:00:00Z -> never
	angle: noon
	`))

	require.Len(t, rep.Results, 5)
	assert.Equal(t, 5, rep.Failures())

	assert.ErrorIs(t, rep.Results[0].Err, ErrUnparseable)
	assert.ErrorIs(t, rep.Results[1].Err, ErrUnparseable)
	assert.ErrorIs(t, rep.Results[2].Err, datekit.ErrInvalidRange)
	assert.ErrorIs(t, rep.Results[3].Err, ErrUnparseable)
	assert.ErrorContains(t, rep.Results[3].Err, "end:")
	assert.ErrorIs(t, rep.Results[4].Err, ErrUnparseable)
}

func TestEvaluateEntry(t *testing.T) {
	ev, _ := newTestEvaluator(t, &config.Config{
		Output: &config.OutputConfig{Params: map[string]string{"timeFormat": "HMS"}},
	})
	assert.Equal(t, format.TimeHMS, ev.TimeFormat)

	res := ev.EvaluateEntry(sheet.Entry{
		Action:   sheet.ActionSpan,
		Operands: []string{"2000-01-01T10:00:00Z", "2000-01-01T10:00:20Z"},
	})
	require.False(t, res.Failed())
	assert.Equal(t, format.TimeHMS, res.SpanFormat)
	assert.Equal(t, int64(20000), *res.Span)

	res = ev.EvaluateEntry(sheet.Entry{Action: sheet.ActionSpan, Operands: []string{"2000-01-01"}})
	assert.ErrorIs(t, res.Err, ErrOperands)

	res = ev.EvaluateEntry(sheet.Entry{Action: "weekday", Operands: []string{"2000-01-01"}})
	assert.ErrorIs(t, res.Err, ErrUnknownAction)
}

func TestEvaluateInvalidFormatEntry(t *testing.T) {
	ev, _ := newTestEvaluator(t, nil)

	rep := ev.Evaluate(sheet.Sheet{
		Entries: []sheet.Entry{
			{Action: sheet.ActionOutputFormat, Operands: []string{"fortnights"}, LineNumber: 1},
			{Action: sheet.ActionSpan, Operands: []string{"2000-01-01T10:00:00Z", "2000-01-01T11:00:00Z"}, LineNumber: 2},
		},
	})

	require.Len(t, rep.Warnings, 1)
	assert.Contains(t, rep.Warnings[0], "line 1")
	require.Len(t, rep.Results, 1)
	assert.Equal(t, format.TimeClock, rep.Results[0].SpanFormat)
}

func TestInitRejectsBadConfig(t *testing.T) {
	ev := &Evaluator{Conf: &config.Config{
		Output: &config.OutputConfig{Params: map[string]string{"timeFormat": "weeks"}},
	}}
	assert.ErrorContains(t, ev.Init(), "timeFormat")

	ev = &Evaluator{Conf: &config.Config{
		Output: &config.OutputConfig{Name: "slack"},
	}}
	assert.ErrorContains(t, ev.Init(), "unrecognized output")

	ev = &Evaluator{Conf: &config.Config{
		Output: &config.OutputConfig{Params: map[string]string{"angleUnit": "turns"}},
	}}
	assert.ErrorContains(t, ev.Init(), "angleUnit")
}

func TestProcessAndReceive(t *testing.T) {
	ev, out := newTestEvaluator(t, nil)

	good := parseSheet(t, "leap: 2012-06-01\n")
	require.NoError(t, ev.Process(good))
	assert.Contains(t, out.String(), "leap")
	assert.Contains(t, out.String(), "=> true")

	out.Reset()
	bad := parseSheet(t, "leap: whenever\n")
	assert.ErrorIs(t, ev.Process(bad), terminal.ErrInvalidInput)

	// a failing line must not end a watch session
	out.Reset()
	assert.NoError(t, ev.Receive(bad))
	assert.Contains(t, out.String(), "1 of 1 directives failed")
}

type fakeSubscriber struct {
	sheets []sheet.Sheet
}

func (f *fakeSubscriber) Subscribe(_ context.Context, receiver sheet.Receiver) error {
	for _, s := range f.sheets {
		if err := receiver.Receive(s); err != nil {
			return err
		}
	}
	return nil
}

func TestStart(t *testing.T) {
	ev, out := newTestEvaluator(t, nil)
	ev.Subscriber = &fakeSubscriber{sheets: []sheet.Sheet{
		parseSheet(t, "angle: 2016-04-05T18:00:00Z\n"),
		parseSheet(t, "angle: nonsense\n"),
	}}

	require.NoError(t, ev.Start(context.Background()))
	assert.Contains(t, out.String(), "=> 3.141592653589793")
	assert.Contains(t, out.String(), "unparseable date")

	ev.Subscriber = nil
	assert.Error(t, ev.Start(context.Background()))
}

var _ report.Output = (*terminal.Client)(nil)
