package evaluator

import (
	"context"
	"errors"
	"fmt"

	"github.com/sporadisk/datekit/client/terminal"
	"github.com/sporadisk/datekit/config"
	"github.com/sporadisk/datekit/format"
	"github.com/sporadisk/datekit/parameter"
	"github.com/sporadisk/datekit/report"
	"github.com/sporadisk/datekit/sheet"
)

type Evaluator struct {
	Conf         *config.Config
	Subscriber   sheet.Subscriber
	ReportOutput report.Output
	TimeFormat   string // default duration format for spans
}

// Init resolves the defaults from the configuration and loads the report
// output, unless one has been set already.
func (e *Evaluator) Init() error {
	if e.Conf == nil {
		e.Conf = &config.Config{}
	}

	timeFormat, err := parameter.ValidateOr(e.Conf.Param("timeFormat"), format.TimeClock,
		[]string{format.TimeClock, format.TimeHMS, format.TimeHM, format.TimeM})
	if err != nil {
		return fmt.Errorf("validation failure for timeFormat: %w", err)
	}
	e.TimeFormat = timeFormat

	if e.ReportOutput == nil {
		err = e.LoadReportOutput()
		if err != nil {
			return fmt.Errorf("LoadReportOutput: %w", err)
		}
	}

	return nil
}

// Start hands the evaluator to the subscriber, which blocks until ctx is done.
func (e *Evaluator) Start(ctx context.Context) error {
	err := e.Init()
	if err != nil {
		return fmt.Errorf("e.Init: %w", err)
	}

	if e.Subscriber == nil {
		return fmt.Errorf("no subscriber configured")
	}

	err = e.Subscriber.Subscribe(ctx, e)
	if err != nil {
		return fmt.Errorf("Subscriber.Subscribe: %w", err)
	}
	return nil
}

// Receive evaluates a sheet delivered by the subscriber. Lines that fail to
// evaluate are part of the report and do not stop the subscription.
func (e *Evaluator) Receive(s sheet.Sheet) error {
	err := e.Process(s)
	if err != nil && !errors.Is(err, terminal.ErrInvalidInput) {
		return err
	}
	return nil
}

// Process evaluates a sheet and writes the report to the output. The output's
// error is returned unwrapped so callers can test for terminal.ErrInvalidInput.
func (e *Evaluator) Process(s sheet.Sheet) error {
	rep := e.Evaluate(s)
	return e.ReportOutput.OutputReport(rep)
}

func (e *Evaluator) LoadReportOutput() error {
	termClient, err := NewTerminalOutput(e.Conf)
	if err != nil {
		return err
	}

	e.ReportOutput = termClient
	return nil
}

// NewTerminalOutput builds the terminal client from the output section of
// the configuration.
func NewTerminalOutput(conf *config.Config) (*terminal.Client, error) {
	// Currently only terminal output is supported
	name := "terminal"
	if conf.Output != nil && conf.Output.Name != "" {
		name = conf.Output.Name
	}

	_, err := parameter.Validate(name, []string{"terminal"})
	if err != nil {
		return nil, fmt.Errorf("unrecognized output: %w", err)
	}

	termClient := &terminal.Client{
		InstantLayout: conf.Param("instantLayout"),
		AngleUnit:     conf.Param("angleUnit"),
	}
	err = termClient.Init()
	if err != nil {
		return nil, fmt.Errorf("terminal.Client.Init: %w", err)
	}

	return termClient, nil
}
