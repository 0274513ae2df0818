package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sporadisk/datekit/client/terminal"
	"github.com/sporadisk/datekit/config"
	"github.com/sporadisk/datekit/evaluator"
)

type app struct {
	confPath   string
	logLevel   string
	timeFormat string

	conf *config.Config
}

func newRootCmd() *cobra.Command {
	a := &app{}

	cmd := &cobra.Command{
		Use:          "datekit",
		Short:        "Parse dates, check leap years, format time spans and measure clock hand angles",
		Version:      version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}

	cmd.PersistentFlags().StringVar(&a.confPath, "config", "", "path to config file (default "+config.DefaultPath+" if present)")
	cmd.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "debug, info, warn or error (overrides config)")
	cmd.PersistentFlags().StringVar(&a.timeFormat, "time-format", "", "span format: clock, hms, hm or m (overrides config)")

	cmd.AddCommand(
		a.newParseCmd("rfc2822", "Parse an RFC 2822 date", "Tue, 26 Jan 2016 13:48:02 GMT"),
		a.newParseCmd("iso8601", "Parse an ISO 8601 date", "2016-01-19T08:07:37Z"),
		a.newLeapCmd(),
		a.newSpanCmd(),
		a.newAngleCmd(),
		a.newEvalCmd(),
		a.newWatchCmd(),
	)

	return cmd
}

func (a *app) setup(cmd *cobra.Command) error {
	conf, err := config.Load(a.confPath)
	if err != nil {
		return fmt.Errorf("config.Load: %w", err)
	}

	if a.logLevel != "" {
		conf.LogLevel = a.logLevel
	}
	if a.timeFormat != "" {
		if conf.Output == nil {
			conf.Output = &config.OutputConfig{}
		}
		if conf.Output.Params == nil {
			conf.Output.Params = map[string]string{}
		}
		conf.Output.Params["timeFormat"] = a.timeFormat
	}

	config.SetupLogging(conf, cmd.ErrOrStderr())
	a.conf = conf
	return nil
}

// newEvaluator builds an evaluator whose terminal output writes to the
// command's stdout.
func (a *app) newEvaluator(cmd *cobra.Command) (*evaluator.Evaluator, *terminal.Client, error) {
	out, err := evaluator.NewTerminalOutput(a.conf)
	if err != nil {
		return nil, nil, fmt.Errorf("evaluator.NewTerminalOutput: %w", err)
	}
	out.Out = cmd.OutOrStdout()

	ev := &evaluator.Evaluator{
		Conf:         a.conf,
		ReportOutput: out,
	}
	err = ev.Init()
	if err != nil {
		return nil, nil, fmt.Errorf("ev.Init: %w", err)
	}

	return ev, out, nil
}
