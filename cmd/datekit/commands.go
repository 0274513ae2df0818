package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/sporadisk/datekit/format"
	"github.com/sporadisk/datekit/sheet"
)

func (a *app) newParseCmd(action, short, example string) *cobra.Command {
	return &cobra.Command{
		Use:     action + " DATE",
		Short:   short,
		Example: fmt.Sprintf("  datekit %s %q", action, example),
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runEntry(cmd, action, args)
		},
	}
}

func (a *app) newLeapCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "leap DATE",
		Short:   "Report whether the year of DATE is a leap year",
		Example: "  datekit leap 2000-01-01",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runEntry(cmd, sheet.ActionLeap, args)
		},
	}
}

func (a *app) newSpanCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "span START END",
		Short:   "Print the time elapsed between START and END as HH:mm:ss.sss",
		Example: "  datekit span 2000-01-01T10:00:00Z 2000-01-01T15:20:10.453Z",
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runEntry(cmd, sheet.ActionSpan, args)
		},
	}
}

func (a *app) newAngleCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "angle DATE",
		Short:   "Print the angle between the clock hands at the UTC time of DATE",
		Example: "  datekit angle 2016-04-05T03:00:00Z",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runEntry(cmd, sheet.ActionAngle, args)
		},
	}
}

// runEntry evaluates a single directive given on the command line and prints
// only its value.
func (a *app) runEntry(cmd *cobra.Command, action string, args []string) error {
	ev, out, err := a.newEvaluator(cmd)
	if err != nil {
		return err
	}

	entry := sheet.Entry{
		Action:   action,
		Command:  cmd.Name(),
		Operands: args,
	}
	res := ev.EvaluateEntry(entry)
	if res.Failed() {
		return res.Err
	}

	fmt.Fprintln(cmd.OutOrStdout(), out.Value(&res))
	return nil
}

func (a *app) newEvalCmd() *cobra.Command {
	var filePath string

	cmd := &cobra.Command{
		Use:   "eval --file PATH",
		Short: "Evaluate every directive of a date sheet once",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ev, _, err := a.newEvaluator(cmd)
			if err != nil {
				return err
			}

			s, err := sheet.ReadFile(filePath)
			if err != nil {
				return fmt.Errorf("sheet.ReadFile: %w", err)
			}

			return ev.Process(s)
		},
	}

	cmd.Flags().StringVar(&filePath, "file", "", "path to the date sheet")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}

func (a *app) newWatchCmd() *cobra.Command {
	var filePath string

	cmd := &cobra.Command{
		Use:   "watch --file PATH",
		Short: "Evaluate a date sheet every time it is written",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ev, _, err := a.newEvaluator(cmd)
			if err != nil {
				return err
			}

			debounce, err := a.debounce()
			if err != nil {
				return err
			}

			subscriber, err := sheet.NewFileSubscriber(filePath, debounce)
			if err != nil {
				return fmt.Errorf("sheet.NewFileSubscriber: %w", err)
			}
			ev.Subscriber = subscriber

			ctx, stop := signal.NotifyContext(cmdContext(cmd), os.Interrupt, syscall.SIGTERM)
			defer stop()

			slog.Info("watching date sheet", "path", filePath, "debounce", debounce)
			err = ev.Start(ctx)
			if err != nil {
				return fmt.Errorf("ev.Start: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&filePath, "file", "", "path to the date sheet; it is evaluated once, then on every write")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}

func (a *app) debounce() (time.Duration, error) {
	if a.conf.Watch == nil || a.conf.Watch.Debounce == "" {
		return 0, nil
	}

	d, err := format.ParseDuration(a.conf.Watch.Debounce)
	if err != nil {
		return 0, fmt.Errorf("parsing watch debounce: %w", err)
	}
	return d, nil
}

func cmdContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
