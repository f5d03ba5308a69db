package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/clipperhouse/span"
)

func unitCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "unit <value> <unit>",
		Short: "Build a span from a value and a unit (days hours minutes seconds ms us ns ps fs as zs ys)",
		Args:  cobra.ExactArgs(2),
		RunE: func(c *cobra.Command, args []string) error {
			v, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("value %q: %w", args[0], err)
			}
			s, err := span.FromUnit(v, args[1])
			if err != nil {
				return err
			}
			a.emit(c, s)
			return nil
		},
	}
}

func hintCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "hint <id>",
		Short: "Print the span for a hint (moment short long human_tick frame)",
		Args:  cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			s, err := span.FromAI(args[0])
			if err != nil {
				return err
			}
			a.emit(c, s)
			return nil
		},
	}
}

func parseCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "parse <span>",
		Short: "Normalize a span written like 1s500ms and print it",
		Args:  cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			s, err := span.Parse(args[0])
			if err != nil {
				return err
			}
			a.emit(c, s)
			return nil
		},
	}
}

func addCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "add <span>...",
		Short: "Sum one or more spans",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			spans, err := parseAll(args)
			if err != nil {
				return err
			}
			total := spans[0]
			for _, s := range spans[1:] {
				total = total.Add(s)
			}
			a.emit(c, total)
			return nil
		},
	}
}

func subCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "sub <span> <span>...",
		Short: "Subtract the remaining spans from the first",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(c *cobra.Command, args []string) error {
			spans, err := parseAll(args)
			if err != nil {
				return err
			}
			total := spans[0]
			for _, s := range spans[1:] {
				total = total.Sub(s)
			}
			a.emit(c, total)
			return nil
		},
	}
}

func convertCmd(a *app) *cobra.Command {
	var to string

	cmd := &cobra.Command{
		Use:   "convert <span>",
		Short: "Convert a span to whole seconds or nanoseconds",
		Args:  cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			s, err := span.Parse(args[0])
			if err != nil {
				return err
			}

			var n int64
			switch to {
			case "seconds":
				n = s.ToSeconds()
			case "nanoseconds", "ns":
				n = s.ToNanoseconds()
			default:
				return fmt.Errorf("--to %q: %w", to, span.ErrInvalidUnit)
			}
			a.log.Debug("span.converted", "span", s.String(), "to", to, "value", n)
			fmt.Fprintln(c.OutOrStdout(), n)
			return nil
		},
	}

	cmd.Flags().StringVar(&to, "to", "seconds", "target unit: seconds or nanoseconds")
	return cmd
}

func sleepCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "sleep <span|hint>",
		Short: "Sleep for a span or a hint, then print how long it took",
		Args:  cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			d, err := span.FromAI(args[0])
			if err != nil {
				d, err = span.Parse(args[0])
				if err != nil {
					return err
				}
			}

			ctx, stop := signal.NotifyContext(contextOf(c), os.Interrupt)
			defer stop()

			timer := span.StartTimer()
			a.log.Debug("sleep.start", "span", d.String())
			if err := span.Sleep(ctx, d); err != nil {
				a.log.Debug("sleep.interrupted", "elapsed", timer.Elapsed().String(), "err", err)
				return err
			}
			a.emit(c, timer.Elapsed())
			return nil
		},
	}
}

func contextOf(c *cobra.Command) context.Context {
	if ctx := c.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

func parseAll(args []string) ([]span.Span, error) {
	spans := make([]span.Span, len(args))
	for i, arg := range args {
		s, err := span.Parse(arg)
		if err != nil {
			return nil, err
		}
		spans[i] = s
	}
	return spans, nil
}
