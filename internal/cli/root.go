// Package cli implements the span command.
package cli

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/clipperhouse/span"
	"github.com/clipperhouse/span/internal/config"
	"github.com/clipperhouse/span/internal/logger"
)

// Execute runs the span command with os.Args and exits non-zero on error.
func Execute() {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// app is the state resolved from config and flags before a subcommand runs.
type app struct {
	style span.Style
	log   *slog.Logger
}

func newRootCmd() *cobra.Command {
	var (
		configPath string
		format     string
		debug      bool
		a          app
	)

	cmd := &cobra.Command{
		Use:          "span",
		Short:        "Build, combine and format calendar-free durations",
		SilenceUsage: true,
		PersistentPreRunE: func(c *cobra.Command, _ []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			if c.Flags().Changed("format") {
				cfg.Format = format
			}
			if debug {
				cfg.Debug = true
			}

			st, err := cfg.Style()
			if err != nil {
				return err
			}
			a.style = st
			a.log = logger.New(logger.Config{Out: c.ErrOrStderr(), Debug: cfg.Debug})
			a.log.Debug("cli.configured", "config", configPath, "format", st.String())
			return nil
		},
	}

	cmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "config file (default ./"+config.DefaultPath+" if present)")
	cmd.PersistentFlags().StringVarP(&format, "format", "f", "short", "output style: short, human, precise, ai")
	cmd.PersistentFlags().BoolVar(&debug, "debug", false, "log debug output to stderr")

	cmd.AddCommand(
		unitCmd(&a),
		hintCmd(&a),
		parseCmd(&a),
		addCmd(&a),
		subCmd(&a),
		convertCmd(&a),
		sleepCmd(&a),
	)
	return cmd
}

// emit writes s in the configured style.
func (a *app) emit(c *cobra.Command, s span.Span) {
	a.log.Debug("span.result", "fields", string(s.AppendFormat(nil, span.StyleAI)), "mask", s.Precision.String())
	fmt.Fprintln(c.OutOrStdout(), string(s.AppendFormat(nil, a.style)))
}
