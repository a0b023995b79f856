package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/1broseidon/cornerpick/internal/config"
	"github.com/1broseidon/cornerpick/internal/selector"
	"github.com/1broseidon/cornerpick/internal/tui"
)

func newConfigCmd(opts *globalOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect and edit the configuration file",
	}

	validate := &cobra.Command{
		Use:   "validate",
		Short: "Check that the config file loads",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if _, err := opts.loadConfig(); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "config: ok")
			return nil
		},
	}

	var printDefaults bool
	printCmd := &cobra.Command{
		Use:   "print",
		Short: "Print the effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := config.DefaultConfig()
			if !printDefaults {
				res, err := opts.loadConfig()
				if err != nil {
					return err
				}
				cfg = res.Config
			}
			data, err := cfg.Marshal()
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
	printCmd.Flags().BoolVar(&printDefaults, "defaults", false, "print built-in defaults (no file)")

	explain := &cobra.Command{
		Use:       "explain <yaml.path>",
		Short:     "Show a config value and where it came from",
		Long:      "Show a config value and where it came from. Known paths: " + strings.Join(config.ExplainPaths, ", "),
		Args:      cobra.ExactArgs(1),
		ValidArgs: config.ExplainPaths,
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := opts.loadConfig()
			if err != nil {
				return err
			}
			value, src, err := config.Explain(res, args[0])
			if err != nil {
				return err
			}
			data, err := yaml.Marshal(value)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "path: %s\n", args[0])
			fmt.Fprintf(out, "source: %s\n", src)
			fmt.Fprintf(out, "value:\n%s", data)
			return nil
		},
	}

	edit := &cobra.Command{
		Use:   "edit",
		Short: "Edit the configuration in an interactive form",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			res, err := opts.loadConfig()
			if err != nil {
				return err
			}
			logger := opts.newLogger(res.Config, cmd.ErrOrStderr())

			labels, err := opts.screenLabels(res.Config)
			if err != nil {
				logger.Warn("cannot list screens", "error", err)
				labels = fallbackScreenLabels(res.Config)
			}

			cfg := *res.Config
			if err := tui.EditSettings(&cfg, labels); err != nil {
				if errors.Is(err, tui.ErrAborted) {
					fmt.Fprintln(cmd.OutOrStdout(), "config: unchanged")
					return nil
				}
				return err
			}
			if err := config.Save(res.Path, &cfg); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "config: saved %s\n", res.Path)
			return nil
		},
	}

	cmd.AddCommand(validate, printCmd, explain, edit)
	return cmd
}

// screenLabels names the connected screens with their geometry.
func (o *globalOptions) screenLabels(cfg *config.Config) ([]string, error) {
	sess, err := o.openSession(cfg, false)
	if err != nil {
		return nil, err
	}
	defer sess.Close()

	monitors := sess.screens.Monitors()
	labels := make([]string, len(monitors))
	for i, m := range monitors {
		labels[i] = fmt.Sprintf("%s (%s)", selector.ScreenLabel(i), formatRect(m))
	}
	return labels, nil
}

// fallbackScreenLabels covers the stored screen when no display is
// reachable.
func fallbackScreenLabels(cfg *config.Config) []string {
	n := max(cfg.Position.Screen+1, 1)
	labels := make([]string, n)
	for i := range labels {
		labels[i] = selector.ScreenLabel(i)
	}
	return labels
}
