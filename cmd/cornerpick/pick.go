package main

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/1broseidon/cornerpick/internal/config"
	"github.com/1broseidon/cornerpick/internal/geom"
	"github.com/1broseidon/cornerpick/internal/gui"
	"github.com/1broseidon/cornerpick/internal/palette"
	"github.com/1broseidon/cornerpick/internal/selector"
	"github.com/1broseidon/cornerpick/internal/tui"
)

type pickOptions struct {
	noPreview bool
	save      bool
}

// pickSession is what a picker front end gets to work with.
type pickSession struct {
	sel     *selector.Selector
	save    func(geom.Position) error
	refresh func() error
}

// hostFunc runs one picker front end until the user is done.
type hostFunc func(ps pickSession) (geom.Position, error)

func newPickCmd(opts *globalOptions) *cobra.Command {
	var po pickOptions
	cmd := &cobra.Command{
		Use:   "pick",
		Short: "Pick the popup position in the terminal",
		Long: `Open a terminal picker. Hover a corner zone with the mouse to preview it,
click to select it, press s to save and q to quit.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return opts.runPicker(cmd, po, func(ps pickSession) (geom.Position, error) {
				return tui.Run(ps.sel, tui.Options{Title: "cornerpick", Save: ps.save, Refresh: ps.refresh})
			})
		},
	}
	addPickFlags(cmd, &po)
	return cmd
}

func newGUICmd(opts *globalOptions) *cobra.Command {
	var po pickOptions
	cmd := &cobra.Command{
		Use:   "gui",
		Short: "Pick the popup position in a desktop window",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return opts.runPicker(cmd, po, func(ps pickSession) (geom.Position, error) {
				return gui.Run(ps.sel, gui.Options{Save: ps.save}), nil
			})
		},
	}
	addPickFlags(cmd, &po)
	return cmd
}

func newMenuCmd(opts *globalOptions) *cobra.Command {
	var (
		po      pickOptions
		backend string
	)
	cmd := &cobra.Command{
		Use:   "menu",
		Short: "Pick the popup position from a launcher menu (rofi, fuzzel, wofi, dmenu)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			b, err := palette.NewBackend(backend)
			if err != nil {
				return err
			}
			// A launcher reports no hover, so there is nothing to preview.
			po.noPreview = true
			return opts.runPicker(cmd, po, func(ps pickSession) (geom.Position, error) {
				pos, err := palette.Choose(b, ps.sel)
				if errors.Is(err, palette.ErrCancelled) {
					return ps.sel.Position(), nil
				}
				return pos, err
			})
		},
	}
	cmd.Flags().StringVar(&backend, "backend", "auto", "launcher to use: auto, "+strings.Join(palette.Backends, ", "))
	cmd.Flags().BoolVar(&po.save, "save", false, "store the selected position")
	return cmd
}

func addPickFlags(cmd *cobra.Command, po *pickOptions) {
	cmd.Flags().BoolVar(&po.noPreview, "no-preview", false, "do not outline the hovered corner on the real screen")
	cmd.Flags().BoolVar(&po.save, "save", false, "store the selected position when the picker closes")
}

func (o *globalOptions) runPicker(cmd *cobra.Command, po pickOptions, host hostFunc) error {
	res, err := o.loadConfig()
	if err != nil {
		return err
	}
	cfg := res.Config
	logger := o.newLogger(cfg, cmd.ErrOrStderr())

	sess, err := o.openSession(cfg, !po.noPreview)
	if err != nil {
		return err
	}
	defer sess.Close()

	sel := newSelector(sess, cfg, po.noPreview, logger)
	save := savePosition(res.Path, cfg)

	initial := sel.Position()
	pos, err := host(pickSession{sel: sel, save: save, refresh: sess.screens.Refresh})
	if err != nil {
		return err
	}

	if po.save && pos != initial {
		if err := save(pos); err != nil {
			return err
		}
		logger.Info("position saved", "path", res.Path, "position", pos.String())
	}

	fmt.Fprintln(cmd.OutOrStdout(), selector.Describe(pos))
	return nil
}

func newSelector(sess *session, cfg *config.Config, noPreview bool, logger *slog.Logger) *selector.Selector {
	sel := selector.New(sess.screens, selector.Options{
		Position:       cfg.Position,
		DisablePreview: noPreview || !cfg.PreviewEnabled,
		Indicator:      sess.indicator,
		Logger:         logger,
	})
	sel.OnCornerHovered(func(p geom.Position) {
		logger.Debug("corner hovered", "position", p.String())
	})
	return sel
}

// savePosition returns a callback storing a position into the config at
// path. cfg is updated in place so later saves keep earlier edits.
func savePosition(path string, cfg *config.Config) func(geom.Position) error {
	return func(p geom.Position) error {
		next := *cfg
		next.Position = p
		if err := config.Save(path, &next); err != nil {
			return err
		}
		*cfg = next
		return nil
	}
}
