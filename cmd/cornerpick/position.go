package main

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/1broseidon/cornerpick/internal/geom"
	"github.com/1broseidon/cornerpick/internal/selector"
)

type positionJSON struct {
	Screen      int        `json:"screen"`
	Corner      int        `json:"corner"`
	CornerName  string     `json:"corner_name"`
	Description string     `json:"description"`
	Valid       bool       `json:"valid"`
	Rect        *geom.Rect `json:"rect,omitempty"`
}

func newGetCmd(opts *globalOptions) *cobra.Command {
	var asJSON, withRect bool
	cmd := &cobra.Command{
		Use:   "get",
		Short: "Print the stored popup position",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			res, err := opts.loadConfig()
			if err != nil {
				return err
			}
			pos := res.Config.Position

			var rect *geom.Rect
			if withRect {
				sess, err := opts.openSession(res.Config, false)
				if err != nil {
					return err
				}
				defer sess.Close()
				r, ok := selector.PopupRect(sess.screens, pos)
				if !ok {
					return fmt.Errorf("position %s does not exist on the current displays", pos)
				}
				rect = &r
			}

			out := cmd.OutOrStdout()
			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(positionJSON{
					Screen:      pos.Screen,
					Corner:      int(pos.Corner),
					CornerName:  pos.Corner.String(),
					Description: selector.Describe(pos),
					Valid:       pos.Valid(),
					Rect:        rect,
				})
			}

			fmt.Fprintln(out, selector.Describe(pos))
			if rect != nil {
				fmt.Fprintf(out, "rect: %s\n", formatRect(*rect))
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print as JSON")
	cmd.Flags().BoolVar(&withRect, "rect", false, "also print the real-screen rect of the corner zone")
	return cmd
}

func newSetCmd(opts *globalOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "set <screen> <corner>",
		Short: "Store a popup position",
		Long: `Store a popup position. Screens are numbered from 0; the corner is an
index 0-3 or one of top-left, top-right, bottom-left, bottom-right.`,
		Example: "  cornerpick set 1 bottom-right",
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			pos, err := parsePosition(args[0], args[1])
			if err != nil {
				return err
			}

			res, err := opts.loadConfig()
			if err != nil {
				return err
			}
			logger := opts.newLogger(res.Config, cmd.ErrOrStderr())

			// The display server may be unreachable (e.g. over ssh); the
			// position is stored unchecked then.
			if sess, err := opts.openSession(res.Config, false); err != nil {
				logger.Warn("cannot check screen count", "error", err)
			} else {
				count := len(sess.screens.Monitors())
				sess.Close()
				if pos.Screen >= count {
					return fmt.Errorf("screen %d out of range (have %d)", pos.Screen, count)
				}
			}

			if err := savePosition(res.Path, res.Config)(pos); err != nil {
				return err
			}
			logger.Debug("position stored", "path", res.Path, "position", pos.String())
			fmt.Fprintln(cmd.OutOrStdout(), selector.Describe(pos))
			return nil
		},
	}
	return cmd
}

func parsePosition(screenArg, cornerArg string) (geom.Position, error) {
	screen, err := strconv.Atoi(screenArg)
	if err != nil {
		return geom.None, fmt.Errorf("invalid screen %q: %w", screenArg, err)
	}
	if screen < 0 {
		return geom.None, fmt.Errorf("screen must be >= 0, got %d", screen)
	}
	corner, err := geom.ParseCorner(cornerArg)
	if err != nil {
		return geom.None, err
	}
	return geom.Position{Screen: screen, Corner: corner}, nil
}
