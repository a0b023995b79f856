package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/1broseidon/cornerpick/internal/geom"
	"github.com/1broseidon/cornerpick/internal/selector"
)

type monitorJSON struct {
	Screen    int       `json:"screen"`
	Name      string    `json:"name"`
	Label     string    `json:"label"`
	Bounds    geom.Rect `json:"bounds"`
	Available geom.Rect `json:"available"`
	Preview   geom.Rect `json:"preview"`
}

type monitorsJSON struct {
	Monitors    []monitorJSON `json:"monitors"`
	TotalBounds geom.Rect     `json:"total_bounds"`
	PreviewSize geom.Size     `json:"preview_size"`
}

func newMonitorsCmd(opts *globalOptions) *cobra.Command {
	var (
		asJSON        bool
		width, height int
	)
	cmd := &cobra.Command{
		Use:   "monitors",
		Short: "List monitors and their scaled preview layout",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if width < 0 || height < 0 {
				return fmt.Errorf("--width and --height must be >= 0")
			}
			res, err := opts.loadConfig()
			if err != nil {
				return err
			}
			sess, err := opts.openSession(res.Config, false)
			if err != nil {
				return err
			}
			defer sess.Close()

			sel := selector.New(sess.screens, selector.Options{DisablePreview: true})
			size := sel.SizeHint()
			if width > 0 {
				size.Width = width
			}
			if height > 0 {
				size.Height = height
			}
			sel.Resize(size.Width, size.Height)

			report := monitorsJSON{
				TotalBounds: sel.TotalBounds(),
				PreviewSize: sel.Size(),
			}
			preview := sel.ScreenRects()
			for i, d := range sess.screens.Displays() {
				avail, err := sess.screens.AvailableGeometry(i)
				if err != nil {
					return err
				}
				report.Monitors = append(report.Monitors, monitorJSON{
					Screen:    i,
					Name:      d.Name,
					Label:     selector.ScreenLabel(i),
					Bounds:    d.Bounds,
					Available: avail,
					Preview:   preview[i],
				})
			}

			out := cmd.OutOrStdout()
			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(report)
			}

			fmt.Fprintf(out, "total: %s  preview: %dx%d\n", formatRect(report.TotalBounds), report.PreviewSize.Width, report.PreviewSize.Height)
			for _, m := range report.Monitors {
				fmt.Fprintf(out, "%-9s %-10s bounds %-20s available %-20s preview %s\n",
					m.Label, m.Name, formatRect(m.Bounds), formatRect(m.Available), formatRect(m.Preview))
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print as JSON")
	cmd.Flags().IntVar(&width, "width", 0, "preview width (default: fit into 300x300)")
	cmd.Flags().IntVar(&height, "height", 0, "preview height (default: fit into 300x300)")
	return cmd
}

func formatRect(r geom.Rect) string {
	return fmt.Sprintf("%dx%d+%d+%d", r.Width, r.Height, r.X, r.Y)
}
