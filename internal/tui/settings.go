package tui

import (
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/huh"
	"golang.org/x/term"

	"github.com/1broseidon/cornerpick/internal/config"
	"github.com/1broseidon/cornerpick/internal/geom"
)

// ErrAborted is returned when the settings form is closed without
// submitting.
var ErrAborted = errors.New("settings aborted")

// settingsValues are the form-bound copies of the editable config fields.
type settingsValues struct {
	logLevel string
	preview  bool
	screen   int
	corner   int
}

func valuesFromConfig(cfg *config.Config, screenCount int) settingsValues {
	v := settingsValues{
		logLevel: cfg.LogLevel,
		preview:  cfg.PreviewEnabled,
		screen:   cfg.Position.Screen,
		corner:   int(cfg.Position.Corner),
	}
	if v.screen >= screenCount {
		v.screen = -1
	}
	if v.screen < 0 {
		v.corner = int(geom.NoCorner)
	}
	return v
}

func (v settingsValues) apply(cfg *config.Config) {
	cfg.LogLevel = v.logLevel
	cfg.PreviewEnabled = v.preview
	if v.screen < 0 {
		cfg.Position = geom.None
		return
	}
	cfg.Position = geom.Position{Screen: v.screen, Corner: geom.Corner(v.corner)}
}

func screenOptions(labels []string) []huh.Option[int] {
	opts := []huh.Option[int]{huh.NewOption("none", -1)}
	for i, label := range labels {
		opts = append(opts, huh.NewOption(label, i))
	}
	return opts
}

func cornerOptions() []huh.Option[int] {
	opts := []huh.Option[int]{huh.NewOption("none", int(geom.NoCorner))}
	for c := geom.TopLeft; c <= geom.BottomRight; c++ {
		opts = append(opts, huh.NewOption(c.String(), int(c)))
	}
	return opts
}

func newSettingsForm(v *settingsValues, screenLabels []string) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[int]().
				Key("screen").
				Title("Screen").
				Description("Screen that popups open on").
				Options(screenOptions(screenLabels)...).
				Value(&v.screen),
			huh.NewSelect[int]().
				Key("corner").
				Title("Corner").
				Description("Corner of that screen").
				Options(cornerOptions()...).
				Value(&v.corner),
		),
		huh.NewGroup(
			huh.NewConfirm().
				Key("preview_enabled").
				Title("Preview on screen").
				Description("Outline the hovered corner on the real screen while picking").
				Value(&v.preview),
			huh.NewSelect[string]().
				Key("log_level").
				Title("Log level").
				Options(huh.NewOptions("debug", "info", "warning", "error")...).
				Value(&v.logLevel),
		),
	).WithShowHelp(true).WithShowErrors(true)
}

// EditSettings runs an interactive form over cfg and writes the answers
// back into it. screenLabels names the screens that can be chosen.
func EditSettings(cfg *config.Config, screenLabels []string) error {
	if !term.IsTerminal(int(os.Stdin.Fd())) || !term.IsTerminal(int(os.Stdout.Fd())) {
		return fmt.Errorf("settings form requires an interactive terminal (stdin/stdout must be TTYs)")
	}

	v := valuesFromConfig(cfg, len(screenLabels))
	if err := newSettingsForm(&v, screenLabels).Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return ErrAborted
		}
		return fmt.Errorf("settings form: %w", err)
	}
	v.apply(cfg)
	return cfg.Validate()
}
