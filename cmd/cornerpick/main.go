package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/1broseidon/cornerpick/internal/config"
	"github.com/1broseidon/cornerpick/internal/platform"
	"github.com/1broseidon/cornerpick/internal/selector"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// Virtual displays are 1920x1080 unless overridden.
const (
	virtualWidth  = 1920
	virtualHeight = 1080
)

type globalOptions struct {
	configPath string
	verbose    bool
	virtual    int
}

func newRootCmd() *cobra.Command {
	opts := &globalOptions{}

	root := &cobra.Command{
		Use:   "cornerpick",
		Short: "Choose the screen and corner where popups appear",
		Long: `cornerpick shows a scaled preview of your monitors and lets you pick
one of the four corners of one screen as the place where popups open.
The choice is stored in the config file and can be read back by other tools.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	pf := root.PersistentFlags()
	pf.StringVarP(&opts.configPath, "config", "c", "", "config file (default is ~/.config/cornerpick/config.yaml)")
	pf.BoolVarP(&opts.verbose, "verbose", "v", false, "debug logging on stderr")
	pf.IntVar(&opts.virtual, "virtual", 0, "use N virtual 1920x1080 displays instead of the display server")

	root.AddCommand(
		newPickCmd(opts),
		newGUICmd(opts),
		newMenuCmd(opts),
		newGetCmd(opts),
		newSetCmd(opts),
		newMonitorsCmd(opts),
		newConfigCmd(opts),
		newMCPCmd(opts),
	)
	return root
}

func (o *globalOptions) resolveConfigPath() (string, error) {
	if o.configPath != "" {
		return o.configPath, nil
	}
	return config.DefaultConfigPath()
}

func (o *globalOptions) loadConfig() (*config.LoadResult, error) {
	path, err := o.resolveConfigPath()
	if err != nil {
		return nil, err
	}
	return config.LoadFromPath(path)
}

func (o *globalOptions) newLogger(cfg *config.Config, w io.Writer) *slog.Logger {
	level := cfg.SlogLevel()
	if o.verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// session is an open display source plus, when requested, the on-screen
// indicator drawn while hovering.
type session struct {
	screens   *platform.Screens
	indicator selector.Indicator
	closeFn   func()
}

func (s *session) Close() {
	if s != nil && s.closeFn != nil {
		s.closeFn()
	}
}

// openSession connects to the display server named in cfg, or builds
// virtual displays when --virtual is set.
func (o *globalOptions) openSession(cfg *config.Config, withIndicator bool) (*session, error) {
	if o.virtual < 0 {
		return nil, fmt.Errorf("--virtual must be >= 0, got %d", o.virtual)
	}
	if o.virtual > 0 {
		screens, err := platform.NewScreens(platform.VirtualBackend(o.virtual, virtualWidth, virtualHeight))
		if err != nil {
			return nil, err
		}
		return &session{screens: screens}, nil
	}

	if err := cfg.ApplyEnvironment(); err != nil {
		return nil, err
	}
	return openDisplay(cfg.Display, withIndicator)
}
