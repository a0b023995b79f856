//go:build linux

package main

import (
	"github.com/1broseidon/cornerpick/internal/overlay"
	"github.com/1broseidon/cornerpick/internal/platform"
)

func openDisplay(display string, withIndicator bool) (*session, error) {
	backend, err := platform.NewLinuxBackendFromDisplay(display)
	if err != nil {
		return nil, err
	}
	screens, err := platform.NewScreens(backend)
	if err != nil {
		backend.Disconnect()
		return nil, err
	}

	s := &session{screens: screens, closeFn: backend.Disconnect}
	if withIndicator {
		frame := overlay.NewFrame(backend.XUtil(), backend.RootWindow())
		s.indicator = frame
		s.closeFn = func() {
			frame.Close()
			backend.Disconnect()
		}
	}
	return s, nil
}
