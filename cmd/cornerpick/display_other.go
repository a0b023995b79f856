//go:build !linux

package main

import (
	"fmt"

	"github.com/1broseidon/cornerpick/internal/platform"
)

func openDisplay(string, bool) (*session, error) {
	return nil, fmt.Errorf("%w (try --virtual N)", platform.ErrUnsupported)
}
