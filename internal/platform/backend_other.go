//go:build !linux

package platform

import (
	"errors"
	"runtime"
)

// ErrUnsupported is returned on platforms without a display backend.
var ErrUnsupported = errors.New("display enumeration is not supported on " + runtime.GOOS)
