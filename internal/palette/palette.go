package palette

import (
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

// ErrCancelled is returned when the user closes the launcher without
// choosing an entry.
var ErrCancelled = errors.New("palette cancelled")

// Item is one row of a launcher menu.
type Item struct {
	Label  string
	Meta   string // extra search keywords (rofi only)
	Active bool   // highlighted and preselected
}

// Backend shows items in an external launcher and returns the index of the
// chosen row.
type Backend interface {
	Show(prompt string, items []Item, message string) (int, error)
}

// Backends lists the supported launchers in detection order.
var Backends = []string{"rofi", "fuzzel", "wofi", "dmenu"}

// DetectBackend returns the first launcher found in PATH.
func DetectBackend() (string, error) {
	for _, name := range Backends {
		if _, err := exec.LookPath(name); err == nil {
			return name, nil
		}
	}
	return "", fmt.Errorf("no palette backend found in PATH (looked for: %s)", strings.Join(Backends, ", "))
}

// NewBackend creates a backend by name. "" and "auto" detect one.
func NewBackend(name string) (Backend, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" || name == "auto" {
		detected, err := DetectBackend()
		if err != nil {
			return nil, err
		}
		name = detected
	}

	l, err := newLauncher(name)
	if err != nil {
		return nil, err
	}
	if _, err := exec.LookPath(l.command); err != nil {
		return nil, fmt.Errorf("palette backend %q not found in PATH", name)
	}
	return l, nil
}
