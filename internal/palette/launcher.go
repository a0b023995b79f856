package palette

import (
	"bytes"
	"errors"
	"fmt"
	"html"
	"os/exec"
	"strconv"
	"strings"
)

type launcherKind int

const (
	kindRofi launcherKind = iota
	kindFuzzel
	kindWofi
	kindDmenu
)

// runFunc executes command with args, feeding stdin, and returns stdout.
type runFunc func(command string, args []string, stdin string) (string, error)

// launcher drives any dmenu-style program: rows go in on stdin, the choice
// comes back on stdout.
type launcher struct {
	command string
	kind    launcherKind

	// indexOutput launchers print the chosen row index instead of its text.
	indexOutput bool
	markup      bool

	run runFunc
}

func newLauncher(name string) (*launcher, error) {
	l := &launcher{command: name, run: execRun}
	switch name {
	case "rofi":
		l.kind, l.indexOutput, l.markup = kindRofi, true, true
	case "fuzzel":
		l.kind, l.indexOutput = kindFuzzel, true
	case "wofi":
		l.kind, l.markup = kindWofi, true
	case "dmenu":
		l.kind = kindDmenu
	default:
		return nil, fmt.Errorf("unknown palette backend: %q (expected: auto, %s)", name, strings.Join(Backends, ", "))
	}
	return l, nil
}

func (l *launcher) Show(prompt string, items []Item, message string) (int, error) {
	if len(items) == 0 {
		return -1, fmt.Errorf("palette: no items to show")
	}

	labels := l.labels(items)
	input := l.formatInput(items, labels)
	args := l.buildArgs(prompt, message, items)

	out, err := l.run(l.command, args, input)
	selection := strings.TrimSpace(out)
	if err != nil {
		if selection == "" && isCancelExit(err) {
			return -1, ErrCancelled
		}
		return -1, fmt.Errorf("%s failed: %w", l.command, err)
	}
	if selection == "" {
		return -1, ErrCancelled
	}
	return l.parseSelection(selection, labels)
}

// labels returns the visible text of every row. Launchers that answer with
// the row text need unique labels, so duplicates get a counter suffix.
func (l *launcher) labels(items []Item) []string {
	out := make([]string, len(items))
	seen := make(map[string]int)
	for i, item := range items {
		label := sanitizeLabel(item.Label)
		if !l.indexOutput {
			if n := seen[label]; n > 0 {
				label = fmt.Sprintf("%s (%d)", label, n+1)
			}
			seen[sanitizeLabel(item.Label)]++
		}
		out[i] = label
	}
	return out
}

func (l *launcher) formatInput(items []Item, labels []string) string {
	lines := make([]string, len(items))
	for i, item := range items {
		line := labels[i]
		if l.markup {
			line = html.EscapeString(line)
		}
		// Rofi row properties: one NUL, then \x1f separated key/value pairs.
		if l.kind == kindRofi && item.Meta != "" {
			line += "\x00meta\x1f" + sanitizeRofiField(item.Meta)
		}
		lines[i] = line
	}
	return strings.Join(lines, "\n")
}

func (l *launcher) buildArgs(prompt, message string, items []Item) []string {
	var args []string
	switch l.kind {
	case kindRofi:
		args = []string{"-dmenu", "-i", "-format", "i", "-no-custom", "-markup-rows"}
		if prompt != "" {
			args = append(args, "-p", prompt)
		}
		if active := activeRows(items); len(active) > 0 {
			args = append(args, "-a", formatIndices(active), "-selected-row", strconv.Itoa(active[0]))
		}
		if message != "" {
			args = append(args, "-mesg", html.EscapeString(message))
		}
	case kindFuzzel:
		args = []string{"--dmenu", "--index"}
		if prompt != "" {
			args = append(args, "--prompt", prompt)
		}
	case kindWofi:
		args = []string{"--dmenu", "--allow-markup"}
		if prompt != "" {
			args = append(args, "--prompt", prompt)
		}
	case kindDmenu:
		args = []string{"-i"}
		if prompt != "" {
			args = append(args, "-p", prompt)
		}
	}
	return args
}

func (l *launcher) parseSelection(selection string, labels []string) (int, error) {
	if l.indexOutput {
		if idx, err := strconv.Atoi(selection); err == nil {
			if idx < 0 || idx >= len(labels) {
				return -1, fmt.Errorf("palette: index %d out of range", idx)
			}
			return idx, nil
		}
	}
	for i, label := range labels {
		if label == selection {
			return i, nil
		}
	}
	return -1, fmt.Errorf("palette: unknown selection %q", selection)
}

func execRun(command string, args []string, stdin string) (string, error) {
	cmd := exec.Command(command, args...)
	cmd.Stdin = strings.NewReader(stdin)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	out, err := cmd.Output()
	if err != nil && !isCancelExit(err) {
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return string(out), fmt.Errorf("%w: %s", err, msg)
		}
	}
	return string(out), err
}

func activeRows(items []Item) []int {
	var rows []int
	for i, item := range items {
		if item.Active {
			rows = append(rows, i)
		}
	}
	return rows
}

func sanitizeLabel(label string) string {
	label = strings.ReplaceAll(label, "\r", " ")
	label = strings.ReplaceAll(label, "\n", " ")
	return strings.TrimSpace(label)
}

func sanitizeRofiField(value string) string {
	value = strings.ReplaceAll(value, "\x00", " ")
	value = strings.ReplaceAll(value, "\x1f", " ")
	return sanitizeLabel(value)
}

func formatIndices(indices []int) string {
	parts := make([]string, len(indices))
	for i, idx := range indices {
		parts[i] = strconv.Itoa(idx)
	}
	return strings.Join(parts, ",")
}

func isCancelExit(err error) bool {
	var exitErr *exec.ExitError
	if !errors.As(err, &exitErr) {
		return false
	}
	// 1 is "no selection", 130 is Ctrl+C.
	switch exitErr.ExitCode() {
	case 1, 130:
		return true
	default:
		return false
	}
}
