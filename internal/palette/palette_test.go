package palette

import (
	"errors"
	"os/exec"
	"strings"
	"testing"

	"github.com/1broseidon/cornerpick/internal/geom"
	"github.com/1broseidon/cornerpick/internal/selector"
)

func twoScreens() *selector.Selector {
	return selector.New(selector.StaticDisplay{Screens: []geom.Rect{
		{X: 0, Y: 0, Width: 1920, Height: 1080},
		{X: 1920, Y: 0, Width: 1280, Height: 1024},
	}}, selector.Options{Position: geom.Position{Screen: 1, Corner: geom.BottomLeft}})
}

func TestPositionItems(t *testing.T) {
	items, positions := PositionItems(twoScreens())

	if len(items) != 8 || len(positions) != 8 {
		t.Fatalf("expected 8 items, got %d items and %d positions", len(items), len(positions))
	}
	if items[0].Label != "Screen 1 top-left  (1920x1080+0+0)" {
		t.Fatalf("unexpected first label %q", items[0].Label)
	}
	if items[5].Meta != "2 tr" {
		t.Fatalf("expected meta 2 tr, got %q", items[5].Meta)
	}
	for i, item := range items {
		want := i == 6
		if item.Active != want {
			t.Fatalf("item %d: expected active=%v, got %v", i, want, item.Active)
		}
	}
	if positions[7] != (geom.Position{Screen: 1, Corner: geom.BottomRight}) {
		t.Fatalf("unexpected last position %v", positions[7])
	}
}

func TestChooseCommitsSelection(t *testing.T) {
	sel := twoScreens()
	var changed []geom.Position
	sel.OnPositionChanged(func(p geom.Position) { changed = append(changed, p) })

	b := &fakeBackend{index: 1}
	got, err := Choose(b, sel)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := geom.Position{Screen: 0, Corner: geom.TopRight}
	if got != want || sel.Position() != want {
		t.Fatalf("expected %v, got %v (selector %v)", want, got, sel.Position())
	}
	if len(changed) != 1 || changed[0] != want {
		t.Fatalf("expected one change notification, got %v", changed)
	}
	if b.prompt != "popup position" || !strings.Contains(b.message, "screen 1 bottom-left") {
		t.Fatalf("unexpected prompt %q / message %q", b.prompt, b.message)
	}
}

func TestChooseCancelledKeepsPosition(t *testing.T) {
	sel := twoScreens()
	_, err := Choose(&fakeBackend{err: ErrCancelled}, sel)
	if !errors.Is(err, ErrCancelled) {
		t.Fatalf("expected ErrCancelled, got %v", err)
	}
	if sel.Position() != (geom.Position{Screen: 1, Corner: geom.BottomLeft}) {
		t.Fatalf("position changed on cancel: %v", sel.Position())
	}
}

func TestChooseNoScreens(t *testing.T) {
	sel := selector.New(selector.StaticDisplay{}, selector.Options{})
	if _, err := Choose(&fakeBackend{}, sel); err == nil {
		t.Fatalf("expected error for empty monitor set")
	}
}

func TestRofiBuildArgs_UsesIndexFormatAndActiveRow(t *testing.T) {
	l, _ := newLauncher("rofi")
	args := l.buildArgs("prompt", "a & b", []Item{{Label: "a"}, {Label: "b", Active: true}})

	if !containsArgs(args, "-format", "i") {
		t.Fatalf("expected -format i in args, got %v", args)
	}
	if !containsArg(args, "-no-custom") {
		t.Fatalf("expected -no-custom in args, got %v", args)
	}
	if !containsArgs(args, "-a", "1") || !containsArgs(args, "-selected-row", "1") {
		t.Fatalf("expected active row 1 in args, got %v", args)
	}
	if !containsArgs(args, "-mesg", "a &amp; b") {
		t.Fatalf("expected escaped message in args, got %v", args)
	}
}

func TestBuildArgsPerLauncher(t *testing.T) {
	tests := []struct {
		name string
		want []string
	}{
		{name: "fuzzel", want: []string{"--dmenu", "--index", "--prompt", "p"}},
		{name: "wofi", want: []string{"--dmenu", "--allow-markup", "--prompt", "p"}},
		{name: "dmenu", want: []string{"-i", "-p", "p"}},
	}
	for _, tt := range tests {
		l, err := newLauncher(tt.name)
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", tt.name, err)
		}
		got := l.buildArgs("p", "ignored", []Item{{Label: "x", Active: true}})
		if strings.Join(got, " ") != strings.Join(tt.want, " ") {
			t.Fatalf("%s: expected %v, got %v", tt.name, tt.want, got)
		}
	}
}

func TestNewLauncherUnknown(t *testing.T) {
	if _, err := newLauncher("zenity"); err == nil {
		t.Fatalf("expected error for unknown launcher")
	}
}

func TestRofiFormatInput_MetaAfterSingleNul(t *testing.T) {
	l, _ := newLauncher("rofi")
	items := []Item{{Label: "<Screen 1>", Meta: "1 tl"}}
	out := l.formatInput(items, l.labels(items))

	if got := strings.Count(out, "\x00"); got != 1 {
		t.Fatalf("expected exactly 1 NUL separator, got %d (%q)", got, out)
	}
	if !strings.HasPrefix(out, "&lt;Screen 1&gt;\x00meta\x1f1 tl") {
		t.Fatalf("unexpected row %q", out)
	}
}

func TestLabels_TextLaunchersDisambiguateDuplicates(t *testing.T) {
	items := []Item{{Label: "Dup"}, {Label: "Dup"}, {Label: "Other"}}

	dmenu, _ := newLauncher("dmenu")
	got := dmenu.labels(items)
	if got[0] != "Dup" || got[1] != "Dup (2)" || got[2] != "Other" {
		t.Fatalf("unexpected labels %v", got)
	}

	rofi, _ := newLauncher("rofi")
	got = rofi.labels(items)
	if got[1] != "Dup" {
		t.Fatalf("expected index launcher labels unchanged, got %v", got)
	}
}

func TestShowParsesSelection(t *testing.T) {
	items := []Item{{Label: "a"}, {Label: "b\nc"}}

	tests := []struct {
		launcher string
		output   string
		want     int
		wantErr  bool
	}{
		{launcher: "rofi", output: "1\n", want: 1},
		{launcher: "fuzzel", output: "0", want: 0},
		{launcher: "rofi", output: "9", wantErr: true},
		{launcher: "dmenu", output: "b c\n", want: 1},
		{launcher: "wofi", output: "zzz", wantErr: true},
	}
	for _, tt := range tests {
		l, _ := newLauncher(tt.launcher)
		var gotStdin string
		l.run = func(command string, args []string, stdin string) (string, error) {
			if command != tt.launcher {
				t.Fatalf("expected command %s, got %s", tt.launcher, command)
			}
			gotStdin = stdin
			return tt.output, nil
		}

		idx, err := l.Show("p", items, "")
		if tt.wantErr {
			if err == nil {
				t.Fatalf("%s %q: expected error", tt.launcher, tt.output)
			}
			continue
		}
		if err != nil {
			t.Fatalf("%s %q: unexpected error: %v", tt.launcher, tt.output, err)
		}
		if idx != tt.want {
			t.Fatalf("%s %q: expected index %d, got %d", tt.launcher, tt.output, tt.want, idx)
		}
		if strings.Count(gotStdin, "\n") != 1 {
			t.Fatalf("expected two rows on stdin, got %q", gotStdin)
		}
	}
}

func TestShowEmptyOutputIsCancel(t *testing.T) {
	l, _ := newLauncher("dmenu")
	l.run = func(string, []string, string) (string, error) { return "", nil }
	if _, err := l.Show("p", []Item{{Label: "a"}}, ""); !errors.Is(err, ErrCancelled) {
		t.Fatalf("expected ErrCancelled, got %v", err)
	}
}

func TestShowCommandFailure(t *testing.T) {
	l, _ := newLauncher("dmenu")
	l.run = func(string, []string, string) (string, error) { return "", errors.New("boom") }
	_, err := l.Show("p", []Item{{Label: "a"}}, "")
	if err == nil || errors.Is(err, ErrCancelled) || !strings.Contains(err.Error(), "dmenu failed") {
		t.Fatalf("expected launcher failure, got %v", err)
	}
}

func TestShowNoItems(t *testing.T) {
	l, _ := newLauncher("rofi")
	if _, err := l.Show("p", nil, ""); err == nil {
		t.Fatalf("expected error for empty item list")
	}
}

func TestIsCancelExit(t *testing.T) {
	if isCancelExit(errors.New("plain")) {
		t.Fatalf("plain errors are not cancellations")
	}
	if _, err := exec.LookPath("sh"); err != nil {
		t.Skip("sh not available")
	}
	err := exec.Command("sh", "-c", "exit 1").Run()
	if !isCancelExit(err) {
		t.Fatalf("expected exit 1 to be a cancellation, got %v", err)
	}
	err = exec.Command("sh", "-c", "exit 2").Run()
	if isCancelExit(err) {
		t.Fatalf("expected exit 2 not to be a cancellation")
	}
}

type fakeBackend struct {
	index   int
	err     error
	prompt  string
	message string
}

func (f *fakeBackend) Show(prompt string, items []Item, message string) (int, error) {
	f.prompt = prompt
	f.message = message
	if f.err != nil {
		return -1, f.err
	}
	return f.index, nil
}

func containsArg(args []string, want string) bool {
	for _, a := range args {
		if a == want {
			return true
		}
	}
	return false
}

func containsArgs(args []string, a string, b string) bool {
	for i := 0; i+1 < len(args); i++ {
		if args[i] == a && args[i+1] == b {
			return true
		}
	}
	return false
}
