package app

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/chatvim/internal/config"
	"github.com/dshills/chatvim/internal/input/mode"
	"github.com/dshills/chatvim/internal/input/vim"
)

// newTestApp creates an application on an initialized simulation screen.
func newTestApp(t *testing.T, cfg *config.Config) (*Application, tcell.SimulationScreen) {
	t.Helper()

	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("screen.Init() error = %v", err)
	}
	t.Cleanup(screen.Fini)
	screen.SetSize(40, 10)

	if cfg == nil {
		cfg = config.Default()
		cfg.Clipboard.Backend = "memory"
	}
	app, err := New(Options{Config: cfg, Screen: screen})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return app, screen
}

func keyEv(k tcell.Key) *tcell.EventKey {
	return tcell.NewEventKey(k, 0, tcell.ModNone)
}

// typeRunes sends each rune of s as a key event.
func typeRunes(t *testing.T, app *Application, s string) {
	t.Helper()
	for _, r := range s {
		if err := app.handleEvent(tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)); err != nil {
			t.Fatalf("handleEvent(%q) error = %v", r, err)
		}
	}
}

// readRow returns the text drawn on row y.
func readRow(s tcell.Screen, y int) string {
	w, _ := s.Size()
	var b strings.Builder
	for x := 0; x < w; x++ {
		r, _, _, _ := s.GetContent(x, y) //nolint:staticcheck // GetContent is the correct API
		b.WriteRune(r)
	}
	return strings.TrimRight(b.String(), " ")
}

func TestSendMessage(t *testing.T) {
	app, _ := newTestApp(t, nil)

	typeRunes(t, app, "ihello")
	if err := app.handleEvent(keyEv(tcell.KeyEscape)); err != nil {
		t.Fatal(err)
	}
	if err := app.handleEvent(keyEv(tcell.KeyEnter)); err != nil {
		t.Fatal(err)
	}

	got := app.Transcript()
	if len(got) != 1 || got[0] != "hello" {
		t.Errorf("Transcript() = %q, want [hello]", got)
	}
	if app.Box().Text() != "" {
		t.Errorf("box text = %q, want empty", app.Box().Text())
	}
}

func TestDrawStatusAndTranscript(t *testing.T) {
	app, screen := newTestApp(t, nil)

	typeRunes(t, app, "ihi")
	_ = app.handleEvent(tcell.NewEventKey(tcell.KeyCtrlS, 0, tcell.ModCtrl))
	typeRunes(t, app, "idraft")
	app.draw()

	_, h := screen.Size()
	status := readRow(screen, h-1)
	if !strings.HasPrefix(status, "-- INSERT --") {
		t.Errorf("status line = %q, want insert mode", status)
	}
	if input := readRow(screen, h-2); input != "draft" {
		t.Errorf("input row = %q, want %q", input, "draft")
	}
	if sep := readRow(screen, h-3); !strings.HasPrefix(sep, "─") {
		t.Errorf("separator row = %q", sep)
	}
	if msg := readRow(screen, 0); msg != "› hi" {
		t.Errorf("transcript row = %q, want %q", msg, "› hi")
	}

	x, y, visible := screen.GetCursor()
	if !visible || x != 5 || y != h-2 {
		t.Errorf("cursor = (%d, %d, %v), want (5, %d, true)", x, y, visible, h-2)
	}
}

func TestDrawSelection(t *testing.T) {
	app, screen := newTestApp(t, nil)

	app.Box().SetText("hello")
	typeRunes(t, app, "0vll")
	app.draw()

	_, h := screen.Size()
	for x := 0; x < 5; x++ {
		_, _, style, _ := screen.GetContent(x, h-2) //nolint:staticcheck // GetContent is the correct API
		_, _, attrs := style.Decompose()
		selected := attrs&tcell.AttrReverse != 0
		if want := x < 2; selected != want {
			t.Errorf("cell %d selected = %v, want %v", x, selected, want)
		}
	}
	if status := readRow(screen, h-1); !strings.HasPrefix(status, "-- VISUAL --") {
		t.Errorf("status line = %q, want visual mode", status)
	}
}

func TestQuitKeys(t *testing.T) {
	app, _ := newTestApp(t, nil)

	if err := app.handleEvent(tcell.NewEventKey(tcell.KeyCtrlQ, 0, tcell.ModCtrl)); !errors.Is(err, ErrQuit) {
		t.Errorf("Ctrl+Q error = %v, want ErrQuit", err)
	}
	if err := app.handleEvent(tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl)); !errors.Is(err, ErrQuit) {
		t.Errorf("Ctrl+C error = %v, want ErrQuit", err)
	}
}

func TestCtrlCAsExitKey(t *testing.T) {
	cfg := config.Default()
	cfg.Clipboard.Backend = "none"
	cfg.Editor.ExitKey = "<C-c>"
	app, _ := newTestApp(t, cfg)

	typeRunes(t, app, "i")
	if err := app.handleEvent(tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl)); err != nil {
		t.Fatalf("Ctrl+C in insert mode error = %v, want nil", err)
	}
	if app.Box().Engine().Mode() != mode.Normal {
		t.Errorf("mode = %v, want normal", app.Box().Engine().Mode())
	}

	if err := app.handleEvent(tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl)); !errors.Is(err, ErrQuit) {
		t.Errorf("Ctrl+C in normal mode error = %v, want ErrQuit", err)
	}
}

func TestToggleVimKey(t *testing.T) {
	app, screen := newTestApp(t, nil)

	if err := app.handleEvent(keyEv(tcell.KeyF2)); err != nil {
		t.Fatal(err)
	}
	if app.Box().VimEnabled() {
		t.Fatal("F2 should disable vim")
	}

	typeRunes(t, app, "yy")
	if got := app.Box().Text(); got != "yy" {
		t.Errorf("text = %q, want literal %q", got, "yy")
	}

	app.draw()
	_, h := screen.Size()
	if status := readRow(screen, h-1); !strings.HasPrefix(status, "-- PLAIN --") {
		t.Errorf("status line = %q, want plain mode", status)
	}
}

func TestNoVimOption(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	app, err := New(Options{Screen: screen, NoVim: true})
	if err != nil {
		t.Fatal(err)
	}
	if app.Box().VimEnabled() {
		t.Error("NoVim should disable vim")
	}
}

func TestApplyConfig(t *testing.T) {
	app, _ := newTestApp(t, nil)

	cfg := config.Default()
	cfg.Clipboard.Backend = "memory"
	cfg.Editor.Register = "+"
	app.ApplyConfig(cfg)

	eng := app.Box().Engine()
	if got := eng.Store().DefaultRegister(); got != vim.RegisterClipboard {
		t.Errorf("DefaultRegister() = %q, want %q", got, vim.RegisterClipboard)
	}

	app.Box().SetText("abc")
	typeRunes(t, app, "0yy")
	if got := eng.Store().Registers().Get(vim.RegisterClipboard); got != "abc" {
		t.Errorf("register + = %q, want %q", got, "abc")
	}
}

func TestReloadEvents(t *testing.T) {
	app, _ := newTestApp(t, nil)

	cfg := config.Default()
	cfg.Clipboard.Backend = "none"
	cfg.Editor.Register = "a"
	if err := app.handleEvent(tcell.NewEventInterrupt(reloadResult{cfg: cfg})); err != nil {
		t.Fatal(err)
	}
	if app.notice != "config reloaded" {
		t.Errorf("notice = %q, want %q", app.notice, "config reloaded")
	}
	if got := app.Box().Engine().Store().DefaultRegister(); got != 'a' {
		t.Errorf("DefaultRegister() = %q, want %q", got, 'a')
	}

	if err := app.handleEvent(tcell.NewEventInterrupt(reloadResult{err: errors.New("bad file")})); err != nil {
		t.Fatal(err)
	}
	if app.notice != "config error" {
		t.Errorf("notice = %q, want %q", app.notice, "config error")
	}
}

func TestInvalidClipboardFallsBack(t *testing.T) {
	cfg := config.Default()
	cfg.Clipboard.Backend = "pigeon"
	app, _ := newTestApp(t, cfg)

	app.Box().SetText("abc")
	typeRunes(t, app, "0yy")
	if got := app.Box().Engine().Store().Paste(); got != "abc" {
		t.Errorf("register = %q, want %q", got, "abc")
	}
}

func TestRunStopsOnCancel(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	cfg := config.Default()
	cfg.Clipboard.Backend = "none"
	app, err := New(Options{Config: cfg, Screen: screen})
	if err != nil {
		t.Fatal(err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- app.Run(ctx) }()
	cancel()

	select {
	case err := <-done:
		if err != nil {
			t.Errorf("Run() error = %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Run() did not stop after cancel")
	}
}
