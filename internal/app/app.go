package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/gdamore/tcell/v2"

	"github.com/dshills/chatvim/internal/chatbox"
	"github.com/dshills/chatvim/internal/clipboard"
	"github.com/dshills/chatvim/internal/config"
	"github.com/dshills/chatvim/internal/input/key"
	"github.com/dshills/chatvim/internal/input/mode"
	"github.com/dshills/chatvim/internal/input/vim"
)

// Options configures the application.
type Options struct {
	// Config is the resolved configuration. Defaults are used when nil.
	Config *config.Config

	// ConfigPath is the config file to watch for changes. Empty disables
	// live reload.
	ConfigPath string

	// NoVim starts with modal editing disabled regardless of Config.
	NoVim bool

	// Logger receives diagnostics. Output is discarded when nil.
	Logger *log.Logger

	// Screen overrides the terminal screen, for tests.
	Screen tcell.Screen

	// ClipboardWriter receives OSC 52 sequences. Defaults to os.Stdout.
	ClipboardWriter io.Writer
}

// Application is the terminal chat client.
type Application struct {
	screen tcell.Screen
	box    *chatbox.Box
	cfg    *config.Config
	logger *log.Logger
	opts   Options

	transcript []string
	notice     string
}

// quitRequest is posted to the event loop when the run context ends.
type quitRequest struct{ err error }

// reloadResult is posted to the event loop by the config watcher.
type reloadResult struct {
	cfg *config.Config
	err error
}

// New creates an Application.
func New(opts Options) (*Application, error) {
	app := &Application{
		cfg:    opts.Config,
		logger: opts.Logger,
		opts:   opts,
	}
	if app.cfg == nil {
		app.cfg = config.Default()
	}
	if app.logger == nil {
		app.logger = log.New(io.Discard)
	}
	if app.opts.ClipboardWriter == nil {
		app.opts.ClipboardWriter = os.Stdout
	}

	app.box = chatbox.New(
		chatbox.WithVim(app.cfg.Editor.Vim && !opts.NoVim),
		chatbox.WithLogger(app.logger),
		chatbox.WithEngineOptions(
			vim.WithClipboard(app.newClipboard(app.cfg)),
			vim.WithExitKey(app.cfg.ExitKeyEvent()),
			vim.WithRegister(app.cfg.RegisterName()),
			vim.WithStartMode(app.cfg.StartModeValue()),
		),
	)

	app.screen = opts.Screen
	if app.screen == nil {
		screen, err := tcell.NewScreen()
		if err != nil {
			return nil, &InitError{Component: "screen", Err: err}
		}
		app.screen = screen
	}

	return app, nil
}

// Box returns the input box.
func (app *Application) Box() *chatbox.Box {
	return app.box
}

// Transcript returns the sent messages.
func (app *Application) Transcript() []string {
	return app.transcript
}

// newClipboard builds the configured clipboard, falling back to Nop.
func (app *Application) newClipboard(cfg *config.Config) clipboard.Clipboard {
	cb, err := clipboard.New(cfg.Clipboard.Backend, clipboard.Options{
		Writer: app.opts.ClipboardWriter,
		Tmux:   cfg.Clipboard.OSC52Tmux,
	})
	if err != nil {
		app.logger.Warn("clipboard disabled", "backend", cfg.Clipboard.Backend, "err", err)
		return clipboard.Nop{}
	}
	return cb
}

// Run initializes the screen and processes events until the user quits or
// ctx is cancelled.
func (app *Application) Run(ctx context.Context) error {
	if err := app.screen.Init(); err != nil {
		return &InitError{Component: "screen", Err: err}
	}
	defer app.screen.Fini()
	app.screen.EnablePaste()

	if app.opts.ConfigPath != "" {
		w, err := config.NewWatcher(app.opts.ConfigPath,
			func(cfg *config.Config) {
				_ = app.screen.PostEvent(tcell.NewEventInterrupt(reloadResult{cfg: cfg}))
			},
			config.WithErrorHandler(func(err error) {
				_ = app.screen.PostEvent(tcell.NewEventInterrupt(reloadResult{err: err}))
			}),
		)
		if err != nil {
			app.logger.Warn("config watcher disabled", "path", app.opts.ConfigPath, "err", err)
		} else {
			defer w.Close()
		}
	}

	stop := make(chan struct{})
	defer close(stop)
	go func() {
		select {
		case <-ctx.Done():
			_ = app.screen.PostEvent(tcell.NewEventInterrupt(quitRequest{err: ctx.Err()}))
		case <-stop:
		}
	}()

	app.logger.Info("started", "surface", app.box.Engine().ID(), "vim", app.box.VimEnabled())
	app.draw()
	for {
		ev := app.screen.PollEvent()
		if ev == nil {
			return nil
		}
		if err := app.handleEvent(ev); err != nil {
			if errors.Is(err, ErrQuit) {
				app.logger.Info("quit")
				return nil
			}
			return err
		}
		app.draw()
	}
}

// handleEvent processes one screen event. It returns ErrQuit to stop.
func (app *Application) handleEvent(ev tcell.Event) error {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		app.screen.Sync()
	case *tcell.EventKey:
		return app.handleKey(convertKeyEvent(ev))
	case *tcell.EventInterrupt:
		switch data := ev.Data().(type) {
		case quitRequest:
			return ErrQuit
		case reloadResult:
			if data.err != nil {
				app.logger.Warn("config reload failed", "err", data.err)
				app.notice = "config error"
				return nil
			}
			app.ApplyConfig(data.cfg)
			app.notice = "config reloaded"
		}
	}
	return nil
}

// handleKey applies one key to the application.
func (app *Application) handleKey(ev key.Event) error {
	app.notice = ""

	if app.isQuit(ev) {
		return ErrQuit
	}
	if ev.Key == key.KeyF2 {
		if app.box.ToggleVim() {
			app.notice = "vim on"
		} else {
			app.notice = "vim off"
		}
		return nil
	}

	out := app.box.HandleKey(ev)
	if out.Sent {
		app.transcript = append(app.transcript, out.Message)
		app.logger.Debug("message sent", "bytes", len(out.Message))
	}
	return nil
}

// isQuit reports whether ev quits. Ctrl+C is left to the engine when it
// is the configured exit key and a mode can be exited.
func (app *Application) isQuit(ev key.Event) bool {
	if !ev.Modifiers.HasCtrl() || ev.Key != key.KeyRune {
		return false
	}
	switch ev.Rune {
	case 'q':
		return true
	case 'c':
		exitKey := app.cfg.ExitKeyEvent()
		m := app.box.Engine().Mode()
		return !(app.box.VimEnabled() && m != mode.Normal && ev.Equals(exitKey))
	}
	return false
}

// ApplyConfig re-applies the reloadable settings: exit key, clipboard
// backend and default register.
func (app *Application) ApplyConfig(cfg *config.Config) {
	eng := app.box.Engine()
	eng.SetExitKey(cfg.ExitKeyEvent())
	eng.SetClipboard(app.newClipboard(cfg))
	eng.SetDefaultRegister(cfg.RegisterName())
	app.cfg = cfg
	app.logger.Info("config applied",
		"exit_key", cfg.Editor.ExitKey,
		"clipboard", cfg.Clipboard.Backend,
		"register", cfg.Editor.Register,
	)
}

// statusText returns the left and right parts of the status line.
func (app *Application) statusText() (string, string) {
	st := app.box.State()

	left := "-- PLAIN --"
	if st.VimEnabled {
		left = fmt.Sprintf("-- %s --", st.Vim.Mode.DisplayName())
		if st.Vim.Pending != "" {
			left += "  " + st.Vim.Pending
		}
	}
	if app.notice != "" {
		left += "  [" + app.notice + "]"
	}

	right := ""
	if st.VimEnabled && st.Vim.LastCommand != "" {
		right = st.Vim.LastCommand + "  "
	}
	id := app.box.Engine().ID()
	if len(id) > 8 {
		id = id[:8]
	}
	return left, right + id
}
