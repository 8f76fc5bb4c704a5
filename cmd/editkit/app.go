package main

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	runewidth "github.com/mattn/go-runewidth"

	"github.com/dshills/editkit/config"
	"github.com/dshills/editkit/key"
	"github.com/dshills/editkit/script"
	"github.com/dshills/editkit/style"
	"github.com/dshills/editkit/textarea"
)

// App wires a textarea to a tcell screen and a live-reloading config.
type App struct {
	screen  tcell.Screen
	ta      *textarea.TextArea
	cfg     config.Config
	watcher *config.Watcher
	logger  *Logger
}

// NewApp initializes the screen and applies the startup config.
func NewApp(opts Options, logger *Logger) (*App, error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return nil, err
	}

	ta := textarea.New()
	if err := cfg.Apply(ta); err != nil {
		return nil, fmt.Errorf("applying config: %w", err)
	}

	if opts.ScriptPath != "" {
		if err := runScript(opts.ScriptPath, ta); err != nil {
			return nil, fmt.Errorf("running script %s: %w", opts.ScriptPath, err)
		}
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("creating screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("initializing screen: %w", err)
	}

	app := &App{
		screen: screen,
		ta:     ta,
		cfg:    cfg,
		logger: logger,
	}

	if opts.ConfigPath != "" {
		w, err := config.Watch(opts.ConfigPath)
		if err != nil {
			logger.Warn("config watch unavailable: %v", err)
		} else {
			app.watcher = w
			go app.forwardConfigUpdates()
		}
	}

	return app, nil
}

// runScript seeds the buffer from a Lua script before the screen
// takes over the terminal.
func runScript(path string, ta *textarea.TextArea) error {
	eng := script.NewEngine()
	defer eng.Close()

	eng.SetGlobal("id", eng.Attach(ta))
	return eng.EvalFile(path)
}

// forwardConfigUpdates turns watcher deliveries into screen events so
// the event loop stays single-threaded.
func (a *App) forwardConfigUpdates() {
	for {
		select {
		case cfg, ok := <-a.watcher.Updates():
			if !ok {
				return
			}
			_ = a.screen.PostEvent(tcell.NewEventInterrupt(cfg))
		case err, ok := <-a.watcher.Errors():
			if !ok {
				return
			}
			a.logger.Warn("config reload failed: %v", err)
		}
	}
}

// Shutdown restores the terminal.
func (a *App) Shutdown() {
	if a.watcher != nil {
		_ = a.watcher.Close()
	}
	a.screen.Fini()
}

// Run drives the event loop until Escape or Ctrl-C.
func (a *App) Run() error {
	for {
		a.draw()

		switch ev := a.screen.PollEvent().(type) {
		case *tcell.EventKey:
			if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
				return nil
			}
			a.ta.HandleInput(key.FromKeyEvent(ev))

		case *tcell.EventResize:
			a.screen.Sync()

		case *tcell.EventInterrupt:
			if cfg, ok := ev.Data().(config.Config); ok {
				a.applyConfig(cfg)
			}

		case nil:
			return nil
		}
	}
}

func (a *App) applyConfig(cfg config.Config) {
	if err := cfg.Apply(a.ta); err != nil {
		a.logger.Warn("config not applied: %v", err)
		return
	}
	a.cfg = cfg
	a.logger.Info("config reloaded")
}

// draw renders the frame and the buffer spans.
func (a *App) draw() {
	a.screen.Clear()

	x, y := 0, 0
	if b := a.ta.Block(); b != nil {
		w, h := a.screen.Size()
		a.drawBlock(b, w, h)
		x, y = 1, 1
	}

	for row, spans := range a.ta.RenderLines() {
		col := x
		for _, span := range spans {
			col = a.drawSpan(col, y+row, span)
		}
	}

	a.screen.Show()
}

func (a *App) drawSpan(x, y int, span textarea.Span) int {
	ts := style.ToTcell(span.Style)
	for _, r := range span.Text {
		a.screen.SetContent(x, y, r, nil, ts)
		x += runewidth.RuneWidth(r)
	}
	return x
}

func (a *App) drawBlock(b *textarea.Block, w, h int) {
	ts := style.ToTcell(b.Style)

	for x := 1; x < w-1; x++ {
		a.screen.SetContent(x, 0, b.Borders.Horizontal, nil, ts)
		a.screen.SetContent(x, h-1, b.Borders.Horizontal, nil, ts)
	}
	for y := 1; y < h-1; y++ {
		a.screen.SetContent(0, y, b.Borders.Vertical, nil, ts)
		a.screen.SetContent(w-1, y, b.Borders.Vertical, nil, ts)
	}
	a.screen.SetContent(0, 0, b.Borders.TopLeft, nil, ts)
	a.screen.SetContent(w-1, 0, b.Borders.TopRight, nil, ts)
	a.screen.SetContent(0, h-1, b.Borders.BottomLeft, nil, ts)
	a.screen.SetContent(w-1, h-1, b.Borders.BottomRight, nil, ts)

	if b.Title == "" {
		return
	}
	title := " " + b.Title + " "
	x := 2
	for _, r := range title {
		if x >= w-2 {
			break
		}
		a.screen.SetContent(x, 0, r, nil, ts)
		x += runewidth.RuneWidth(r)
	}
}
