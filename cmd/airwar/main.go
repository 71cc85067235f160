package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"
	"runtime/debug"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/oriumgames/airwar"
	"github.com/oriumgames/airwar/game"
)

var (
	logPath  = flag.String("log", "", "write logs to this file (disabled when empty)")
	logDebug = flag.Bool("debug", false, "log at debug level")
	seed     = flag.Uint64("seed", 0, "spawner seed (0 picks one)")
	tickRate = flag.Duration("tick", time.Second/60, "simulated duration of one tick")
)

// setupLogging returns the logger for the run and the file it writes to.
// Without a path logs are discarded: the terminal belongs to the game.
func setupLogging(path string, verbose bool) (*slog.Logger, *os.File, error) {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	if path == "" {
		return slog.New(slog.NewTextHandler(io.Discard, nil)), nil, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	return slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: level})), f, nil
}

func main() {
	flag.Parse()

	logger, logFile, err := setupLogging(*logPath, *logDebug)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to set up logging: %v\n", err)
		os.Exit(1)
	}
	if logFile != nil {
		defer logFile.Close()
	}
	slog.SetDefault(logger)

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		os.Exit(1)
	}

	// Panic Recovery: Ensure terminal is reset even if the game crashes
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			fmt.Fprintf(os.Stderr, "AIRWAR CRASHED: %v\n%s\n", r, debug.Stack())
			os.Exit(1)
		}
	}()

	cfg := game.DefaultConfig()
	cfg.Seed = *seed
	cfg.TickRate = *tickRate

	d := &driver{
		screen: screen,
		events: make(chan tcell.Event, 100),
		world: game.New(cfg, game.Assets{Spaceship: '^', Asteroid: 'o', Missile: '|'},
			airwar.WithLogger(logger)),
	}

	err = d.run()
	screen.Fini()
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}

// driver feeds terminal input into the world and draws what it exposes.
type driver struct {
	screen tcell.Screen
	events chan tcell.Event
	world  *airwar.World
	cancel context.CancelFunc

	// done is closed once the world stops ticking
	done chan struct{}
}

func (d *driver) run() error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	d.cancel = cancel
	d.done = make(chan struct{})
	defer close(d.done)

	go d.pollEvents()

	err := d.world.Run(ctx, d.beforeTick)
	if err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

// pollEvents forwards terminal events until the screen is finalized or the
// world stops ticking.
func (d *driver) pollEvents() {
	for {
		ev := d.screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case d.events <- ev:
		case <-d.done:
			return
		}
	}
}

// beforeTick drains pending terminal events into the Input resource and
// draws the state left by the previous tick.
func (d *driver) beforeTick(w *airwar.World) {
	in := airwar.Resource[game.Input](w)
	for {
		select {
		case ev := <-d.events:
			if !d.handle(ev, in) {
				d.cancel()
				return
			}
		default:
			d.draw(w)
			return
		}
	}
}

// handle maps one event onto the input. Terminals report no key releases,
// so held keys rely on key repeat and last one tick per event.
func (d *driver) handle(ev tcell.Event, in *game.Input) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return false
		case tcell.KeyEnter:
			in.Debug = true
		case tcell.KeyTab:
			in.Shield = true
		case tcell.KeyRune:
			switch ev.Rune() {
			case 'w':
				in.Forward = true
			case 's':
				in.Backward = true
			case 'a':
				in.Left = true
			case 'd':
				in.Right = true
			case 'q':
				in.RollLeft = true
			case 'e':
				in.RollRight = true
			case ' ':
				in.Fire = true
			case 'p':
				in.Pause = true
			case 'v':
				in.ToggleStatus = true
			}
		}
	case *tcell.EventResize:
		d.screen.Sync()
	}
	return true
}

// draw renders a top-down view centered on the player, one cell per two
// world units, plus the HUD line.
func (d *driver) draw(w *airwar.World) {
	d.screen.Clear()
	width, height := d.screen.Size()

	var center game.Transform
	if player, _, ok := airwar.Single[game.Player](w); ok {
		if t := airwar.Get[game.Transform](player); t != nil {
			center = *t
		}
	}

	for _, e := range w.Entities() {
		t := airwar.Get[game.Transform](e)
		m := airwar.Get[game.Model](e)
		if t == nil || m == nil {
			continue
		}
		r, ok := m.Handle.(rune)
		if !ok {
			continue
		}
		x := width/2 + int(math.Round((t.Translation.X()-center.Translation.X())/2))
		y := height/2 - int(math.Round((t.Translation.Z()-center.Translation.Z())/4))
		if x >= 0 && x < width && y >= 1 && y < height {
			d.screen.SetContent(x, y, r, nil, styleFor(e))
		}
	}

	snap := game.TakeSnapshot(w)
	if snap.HUD {
		drawText(d.screen, 0, 0, tcell.StyleDefault.Reverse(true),
			fmt.Sprintf(" Health: %d  Score: %d  [%s] ", snap.Health, snap.Score, snap.Phase))
	}
	if snap.Summary != nil {
		msg := fmt.Sprintf("%s Score: %d", snap.Summary.Message, snap.Summary.Score)
		drawText(d.screen, (width-len(msg))/2, height/2, tcell.StyleDefault.Bold(true), msg)
	}

	d.screen.Show()
}

func styleFor(e *airwar.Entity) tcell.Style {
	switch {
	case airwar.Has[game.Player](e):
		if airwar.Has[game.Shield](e) {
			return tcell.StyleDefault.Foreground(tcell.ColorAqua)
		}
		return tcell.StyleDefault.Foreground(tcell.ColorGreen)
	case airwar.Has[game.Hostile](e):
		if s := airwar.Get[game.Status](e); s != nil && s.Health > 1 {
			return tcell.StyleDefault.Foreground(tcell.ColorRed)
		}
		return tcell.StyleDefault.Foreground(tcell.ColorYellow)
	default:
		return tcell.StyleDefault.Foreground(tcell.ColorWhite)
	}
}

func drawText(s tcell.Screen, x, y int, style tcell.Style, text string) {
	for i, r := range text {
		s.SetContent(x+i, y, r, nil, style)
	}
}
