package game

import (
	"context"
	"log/slog"

	"github.com/pthm-cable/pasture/config"
	"github.com/pthm-cable/pasture/platform"
)

// Options configures the frame loop.
type Options struct {
	MaxTicks int64 // stop after N ticks (0 = unlimited)
}

// Stop reasons reported by App.StopReason.
const (
	StopQuit      = "quit"
	StopCancelled = "cancelled"
	StopDeadline  = "exit_deadline"
	StopMaxTicks  = "max_ticks"
)

// App drives a World from a platform: it polls input, ticks until the
// simulation cutoff, keeps rendering until the exit cutoff and paces frames.
type App struct {
	platform platform.Platform
	surface  platform.Surface
	world    *World
	cfg      *config.Config
	opts     Options

	paused     bool
	stopped    bool
	stopReason string
}

// NewApp creates an app for an existing world and its surface.
func NewApp(p platform.Platform, surface platform.Surface, w *World, cfg *config.Config, opts Options) *App {
	return &App{
		platform: p,
		surface:  surface,
		world:    w,
		cfg:      cfg,
		opts:     opts,
	}
}

// World returns the driven world.
func (a *App) World() *World {
	return a.world
}

// StopReason returns why Run returned.
func (a *App) StopReason() string {
	return a.stopReason
}

// Run executes frames until a quit event, ctx cancellation, the exit cutoff
// or the tick limit. Deadlines are measured from the first frame on the
// platform clock.
func (a *App) Run(ctx context.Context) error {
	start := a.platform.Now()
	periodMS := a.cfg.Derived.PeriodMS
	exitMS := a.cfg.Derived.ExitMS
	frameMS := a.cfg.Derived.FrameMS

	for {
		if err := ctx.Err(); err != nil {
			return a.stop(StopCancelled)
		}

		frameStart := a.platform.Now()
		elapsed := frameStart - start

		if exitMS > 0 && elapsed >= exitMS {
			return a.stop(StopDeadline)
		}

		if quit := a.handleEvents(a.platform.PollInput()); quit {
			return a.stop(StopQuit)
		}

		if periodMS > 0 && elapsed >= periodMS && !a.stopped {
			a.stopped = true
			slog.Info("simulation stopped", "tick", a.world.Ticks(), "score", a.world.Score())
		}

		if a.stopped || a.paused {
			a.world.Render()
		} else {
			a.world.Tick()
		}
		a.world.DrawHUD(a.stopped)
		a.surface.Present()
		a.world.RecordFrame()

		if a.opts.MaxTicks > 0 && a.world.Ticks() >= a.opts.MaxTicks {
			return a.stop(StopMaxTicks)
		}

		if spent := a.platform.Now() - frameStart; spent < frameMS {
			a.platform.Delay(frameMS - spent)
		}
	}
}

func (a *App) stop(reason string) error {
	a.stopReason = reason
	slog.Info("shutting down", "reason", reason, "tick", a.world.Ticks(), "score", a.world.Score())
	return nil
}

// handleEvents applies input to the world. Returns true on quit.
func (a *App) handleEvents(events []platform.Event) bool {
	for _, ev := range events {
		switch ev.Type {
		case platform.EventQuit:
			return true
		case platform.EventKeyDown:
			a.world.SetPlayerDirection(ev.Dir.Vector())
		case platform.EventKeyUp:
			a.world.SetPlayerDirection(0, 0)
		case platform.EventClick:
			a.world.SetClickInput(ev.X, ev.Y)
		case platform.EventPause:
			a.paused = !a.paused
		}
	}
	return false
}
