package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/pkg/profile"

	"github.com/pthm-cable/pasture/config"
	"github.com/pthm-cable/pasture/game"
	"github.com/pthm-cable/pasture/platform"
	"github.com/pthm-cable/pasture/renderer"
	"github.com/pthm-cable/pasture/telemetry"
	"github.com/pthm-cable/pasture/terminal"
)

func main() {
	// CLI flags
	configPath := flag.String("config", "", "Path to config.yaml (empty = use defaults)")
	headless := flag.Bool("headless", false, "Run without graphics on simulated time")
	useTerminal := flag.Bool("terminal", false, "Render in the terminal instead of a window")
	seed := flag.Int64("seed", 0, "RNG seed (0 = time-based)")
	sheep := flag.Int("sheep", -1, "Initial sheep (-1 = use config)")
	wolves := flag.Int("wolves", -1, "Initial wolves (-1 = use config)")
	period := flag.Float64("period", -1, "Seconds until the simulation stops (-1 = use config, 0 = never)")
	maxTicks := flag.Int64("max-ticks", 0, "Stop after N ticks (0 = unlimited)")
	logStats := flag.Bool("log-stats", false, "Output window stats via slog")
	outputDir := flag.String("output-dir", "", "Output directory for CSV logs and config snapshot")
	profileMode := flag.String("profile", "", "Write a cpu or mem profile to the output directory")

	flag.Parse()

	// Set up slog (JSON to stdout for structured logging)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	if err := config.Init(*configPath); err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	cfg := config.Cfg()
	if *sheep >= 0 {
		cfg.Population.InitialSheep = *sheep
	}
	if *wolves >= 0 {
		cfg.Population.InitialWolves = *wolves
	}
	if *period >= 0 {
		cfg.Run.PeriodSec = *period
	}
	cfg.ComputeDerived()

	rngSeed := *seed
	if rngSeed == 0 {
		rngSeed = time.Now().UnixNano()
	}

	err := run(cfg, runOptions{
		headless:    *headless,
		terminal:    *useTerminal,
		seed:        rngSeed,
		maxTicks:    *maxTicks,
		logStats:    *logStats,
		outputDir:   *outputDir,
		profileMode: *profileMode,
	})
	if err != nil {
		slog.Error("fatal", "error", err)
		os.Exit(1)
	}
}

type runOptions struct {
	headless    bool
	terminal    bool
	seed        int64
	maxTicks    int64
	logStats    bool
	outputDir   string
	profileMode string
}

func run(cfg *config.Config, opts runOptions) error {
	if stop, err := startProfile(opts.profileMode, opts.outputDir); err != nil {
		return err
	} else if stop != nil {
		defer stop()
	}

	p, err := newPlatform(cfg, opts)
	if err != nil {
		return err
	}
	defer p.Close()

	surface, err := p.CreateSurface(cfg.Screen.Width, cfg.Screen.Height)
	if err != nil {
		var initErr *platform.InitError
		if errors.As(err, &initErr) {
			return err
		}
		return fmt.Errorf("creating surface: %w", err)
	}

	output, err := telemetry.NewOutputManager(opts.outputDir)
	if err != nil {
		return err
	}
	defer output.Close()
	if err := output.WriteConfig(cfg); err != nil {
		return err
	}

	textures := game.LoadTextures(p, cfg.Assets)
	world := game.NewWorld(cfg, surface, textures, p, rand.New(rand.NewSource(opts.seed)))
	world.SetOutput(output, opts.logStats)
	world.SpawnInitialPopulation()

	slog.Info("starting simulation",
		"seed", opts.seed,
		"headless", opts.headless,
		"terminal", opts.terminal,
		"sheep", cfg.Population.InitialSheep,
		"wolves", cfg.Population.InitialWolves,
		"period_sec", cfg.Run.PeriodSec,
		"max_ticks", opts.maxTicks,
	)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	app := game.NewApp(p, surface, world, cfg, game.Options{MaxTicks: opts.maxTicks})
	return app.Run(ctx)
}

func newPlatform(cfg *config.Config, opts runOptions) (platform.Platform, error) {
	switch {
	case opts.headless:
		return platform.NewHeadless(), nil
	case opts.terminal:
		return terminal.New()
	default:
		return renderer.New(cfg.Screen.Title, cfg.Screen.TargetFPS), nil
	}
}

// startProfile starts a cpu or mem profile. The returned func stops it.
func startProfile(mode, dir string) (func(), error) {
	if dir == "" {
		dir = "."
	}
	switch mode {
	case "":
		return nil, nil
	case "cpu":
		return profile.Start(profile.CPUProfile, profile.ProfilePath(dir), profile.NoShutdownHook).Stop, nil
	case "mem":
		return profile.Start(profile.MemProfileAllocs, profile.ProfilePath(dir), profile.NoShutdownHook).Stop, nil
	}
	return nil, fmt.Errorf("unknown profile mode %q (want cpu or mem)", mode)
}
