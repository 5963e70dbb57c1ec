package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\") error = %v", err)
	}

	if cfg.Screen.Width != 640 || cfg.Screen.Height != 480 {
		t.Errorf("screen = %dx%d, want 640x480", cfg.Screen.Width, cfg.Screen.Height)
	}
	if cfg.Population.MaxAnimals != 50 {
		t.Errorf("max_animals = %d, want 50", cfg.Population.MaxAnimals)
	}
	if cfg.Timers.BreedMS != 4000 || cfg.Timers.StarveMS != 8000 {
		t.Errorf("timers = %d/%d, want 4000/8000", cfg.Timers.BreedMS, cfg.Timers.StarveMS)
	}
	if cfg.Distance.Hunt != 10 || cfg.Distance.Interact != 20 || cfg.Distance.Flee != 100 {
		t.Errorf("distances = %+v", cfg.Distance)
	}

	// Derived inset boundary
	if cfg.Derived.MinX != 100 || cfg.Derived.MaxX != 540 {
		t.Errorf("x bounds = [%d,%d], want [100,540]", cfg.Derived.MinX, cfg.Derived.MaxX)
	}
	if cfg.Derived.MinY != 100 || cfg.Derived.MaxY != 380 {
		t.Errorf("y bounds = [%d,%d], want [100,380]", cfg.Derived.MinY, cfg.Derived.MaxY)
	}
	if cfg.Derived.FrameMS != 16 {
		t.Errorf("FrameMS = %d, want 16", cfg.Derived.FrameMS)
	}
	if cfg.Derived.ExitMS != cfg.Derived.PeriodMS+5000 {
		t.Errorf("ExitMS = %d, want PeriodMS+5000", cfg.Derived.ExitMS)
	}
}

func TestLoadMergesUserFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := []byte("population:\n  max_animals: 12\nspeed:\n  wolf: 3\n")
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load error = %v", err)
	}

	if cfg.Population.MaxAnimals != 12 {
		t.Errorf("max_animals = %d, want 12", cfg.Population.MaxAnimals)
	}
	if cfg.Speed.Wolf != 3 {
		t.Errorf("speed.wolf = %d, want 3", cfg.Speed.Wolf)
	}
	// Untouched fields keep their defaults
	if cfg.Speed.Sheep != 2 {
		t.Errorf("speed.sheep = %d, want default 2", cfg.Speed.Sheep)
	}
	if cfg.Population.InitialSheep != 10 {
		t.Errorf("initial_sheep = %d, want default 10", cfg.Population.InitialSheep)
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"bad yaml", "screen: [1, 2"},
		{"margin too wide", "arena:\n  margin: 300\n"},
		{"negative cap", "population:\n  max_animals: -1\n"},
		{"zero fps", "screen:\n  target_fps: 0\n"},
		{"negative fps", "screen:\n  target_fps: -30\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.yaml")
			if err := os.WriteFile(path, []byte(tt.body), 0644); err != nil {
				t.Fatal(err)
			}
			if _, err := Load(path); err == nil {
				t.Error("expected error, got nil")
			}
		})
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestWriteYAMLRoundTrip(t *testing.T) {
	cfg := Default()
	cfg.Population.InitialWolves = 7

	path := filepath.Join(t.TempDir(), "out.yaml")
	if err := cfg.WriteYAML(path); err != nil {
		t.Fatalf("WriteYAML error = %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load error = %v", err)
	}
	if loaded.Population.InitialWolves != 7 {
		t.Errorf("initial_wolves = %d, want 7", loaded.Population.InitialWolves)
	}
}

func TestCfgPanicsBeforeInit(t *testing.T) {
	saved := global
	global = nil
	defer func() {
		global = saved
		if recover() == nil {
			t.Error("Cfg() did not panic before Init()")
		}
	}()
	Cfg()
}
