package telemetry

import (
	"math"
	"testing"

	"github.com/pthm-cable/pasture/components"
)

func TestComputeCountStats(t *testing.T) {
	tests := []struct {
		name     string
		values   []float64
		wantMean float64
		wantStd  float64
	}{
		{"empty", nil, 0, 0},
		{"single", []float64{7}, 7, 0},
		{"constant", []float64{3, 3, 3, 3}, 3, 0},
		{"spread", []float64{2, 4, 4, 4, 5, 5, 7, 9}, 5, 2.138},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mean, std := ComputeCountStats(tt.values)
			if math.Abs(mean-tt.wantMean) > 0.001 {
				t.Errorf("mean = %v, want %v", mean, tt.wantMean)
			}
			if math.Abs(std-tt.wantStd) > 0.001 {
				t.Errorf("std = %v, want %v", std, tt.wantStd)
			}
		})
	}
}

func TestCollectorWindow(t *testing.T) {
	c := NewCollector(3)

	c.Record(NewBirthEvent(1, components.KindSheep))
	c.Record(NewBirthEvent(1, components.KindSheep))
	c.Record(NewKillEvent(2))
	c.Record(NewStarveEvent(2))
	c.Record(NewCapDropEvent(2, components.KindSheep))

	for tick := int64(1); tick <= 3; tick++ {
		c.Sample(int(tick)+10, 2)
		if got := c.ShouldFlush(tick); got != (tick == 3) {
			t.Errorf("ShouldFlush(%d) = %v", tick, got)
		}
	}

	s := c.Flush(3, 50, 13, 2)
	if s.WindowStartTick != 0 || s.WindowEndTick != 3 {
		t.Errorf("window = [%d, %d]", s.WindowStartTick, s.WindowEndTick)
	}
	if s.Births != 2 || s.Kills != 1 || s.Starvations != 1 || s.CapDrops != 1 {
		t.Errorf("events = %+v", s)
	}
	if s.Sheep != 13 || s.Wolves != 2 {
		t.Errorf("counts = %d/%d", s.Sheep, s.Wolves)
	}
	if math.Abs(s.SheepMean-12) > 1e-9 || math.Abs(s.SheepStd-1) > 1e-9 {
		t.Errorf("sheep mean/std = %v/%v, want 12/1", s.SheepMean, s.SheepStd)
	}
	if s.WolfMean != 2 || s.WolfStd != 0 {
		t.Errorf("wolf mean/std = %v/%v", s.WolfMean, s.WolfStd)
	}
	if math.Abs(s.SimTimeSec-0.05) > 1e-9 {
		t.Errorf("sim time = %v", s.SimTimeSec)
	}

	// Counters reset
	next := c.Flush(6, 100, 13, 2)
	if next.WindowStartTick != 3 || next.Births != 0 || next.Kills != 0 || next.SheepMean != 0 {
		t.Errorf("second window not reset: %+v", next)
	}
}

func TestEventTypeString(t *testing.T) {
	if EventCapDrop.String() != "cap_drop" || EventType(42).String() != "unknown" {
		t.Error("event names mismatch")
	}
}
