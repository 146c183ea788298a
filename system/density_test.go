package system

import (
	"testing"

	"github.com/lixenwraith/metro-sim/component"
	"github.com/lixenwraith/metro-sim/engine"
	"github.com/lixenwraith/metro-sim/network"
	"github.com/lixenwraith/metro-sim/parameter"
)

func TestDensityEmptyIsLowColor(t *testing.T) {
	s := engine.NewState(engine.NewSimulatedClock(0, 0), 1)
	for _, st := range s.Stations {
		tiles := DensityField(s, st)
		if len(tiles) != parameter.HeatmapTilesPerSide*parameter.HeatmapTilesPerSide {
			t.Fatalf("%s: expected 16 tiles, got %d", st.ID, len(tiles))
		}
		for _, tile := range tiles {
			if tile.Density != 0 || tile.Color != parameter.DensityLowColor {
				t.Errorf("%s: expected low color on empty platform, got %+v", st.ID, tile)
			}
		}
	}
}

func TestDensitySaturatedIsHighColor(t *testing.T) {
	s := engine.NewState(engine.NewSimulatedClock(0, 0), 1)
	st, _ := s.Station(network.StationE)
	center := network.TileCenters(st)[0]

	for i := 0; i < 6; i++ {
		h := NewHuman(s, st)
		h.Position = center
		st.Push(h)
	}

	tiles := DensityField(s, st)
	if tiles[0].Density < parameter.DensitySaturation {
		t.Fatalf("Expected saturated density, got %v", tiles[0].Density)
	}
	if tiles[0].Level != 1 || tiles[0].Color != parameter.DensityHighColor {
		t.Errorf("Expected high color, got %+v", tiles[0])
	}
}

func TestDensityPoolsInterchange(t *testing.T) {
	s := engine.NewState(engine.NewSimulatedClock(0, 0), 1)
	green, _ := s.Station(network.StationBGreen)
	purple, _ := s.Station(network.StationBPurple)

	center := network.TileCenters(green)[5]
	h := NewHuman(s, purple)
	h.Position.X, h.Position.Z = center.X, center.Z
	purple.Push(h)

	// Purple occupant shows on the green grid and its own
	if got := DensityField(s, green)[5].Density; got != 1 {
		t.Errorf("Expected pooled density 1 on green, got %v", got)
	}
	if got := DensityField(s, purple)[5].Density; got != 1 {
		t.Errorf("Expected density 1 on purple, got %v", got)
	}
}

func TestTileDensityFalloff(t *testing.T) {
	s := engine.NewState(engine.NewSimulatedClock(0, 0), 1)
	st, _ := s.Station(network.StationD)
	center := network.TileCenters(st)[0]
	radius := network.TileSize(false)

	h := NewHuman(s, st)
	h.Position.X, h.Position.Z = center.X+radius/2, center.Z
	far := NewHuman(s, st)
	far.Position.X, far.Position.Z = center.X+radius, center.Z

	got := TileDensity(center, []*component.Human{h, far}, radius)
	if got != 0.5 {
		t.Errorf("Expected half contribution and none at radius, got %v", got)
	}
	if TileDensity(center, []*component.Human{h}, 0) != 0 {
		t.Error("Expected zero radius to yield no density")
	}
}

func TestLerpColor(t *testing.T) {
	tests := []struct {
		level float64
		want  uint32
	}{
		{0, 0x00ff00},
		{1, 0xff0000},
		{0.5, 0x808000},
		{-1, 0x00ff00},
		{2, 0xff0000},
	}
	for _, tt := range tests {
		if got := DensityColor(tt.level); got != tt.want {
			t.Errorf("DensityColor(%v) = %06x, want %06x", tt.level, got, tt.want)
		}
	}
}

func TestIndicatorPulse(t *testing.T) {
	if active, scale := IndicatorPulse(25, 40, 1000); active || scale != 1 {
		t.Errorf("Expected inactive at threshold, got %v %v", active, scale)
	}
	if active, scale := IndicatorPulse(30, 40, 1000); !active || scale != 1.5 {
		t.Errorf("Expected guarded pulse at zero divisor, got %v %v", active, scale)
	}
	for ms := 0.0; ms < 5000; ms += 37 {
		active, scale := IndicatorPulse(40, 40, ms)
		if !active || scale < 1 || scale > 2 {
			t.Fatalf("Pulse out of [1,2] at %v: %v", ms, scale)
		}
	}
}
