package system

import (
	"math"

	"github.com/lixenwraith/metro-sim/component"
	"github.com/lixenwraith/metro-sim/engine"
	"github.com/lixenwraith/metro-sim/network"
	"github.com/lixenwraith/metro-sim/parameter"
	"github.com/lixenwraith/metro-sim/vmath"
)

// Tile is one heatmap cell with its computed density
type Tile struct {
	Center vmath.Vec3F
	// Density is the raw cumulative closeness of nearby humans
	Density float64
	// Level is Density normalised to [0,1]
	Level float64
	Color uint32
}

// DensityField computes the heatmap tiles of one station
// Interchange platforms pool both halves; distance is planar since the halves stack vertically
// Caller holds the update lock
func DensityField(s *engine.State, st *component.Station) []Tile {
	humans := st.Crowd
	if partnerID, ok := network.InterchangePartner(st.ID); ok {
		if partner, ok := s.Station(partnerID); ok {
			humans = make([]*component.Human, 0, st.Len()+partner.Len())
			humans = append(humans, st.Crowd...)
			humans = append(humans, partner.Crowd...)
		}
	}

	radius := network.TileSize(st.Interchange)
	centers := network.TileCenters(st)
	tiles := make([]Tile, len(centers))
	for i, c := range centers {
		d := TileDensity(c, humans, radius)
		level := DensityLevel(d)
		tiles[i] = Tile{Center: c, Density: d, Level: level, Color: DensityColor(level)}
	}
	return tiles
}

// TileDensity sums 1 - d/radius over humans closer than radius on the X/Z plane
func TileDensity(center vmath.Vec3F, humans []*component.Human, radius float64) float64 {
	if radius <= 0 {
		return 0
	}
	density := 0.0
	for _, h := range humans {
		d := math.Hypot(h.Position.X-center.X, h.Position.Z-center.Z)
		if d < radius {
			density += 1 - d/radius
		}
	}
	return density
}

// DensityLevel normalises density against the saturation value
func DensityLevel(density float64) float64 {
	return math.Min(math.Max(density, 0)/parameter.DensitySaturation, 1)
}

// DensityColor linearly blends the low and high colors per channel
func DensityColor(level float64) uint32 {
	return LerpColor(parameter.DensityLowColor, parameter.DensityHighColor, vmath.Clamp(level, 0, 1))
}

// LerpColor interpolates two 0xRRGGBB values
func LerpColor(a, b uint32, t float64) uint32 {
	ch := func(shift uint) uint32 {
		ca := float64((a >> shift) & 0xff)
		cb := float64((b >> shift) & 0xff)
		return uint32(math.Round(vmath.Lerp(ca, cb, t))) << shift
	}
	return ch(16) | ch(8) | ch(0)
}
