package network

import (
	"github.com/lixenwraith/metro-sim/component"
	"github.com/lixenwraith/metro-sim/parameter"
	"github.com/lixenwraith/metro-sim/vmath"
)

// TileSize returns the heatmap tile edge for a platform class
func TileSize(interchange bool) float64 {
	if interchange {
		return parameter.InterchangeTileSize
	}
	return parameter.TerminalTileSize
}

// TileCenters returns the fixed heatmap grid of a station, X-major then Z
func TileCenters(s *component.Station) []vmath.Vec3F {
	size := TileSize(s.Interchange)
	n := parameter.HeatmapTilesPerSide
	half := float64(n-1) / 2
	y := s.Position.Y + parameter.StationFloorHeight/2 + parameter.TileLift

	centers := make([]vmath.Vec3F, 0, n*n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			centers = append(centers, vmath.Vec3F{
				X: s.Position.X + (float64(i)-half)*size,
				Y: y,
				Z: s.Position.Z + (float64(j)-half)*size,
			})
		}
	}
	return centers
}
