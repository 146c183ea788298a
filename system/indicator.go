package system

import (
	"math"

	"github.com/lixenwraith/metro-sim/parameter"
)

// IndicatorPulse returns whether a station's crowding indicator shows and its scale at wall time ms
// The pulse speeds up as the crowd approaches capacity; inactive indicators keep scale 1
func IndicatorPulse(count, capacity int, ms float64) (bool, float64) {
	if count <= parameter.IndicatorThreshold {
		return false, 1
	}
	excess := float64(count - capacity)
	denom := 1 + excess*parameter.IndicatorExcessFactor
	if denom == 0 {
		return true, 1.5
	}
	period := parameter.IndicatorBasePeriod / denom
	return true, 1.5 + 0.5*math.Sin(ms/period)
}
