package parameter

// Simulated Clock
const (
	// RealSecondsPerSimMinute converts wall time to simulated minutes (1 s = 10 min)
	RealSecondsPerSimMinute = 0.1

	// MinutesPerDay is the wrap modulus of the simulated clock
	MinutesPerDay = 1440.0
)

// Peak windows in hours, half-open [start, end)
const (
	MorningPeakStart = 7
	MorningPeakEnd   = 11
	EveningPeakStart = 17
	EveningPeakEnd   = 21
)
