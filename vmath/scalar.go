package vmath

// Clamp limits v to [lo, hi]
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Lerp performs linear interpolation between a and b
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// ReflectAxis clamps pos into [lo, hi] and flips vel when a bound was breached
// Returns true if the bound was hit
func ReflectAxis(pos, vel *float64, lo, hi float64) bool {
	if *pos < lo || *pos > hi {
		*pos = Clamp(*pos, lo, hi)
		*vel = -*vel
		return true
	}
	return false
}
