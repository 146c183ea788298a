package component

import "github.com/lixenwraith/metro-sim/vmath"

// Station holds a platform's static footprint and its live crowd
// Crowd is append ordered and boarding pops from the end (LIFO)
type Station struct {
	ID          StationID
	Name        string
	Position    vmath.Vec3F
	Footprint   float64
	Interchange bool
	Elevated    bool
	Capacity    int

	Crowd []*Human
}

// Len returns current crowd size
func (s *Station) Len() int {
	return len(s.Crowd)
}

// Free returns remaining room before capacity, never negative
func (s *Station) Free() int {
	if free := s.Capacity - len(s.Crowd); free > 0 {
		return free
	}
	return 0
}

// Push appends a human to the crowd
func (s *Station) Push(h *Human) {
	s.Crowd = append(s.Crowd, h)
}

// Pop removes and returns the most recently added human
func (s *Station) Pop() (*Human, bool) {
	n := len(s.Crowd)
	if n == 0 {
		return nil, false
	}
	h := s.Crowd[n-1]
	s.Crowd[n-1] = nil
	s.Crowd = s.Crowd[:n-1]
	return h, true
}

// Remove deletes a specific human preserving order of the rest
func (s *Station) Remove(h *Human) bool {
	for i, c := range s.Crowd {
		if c == h {
			copy(s.Crowd[i:], s.Crowd[i+1:])
			s.Crowd[len(s.Crowd)-1] = nil
			s.Crowd = s.Crowd[:len(s.Crowd)-1]
			return true
		}
	}
	return false
}
