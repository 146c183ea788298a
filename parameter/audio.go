package parameter

import "time"

// Audio
const (
	// AudioSampleRate is the speaker rate in Hz
	AudioSampleRate = 44100

	// AudioBufferDuration is the speaker buffer length
	AudioBufferDuration = 100 * time.Millisecond

	// AudioMinInterval throttles repeats of the same cue
	AudioMinInterval = 250 * time.Millisecond
)

// Cue shapes
const (
	ChimeNoteDuration = 120 * time.Millisecond
	ChimeAttack       = 5 * time.Millisecond
	ChimeRelease      = 90 * time.Millisecond

	SurgeDuration = 400 * time.Millisecond
	SurgeAttack   = 30 * time.Millisecond
	SurgeRelease  = 250 * time.Millisecond

	ClickDuration = 30 * time.Millisecond
	ClickAttack   = 2 * time.Millisecond
	ClickRelease  = 20 * time.Millisecond
)
