// Package audio plays short synthesized cues for simulation events.
// Audio is optional: every operation is a no-op until Initialize succeeds.
package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/metro-sim/event"
	"github.com/lixenwraith/metro-sim/parameter"
)

// SoundType represents different sound cues
type SoundType int

const (
	SoundChime SoundType = iota // Riders boarded
	SoundSurge                  // Peak-hour surge
	SoundClick                  // Display toggle
	soundTypeCount
)

// SoundManager routes simulation events to sound cues on a shared mixer
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	rate        beep.SampleRate
	volume      float64
	minInterval time.Duration
	lastPlay    [soundTypeCount]time.Time
	initialized bool

	// now is replaceable for throttle tests
	now func() time.Time
}

// NewSoundManager creates a manager at the given master volume in [0,1]
func NewSoundManager(volume float64) *SoundManager {
	return &SoundManager{
		mixer:       &beep.Mixer{},
		rate:        beep.SampleRate(parameter.AudioSampleRate),
		volume:      min(max(volume, 0), 1),
		minInterval: parameter.AudioMinInterval,
		now:         time.Now,
	}
}

// Initialize opens the speaker and starts the mixer
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	if err := speaker.Init(sm.rate, sm.rate.N(parameter.AudioBufferDuration)); err != nil {
		return err
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup silences all queued cues
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	sm.initialized = false
}

// SetVolume changes the master volume for cues played afterwards
func (sm *SoundManager) SetVolume(volume float64) {
	sm.mu.Lock()
	sm.volume = min(max(volume, 0), 1)
	sm.mu.Unlock()
}

// Play queues a cue unless the same cue played within the throttle interval
func (sm *SoundManager) Play(st SoundType) bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || !sm.admit(st) {
		return false
	}
	s := GetSoundEffect(st, sm.rate, sm.volume)
	if s == nil {
		return false
	}

	speaker.Lock()
	sm.mixer.Add(s)
	speaker.Unlock()
	return true
}

// admit applies the per-cue throttle, caller holds mu
func (sm *SoundManager) admit(st SoundType) bool {
	if st < 0 || st >= soundTypeCount {
		return false
	}
	now := sm.now()
	if !sm.lastPlay[st].IsZero() && now.Sub(sm.lastPlay[st]) < sm.minInterval {
		return false
	}
	sm.lastPlay[st] = now
	return true
}

// EventTypes returns the event types SoundManager handles
func (sm *SoundManager) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventBoarding,
		event.EventPeakSurge,
		event.EventHeatmapToggled,
	}
}

// HandleEvent maps events to cues
func (sm *SoundManager) HandleEvent(ev event.Event) {
	if st, ok := CueFor(ev); ok {
		sm.Play(st)
	}
}

// CueFor selects the cue for an event, boardings without riders stay silent
func CueFor(ev event.Event) (SoundType, bool) {
	switch p := ev.Payload.(type) {
	case *event.BoardingPayload:
		return SoundChime, p.Boarded > 0
	case *event.SurgePayload:
		return SoundSurge, p.Added > 0
	case *event.HeatmapPayload:
		return SoundClick, true
	}
	return 0, false
}
