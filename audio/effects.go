package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/lixenwraith/metro-sim/parameter"
)

// WaveType selects an oscillator shape
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveTriangle
)

// waves maps a phase in [0,1) to a sample in [-1,1]
var waves = [...]func(phase float64) float64{
	WaveSine: func(p float64) float64 { return math.Sin(2 * math.Pi * p) },
	WaveSquare: func(p float64) float64 {
		if p < 0.5 {
			return 1
		}
		return -1
	},
	WaveTriangle: func(p float64) float64 { return 1 - 4*math.Abs(p-0.5) },
}

// NewOscillator streams exactly rate.N(duration) samples of a unit amplitude tone
func NewOscillator(freq float64, duration time.Duration, shape WaveType, rate beep.SampleRate) beep.Streamer {
	sample := waves[shape]
	step := freq / float64(rate)
	left := rate.N(duration)
	phase := 0.0

	return beep.StreamerFunc(func(buf [][2]float64) (int, bool) {
		if left <= 0 {
			return 0, false
		}
		n := min(len(buf), left)
		for i := range buf[:n] {
			v := sample(phase)
			buf[i] = [2]float64{v, v}
			phase = math.Mod(phase+step, 1)
		}
		left -= n
		return n, true
	})
}

// NewEnvelope cuts s at duration and applies linear attack and release ramps
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total, up, down := rate.N(duration), rate.N(attack), rate.N(release)
	gain := func(pos int) float64 {
		g := 1.0
		if pos < up {
			g = float64(pos) / float64(up)
		}
		if down > 0 && pos >= total-down {
			g = min(g, float64(total-pos)/float64(down))
		}
		return g
	}

	pos := 0
	return beep.StreamerFunc(func(buf [][2]float64) (int, bool) {
		if pos >= total {
			return 0, false
		}
		n, ok := s.Stream(buf[:min(len(buf), total-pos)])
		for i := range buf[:n] {
			g := gain(pos)
			buf[i][0] *= g
			buf[i][1] *= g
			pos++
		}
		return n, ok
	})
}

// newVolume wraps s with a linear gain, zero maps to silent since log2(0) is -Inf
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// CreateChimeSound generates the rising two-note door chime played when riders board
func CreateChimeSound(rate beep.SampleRate, volume float64) beep.Streamer {
	note := func(freq float64) beep.Streamer {
		osc := NewOscillator(freq, parameter.ChimeNoteDuration, WaveSine, rate)
		return NewEnvelope(osc, parameter.ChimeNoteDuration, parameter.ChimeAttack, parameter.ChimeRelease, rate)
	}
	// E5 then A5
	return newVolume(beep.Seq(note(659.25), note(880.0)), volume)
}

// CreateSurgeSound generates a low swelling triangle chord for a peak-hour surge
func CreateSurgeSound(rate beep.SampleRate, volume float64) beep.Streamer {
	voice := func(freq float64) beep.Streamer {
		osc := NewOscillator(freq, parameter.SurgeDuration, WaveTriangle, rate)
		return NewEnvelope(osc, parameter.SurgeDuration, parameter.SurgeAttack, parameter.SurgeRelease, rate)
	}
	mixed := beep.Mix(
		newVolume(voice(110.0), 0.6),
		newVolume(voice(164.81), 0.4),
	)
	return newVolume(mixed, volume)
}

// CreateClickSound generates the short tick played on display toggles
func CreateClickSound(rate beep.SampleRate, volume float64) beep.Streamer {
	osc := NewOscillator(1200.0, parameter.ClickDuration, WaveSquare, rate)
	shaped := NewEnvelope(osc, parameter.ClickDuration, parameter.ClickAttack, parameter.ClickRelease, rate)
	return newVolume(shaped, volume*0.3)
}

// GetSoundEffect returns a fresh streamer for the cue, nil for unknown types
func GetSoundEffect(st SoundType, rate beep.SampleRate, volume float64) beep.Streamer {
	switch st {
	case SoundChime:
		return CreateChimeSound(rate, volume)
	case SoundSurge:
		return CreateSurgeSound(rate, volume)
	case SoundClick:
		return CreateClickSound(rate, volume)
	default:
		return nil
	}
}
