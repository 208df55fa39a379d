package beepaudio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/vovakirdan/tui-invaders/internal/audio"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// oscillator generates a raw wave of fixed length. A negative length
// streams forever.
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
	seed     uint32
}

// NewOscillator creates a new oscillator for wave generation
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
		seed:     2463534242,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.duration >= 0 && o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		case WaveNoise:
			// xorshift keeps noise deterministic per sound
			o.seed ^= o.seed << 13
			o.seed ^= o.seed >> 17
			o.seed ^= o.seed << 5
			val = float64(o.seed)/float64(math.MaxUint32)*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase) // Keep in [0, 1)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies a linear attack and release to a stream
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	totalSamples   int
}

// NewEnvelope creates an attack/release envelope of the given total length.
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &envelope{
		streamer:       s,
		attackSamples:  rate.N(attack),
		releaseSamples: rate.N(release),
		totalSamples:   rate.N(duration),
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	releaseStart := e.totalSamples - e.releaseSamples
	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, i > 0
		}

		vol := 1.0
		if e.position < e.attackSamples && e.attackSamples > 0 {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		if e.position >= releaseStart && e.releaseSamples > 0 {
			vol = math.Max(0, float64(e.totalSamples-e.position)/float64(e.releaseSamples))
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume scales a stream linearly. math.Log2(0) is -Inf, so zero
// volume is handled as silence.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// tone is an enveloped oscillator.
func tone(freq float64, d time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	attack := d / 10
	return NewEnvelope(NewOscillator(freq, d, wave, rate), d, attack, d/2, rate)
}

// effectStreamer builds the sound for an effect.
func effectStreamer(e audio.Effect, rate beep.SampleRate) beep.Streamer {
	switch e {
	case audio.EffectShoot:
		return newVolume(tone(880, 60*time.Millisecond, WaveSquare, rate), 0.15)
	case audio.EffectEnemyHit:
		return newVolume(tone(0, 150*time.Millisecond, WaveNoise, rate), 0.3)
	case audio.EffectShipHit:
		return beep.Seq(
			newVolume(tone(0, 250*time.Millisecond, WaveNoise, rate), 0.4),
			newVolume(tone(110, 300*time.Millisecond, WaveSaw, rate), 0.3),
		)
	case audio.EffectBossHit:
		return newVolume(tone(220, 120*time.Millisecond, WaveSaw, rate), 0.3)
	case audio.EffectItem:
		return beep.Mix(
			newVolume(tone(1320, 200*time.Millisecond, WaveSine, rate), 0.3),
			newVolume(tone(2640, 200*time.Millisecond, WaveSine, rate), 0.1),
		)
	case audio.EffectBomb:
		return newVolume(tone(0, 600*time.Millisecond, WaveNoise, rate), 0.5)
	case audio.EffectUltimate:
		return beep.Seq(
			newVolume(tone(440, 100*time.Millisecond, WaveSquare, rate), 0.2),
			newVolume(tone(660, 100*time.Millisecond, WaveSquare, rate), 0.2),
			newVolume(tone(880, 200*time.Millisecond, WaveSquare, rate), 0.2),
		)
	case audio.EffectRoundEnd:
		return beep.Seq(
			newVolume(tone(523.25, 150*time.Millisecond, WaveSine, rate), 0.3),
			newVolume(tone(659.25, 150*time.Millisecond, WaveSine, rate), 0.3),
			newVolume(tone(783.99, 300*time.Millisecond, WaveSine, rate), 0.3),
		)
	default:
		return nil
	}
}

// LoopGenerator plays an endless bass arpeggio, one note per step.
type LoopGenerator struct {
	rate  beep.SampleRate
	notes []float64
	step  int
	pos   int
	phase float64
}

// NewLoopGenerator creates the looping background for a track.
func NewLoopGenerator(t audio.Track, rate beep.SampleRate) *LoopGenerator {
	g := &LoopGenerator{rate: rate}
	switch t {
	case audio.TrackBoss:
		g.notes = []float64{55, 58.27, 55, 51.91}
		g.step = rate.N(200 * time.Millisecond)
	case audio.TrackLevel:
		g.notes = []float64{65.41, 65.41, 98, 87.31}
		g.step = rate.N(300 * time.Millisecond)
	default:
		g.notes = []float64{110, 130.81, 164.81, 130.81}
		g.step = rate.N(400 * time.Millisecond)
	}
	return g
}

func (g *LoopGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		note := g.notes[(g.pos/g.step)%len(g.notes)]
		inStep := float64(g.pos%g.step) / float64(g.step)

		// pluck envelope per note
		val := 0.12 * math.Exp(-inStep*4) * math.Sin(2*math.Pi*g.phase)
		g.phase += note / float64(g.rate)
		g.phase -= math.Floor(g.phase)

		samples[i][0] = val
		samples[i][1] = val
		g.pos++
	}
	return len(samples), true
}

func (g *LoopGenerator) Err() error { return nil }
