// Package beepaudio drives the sound device with beep. Effects and loops
// are synthesized on the fly; there are no sound assets.
package beepaudio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/tui-invaders/internal/audio"
)

const (
	sampleRate = beep.SampleRate(44100)
)

var _ audio.Player = (*SoundManager)(nil)

// SoundManager plays effects and one background loop through a shared mixer.
// It is safe for concurrent use.
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	loop        *beep.Ctrl
	volume      float64
	initialized bool
}

// NewSoundManager creates a sound manager. volume is a linear gain in [0, 1].
func NewSoundManager(volume float64) *SoundManager {
	return &SoundManager{
		mixer:  &beep.Mixer{},
		volume: volume,
	}
}

// Initialize sets up the audio device. Until it succeeds every call is a
// silent no-op.
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	// Initialize speaker with sample rate and buffer size
	if err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*100)); err != nil {
		return err
	}

	speaker.Play(newVolume(sm.mixer, sm.volume))
	sm.initialized = true
	return nil
}

// Play starts a one-shot effect.
func (sm *SoundManager) Play(e audio.Effect) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	s := effectStreamer(e, sampleRate)
	if s == nil {
		return
	}

	speaker.Lock()
	sm.mixer.Add(s)
	speaker.Unlock()
}

// StartLoop replaces the background loop with t.
func (sm *SoundManager) StartLoop(t audio.Track) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	ctrl := &beep.Ctrl{Streamer: NewLoopGenerator(t, sampleRate)}
	speaker.Lock()
	if sm.loop != nil {
		sm.loop.Streamer = nil
	}
	sm.loop = ctrl
	sm.mixer.Add(ctrl)
	speaker.Unlock()
}

// Stop silences everything currently playing.
func (sm *SoundManager) Stop() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	if sm.loop != nil {
		sm.loop.Streamer = nil
		sm.loop = nil
	}
	sm.mixer.Clear()
	speaker.Unlock()
}
