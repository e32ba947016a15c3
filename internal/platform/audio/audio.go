// Package audio plays short synthesized tones for game events.
package audio

import (
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/eggshot/internal/core"
)

const sampleRate = beep.SampleRate(48000)

// Cue identifies a sound effect.
type Cue int

const (
	CueNone Cue = iota
	CueCollect
	CueGolden
	CueDestroy
	CueSpawn
	CueDeath
)

func (c Cue) String() string {
	switch c {
	case CueCollect:
		return "collect"
	case CueGolden:
		return "golden"
	case CueDestroy:
		return "destroy"
	case CueSpawn:
		return "spawn"
	case CueDeath:
		return "death"
	default:
		return "none"
	}
}

type note struct {
	freq float64
	dur  time.Duration
}

var cueNotes = map[Cue][]note{
	CueCollect: {{880, 60 * time.Millisecond}},
	CueGolden:  {{987.77, 80 * time.Millisecond}, {1318.51, 140 * time.Millisecond}},
	CueDestroy: {{220, 70 * time.Millisecond}, {165, 90 * time.Millisecond}},
	CueSpawn:   {{330, 120 * time.Millisecond}},
	CueDeath:   {{440, 120 * time.Millisecond}, {330, 120 * time.Millisecond}, {220, 240 * time.Millisecond}},
}

// CueFor picks the sound for a step event. Landings are silent.
func CueFor(ev core.Event) Cue {
	switch ev.Kind {
	case core.EventCollected:
		return CueCollect
	case core.EventGoldenCollected:
		return CueGolden
	case core.EventEnemyDestroyed:
		return CueDestroy
	case core.EventEnemySpawned:
		return CueSpawn
	case core.EventDeath:
		return CueDeath
	default:
		return CueNone
	}
}

// Tone builds the streamer for a cue at the given volume (0..1).
func Tone(c Cue, volume float64) (beep.Streamer, error) {
	notes, ok := cueNotes[c]
	if !ok {
		return nil, fmt.Errorf("audio: no tone for cue %s", c)
	}
	parts := make([]beep.Streamer, 0, len(notes))
	for _, n := range notes {
		sine, err := generators.SineTone(sampleRate, n.freq)
		if err != nil {
			return nil, fmt.Errorf("audio: cue %s: %w", c, err)
		}
		parts = append(parts, beep.Take(sampleRate.N(n.dur), sine))
	}
	return withVolume(beep.Seq(parts...), volume), nil
}

// math.Log2(0) is -Inf, so zero volume becomes silence.
func withVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// Player owns the speaker. The zero value is silent until Init succeeds.
type Player struct {
	mu          sync.Mutex
	volume      float64
	muted       bool
	initialized bool
}

// NewPlayer returns a player at the given volume.
func NewPlayer(volume float64) *Player {
	return &Player{volume: volume}
}

// Init opens the audio device.
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return fmt.Errorf("audio: cannot open speaker: %w", err)
	}
	p.initialized = true
	return nil
}

// Play starts a cue without blocking. It does nothing before Init or while muted.
func (p *Player) Play(c Cue) {
	if p == nil || c == CueNone {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized || p.muted {
		return
	}
	s, err := Tone(c, p.volume)
	if err != nil {
		return
	}
	speaker.Play(s)
}

// ToggleMute flips muting and reports the new state.
func (p *Player) ToggleMute() bool {
	if p == nil {
		return true
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	p.muted = !p.muted
	if p.muted && p.initialized {
		speaker.Clear()
	}
	return p.muted
}

// Muted reports whether cues are suppressed.
func (p *Player) Muted() bool {
	if p == nil {
		return true
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.muted
}

// Close stops playback and releases the device.
func (p *Player) Close() {
	if p == nil {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	speaker.Clear()
	speaker.Close()
	p.initialized = false
}
