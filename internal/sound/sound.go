// Package sound turns simulation events into short beeps.
package sound

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"

	"github.com/Garsondee/zolyx/internal/sim"
)

const sampleRate = beep.SampleRate(44100)

// Cue is a single tone.
type Cue struct {
	Freq float64
	Dur  time.Duration
}

// cues maps "category/key" event names to tones.
var cues = map[string]Cue{
	"player/draw_start": {660, 25 * time.Millisecond},
	"player/draw_end":   {990, 40 * time.Millisecond},
	"fill/closed":       {880, 120 * time.Millisecond},
	"cursor/activated":  {440, 60 * time.Millisecond},
	"spark/killed":      {1320, 70 * time.Millisecond},
	"spark/on_trail":    {1320, 70 * time.Millisecond},
	"death/collision":   {110, 400 * time.Millisecond},
	"death/out_of_time": {98, 500 * time.Millisecond},
	"level/complete":    {1760, 250 * time.Millisecond},
	"game/over":         {82, 800 * time.Millisecond},
}

// CueFor returns the tone for an event, if it has one.
func CueFor(e sim.SimLogEntry) (Cue, bool) {
	c, ok := cues[e.Category+"/"+e.Key]
	return c, ok
}

// Tone builds a finite sine streamer for a cue at the given volume, where 0
// is unchanged and each -1 halves the amplitude.
func Tone(sr beep.SampleRate, c Cue, volume float64) (beep.Streamer, error) {
	sine, err := generators.SineTone(sr, c.Freq)
	if err != nil {
		return nil, fmt.Errorf("sine %.0fHz: %w", c.Freq, err)
	}
	return &effects.Volume{
		Streamer: beep.Take(sr.N(c.Dur), sine),
		Base:     2,
		Volume:   volume,
	}, nil
}

// Player plays cues on the default audio device. A disabled Player accepts
// events and does nothing, so hosts never branch on audio availability.
type Player struct {
	mu      sync.Mutex
	enabled bool
	volume  float64
}

// NewPlayer returns a disabled player; call Init to open the device.
func NewPlayer(volume float64) *Player {
	return &Player{volume: volume}
}

// Init opens the speaker.
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.enabled {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/20)); err != nil {
		return fmt.Errorf("init speaker: %w", err)
	}
	p.enabled = true
	return nil
}

// Enabled reports whether the device is open.
func (p *Player) Enabled() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.enabled
}

// Handle plays the cue of every event that has one.
func (p *Player) Handle(events []sim.SimLogEntry) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.enabled {
		return
	}
	for _, e := range events {
		c, ok := CueFor(e)
		if !ok {
			continue
		}
		s, err := Tone(sampleRate, c, p.volume)
		if err != nil {
			continue
		}
		speaker.Play(s)
	}
}

// Close stops playback and releases the device.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.enabled {
		return
	}
	speaker.Clear()
	speaker.Close()
	p.enabled = false
}
