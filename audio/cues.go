// Package audio plays short synthesized tones for game events.
package audio

import (
	"fmt"
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
	"github.com/plus3/shapeinvaders/invaders"
)

const SampleRate = beep.SampleRate(44100)

type note struct {
	freq     float64
	duration time.Duration
}

type cue struct {
	notes  []note
	volume float64
}

var cues = map[invaders.EventKind]cue{
	invaders.EventShot: {
		notes:  []note{{880, 40 * time.Millisecond}},
		volume: 0.25,
	},
	invaders.EventKill: {
		notes:  []note{{660, 30 * time.Millisecond}, {440, 60 * time.Millisecond}},
		volume: 0.5,
	},
	invaders.EventWave: {
		notes:  []note{{523.25, 80 * time.Millisecond}, {659.25, 80 * time.Millisecond}, {783.99, 120 * time.Millisecond}},
		volume: 0.5,
	},
	invaders.EventGameOver: {
		notes:  []note{{392, 150 * time.Millisecond}, {311.13, 150 * time.Millisecond}, {196, 400 * time.Millisecond}},
		volume: 0.6,
	},
}

// Cue builds the streamer for kind, or returns nil when kind is silent.
func Cue(sr beep.SampleRate, kind invaders.EventKind) (beep.Streamer, error) {
	c, ok := cues[kind]
	if !ok {
		return nil, nil
	}

	parts := make([]beep.Streamer, 0, len(c.notes))
	for _, n := range c.notes {
		tone, err := generators.SineTone(sr, n.freq)
		if err != nil {
			return nil, fmt.Errorf("%s cue: %w", kind, err)
		}
		parts = append(parts, beep.Take(sr.N(n.duration), tone))
	}

	return &effects.Volume{
		Streamer: beep.Seq(parts...),
		Base:     2,
		Volume:   math.Log2(c.volume),
	}, nil
}

// Duration is the total length of the cue for kind.
func Duration(kind invaders.EventKind) time.Duration {
	var total time.Duration
	for _, n := range cues[kind].notes {
		total += n.duration
	}
	return total
}

// Player sends cues to the system speaker.
type Player struct {
	sr beep.SampleRate
}

// NewPlayer initializes the speaker. Only one Player may exist per process.
func NewPlayer() (*Player, error) {
	if err := speaker.Init(SampleRate, SampleRate.N(time.Second/20)); err != nil {
		return nil, fmt.Errorf("init speaker: %w", err)
	}
	return &Player{sr: SampleRate}, nil
}

// Play starts one cue per distinct event kind in events.
func (p *Player) Play(events []invaders.Event) error {
	var played [invaders.EventRestart + 1]bool
	for _, e := range events {
		if e.Kind < 0 || int(e.Kind) >= len(played) || played[e.Kind] {
			continue
		}
		played[e.Kind] = true

		s, err := Cue(p.sr, e.Kind)
		if err != nil {
			return err
		}
		if s != nil {
			speaker.Play(s)
		}
	}
	return nil
}

// Close stops playback and releases the audio device.
func (p *Player) Close() {
	speaker.Clear()
	speaker.Close()
}
