package main

import (
	"context"
	"image/color"
	"time"

	"github.com/plus3/shapeinvaders/invaders"
	"github.com/plus3/shapeinvaders/invaders/input"
)

const tickRate = 60

// countingSurface discards drawing and counts the calls.
type countingSurface struct {
	calls int64
}

func (s *countingSurface) Clear(color.Color) { s.calls++ }

func (s *countingSurface) FillRect(invaders.Transform, float64, float64, float64, float64, color.Color) {
	s.calls++
}

func (s *countingSurface) FillPolygon(invaders.Transform, []invaders.Vec, color.Color) { s.calls++ }

func (s *countingSurface) FillCircle(invaders.Transform, float64, float64, float64, color.Color) {
	s.calls++
}

// soak drives game with the autopilot until ctx is done or maxTicks ticks ran
// (maxTicks <= 0 means no limit). Finished games are restarted.
func soak(ctx context.Context, game *invaders.Game, maxTicks int64, results *Results) {
	ctrl := input.FromConfig(game.Config())
	pilot := &autopilot{ctrl: ctrl}
	surface := &countingSurface{}
	dt := 1.0 / tickRate

	for maxTicks <= 0 || results.Ticks < maxTicks {
		select {
		case <-ctx.Done():
			return
		default:
		}

		pilot.steer(game)

		start := time.Now()
		game.Update(ctrl.Poll(dt), dt)
		results.TickTime.Samples = append(results.TickTime.Samples, time.Since(start))

		game.Render(surface)
		results.DrawCalls = surface.calls
		results.Ticks++

		for _, e := range game.Events() {
			results.record(e)
		}

		if game.Status().Over() {
			game.Restart()
			ctrl.Reset()
			pilot.fireHeld = false
		}
	}
}
