package main

import (
	"math"

	"github.com/plus3/shapeinvaders/invaders"
	"github.com/plus3/shapeinvaders/invaders/input"
)

// autopilot steers under the lowest enemy and taps fire whenever it is lined up.
type autopilot struct {
	ctrl     *input.Controller
	fireHeld bool
}

func (a *autopilot) steer(game *invaders.Game) {
	ship := game.Ship()
	target, ok := lowestEnemy(game.Enemies(), ship.Center().X)
	if !ok {
		a.release()
		return
	}

	muzzle := ship.X + ship.W/2 + invaders.BulletWidth/2
	diff := target.Center().X - muzzle
	tolerance := target.W / 4

	switch {
	case diff < -tolerance:
		a.ctrl.KeyUp(input.KeyRight)
		a.ctrl.KeyDown(input.KeyLeft)
	case diff > tolerance:
		a.ctrl.KeyUp(input.KeyLeft)
		a.ctrl.KeyDown(input.KeyRight)
	default:
		a.ctrl.KeyUp(input.KeyLeft)
		a.ctrl.KeyUp(input.KeyRight)
	}

	if a.fireHeld {
		a.ctrl.KeyUp(input.KeyFire)
		a.fireHeld = false
	} else if math.Abs(diff) < target.W/2 {
		a.ctrl.KeyDown(input.KeyFire)
		a.fireHeld = true
	}
}

func (a *autopilot) release() {
	a.ctrl.KeyUp(input.KeyLeft)
	a.ctrl.KeyUp(input.KeyRight)
	a.ctrl.KeyUp(input.KeyFire)
	a.fireHeld = false
}

// lowestEnemy picks the enemy closest to the ship's row, breaking ties by
// horizontal distance to x.
func lowestEnemy(enemies []invaders.Box, x float64) (invaders.Box, bool) {
	if len(enemies) == 0 {
		return invaders.Box{}, false
	}
	best := enemies[0]
	for _, e := range enemies[1:] {
		switch {
		case e.Y > best.Y:
			best = e
		case e.Y == best.Y && math.Abs(e.Center().X-x) < math.Abs(best.Center().X-x):
			best = e
		}
	}
	return best, true
}
