// Package input turns raw key and pointer events into the per-tick
// invaders.Input commands. It is host independent; the ebiten host feeds it
// from inpututil, the soak runner from its autopilot.
package input

import (
	"time"

	"github.com/plus3/shapeinvaders/invaders"
)

// Key is a logical game key.
type Key int

const (
	KeyLeft Key = iota
	KeyRight
	KeyFire
)

// Controller accumulates events between two Polls.
//
// Held left/right keys are level triggered. The fire key triggers on its down
// edge only. A pointer press fires at once and keeps firing every FireInterval
// until released; horizontal drags move the ship by the drag distance scaled
// by the sensitivity.
type Controller struct {
	interval    float64
	sensitivity float64

	left, right bool
	fireHeld    bool

	pointer   bool
	lastX     float64
	sinceShot float64

	pending invaders.Input
}

// NewController returns a Controller with the given repeat-fire interval and
// drag sensitivity.
func NewController(fireInterval time.Duration, sensitivity float64) *Controller {
	return &Controller{
		interval:    fireInterval.Seconds(),
		sensitivity: sensitivity,
	}
}

// FromConfig builds a Controller from the session tunables.
func FromConfig(cfg invaders.Config) *Controller {
	return NewController(cfg.FireInterval, cfg.DragSensitivity)
}

func (c *Controller) KeyDown(k Key) {
	switch k {
	case KeyLeft:
		c.left = true
	case KeyRight:
		c.right = true
	case KeyFire:
		if !c.fireHeld {
			c.pending.Fire()
		}
		c.fireHeld = true
	}
}

func (c *Controller) KeyUp(k Key) {
	switch k {
	case KeyLeft:
		c.left = false
	case KeyRight:
		c.right = false
	case KeyFire:
		c.fireHeld = false
	}
}

// PointerDown starts a press at horizontal position x and fires.
func (c *Controller) PointerDown(x float64) {
	c.pointer = true
	c.lastX = x
	c.sinceShot = 0
	c.pending.Fire()
}

// PointerMove drags the ship. Moves without a press are ignored.
func (c *Controller) PointerMove(x float64) {
	if !c.pointer {
		return
	}
	dx := (x - c.lastX) * c.sensitivity
	c.lastX = x
	switch {
	case dx < 0:
		c.pending.MoveLeft(-dx)
	case dx > 0:
		c.pending.MoveRight(dx)
	}
}

// PointerUp ends the press and cancels repeat fire.
func (c *Controller) PointerUp() {
	c.pointer = false
	c.sinceShot = 0
}

// Pressed reports whether a pointer press is in progress.
func (c *Controller) Pressed() bool {
	return c.pointer
}

// Poll advances the repeat-fire timer by dt seconds and returns the commands
// gathered since the previous Poll.
func (c *Controller) Poll(dt float64) invaders.Input {
	if c.pointer && c.interval > 0 {
		c.sinceShot += dt
		for c.sinceShot >= c.interval {
			c.sinceShot -= c.interval
			c.pending.Fire()
		}
	}

	in := c.pending
	in.Left = c.left
	in.Right = c.right
	c.pending = invaders.Input{}
	return in
}

// Reset releases every key and the pointer and drops pending commands.
func (c *Controller) Reset() {
	*c = Controller{interval: c.interval, sensitivity: c.sensitivity}
}
