package invaders

import (
	"image/color"

	"github.com/plus3/shapeinvaders/ecs"
)

// Surface is the drawing contract a host provides. Every fill takes the
// transform for that one call; nothing carries over between calls. Point
// slices are reused by the caller and must not be retained.
type Surface interface {
	Clear(c color.Color)
	FillRect(xf Transform, x, y, w, h float64, c color.Color)
	FillPolygon(xf Transform, pts []Vec, c color.Color)
	FillCircle(xf Transform, cx, cy, r float64, c color.Color)
}

// Display receives the HUD readouts.
type Display interface {
	SetScore(score int)
	SetLives(lives int)
	SetWave(wave int)
	SetGameOver(visible bool, finalScore int)
}

var (
	BackgroundColor = color.RGBA{0x00, 0x00, 0x00, 0xff}
	PlayerColor     = color.RGBA{0x00, 0xff, 0x00, 0xff}
	BulletColor     = color.RGBA{0xff, 0xff, 0xff, 0xff}
	EnemyColor      = color.RGBA{0xff, 0x00, 0x00, 0xff}
)

// SpinSystem turns the shared enemy rotation once per rendered frame.
type SpinSystem struct {
	State ecs.Singleton[State]
}

func (s *SpinSystem) Execute(frame *ecs.UpdateFrame) {
	state := s.State.Get()
	state.Rotation += state.RotationSpeed
}

// RenderSystem draws the current entities onto the Canvas surface.
type RenderSystem struct {
	Canvas ecs.Singleton[Canvas]
	State  ecs.Singleton[State]
	Ship   ecs.Query[struct {
		*Position
		*Size
		*Player
	}]
	Bullets ecs.Query[struct {
		*Position
		*Size
		*Bullet
	}]
	Enemies ecs.Query[struct {
		*Position
		*Size
		*Enemy
	}]

	outline []Vec
}

func (s *RenderSystem) Execute(frame *ecs.UpdateFrame) {
	surface := s.Canvas.Get().Surface
	if surface == nil {
		return
	}
	state := s.State.Get()

	surface.Clear(BackgroundColor)

	for ship := range s.Ship.Iter() {
		x, y, w, h := ship.Position.X, ship.Position.Y, ship.Size.W, ship.Size.H
		s.outline = append(s.outline[:0],
			Vec{X: x + w/2, Y: y},
			Vec{X: x, Y: y + h},
			Vec{X: x + w, Y: y + h},
		)
		surface.FillPolygon(Transform{}, s.outline, PlayerColor)
	}

	for bullet := range s.Bullets.Iter() {
		c := Center(*bullet.Position, *bullet.Size)
		surface.FillCircle(Transform{}, c.X, c.Y, BulletRadius, BulletColor)
	}

	for enemy := range s.Enemies.Iter() {
		c := Center(*enemy.Position, *enemy.Size)
		xf := Transform{TX: c.X, TY: c.Y, Angle: state.Rotation}
		s.drawShape(surface, xf, state.Shape, enemy.Size.W/2)
	}
}

func (s *RenderSystem) drawShape(surface Surface, xf Transform, shape Shape, size float64) {
	switch shape {
	case ShapeSquare:
		surface.FillRect(xf, -size, -size, size*2, size*2, EnemyColor)
	case ShapeCircle:
		surface.FillCircle(xf, 0, 0, size, EnemyColor)
	default:
		s.outline = Outline(s.outline[:0], shape, size)
		surface.FillPolygon(xf, s.outline, EnemyColor)
	}
}
