package invaders

import "github.com/plus3/shapeinvaders/ecs"

// WaveSystem starts the next wave as soon as the formation is wiped out.
type WaveSystem struct {
	Enemies ecs.Query[struct{ *Enemy }]
	State   ecs.Singleton[State]
	Field   ecs.Singleton[Playfield]
	Events  ecs.Singleton[EventLog]
}

func (s *WaveSystem) Execute(frame *ecs.UpdateFrame) {
	if s.Enemies.Count() > 0 {
		return
	}

	state := s.State.Get()
	state.enterWave(state.Wave + 1)
	spawnFormation(frame.Commands.Spawn, s.Field.Get(), state.EnemySpeed)
	s.Events.Get().emit(EventWave, state)
}

// PlayerSystem moves the ship from held keys and drags and turns fire
// commands into bullets.
type PlayerSystem struct {
	Ship ecs.Query[struct {
		*Position
		*Size
		*Player
	}]
	Controls ecs.Singleton[Controls]
	Field    ecs.Singleton[Playfield]
	Tuning   ecs.Singleton[Tuning]
	State    ecs.Singleton[State]
	Events   ecs.Singleton[EventLog]
}

func (s *PlayerSystem) Execute(frame *ecs.UpdateFrame) {
	in := s.Controls.Get().Input
	field := s.Field.Get()
	state := s.State.Get()
	events := s.Events.Get()
	bulletSpeed := s.Tuning.Get().BulletSpeed

	for ship := range s.Ship.Iter() {
		dx := in.Shift
		if in.Left {
			dx -= ship.Player.Speed
		}
		if in.Right {
			dx += ship.Player.Speed
		}
		ship.Position.X = clamp(ship.Position.X+dx, 0, field.Width-ship.Size.W)

		for range in.Shots {
			frame.Commands.Spawn(
				Position{X: ship.Position.X + ship.Size.W/2, Y: ship.Position.Y},
				Size{W: BulletWidth, H: BulletHeight},
				Bullet{Speed: bulletSpeed},
			)
			events.emit(EventShot, state)
		}
	}
}

// BulletSystem flies bullets upward and drops the ones that left the playfield.
type BulletSystem struct {
	Bullets ecs.Query[struct {
		ecs.EntityId
		*Position
		*Bullet
	}]
}

func (s *BulletSystem) Execute(frame *ecs.UpdateFrame) {
	for bullet := range s.Bullets.Iter() {
		bullet.Position.Y -= bullet.Bullet.Speed
		if bullet.Position.Y < 0 {
			frame.Commands.Delete(bullet.EntityId)
		}
	}
}

// FormationSystem sweeps the enemies sideways. When any of them touches a wall
// the whole formation reverses and drops one step in the same frame.
type FormationSystem struct {
	Enemies ecs.Query[struct {
		*Position
		*Size
		*Enemy
	}]
	Field ecs.Singleton[Playfield]
}

func (s *FormationSystem) Execute(frame *ecs.UpdateFrame) {
	width := s.Field.Get().Width

	touched := false
	for enemy := range s.Enemies.Iter() {
		enemy.Position.X += enemy.Enemy.Speed * enemy.Enemy.Direction
		if enemy.Position.X <= 0 || enemy.Position.X+enemy.Size.W >= width {
			touched = true
		}
	}

	if !touched {
		return
	}

	for enemy := range s.Enemies.Iter() {
		enemy.Enemy.Direction = -enemy.Enemy.Direction
		enemy.Position.Y += EdgeDrop
	}
}

type target struct {
	id     ecs.EntityId
	center Vec
	radius float64
	hit    bool
}

// CollisionSystem matches bullets against enemies as circles. Each bullet
// destroys at most one enemy and each enemy absorbs at most one bullet; the
// removals are queued and applied once the pass is complete.
type CollisionSystem struct {
	Bullets ecs.Query[struct {
		ecs.EntityId
		*Position
		*Size
		*Bullet
	}]
	Enemies ecs.Query[struct {
		ecs.EntityId
		*Position
		*Size
		*Enemy
	}]
	State  ecs.Singleton[State]
	Events ecs.Singleton[EventLog]

	targets []target
}

func (s *CollisionSystem) Execute(frame *ecs.UpdateFrame) {
	s.targets = s.targets[:0]
	for enemy := range s.Enemies.Iter() {
		s.targets = append(s.targets, target{
			id:     enemy.EntityId,
			center: Center(*enemy.Position, *enemy.Size),
			radius: enemy.Size.W / 2,
		})
	}
	if len(s.targets) == 0 {
		return
	}

	state := s.State.Get()
	events := s.Events.Get()

	for bullet := range s.Bullets.Iter() {
		center := Center(*bullet.Position, *bullet.Size)
		for i := range s.targets {
			t := &s.targets[i]
			if t.hit || !CirclesOverlap(center, BulletRadius, t.center, t.radius) {
				continue
			}
			t.hit = true
			frame.Commands.Delete(bullet.EntityId)
			frame.Commands.Delete(t.id)
			state.Score += KillScore
			events.emit(EventKill, state)
			break
		}
	}
}

// InvasionSystem ends the game once any enemy reaches the ship's row.
type InvasionSystem struct {
	Enemies ecs.Query[struct {
		*Position
		*Size
		*Enemy
	}]
	Ship ecs.Query[struct {
		*Position
		*Player
	}]
	State  ecs.Singleton[State]
	Events ecs.Singleton[EventLog]
}

func (s *InvasionSystem) Execute(frame *ecs.UpdateFrame) {
	ship, ok := s.Ship.First()
	if !ok {
		return
	}

	for enemy := range s.Enemies.Iter() {
		if enemy.Position.Y+enemy.Size.H >= ship.Position.Y {
			state := s.State.Get()
			state.Phase = PhaseGameOver
			s.Events.Get().emit(EventGameOver, state)
			return
		}
	}
}

func clamp(v, lo, hi float64) float64 {
	return max(lo, min(v, hi))
}
