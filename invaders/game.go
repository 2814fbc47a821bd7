// Package invaders is the simulation core of Shape Invaders: a ship at the
// bottom of the playfield shoots at waves of rotating shapes that sweep
// sideways and step down whenever the formation touches a wall.
//
// The core knows nothing about windows, fonts or input devices. A host feeds
// Update with an Input once per tick, hands a Surface to Render once per drawn
// frame and reads the scoreboard through Present or Status.
package invaders

import (
	"fmt"

	"github.com/plus3/shapeinvaders/ecs"
)

// Status is the HUD view of the game.
type Status struct {
	Score int
	Lives int
	Wave  int
	Phase Phase
}

// Over reports whether the game has ended.
func (s Status) Over() bool {
	return s.Phase == PhaseGameOver
}

// Box is a read-only copy of an actor's bounding box.
type Box struct {
	X, Y, W, H float64
}

// Center returns the middle of the box.
func (b Box) Center() Vec {
	return Vec{X: b.X + b.W/2, Y: b.Y + b.H/2}
}

type shipView = struct {
	*Position
	*Size
	*Player
}

// Game owns the world and the two schedulers that advance and draw it.
type Game struct {
	cfg     Config
	storage *ecs.Storage
	updates *ecs.Scheduler
	renders *ecs.Scheduler

	state    *ecs.Singleton[State]
	field    *ecs.Singleton[Playfield]
	tuning   *ecs.Singleton[Tuning]
	controls *ecs.Singleton[Controls]
	canvas   *ecs.Singleton[Canvas]
	events   *ecs.Singleton[EventLog]

	ship    *ecs.Query[shipView]
	bullets *ecs.Query[struct {
		*Position
		*Size
		*Bullet
	}]
	enemies *ecs.Query[struct {
		*Position
		*Size
		*Enemy
	}]
}

// NewRegistry registers every component the game spawns.
func NewRegistry() *ecs.ComponentRegistry {
	registry := ecs.NewComponentRegistry()
	ecs.RegisterComponent[Position](registry)
	ecs.RegisterComponent[Size](registry)
	ecs.RegisterComponent[Player](registry)
	ecs.RegisterComponent[Bullet](registry)
	ecs.RegisterComponent[Enemy](registry)
	return registry
}

// New builds a game in its initial state: wave 1, full formation, Playing.
func New(cfg Config) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	storage := ecs.NewStorage(NewRegistry())

	g := &Game{
		cfg:     cfg,
		storage: storage,
		field: ecs.NewSingleton(storage, Playfield{
			Width:        cfg.Width,
			Height:       cfg.Height,
			EnemyWidth:   DefaultEnemySize,
			EnemyHeight:  DefaultEnemySize,
			EnemyPadding: DefaultEnemyPadding,
		}),
		tuning:   ecs.NewSingleton(storage, Tuning{PlayerSpeed: cfg.PlayerSpeed, BulletSpeed: cfg.BulletSpeed}),
		state:    ecs.NewSingleton[State](storage),
		controls: ecs.NewSingleton[Controls](storage),
		canvas:   ecs.NewSingleton[Canvas](storage),
		events:   ecs.NewSingleton[EventLog](storage),
		ship:     ecs.NewQuery[shipView](storage),
	}

	g.bullets = ecs.NewQuery[struct {
		*Position
		*Size
		*Bullet
	}](storage)
	g.enemies = ecs.NewQuery[struct {
		*Position
		*Size
		*Enemy
	}](storage)

	g.updates = ecs.NewScheduler(storage)
	g.updates.Register(&WaveSystem{})
	g.updates.Register(&PlayerSystem{})
	g.updates.Register(&BulletSystem{})
	g.updates.Register(&FormationSystem{})
	g.updates.Register(&CollisionSystem{})
	g.updates.Register(&InvasionSystem{})

	g.renders = ecs.NewScheduler(storage)
	g.renders.Register(&SpinSystem{})
	g.renders.Register(&RenderSystem{})

	g.Restart()
	return g, nil
}

// Update advances the simulation by one tick. dt is the wall time since the
// previous tick in seconds; movement is per tick. Once the game is over Update
// does nothing until Restart.
func (g *Game) Update(in Input, dt float64) {
	state := g.state.Get()
	if state.Phase == PhaseGameOver {
		return
	}
	state.Elapsed += dt
	state.Frames++

	controls := g.controls.Get()
	controls.Input = in
	g.updates.Once(dt)
	controls.Input = Input{}
}

// Render draws the current state on surface. The shared enemy rotation
// advances on every call, including after the game has ended.
func (g *Game) Render(surface Surface) {
	canvas := g.canvas.Get()
	canvas.Surface = surface
	g.renders.Once(0)
	canvas.Surface = nil
}

// Present pushes the scoreboard to a display sink.
func (g *Game) Present(d Display) {
	status := g.Status()
	d.SetScore(status.Score)
	d.SetLives(status.Lives)
	d.SetWave(status.Wave)
	d.SetGameOver(status.Over(), status.Score)
}

// Restart discards every bullet and enemy and returns to wave 1. It can be
// called at any time, any number of times.
func (g *Game) Restart() {
	g.storage.Clear()

	field := g.field.Get()
	tuning := g.tuning.Get()

	g.storage.Spawn(
		Position{X: (field.Width - PlayerWidth) / 2, Y: field.Height - PlayerInset},
		Size{W: PlayerWidth, H: PlayerHeight},
		Player{Speed: tuning.PlayerSpeed},
	)

	state := g.state.Get()
	*state = State{
		Phase: PhasePlaying,
		Lives: StartingLives,
	}
	state.enterWave(1)
	spawnFormation(func(components ...any) { g.storage.Spawn(components...) }, field, state.EnemySpeed)

	g.controls.Get().Input = Input{}
	log := g.events.Get()
	log.Events = log.Events[:0]
	log.emit(EventRestart, state)
}

// Resize changes the playfield to width x height, re-anchors the ship at the
// bottom center and scales the enemy cell used by later waves.
func (g *Game) Resize(width, height float64) error {
	if width <= PlayerWidth || height <= PlayerInset+PlayerHeight {
		return fmt.Errorf("resize to %vx%v: playfield too small", width, height)
	}

	field := g.field.Get()
	field.Width = width
	field.Height = height
	field.EnemyWidth = min(DefaultEnemySize, width/15)
	field.EnemyHeight = field.EnemyWidth
	field.EnemyPadding = field.EnemyWidth / 2

	for ship := range g.ship.Iter() {
		ship.Position.X = (width - ship.Size.W) / 2
		ship.Position.Y = height - PlayerInset
	}
	return nil
}

// Status returns the current scoreboard.
func (g *Game) Status() Status {
	state := g.state.Get()
	return Status{
		Score: state.Score,
		Lives: state.Lives,
		Wave:  state.Wave,
		Phase: state.Phase,
	}
}

// State exposes the full state for inspection tools.
func (g *Game) State() State {
	return *g.state.Get()
}

// Playfield returns the current canvas bounds and enemy cell.
func (g *Game) Playfield() Playfield {
	return *g.field.Get()
}

// Events returns the events emitted since the previous call and forgets them.
func (g *Game) Events() []Event {
	log := g.events.Get()
	if len(log.Events) == 0 {
		return nil
	}
	out := append([]Event(nil), log.Events...)
	log.Events = log.Events[:0]
	return out
}

// Ship returns the ship's bounding box.
func (g *Game) Ship() Box {
	ship, _ := g.ship.First()
	return boxOf(ship.Position, ship.Size)
}

// Bullets returns the bounding boxes of every live bullet.
func (g *Game) Bullets() []Box {
	var out []Box
	for b := range g.bullets.Iter() {
		out = append(out, boxOf(b.Position, b.Size))
	}
	return out
}

// Enemies returns the bounding boxes of every live enemy.
func (g *Game) Enemies() []Box {
	var out []Box
	for e := range g.enemies.Iter() {
		out = append(out, boxOf(e.Position, e.Size))
	}
	return out
}

// Storage exposes the ECS world for inspection tools.
func (g *Game) Storage() *ecs.Storage {
	return g.storage
}

// UpdateStats returns per-system timings of the update scheduler.
func (g *Game) UpdateStats() *ecs.SchedulerStats {
	return g.updates.GetStats()
}

// RenderStats returns per-system timings of the render scheduler.
func (g *Game) RenderStats() *ecs.SchedulerStats {
	return g.renders.GetStats()
}

func boxOf(pos *Position, size *Size) Box {
	if pos == nil || size == nil {
		return Box{}
	}
	return Box{X: pos.X, Y: pos.Y, W: size.W, H: size.H}
}

// Config returns the configuration the game was built with.
func (g *Game) Config() Config {
	return g.cfg
}
