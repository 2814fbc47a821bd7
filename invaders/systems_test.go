package invaders

import (
	"math/rand/v2"
	"testing"

	"github.com/plus3/shapeinvaders/ecs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type collisionWorld struct {
	storage *ecs.Storage
	state   *ecs.Singleton[State]
	events  *ecs.Singleton[EventLog]
	sched   *ecs.Scheduler
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

func newCollisionWorld() *collisionWorld {
	storage := ecs.NewStorage(NewRegistry())
	w := &collisionWorld{
		storage: storage,
		state:   ecs.NewSingleton(storage, State{Wave: 1}),
		events:  ecs.NewSingleton[EventLog](storage),
		sched:   ecs.NewScheduler(storage),
		bullets: ecs.NewQuery[struct {
			*Position
			*Size
			*Bullet
		}](storage),
		enemies: ecs.NewQuery[struct {
			*Position
			*Size
			*Enemy
		}](storage),
	}
	w.sched.Register(&CollisionSystem{})
	return w
}

func (w *collisionWorld) bullet(x, y float64) {
	w.storage.Spawn(Position{X: x, Y: y}, Size{W: BulletWidth, H: BulletHeight}, Bullet{Speed: 7})
}

func (w *collisionWorld) enemy(x, y float64) {
	w.storage.Spawn(Position{X: x, Y: y}, Size{W: 40, H: 40}, Enemy{Direction: 1, Speed: 1})
}

func TestCollisionSystem(t *testing.T) {
	t.Run("bullet and enemy are both removed", func(t *testing.T) {
		w := newCollisionWorld()
		w.enemy(100, 100)
		w.bullet(118, 115)

		w.sched.Once(tick)

		assert.Equal(t, 0, w.enemies.Count())
		assert.Equal(t, 0, w.bullets.Count())
		assert.Equal(t, 100, w.state.Get().Score)
		assert.Equal(t, []Event{{Kind: EventKill, Wave: 1, Score: 100}}, w.events.Get().Events)
	})

	t.Run("misses are untouched", func(t *testing.T) {
		w := newCollisionWorld()
		w.enemy(100, 100)
		w.bullet(300, 300)

		w.sched.Once(tick)

		assert.Equal(t, 1, w.enemies.Count())
		assert.Equal(t, 1, w.bullets.Count())
		assert.Equal(t, 0, w.state.Get().Score)
	})

	t.Run("one bullet takes one enemy", func(t *testing.T) {
		w := newCollisionWorld()
		w.enemy(100, 100)
		w.enemy(120, 100)
		w.bullet(128, 115)

		w.sched.Once(tick)

		assert.Equal(t, 1, w.enemies.Count())
		assert.Equal(t, 0, w.bullets.Count())
		assert.Equal(t, 100, w.state.Get().Score)
	})

	t.Run("one enemy absorbs one bullet", func(t *testing.T) {
		w := newCollisionWorld()
		w.enemy(100, 100)
		w.bullet(118, 115)
		w.bullet(118, 120)

		w.sched.Once(tick)

		assert.Equal(t, 0, w.enemies.Count())
		assert.Equal(t, 1, w.bullets.Count())
		assert.Equal(t, 100, w.state.Get().Score)
	})

	t.Run("no enemies", func(t *testing.T) {
		w := newCollisionWorld()
		w.bullet(118, 115)
		w.sched.Once(tick)
		assert.Equal(t, 1, w.bullets.Count())
	})
}

func TestCollisionRandomLayouts(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 11))

	for trial := range 200 {
		w := newCollisionWorld()
		nEnemies := rng.IntN(30)
		nBullets := rng.IntN(30)
		for range nEnemies {
			w.enemy(rng.Float64()*300, rng.Float64()*300)
		}
		for range nBullets {
			w.bullet(rng.Float64()*340, rng.Float64()*340)
		}

		w.sched.Once(tick)

		killedEnemies := nEnemies - w.enemies.Count()
		spentBullets := nBullets - w.bullets.Count()
		require.Equal(t, killedEnemies, spentBullets, "trial %d", trial)
		require.Equal(t, killedEnemies*KillScore, w.state.Get().Score, "trial %d", trial)
		require.Len(t, w.events.Get().Events, killedEnemies, "trial %d", trial)

		for b := range w.bullets.Iter() {
			bc := Center(*b.Position, *b.Size)
			for e := range w.enemies.Iter() {
				ec := Center(*e.Position, *e.Size)
				require.False(t, CirclesOverlap(bc, BulletRadius, ec, e.Size.W/2),
					"trial %d: surviving bullet overlaps surviving enemy", trial)
			}
		}
	}
}

func TestScoreNeverDecreases(t *testing.T) {
	g := newTestGame(t)
	rng := rand.New(rand.NewPCG(3, 5))
	prev := 0
	for range 2000 {
		if g.Status().Over() {
			g.Restart()
			prev = 0
		}
		in := Input{Left: rng.IntN(3) == 0, Right: rng.IntN(3) == 0}
		if rng.IntN(4) == 0 {
			in.Fire()
		}
		g.Update(in, tick)

		score := g.Status().Score
		require.GreaterOrEqual(t, score, prev)
		require.Zero(t, score%KillScore)
		require.LessOrEqual(t, g.State().EnemySpeed, float64(MaxEnemySpeed))
		require.Equal(t, StartingLives, g.Status().Lives)
		prev = score
	}
}
