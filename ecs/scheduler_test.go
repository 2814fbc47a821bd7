package ecs_test

import (
	"testing"
	"time"

	"github.com/plus3/shapeinvaders/ecs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type MovementSystem struct {
	Entities ecs.Query[struct {
		*Position
		*Velocity
	}]
	ExecuteCount int
}

func (s *MovementSystem) Execute(frame *ecs.UpdateFrame) {
	s.ExecuteCount++
	for item := range s.Entities.Iter() {
		item.Position.X += item.Velocity.DX * float32(frame.DeltaTime)
		item.Position.Y += item.Velocity.DY * float32(frame.DeltaTime)
	}
}

type TallySystem struct {
	Total ecs.Singleton[Counter]
}

func (s *TallySystem) Execute(frame *ecs.UpdateFrame) {
	s.Total.Get().Value++
}

type SleepySystem struct {
	sleep time.Duration
}

func (s *SleepySystem) Execute(frame *ecs.UpdateFrame) {
	time.Sleep(s.sleep)
}

func TestScheduler(t *testing.T) {
	registry := newTestRegistry()

	t.Run("queries are initialized on register", func(t *testing.T) {
		storage := ecs.NewStorage(registry)
		scheduler := ecs.NewScheduler(storage)
		movement := &MovementSystem{}
		scheduler.Register(movement)

		id := storage.Spawn(Position{}, Velocity{DX: 1, DY: 2})

		scheduler.Once(0.5)
		scheduler.Once(0.5)

		assert.Equal(t, 2, movement.ExecuteCount)
		pos := ecs.ReadComponent[Position](storage, id)
		assert.InDelta(t, 1.0, pos.X, 1e-6)
		assert.InDelta(t, 2.0, pos.Y, 1e-6)
	})

	t.Run("singletons are initialized on register", func(t *testing.T) {
		storage := ecs.NewStorage(registry)
		total := ecs.NewSingleton(storage, Counter{})
		scheduler := ecs.NewScheduler(storage)
		scheduler.Register(&TallySystem{})

		for range 3 {
			scheduler.Once(0)
		}

		assert.Equal(t, 3, total.Get().Value)
	})
}

func TestSchedulerStats(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())
	scheduler := ecs.NewScheduler(storage)

	stats := scheduler.GetStats()
	assert.Equal(t, 0, stats.SystemCount)
	assert.Equal(t, int64(0), stats.TotalExecutions)

	scheduler.Register(&SleepySystem{sleep: time.Millisecond})
	scheduler.Register(&MovementSystem{})

	stats = scheduler.GetStats()
	require.Len(t, stats.Systems, 2)
	assert.Zero(t, stats.Systems[0].MinDuration, "no executions yet")

	for range 3 {
		scheduler.Once(1.0 / 60.0)
	}

	stats = scheduler.GetStats()
	assert.Equal(t, 2, stats.SystemCount)
	assert.Equal(t, int64(6), stats.TotalExecutions)

	sleepy := stats.Systems[0]
	assert.Equal(t, "SleepySystem", sleepy.Name)
	assert.Equal(t, "MovementSystem", stats.Systems[1].Name)
	assert.Equal(t, int64(3), sleepy.ExecutionCount)
	assert.GreaterOrEqual(t, sleepy.MinDuration, time.Millisecond)
	assert.LessOrEqual(t, sleepy.MinDuration, sleepy.AvgDuration)
	assert.LessOrEqual(t, sleepy.AvgDuration, sleepy.MaxDuration)
	assert.Equal(t, sleepy.TotalDuration/3, sleepy.AvgDuration)
}
