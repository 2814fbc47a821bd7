package ecs_test

import (
	"testing"

	"github.com/plus3/shapeinvaders/ecs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestViewIter(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())
	storage.Spawn(Position{X: 1}, Velocity{DX: 1})
	storage.Spawn(Position{X: 2}, Velocity{DX: 2}, Health{Current: 5})
	storage.Spawn(Position{X: 3})

	t.Run("required components", func(t *testing.T) {
		view := ecs.NewView[struct {
			*Position
			*Velocity
		}](storage)

		var sum float32
		for item := range view.Iter() {
			sum += item.Position.X
		}
		assert.Equal(t, float32(3), sum)
		assert.Equal(t, 2, view.Count())
	})

	t.Run("optional components", func(t *testing.T) {
		view := ecs.NewView[struct {
			*Position
			Health *Health `ecs:"optional"`
		}](storage)

		withHealth := 0
		for item := range view.Iter() {
			if item.Health != nil {
				withHealth++
				assert.Equal(t, 5, item.Health.Current)
			}
		}
		assert.Equal(t, 3, view.Count())
		assert.Equal(t, 1, withHealth)
	})

	t.Run("embedded entity id", func(t *testing.T) {
		view := ecs.NewView[struct {
			ecs.EntityId
			*Position
		}](storage)

		for item := range view.Iter() {
			pos := ecs.ReadComponent[Position](storage, item.EntityId)
			require.NotNil(t, pos)
			assert.Same(t, pos, item.Position)
		}
	})

	t.Run("mutations through pointers persist", func(t *testing.T) {
		view := ecs.NewView[struct{ *Position }](storage)
		for item := range view.Iter() {
			item.Position.Y = 42
		}
		for item := range view.Iter() {
			assert.Equal(t, float32(42), item.Position.Y)
		}
	})
}

func TestViewGet(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())
	mover := storage.Spawn(Position{X: 1}, Velocity{DX: 2})
	still := storage.Spawn(Position{X: 3})

	view := ecs.NewView[struct {
		*Position
		*Velocity
	}](storage)

	got := view.Get(mover)
	require.NotNil(t, got)
	assert.Equal(t, float32(2), got.Velocity.DX)

	assert.Nil(t, view.Get(still))

	storage.Delete(mover)
	assert.Nil(t, view.Get(mover))
}

func TestViewRejectsMalformedShapes(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())

	assert.Panics(t, func() { ecs.NewView[int](storage) })
	assert.Panics(t, func() { ecs.NewView[struct{ Position }](storage) })
	assert.Panics(t, func() {
		ecs.NewView[struct {
			P *Position `ecs:"maybe"`
		}](storage)
	})
	assert.Panics(t, func() {
		ecs.NewView[struct {
			ID ecs.EntityId
		}](storage)
	})
}

func TestQuery(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())
	query := ecs.NewQuery[struct {
		ecs.EntityId
		*Velocity
	}](storage)

	assert.Equal(t, 0, query.Count())
	_, ok := query.First()
	assert.False(t, ok)

	storage.Spawn(Position{}, Velocity{DX: 1})
	assert.Equal(t, 1, query.Count(), "cache refreshes when archetypes appear")

	id := storage.Spawn(Velocity{DX: 2})
	assert.Equal(t, 2, query.Count())

	first, ok := query.First()
	require.True(t, ok)
	assert.Equal(t, float32(1), first.Velocity.DX)

	storage.Delete(id)
	assert.Equal(t, 1, query.Count())
	assert.Nil(t, query.Get(id))
}

func TestQueryBeforeInitPanics(t *testing.T) {
	var query ecs.Query[struct{ *Position }]
	assert.Panics(t, func() { query.Count() })
}
