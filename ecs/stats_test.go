package ecs

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStorageStats(t *testing.T) {
	registry := NewComponentRegistry()
	RegisterComponent[int](registry)
	RegisterComponent[string](registry)
	RegisterComponent[float64](registry)

	storage := NewStorage(registry)

	stats := storage.CollectStats()
	assert.Equal(t, 0, stats.ArchetypeCount)
	assert.Equal(t, 0, stats.TotalEntityCount)
	assert.Equal(t, 0, stats.SingletonCount)

	storage.Spawn(42, "hello")
	storage.Spawn(100, "world")
	doomed := storage.Spawn(200.0, "test")

	NewSingleton[float64](storage, 3.14)
	NewSingleton[string](storage, "singleton")

	stats = storage.CollectStats()
	assert.Equal(t, 2, stats.ArchetypeCount)
	assert.Equal(t, 3, stats.TotalEntityCount)
	assert.Equal(t, 2, stats.SingletonCount)
	assert.Equal(t, []string{"float64", "string"}, stats.SingletonTypes)

	if assert.Len(t, stats.ArchetypeBreakdown, 2) {
		assert.Equal(t, 2, stats.ArchetypeBreakdown[0].EntityCount)
		assert.Equal(t, []string{"int", "string"}, stats.ArchetypeBreakdown[0].ComponentTypes)
		assert.Equal(t, 1, stats.ArchetypeBreakdown[1].EntityCount)
	}

	storage.Delete(doomed)
	stats = storage.CollectStats()
	assert.Equal(t, 2, stats.ArchetypeCount, "empty archetypes are still reported")
	assert.Equal(t, 2, stats.TotalEntityCount)
}
