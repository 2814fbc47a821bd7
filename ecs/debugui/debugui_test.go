package debugui

import (
	"reflect"
	"testing"
	"time"

	"github.com/plus3/shapeinvaders/ecs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type Position struct {
	X, Y float64
}

type Label struct {
	Text   string
	Hidden bool
	secret int
}

func TestFrameGraph(t *testing.T) {
	g := NewFrameGraph(3)
	assert.Zero(t, g.Average())

	g.Record(10 * time.Millisecond)
	g.Record(20 * time.Millisecond)
	assert.InDelta(t, 15, g.Average(), 1e-4)
	assert.InDelta(t, 20, g.Peak(), 1e-4)

	g.Record(30 * time.Millisecond)
	g.Record(40 * time.Millisecond)
	assert.InDelta(t, 30, g.Average(), 1e-4, "oldest sample is overwritten")
	assert.InDelta(t, 40, g.Peak(), 1e-4)
}

func TestListEntities(t *testing.T) {
	registry := ecs.NewComponentRegistry()
	ecs.RegisterComponent[Position](registry)
	ecs.RegisterComponent[Label](registry)
	world := ecs.NewStorage(registry)

	a := world.Spawn(Position{})
	b := world.Spawn(Position{}, Label{Text: "b"})
	c := world.Spawn(Position{X: 1})

	rows := ListEntities(world, 0)
	require.Len(t, rows, 3)
	assert.Equal(t, []ecs.EntityId{a, c, b}, []ecs.EntityId{rows[0].ID, rows[1].ID, rows[2].ID})
	assert.Equal(t, []string{"Position"}, rows[0].Components)
	assert.Equal(t, []string{"Label", "Position"}, rows[2].Components)
	assert.Equal(t, b.ArchetypeId(), rows[2].Archetype)

	assert.Len(t, ListEntities(world, 2), 2)

	world.Delete(a)
	assert.Len(t, ListEntities(world, 0), 2)
}

func TestInspectorSelection(t *testing.T) {
	registry := ecs.NewComponentRegistry()
	ecs.RegisterComponent[Position](registry)
	world := ecs.NewStorage(registry)
	id := world.Spawn(Position{})

	in := NewInspector(world, 10)
	_, ok := in.Selected()
	assert.False(t, ok)

	in.Select(id)
	got, ok := in.Selected()
	assert.True(t, ok)
	assert.Equal(t, id, got)

	world.Delete(id)
	_, ok = in.Selected()
	assert.False(t, ok)
}

func TestFieldCache(t *testing.T) {
	cache := fieldCache{}
	fields := cache.fields(reflect.TypeFor[Label]())
	assert.Equal(t, []fieldInfo{
		{name: "Text", index: 0, kind: reflect.String},
		{name: "Hidden", index: 1, kind: reflect.Bool},
	}, fields)

	assert.Empty(t, cache.fields(reflect.TypeFor[int]()))
	assert.Len(t, cache, 2)
}

func TestShortNames(t *testing.T) {
	assert.Equal(t,
		[]string{"Position", "Enemy", "int"},
		shortNames([]string{"invaders.Position", "github.com/x/y.Enemy", "int"}))
}
