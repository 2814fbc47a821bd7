package ecs_test

import (
	"fmt"

	"github.com/plus3/shapeinvaders/ecs"
)

type Fuse struct {
	Ticks int
}

// FuseSystem counts fuses down and removes the ones that burn out.
type FuseSystem struct {
	Fuses ecs.Query[struct {
		ecs.EntityId
		*Fuse
	}]
}

func (s *FuseSystem) Execute(frame *ecs.UpdateFrame) {
	for item := range s.Fuses.Iter() {
		item.Fuse.Ticks--
		if item.Fuse.Ticks <= 0 {
			frame.Commands.Delete(item.EntityId)
		}
	}
}

func Example() {
	registry := ecs.NewComponentRegistry()
	ecs.RegisterComponent[Fuse](registry)

	storage := ecs.NewStorage(registry)
	storage.Spawn(Fuse{Ticks: 1})
	storage.Spawn(Fuse{Ticks: 2})
	storage.Spawn(Fuse{Ticks: 3})

	scheduler := ecs.NewScheduler(storage)
	scheduler.Register(&FuseSystem{})

	for frame := 1; frame <= 3; frame++ {
		scheduler.Once(1.0 / 60.0)
		fmt.Printf("frame %d: %d fuses\n", frame, storage.EntityCount())
	}

	// Output:
	// frame 1: 2 fuses
	// frame 2: 1 fuses
	// frame 3: 0 fuses
}

func ExampleSingleton() {
	registry := ecs.NewComponentRegistry()
	storage := ecs.NewStorage(registry)

	type Scoreboard struct {
		Points int
	}

	board := ecs.NewSingleton(storage, Scoreboard{Points: 10})
	board.Get().Points += 5

	var read *Scoreboard
	storage.ReadSingleton(&read)
	fmt.Println(read.Points)

	// Output:
	// 15
}
