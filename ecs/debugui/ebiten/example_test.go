package ebiten_test

import (
	"fmt"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/shapeinvaders/ecs"
	"github.com/plus3/shapeinvaders/ecs/debugui"
	debugui_ebiten "github.com/plus3/shapeinvaders/ecs/debugui/ebiten"
)

type Ticks struct {
	Count int
}

type TickSystem struct {
	Ticks ecs.Singleton[Ticks]
}

func (s *TickSystem) Execute(frame *ecs.UpdateFrame) {
	s.Ticks.Get().Count++
}

// Game runs a world and draws the inspector on top of it.
type Game struct {
	world     *ecs.Storage
	scheduler *ecs.Scheduler
	overlay   *debugui_ebiten.Overlay
}

func (g *Game) Update() error {
	g.overlay.Update(1.0 / 60.0)
	g.scheduler.Once(1.0 / 60.0)
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	// world rendering goes here
	g.overlay.Draw(screen)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.overlay.Layout(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}

func Example() {
	world := ecs.NewStorage(ecs.NewComponentRegistry())
	ticks := ecs.NewSingleton[Ticks](world)

	scheduler := ecs.NewScheduler(world)
	scheduler.Register(&TickSystem{})

	overlay := debugui_ebiten.NewOverlay("Inspector Example", 1280, 720)
	overlay.Add(debugui.StorageWindow(world, overlay.Frames()))
	overlay.Add(debugui.SchedulerWindow(debugui.StatsSource{Name: "update", Stats: scheduler.GetStats}))
	overlay.Add(debugui.NewInspector(world, 200).Window())
	overlay.Add(debugui.Window{
		Title: "Ticks",
		Render: func() {
			imgui.Text(fmt.Sprintf("Ticks: %d", ticks.Get().Count))
		},
	})

	game := &Game{world: world, scheduler: scheduler, overlay: overlay}
	if err := ebiten.RunGame(game); err != nil {
		panic(err)
	}
}
