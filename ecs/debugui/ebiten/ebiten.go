// Package ebiten hosts the debugui windows on top of an Ebiten game.
package ebiten

import (
	"time"

	ebitenbackend "github.com/AllenDang/cimgui-go/backend/ebiten-backend"
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/shapeinvaders/ecs"
	"github.com/plus3/shapeinvaders/ecs/debugui"
)

// Overlay owns the ImGui backend and the storage of inspector windows.
// Call Update from the game's Update, Draw last in the game's Draw and Layout
// from the game's Layout.
type Overlay struct {
	backend   *ebitenbackend.EbitenBackend
	storage   *ecs.Storage
	scheduler *ecs.Scheduler
	capture   *ecs.Singleton[debugui.Capture]
	frames    *debugui.FrameGraph
	last      time.Time
}

// NewOverlay creates the game window through the ImGui backend. It replaces
// ebiten.SetWindowSize and ebiten.SetWindowTitle.
func NewOverlay(title string, width, height int) *Overlay {
	backend := ebitenbackend.NewEbitenBackend()
	backend.CreateWindow(title, width, height)
	imgui.CurrentIO().SetIniFilename("")

	registry := ecs.NewComponentRegistry()
	debugui.RegisterComponents(registry)
	storage := ecs.NewStorage(registry)

	scheduler := ecs.NewScheduler(storage)
	scheduler.Register(&debugui.WindowSystem{})

	return &Overlay{
		backend:   backend,
		storage:   storage,
		scheduler: scheduler,
		capture:   ecs.NewSingleton[debugui.Capture](storage),
		frames:    debugui.NewFrameGraph(120),
	}
}

// Add shows w from the next frame on.
func (o *Overlay) Add(w debugui.Window) {
	o.storage.Spawn(w)
}

// Frames is the frame time history fed by Update.
func (o *Overlay) Frames() *debugui.FrameGraph {
	return o.frames
}

// Capture reports whether ImGui wanted the mouse or keyboard last frame.
func (o *Overlay) Capture() debugui.Capture {
	return *o.capture.Get()
}

func (o *Overlay) Update(dt float64) {
	now := time.Now()
	if !o.last.IsZero() {
		o.frames.Record(now.Sub(o.last))
	}
	o.last = now

	o.backend.BeginFrame()
	o.scheduler.Once(dt)
	o.backend.EndFrame()
}

func (o *Overlay) Draw(screen *ebiten.Image) {
	o.backend.Draw(screen)
}

func (o *Overlay) Layout(outsideWidth, outsideHeight int) {
	o.backend.Layout(outsideWidth, outsideHeight)
}
