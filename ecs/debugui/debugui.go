// Package debugui draws Dear ImGui inspector windows for an ecs world. The
// windows are entities of their own small storage, so the inspector never
// touches the archetypes of the world it inspects.
package debugui

import (
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/shapeinvaders/ecs"
)

// Window is a component holding one ImGui window. Pos and Size apply the first
// time the window appears; afterwards the user may move it.
type Window struct {
	Title  string
	Pos    imgui.Vec2
	Size   imgui.Vec2
	Render func()
}

// Capture tracks whether ImGui is consuming input this frame. Hosts should
// ignore mouse or keyboard events that ImGui wants.
type Capture struct {
	Mouse    bool
	Keyboard bool
}

// WindowSystem refreshes Capture and queues every Window for drawing.
type WindowSystem struct {
	Windows ecs.Query[struct{ *Window }]
	Capture ecs.Singleton[Capture]
}

func (s *WindowSystem) Execute(frame *ecs.UpdateFrame) {
	io := imgui.CurrentIO()
	capture := s.Capture.Get()
	capture.Mouse = io.WantCaptureMouse()
	capture.Keyboard = io.WantCaptureKeyboard()

	for item := range s.Windows.Iter() {
		w := item.Window
		frame.Commands.Defer(func() { draw(w) })
	}
}

func draw(w *Window) {
	imgui.SetNextWindowPosV(w.Pos, imgui.CondOnce, imgui.NewVec2(0, 0))
	if w.Size.X > 0 && w.Size.Y > 0 {
		imgui.SetNextWindowSizeV(w.Size, imgui.CondOnce)
	}
	if imgui.BeginV(w.Title, nil, imgui.WindowFlagsNone) {
		w.Render()
	}
	imgui.End()
}

// RegisterComponents registers the component types the inspector spawns.
func RegisterComponents(registry *ecs.ComponentRegistry) {
	ecs.RegisterComponent[Window](registry)
}
