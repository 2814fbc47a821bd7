package ebitenhost

import (
	"fmt"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/shapeinvaders/ecs/debugui"
)

func (h *Host) installInspector() {
	world := h.game.Storage()
	h.overlay.Add(debugui.StorageWindow(world, h.overlay.Frames()))
	h.overlay.Add(debugui.SchedulerWindow(
		debugui.StatsSource{Name: "update", Stats: h.game.UpdateStats},
		debugui.StatsSource{Name: "render", Stats: h.game.RenderStats},
	))
	h.overlay.Add(debugui.NewInspector(world, 100).Window())
	h.overlay.Add(debugui.Window{
		Title:  "Game",
		Pos:    imgui.NewVec2(750, 10),
		Size:   imgui.NewVec2(260, 300),
		Render: h.renderGameWindow,
	})
}

func (h *Host) renderGameWindow() {
	state := h.game.State()
	field := h.game.Playfield()

	imgui.Text(fmt.Sprintf("Phase: %s", state.Phase))
	imgui.Text(fmt.Sprintf("Score: %d  Lives: %d", state.Score, state.Lives))
	imgui.Text(fmt.Sprintf("Wave: %d (%s)", state.Wave, state.Shape))
	imgui.Text(fmt.Sprintf("Enemy speed: %.2f", state.EnemySpeed))
	imgui.Text(fmt.Sprintf("Rotation: %.3f rad (+%.3f)", state.Rotation, state.RotationSpeed))
	imgui.Separator()
	imgui.Text(fmt.Sprintf("Enemies: %d  Bullets: %d", len(h.game.Enemies()), len(h.game.Bullets())))
	imgui.Text(fmt.Sprintf("Playfield: %.0fx%.0f, cell %.0f", field.Width, field.Height, field.EnemyWidth))
	imgui.Text(fmt.Sprintf("Ticks: %d (%.1fs)", state.Frames, state.Elapsed))

	if imgui.Button("Restart") {
		h.restart()
	}
}
