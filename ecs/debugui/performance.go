package debugui

import (
	"fmt"
	"strings"
	"time"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/shapeinvaders/ecs"
)

// FrameGraph is a ring buffer of recent frame times in milliseconds.
type FrameGraph struct {
	samples []float32
	next    int
	filled  int
}

func NewFrameGraph(historyFrames int) *FrameGraph {
	return &FrameGraph{samples: make([]float32, max(historyFrames, 1))}
}

// Record stores the duration of one frame, overwriting the oldest sample.
func (g *FrameGraph) Record(d time.Duration) {
	g.samples[g.next] = float32(d.Seconds() * 1000)
	g.next = (g.next + 1) % len(g.samples)
	g.filled = min(g.filled+1, len(g.samples))
}

// Average returns the mean of the recorded samples in milliseconds.
func (g *FrameGraph) Average() float32 {
	if g.filled == 0 {
		return 0
	}
	var sum float32
	for _, ms := range g.samples[:g.filled] {
		sum += ms
	}
	return sum / float32(g.filled)
}

// Peak returns the slowest recorded frame in milliseconds.
func (g *FrameGraph) Peak() float32 {
	var peak float32
	for _, ms := range g.samples[:g.filled] {
		peak = max(peak, ms)
	}
	return peak
}

// StorageWindow shows entity and archetype counts of world next to a frame time graph.
func StorageWindow(world *ecs.Storage, graph *FrameGraph) Window {
	return Window{
		Title: "Storage",
		Pos:   imgui.NewVec2(10, 10),
		Size:  imgui.NewVec2(340, 320),
		Render: func() {
			stats := world.CollectStats()

			imgui.Text(fmt.Sprintf("Entities: %d", stats.TotalEntityCount))
			imgui.Text(fmt.Sprintf("Archetypes: %d", stats.ArchetypeCount))
			imgui.Text(fmt.Sprintf("Singletons: %d", stats.SingletonCount))

			if avg := graph.Average(); avg > 0 {
				imgui.Text(fmt.Sprintf("Frame: %.2f ms avg, %.2f ms peak (%.0f FPS)", avg, graph.Peak(), 1000/avg))
			}
			imgui.PlotLinesFloatPtr("##frametime", &graph.samples[0], int32(len(graph.samples)))

			imgui.Separator()
			archetypeTable(stats)

			if imgui.TreeNodeStr("Singletons") {
				for _, name := range stats.SingletonTypes {
					imgui.BulletText(name)
				}
				imgui.TreePop()
			}
		},
	}
}

func archetypeTable(stats *ecs.StorageStats) {
	largest := 0
	for _, arch := range stats.ArchetypeBreakdown {
		largest = max(largest, arch.EntityCount)
	}

	const flags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg
	if !imgui.BeginTableV("archetypes", 3, flags, imgui.NewVec2(0, 0), 0) {
		return
	}
	imgui.TableSetupColumn("ID")
	imgui.TableSetupColumn("Components")
	imgui.TableSetupColumn("Entities")
	imgui.TableHeadersRow()

	barColor := imgui.ColorU32Vec4(imgui.NewVec4(0.2, 0.6, 0.8, 0.6))
	for _, arch := range stats.ArchetypeBreakdown {
		imgui.TableNextRow()
		imgui.TableNextColumn()
		imgui.Text(fmt.Sprintf("0x%X", arch.ID))
		imgui.TableNextColumn()
		imgui.Text(strings.Join(shortNames(arch.ComponentTypes), ", "))
		imgui.TableNextColumn()
		imgui.Text(fmt.Sprintf("%d", arch.EntityCount))

		if largest > 0 {
			imgui.SameLine()
			pos := imgui.CursorScreenPos()
			width := float32(arch.EntityCount) / float32(largest) * 60
			imgui.WindowDrawList().AddRectFilled(pos, imgui.NewVec2(pos.X+width, pos.Y+10), barColor)
		}
	}
	imgui.EndTable()
}

// shortNames drops package qualifiers: "invaders.Position" becomes "Position".
func shortNames(names []string) []string {
	out := make([]string, len(names))
	for i, name := range names {
		if dot := strings.LastIndexByte(name, '.'); dot >= 0 {
			name = name[dot+1:]
		}
		out[i] = name
	}
	return out
}
