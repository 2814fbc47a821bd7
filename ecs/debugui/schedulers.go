package debugui

import (
	"fmt"
	"time"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/shapeinvaders/ecs"
)

// StatsSource names a scheduler whose timings should be shown.
type StatsSource struct {
	Name  string
	Stats func() *ecs.SchedulerStats
}

// SchedulerWindow shows per-system timings for each source.
func SchedulerWindow(sources ...StatsSource) Window {
	return Window{
		Title: "Systems",
		Pos:   imgui.NewVec2(10, 340),
		Size:  imgui.NewVec2(420, 300),
		Render: func() {
			for _, source := range sources {
				stats := source.Stats()
				if !imgui.TreeNodeStr(fmt.Sprintf("%s (%d systems)", source.Name, stats.SystemCount)) {
					continue
				}
				systemTable(source.Name, stats)
				imgui.TreePop()
			}
		},
	}
}

func systemTable(id string, stats *ecs.SchedulerStats) {
	const flags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg
	if !imgui.BeginTableV(id, 5, flags, imgui.NewVec2(0, 0), 0) {
		return
	}
	imgui.TableSetupColumn("System")
	imgui.TableSetupColumn("Runs")
	imgui.TableSetupColumn("Last")
	imgui.TableSetupColumn("Avg")
	imgui.TableSetupColumn("Max")
	imgui.TableHeadersRow()

	for _, system := range stats.Systems {
		imgui.TableNextRow()
		imgui.TableNextColumn()
		imgui.Text(system.Name)
		imgui.TableNextColumn()
		imgui.Text(fmt.Sprintf("%d", system.ExecutionCount))
		imgui.TableNextColumn()
		imgui.Text(millis(system.LastDuration))
		imgui.TableNextColumn()
		imgui.Text(millis(system.AvgDuration))
		imgui.TableNextColumn()
		imgui.Text(millis(system.MaxDuration))
	}
	imgui.EndTable()
}

func millis(d time.Duration) string {
	return fmt.Sprintf("%.3f ms", float64(d)/float64(time.Millisecond))
}
