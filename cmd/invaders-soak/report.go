package main

import (
	"fmt"
	"io"
	"runtime"
	"text/template"
	"time"

	"github.com/plus3/shapeinvaders/ecs"
	"github.com/plus3/shapeinvaders/invaders"
)

// Results collects everything the soak run measured.
type Results struct {
	// Configuration
	Duration time.Duration
	MaxTicks int64
	Config   invaders.Config

	// Results
	Ticks         int64
	TotalTime     time.Duration
	TickTime      Stats
	DrawCalls     int64
	Games         int
	Shots         int
	Kills         int
	WavesStarted  int
	BestScore     int
	BestWave      int
	UpdateSystems []ecs.SystemStats
	RenderSystems []ecs.SystemStats
	MemStatsStart runtime.MemStats
	MemStatsEnd   runtime.MemStats
}

func (r *Results) record(e invaders.Event) {
	switch e.Kind {
	case invaders.EventShot:
		r.Shots++
	case invaders.EventKill:
		r.Kills++
	case invaders.EventWave:
		r.WavesStarted++
	case invaders.EventGameOver:
		r.Games++
	}
	r.BestScore = max(r.BestScore, e.Score)
	r.BestWave = max(r.BestWave, e.Wave)
}

// Accuracy is the share of shots that destroyed an enemy.
func (r *Results) Accuracy() float64 {
	if r.Shots == 0 {
		return 0
	}
	return float64(r.Kills) / float64(r.Shots) * 100
}

type Stats struct {
	Min     time.Duration
	Max     time.Duration
	Avg     time.Duration
	Samples []time.Duration
}

func (s *Stats) Finalize() {
	if len(s.Samples) == 0 {
		return
	}

	var total time.Duration
	s.Min = s.Samples[0]
	s.Max = s.Samples[0]
	for _, sample := range s.Samples {
		s.Min = min(s.Min, sample)
		s.Max = max(s.Max, sample)
		total += sample
	}
	s.Avg = total / time.Duration(len(s.Samples))
}

const reportTemplate = `
# Shape Invaders Soak Report

## Configuration
- **Run Duration:** {{.Duration}}
- **Tick Limit:** {{if .MaxTicks}}{{.MaxTicks}}{{else}}none{{end}}
- **Playfield:** {{.Config.Width}}x{{.Config.Height}}
- **Player/Bullet Speed:** {{.Config.PlayerSpeed}} / {{.Config.BulletSpeed}}

## Gameplay
- **Ticks:** {{.Ticks}} ({{.TotalTime}})
- **Games Finished:** {{.Games}}
- **Best Score:** {{.BestScore}}
- **Highest Wave:** {{.BestWave}}
- **Waves Started:** {{.WavesStarted}}
- **Shots / Kills:** {{.Shots}} / {{.Kills}} ({{printf "%.1f" .Accuracy}}% accuracy)
- **Draw Calls:** {{.DrawCalls}}

## Tick Time
- **Avg:** {{.TickTime.Avg}}
- **Min:** {{.TickTime.Min}}
- **Max:** {{.TickTime.Max}}

## Update Systems
{{range .UpdateSystems}}- {{.Name}}: {{.ExecutionCount}} runs, avg {{.AvgDuration}}, max {{.MaxDuration}}
{{end}}
## Render Systems
{{range .RenderSystems}}- {{.Name}}: {{.ExecutionCount}} runs, avg {{.AvgDuration}}, max {{.MaxDuration}}
{{end}}
## Memory Usage
- Heap Alloc:  {{mb .MemStatsStart.HeapAlloc}} MB (start) -> {{mb .MemStatsEnd.HeapAlloc}} MB (end)
- Total Alloc: {{mb .MemStatsStart.TotalAlloc}} MB (start) -> {{mb .MemStatsEnd.TotalAlloc}} MB (end)
- Num GC:      {{usub .MemStatsEnd.NumGC .MemStatsStart.NumGC}}
`

func (r *Results) Generate(w io.Writer) error {
	fm := template.FuncMap{
		"mb": func(v uint64) string {
			return fmt.Sprintf("%.2f", float64(v)/1024/1024)
		},
		"usub": func(a, b uint32) uint32 {
			return a - b
		},
	}

	tmpl, err := template.New("report").Funcs(fm).Parse(reportTemplate)
	if err != nil {
		return err
	}
	return tmpl.Execute(w, r)
}
