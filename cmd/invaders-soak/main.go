package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"
	"time"

	"github.com/plus3/shapeinvaders/invaders"
)

func main() {
	duration := flag.Duration("duration", 10*time.Second, "How long the autopilot should play.")
	ticks := flag.Int64("ticks", 0, "Stop after this many ticks (0 for no limit).")
	configPath := flag.String("config", "", "TOML file with game tunables.")
	flag.Parse()

	cfg := invaders.DefaultConfig()
	if *configPath != "" {
		loaded, err := invaders.LoadConfig(*configPath)
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
		cfg = loaded
	}

	game, err := invaders.New(cfg)
	if err != nil {
		log.Fatalf("Failed to create game: %v", err)
	}

	results := &Results{
		Duration: *duration,
		MaxTicks: *ticks,
		Config:   cfg,
	}
	runtime.ReadMemStats(&results.MemStatsStart)

	log.Printf("Running autopilot for %s...", *duration)
	ctx, cancel := context.WithTimeout(context.Background(), *duration)
	defer cancel()

	start := time.Now()
	soak(ctx, game, *ticks, results)
	results.TotalTime = time.Since(start)

	results.BestScore = max(results.BestScore, game.Status().Score)
	results.BestWave = max(results.BestWave, game.Status().Wave)
	results.TickTime.Finalize()
	results.UpdateSystems = game.UpdateStats().Systems
	results.RenderSystems = game.RenderStats().Systems
	runtime.ReadMemStats(&results.MemStatsEnd)

	log.Println("Soak finished.")

	fmt.Println("\n--- Soak Report ---")
	if err := results.Generate(os.Stdout); err != nil {
		log.Fatalf("Failed to generate report: %v", err)
	}
	fmt.Println("--- End of Report ---")
}
