package main

import (
	"flag"
	"log"

	"github.com/plus3/shapeinvaders/audio"
	"github.com/plus3/shapeinvaders/invaders"
	"github.com/plus3/shapeinvaders/invaders/ebitenhost"
)

func main() {
	configPath := flag.String("config", "", "TOML file with game tunables.")
	sound := flag.Bool("sound", false, "Play cue tones for shots, kills and waves.")
	debug := flag.Bool("debug", false, "Show the ImGui inspector windows.")
	scale := flag.Float64("scale", 1, "Window scale factor.")
	responsive := flag.Bool("responsive", false, "Resize the playfield with the window.")
	flag.Parse()

	cfg := invaders.DefaultConfig()
	if *configPath != "" {
		loaded, err := invaders.LoadConfig(*configPath)
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
		cfg = loaded
		log.Printf("Loaded config from %s", *configPath)
	}

	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "sound":
			cfg.Sound = *sound
		case "debug":
			cfg.Debug = *debug
		case "scale":
			cfg.Scale = *scale
		case "responsive":
			cfg.Responsive = *responsive
		}
	})

	game, err := invaders.New(cfg)
	if err != nil {
		log.Fatalf("Failed to create game: %v", err)
	}

	opts := ebitenhost.Options{Inspector: cfg.Debug}
	if cfg.Sound {
		player, err := audio.NewPlayer()
		if err != nil {
			log.Printf("Audio initialization failed, running silent: %v", err)
		} else {
			defer player.Close()
			opts.Sink = player
		}
	}

	host, err := ebitenhost.New(game, opts)
	if err != nil {
		log.Fatalf("Failed to create host: %v", err)
	}

	log.Printf("Starting %vx%v playfield", cfg.Width, cfg.Height)
	if err := host.Run(); err != nil {
		log.Fatalf("Game exited: %v", err)
	}
}
