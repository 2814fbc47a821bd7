package invaders

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

// Config holds the tunables of a session. The zero value is not usable; start
// from DefaultConfig.
type Config struct {
	Width       float64 `toml:"width"`
	Height      float64 `toml:"height"`
	PlayerSpeed float64 `toml:"player_speed"`
	BulletSpeed float64 `toml:"bullet_speed"`

	// FireInterval is the repeat rate of held touch/pointer fire.
	FireInterval time.Duration `toml:"fire_interval"`
	// DragSensitivity scales pointer drag distance into ship displacement.
	DragSensitivity float64 `toml:"drag_sensitivity"`

	// Responsive makes the playfield follow the window size instead of scaling a fixed canvas.
	Responsive bool    `toml:"responsive"`
	Scale      float64 `toml:"scale"`
	Sound      bool    `toml:"sound"`
	Debug      bool    `toml:"debug"`
}

// DefaultConfig returns the classic 800x600 setup.
func DefaultConfig() Config {
	return Config{
		Width:           800,
		Height:          600,
		PlayerSpeed:     5,
		BulletSpeed:     7,
		FireInterval:    300 * time.Millisecond,
		DragSensitivity: 0.5,
		Scale:           1,
	}
}

// Validate reports every out-of-range value at once.
func (c Config) Validate() error {
	var errs []error
	if c.Width <= PlayerWidth {
		errs = append(errs, fmt.Errorf("width %v must exceed the ship width %d", c.Width, PlayerWidth))
	}
	if c.Height <= PlayerInset+PlayerHeight {
		errs = append(errs, fmt.Errorf("height %v must exceed %d", c.Height, PlayerInset+PlayerHeight))
	}
	if c.PlayerSpeed <= 0 {
		errs = append(errs, fmt.Errorf("player_speed %v must be positive", c.PlayerSpeed))
	}
	if c.BulletSpeed <= 0 {
		errs = append(errs, fmt.Errorf("bullet_speed %v must be positive", c.BulletSpeed))
	}
	if c.FireInterval <= 0 {
		errs = append(errs, fmt.Errorf("fire_interval %v must be positive", c.FireInterval))
	}
	if c.DragSensitivity <= 0 {
		errs = append(errs, fmt.Errorf("drag_sensitivity %v must be positive", c.DragSensitivity))
	}
	if c.Scale <= 0 {
		errs = append(errs, fmt.Errorf("scale %v must be positive", c.Scale))
	}
	return errors.Join(errs...)
}

// LoadConfig reads a TOML file over DefaultConfig. Keys the file sets override
// the defaults; unknown keys are an error so typos do not pass silently.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("decode %s: %w", path, err)
	}

	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, key := range undecoded {
			keys[i] = key.String()
		}
		return Config{}, fmt.Errorf("%s: unknown keys %s", path, strings.Join(keys, ", "))
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}
