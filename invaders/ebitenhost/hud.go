package ebitenhost

import (
	"bytes"
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/gofont/goregular"
)

var (
	hudColor    = color.White
	panelColor  = color.RGBA{0x10, 0x10, 0x18, 0xe0}
	buttonColor = color.RGBA{0x30, 0x90, 0x30, 0xff}
	titleColor  = color.RGBA{0xff, 0x40, 0x40, 0xff}
)

const (
	panelWidth   = 360
	panelHeight  = 220
	buttonWidth  = 160
	buttonHeight = 44
)

// Rect is an axis aligned screen rectangle.
type Rect struct {
	X, Y, W, H float64
}

// Contains reports whether (x, y) lies inside r.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// HUD is the Display sink: score, lives and wave readouts plus the game over
// panel with its restart button.
type HUD struct {
	source *text.GoTextFaceSource

	score, lives, wave int
	over               bool
	finalScore         int
}

func NewHUD() (*HUD, error) {
	source, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, fmt.Errorf("load HUD font: %w", err)
	}
	return &HUD{source: source}, nil
}

func (h *HUD) SetScore(score int) { h.score = score }
func (h *HUD) SetLives(lives int) { h.lives = lives }
func (h *HUD) SetWave(wave int)   { h.wave = wave }

func (h *HUD) SetGameOver(visible bool, finalScore int) {
	h.over = visible
	h.finalScore = finalScore
}

// GameOver reports whether the game over panel is showing.
func (h *HUD) GameOver() bool {
	return h.over
}

// RestartButton returns the button's bounds on a width x height screen.
func RestartButton(width, height float64) Rect {
	return Rect{
		X: (width - buttonWidth) / 2,
		Y: height/2 + panelHeight/2 - buttonHeight - 24,
		W: buttonWidth,
		H: buttonHeight,
	}
}

func (h *HUD) Draw(screen *ebiten.Image) {
	bounds := screen.Bounds()
	width, height := float64(bounds.Dx()), float64(bounds.Dy())

	h.text(screen, fmt.Sprintf("Score: %d", h.score), 10, 10, 20, text.AlignStart, hudColor)
	h.text(screen, fmt.Sprintf("Lives: %d", h.lives), width/2, 10, 20, text.AlignCenter, hudColor)
	h.text(screen, fmt.Sprintf("Wave: %d", h.wave), width-10, 10, 20, text.AlignEnd, hudColor)

	if !h.over {
		return
	}

	panel := Rect{X: (width - panelWidth) / 2, Y: (height - panelHeight) / 2, W: panelWidth, H: panelHeight}
	fillRect(screen, panel, panelColor)
	h.text(screen, "GAME OVER", width/2, panel.Y+24, 40, text.AlignCenter, titleColor)
	h.text(screen, fmt.Sprintf("Final Score: %d", h.finalScore), width/2, panel.Y+84, 22, text.AlignCenter, hudColor)

	button := RestartButton(width, height)
	fillRect(screen, button, buttonColor)
	h.text(screen, "Restart", width/2, button.Y+10, 22, text.AlignCenter, hudColor)
}

func (h *HUD) text(screen *ebiten.Image, s string, x, y, size float64, align text.Align, c color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(c)
	op.PrimaryAlign = align
	text.Draw(screen, s, &text.GoTextFace{Source: h.source, Size: size}, op)
}

func fillRect(screen *ebiten.Image, r Rect, c color.Color) {
	vector.DrawFilledRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), c, false)
}
