package ebitenhost

import (
	"image/color"
	"testing"

	"github.com/plus3/shapeinvaders/invaders"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRect(t *testing.T) {
	r := Rect{X: 10, Y: 20, W: 30, H: 40}
	assert.True(t, r.Contains(10, 20))
	assert.True(t, r.Contains(39.9, 59.9))
	assert.False(t, r.Contains(40, 30))
	assert.False(t, r.Contains(15, 19))
}

func TestRestartButton(t *testing.T) {
	button := RestartButton(800, 600)
	assert.Equal(t, Rect{X: 320, Y: 342, W: 160, H: 44}, button)
	assert.True(t, button.Contains(400, 360))
}

func TestAppendFan(t *testing.T) {
	square := invaders.Outline(nil, invaders.ShapeSquare, 10)
	xf := invaders.Transform{TX: 100, TY: 50}

	vs, is := appendFan(nil, nil, xf, square, color.RGBA{0xff, 0, 0, 0xff})

	require.Len(t, vs, 5)
	assert.Equal(t, float32(100), vs[0].DstX)
	assert.Equal(t, float32(50), vs[0].DstY)
	assert.Equal(t, float32(90), vs[1].DstX)
	assert.Equal(t, float32(40), vs[1].DstY)
	assert.Equal(t, float32(1), vs[1].ColorR)
	assert.Equal(t, float32(0), vs[1].ColorG)
	assert.Equal(t, float32(1), vs[1].ColorA)

	assert.Equal(t, []uint16{0, 1, 2, 0, 2, 3, 0, 3, 4, 0, 4, 1}, is)
}

func TestAppendFanOffsetsIndices(t *testing.T) {
	tri := invaders.Outline(nil, invaders.ShapeTriangle, 5)
	vs, is := appendFan(nil, nil, invaders.Transform{}, tri, color.White)
	vs, is = appendFan(vs, is, invaders.Transform{}, tri, color.White)

	assert.Len(t, vs, 8)
	assert.Equal(t, []uint16{4, 5, 6, 4, 6, 7, 4, 7, 5}, is[9:])
}

func TestStarFanIsCenteredOnOrigin(t *testing.T) {
	star := invaders.Outline(nil, invaders.ShapeStar, 20)
	vs, is := appendFan(nil, nil, invaders.Transform{}, star, color.White)

	assert.InDelta(t, 0, vs[0].DstX, 1e-5)
	assert.InDelta(t, 0, vs[0].DstY, 1e-5)
	assert.Len(t, is, 30)
}

func TestHUDDisplay(t *testing.T) {
	hud, err := NewHUD()
	require.NoError(t, err)

	game, err := invaders.New(invaders.DefaultConfig())
	require.NoError(t, err)
	game.Present(hud)

	assert.Equal(t, 0, hud.score)
	assert.Equal(t, 3, hud.lives)
	assert.Equal(t, 1, hud.wave)
	assert.False(t, hud.GameOver())

	hud.SetGameOver(true, 1200)
	assert.True(t, hud.GameOver())
	assert.Equal(t, 1200, hud.finalScore)
}
