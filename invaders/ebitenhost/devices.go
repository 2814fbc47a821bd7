package ebitenhost

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/plus3/shapeinvaders/ecs/debugui"
	"github.com/plus3/shapeinvaders/invaders/input"
)

var keymap = map[input.Key][]ebiten.Key{
	input.KeyLeft:  {ebiten.KeyArrowLeft, ebiten.KeyA},
	input.KeyRight: {ebiten.KeyArrowRight, ebiten.KeyD},
	input.KeyFire:  {ebiten.KeySpace},
}

// point is a press position in layout coordinates.
type point struct {
	X, Y float64
}

// devices translates ebiten keyboard, mouse and touch state into Controller
// events. Only the first active touch drives the ship.
type devices struct {
	touch    ebiten.TouchID
	touching bool
	mouse    bool

	pressed []ebiten.TouchID
	presses []point
}

// poll feeds ctrl and returns the positions of presses that started this tick.
func (d *devices) poll(ctrl *input.Controller, capture debugui.Capture) []point {
	d.presses = d.presses[:0]

	if !capture.Keyboard {
		d.pollKeys(ctrl)
	}
	d.pollTouches(ctrl)
	if !capture.Mouse || d.mouse {
		d.pollMouse(ctrl)
	}
	return d.presses
}

func (d *devices) pollKeys(ctrl *input.Controller) {
	for key, physical := range keymap {
		held, down, up := false, false, false
		for _, k := range physical {
			held = held || ebiten.IsKeyPressed(k)
			down = down || inpututil.IsKeyJustPressed(k)
			up = up || inpututil.IsKeyJustReleased(k)
		}

		switch {
		case key == input.KeyFire && down:
			ctrl.KeyDown(key)
		case key == input.KeyFire && up:
			ctrl.KeyUp(key)
		case key != input.KeyFire && held:
			ctrl.KeyDown(key)
		case key != input.KeyFire:
			ctrl.KeyUp(key)
		}
	}
}

func (d *devices) pollTouches(ctrl *input.Controller) {
	if d.touching {
		if inpututil.IsTouchJustReleased(d.touch) {
			d.touching = false
			ctrl.PointerUp()
		} else {
			x, _ := ebiten.TouchPosition(d.touch)
			ctrl.PointerMove(float64(x))
		}
	}

	d.pressed = inpututil.AppendJustPressedTouchIDs(d.pressed[:0])
	for _, id := range d.pressed {
		x, y := ebiten.TouchPosition(id)
		d.presses = append(d.presses, point{X: float64(x), Y: float64(y)})
		if !d.touching && !d.mouse {
			d.touch = id
			d.touching = true
			ctrl.PointerDown(float64(x))
		}
	}
}

func (d *devices) pollMouse(ctrl *input.Controller) {
	x, y := ebiten.CursorPosition()
	switch {
	case inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft):
		d.presses = append(d.presses, point{X: float64(x), Y: float64(y)})
		if !d.touching {
			d.mouse = true
			ctrl.PointerDown(float64(x))
		}
	case d.mouse && inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft):
		d.mouse = false
		ctrl.PointerUp()
	case d.mouse:
		ctrl.PointerMove(float64(x))
	}
}

// release drops any press in progress.
func (d *devices) release() {
	d.touching = false
	d.mouse = false
}
