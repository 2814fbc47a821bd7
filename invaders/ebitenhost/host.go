// Package ebitenhost runs an invaders.Game in an Ebiten window: it schedules
// ticks, draws through a Surface, shows the HUD and translates keyboard,
// mouse and touch input.
package ebitenhost

import (
	"fmt"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/plus3/shapeinvaders/ecs/debugui"
	debugui_ebiten "github.com/plus3/shapeinvaders/ecs/debugui/ebiten"
	"github.com/plus3/shapeinvaders/invaders"
	"github.com/plus3/shapeinvaders/invaders/input"
)

const title = "Shape Invaders"

// EventSink receives the events drained after every tick.
type EventSink interface {
	Play(events []invaders.Event) error
}

// Options selects the optional parts of the host.
type Options struct {
	// Sink plays audio cues; nil runs silent.
	Sink EventSink
	// Inspector shows the ImGui debug windows.
	Inspector bool
}

// Host implements ebiten.Game.
type Host struct {
	game    *invaders.Game
	cfg     invaders.Config
	ctrl    *input.Controller
	devices devices
	surface *Surface
	hud     *HUD
	sink    EventSink
	overlay *debugui_ebiten.Overlay

	width, height int
}

// New prepares the window and returns a Host ready for ebiten.RunGame.
func New(game *invaders.Game, opts Options) (*Host, error) {
	hud, err := NewHUD()
	if err != nil {
		return nil, err
	}

	cfg := game.Config()
	h := &Host{
		game:    game,
		cfg:     cfg,
		ctrl:    input.FromConfig(cfg),
		surface: NewSurface(),
		hud:     hud,
		sink:    opts.Sink,
		width:   int(cfg.Width),
		height:  int(cfg.Height),
	}

	windowWidth, windowHeight := int(cfg.Width*cfg.Scale), int(cfg.Height*cfg.Scale)
	if opts.Inspector {
		h.overlay = debugui_ebiten.NewOverlay(title, windowWidth, windowHeight)
		h.installInspector()
	} else {
		ebiten.SetWindowSize(windowWidth, windowHeight)
		ebiten.SetWindowTitle(title)
	}
	if cfg.Responsive {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	}
	return h, nil
}

func (h *Host) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	dt := 1 / float64(ebiten.TPS())
	var capture debugui.Capture
	if h.overlay != nil {
		h.overlay.Update(dt)
		capture = h.overlay.Capture()
	}

	presses := h.devices.poll(h.ctrl, capture)
	if h.game.Status().Over() {
		h.ctrl.Poll(dt)
		if h.restartRequested(presses, capture) {
			h.restart()
		}
	} else {
		h.game.Update(h.ctrl.Poll(dt), dt)
	}

	return h.drain()
}

func (h *Host) restartRequested(presses []point, capture debugui.Capture) bool {
	if !capture.Keyboard && (inpututil.IsKeyJustPressed(ebiten.KeyR) || inpututil.IsKeyJustPressed(ebiten.KeyEnter)) {
		return true
	}
	button := RestartButton(float64(h.width), float64(h.height))
	for _, p := range presses {
		if button.Contains(p.X, p.Y) {
			return true
		}
	}
	return false
}

func (h *Host) restart() {
	h.game.Restart()
	h.ctrl.Reset()
	h.devices.release()
}

func (h *Host) drain() error {
	events := h.game.Events()
	for _, e := range events {
		switch e.Kind {
		case invaders.EventWave:
			log.Printf("wave %d (%s), score %d", e.Wave, invaders.ParamsForWave(e.Wave).Shape, e.Score)
		case invaders.EventGameOver:
			log.Printf("game over on wave %d, final score %d", e.Wave, e.Score)
		case invaders.EventRestart:
			log.Println("new game")
		}
	}

	if h.sink != nil && len(events) > 0 {
		if err := h.sink.Play(events); err != nil {
			log.Printf("audio disabled: %v", err)
			h.sink = nil
		}
	}
	return nil
}

func (h *Host) Draw(screen *ebiten.Image) {
	h.surface.Target(screen)
	h.game.Render(h.surface)
	h.game.Present(h.hud)
	h.hud.Draw(screen)

	if h.overlay != nil {
		h.overlay.Draw(screen)
	}
}

func (h *Host) Layout(outsideWidth, outsideHeight int) (int, int) {
	if h.overlay != nil {
		h.overlay.Layout(outsideWidth, outsideHeight)
	}
	if !h.cfg.Responsive {
		return h.width, h.height
	}

	if outsideWidth != h.width || outsideHeight != h.height {
		if err := h.game.Resize(float64(outsideWidth), float64(outsideHeight)); err != nil {
			log.Printf("keeping %dx%d playfield: %v", h.width, h.height, err)
			return h.width, h.height
		}
		h.width, h.height = outsideWidth, outsideHeight
	}
	return h.width, h.height
}

// Run blocks until the window is closed.
func (h *Host) Run() error {
	if err := ebiten.RunGame(h); err != nil {
		return fmt.Errorf("run game: %w", err)
	}
	return nil
}
