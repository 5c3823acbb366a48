package ebitenview

import (
	"fmt"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/smasonuk/deskview"
)

// Host runs a deskview session inside an ebiten game loop. It polls input
// into an InputBus and steps a FrameQueue once per tick, so the scene sees
// the same frame thread it would on any other platform.
type Host struct {
	session *deskview.Session
	queue   *deskview.FrameQueue
	bus     *deskview.InputBus
	canvas  *Canvas
	logger  *log.Logger

	commands chan func()

	elapsed        time.Duration
	lastTick       time.Time
	lastX, lastY   int
	width, height  int
	reportedW      int
	reportedH      int
	ShowDebugStats bool
}

func NewHost(cfg deskview.Config, logger *log.Logger, hooks deskview.Callbacks) (*Host, error) {
	if logger == nil {
		logger = log.Default()
	}
	h := &Host{
		queue:          deskview.NewFrameQueue(),
		bus:            deskview.NewInputBus(),
		logger:         logger,
		commands:       make(chan func(), 8),
		lastX:          -1,
		lastY:          -1,
		width:          cfg.Width,
		height:         cfg.Height,
		reportedW:      cfg.Width,
		reportedH:      cfg.Height,
		ShowDebugStats: true,
	}

	session, err := deskview.NewSession(cfg, deskview.Dependencies{
		Scheduler: h.queue,
		Input:     h.bus,
		Surfaces:  h.newCanvas,
		Logger:    logger,
	}, hooks)
	if err != nil {
		return nil, err
	}
	h.session = session
	return h, nil
}

func (h *Host) newCanvas(width, height int) (deskview.Surface, error) {
	s, err := NewCanvas(width, height)
	if err != nil {
		return nil, err
	}
	h.canvas = s.(*Canvas)
	return s, nil
}

func (h *Host) Session() *deskview.Session { return h.session }

func (h *Host) Start() error { return h.session.Start() }

// Post queues fn to run on the game loop before the next tick. It is safe
// to call from any goroutine.
func (h *Host) Post(fn func()) {
	h.commands <- fn
}

// Reload remounts the scene with cfg on the game loop. The window keeps its
// current size.
func (h *Host) Reload(cfg deskview.Config) {
	h.Post(func() {
		cfg.Width, cfg.Height = h.width, h.height
		prev := h.canvas
		if err := h.session.Reload(cfg); err != nil {
			h.canvas = prev
			h.logger.Printf("reload failed: %v", err)
			return
		}
		h.logger.Printf("reloaded scene %s", h.session.Scene().MountID())
	})
}

func (h *Host) drainCommands() {
	for {
		select {
		case fn := <-h.commands:
			fn()
		default:
			return
		}
	}
}

func (h *Host) Update() error {
	h.drainCommands()

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		h.session.Stop()
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) || inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		h.session.Begin()
	}

	if h.width != h.reportedW || h.height != h.reportedH {
		h.reportedW, h.reportedH = h.width, h.height
		h.bus.Resized(h.width, h.height)
	}

	x, y := ebiten.CursorPosition()
	if x != h.lastX || y != h.lastY {
		h.lastX, h.lastY = x, y
		h.bus.PointerMoved(float64(x), float64(y))
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		h.bus.PointerClicked(float64(x), float64(y))
	}

	dt := h.tickDuration(time.Now())
	h.elapsed += dt
	h.session.Advance(dt)
	h.queue.Step(h.elapsed)
	return nil
}

// tickDuration is one tick at the fixed TPS. With ebiten.SyncWithFPS there
// is no fixed rate, so it falls back to wall time since the last tick.
func (h *Host) tickDuration(now time.Time) time.Duration {
	last := h.lastTick
	h.lastTick = now
	if tps := ebiten.TPS(); tps > 0 {
		return time.Second / time.Duration(tps)
	}
	return wallDelta(last, now)
}

func wallDelta(last, now time.Time) time.Duration {
	if last.IsZero() || !now.After(last) {
		return 0
	}
	return now.Sub(last)
}

func (h *Host) Draw(screen *ebiten.Image) {
	if h.canvas != nil && h.canvas.Image() != nil {
		screen.DrawImage(h.canvas.Image(), nil)
	}
	if !h.ShowDebugStats {
		return
	}

	msg := fmt.Sprintf("FPS: %0.2f  view: %s", ebiten.ActualFPS(), h.session.Mode())
	if h.session.Scene().Lighting() {
		msg += "  lights: on"
	} else {
		msg += "  lights: off"
	}
	if h.session.DesktopVisible() {
		msg += "\n[desktop]"
	} else if h.session.Mode() == deskview.ModeIdle {
		msg += "\npress space to start"
	}
	ebitenutil.DebugPrint(screen, msg)
}

func (h *Host) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth > 0 && outsideHeight > 0 {
		h.width, h.height = outsideWidth, outsideHeight
	}
	return h.width, h.height
}
