package ebitenview

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/smasonuk/deskview"
)

// Canvas is an offscreen ebiten image the scene renders into. The host
// draws it onto the window every frame.
type Canvas struct {
	img     *ebiten.Image
	batcher *Batcher
}

// NewCanvas is a deskview.SurfaceFactory.
func NewCanvas(width, height int) (deskview.Surface, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("canvas %dx%d has no area", width, height)
	}
	c := &Canvas{}
	c.allocate(width, height)
	return c, nil
}

func (c *Canvas) allocate(width, height int) {
	c.img = ebiten.NewImage(width, height)
	c.batcher = NewBatcher(c.img)
}

func (c *Canvas) Resize(width, height int) {
	if c.img == nil {
		return
	}
	if b := c.img.Bounds(); b.Dx() == width && b.Dy() == height {
		return
	}
	c.img.Deallocate()
	c.allocate(width, height)
}

func (c *Canvas) Render(f *deskview.Frame) {
	if c.img == nil {
		return
	}
	c.img.Fill(f.Lights.Background)
	f.World.Paint(c.batcher, f)
}

func (c *Canvas) Release() {
	if c.img == nil {
		return
	}
	c.img.Deallocate()
	c.img = nil
	c.batcher = nil
}

// Image is the last rendered frame, nil after Release.
func (c *Canvas) Image() *ebiten.Image { return c.img }
