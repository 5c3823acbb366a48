package deskview

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Camera is a perspective camera looking at a target point.
type Camera struct {
	Position mgl64.Vec3
	Target   mgl64.Vec3
	Up       mgl64.Vec3
	FovY     float64 // degrees
	Near     float64
	Far      float64
	width    int
	height   int
}

func NewCamera(fovY, near, far float64, width, height int) *Camera {
	return &Camera{
		Up:     mgl64.Vec3{0, 1, 0},
		FovY:   fovY,
		Near:   near,
		Far:    far,
		width:  width,
		height: height,
	}
}

// LookAt points the camera from pos towards target.
func (c *Camera) LookAt(pos, target mgl64.Vec3) {
	c.Position = pos
	c.Target = target
}

func (c *Camera) SetViewport(width, height int) {
	c.width = width
	c.height = height
}

func (c *Camera) Viewport() (int, int) {
	return c.width, c.height
}

func (c *Camera) Aspect() float64 {
	if c.height <= 0 {
		return 1
	}
	return float64(c.width) / float64(c.height)
}

func (c *Camera) View() mgl64.Mat4 {
	return mgl64.LookAtV(c.Position, c.Target, c.Up)
}

func (c *Camera) Projection() mgl64.Mat4 {
	return mgl64.Perspective(mgl64.DegToRad(c.FovY), c.Aspect(), c.Near, c.Far)
}

// ScreenToNDC converts pixel coordinates (origin top-left) to normalized
// device coordinates with +y up.
func (c *Camera) ScreenToNDC(x, y float64) (float64, float64) {
	if c.width <= 0 || c.height <= 0 {
		return 0, 0
	}
	return x/float64(c.width)*2 - 1, -(y/float64(c.height))*2 + 1
}

// RayFromScreen builds the world-space ray under a pixel.
func (c *Camera) RayFromScreen(x, y float64) (Ray, error) {
	nx, ny := c.ScreenToNDC(x, y)
	return c.RayFromNDC(nx, ny)
}

func (c *Camera) RayFromNDC(nx, ny float64) (Ray, error) {
	if c.width <= 0 || c.height <= 0 {
		return Ray{}, ErrEmptyViewport
	}
	w, h := float64(c.width), float64(c.height)
	winX := (nx + 1) / 2 * w
	winY := (ny + 1) / 2 * h

	view, proj := c.View(), c.Projection()
	near, err := mgl64.UnProject(mgl64.Vec3{winX, winY, 0}, view, proj, 0, 0, c.width, c.height)
	if err != nil {
		return Ray{}, err
	}
	far, err := mgl64.UnProject(mgl64.Vec3{winX, winY, 1}, view, proj, 0, 0, c.width, c.height)
	if err != nil {
		return Ray{}, err
	}
	dir := far.Sub(near)
	if dir.Len() == 0 || !finiteVec(dir) {
		return Ray{}, ErrDegenerateRay
	}
	return Ray{Origin: near, Dir: dir.Normalize()}, nil
}

// ToViewSpace returns p relative to the camera with +z pointing forward,
// which is the convention the painter clips and projects in.
func (c *Camera) ToViewSpace(view mgl64.Mat4, p mgl64.Vec3) mgl64.Vec3 {
	v := view.Mul4x1(p.Vec4(1))
	return mgl64.Vec3{v[0], v[1], -v[2]}
}

// ViewToScreen projects a forward-z view-space point to pixels. depth must
// be positive.
func (c *Camera) ViewToScreen(p mgl64.Vec3) (float32, float32) {
	f := 1 / math.Tan(mgl64.DegToRad(c.FovY)/2)
	nx := p[0] * f / c.Aspect() / p[2]
	ny := p[1] * f / p[2]
	return float32((nx + 1) / 2 * float64(c.width)), float32((1 - ny) / 2 * float64(c.height))
}

// ProjectToScreen maps a world point to pixels. ok is false for points at
// or behind the camera.
func (c *Camera) ProjectToScreen(p mgl64.Vec3) (x, y float32, ok bool) {
	v := c.ToViewSpace(c.View(), p)
	if v[2] <= 0 {
		return 0, 0, false
	}
	x, y = c.ViewToScreen(v)
	return x, y, true
}
