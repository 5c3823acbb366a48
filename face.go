package deskview

import (
	"image/color"

	"github.com/go-gl/mathgl/mgl64"
)

// FaceKind selects how a face is lit.
type FaceKind int

const (
	FaceSolid FaceKind = iota
	// FaceGlow is self-lit and follows the monitor glow pulse.
	FaceGlow
	// FaceIndicator is self-lit and blinks with the indicator opacity.
	FaceIndicator
)

// Face is a planar convex polygon in world space.
type Face struct {
	Points []mgl64.Vec3
	Col    color.RGBA
	Kind   FaceKind
	normal *mgl64.Vec3
}

func NewFace(points []mgl64.Vec3, col color.RGBA) *Face {
	return &Face{Points: points, Col: col}
}

func (f *Face) Normal() mgl64.Vec3 {
	if f.normal == nil {
		f.createNormal()
	}
	return *f.normal
}

func (f *Face) createNormal() {
	n := mgl64.Vec3{0, 0, 1}
	if len(f.Points) >= 3 {
		c := f.Points[1].Sub(f.Points[0]).Cross(f.Points[2].Sub(f.Points[0]))
		if c.Len() > 0 {
			n = c.Normalize()
		}
	}
	f.normal = &n
}

func (f *Face) MidPoint() mgl64.Vec3 {
	if len(f.Points) == 0 {
		return mgl64.Vec3{}
	}
	var sum mgl64.Vec3
	for _, p := range f.Points {
		sum = sum.Add(p)
	}
	return sum.Mul(1 / float64(len(f.Points)))
}

func (f *Face) DistanceTo(p mgl64.Vec3) float64 {
	return f.MidPoint().Sub(p).Len()
}

// FacesCamera reports whether the front of the face is visible from eye.
func (f *Face) FacesCamera(eye mgl64.Vec3) bool {
	if len(f.Points) == 0 {
		return false
	}
	return f.Normal().Dot(eye.Sub(f.Points[0])) > 0
}
