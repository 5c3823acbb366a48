package deskview

import "github.com/go-gl/mathgl/mgl64"

const (
	DefaultParallaxSmoothing     = 0.02
	DefaultParallaxVerticalScale = 0.5
)

// PointerState is the last pointer position in normalized coordinates,
// both axes in [-1, 1] with +y up.
type PointerState struct {
	X, Y float64
}

func NormalizePointer(x, y float64, width, height int) PointerState {
	if width <= 0 || height <= 0 {
		return PointerState{}
	}
	nx := x/float64(width)*2 - 1
	ny := -(y/float64(height))*2 + 1
	return PointerState{X: clampSigned(nx), Y: clampSigned(ny)}
}

func clampSigned(v float64) float64 {
	if v < -1 {
		return -1
	}
	if v > 1 {
		return 1
	}
	return v
}

// Parallax is a small camera offset that follows the pointer outside the
// focused viewpoint.
type Parallax struct {
	Smoothing     float64
	VerticalScale float64

	offset   mgl64.Vec3
	fadeFrom mgl64.Vec3
	fading   bool
}

func NewParallax(smoothing, verticalScale float64) *Parallax {
	return &Parallax{Smoothing: smoothing, VerticalScale: verticalScale}
}

// Update advances the offset by one frame. While focused the offset shrinks
// with the transition progress and is exactly zero once it completes, so the
// focused view never drifts.
func (p *Parallax) Update(ptr PointerState, strength float64, focused bool, progress float64) {
	if focused {
		if !p.fading {
			p.fadeFrom = p.offset
			p.fading = true
		}
		progress = clampUnit(progress)
		if progress >= 1 {
			p.offset = mgl64.Vec3{}
			return
		}
		p.offset = p.fadeFrom.Mul(1 - progress)
		return
	}

	p.fading = false
	target := mgl64.Vec3{ptr.X * strength, ptr.Y * strength * p.VerticalScale, 0}
	p.offset = p.offset.Add(target.Sub(p.offset).Mul(p.Smoothing))
	if !finiteVec(p.offset) {
		p.offset = mgl64.Vec3{}
	}
}

func (p *Parallax) Offset() mgl64.Vec3 { return p.offset }

func (p *Parallax) Reset() {
	p.offset = mgl64.Vec3{}
	p.fadeFrom = mgl64.Vec3{}
	p.fading = false
}
