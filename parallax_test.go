package deskview

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
)

func TestNormalizePointer(t *testing.T) {
	assert.Equal(t, PointerState{X: -1, Y: 1}, NormalizePointer(0, 0, 800, 600))
	assert.Equal(t, PointerState{X: 0, Y: 0}, NormalizePointer(400, 300, 800, 600))
	assert.Equal(t, PointerState{X: 1, Y: -1}, NormalizePointer(800, 600, 800, 600))
	assert.Equal(t, PointerState{X: 1, Y: -1}, NormalizePointer(5000, 5000, 800, 600))
	assert.Equal(t, PointerState{}, NormalizePointer(10, 10, 0, 0))
}

func TestParallaxSmoothsTowardsPointer(t *testing.T) {
	p := NewParallax(DefaultParallaxSmoothing, DefaultParallaxVerticalScale)
	ptr := PointerState{X: 1, Y: 1}

	p.Update(ptr, 15, false, 1)
	assert.InDelta(t, 0.3, p.Offset()[0], 1e-9)
	assert.InDelta(t, 0.15, p.Offset()[1], 1e-9)
	assert.Zero(t, p.Offset()[2])

	for i := 0; i < 2000; i++ {
		p.Update(ptr, 15, false, 1)
	}
	assert.InDelta(t, 15, p.Offset()[0], 1e-6)
	assert.InDelta(t, 7.5, p.Offset()[1], 1e-6)
}

func TestParallaxFadesToZeroWhenFocused(t *testing.T) {
	p := NewParallax(0.5, 0.5)
	for i := 0; i < 50; i++ {
		p.Update(PointerState{X: 1, Y: -1}, 6, false, 1)
	}
	start := p.Offset()
	assert.NotEqual(t, mgl64.Vec3{}, start)

	p.Update(PointerState{X: 1, Y: -1}, 0, true, 0.5)
	assert.InDelta(t, start[0]/2, p.Offset()[0], 1e-9)

	p.Update(PointerState{X: 1, Y: -1}, 0, true, 1)
	assert.Equal(t, mgl64.Vec3{}, p.Offset())

	// pointer movement while focused changes nothing
	p.Update(PointerState{X: -1, Y: 1}, 15, true, 1)
	assert.Equal(t, mgl64.Vec3{}, p.Offset())
}

func TestParallaxResumesAfterFocus(t *testing.T) {
	p := NewParallax(0.5, 0.5)
	p.Update(PointerState{X: 1}, 6, true, 1)
	p.Update(PointerState{X: 1}, 6, false, 1)
	assert.InDelta(t, 3, p.Offset()[0], 1e-9)

	p.Reset()
	assert.Equal(t, mgl64.Vec3{}, p.Offset())
}
