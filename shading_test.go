package deskview

import (
	"image/color"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
)

func TestShadeColor(t *testing.T) {
	grey := color.RGBA{R: 200, G: 200, B: 200, A: 255}
	testCases := []struct {
		name   string
		base   color.RGBA
		point  mgl64.Vec3
		normal mgl64.Vec3
		want   uint8
	}{
		{"head-on in spotlight centre", grey, mgl64.Vec3{0, 0, 10}, mgl64.Vec3{0, 0, -1}, 200},
		{"facing away gets ambient only", grey, mgl64.Vec3{0, 0, 10}, mgl64.Vec3{0, 0, 1}, 116},
		{"edge on gets ambient only", grey, mgl64.Vec3{10, 0, 10}, mgl64.Vec3{1, 0, 0}, 116},
		{"45 degrees off the spotlight", grey, mgl64.Vec3{10, 0, 10}, mgl64.Vec3{-0.70710678118, 0, -0.70710678118}, 117},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := shadeColor(tc.point, tc.normal, tc.base, ApplyLighting(true))
			// one step of slack for float rounding in the brightness sum
			assert.InDelta(t, tc.want, got.R, 1)
			assert.Equal(t, got.R, got.G)
			assert.Equal(t, got.R, got.B)
			assert.Equal(t, tc.base.A, got.A)
		})
	}
}

func TestShadeColorClampsLow(t *testing.T) {
	got := shadeColor(mgl64.Vec3{0, 0, 10}, mgl64.Vec3{0, 0, 1}, color.RGBA{R: 10, G: 10, B: 10, A: 255}, ApplyLighting(true))
	assert.Equal(t, color.RGBA{R: 7, G: 7, B: 7, A: 255}, got)
}

func TestShadeColorLampOffIsFlat(t *testing.T) {
	grey := color.RGBA{R: 200, G: 200, B: 200, A: 255}
	off := ApplyLighting(false)

	lit := shadeColor(mgl64.Vec3{0, 0, 10}, mgl64.Vec3{0, 0, -1}, grey, off)
	away := shadeColor(mgl64.Vec3{0, 0, 10}, mgl64.Vec3{0, 0, 1}, grey, off)
	assert.Equal(t, lit, away)

	on := shadeColor(mgl64.Vec3{0, 0, 10}, mgl64.Vec3{0, 0, 1}, grey, ApplyLighting(true))
	assert.Less(t, lit.R, on.R, "lights off must be darker than lights on")
}

func TestEmissiveColor(t *testing.T) {
	base := color.RGBA{R: 100, G: 50, B: 20, A: 255}

	assert.Equal(t, base, emissiveColor(FaceGlow, base, glowBase, 0))
	brighter := emissiveColor(FaceGlow, base, glowBase*1.1, 0)
	assert.Greater(t, brighter.R, base.R)

	led := emissiveColor(FaceIndicator, base, 0, 0.5)
	assert.Equal(t, uint8(127), led.A)
	assert.Equal(t, base.R, led.R)

	assert.Equal(t, base, emissiveColor(FaceSolid, base, 5, 5))
}
