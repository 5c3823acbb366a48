package deskview

import (
	"image/color"
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

const (
	baseAmbient        = 0.35
	spotlightConePower = 10.0
	glowBase           = 1.2
)

func clamp(value, min, max int) int {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}

// shadeColor lights a solid face with an ambient term plus a lamp that acts
// as a spotlight along the view axis. point and normal are in forward-z view
// space.
func shadeColor(point, normal mgl64.Vec3, base color.RGBA, lights LightValues) color.RGBA {
	ambientLight := baseAmbient + lights.Ambient
	if ambientLight > 1 {
		ambientLight = 1
	}
	spotlightLightAmount := (1 - ambientLight) * lights.Lamp / LampOnIntensity

	// a face turned towards the viewer has a normal pointing back down -z
	diffuseFactor := -normal[2]
	if diffuseFactor < 0 {
		diffuseFactor = 0
	}

	spotlightFactor := 1.0
	if l := point.Len(); l > 0 {
		cosAngle := point[2] / l
		if cosAngle < 0 {
			cosAngle = 0
		}
		spotlightFactor = math.Pow(cosAngle, spotlightConePower)
	}

	finalBrightness := ambientLight + diffuseFactor*spotlightFactor*spotlightLightAmount

	c := 240 - int(finalBrightness*240)
	const min = 7
	return color.RGBA{
		R: uint8(clamp(int(base.R)-c, min, 255)),
		G: uint8(clamp(int(base.G)-c, min, 255)),
		B: uint8(clamp(int(base.B)-c, min, 255)),
		A: base.A,
	}
}

// emissiveColor colours self-lit faces. They ignore the room lights.
func emissiveColor(kind FaceKind, base color.RGBA, glow, indicator float64) color.RGBA {
	switch kind {
	case FaceGlow:
		s := glow / glowBase
		return color.RGBA{
			R: uint8(clamp(int(float64(base.R)*s), 0, 255)),
			G: uint8(clamp(int(float64(base.G)*s), 0, 255)),
			B: uint8(clamp(int(float64(base.B)*s), 0, 255)),
			A: base.A,
		}
	case FaceIndicator:
		a := clamp(int(indicator*255), 0, 255)
		return color.RGBA{R: base.R, G: base.G, B: base.B, A: uint8(a)}
	}
	return base
}
