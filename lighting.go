package deskview

import "image/color"

// LampOnIntensity is the desk lamp intensity while the lights are on.
const LampOnIntensity = 2.5

// LightingState is the on/off switch of the room lights. Only a click on the
// toggle switch changes it.
type LightingState struct {
	on bool
}

func NewLightingState(on bool) *LightingState {
	return &LightingState{on: on}
}

func (l *LightingState) On() bool { return l.on }

func (l *LightingState) Set(on bool) { l.on = on }

// Toggle flips the lights and returns the new state.
func (l *LightingState) Toggle() bool {
	l.on = !l.on
	return l.on
}

// LightValues is everything the painter needs to know about the lights.
type LightValues struct {
	Lamp       float64
	Ambient    float64
	Background color.RGBA
}

var (
	lightsOn = LightValues{
		Lamp:       LampOnIntensity,
		Ambient:    0.3,
		Background: color.RGBA{R: 0x05, G: 0x05, B: 0x08, A: 0xff},
	}
	lightsOff = LightValues{
		Lamp:       0,
		Ambient:    0.08,
		Background: color.RGBA{R: 0x02, G: 0x02, B: 0x03, A: 0xff},
	}
)

// ApplyLighting maps the switch position to fixed light values. The change
// is instant; nothing is interpolated between the two.
func ApplyLighting(on bool) LightValues {
	if on {
		return lightsOn
	}
	return lightsOff
}
