package deskview

import (
	"math"
	"time"
)

// Effects holds the purely cosmetic values that change every frame.
type Effects struct {
	clock time.Duration
}

func (e *Effects) Advance(dt time.Duration) {
	if dt > 0 {
		e.clock += dt
	}
}

func (e *Effects) Clock() time.Duration { return e.clock }

// Glow is the monitor light intensity, pulsing around glowBase.
func (e *Effects) Glow() float64 {
	return glowBase + math.Sin(e.clock.Seconds()*2)*0.1
}

// Indicator is the opacity of the blinking status LED.
func (e *Effects) Indicator() float64 {
	return 0.7 + math.Sin(e.clock.Seconds()*3)*0.3
}
