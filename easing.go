package deskview

import (
	"fmt"
	"math"
	"strings"

	"github.com/tanema/gween/ease"
)

// Easing maps linear progress in [0,1] to eased progress in [0,1].
type Easing func(t float64) float64

// fromTween adapts a gween curve to unit progress. Input is clamped, so the
// curve is only ever sampled between its endpoints.
func fromTween(fn ease.TweenFunc) Easing {
	return func(t float64) float64 {
		t = clampUnit(t)
		switch t {
		case 0, 1:
			return t
		}
		return clampUnit(float64(fn(float32(t), 0, 1, 1)))
	}
}

var (
	EaseLinear       = fromTween(ease.Linear)
	EaseInOutCubic   = fromTween(ease.InOutCubic)
	EaseInOutQuintic = fromTween(ease.InOutQuint)
)

func EasingByName(name string) (Easing, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "quintic":
		return EaseInOutQuintic, nil
	case "cubic":
		return EaseInOutCubic, nil
	case "linear":
		return EaseLinear, nil
	}
	return nil, fmt.Errorf("deskview: unknown easing %q", name)
}

func clampUnit(t float64) float64 {
	if t < 0 || math.IsNaN(t) {
		return 0
	}
	if t > 1 {
		return 1
	}
	return t
}

func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}
