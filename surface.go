package deskview

import (
	"errors"
	"time"
)

var ErrSurfaceUnavailable = errors.New("deskview: rendering surface unavailable")

// Surface is the GPU-backed target a scene renders into.
type Surface interface {
	Resize(width, height int)
	Render(f *Frame)
	Release()
}

// SurfaceFactory allocates a surface for a new mount.
type SurfaceFactory func(width, height int) (Surface, error)

// Frame is what the loop hands to the surface each frame. It is only valid
// for the duration of the Render call.
type Frame struct {
	Number    uint64
	Elapsed   time.Duration
	Mode      ViewpointMode
	Camera    *Camera
	World     *World
	Lights    LightValues
	Glow      float64
	Indicator float64
}
