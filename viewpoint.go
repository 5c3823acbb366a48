package deskview

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-gl/mathgl/mgl64"
)

type ViewpointMode int

const (
	ModeIdle ViewpointMode = iota
	ModeDesk
	ModeScreen

	modeCount
)

// FocusedMode is the closest viewpoint. Parallax is suppressed there.
const FocusedMode = ModeScreen

var ErrMissingViewpoint = errors.New("deskview: viewpoint has no keyframe")

var modeNames = [modeCount]string{
	ModeIdle:   "idle",
	ModeDesk:   "desk",
	ModeScreen: "screen",
}

func (m ViewpointMode) String() string {
	if m < 0 || m >= modeCount {
		return fmt.Sprintf("ViewpointMode(%d)", int(m))
	}
	return modeNames[m]
}

func (m ViewpointMode) Valid() bool {
	return m >= 0 && m < modeCount
}

// AllModes lists every viewpoint in back-stack order, idle first.
func AllModes() []ViewpointMode {
	modes := make([]ViewpointMode, 0, modeCount)
	for m := ModeIdle; m < modeCount; m++ {
		modes = append(modes, m)
	}
	return modes
}

// ParseViewpointMode accepts the names used in config files. "monitor" is
// kept as an alias for the screen viewpoint.
func ParseViewpointMode(s string) (ViewpointMode, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	if name == "monitor" {
		return ModeScreen, nil
	}
	for m, n := range modeNames {
		if n == name {
			return ViewpointMode(m), nil
		}
	}
	return 0, fmt.Errorf("deskview: unknown viewpoint %q", s)
}

// Keyframe is where the camera sits for one viewpoint and how it gets there.
type Keyframe struct {
	Position mgl64.Vec3
	LookAt   mgl64.Vec3
	Duration time.Duration
	Parallax float64
}

// Registry is the read-only viewpoint table. It is safe for concurrent use
// because nothing mutates it after NewRegistry returns.
type Registry struct {
	frames [modeCount]Keyframe
}

func NewRegistry(table map[ViewpointMode]Keyframe) (*Registry, error) {
	r := &Registry{}
	for _, m := range AllModes() {
		kf, ok := table[m]
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrMissingViewpoint, m)
		}
		if !finiteVec(kf.Position) || !finiteVec(kf.LookAt) || !finite(kf.Parallax) {
			return nil, fmt.Errorf("%w: viewpoint %s has a non-finite keyframe", ErrInvalidConfig, m)
		}
		r.frames[m] = kf
	}
	for m := range table {
		if !m.Valid() {
			return nil, fmt.Errorf("deskview: keyframe for unknown viewpoint %d", int(m))
		}
	}
	return r, nil
}

// Lookup panics on a mode outside the enumeration, which is a programming
// error rather than a runtime condition.
func (r *Registry) Lookup(mode ViewpointMode) Keyframe {
	if !mode.Valid() {
		panic(fmt.Sprintf("deskview: lookup of invalid viewpoint %d", int(mode)))
	}
	return r.frames[mode]
}

func DefaultKeyframes() map[ViewpointMode]Keyframe {
	return map[ViewpointMode]Keyframe{
		ModeIdle: {
			Position: mgl64.Vec3{550, 420, 650},
			LookAt:   mgl64.Vec3{0, 180, -50},
			Duration: 1500 * time.Millisecond,
			Parallax: 15,
		},
		ModeDesk: {
			Position: mgl64.Vec3{60, 320, 380},
			LookAt:   mgl64.Vec3{0, 240, -60},
			Duration: 1200 * time.Millisecond,
			Parallax: 6,
		},
		ModeScreen: {
			Position: mgl64.Vec3{0, 280, 140},
			LookAt:   mgl64.Vec3{0, 268, -55},
			Duration: 800 * time.Millisecond,
			Parallax: 0,
		},
	}
}
