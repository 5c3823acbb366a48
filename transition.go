package deskview

import (
	"time"

	"github.com/go-gl/mathgl/mgl64"
)

// TransitionEngine animates the camera position and look-at point towards
// the keyframe of the requested viewpoint. At most one tween per quantity is
// ever in flight; a new request replaces the old one starting from wherever
// the camera currently is.
type TransitionEngine struct {
	registry *Registry
	ease     Easing
	target   ViewpointMode
	position Vec3Tween
	lookAt   Vec3Tween
}

func NewTransitionEngine(registry *Registry, initial ViewpointMode, ease Easing) *TransitionEngine {
	if ease == nil {
		ease = EaseInOutQuintic
	}
	e := &TransitionEngine{
		registry: registry,
		ease:     ease,
		target:   initial,
	}
	kf := registry.Lookup(initial)
	e.position.Set(kf.Position)
	e.lookAt.Set(kf.LookAt)
	return e
}

func (e *TransitionEngine) BeginTransition(mode ViewpointMode) {
	kf := e.registry.Lookup(mode)
	e.target = mode

	if !e.InFlight() && e.position.Value() == kf.Position && e.lookAt.Value() == kf.LookAt {
		return
	}

	e.position.Start(e.position.Value(), kf.Position, kf.Duration, e.ease)
	e.lookAt.Start(e.lookAt.Value(), kf.LookAt, kf.Duration, e.ease)
}

func (e *TransitionEngine) Tick(dt time.Duration) {
	e.position.Advance(dt)
	e.lookAt.Advance(dt)
}

func (e *TransitionEngine) CurrentPosition() mgl64.Vec3 { return e.position.Value() }

func (e *TransitionEngine) CurrentLookAt() mgl64.Vec3 { return e.lookAt.Value() }

// Target is the viewpoint most recently requested.
func (e *TransitionEngine) Target() ViewpointMode { return e.target }

func (e *TransitionEngine) InFlight() bool {
	return e.position.Active() || e.lookAt.Active()
}

// Progress reports the eased completion of the position tween.
func (e *TransitionEngine) Progress() float64 {
	return e.position.Progress()
}
