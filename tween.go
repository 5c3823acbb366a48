package deskview

import (
	"math"
	"time"

	"github.com/go-gl/mathgl/mgl64"
)

// Vec3Tween moves a point from one value to another over a fixed duration.
// The zero value is an idle tween sitting at the origin.
type Vec3Tween struct {
	from     mgl64.Vec3
	to       mgl64.Vec3
	value    mgl64.Vec3
	duration time.Duration
	elapsed  time.Duration
	ease     Easing
	active   bool
}

// Start replaces whatever the tween was doing. A non-positive duration
// jumps straight to the target.
func (t *Vec3Tween) Start(from, to mgl64.Vec3, d time.Duration, ease Easing) {
	if ease == nil {
		ease = EaseInOutQuintic
	}
	t.from = from
	t.to = to
	t.value = from
	t.duration = d
	t.elapsed = 0
	t.ease = ease
	t.active = true
	if d <= 0 {
		t.finish()
	}
}

// Set places the tween at v with nothing in flight.
func (t *Vec3Tween) Set(v mgl64.Vec3) {
	t.from, t.to, t.value = v, v, v
	t.elapsed, t.duration = 0, 0
	t.active = false
}

func (t *Vec3Tween) Advance(dt time.Duration) {
	if !t.active {
		return
	}
	if dt > 0 {
		t.elapsed += dt
	}
	if t.elapsed >= t.duration {
		t.finish()
		return
	}

	p := t.ease(float64(t.elapsed) / float64(t.duration))
	next := mgl64.Vec3{
		lerp(t.from[0], t.to[0], p),
		lerp(t.from[1], t.to[1], p),
		lerp(t.from[2], t.to[2], p),
	}
	if !finiteVec(next) {
		// keep the last good value; the tween still completes on time
		return
	}
	t.value = next
}

// Cancel stops the tween where it is.
func (t *Vec3Tween) Cancel() {
	t.active = false
}

func (t *Vec3Tween) finish() {
	if finiteVec(t.to) {
		t.value = t.to
	}
	t.elapsed = t.duration
	t.active = false
}

func (t *Vec3Tween) Value() mgl64.Vec3 { return t.value }

func (t *Vec3Tween) Target() mgl64.Vec3 { return t.to }

func (t *Vec3Tween) Active() bool { return t.active }

// Progress is the eased completion in [0,1]. An idle tween reports 1.
func (t *Vec3Tween) Progress() float64 {
	if !t.active || t.duration <= 0 {
		return 1
	}
	return t.ease(float64(t.elapsed) / float64(t.duration))
}

func finiteVec(v mgl64.Vec3) bool {
	for _, c := range v {
		if math.IsNaN(c) || math.IsInf(c, 0) {
			return false
		}
	}
	return true
}
