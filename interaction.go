package deskview

import (
	"fmt"
	"strings"
)

// Role tags scene geometry that reacts to the pointer.
type Role int

const (
	RoleScreenSurface Role = iota
	RoleToggleSwitch
)

func (r Role) String() string {
	switch r {
	case RoleScreenSurface:
		return "screen"
	case RoleToggleSwitch:
		return "toggle"
	}
	return fmt.Sprintf("Role(%d)", int(r))
}

// InteractiveObject is a non-owning handle on hit-testable geometry. The
// world owns the mesh.
type InteractiveObject struct {
	Name string
	Role Role
	Mesh *Mesh
}

func (o *InteractiveObject) Intersect(ray Ray) (float64, bool) {
	if o == nil || o.Mesh == nil {
		return 0, false
	}
	return o.Mesh.Intersect(ray)
}

type HitResult int

const (
	HitBackground HitResult = iota
	HitToggle
	HitScreenSurface
)

func (h HitResult) String() string {
	switch h {
	case HitBackground:
		return "background"
	case HitToggle:
		return "toggle"
	case HitScreenSurface:
		return "screen"
	}
	return fmt.Sprintf("HitResult(%d)", int(h))
}

// Hit is a resolved pointer position. Object is nil for background hits.
type Hit struct {
	Result   HitResult
	Object   *InteractiveObject
	Distance float64
}

// rolePriority is the order roles are tested in. The first role with any
// intersection wins regardless of distance.
var rolePriority = []struct {
	role   Role
	result HitResult
}{
	{RoleToggleSwitch, HitToggle},
	{RoleScreenSurface, HitScreenSurface},
}

// Resolver turns pointer positions into hits. It keeps no state between
// calls.
type Resolver struct{}

func (Resolver) Resolve(x, y float64, cam *Camera, objects []*InteractiveObject) Hit {
	ray, err := cam.RayFromScreen(x, y)
	if err != nil {
		return Hit{Result: HitBackground}
	}
	return resolveRay(ray, objects)
}

func (Resolver) ResolveNDC(nx, ny float64, cam *Camera, objects []*InteractiveObject) Hit {
	ray, err := cam.RayFromNDC(nx, ny)
	if err != nil {
		return Hit{Result: HitBackground}
	}
	return resolveRay(ray, objects)
}

func resolveRay(ray Ray, objects []*InteractiveObject) Hit {
	for _, p := range rolePriority {
		var best *InteractiveObject
		bestT := 0.0
		for _, o := range objects {
			if o == nil || o.Role != p.role {
				continue
			}
			if t, ok := o.Intersect(ray); ok && (best == nil || t < bestT) {
				best, bestT = o, t
			}
		}
		if best != nil {
			return Hit{Result: p.result, Object: best, Distance: bestT}
		}
	}
	return Hit{Result: HitBackground}
}

// InteractionPolicy decides whether hovering the screen enters the focused
// view or only a click does.
type InteractionPolicy int

const (
	PolicyClick InteractionPolicy = iota
	PolicyHover
)

func (p InteractionPolicy) String() string {
	if p == PolicyHover {
		return "hover"
	}
	return "click"
}

func ParseInteractionPolicy(s string) (InteractionPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "click":
		return PolicyClick, nil
	case "hover":
		return PolicyHover, nil
	}
	return 0, fmt.Errorf("deskview: unknown interaction policy %q", s)
}

// HoverTracker debounces hover hits so an enter fires once when the pointer
// moves onto the screen, not on every move while it stays there.
type HoverTracker struct {
	over bool
}

// Update records the latest hover result and reports whether the pointer
// just moved onto the screen surface.
func (h *HoverTracker) Update(result HitResult) bool {
	over := result == HitScreenSurface
	entered := over && !h.over
	h.over = over
	return entered
}

func (h *HoverTracker) Reset() { h.over = false }
