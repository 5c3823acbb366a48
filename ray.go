package deskview

import (
	"errors"
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

const epsilon = 1e-9

var (
	ErrEmptyViewport = errors.New("deskview: viewport has no area")
	ErrDegenerateRay = errors.New("deskview: camera produced a degenerate ray")
)

type Ray struct {
	Origin mgl64.Vec3
	Dir    mgl64.Vec3
}

func (r Ray) At(t float64) mgl64.Vec3 {
	return r.Origin.Add(r.Dir.Mul(t))
}

// IntersectPolygon tests the ray against a planar convex polygon and returns
// the distance along the ray to the hit point.
func (r Ray) IntersectPolygon(points []mgl64.Vec3) (float64, bool) {
	if len(points) < 3 {
		return 0, false
	}

	p0 := points[0]
	normal := points[1].Sub(p0).Cross(points[2].Sub(p0))
	if normal.Len() < epsilon {
		return 0, false
	}

	denom := normal.Dot(r.Dir)
	if math.Abs(denom) < epsilon {
		// parallel to the plane
		return 0, false
	}

	t := -normal.Dot(r.Origin.Sub(p0)) / denom
	if t < 0 {
		return 0, false
	}

	if !pointInPolygon(r.At(t), points, normal) {
		return 0, false
	}
	return t, true
}

// pointInPolygon projects onto the axis plane the polygon is most facing
// and runs a crossing-number test there.
func pointInPolygon(point mgl64.Vec3, polygon []mgl64.Vec3, normal mgl64.Vec3) bool {
	ax, ay, az := math.Abs(normal[0]), math.Abs(normal[1]), math.Abs(normal[2])

	u, v := 0, 1
	if ax >= ay && ax >= az {
		u, v = 1, 2
	} else if ay >= ax && ay >= az {
		u, v = 0, 2
	}

	px, py := point[u], point[v]
	inside := false
	n := len(polygon)
	for i := 0; i < n; i++ {
		a := polygon[i]
		b := polygon[(i+1)%n]
		if (a[v] > py) != (b[v] > py) {
			xCross := (b[u]-a[u])*(py-a[v])/(b[v]-a[v]) + a[u]
			if px < xCross {
				inside = !inside
			}
		}
	}
	return inside
}
