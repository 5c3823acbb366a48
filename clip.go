package deskview

import "github.com/go-gl/mathgl/mgl64"

// Point is a screen-space vertex.
type Point struct {
	X, Y float32
}

// clipPolygonAgainstNearPlane keeps the part of a forward-z view-space
// polygon at depth >= near.
func clipPolygonAgainstNearPlane(points []mgl64.Vec3, near float64) []mgl64.Vec3 {
	out := make([]mgl64.Vec3, 0, len(points)+2)
	n := len(points)
	for i := 0; i < n; i++ {
		cur := points[i]
		prev := points[(i+n-1)%n]
		curIn := cur[2] >= near
		prevIn := prev[2] >= near

		if curIn {
			if !prevIn {
				out = append(out, intersectNearPlane(prev, cur, near))
			}
			out = append(out, cur)
		} else if prevIn {
			out = append(out, intersectNearPlane(prev, cur, near))
		}
	}
	return out
}

// intersectNearPlane returns where p1->p2 crosses depth near. A segment
// parallel to the plane returns p1.
func intersectNearPlane(p1, p2 mgl64.Vec3, near float64) mgl64.Vec3 {
	dz := p2[2] - p1[2]
	if dz == 0 {
		return p1
	}
	t := (near - p1[2]) / dz
	return mgl64.Vec3{
		p1[0] + (p2[0]-p1[0])*t,
		p1[1] + (p2[1]-p1[1])*t,
		near,
	}
}

type clipEdge int

const (
	edgeLeft clipEdge = iota
	edgeRight
	edgeTop
	edgeBottom
)

// clipPolygon clips a screen polygon to the rectangle [0, width+1] x
// [0, height+1]. The extra pixel hides seams along the right and bottom.
func clipPolygon(points []Point, width, height float32) []Point {
	out := points
	for _, e := range []clipEdge{edgeLeft, edgeRight, edgeTop, edgeBottom} {
		if len(out) == 0 {
			break
		}
		out = clipAgainstEdge(out, e, width+1, height+1)
	}
	if out == nil {
		out = []Point{}
	}
	return out
}

func clipAgainstEdge(points []Point, e clipEdge, maxX, maxY float32) []Point {
	inside := func(p Point) bool {
		switch e {
		case edgeLeft:
			return p.X >= 0
		case edgeRight:
			return p.X <= maxX
		case edgeTop:
			return p.Y >= 0
		default:
			return p.Y <= maxY
		}
	}
	cross := func(a, b Point) Point {
		switch e {
		case edgeLeft, edgeRight:
			x := float32(0)
			if e == edgeRight {
				x = maxX
			}
			t := (x - a.X) / (b.X - a.X)
			return Point{X: x, Y: a.Y + (b.Y-a.Y)*t}
		default:
			y := float32(0)
			if e == edgeBottom {
				y = maxY
			}
			t := (y - a.Y) / (b.Y - a.Y)
			return Point{X: a.X + (b.X-a.X)*t, Y: y}
		}
	}

	out := make([]Point, 0, len(points)+2)
	n := len(points)
	for i := 0; i < n; i++ {
		cur := points[i]
		prev := points[(i+n-1)%n]
		if inside(cur) {
			if !inside(prev) {
				out = append(out, cross(prev, cur))
			}
			out = append(out, cur)
		} else if inside(prev) {
			out = append(out, cross(prev, cur))
		}
	}
	return out
}
