package deskview

import (
	"image/color"

	"github.com/go-gl/mathgl/mgl64"
)

// Mesh is a named group of world-space faces.
type Mesh struct {
	Name  string
	Faces []*Face
}

func NewMesh(name string) *Mesh {
	return &Mesh{Name: name}
}

func (m *Mesh) AddFace(f *Face) {
	m.Faces = append(m.Faces, f)
}

// SetKind marks every face of the mesh, e.g. to make it self-lit.
func (m *Mesh) SetKind(kind FaceKind) *Mesh {
	for _, f := range m.Faces {
		f.Kind = kind
	}
	return m
}

// NewBoxMesh builds an axis-aligned box with outward facing normals.
func NewBoxMesh(name string, center, size mgl64.Vec3, col color.RGBA) *Mesh {
	h := size.Mul(0.5)
	x0, y0, z0 := center[0]-h[0], center[1]-h[1], center[2]-h[2]
	x1, y1, z1 := center[0]+h[0], center[1]+h[1], center[2]+h[2]

	quads := [][4]mgl64.Vec3{
		{{x0, y0, z1}, {x1, y0, z1}, {x1, y1, z1}, {x0, y1, z1}}, // front +z
		{{x1, y0, z0}, {x0, y0, z0}, {x0, y1, z0}, {x1, y1, z0}}, // back -z
		{{x1, y0, z1}, {x1, y0, z0}, {x1, y1, z0}, {x1, y1, z1}}, // right +x
		{{x0, y0, z0}, {x0, y0, z1}, {x0, y1, z1}, {x0, y1, z0}}, // left -x
		{{x0, y1, z1}, {x1, y1, z1}, {x1, y1, z0}, {x0, y1, z0}}, // top +y
		{{x0, y0, z0}, {x1, y0, z0}, {x1, y0, z1}, {x0, y0, z1}}, // bottom -y
	}

	m := NewMesh(name)
	for _, q := range quads {
		m.AddFace(NewFace([]mgl64.Vec3{q[0], q[1], q[2], q[3]}, col))
	}
	return m
}

// NewQuadMesh builds a single rectangle. right and up are half extents; the
// face normal is right x up.
func NewQuadMesh(name string, center, right, up mgl64.Vec3, col color.RGBA) *Mesh {
	m := NewMesh(name)
	m.AddFace(NewFace([]mgl64.Vec3{
		center.Sub(right).Sub(up),
		center.Add(right).Sub(up),
		center.Add(right).Add(up),
		center.Sub(right).Add(up),
	}, col))
	return m
}

// Intersect returns the nearest hit of ray on any face of the mesh.
func (m *Mesh) Intersect(ray Ray) (float64, bool) {
	best, hit := 0.0, false
	for _, f := range m.Faces {
		if t, ok := ray.IntersectPolygon(f.Points); ok && (!hit || t < best) {
			best, hit = t, true
		}
	}
	return best, hit
}

// Bounds is the axis-aligned bounding box of every face point.
func (m *Mesh) Bounds() (min, max mgl64.Vec3) {
	first := true
	for _, f := range m.Faces {
		for _, p := range f.Points {
			if first {
				min, max = p, p
				first = false
				continue
			}
			for i := 0; i < 3; i++ {
				if p[i] < min[i] {
					min[i] = p[i]
				}
				if p[i] > max[i] {
					max[i] = p[i]
				}
			}
		}
	}
	return min, max
}

// Centre moves the mesh so its bounding box is centred on the origin.
func (m *Mesh) Centre() *Mesh {
	min, max := m.Bounds()
	return m.Translate(min.Add(max).Mul(-0.5))
}

func (m *Mesh) Translate(v mgl64.Vec3) *Mesh {
	for _, f := range m.Faces {
		for i := range f.Points {
			f.Points[i] = f.Points[i].Add(v)
		}
	}
	return m
}

// Scale scales every point about the origin. Normals survive any positive
// scale factor.
func (m *Mesh) Scale(s float64) *Mesh {
	for _, f := range m.Faces {
		for i := range f.Points {
			f.Points[i] = f.Points[i].Mul(s)
		}
		f.normal = nil
	}
	return m
}
