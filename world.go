package deskview

import (
	"image/color"
	"sort"

	"github.com/go-gl/mathgl/mgl64"
)

// PolygonBatcher receives projected screen polygons in draw order.
type PolygonBatcher interface {
	AddPolygon(xp, yp []float32, clr color.RGBA)
	AddPolygonAndOutline(xp, yp []float32, fillClr, strokeClr color.RGBA, strokeWidth float32)
}

var outlineColor = color.RGBA{R: 50, G: 50, B: 50, A: 25}

// World owns the scene content: every mesh that is drawn and the subset of
// them registered for hit testing.
type World struct {
	meshes      []*Mesh
	interactive []*InteractiveObject
}

func NewWorld() *World {
	return &World{}
}

func (w *World) Add(m *Mesh) {
	w.meshes = append(w.meshes, m)
}

// AddInteractive adds m to the scene and registers it for hit testing.
func (w *World) AddInteractive(name string, role Role, m *Mesh) *InteractiveObject {
	w.Add(m)
	obj := &InteractiveObject{Name: name, Role: role, Mesh: m}
	w.interactive = append(w.interactive, obj)
	return obj
}

func (w *World) Meshes() []*Mesh { return w.meshes }

func (w *World) Interactive() []*InteractiveObject { return w.interactive }

// Release drops every mesh and registration.
func (w *World) Release() {
	w.meshes = nil
	w.interactive = nil
}

type paintItem struct {
	xs, ys   []float32
	col      color.RGBA
	distance float64
	outline  bool
}

// Paint projects the world through the frame camera and hands polygons to
// the batcher far to near.
func (w *World) Paint(b PolygonBatcher, f *Frame) {
	cam := f.Camera
	width, height := cam.Viewport()
	if width <= 0 || height <= 0 {
		return
	}
	view := cam.View()
	eye := cam.Position
	near := cam.Near
	if near < 1 {
		near = 1
	}

	items := make([]paintItem, 0, 64)
	for _, m := range w.meshes {
		for _, face := range m.Faces {
			if !face.FacesCamera(eye) {
				continue
			}

			viewPts := make([]mgl64.Vec3, len(face.Points))
			for i, p := range face.Points {
				viewPts[i] = cam.ToViewSpace(view, p)
			}
			viewPts = clipPolygonAgainstNearPlane(viewPts, near)
			if len(viewPts) < 3 {
				continue
			}

			screenPts := make([]Point, len(viewPts))
			for i, p := range viewPts {
				x, y := cam.ViewToScreen(p)
				screenPts[i] = Point{X: x, Y: y}
			}
			screenPts = clipPolygon(screenPts, float32(width), float32(height))
			if len(screenPts) < 3 {
				continue
			}

			item := paintItem{
				xs:       make([]float32, len(screenPts)),
				ys:       make([]float32, len(screenPts)),
				distance: face.DistanceTo(eye),
			}
			for i, p := range screenPts {
				item.xs[i], item.ys[i] = p.X, p.Y
			}

			if face.Kind == FaceSolid {
				n := view.Mul4x1(face.Normal().Vec4(0))
				viewNormal := mgl64.Vec3{n[0], n[1], -n[2]}
				item.col = shadeColor(cam.ToViewSpace(view, face.MidPoint()), viewNormal, face.Col, f.Lights)
				item.outline = true
			} else {
				item.col = emissiveColor(face.Kind, face.Col, f.Glow, f.Indicator)
			}
			items = append(items, item)
		}
	}

	sort.SliceStable(items, func(i, j int) bool {
		return items[i].distance > items[j].distance
	})

	for _, it := range items {
		if it.outline {
			b.AddPolygonAndOutline(it.xs, it.ys, it.col, outlineColor, 1.0)
		} else {
			b.AddPolygon(it.xs, it.ys, it.col)
		}
	}
}
