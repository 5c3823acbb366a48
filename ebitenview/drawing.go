package ebitenview

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var (
	whiteImage = ebiten.NewImage(3, 3)
	whiteSub   *ebiten.Image
)

func init() {
	whiteImage.Fill(color.White)
	whiteSub = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
}

// Batcher draws painter-ordered polygons straight onto an image.
type Batcher struct {
	dst *ebiten.Image

	vertices []ebiten.Vertex
	indices  []uint16
}

func NewBatcher(dst *ebiten.Image) *Batcher {
	return &Batcher{dst: dst}
}

func (b *Batcher) AddPolygon(xp, yp []float32, clr color.RGBA) {
	b.fillConvexPolygon(xp, yp, clr)
}

func (b *Batcher) AddPolygonAndOutline(xp, yp []float32, fillClr, strokeClr color.RGBA, strokeWidth float32) {
	b.fillConvexPolygon(xp, yp, fillClr)
	b.strokePolygon(xp, yp, strokeWidth, strokeClr)
}

// fillConvexPolygon fans the polygon out from its first vertex.
func (b *Batcher) fillConvexPolygon(xp, yp []float32, clr color.RGBA) {
	if len(xp) < 3 {
		return
	}

	b.indices = b.indices[:0]
	for i := 2; i < len(xp); i++ {
		b.indices = append(b.indices, 0, uint16(i-1), uint16(i))
	}

	b.vertices = b.vertices[:0]
	for i := range xp {
		b.vertices = append(b.vertices, ebiten.Vertex{
			DstX: xp[i],
			DstY: yp[i],
			SrcX: 1,
			SrcY: 1,
		})
	}
	tint(b.vertices, clr)

	b.dst.DrawTriangles(b.vertices, b.indices, whiteSub, &ebiten.DrawTrianglesOptions{AntiAlias: true})
}

func (b *Batcher) strokePolygon(xp, yp []float32, strokeWidth float32, clr color.RGBA) {
	if len(xp) < 2 {
		return
	}

	var path vector.Path
	path.MoveTo(xp[0], yp[0])
	for i := 1; i < len(xp); i++ {
		path.LineTo(xp[i], yp[i])
	}
	path.Close()

	vs, is := path.AppendVerticesAndIndicesForStroke(b.vertices[:0], b.indices[:0], &vector.StrokeOptions{
		Width: strokeWidth,
	})
	for i := range vs {
		vs[i].SrcX = 1
		vs[i].SrcY = 1
	}
	tint(vs, clr)
	b.vertices, b.indices = vs, is

	b.dst.DrawTriangles(vs, is, whiteSub, &ebiten.DrawTrianglesOptions{AntiAlias: true})
}

func tint(vs []ebiten.Vertex, clr color.RGBA) {
	cr := float32(clr.R) / 255
	cg := float32(clr.G) / 255
	cb := float32(clr.B) / 255
	ca := float32(clr.A) / 255
	for i := range vs {
		vs[i].ColorR = cr
		vs[i].ColorG = cg
		vs[i].ColorB = cb
		vs[i].ColorA = ca
	}
}
