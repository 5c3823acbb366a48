package deskview

import (
	"bufio"
	"fmt"
	"image/color"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/go-gl/mathgl/mgl64"
)

var defaultPLYColor = color.RGBA{R: 128, G: 128, B: 128, A: 255}

type plyVertex struct {
	pos mgl64.Vec3
	col color.RGBA
}

func LoadPLYFile(fileName, name string, reverse bool) (*Mesh, error) {
	file, err := os.Open(fileName)
	if err != nil {
		return nil, fmt.Errorf("could not open PLY file %s: %w", fileName, err)
	}
	defer file.Close()

	m, err := LoadPLY(file, name, reverse)
	if err != nil {
		return nil, fmt.Errorf("error parsing PLY file %s: %w", fileName, err)
	}
	return m, nil
}

// LoadPLY reads an ASCII PLY model. Colour comes from the face if it has
// one, otherwise the average of its vertex colours, otherwise grey. reverse
// flips the winding of every face.
func LoadPLY(reader io.Reader, name string, reverse bool) (*Mesh, error) {
	scanner := bufio.NewScanner(reader)

	var vertexCount, faceCount int
	var hasVertexColor, hasFaceColor, sawHeaderEnd bool
	var currentElement string

	for !sawHeaderEnd && scanner.Scan() {
		parts := strings.Fields(scanner.Text())
		if len(parts) == 0 {
			continue
		}

		switch parts[0] {
		case "format":
			if len(parts) > 1 && parts[1] != "ascii" {
				return nil, fmt.Errorf("unsupported PLY format %q", parts[1])
			}
		case "element":
			if len(parts) == 3 {
				currentElement = parts[1]
				n, err := strconv.Atoi(parts[2])
				if err != nil || n < 0 {
					return nil, fmt.Errorf("bad element count %q", parts[2])
				}
				switch currentElement {
				case "vertex":
					vertexCount = n
				case "face":
					faceCount = n
				}
			}
		case "property":
			if len(parts) > 2 && (parts[2] == "red" || parts[2] == "diffuse_red") {
				switch currentElement {
				case "vertex":
					hasVertexColor = true
				case "face":
					hasFaceColor = true
				}
			}
		case "end_header":
			sawHeaderEnd = true
		}
	}
	if !sawHeaderEnd {
		return nil, fmt.Errorf("missing end_header")
	}

	vertices := make([]plyVertex, 0, vertexCount)
	for i := 0; i < vertexCount; i++ {
		if !scanner.Scan() {
			return nil, fmt.Errorf("unexpected end of file while reading vertices")
		}
		v, err := parsePLYVertex(strings.Fields(scanner.Text()), hasVertexColor)
		if err != nil {
			return nil, fmt.Errorf("vertex %d: %w", i, err)
		}
		vertices = append(vertices, v)
	}

	m := NewMesh(name)
	for i := 0; i < faceCount; i++ {
		if !scanner.Scan() {
			return nil, fmt.Errorf("unexpected end of file while reading faces")
		}
		f, err := parsePLYFace(strings.Fields(scanner.Text()), vertices, hasVertexColor, hasFaceColor)
		if err != nil {
			return nil, fmt.Errorf("face %d: %w", i, err)
		}
		if reverse {
			for a, b := 0, len(f.Points)-1; a < b; a, b = a+1, b-1 {
				f.Points[a], f.Points[b] = f.Points[b], f.Points[a]
			}
		}
		m.AddFace(f)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading from PLY source: %w", err)
	}
	return m, nil
}

func parsePLYVertex(parts []string, withColor bool) (plyVertex, error) {
	want := 3
	if withColor {
		want = 6
	}
	if len(parts) < want {
		return plyVertex{}, fmt.Errorf("expected %d values, got %d", want, len(parts))
	}

	var v plyVertex
	for i := 0; i < 3; i++ {
		f, err := strconv.ParseFloat(parts[i], 64)
		if err != nil {
			return plyVertex{}, err
		}
		v.pos[i] = f
	}
	v.col = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	if withColor {
		c, err := parseRGB(parts[3:6])
		if err != nil {
			return plyVertex{}, err
		}
		v.col = c
	}
	return v, nil
}

func parsePLYFace(parts []string, vertices []plyVertex, vertexColor, faceColor bool) (*Face, error) {
	if len(parts) == 0 {
		return nil, fmt.Errorf("empty face")
	}
	n, err := strconv.Atoi(parts[0])
	if err != nil || n < 3 {
		return nil, fmt.Errorf("bad vertex count %q", parts[0])
	}
	want := n + 1
	if faceColor {
		want += 3
	}
	if len(parts) != want {
		return nil, fmt.Errorf("expected %d values, got %d", want, len(parts))
	}

	points := make([]mgl64.Vec3, n)
	var r, g, b uint32
	for j := 0; j < n; j++ {
		idx, err := strconv.Atoi(parts[j+1])
		if err != nil || idx < 0 || idx >= len(vertices) {
			return nil, fmt.Errorf("bad vertex index %q", parts[j+1])
		}
		vert := vertices[idx]
		points[j] = vert.pos
		r += uint32(vert.col.R)
		g += uint32(vert.col.G)
		b += uint32(vert.col.B)
	}

	col := defaultPLYColor
	switch {
	case faceColor:
		if col, err = parseRGB(parts[n+1 : n+4]); err != nil {
			return nil, err
		}
	case vertexColor:
		col = color.RGBA{R: uint8(r / uint32(n)), G: uint8(g / uint32(n)), B: uint8(b / uint32(n)), A: 255}
	}
	return NewFace(points, col), nil
}

func parseRGB(parts []string) (color.RGBA, error) {
	var c [3]uint8
	for i, p := range parts {
		v, err := strconv.ParseUint(p, 10, 8)
		if err != nil {
			return color.RGBA{}, err
		}
		c[i] = uint8(v)
	}
	return color.RGBA{R: c[0], G: c[1], B: c[2], A: 255}, nil
}
