package deskview

import (
	"image/color"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const plyTriangleVertexColor = `ply
format ascii 1.0
element vertex 3
property float x
property float y
property float z
property uchar red
property uchar green
property uchar blue
element face 1
property list uchar int vertex_indices
end_header
0 0 0 255 0 0
1 0 0 0 255 0
0 1 0 0 0 255
3 0 1 2
`

const plySquareFaceColor = `ply
format ascii 1.0
element vertex 4
property float x
property float y
property float z
element face 1
property list uchar int vertex_indices
property uchar red
property uchar green
property uchar blue
end_header
-1 -1 0
1 -1 0
1 1 0
-1 1 0
4 0 1 2 3 10 20 30
`

func TestLoadPLYVertexColours(t *testing.T) {
	m, err := LoadPLY(strings.NewReader(plyTriangleVertexColor), "tri", false)
	require.NoError(t, err)
	require.Len(t, m.Faces, 1)

	f := m.Faces[0]
	assert.Equal(t, color.RGBA{R: 85, G: 85, B: 85, A: 255}, f.Col)
	assert.Equal(t, mgl64.Vec3{0, 0, 1}, f.Normal())
}

func TestLoadPLYFaceColourAndReverse(t *testing.T) {
	m, err := LoadPLY(strings.NewReader(plySquareFaceColor), "square", true)
	require.NoError(t, err)
	require.Len(t, m.Faces, 1)

	f := m.Faces[0]
	assert.Equal(t, color.RGBA{R: 10, G: 20, B: 30, A: 255}, f.Col)
	assert.Equal(t, mgl64.Vec3{0, 0, -1}, f.Normal())
}

func TestLoadPLYErrors(t *testing.T) {
	testCases := []struct {
		name, body string
	}{
		{"no header end", "ply\nformat ascii 1.0\nelement vertex 1\n"},
		{"binary", "ply\nformat binary_little_endian 1.0\nend_header\n"},
		{"short vertex", "ply\nelement vertex 1\nelement face 0\nend_header\n1 2\n"},
		{"missing faces", "ply\nelement vertex 3\nelement face 1\nend_header\n0 0 0\n1 0 0\n0 1 0\n"},
		{"index out of range", "ply\nelement vertex 3\nelement face 1\nend_header\n0 0 0\n1 0 0\n0 1 0\n3 0 1 7\n"},
		{"degenerate face", "ply\nelement vertex 3\nelement face 1\nend_header\n0 0 0\n1 0 0\n0 1 0\n2 0 1\n"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := LoadPLY(strings.NewReader(tc.body), "bad", false)
			assert.Error(t, err)
		})
	}
}

func TestMeshTransforms(t *testing.T) {
	m, err := LoadPLY(strings.NewReader(plySquareFaceColor), "square", false)
	require.NoError(t, err)

	m.Translate(mgl64.Vec3{5, 5, 5}).Centre()
	min, max := m.Bounds()
	assert.Equal(t, mgl64.Vec3{-1, -1, 0}, min)
	assert.Equal(t, mgl64.Vec3{1, 1, 0}, max)

	m.Scale(10).Translate(mgl64.Vec3{0, 100, 0})
	min, max = m.Bounds()
	assert.Equal(t, mgl64.Vec3{-10, 90, 0}, min)
	assert.Equal(t, mgl64.Vec3{10, 110, 0}, max)
	assert.Equal(t, mgl64.Vec3{0, 0, 1}, m.Faces[0].Normal())
}

func TestConfigContentLoadsProps(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "plant.ply"), []byte(plySquareFaceColor), 0o644))
	cfgPath := filepath.Join(dir, "deskview.toml")
	require.NoError(t, os.WriteFile(cfgPath, []byte(`
[[props]]
path = "plant.ply"
position = [200, 200, 0]
scale = 20
glow = true
`), 0o644))

	cfg, err := LoadConfig(cfgPath)
	require.NoError(t, err)
	require.Len(t, cfg.Props, 1)

	plain := NewWorld()
	require.NoError(t, BuildRoom(plain))
	w := NewWorld()
	require.NoError(t, cfg.Content()(w))
	require.Len(t, w.Meshes(), len(plain.Meshes())+1)

	prop := w.Meshes()[len(w.Meshes())-1]
	assert.Equal(t, "plant.ply", prop.Name)
	assert.Equal(t, FaceGlow, prop.Faces[0].Kind)
	min, max := prop.Bounds()
	assert.Equal(t, mgl64.Vec3{180, 180, 0}, min)
	assert.Equal(t, mgl64.Vec3{220, 220, 0}, max)
}

func TestConfigContentMissingProp(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Props = []PropConfig{{Path: filepath.Join(t.TempDir(), "nope.ply")}}
	require.NoError(t, cfg.Validate())
	assert.ErrorIs(t, cfg.Content()(NewWorld()), os.ErrNotExist)
}
