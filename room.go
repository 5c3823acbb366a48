package deskview

import (
	"image/color"

	"github.com/go-gl/mathgl/mgl64"
)

// ContentBuilder fills a freshly created world with scene content. It runs
// once per mount.
type ContentBuilder func(w *World) error

const (
	ScreenObjectName = "monitor-screen"
	SwitchObjectName = "lamp-switch"
)

var (
	floorColor   = color.RGBA{R: 0x4a, G: 0x48, B: 0x58, A: 0xff}
	wallColor    = color.RGBA{R: 0x44, G: 0x44, B: 0x5e, A: 0xff}
	woodColor    = color.RGBA{R: 0x8a, G: 0x5a, B: 0x3e, A: 0xff}
	metalColor   = color.RGBA{R: 0x5a, G: 0x5a, B: 0x66, A: 0xff}
	chromeColor  = color.RGBA{R: 0xc8, G: 0xc8, B: 0xc8, A: 0xff}
	plasticColor = color.RGBA{R: 0x3e, G: 0x3e, B: 0x3e, A: 0xff}
	screenColor  = color.RGBA{R: 0x1d, G: 0x6e, B: 0x6f, A: 0xff}
	ledColor     = color.RGBA{R: 0x00, G: 0xff, B: 0x44, A: 0xff}
	switchColor  = color.RGBA{R: 0xe0, G: 0x9a, B: 0x40, A: 0xff}
)

// BuildRoom is the default content: a desk with a monitor whose screen is
// the focus target and a desk lamp whose base switch toggles the lights.
func BuildRoom(w *World) error {
	w.Add(NewQuadMesh("floor", mgl64.Vec3{0, 0, 0}, mgl64.Vec3{1000, 0, 0}, mgl64.Vec3{0, 0, -1000}, floorColor))
	w.Add(NewQuadMesh("back-wall", mgl64.Vec3{0, 500, -350}, mgl64.Vec3{1000, 0, 0}, mgl64.Vec3{0, 500, 0}, wallColor))
	w.Add(NewQuadMesh("left-wall", mgl64.Vec3{-600, 500, 0}, mgl64.Vec3{0, 0, -1000}, mgl64.Vec3{0, 500, 0}, wallColor))

	// desk
	w.Add(NewBoxMesh("desk-top", mgl64.Vec3{0, 162, -10}, mgl64.Vec3{500, 16, 260}, woodColor))
	for _, x := range []float64{-235, 235} {
		w.Add(NewBoxMesh("desk-side", mgl64.Vec3{x, 77, -10}, mgl64.Vec3{16, 154, 250}, woodColor))
	}
	w.Add(NewBoxMesh("drawer", mgl64.Vec3{170, 62, -10}, mgl64.Vec3{110, 120, 240}, woodColor))

	// monitor
	w.Add(NewBoxMesh("monitor-back", mgl64.Vec3{0, 268, -55}, mgl64.Vec3{200, 124, 20}, metalColor))
	w.Add(NewBoxMesh("monitor-neck", mgl64.Vec3{0, 188, -55}, mgl64.Vec3{16, 36, 10}, metalColor))
	w.Add(NewBoxMesh("monitor-base", mgl64.Vec3{0, 171, -55}, mgl64.Vec3{90, 4, 60}, metalColor))
	screen := NewQuadMesh(ScreenObjectName, mgl64.Vec3{0, 268, -43}, mgl64.Vec3{88, 0, 0}, mgl64.Vec3{0, 50, 0}, screenColor)
	w.AddInteractive(ScreenObjectName, RoleScreenSurface, screen.SetKind(FaceGlow))
	w.Add(NewBoxMesh("power-led", mgl64.Vec3{94, 210, -44}, mgl64.Vec3{4, 4, 4}, ledColor).SetKind(FaceIndicator))

	// keyboard and mouse
	w.Add(NewBoxMesh("keyboard", mgl64.Vec3{-10, 174, 50}, mgl64.Vec3{150, 8, 50}, plasticColor))
	w.Add(NewBoxMesh("mouse", mgl64.Vec3{120, 175, 55}, mgl64.Vec3{14, 8, 22}, plasticColor))

	// lamp
	w.Add(NewBoxMesh("lamp-base", mgl64.Vec3{-210, 173, 50}, mgl64.Vec3{40, 6, 40}, chromeColor))
	w.Add(NewBoxMesh("lamp-arm", mgl64.Vec3{-210, 270, 40}, mgl64.Vec3{5, 190, 5}, chromeColor))
	w.Add(NewBoxMesh("lamp-shade", mgl64.Vec3{-195, 372, 40}, mgl64.Vec3{50, 24, 50}, chromeColor))
	w.AddInteractive(SwitchObjectName, RoleToggleSwitch,
		NewBoxMesh(SwitchObjectName, mgl64.Vec3{-195, 180, 68}, mgl64.Vec3{12, 8, 10}, switchColor))

	return nil
}
