package deskview

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSession(t *testing.T, h *sceneHarness, cfg Config) *Session {
	t.Helper()
	s, err := NewSession(cfg, h.deps(), h.callbacks())
	require.NoError(t, err)
	require.NoError(t, s.Start())
	return s
}

// advance runs the navigator and the frame loop together, the way a host
// does every tick.
func advance(s *Session, h *sceneHarness, d time.Duration) {
	for elapsed := time.Duration(0); elapsed < d; elapsed += 16 * time.Millisecond {
		s.Advance(16 * time.Millisecond)
		h.step(1)
	}
}

func TestSessionBeginAutoFocuses(t *testing.T) {
	h := newSceneHarness()
	s := newTestSession(t, h, DefaultConfig())
	assert.Equal(t, ModeIdle, s.Mode())

	s.Begin()
	assert.Equal(t, ModeDesk, s.Mode())
	assert.Equal(t, ModeDesk, s.Scene().Mode())

	advance(s, h, 1900*time.Millisecond)
	assert.Equal(t, ModeDesk, s.Mode())
	advance(s, h, 200*time.Millisecond)
	assert.Equal(t, ModeScreen, s.Mode())
	assert.True(t, s.DesktopVisible())

	advance(s, h, time.Second)
	assert.Equal(t, DefaultKeyframes()[ModeScreen].Position, s.Scene().Camera().Position)
}

func TestSessionBackgroundClickWalksBackStack(t *testing.T) {
	h := newSceneHarness()
	cfg := DefaultConfig()
	cfg.InitialMode = "screen"
	s := newTestSession(t, h, cfg)
	h.step(1)

	want := []ViewpointMode{ModeDesk, ModeIdle, ModeDesk}
	for _, m := range want {
		h.bus.PointerClicked(1, 1)
		assert.Equal(t, m, s.Mode())
		assert.Equal(t, m, s.Scene().Engine().Target())
	}
	assert.Equal(t, 3, h.background)
}

func TestSessionScreenClickFocuses(t *testing.T) {
	h := newSceneHarness()
	s := newTestSession(t, h, DefaultConfig())
	h.step(1)

	x, y, ok := s.Scene().Camera().ProjectToScreen(mgl64.Vec3{0, 268, -43})
	require.True(t, ok)
	h.bus.PointerClicked(float64(x), float64(y))
	assert.Equal(t, ModeScreen, s.Mode())
	assert.Equal(t, 1, h.focus)
}

func TestSessionBackCancelsPendingFocus(t *testing.T) {
	h := newSceneHarness()
	s := newTestSession(t, h, DefaultConfig())
	s.Begin()
	advance(s, h, 500*time.Millisecond)

	h.bus.PointerClicked(1, 1)
	assert.Equal(t, ModeIdle, s.Mode())
	advance(s, h, 3*time.Second)
	assert.Equal(t, ModeIdle, s.Mode())
}

func TestSessionReloadKeepsModeAndLights(t *testing.T) {
	h := newSceneHarness()
	s := newTestSession(t, h, DefaultConfig())
	s.Begin()
	advance(s, h, 100*time.Millisecond)
	first := s.Scene()

	x, y, ok := first.Camera().ProjectToScreen(mgl64.Vec3{-195, 180, 68})
	require.True(t, ok)
	h.bus.PointerClicked(float64(x), float64(y))
	require.False(t, first.Lighting())

	cfg := DefaultConfig()
	cfg.Viewpoints.Desk.Parallax = 2
	require.NoError(t, s.Reload(cfg))

	assert.Equal(t, StateDisposed, first.State())
	assert.NotSame(t, first, s.Scene())
	assert.Equal(t, StateRunning, s.Scene().State())
	assert.NotEqual(t, first.MountID(), s.Scene().MountID())
	assert.Equal(t, ModeDesk, s.Scene().Mode())
	assert.False(t, s.Scene().Lighting())
	assert.Equal(t, 2, h.ready)
	assert.Equal(t, 1, h.bus.Len())
}

func TestSessionReloadRejectsInvalidConfig(t *testing.T) {
	h := newSceneHarness()
	s := newTestSession(t, h, DefaultConfig())
	first := s.Scene()

	cfg := DefaultConfig()
	cfg.Camera.Fov = 0
	assert.ErrorIs(t, s.Reload(cfg), ErrInvalidConfig)
	assert.Same(t, first, s.Scene())
	assert.Equal(t, StateRunning, first.State())
}

func TestSessionReloadKeepsSceneWhenContentFails(t *testing.T) {
	h := newSceneHarness()
	s := newTestSession(t, h, DefaultConfig())
	first := s.Scene()
	h.step(1)

	cfg := DefaultConfig()
	cfg.Props = []PropConfig{{Path: filepath.Join(t.TempDir(), "missing.ply")}}
	err := s.Reload(cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
	assert.Equal(t, 1, h.failures)

	assert.Same(t, first, s.Scene())
	assert.Equal(t, StateRunning, first.State())
	assert.Equal(t, 1, h.bus.Len())

	before := h.surface.renders
	h.step(5)
	assert.Equal(t, before+5, h.surface.renders)
}

func TestSessionReloadKeepsSceneWhenSurfaceFails(t *testing.T) {
	h := newSceneHarness()
	s := newTestSession(t, h, DefaultConfig())
	first := s.Scene()

	s.deps.Surfaces = func(int, int) (Surface, error) { return nil, errors.New("no gpu") }
	err := s.Reload(DefaultConfig())
	assert.ErrorIs(t, err, ErrSurfaceUnavailable)
	assert.Same(t, first, s.Scene())
	assert.Equal(t, StateRunning, first.State())
}

func TestSessionReloadUsesNewFocusDelay(t *testing.T) {
	h := newSceneHarness()
	s := newTestSession(t, h, DefaultConfig())

	cfg := DefaultConfig()
	cfg.StartFocusDelay = 0.5
	require.NoError(t, s.Reload(cfg))

	s.Begin()
	advance(s, h, 400*time.Millisecond)
	assert.Equal(t, ModeDesk, s.Mode())
	advance(s, h, 200*time.Millisecond)
	assert.Equal(t, ModeScreen, s.Mode())
}
