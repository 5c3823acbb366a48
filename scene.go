package deskview

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
)

type LifecycleState int

const (
	StateUninitialized LifecycleState = iota
	StateRunning
	StateDisposed
)

func (s LifecycleState) String() string {
	switch s {
	case StateUninitialized:
		return "uninitialized"
	case StateRunning:
		return "running"
	case StateDisposed:
		return "disposed"
	}
	return fmt.Sprintf("LifecycleState(%d)", int(s))
}

var (
	ErrAlreadyStarted = errors.New("deskview: scene already started")
	ErrDisposed       = errors.New("deskview: scene disposed")
)

// Callbacks are the scene's outputs to the embedding application. Any of
// them may be nil. They run on the frame thread.
type Callbacks struct {
	OnResourcesReady        func()
	OnFailure               func(err error)
	OnBackgroundInteraction func()
	OnFocusInteraction      func()
	OnLightingChanged       func(on bool)
}

// Dependencies are the platform services a scene runs on.
type Dependencies struct {
	Scheduler FrameScheduler
	Input     InputSource
	Surfaces  SurfaceFactory
	Content   ContentBuilder
	Logger    *log.Logger
}

// Scene is the render and lifecycle loop. It goes Uninitialized -> Running
// -> Disposed exactly once. All methods must be called from the frame thread.
type Scene struct {
	cfg       Config
	deps      Dependencies
	callbacks Callbacks
	logger    *log.Logger

	registry *Registry
	policy   InteractionPolicy
	mode     ViewpointMode

	state   LifecycleState
	mountID string

	// valid while running
	engine   *TransitionEngine
	camera   *Camera
	world    *World
	surface  Surface
	detach   func()
	frameID  FrameID
	lighting *LightingState
	parallax *Parallax
	effects  Effects
	hover    HoverTracker
	resolver Resolver
	pointer  PointerState

	// last pointer position in pixels, for hover while the camera moves
	pointerX, pointerY float64
	hasPointer         bool

	lastFrame time.Duration
	frames    uint64
	started   bool
}

// NewScene validates the configuration. A viewpoint without a keyframe is
// reported here, never at runtime.
func NewScene(cfg Config, deps Dependencies, callbacks Callbacks) (*Scene, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	registry, err := NewRegistry(cfg.Keyframes())
	if err != nil {
		return nil, err
	}
	if deps.Scheduler == nil || deps.Input == nil || deps.Surfaces == nil {
		return nil, fmt.Errorf("%w: scheduler, input and surface factory are required", ErrInvalidConfig)
	}
	if deps.Content == nil {
		deps.Content = cfg.Content()
	}
	logger := deps.Logger
	if logger == nil {
		logger = log.Default()
	}

	return &Scene{
		cfg:       cfg,
		deps:      deps,
		callbacks: callbacks,
		logger:    logger,
		registry:  registry,
		policy:    cfg.Policy(),
		mode:      cfg.Initial(),
	}, nil
}

func (s *Scene) State() LifecycleState { return s.state }

// MountID identifies the current mount in log lines. It is empty before Start.
func (s *Scene) MountID() string { return s.mountID }

func (s *Scene) Mode() ViewpointMode { return s.mode }

func (s *Scene) Registry() *Registry { return s.registry }

// Start allocates the surface and scene content, attaches input and
// schedules the first frame. OnResourcesReady fires once it returns nil.
func (s *Scene) Start() error {
	switch s.state {
	case StateRunning:
		return ErrAlreadyStarted
	case StateDisposed:
		return ErrDisposed
	}
	s.mountID = uuid.NewString()

	surface, err := s.deps.Surfaces(s.cfg.Width, s.cfg.Height)
	if err == nil && surface == nil {
		err = errors.New("factory returned no surface")
	}
	if err != nil {
		err = fmt.Errorf("%w: %w", ErrSurfaceUnavailable, err)
		s.logger.Printf("scene %s: %v", s.mountID, err)
		if s.callbacks.OnFailure != nil {
			s.callbacks.OnFailure(err)
		}
		return err
	}

	world := NewWorld()
	if err := s.deps.Content(world); err != nil {
		surface.Release()
		err = fmt.Errorf("building scene content: %w", err)
		s.logger.Printf("scene %s: %v", s.mountID, err)
		if s.callbacks.OnFailure != nil {
			s.callbacks.OnFailure(err)
		}
		return err
	}

	s.surface = surface
	s.world = world
	s.camera = NewCamera(s.cfg.Camera.Fov, s.cfg.Camera.Near, s.cfg.Camera.Far, s.cfg.Width, s.cfg.Height)
	s.engine = NewTransitionEngine(s.registry, s.mode, s.cfg.EasingFunc())
	s.camera.LookAt(s.engine.CurrentPosition(), s.engine.CurrentLookAt())
	s.lighting = NewLightingState(s.cfg.LightsOn)
	s.parallax = NewParallax(s.cfg.Parallax.Smoothing, s.cfg.Parallax.VerticalScale)
	s.effects = Effects{}
	s.hover.Reset()
	s.hasPointer = false
	s.frames, s.started = 0, false

	s.state = StateRunning
	s.detach = s.deps.Input.Attach(s)
	s.frameID = s.deps.Scheduler.RequestFrame(s.frame)
	s.logger.Printf("scene %s: started (%dx%d, %s)", s.mountID, s.cfg.Width, s.cfg.Height, s.mode)

	if s.callbacks.OnResourcesReady != nil {
		s.callbacks.OnResourcesReady()
	}
	return nil
}

// Stop cancels the frame loop, detaches input and releases the surface and
// scene content. It is safe to call any number of times, before or after
// Start; only the first call does anything.
func (s *Scene) Stop() {
	if s.state == StateDisposed {
		return
	}
	wasRunning := s.state == StateRunning
	s.state = StateDisposed
	if !wasRunning {
		return
	}

	s.deps.Scheduler.CancelFrame(s.frameID)
	if s.detach != nil {
		s.detach()
		s.detach = nil
	}
	s.surface.Release()
	s.surface = nil
	s.world.Release()
	s.world = nil
	s.logger.Printf("scene %s: disposed after %d frames", s.mountID, s.frames)
}

// SetViewpointMode starts a camera transition towards mode. Before Start it
// only sets the initial viewpoint.
func (s *Scene) SetViewpointMode(mode ViewpointMode) {
	if !mode.Valid() {
		s.logger.Printf("scene %s: ignoring invalid viewpoint %d", s.mountID, int(mode))
		return
	}
	if s.state == StateDisposed {
		return
	}
	s.mode = mode
	if s.state == StateRunning {
		s.engine.BeginTransition(mode)
	}
}

// Lighting reports whether the lights are on.
func (s *Scene) Lighting() bool {
	if s.lighting == nil {
		return s.cfg.LightsOn
	}
	return s.lighting.On()
}

// Camera is the live camera, nil unless running.
func (s *Scene) Camera() *Camera {
	if s.state != StateRunning {
		return nil
	}
	return s.camera
}

// Engine is the transition engine, nil unless running.
func (s *Scene) Engine() *TransitionEngine {
	if s.state != StateRunning {
		return nil
	}
	return s.engine
}

func (s *Scene) PointerMoved(x, y float64) {
	if s.state != StateRunning {
		return
	}
	w, h := s.camera.Viewport()
	s.pointer = NormalizePointer(x, y, w, h)
	s.pointerX, s.pointerY, s.hasPointer = x, y, true
	s.updateHover()
}

// updateHover resolves the pointer against the current camera and fires a
// focus interaction when it moves onto the screen.
func (s *Scene) updateHover() {
	if s.policy != PolicyHover || !s.hasPointer {
		return
	}
	hit := s.resolver.Resolve(s.pointerX, s.pointerY, s.camera, s.world.Interactive())
	if s.hover.Update(hit.Result) && s.mode != FocusedMode {
		s.emitFocus()
	}
}

func (s *Scene) PointerClicked(x, y float64) {
	if s.state != StateRunning {
		return
	}
	hit := s.resolver.Resolve(x, y, s.camera, s.world.Interactive())
	switch hit.Result {
	case HitToggle:
		on := s.lighting.Toggle()
		s.logger.Printf("scene %s: lights %s", s.mountID, onOff(on))
		if s.callbacks.OnLightingChanged != nil {
			s.callbacks.OnLightingChanged(on)
		}
	case HitScreenSurface:
		s.emitFocus()
	default:
		if s.callbacks.OnBackgroundInteraction != nil {
			s.callbacks.OnBackgroundInteraction()
		}
	}
}

func (s *Scene) Resized(width, height int) {
	if s.state != StateRunning || width <= 0 || height <= 0 {
		return
	}
	s.camera.SetViewport(width, height)
	s.surface.Resize(width, height)
}

func (s *Scene) emitFocus() {
	if s.callbacks.OnFocusInteraction != nil {
		s.callbacks.OnFocusInteraction()
	}
}

func (s *Scene) frame(now time.Duration) {
	if s.state != StateRunning {
		return
	}
	s.frameID = s.deps.Scheduler.RequestFrame(s.frame)

	defer func() {
		if r := recover(); r != nil {
			s.logger.Printf("scene %s: frame %d recovered from panic: %v", s.mountID, s.frames, r)
		}
	}()

	var dt time.Duration
	if s.started {
		dt = now - s.lastFrame
	}
	s.lastFrame, s.started = now, true

	moving := s.engine.InFlight()
	s.engine.Tick(dt)
	kf := s.registry.Lookup(s.mode)
	s.parallax.Update(s.pointer, kf.Parallax, s.mode == FocusedMode, s.engine.Progress())
	s.effects.Advance(dt)

	pos := s.engine.CurrentPosition().Add(s.parallax.Offset())
	s.camera.LookAt(pos, s.engine.CurrentLookAt())
	if moving {
		s.updateHover()
	}

	s.frames++
	s.surface.Render(&Frame{
		Number:    s.frames,
		Elapsed:   s.effects.Clock(),
		Mode:      s.mode,
		Camera:    s.camera,
		World:     s.world,
		Lights:    ApplyLighting(s.lighting.On()),
		Glow:      s.effects.Glow(),
		Indicator: s.effects.Indicator(),
	})
}

func onOff(on bool) string {
	if on {
		return "on"
	}
	return "off"
}
