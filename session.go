package deskview

import (
	"log"
	"time"
)

// Session is the embedding application: it owns the viewpoint navigation
// state and feeds the scene's interaction callbacks back into it.
type Session struct {
	cfg    Config
	deps   Dependencies
	hooks  Callbacks
	logger *log.Logger

	nav   *Navigator
	scene *Scene
}

// NewSession builds the navigator and the first scene. hooks receives the
// scene callbacks the session does not consume itself: OnResourcesReady,
// OnFailure and OnLightingChanged. Its interaction callbacks are called
// after navigation has been updated.
func NewSession(cfg Config, deps Dependencies, hooks Callbacks) (*Session, error) {
	s := &Session{
		cfg:   cfg,
		deps:  deps,
		hooks: hooks,
	}
	s.logger = deps.Logger
	if s.logger == nil {
		s.logger = log.Default()
	}
	s.nav = NewNavigator(cfg.Initial(), cfg.FocusDelay())
	s.nav.OnChange = s.modeChanged

	scene, err := NewScene(cfg, deps, s.sceneCallbacks())
	if err != nil {
		return nil, err
	}
	s.scene = scene
	return s, nil
}

func (s *Session) sceneCallbacks() Callbacks {
	return Callbacks{
		OnResourcesReady:  s.hooks.OnResourcesReady,
		OnFailure:         s.hooks.OnFailure,
		OnLightingChanged: s.hooks.OnLightingChanged,
		OnBackgroundInteraction: func() {
			s.nav.Fire(NavBack)
			if s.hooks.OnBackgroundInteraction != nil {
				s.hooks.OnBackgroundInteraction()
			}
		},
		OnFocusInteraction: func() {
			s.nav.Fire(NavFocus)
			if s.hooks.OnFocusInteraction != nil {
				s.hooks.OnFocusInteraction()
			}
		},
	}
}

func (s *Session) modeChanged(from, to ViewpointMode) {
	s.logger.Printf("session: %s -> %s", from, to)
	s.scene.SetViewpointMode(to)
}

func (s *Session) Start() error { return s.scene.Start() }

func (s *Session) Stop() { s.scene.Stop() }

// Begin is the start action from the boot screen. It moves to the desk
// and arms the delayed focus on the screen.
func (s *Session) Begin() { s.nav.Fire(NavStart) }

// Advance runs the navigator's timers. Hosts call it once per frame.
func (s *Session) Advance(dt time.Duration) { s.nav.Advance(dt) }

func (s *Session) Mode() ViewpointMode { return s.nav.Mode() }

func (s *Session) DesktopVisible() bool { return s.nav.DesktopVisible() }

func (s *Session) Scene() *Scene { return s.scene }

// Reload mounts a new scene built from cfg and then tears down the running
// one. The current viewpoint and lighting carry over. If the new scene
// cannot be built or started the running scene is left untouched.
func (s *Session) Reload(cfg Config) error {
	cfg.InitialMode = s.nav.Mode().String()
	cfg.LightsOn = s.scene.Lighting()
	scene, err := NewScene(cfg, s.deps, s.sceneCallbacks())
	if err != nil {
		return err
	}
	if err := scene.Start(); err != nil {
		scene.Stop()
		return err
	}

	s.scene.Stop()
	s.scene = scene
	s.cfg = cfg
	s.nav.SetFocusDelay(cfg.FocusDelay())
	return nil
}
