package deskview

import (
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

var ErrInvalidConfig = errors.New("deskview: invalid config")

type ViewpointConfig struct {
	Position [3]float64 `toml:"position" yaml:"position"`
	LookAt   [3]float64 `toml:"look_at" yaml:"look_at"`
	Duration float64    `toml:"duration" yaml:"duration"` // seconds
	Parallax float64    `toml:"parallax" yaml:"parallax"`
}

type ViewpointsConfig struct {
	Idle   ViewpointConfig `toml:"idle" yaml:"idle"`
	Desk   ViewpointConfig `toml:"desk" yaml:"desk"`
	Screen ViewpointConfig `toml:"screen" yaml:"screen"`
}

type CameraConfig struct {
	Fov  float64 `toml:"fov" yaml:"fov"` // vertical, degrees
	Near float64 `toml:"near" yaml:"near"`
	Far  float64 `toml:"far" yaml:"far"`
}

type ParallaxConfig struct {
	Smoothing     float64 `toml:"smoothing" yaml:"smoothing"`
	VerticalScale float64 `toml:"vertical_scale" yaml:"vertical_scale"`
}

// PropConfig places a PLY model in the room. Path is relative to the config
// file.
type PropConfig struct {
	Path     string     `toml:"path" yaml:"path"`
	Position [3]float64 `toml:"position" yaml:"position"`
	Scale    float64    `toml:"scale" yaml:"scale"`
	Reverse  bool       `toml:"reverse" yaml:"reverse"`
	Glow     bool       `toml:"glow" yaml:"glow"`
}

// Config is fixed for the lifetime of a mount. Changing it means building a
// new scene.
type Config struct {
	Width           int              `toml:"width" yaml:"width"`
	Height          int              `toml:"height" yaml:"height"`
	Easing          string           `toml:"easing" yaml:"easing"`
	Interaction     string           `toml:"interaction" yaml:"interaction"`
	InitialMode     string           `toml:"initial_mode" yaml:"initial_mode"`
	StartFocusDelay float64          `toml:"start_focus_delay" yaml:"start_focus_delay"` // seconds
	LightsOn        bool             `toml:"lights_on" yaml:"lights_on"`
	Camera          CameraConfig     `toml:"camera" yaml:"camera"`
	Parallax        ParallaxConfig   `toml:"parallax" yaml:"parallax"`
	Viewpoints      ViewpointsConfig `toml:"viewpoints" yaml:"viewpoints"`
	Props           []PropConfig     `toml:"props" yaml:"props"`

	baseDir string
}

func DefaultConfig() Config {
	kf := DefaultKeyframes()
	return Config{
		Width:           1280,
		Height:          720,
		Easing:          "quintic",
		Interaction:     "click",
		InitialMode:     "idle",
		StartFocusDelay: 2,
		LightsOn:        true,
		Camera:          CameraConfig{Fov: 35, Near: 1, Far: 5000},
		Parallax: ParallaxConfig{
			Smoothing:     DefaultParallaxSmoothing,
			VerticalScale: DefaultParallaxVerticalScale,
		},
		Viewpoints: ViewpointsConfig{
			Idle:   viewpointConfigFrom(kf[ModeIdle]),
			Desk:   viewpointConfigFrom(kf[ModeDesk]),
			Screen: viewpointConfigFrom(kf[ModeScreen]),
		},
	}
}

func viewpointConfigFrom(kf Keyframe) ViewpointConfig {
	return ViewpointConfig{
		Position: [3]float64(kf.Position),
		LookAt:   [3]float64(kf.LookAt),
		Duration: kf.Duration.Seconds(),
		Parallax: kf.Parallax,
	}
}

func (v ViewpointConfig) keyframe() Keyframe {
	return Keyframe{
		Position: mgl64.Vec3(v.Position),
		LookAt:   mgl64.Vec3(v.LookAt),
		Duration: seconds(v.Duration),
		Parallax: v.Parallax,
	}
}

func seconds(s float64) time.Duration {
	return time.Duration(s * float64(time.Second))
}

// LoadConfig reads a TOML or YAML file over the defaults. Keys that are not
// present keep their default value.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		err = toml.Unmarshal(data, &cfg)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &cfg)
	default:
		return cfg, fmt.Errorf("%w: unsupported config format %q", ErrInvalidConfig, ext)
	}
	if err != nil {
		return cfg, fmt.Errorf("parsing %s: %w", path, err)
	}
	cfg.baseDir = filepath.Dir(path)
	return cfg, cfg.Validate()
}

func (c Config) Validate() error {
	var errs []error
	if c.Width <= 0 || c.Height <= 0 {
		errs = append(errs, fmt.Errorf("viewport %dx%d has no area", c.Width, c.Height))
	}
	if c.Camera.Fov <= 0 || c.Camera.Fov >= 180 {
		errs = append(errs, fmt.Errorf("camera fov %v outside (0, 180)", c.Camera.Fov))
	}
	if c.Camera.Near <= 0 || c.Camera.Far <= c.Camera.Near {
		errs = append(errs, fmt.Errorf("camera near %v / far %v", c.Camera.Near, c.Camera.Far))
	}
	if c.Parallax.Smoothing <= 0 || c.Parallax.Smoothing > 1 {
		errs = append(errs, fmt.Errorf("parallax smoothing %v outside (0, 1]", c.Parallax.Smoothing))
	}
	if c.StartFocusDelay < 0 {
		errs = append(errs, fmt.Errorf("start focus delay %v is negative", c.StartFocusDelay))
	}
	if _, err := EasingByName(c.Easing); err != nil {
		errs = append(errs, err)
	}
	if _, err := ParseInteractionPolicy(c.Interaction); err != nil {
		errs = append(errs, err)
	}
	if _, err := ParseViewpointMode(c.InitialMode); err != nil {
		errs = append(errs, err)
	}
	for _, v := range []struct {
		name  string
		value float64
	}{
		{"camera fov", c.Camera.Fov},
		{"camera near", c.Camera.Near},
		{"camera far", c.Camera.Far},
		{"parallax smoothing", c.Parallax.Smoothing},
		{"parallax vertical scale", c.Parallax.VerticalScale},
		{"start focus delay", c.StartFocusDelay},
	} {
		if !finite(v.value) {
			errs = append(errs, fmt.Errorf("%s %v is not finite", v.name, v.value))
		}
	}
	for mode, vc := range c.viewpointConfigs() {
		if !finiteVec(mgl64.Vec3(vc.Position)) || !finiteVec(mgl64.Vec3(vc.LookAt)) {
			errs = append(errs, fmt.Errorf("viewpoint %s: position and look-at must be finite", mode))
		}
		if !finite(vc.Duration) || !finite(vc.Parallax) {
			errs = append(errs, fmt.Errorf("viewpoint %s: duration and parallax must be finite", mode))
		}
	}
	for mode, kf := range c.Keyframes() {
		if kf.Duration <= 0 {
			errs = append(errs, fmt.Errorf("viewpoint %s: duration must be positive", mode))
		}
		if kf.Parallax < 0 {
			errs = append(errs, fmt.Errorf("viewpoint %s: parallax is negative", mode))
		}
		if kf.Position == kf.LookAt {
			errs = append(errs, fmt.Errorf("viewpoint %s: position equals look-at point", mode))
		}
	}
	for i, p := range c.Props {
		if p.Path == "" {
			errs = append(errs, fmt.Errorf("prop %d: path is empty", i))
		}
		if p.Scale < 0 {
			errs = append(errs, fmt.Errorf("prop %d: scale is negative", i))
		}
		if !finite(p.Scale) || !finiteVec(mgl64.Vec3(p.Position)) {
			errs = append(errs, fmt.Errorf("prop %d: position and scale must be finite", i))
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, errors.Join(errs...))
	}
	return nil
}

func (c Config) viewpointConfigs() map[ViewpointMode]ViewpointConfig {
	return map[ViewpointMode]ViewpointConfig{
		ModeIdle:   c.Viewpoints.Idle,
		ModeDesk:   c.Viewpoints.Desk,
		ModeScreen: c.Viewpoints.Screen,
	}
}

func (c Config) Keyframes() map[ViewpointMode]Keyframe {
	kfs := make(map[ViewpointMode]Keyframe, modeCount)
	for mode, vc := range c.viewpointConfigs() {
		kfs[mode] = vc.keyframe()
	}
	return kfs
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// EasingFunc and the other accessors assume Validate passed.
func (c Config) EasingFunc() Easing {
	e, err := EasingByName(c.Easing)
	if err != nil {
		return EaseInOutQuintic
	}
	return e
}

func (c Config) Policy() InteractionPolicy {
	p, _ := ParseInteractionPolicy(c.Interaction)
	return p
}

func (c Config) Initial() ViewpointMode {
	m, _ := ParseViewpointMode(c.InitialMode)
	return m
}

func (c Config) FocusDelay() time.Duration {
	return seconds(c.StartFocusDelay)
}

// Content builds the default room plus every configured prop. Props are
// centred on their position before they are placed.
func (c Config) Content() ContentBuilder {
	if len(c.Props) == 0 {
		return BuildRoom
	}
	return func(w *World) error {
		if err := BuildRoom(w); err != nil {
			return err
		}
		for _, p := range c.Props {
			path := p.Path
			if !filepath.IsAbs(path) && c.baseDir != "" {
				path = filepath.Join(c.baseDir, path)
			}
			m, err := LoadPLYFile(path, filepath.Base(path), p.Reverse)
			if err != nil {
				return err
			}
			scale := p.Scale
			if scale == 0 {
				scale = 1
			}
			m.Centre().Scale(scale).Translate(mgl64.Vec3(p.Position))
			if p.Glow {
				m.SetKind(FaceGlow)
			}
			w.Add(m)
		}
		return nil
	}
}
