// Package config loads the UI configuration from YAML and the environment
// and applies it to an engine.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v2"

	"github.com/rook-computer/lcdui/internal/render"
	"github.com/rook-computer/lcdui/internal/ui"
)

const (
	EnvListenAddr = "LCDUI_LISTEN"
	EnvDevMode    = "LCDUI_DEV"
	EnvTargetFPS  = "LCDUI_FPS"
)

// Config holds everything a binary needs to build the UI.
type Config struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`

	TargetFPS         int           `yaml:"target_fps"`
	TimePerFrame      time.Duration `yaml:"time_per_frame"`
	TimePerTransition time.Duration `yaml:"time_per_transition"`

	Animation          string `yaml:"animation"`
	IndicatorPosition  string `yaml:"indicator_position"`
	IndicatorDirection string `yaml:"indicator_direction"`
	Indicators         bool   `yaml:"indicators"`

	AutoTransition bool `yaml:"auto_transition"`
	AutoBackwards  bool `yaml:"auto_backwards"`

	Font     string  `yaml:"font"`
	FontSize float64 `yaml:"font_size"`

	// ListenAddr enables the HTTP control API when set.
	ListenAddr string `yaml:"listen"`
	DevMode    bool   `yaml:"dev_mode"`
}

// Default mirrors the engine defaults on an 84x48 panel.
func Default() Config {
	return Config{
		Width:              render.DefaultWidth,
		Height:             render.DefaultHeight,
		TargetFPS:          30,
		TimePerFrame:       5 * time.Second,
		TimePerTransition:  500 * time.Millisecond,
		Animation:          ui.SlideRight.String(),
		IndicatorPosition:  ui.Bottom.String(),
		IndicatorDirection: ui.LeftRight.String(),
		Indicators:         true,
		AutoTransition:     true,
		Font:               render.FontBasic,
		FontSize:           8,
	}
}

// Load reads a YAML file over the defaults. An empty path returns the
// defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.UnmarshalStrict(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// ApplyEnv overrides fields from LCDUI_* environment variables.
func (cfg *Config) ApplyEnv() error {
	if addr := os.Getenv(EnvListenAddr); addr != "" {
		cfg.ListenAddr = addr
	}
	if raw := os.Getenv(EnvDevMode); raw != "" {
		parsed, err := strconv.ParseBool(raw)
		if err != nil {
			return fmt.Errorf("%s must be a boolean (got %q): %w", EnvDevMode, raw, err)
		}
		cfg.DevMode = parsed
	}
	if raw := os.Getenv(EnvTargetFPS); raw != "" {
		fps, err := strconv.Atoi(raw)
		if err != nil || fps <= 0 {
			return fmt.Errorf("%s must be a positive integer (got %q)", EnvTargetFPS, raw)
		}
		cfg.TargetFPS = fps
	}
	return nil
}

// Validate checks sizes, rates and enum names.
func (cfg Config) Validate() error {
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return fmt.Errorf("panel size must be positive (got %dx%d)", cfg.Width, cfg.Height)
	}
	if cfg.TargetFPS <= 0 {
		return fmt.Errorf("target_fps must be positive (got %d)", cfg.TargetFPS)
	}
	if cfg.TimePerFrame < 0 || cfg.TimePerTransition < 0 {
		return fmt.Errorf("frame and transition times must not be negative")
	}
	if _, err := ParseAnimation(cfg.Animation); err != nil {
		return err
	}
	if _, err := ParseIndicatorPosition(cfg.IndicatorPosition); err != nil {
		return err
	}
	if _, err := ParseIndicatorDirection(cfg.IndicatorDirection); err != nil {
		return err
	}
	return nil
}

// Apply configures u. The frame and transition times are set after the rate
// so they convert to ticks at the configured rate.
func (cfg Config) Apply(u *ui.UI) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	animation, _ := ParseAnimation(cfg.Animation)
	position, _ := ParseIndicatorPosition(cfg.IndicatorPosition)
	direction, _ := ParseIndicatorDirection(cfg.IndicatorDirection)

	u.SetTargetFPS(cfg.TargetFPS)
	u.SetTimePerFrame(cfg.TimePerFrame)
	u.SetTimePerTransition(cfg.TimePerTransition)
	u.SetFrameAnimation(animation)
	u.SetIndicatorPosition(position)
	u.SetIndicatorDirection(direction)
	if cfg.Indicators {
		u.EnableAllIndicators()
	} else {
		u.DisableAllIndicators()
	}
	if cfg.AutoTransition {
		u.EnableAutoTransition()
	} else {
		u.DisableAutoTransition()
	}
	if cfg.AutoBackwards {
		u.SetAutoTransitionBackwards()
	} else {
		u.SetAutoTransitionForwards()
	}
	return nil
}
