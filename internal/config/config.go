// Package config loads the YAML settings of the physics world and the
// sandbox scene.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"alpha3d/internal/physics"

	"gopkg.in/yaml.v3"
)

// DefaultPath is the config file looked up by the cmds, relative to the
// working directory.
const DefaultPath = "config/sandbox.yaml"

// Sandbox holds the window and scene settings of cmd/sandbox
type Sandbox struct {
	ScreenWidth  int    `yaml:"screenWidth"`
	ScreenHeight int    `yaml:"screenHeight"`
	Title        string `yaml:"title"`
	TargetFPS    int32  `yaml:"targetFPS"`

	// PlayerSpeed is the walking speed in units per second
	PlayerSpeed float32 `yaml:"playerSpeed"`
	JumpSpeed   float32 `yaml:"jumpSpeed"`

	Trees  int   `yaml:"trees"`
	Crates int   `yaml:"crates"`
	Seed   int64 `yaml:"seed"`

	ShowContacts bool `yaml:"showContacts"`
}

type Config struct {
	Physics physics.Config `yaml:"physics"`
	Sandbox Sandbox        `yaml:"sandbox"`
}

// Default returns the settings used when no file exists
func Default() Config {
	return Config{
		Physics: physics.DefaultConfig(),
		Sandbox: Sandbox{
			ScreenWidth:  1280,
			ScreenHeight: 720,
			Title:        "alpha3d sandbox",
			TargetFPS:    60,
			PlayerSpeed:  4,
			JumpSpeed:    5,
			Trees:        12,
			Crates:       6,
			Seed:         1,
			ShowContacts: true,
		},
	}
}

// Validate checks both sections
func (c Config) Validate() error {
	if err := c.Physics.Validate(); err != nil {
		return err
	}
	s := c.Sandbox
	switch {
	case s.ScreenWidth <= 0 || s.ScreenHeight <= 0:
		return fmt.Errorf("%w: screen size must be positive, got %dx%d", physics.ErrInvalidConfig, s.ScreenWidth, s.ScreenHeight)
	case s.TargetFPS <= 0:
		return fmt.Errorf("%w: targetFPS must be positive, got %d", physics.ErrInvalidConfig, s.TargetFPS)
	case s.Trees < 0 || s.Crates < 0:
		return fmt.Errorf("%w: object counts must not be negative", physics.ErrInvalidConfig)
	}
	return nil
}

// Load reads path over the defaults. A missing or empty file gives the
// defaults; unknown keys and invalid values are errors.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, err
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Default(), fmt.Errorf("parse %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return Default(), fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Save writes cfg to path, creating the directory if needed
func Save(path string, cfg Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
