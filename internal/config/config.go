// Package config provides the game's tunable settings. Settings are loaded
// from a JSON file on top of the defaults, so a file only needs the keys it
// changes.
package config

import (
	"encoding/json"
	"fmt"
	"os"
)

// Config holds all settings for a run
type Config struct {
	// Window and presentation
	Window WindowConfig `json:"window"`

	// Audio mix
	Audio AudioConfig `json:"audio"`

	// Chase camera and projection
	Camera CameraConfig `json:"camera"`

	// Gameplay switches
	Gameplay GameplayConfig `json:"gameplay"`

	// Screenshot output
	Screenshots ScreenshotConfig `json:"screenshots"`
}

// WindowConfig defines the game window
type WindowConfig struct {
	Width     int    `json:"width"`
	Height    int    `json:"height"`
	Title     string `json:"title"`
	Resizable bool   `json:"resizable"`
}

// AudioConfig defines output and volumes (0-100)
type AudioConfig struct {
	SampleRate int     `json:"sample_rate"`
	SFXVolume  float32 `json:"sfx_volume"`
	BGMVolume  float32 `json:"bgm_volume"`
	SoundsDir  string  `json:"sounds_dir"` // optional .wav overrides, synthesized otherwise
	Muted      bool    `json:"muted"`
}

// CameraConfig defines the chase camera
type CameraConfig struct {
	TetherDistance float32 `json:"tether_distance"`
	EyeLevel       float32 `json:"eye_level"`
	FOV            float32 `json:"fov"` // degrees
	Near           float32 `json:"near"`
	Far            float32 `json:"far"`
}

// GameplayConfig defines simulation switches
type GameplayConfig struct {
	Seed uint64 `json:"seed"` // 0 picks a time based seed

	// StrictBounds recycles enemy lasers on any axis instead of depth only
	StrictBounds bool `json:"strict_bounds"`
}

// ScreenshotConfig defines where screenshots go
type ScreenshotConfig struct {
	Dir string `json:"dir"`
}

// DefaultConfig returns the settings the game ships with
func DefaultConfig() *Config {
	return &Config{
		Window: WindowConfig{
			Width:     1024,
			Height:    768,
			Title:     "Omega Thunder",
			Resizable: true,
		},
		Audio: AudioConfig{
			SampleRate: 44100,
			SFXVolume:  90,
			BGMVolume:  90,
			SoundsDir:  "sounds",
		},
		Camera: CameraConfig{
			TetherDistance: 20,
			EyeLevel:       6,
			FOV:            80,
			Near:           0.1,
			Far:            5000,
		},
		Screenshots: ScreenshotConfig{
			Dir: "screenshots",
		},
	}
}

// LoadConfig loads settings from a JSON file
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		// Return defaults if file doesn't exist
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	config := DefaultConfig() // Start with defaults
	if err := json.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// Validate rejects settings the game cannot run with
func (c *Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("invalid window size %dx%d", c.Window.Width, c.Window.Height)
	}
	if c.Audio.SampleRate <= 0 {
		return fmt.Errorf("invalid sample rate %d", c.Audio.SampleRate)
	}
	if c.Audio.SFXVolume < 0 || c.Audio.SFXVolume > 100 || c.Audio.BGMVolume < 0 || c.Audio.BGMVolume > 100 {
		return fmt.Errorf("volumes must be within 0-100")
	}
	if c.Camera.Near <= 0 || c.Camera.Far <= c.Camera.Near {
		return fmt.Errorf("invalid clip planes near=%v far=%v", c.Camera.Near, c.Camera.Far)
	}
	return nil
}
