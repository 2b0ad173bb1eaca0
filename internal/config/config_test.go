package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfigMissingFileUsesDefaults(t *testing.T) {
	c, err := LoadConfig(filepath.Join(t.TempDir(), "missing.json"))
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if c.Audio.SFXVolume != 90 || c.Camera.TetherDistance != 20 {
		t.Errorf("Expected defaults, got %+v", c)
	}
}

func TestLoadConfigOverlaysDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	data := `{"audio": {"bgm_volume": 40}, "gameplay": {"seed": 7, "strict_bounds": true}}`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	c, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if c.Audio.BGMVolume != 40 {
		t.Errorf("Expected bgm volume 40, got %v", c.Audio.BGMVolume)
	}
	if c.Audio.SFXVolume != 90 {
		t.Errorf("Expected the untouched sfx volume to keep its default, got %v", c.Audio.SFXVolume)
	}
	if c.Gameplay.Seed != 7 || !c.Gameplay.StrictBounds {
		t.Errorf("Expected gameplay overrides, got %+v", c.Gameplay)
	}
}

func TestLoadConfigErrors(t *testing.T) {
	dir := t.TempDir()

	bad := filepath.Join(dir, "bad.json")
	if err := os.WriteFile(bad, []byte("{"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadConfig(bad); err == nil {
		t.Error("Expected a parse error")
	}

	invalid := filepath.Join(dir, "invalid.json")
	if err := os.WriteFile(invalid, []byte(`{"audio": {"sample_rate": 0}}`), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadConfig(invalid); err == nil {
		t.Error("Expected a validation error")
	}
}
