package config

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
	"time"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := parseAcorns(GetDefaultYAML("acorns"))
	if err != nil {
		t.Fatalf("embedded YAML failed to parse: %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultAcornsConfig()) {
		t.Errorf("embedded YAML differs from DefaultAcornsConfig():\n%+v\n%+v", cfg, DefaultAcornsConfig())
	}
}

func TestLoadAcornsCustomPathPartialOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "acorns.yaml")
	data := "acorns:\n  count: 5\nworld:\n  gravity: 150\n"
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadAcorns(path)
	if err != nil {
		t.Fatalf("LoadAcorns() failed: %v", err)
	}
	if cfg.Acorns.Count != 5 {
		t.Errorf("Acorns.Count = %d, expected 5", cfg.Acorns.Count)
	}
	if cfg.World.Gravity != 150 {
		t.Errorf("World.Gravity = %v, expected 150", cfg.World.Gravity)
	}
	// Keys not named keep their defaults
	if cfg.Acorns.MinX != 12 || cfg.Acorns.MaxX != 700 {
		t.Errorf("spawn range = [%d, %d], expected [12, 700]", cfg.Acorns.MinX, cfg.Acorns.MaxX)
	}
	if cfg.Player.Speed != 300 {
		t.Errorf("Player.Speed = %v, expected 300", cfg.Player.Speed)
	}
}

func TestLoadAcornsMissingCustomPath(t *testing.T) {
	_, err := LoadAcorns(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Fatal("expected an error for a missing custom config")
	}
	if !strings.Contains(err.Error(), "config:") {
		t.Errorf("error should carry the package prefix, got %v", err)
	}
}

func TestLoadAcornsRejectsInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	data := "acorns:\n  count: 0\n  min_x: 900\n"
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}

	_, err := LoadAcorns(path)
	if err == nil {
		t.Fatal("expected validation error")
	}
	for _, want := range []string{"acorns.count", "min_x"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("error %q should mention %q", err, want)
		}
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*AcornsConfig)
		wantErr string
	}{
		{"defaults", func(*AcornsConfig) {}, ""},
		{"unknown tint", func(c *AcornsConfig) { c.Player.DefeatTint = "plaid" }, "defeat_tint"},
		{"frames outside sheet", func(c *AcornsConfig) { c.Animations[2].End = 9 }, "outside spritesheet"},
		{"missing turn", func(c *AcornsConfig) { c.Animations = c.Animations[:1] }, `"turn"`},
		{"zero world", func(c *AcornsConfig) { c.World.Width = 0 }, "world size"},
		{"negative hold", func(c *AcornsConfig) { c.Input.HoldMillis = -1 }, "hold_ms"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultAcornsConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if tc.wantErr == "" {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tc.wantErr) {
				t.Errorf("Validate() = %v, expected error containing %q", err, tc.wantErr)
			}
		})
	}
}

func TestGetDefaultYAMLUnknownGame(t *testing.T) {
	if GetDefaultYAML("flappy") != nil {
		t.Error("unknown game should have no default YAML")
	}
}

func TestHoldWindow(t *testing.T) {
	if got := DefaultAcornsConfig().Input.HoldWindow(); got != 200*time.Millisecond {
		t.Errorf("default hold window = %v, want 200ms", got)
	}
	if got := (InputConfig{}).HoldWindow(); got != 0 {
		t.Errorf("zero hold_ms should give 0, got %v", got)
	}
}
