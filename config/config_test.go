package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/dshills/editkit/style"
	"github.com/dshills/editkit/textarea"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing %s: %v", name, err)
	}
	return path
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	if err != nil {
		t.Fatalf("missing file should not be an error: %v", err)
	}
	if diff := cmp.Diff(Default(), cfg); diff != "" {
		t.Errorf("expected defaults (-want +got):\n%s", diff)
	}
}

func TestLoadTOML(t *testing.T) {
	path := writeFile(t, "editkit.toml", `
[tab]
width = 2

[theme]
foreground = "#e4e4e4"
background = "#1c1c1c"

[frame]
enabled = true
title = "notes"
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if cfg.Tab.Width != 2 {
		t.Errorf("expected tab width 2, got %d", cfg.Tab.Width)
	}
	if cfg.Theme.Foreground != "#e4e4e4" {
		t.Errorf("expected foreground #e4e4e4, got %q", cfg.Theme.Foreground)
	}
	if !cfg.Frame.Enabled || cfg.Frame.Title != "notes" {
		t.Errorf("frame not loaded: %+v", cfg.Frame)
	}
}

func TestLoadYAML(t *testing.T) {
	path := writeFile(t, "editkit.yaml", `
tab:
  width: 8
theme:
  foreground: "#ffffff"
frame:
  enabled: false
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if cfg.Tab.Width != 8 {
		t.Errorf("expected tab width 8, got %d", cfg.Tab.Width)
	}
	if cfg.Frame.Enabled {
		t.Error("frame should be disabled")
	}
}

func TestLoadUnknownExtension(t *testing.T) {
	path := writeFile(t, "editkit.ini", "[tab]\nwidth = 2\n")

	_, err := Load(path)
	if !errors.Is(err, ErrUnknownFormat) {
		t.Errorf("expected ErrUnknownFormat, got %v", err)
	}
}

func TestLoadMalformed(t *testing.T) {
	path := writeFile(t, "editkit.toml", "tab = [unclosed\n")

	cfg, err := Load(path)
	if err == nil {
		t.Fatal("malformed TOML should fail")
	}
	if diff := cmp.Diff(Default(), cfg); diff != "" {
		t.Errorf("failed load should return defaults (-want +got):\n%s", diff)
	}
}

func TestValidateRejectsNegativeTabWidth(t *testing.T) {
	path := writeFile(t, "editkit.toml", "[tab]\nwidth = -1\n")

	_, err := Load(path)
	if !errors.Is(err, ErrBadTabWidth) {
		t.Errorf("expected ErrBadTabWidth, got %v", err)
	}
}

func TestValidateRejectsBadColor(t *testing.T) {
	path := writeFile(t, "editkit.toml", `
[theme]
foreground = "not-a-color"
`)

	if _, err := Load(path); err == nil {
		t.Error("bad hex color should fail validation")
	}
}

func TestBaseStyle(t *testing.T) {
	cfg := Default()
	cfg.Theme.Foreground = "#ff0000"

	s := cfg.BaseStyle()
	if !s.Foreground.Equals(style.ColorFromRGB(255, 0, 0)) {
		t.Errorf("expected red foreground, got %v", s.Foreground)
	}
	if !s.Background.IsDefault() {
		t.Error("unset background should stay terminal default")
	}
}

func TestFrameStyleIsMuted(t *testing.T) {
	cfg := Default()
	cfg.Theme.Foreground = "#ffffff"
	cfg.Theme.Background = "#000000"

	frame := cfg.FrameStyle().Foreground
	base := cfg.BaseStyle().Foreground
	if frame.Equals(base) {
		t.Error("frame color should differ from the base foreground")
	}
	if !frame.Equals(style.ColorFromRGB(127, 127, 127)) {
		t.Errorf("frame should sit halfway to the background, got %v", frame)
	}
}

func TestFrameStyleWithoutBackground(t *testing.T) {
	cfg := Default()
	cfg.Theme.Foreground = "#808080"

	frame := cfg.FrameStyle().Foreground
	if frame.IsDefault() {
		t.Fatal("a themed foreground should produce a concrete frame color")
	}
	if frame.R >= 0x80 {
		t.Errorf("unset background should mute toward black, got %v", frame)
	}
}

func TestApply(t *testing.T) {
	cfg := Default()
	cfg.Tab.Width = 2
	cfg.Frame.Title = "demo"

	ta := textarea.New()
	if err := cfg.Apply(ta); err != nil {
		t.Fatalf("apply failed: %v", err)
	}

	if ta.TabString() != "  " {
		t.Errorf("expected two-space tab, got %q", ta.TabString())
	}
	if ta.Block() == nil || ta.Block().Title != "demo" {
		t.Error("frame should be configured with the title")
	}

	cfg.Frame.Enabled = false
	if err := cfg.Apply(ta); err != nil {
		t.Fatalf("apply failed: %v", err)
	}
	if ta.Block() != nil {
		t.Error("disabling the frame should remove the block")
	}
}
