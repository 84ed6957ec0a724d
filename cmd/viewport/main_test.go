package main

import "testing"

func TestParseFlagsDefaults(t *testing.T) {
	cfg, err := parseFlags(nil)
	if err != nil {
		t.Fatalf("parseFlags: %v", err)
	}
	if cfg.width != 1280 || cfg.height != 720 {
		t.Errorf("size = %dx%d, want 1280x720", cfg.width, cfg.height)
	}
	if !cfg.vsync || cfg.msaa || cfg.debug || cfg.software || cfg.profile {
		t.Errorf("unexpected default toggles: %+v", cfg)
	}
	if cfg.speed != 10 || cfg.sensitivity != 0.1 {
		t.Errorf("speed/sensitivity = %v/%v, want the camera defaults 10/0.1", cfg.speed, cfg.sensitivity)
	}
	if cfg.cubes != 10 {
		t.Errorf("cubes = %d, want 10", cfg.cubes)
	}
}

func TestParseFlags(t *testing.T) {
	cfg, err := parseFlags([]string{"-width", "800", "-height", "600", "-vsync=false", "-cubes", "3", "-orbit", "0.5", "-title", "demo", "-speed", "2.5"})
	if err != nil {
		t.Fatalf("parseFlags: %v", err)
	}
	if cfg.width != 800 || cfg.height != 600 || cfg.vsync || cfg.cubes != 3 || cfg.orbit != 0.5 || cfg.title != "demo" || cfg.speed != 2.5 {
		t.Errorf("parsed %+v", cfg)
	}

	if _, err := parseFlags([]string{"-width", "wide"}); err == nil {
		t.Error("expected an error for a non-numeric width")
	}
}
