// cmd/glpaint-demo/config_test.go
// Copyright(c) 2026 glpaint contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package main

import (
	"os"
	"path/filepath"
	"testing"
)

func TestConfigRoundTrip(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "config.json")

	config, err := LoadOrMakeDefaultConfig(fn, nil)
	if err != nil {
		t.Fatalf("missing config file should not be an error: %v", err)
	}
	if config.InitialWindowSize != [2]int{800, 600} || config.Amplitude != 0.5 {
		t.Errorf("unexpected defaults: %+v", config)
	}

	config.Text = "changed"
	config.PixelsPerPoint = 2
	if !config.SaveIfChanged(fn, nil) {
		t.Fatalf("new config not saved")
	}
	if config.SaveIfChanged(fn, nil) {
		t.Errorf("unchanged config saved again")
	}

	loaded, err := LoadOrMakeDefaultConfig(fn, nil)
	if err != nil {
		t.Fatal(err)
	}
	if loaded.Text != "changed" || loaded.PixelsPerPoint != 2 || loaded.Title != "glpaint" {
		t.Errorf("loaded config %+v", loaded)
	}
}

func TestCorruptConfig(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(fn, []byte("{ not json"), 0o600); err != nil {
		t.Fatal(err)
	}

	config, err := LoadOrMakeDefaultConfig(fn, nil)
	if err == nil {
		t.Errorf("expected an error for a corrupt config")
	}
	if config == nil || config.Text != "Hello, world" {
		t.Errorf("expected the default config, got %+v", config)
	}
}
