// cmd/glpaint-demo/config.go
// Copyright(c) 2026 glpaint contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package main

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/glpaint/glpaint/log"
	"github.com/glpaint/glpaint/platform"
)

type Config struct {
	platform.Config

	// PixelsPerPoint overrides the monitor's content scale if it is
	// nonzero.
	PixelsPerPoint float32
	Amplitude      float32
	Text           string
}

func configFilePath(override string, lg *log.Logger) string {
	if override != "" {
		return override
	}

	dir, err := os.UserConfigDir()
	if err != nil {
		lg.Errorf("Unable to find user config dir: %v", err)
		dir = "."
	}

	dir = filepath.Join(dir, "glpaint")
	if err := os.MkdirAll(dir, 0o700); err != nil {
		lg.Errorf("%s: unable to make directory for config file: %v", dir, err)
	}

	return filepath.Join(dir, "config.json")
}

func getDefaultConfig() *Config {
	return &Config{
		Config:    platform.DefaultConfig(),
		Amplitude: 0.5,
		Text:      "Hello, world",
	}
}

// LoadOrMakeDefaultConfig returns the saved config, or the default one if
// there isn't one. An error is returned along with the default config if
// the saved one couldn't be decoded.
func LoadOrMakeDefaultConfig(fn string, lg *log.Logger) (*Config, error) {
	lg.Infof("Loading config from: %s", fn)

	contents, err := os.ReadFile(fn)
	if err != nil {
		if !os.IsNotExist(err) {
			lg.Warnf("%s: %v", fn, err)
		}
		return getDefaultConfig(), nil
	}

	config := getDefaultConfig()
	if err := json.NewDecoder(bytes.NewReader(contents)).Decode(config); err != nil {
		return getDefaultConfig(), err
	}
	return config, nil
}

func (c *Config) Encode(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "    ")
	return enc.Encode(c)
}

// SaveIfChanged writes the config to fn if it differs from what is
// already there, returning true if it was written.
func (c *Config) SaveIfChanged(fn string, lg *log.Logger) bool {
	onDisk, err := os.ReadFile(fn)
	if err != nil && !os.IsNotExist(err) {
		lg.Warnf("%s: unable to read config file: %v", fn, err)
	}

	var b strings.Builder
	if err := c.Encode(&b); err != nil {
		lg.Errorf("%s: unable to encode config: %v", fn, err)
		return false
	}
	if b.String() == string(onDisk) {
		return false
	}

	lg.Infof("Saving config to: %s", fn)
	if err := os.WriteFile(fn, []byte(b.String()), 0o600); err != nil {
		lg.Errorf("%s: %v", fn, err)
		return false
	}
	return true
}
