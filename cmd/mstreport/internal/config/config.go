// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config reads mstreport's defaults from the environment and
// from .env files.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Environment variables.
const (
	EnvInput   = "MSTREPORT_INPUT"
	EnvDir     = "MSTREPORT_DIR"
	EnvBackend = "MSTREPORT_BACKEND"
	EnvPalette = "MSTREPORT_PALETTE"
	EnvDPI     = "MSTREPORT_DPI"
)

// Defaults used when neither a flag nor the environment sets a value.
const (
	DefaultInput   = "results/performance_data.csv"
	DefaultDir     = "results"
	DefaultBackend = "gonum"
	DefaultPalette = "Set2"
)

// A Config holds the defaults for mstreport's flags.
type Config struct {
	Input   string
	Dir     string
	Backend string
	Palette string

	// DPI is the chart resolution, or 0 for the renderer's default.
	DPI int
}

// Load loads the named .env files into the environment and returns the
// resulting Config. With no arguments it loads ".env" in the current
// directory. Missing files are ignored. Variables already set in the
// environment take precedence over .env files.
func Load(filenames ...string) (*Config, error) {
	if err := godotenv.Load(filenames...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("loading environment: %w", err)
	}
	return FromEnv(os.LookupEnv)
}

// FromEnv returns the Config described by the variables lookup
// reports.
func FromEnv(lookup func(key string) (string, bool)) (*Config, error) {
	get := func(key, def string) string {
		if v, ok := lookup(key); ok && v != "" {
			return v
		}
		return def
	}
	cfg := &Config{
		Input:   get(EnvInput, DefaultInput),
		Dir:     get(EnvDir, DefaultDir),
		Backend: get(EnvBackend, DefaultBackend),
		Palette: get(EnvPalette, DefaultPalette),
	}
	if v := get(EnvDPI, ""); v != "" {
		dpi, err := strconv.Atoi(v)
		if err != nil || dpi <= 0 {
			return nil, fmt.Errorf("%s: want a positive integer, got %q", EnvDPI, v)
		}
		cfg.DPI = dpi
	}
	return cfg, nil
}
