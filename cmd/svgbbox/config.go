// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io/fs"
	"os"

	"cogentcore.org/svgbbox/base/errors"
	"github.com/mitchellh/go-homedir"
	"github.com/pelletier/go-toml/v2"
)

// DefaultConfigFile is the config file read when none is specified.
const DefaultConfigFile = "~/.config/svgbbox/config.toml"

// Config is the configuration of svgbbox, read from a TOML file
// and overridden by command line flags.
type Config struct {

	// Format is the output format: text, json, yaml, toml or cbor.
	Format string `toml:"format"`

	// All reports every element with an id instead of the root.
	All bool `toml:"all"`

	// IDs are the ids of the elements to report instead of the root.
	IDs []string `toml:"ids"`

	// Language is the user language for systemLanguage conditions,
	// as a BCP 47 tag. The system locale is used if it is empty.
	Language string `toml:"language"`

	// FontSize is the font size of text without a font-size.
	FontSize float32 `toml:"font-size"`

	// Watch re-evaluates the files whenever they change.
	Watch bool `toml:"watch"`
}

// Defaults sets the default values of the config.
func (c *Config) Defaults() {
	c.Format = "text"
	c.FontSize = 16
}

// Open reads the given TOML config file into the config,
// expanding a leading ~ in the file name. A missing file is
// an error only if mustExist is true.
func (c *Config) Open(file string, mustExist bool) error {
	fname, err := homedir.Expand(file)
	if err != nil {
		return err
	}
	b, err := os.ReadFile(fname)
	if err != nil {
		if !mustExist && errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return err
	}
	if err := toml.Unmarshal(b, c); err != nil {
		return fmt.Errorf("config file %s: %w", fname, err)
	}
	return nil
}
