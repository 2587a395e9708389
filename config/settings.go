/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package config

import (
	tvfs "bennypowers.dev/tokenvars/fs"
)

// Setting keys shared by CLI flags, environment variables and Resolve.
const (
	KeyInput        = "input"
	KeyOutDir       = "out-dir"
	KeyOutFile      = "out-file"
	KeyFormat       = "format"
	KeyPrefix       = "prefix"
	KeyHeader       = "header"
	KeyValueCase    = "value-case"
	KeyPreserveCase = "preserve-case"
)

// Settings is a source of explicitly set values, such as a *viper.Viper
// bound to command flags and the environment.
type Settings interface {
	IsSet(key string) bool
	GetString(key string) string
	GetBool(key string) bool
}

// Resolve builds the effective config. Values from settings win over the
// config file, which wins over defaults. When configPath is empty the config
// file is looked up under rootDir; a missing file is not an error.
func Resolve(filesystem tvfs.FileSystem, rootDir, configPath string, settings Settings) (*Config, error) {
	var (
		cfg *Config
		err error
	)
	if configPath != "" {
		cfg, err = LoadFile(filesystem, configPath)
	} else {
		cfg, err = Load(filesystem, rootDir)
	}
	if err != nil {
		return nil, err
	}
	if cfg == nil {
		cfg = Default()
	}
	if settings != nil {
		cfg.Override(settings)
	}
	return cfg, nil
}

// Override replaces fields whose keys are set in settings.
func (c *Config) Override(settings Settings) {
	strs := []struct {
		key   string
		field *string
	}{
		{KeyInput, &c.Input},
		{KeyOutDir, &c.OutDir},
		{KeyOutFile, &c.OutFile},
		{KeyFormat, &c.Format},
		{KeyPrefix, &c.Prefix},
		{KeyHeader, &c.Header},
		{KeyValueCase, &c.ValueCase},
	}
	for _, s := range strs {
		if settings.IsSet(s.key) {
			*s.field = settings.GetString(s.key)
		}
	}
	if settings.IsSet(KeyPreserveCase) {
		c.PreserveCase = settings.GetBool(KeyPreserveCase)
	}
	c.applyDefaults()
}
