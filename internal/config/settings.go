// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"time"

	"dario.cat/mergo"
	"github.com/caarlos0/env/v11"
)

// settingsEnvPrefix is applied to every Settings env tag lookup.
const settingsEnvPrefix = "JIRA_CLI_"

// Settings tunes tool behavior. Unlike credentials, which come exclusively
// from .claude/env, settings are read from JIRA_CLI_* environment
// variables so a shell profile can adjust them without touching the
// credentials file.
type Settings struct {
	// HTTPTimeout bounds a single outbound request, connection included.
	// Env: JIRA_CLI_HTTP_TIMEOUT (e.g. "30s", "2m").
	HTTPTimeout time.Duration `env:"HTTP_TIMEOUT"`

	// LogLevel is the zerolog level for diagnostic output on stderr
	// (e.g. "debug", "info", "warn").
	// Env: JIRA_CLI_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`
}

func defaultSettings() Settings {
	return Settings{
		HTTPTimeout: 30 * time.Second,
		LogLevel:    "warn",
	}
}

// LoadSettings parses JIRA_CLI_* environment variables and fills any field
// left unset with the package defaults.
func LoadSettings() (Settings, error) {
	var s Settings
	if err := env.ParseWithOptions(&s, env.Options{Prefix: settingsEnvPrefix}); err != nil {
		return Settings{}, fmt.Errorf("error getting env configs: %w", err)
	}

	if err := mergo.Merge(&s, defaultSettings()); err != nil {
		return Settings{}, fmt.Errorf("error merging configs: %w", err)
	}

	return s, nil
}
