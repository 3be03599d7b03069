// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadSettings_Defaults(t *testing.T) {
	// Arrange
	t.Setenv("JIRA_CLI_HTTP_TIMEOUT", "")
	t.Setenv("JIRA_CLI_LOG_LEVEL", "")

	// Act
	s, err := LoadSettings()

	// Assert
	require.NoError(t, err)
	assert.Equal(t, 30*time.Second, s.HTTPTimeout)
	assert.Equal(t, "warn", s.LogLevel)
}

func TestLoadSettings_EnvOverrides(t *testing.T) {
	// Arrange
	t.Setenv("JIRA_CLI_HTTP_TIMEOUT", "5s")
	t.Setenv("JIRA_CLI_LOG_LEVEL", "debug")

	// Act
	s, err := LoadSettings()

	// Assert
	require.NoError(t, err)
	assert.Equal(t, 5*time.Second, s.HTTPTimeout)
	assert.Equal(t, "debug", s.LogLevel)
}

func TestLoadSettings_PartialEnvKeepsOtherDefaults(t *testing.T) {
	// Arrange
	t.Setenv("JIRA_CLI_HTTP_TIMEOUT", "")
	t.Setenv("JIRA_CLI_LOG_LEVEL", "info")

	// Act
	s, err := LoadSettings()

	// Assert
	require.NoError(t, err)
	assert.Equal(t, 30*time.Second, s.HTTPTimeout)
	assert.Equal(t, "info", s.LogLevel)
}

func TestLoadSettings_InvalidDuration(t *testing.T) {
	// Arrange
	t.Setenv("JIRA_CLI_HTTP_TIMEOUT", "not_a_duration")

	// Act
	_, err := LoadSettings()

	// Assert
	require.Error(t, err)
	assert.Contains(t, err.Error(), "env")
}
