// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cli

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-jira-kit/internal/config"
)

// writeConfigDir creates a temp dir holding .claude/env with the given
// contents and returns it for use with --config-dir.
func writeConfigDir(t *testing.T, contents string) string {
	t.Helper()

	dir := t.TempDir()
	claudeDir := filepath.Join(dir, config.ConfigDirName)
	require.NoError(t, os.MkdirAll(claudeDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(claudeDir, config.ConfigFileName), []byte(contents), 0o600))
	return dir
}

// runCommand executes one toolkit command against a stub API server with
// the given stdin, returning captured stdout and the command error.
func runCommand(t *testing.T, handler http.HandlerFunc, stdin string, args ...string) (string, error) {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	dir := writeConfigDir(t, "JIRA_BASE_URL="+server.URL+"\nJIRA_PAT=test_pat_token\n")
	return runCommandWithConfigDir(t, dir, stdin, args...)
}

// runCommandWithConfigDir is runCommand for tests that manage their own
// configuration fixture.
func runCommandWithConfigDir(t *testing.T, configDir, stdin string, args ...string) (string, error) {
	t.Helper()

	root := NewRootCmd()
	root.SetIn(strings.NewReader(stdin))

	var stdout bytes.Buffer
	root.SetOut(&stdout)
	root.SetErr(io.Discard)
	root.SetArgs(append(args, "--config-dir", configDir))

	err := root.Execute()
	return stdout.String(), err
}
