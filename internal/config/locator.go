// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"os"
	"path/filepath"
)

const (
	// ConfigDirName is the directory searched for in every ancestor of the
	// start directory.
	ConfigDirName = ".claude"

	// ConfigFileName is the credentials file expected inside [ConfigDirName].
	ConfigFileName = "env"
)

// Locate searches for a .claude/env file starting at startDir and walking
// up the directory tree to the filesystem root. The match closest to
// startDir wins.
//
// When startDir is empty, the search starts from the directory containing
// the running executable, mirroring how each toolkit process is expected
// to live inside (or below) the repository that carries its configuration.
//
// Returns the path of the first file found, or an [*Error] naming the
// search start and the expected relative path when no ancestor has one.
// Locate only stats files; it never creates or modifies anything.
func Locate(startDir string) (string, error) {
	if startDir == "" {
		exe, err := os.Executable()
		if err != nil {
			return "", &Error{Message: "resolve executable path for config search", Err: err}
		}
		startDir = filepath.Dir(exe)
	}

	absStart, err := filepath.Abs(startDir)
	if err != nil {
		return "", &Error{Message: fmt.Sprintf("resolve config search start %q", startDir), Err: err}
	}

	dir := absStart
	for {
		candidate := filepath.Join(dir, ConfigDirName, ConfigFileName)
		if info, statErr := os.Stat(candidate); statErr == nil && info.Mode().IsRegular() {
			return candidate, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			// Root reached and checked.
			break
		}
		dir = parent
	}

	return "", &Error{Message: fmt.Sprintf(
		"configuration file %s not found: searched from %s to filesystem root; create %s with %s and credentials",
		filepath.Join(ConfigDirName, ConfigFileName), absStart,
		filepath.Join(ConfigDirName, ConfigFileName), KeyBaseURL,
	)}
}
