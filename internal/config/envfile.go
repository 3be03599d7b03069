// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"os"
	"strings"
)

// ParseEnvFile reads a .claude/env file and decodes its KEY=VALUE lines
// into a map.
//
// Parsing is deliberately lenient so the file can carry comments and
// stray text without breaking every script that reads it:
//   - leading/trailing whitespace on a line is ignored;
//   - empty lines and lines starting with '#' are skipped;
//   - lines without an '=' are skipped silently;
//   - the line splits on the first '=', key and value are trimmed;
//   - values are stored verbatim, quotes are not stripped;
//   - a later occurrence of a key overwrites an earlier one.
//
// A read failure surfaces as an [*Error] wrapping the underlying cause.
func ParseEnvFile(path string) (map[string]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &Error{Message: fmt.Sprintf("read configuration file %s", path), Err: err}
	}

	vars := make(map[string]string)
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		key, value, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}
		key = strings.TrimSpace(key)
		if key == "" {
			continue
		}
		vars[key] = strings.TrimSpace(value)
	}

	return vars, nil
}
