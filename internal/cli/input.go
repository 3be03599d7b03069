// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// readParams reads one JSON object from r. Empty input and non-object
// JSON are both input errors, reported before any network activity.
func readParams(r io.Reader) (map[string]any, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read stdin: %w", err)
	}

	text := strings.TrimSpace(string(data))
	if text == "" {
		return nil, errors.New("no input provided, expected JSON on stdin")
	}

	var params map[string]any
	if err := json.Unmarshal([]byte(text), &params); err != nil {
		return nil, fmt.Errorf("invalid JSON input: %w", err)
	}

	return params, nil
}

// writeResult prints v as indented JSON followed by a newline.
func writeResult(w io.Writer, v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encode result: %w", err)
	}

	_, err = fmt.Fprintln(w, string(out))
	return err
}

// successMessage is the envelope commands print for operations whose API
// response has no body (deletes, most PUTs).
func successMessage(format string, args ...any) map[string]any {
	return map[string]any{
		"success": true,
		"message": fmt.Sprintf(format, args...),
	}
}

// asString renders a decoded JSON value as a string. Numbers lose any
// trailing ".0" so a JSON 31 and "31" produce the same path or query
// segment.
func asString(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(t)
	default:
		return fmt.Sprintf("%v", t)
	}
}

// stringParam returns params[key] rendered via asString, "" when absent.
func stringParam(params map[string]any, key string) string {
	return asString(params[key])
}

// intParam returns params[key] as an int, or fallback when the key is
// absent or nil. A value that cannot be interpreted as an integer is an
// input error.
func intParam(params map[string]any, key string, fallback int) (int, error) {
	v, ok := params[key]
	if !ok || v == nil {
		return fallback, nil
	}

	switch t := v.(type) {
	case float64:
		return int(t), nil
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(t))
		if err != nil {
			return 0, fmt.Errorf("invalid integer for parameter %s: %q", key, t)
		}
		return n, nil
	default:
		return 0, fmt.Errorf("invalid integer for parameter %s: %v", key, v)
	}
}

// truthy mirrors the loose presence checks of JSON input: nil, "", 0,
// false, and empty lists/objects all count as absent.
func truthy(v any) bool {
	switch t := v.(type) {
	case nil:
		return false
	case string:
		return t != ""
	case float64:
		return t != 0
	case bool:
		return t
	case []any:
		return len(t) > 0
	case map[string]any:
		return len(t) > 0
	default:
		return true
	}
}

// requireParams verifies that every named parameter is present and truthy,
// enumerating all missing names in one error.
func requireParams(params map[string]any, keys ...string) error {
	var missing []string
	for _, key := range keys {
		if !truthy(params[key]) {
			missing = append(missing, key)
		}
	}

	switch len(missing) {
	case 0:
		return nil
	case 1:
		return fmt.Errorf("missing required parameter: %s", missing[0])
	default:
		return fmt.Errorf("missing required parameters: %s", strings.Join(missing, ", "))
	}
}

// stringList renders a JSON value as a list of strings: arrays element by
// element, anything else as a comma-separated string with the parts
// trimmed. Used for labels, fields, and expand parameters that accept
// both forms.
func stringList(v any) []string {
	switch t := v.(type) {
	case nil:
		return nil
	case []any:
		out := make([]string, 0, len(t))
		for _, item := range t {
			out = append(out, asString(item))
		}
		return out
	default:
		parts := strings.Split(asString(v), ",")
		for i := range parts {
			parts[i] = strings.TrimSpace(parts[i])
		}
		return parts
	}
}

// invalidAction formats the shared invalid-action error, listing the valid
// actions in sorted order.
func invalidAction(action string, valid ...string) error {
	return fmt.Errorf("invalid action %q, valid actions: %s", action, strings.Join(valid, ", "))
}
