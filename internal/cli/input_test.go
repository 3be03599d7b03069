// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cli

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadParams_ValidObject(t *testing.T) {
	// Act
	params, err := readParams(strings.NewReader(`{"issue_key": "PROJ-1", "max_results": 10}`))

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "PROJ-1", params["issue_key"])
	assert.Equal(t, float64(10), params["max_results"])
}

func TestReadParams_EmptyInput(t *testing.T) {
	// Act
	_, err := readParams(strings.NewReader("   \n"))

	// Assert
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no input provided")
}

func TestReadParams_InvalidJSON(t *testing.T) {
	// Act
	_, err := readParams(strings.NewReader("{not json"))

	// Assert
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid JSON input")
}

func TestAsString(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want string
	}{
		{"nil", nil, ""},
		{"string", "abc", "abc"},
		{"whole number", float64(31), "31"},
		{"fractional number", 1.5, "1.5"},
		{"bool", true, "true"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, asString(tt.in))
		})
	}
}

func TestRequireParams_EnumeratesAllMissing(t *testing.T) {
	// Arrange
	params := map[string]any{"project_key": "PROJ", "summary": ""}

	// Act
	err := requireParams(params, "project_key", "summary", "issue_type")

	// Assert
	require.Error(t, err)
	assert.Equal(t, "missing required parameters: summary, issue_type", err.Error())
}

func TestRequireParams_SingularMessage(t *testing.T) {
	// Act
	err := requireParams(map[string]any{}, "issue_key")

	// Assert
	require.Error(t, err)
	assert.Equal(t, "missing required parameter: issue_key", err.Error())
}

func TestStringList(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want []string
	}{
		{"array", []any{"a", "b"}, []string{"a", "b"}},
		{"comma string", "a, b ,c", []string{"a", "b", "c"}},
		{"single value", "a", []string{"a"}},
		{"nil", nil, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, stringList(tt.in))
		})
	}
}

func TestIntParam(t *testing.T) {
	// Arrange
	params := map[string]any{"max_results": float64(25), "start_at": "5", "bad": "x"}

	// Act / Assert
	n, err := intParam(params, "max_results", 50)
	require.NoError(t, err)
	assert.Equal(t, 25, n)

	n, err = intParam(params, "start_at", 0)
	require.NoError(t, err)
	assert.Equal(t, 5, n)

	n, err = intParam(params, "absent", 50)
	require.NoError(t, err)
	assert.Equal(t, 50, n)

	_, err = intParam(params, "bad", 0)
	require.Error(t, err)
}

func TestWriteResult_Indented(t *testing.T) {
	// Act
	var sb strings.Builder
	err := writeResult(&sb, map[string]any{"key": "PROJ-1"})

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "{\n  \"key\": \"PROJ-1\"\n}\n", sb.String())
}
