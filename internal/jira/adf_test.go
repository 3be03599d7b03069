// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package jira

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTextToADF(t *testing.T) {
	// Act
	doc := TextToADF("hello world")

	// Assert
	assert.Equal(t, map[string]any{
		"type":    "doc",
		"version": 1,
		"content": []any{
			map[string]any{
				"type": "paragraph",
				"content": []any{
					map[string]any{"type": "text", "text": "hello world"},
				},
			},
		},
	}, doc)
}
