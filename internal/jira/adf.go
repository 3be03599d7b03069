package jira

// TextToADF wraps plain text in the minimal Atlassian Document Format
// structure that Jira Cloud API v3 requires for rich-text fields such as
// issue descriptions and comment bodies: a single paragraph with one text
// node.
func TextToADF(text string) map[string]any {
	return map[string]any{
		"type":    "doc",
		"version": 1,
		"content": []any{
			map[string]any{
				"type": "paragraph",
				"content": []any{
					map[string]any{"type": "text", "text": text},
				},
			},
		},
	}
}
