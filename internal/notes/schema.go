package notes

import "github.com/abhisek/lexiz/internal/llm"

// Schema defines the JSON structure of a note suggestion response.
var Schema = &llm.Schema{
	Name:        "word-notes",
	Description: "Short memory hints for vocabulary terms",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"notes": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"term": map[string]any{
							"type":        "string",
							"description": "The term exactly as given",
						},
						"note": map[string]any{
							"type":        "string",
							"description": "A memory hint of at most 15 words",
						},
					},
					"required":             []any{"term", "note"},
					"additionalProperties": false,
				},
			},
		},
		"required":             []any{"notes"},
		"additionalProperties": false,
	},
}
