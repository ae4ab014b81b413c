package llm

import (
	"testing"

	"google.golang.org/genai"
)

func TestGeminiModelMapping(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"gemini-flash", "gemini-2.0-flash"},
		{"gemini-pro", "gemini-2.5-pro"},
		{"gemini-2.5-flash", "gemini-2.5-flash"},
	}
	for _, tt := range tests {
		if got := resolveModel(tt.input, geminiModels); got != tt.expected {
			t.Errorf("resolveModel(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}

func TestGeminiSchema(t *testing.T) {
	schema := geminiSchema(notesTestSchema().Definition)

	if schema.Type != genai.TypeObject {
		t.Fatalf("root type = %v", schema.Type)
	}
	if len(schema.Required) != 1 || schema.Required[0] != "notes" {
		t.Fatalf("required = %v", schema.Required)
	}
	notes := schema.Properties["notes"]
	if notes == nil || notes.Type != genai.TypeArray {
		t.Fatalf("notes = %+v", notes)
	}
	item := notes.Items
	if item == nil || item.Type != genai.TypeObject {
		t.Fatalf("items = %+v", item)
	}
	if item.Properties["term"].Type != genai.TypeString {
		t.Errorf("term type = %v", item.Properties["term"].Type)
	}
	if len(item.Required) != 2 {
		t.Errorf("item required = %v", item.Required)
	}
}

func TestGeminiSchema_Enum(t *testing.T) {
	schema := geminiSchema(map[string]any{
		"type": "string",
		"enum": []any{"a", "b"},
	})
	if len(schema.Enum) != 2 || schema.Enum[1] != "b" {
		t.Fatalf("enum = %v", schema.Enum)
	}
}

func TestGeminiProvider_RequiresKey(t *testing.T) {
	if _, err := NewGeminiProvider(t.Context(), GeminiConfig{}); err == nil {
		t.Fatal("expected error without API key")
	}
}
