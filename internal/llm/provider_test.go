package llm

import (
	"context"
	"encoding/json"
	"errors"
	"math"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
)

func TestScripted(t *testing.T) {
	mock := NewScripted(Reply{
		Content: json.RawMessage(`{"notes":[]}`),
		Usage:   Usage{InputTokens: 3, OutputTokens: 4, TotalTokens: 7},
	}).Then(Reply{Err: &ErrRateLimit{}})

	req := Request{Messages: UserMessage("first"), Schema: notesTestSchema()}
	resp, err := mock.Generate(context.Background(), req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Model != ScriptedModel || resp.Usage.TotalTokens != 7 {
		t.Fatalf("unexpected response: %+v", resp)
	}

	_, err = mock.Generate(context.Background(), req)
	var rl *ErrRateLimit
	if !errors.As(err, &rl) {
		t.Fatalf("expected ErrRateLimit, got %v", err)
	}

	if n := len(mock.Requests()); n != 2 {
		t.Fatalf("requests = %d", n)
	}
	if got := mock.Requests()[0].Messages[0].Content; got != "first" {
		t.Fatalf("recorded request content = %q", got)
	}
}

func TestScripted_ExhaustedAnswersEmptyDocument(t *testing.T) {
	mock := NewScripted()

	resp, err := mock.Generate(context.Background(), Request{Schema: notesTestSchema()})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(resp.Content) != `{"notes":[]}` {
		t.Fatalf("content = %s", resp.Content)
	}

	resp, err = mock.Generate(context.Background(), Request{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(resp.Content) != `{}` {
		t.Fatalf("content without schema = %s", resp.Content)
	}
}

func TestZeroValue(t *testing.T) {
	got := zeroValue(map[string]any{
		"type": "object",
		"properties": map[string]any{
			"name":  map[string]any{"type": "string"},
			"count": map[string]any{"type": "integer"},
			"ok":    map[string]any{"type": "boolean"},
			"extra": map[string]any{"type": "string"},
		},
		"required": []any{"name", "count", "ok"},
	})
	b, err := json.Marshal(got)
	if err != nil {
		t.Fatal(err)
	}
	if string(b) != `{"count":0,"name":"","ok":false}` {
		t.Fatalf("zeroValue = %s", b)
	}
}

func TestScripted_ValidatesAgainstSchema(t *testing.T) {
	mock := NewScripted(Reply{Content: json.RawMessage(`{"nope":true}`)})
	_, err := mock.Generate(context.Background(), Request{Schema: notesTestSchema()})
	var inv *ErrInvalidResponse
	if !errors.As(err, &inv) {
		t.Fatalf("expected ErrInvalidResponse, got %v", err)
	}
}

func TestPurpose(t *testing.T) {
	if got := PurposeOf(context.Background()); got != PurposeUnlabeled {
		t.Fatalf("PurposeOf(empty) = %q", got)
	}
	ctx := WithPurpose(context.Background(), PurposeWordNotes)
	if got := PurposeOf(ctx); got != PurposeWordNotes {
		t.Fatalf("PurposeOf = %q", got)
	}
	if got := PurposeOf(WithPurpose(ctx, "")); got != PurposeUnlabeled {
		t.Fatalf("PurposeOf(blank) = %q", got)
	}
}

func TestLookupCost(t *testing.T) {
	tests := []struct {
		model string
		want  *ModelCost
	}{
		{"gpt-4o-mini", &ModelCost{0.15, 0.6}},
		{"claude-haiku-4-5-20251001", &ModelCost{1, 5}},
		{"models/gemini-2.0-flash", &ModelCost{0.1, 0.4}},
		{"gpt-4o-2024-08-06", &ModelCost{2.5, 10}},
		{"mock", nil},
		{"", nil},
	}
	for _, tt := range tests {
		got := LookupCost(tt.model)
		if (got == nil) != (tt.want == nil) {
			t.Errorf("LookupCost(%q) = %v, want %v", tt.model, got, tt.want)
			continue
		}
		if got != nil && *got != *tt.want {
			t.Errorf("LookupCost(%q) = %+v, want %+v", tt.model, *got, *tt.want)
		}
	}
}

func TestModelCost_Cost(t *testing.T) {
	c := ModelCost{InputPerMTok: 1, OutputPerMTok: 5}
	got := c.Cost(1_000_000, 200_000)
	if math.Abs(got-2.0) > 1e-9 {
		t.Fatalf("Cost = %v, want 2.0", got)
	}
}

func TestLoggingProvider(t *testing.T) {
	log, hook := test.NewNullLogger()
	log.SetLevel(logrus.DebugLevel)

	mock := NewScripted(
		Reply{
			Content: json.RawMessage(`{"notes":[]}`),
			Usage:   Usage{InputTokens: 10, OutputTokens: 20},
		},
		Reply{Err: &ErrProviderUnavailable{}},
	)
	p := WithLogging(mock, "mock", log)
	ctx := WithPurpose(context.Background(), "word-notes")

	if _, err := p.Generate(ctx, Request{Schema: notesTestSchema()}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	entry := hook.LastEntry()
	if entry.Level != logrus.InfoLevel {
		t.Fatalf("level = %s", entry.Level)
	}
	if entry.Data["purpose"] != "word-notes" || entry.Data["provider"] != "mock" {
		t.Fatalf("fields = %v", entry.Data)
	}
	if entry.Data["schema"] != "test-word-notes" || entry.Data["input_tokens"] != 10 {
		t.Fatalf("fields = %v", entry.Data)
	}

	if _, err := p.Generate(ctx, Request{}); err == nil {
		t.Fatal("expected error")
	}
	if hook.LastEntry().Level != logrus.WarnLevel {
		t.Fatalf("level = %s", hook.LastEntry().Level)
	}
	if len(hook.Entries) != 2 {
		t.Fatalf("entries = %d", len(hook.Entries))
	}
}
