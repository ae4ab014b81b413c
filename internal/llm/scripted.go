package llm

import (
	"context"
	"encoding/json"
	"sync"
)

// ScriptedModel is the model ID reported by a Scripted provider.
const ScriptedModel = "mock"

// Reply is one scripted answer. Err, when set, is returned instead of
// Content.
type Reply struct {
	Content json.RawMessage
	Usage   Usage
	Err     error
}

// Scripted is the "mock" provider. It plays back replies in order and,
// once they run out, answers with the smallest document the request schema
// accepts: for word notes that is an empty notes array, so an offline run
// suggests nothing instead of failing. Every request is kept.
type Scripted struct {
	mu       sync.Mutex
	replies  []Reply
	requests []Request
}

// NewScripted returns a provider that plays back replies.
func NewScripted(replies ...Reply) *Scripted {
	return &Scripted{replies: replies}
}

// Then queues another reply and returns s.
func (s *Scripted) Then(r Reply) *Scripted {
	s.mu.Lock()
	s.replies = append(s.replies, r)
	s.mu.Unlock()
	return s
}

// Requests returns a copy of every request received so far.
func (s *Scripted) Requests() []Request {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Request(nil), s.requests...)
}

func (s *Scripted) ModelID() string { return ScriptedModel }

// Generate returns the next reply. Scripted content must satisfy
// req.Schema like a real provider's would.
func (s *Scripted) Generate(_ context.Context, req Request) (*Response, error) {
	s.mu.Lock()
	s.requests = append(s.requests, req)
	r := Reply{Content: emptyDocument(req.Schema)}
	if len(s.replies) > 0 {
		r, s.replies = s.replies[0], s.replies[1:]
	}
	s.mu.Unlock()

	if r.Err != nil {
		return nil, r.Err
	}
	if err := validateResponse(req.Schema, r.Content); err != nil {
		return nil, err
	}
	return &Response{
		Content:    r.Content,
		Usage:      r.Usage,
		Model:      ScriptedModel,
		StopReason: "end",
	}, nil
}

func emptyDocument(schema *Schema) json.RawMessage {
	if schema == nil {
		return json.RawMessage(`{}`)
	}
	v := zeroValue(schema.Definition)
	if v == nil {
		return json.RawMessage(`{}`)
	}
	b, err := json.Marshal(v)
	if err != nil {
		return json.RawMessage(`{}`)
	}
	return b
}

// zeroValue builds the empty value of a JSON schema node. Objects carry
// only their required properties.
func zeroValue(node map[string]any) any {
	switch node["type"] {
	case "object":
		props, _ := node["properties"].(map[string]any)
		obj := make(map[string]any)
		for _, name := range requiredProps(node["required"]) {
			sub, _ := props[name].(map[string]any)
			obj[name] = zeroValue(sub)
		}
		return obj
	case "array":
		return []any{}
	case "string":
		return ""
	case "integer", "number":
		return 0
	case "boolean":
		return false
	}
	return nil
}

func requiredProps(v any) []string {
	switch names := v.(type) {
	case []string:
		return names
	case []any:
		out := make([]string, 0, len(names))
		for _, n := range names {
			if s, ok := n.(string); ok {
				out = append(out, s)
			}
		}
		return out
	}
	return nil
}
