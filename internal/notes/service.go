// Package notes asks an LLM for short memory hints for words that have
// no notes yet. Suggestions are study aids only and never affect grading.
package notes

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/abhisek/lexiz/internal/llm"
	"github.com/abhisek/lexiz/internal/wordlist"
)

// Suggestion is a proposed note for one word.
type Suggestion struct {
	WordID int64
	Term   string
	Note   string
}

// Service generates note suggestions.
type Service struct {
	provider llm.Provider
	cfg      Config
}

// NewService creates a note suggestion service.
func NewService(provider llm.Provider, cfg Config) *Service {
	if cfg.BatchSize < 1 {
		cfg.BatchSize = DefaultConfig().BatchSize
	}
	return &Service{provider: provider, cfg: cfg}
}

type notesOutput struct {
	Notes []struct {
		Term string `json:"term"`
		Note string `json:"note"`
	} `json:"notes"`
}

// Suggest returns a suggestion for every word in words that has no notes
// and got a usable answer from the model, in input order. Words that
// already have notes are not sent.
func (s *Service) Suggest(ctx context.Context, words []wordlist.Word) ([]Suggestion, error) {
	ctx = llm.WithPurpose(ctx, llm.PurposeWordNotes)

	var pending []wordlist.Word
	for _, w := range words {
		if needsNotes(w) {
			pending = append(pending, w)
		}
	}

	var out []Suggestion
	for start := 0; start < len(pending); start += s.cfg.BatchSize {
		end := min(start+s.cfg.BatchSize, len(pending))
		batch, err := s.suggestBatch(ctx, pending[start:end])
		if err != nil {
			return out, err
		}
		out = append(out, batch...)
	}
	return out, nil
}

// NeedsNotes reports whether any of words would be sent to the model.
func NeedsNotes(words []wordlist.Word) bool {
	for _, w := range words {
		if needsNotes(w) {
			return true
		}
	}
	return false
}

func needsNotes(w wordlist.Word) bool {
	return strings.TrimSpace(w.Notes) == "" && strings.TrimSpace(w.Term) != ""
}

func (s *Service) suggestBatch(ctx context.Context, words []wordlist.Word) ([]Suggestion, error) {
	resp, err := s.provider.Generate(ctx, llm.Request{
		System:      systemPrompt,
		Messages:    llm.UserMessage(buildUserMessage(words)),
		Schema:      Schema,
		MaxTokens:   s.cfg.MaxTokens,
		Temperature: s.cfg.Temperature,
	})
	if err != nil {
		return nil, fmt.Errorf("note suggestion: %w", err)
	}

	var parsed notesOutput
	if err := json.Unmarshal(resp.Content, &parsed); err != nil {
		return nil, fmt.Errorf("parse note suggestion: %w", err)
	}

	byTerm := make(map[string]string, len(parsed.Notes))
	for _, n := range parsed.Notes {
		note := clip(strings.TrimSpace(n.Note))
		if note == "" {
			continue
		}
		key := strings.ToLower(strings.TrimSpace(n.Term))
		if _, dup := byTerm[key]; !dup {
			byTerm[key] = note
		}
	}

	var out []Suggestion
	for _, w := range words {
		if note, ok := byTerm[strings.ToLower(strings.TrimSpace(w.Term))]; ok {
			out = append(out, Suggestion{WordID: w.ID, Term: w.Term, Note: note})
		}
	}
	return out, nil
}

// Apply copies suggestions into the matching words of ws and returns the
// words that changed.
func Apply(ws []wordlist.Word, suggestions []Suggestion) []wordlist.Word {
	byID := make(map[int64]string, len(suggestions))
	for _, s := range suggestions {
		byID[s.WordID] = s.Note
	}
	var changed []wordlist.Word
	for i := range ws {
		if note, ok := byID[ws[i].ID]; ok && ws[i].Notes == "" {
			ws[i].Notes = note
			changed = append(changed, ws[i])
		}
	}
	return changed
}

func clip(s string) string {
	r := []rune(s)
	if len(r) <= MaxNoteLength {
		return s
	}
	return strings.TrimSpace(string(r[:MaxNoteLength-1])) + "…"
}
