package store

import (
	"context"
	"time"

	"github.com/abhisek/lexiz/internal/session"
	"github.com/abhisek/lexiz/internal/wordlist"
)

// ListSummary is a list row with word counts, without the words.
type ListSummary struct {
	ID            int64
	Title         string
	WordCount     int
	SelectedCount int
	CreatedAt     time.Time
}

// ListRepo manages word lists.
type ListRepo interface {
	// Create stores a new empty list. Returns ErrTitleTaken on a duplicate title.
	Create(ctx context.Context, title string) (*wordlist.List, error)

	// Rename changes a list's title.
	Rename(ctx context.Context, id int64, title string) error

	// Delete removes a list and all its words.
	Delete(ctx context.Context, id int64) error

	// All returns every list ordered by title.
	All(ctx context.Context) ([]ListSummary, error)

	// Get returns a list with its words in insertion order.
	Get(ctx context.Context, id int64) (*wordlist.List, error)

	// FindByTitle returns the list with exactly this title.
	FindByTitle(ctx context.Context, title string) (*wordlist.List, error)
}

// WordRepo manages the words inside lists.
type WordRepo interface {
	// Add stores w and sets its ID.
	Add(ctx context.Context, w *wordlist.Word) error

	// Update overwrites term, definition, notes and selection of w.ID.
	Update(ctx context.Context, w wordlist.Word) error

	// Delete removes a word.
	Delete(ctx context.Context, id int64) error

	// Get returns a single word.
	Get(ctx context.Context, id int64) (*wordlist.Word, error)

	// SetSelected marks a word for (or removes it from) the study set.
	SetSelected(ctx context.Context, id int64, selected bool) error

	// SetAllSelected applies selected to every word of a list.
	SetAllSelected(ctx context.Context, listID int64, selected bool) error

	// Import appends words to a list in one transaction and returns the count.
	Import(ctx context.Context, listID int64, words []wordlist.Word) (int, error)

	// ByList returns the words of a list in insertion order.
	ByList(ctx context.Context, listID int64) ([]wordlist.Word, error)
}

// SessionRecord is one study session in the history.
type SessionRecord struct {
	ID         string
	ListID     int64 // 0 once the list was deleted
	ListTitle  string
	ItemCount  int
	StartedAt  time.Time
	FinishedAt time.Time // zero while unfinished or abandoned
	Completed  bool
	Summary    session.Summary
}

// AnswerRecord is one graded answer inside a session.
type AnswerRecord struct {
	SessionID  string
	Sequence   int
	Prompt     string
	Direction  session.Direction
	Answer     string
	Correct    bool
	Overridden bool
	AnsweredAt time.Time
}

// HistoryRepo records session results. It never stores mastery levels.
type HistoryRepo interface {
	// Start records a new session and returns its ID.
	Start(ctx context.Context, listID int64, listTitle string, itemCount int) (string, error)

	// RecordAnswer appends a graded answer to a session.
	RecordAnswer(ctx context.Context, rec AnswerRecord) error

	// Finish stores the final statistics. completed is false for abandoned sessions.
	Finish(ctx context.Context, id string, sum session.Summary, completed bool) error

	// Recent returns the latest sessions, newest first. limit <= 0 means all.
	Recent(ctx context.Context, limit int) ([]SessionRecord, error)

	// Answers returns the answers of a session in order.
	Answers(ctx context.Context, sessionID string) ([]AnswerRecord, error)
}
