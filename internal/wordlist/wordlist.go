// Package wordlist holds the word-list domain: lists, words, the study set
// handed to a session, and the plain-text import/export format.
package wordlist

import "github.com/abhisek/lexiz/internal/session"

// Word is a single term/definition pair in a list.
type Word struct {
	ID         int64
	ListID     int64
	Term       string `validate:"required,max=500"`
	Definition string `validate:"max=2000"`
	Notes      string `validate:"max=2000"`
	Selected   bool
}

// List is a named collection of words.
type List struct {
	ID    int64
	Title string `validate:"required,max=200"`
	Words []Word `validate:"dive"`
}

// Item converts w into a session item.
func (w Word) Item() session.Item {
	return session.Item{
		Term:       w.Term,
		Definition: w.Definition,
		Notes:      w.Notes,
	}
}

// SelectedCount returns how many words are marked for study.
func (l *List) SelectedCount() int {
	n := 0
	for _, w := range l.Words {
		if w.Selected {
			n++
		}
	}
	return n
}

// StudyWords returns the selected words, or every word when none is selected.
func (l *List) StudyWords() []Word {
	if l.SelectedCount() == 0 {
		return l.Words
	}
	out := make([]Word, 0, l.SelectedCount())
	for _, w := range l.Words {
		if w.Selected {
			out = append(out, w)
		}
	}
	return out
}

// StudyItems returns the study set as session items.
func (l *List) StudyItems() []session.Item {
	words := l.StudyWords()
	items := make([]session.Item, len(words))
	for i, w := range words {
		items[i] = w.Item()
	}
	return items
}
