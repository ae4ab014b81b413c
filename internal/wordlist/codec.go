package wordlist

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Delimiter separates a term from its definition in a line.
const Delimiter = " - "

// ParseLine parses a line of the form "Term - Definition (Notes)".
//
// Notes are optional. A line without the delimiter becomes a term with an
// empty definition. ok is false for blank lines.
func ParseLine(line string) (w Word, ok bool) {
	line = strings.TrimRight(line, "\r\n")
	if strings.TrimSpace(line) == "" {
		return Word{}, false
	}

	term, rest, found := strings.Cut(line, Delimiter)
	if !found {
		return Word{Term: strings.TrimSpace(line)}, true
	}

	w.Term = strings.TrimSpace(term)
	rest = strings.TrimSpace(rest)
	if strings.HasSuffix(rest, ")") {
		if open := strings.LastIndex(rest, "("); open >= 0 {
			w.Notes = strings.TrimSpace(rest[open+1 : len(rest)-1])
			rest = rest[:open]
		}
	}
	w.Definition = strings.TrimSpace(rest)
	return w, true
}

// Parse reads every line from r. Blank lines are skipped.
func Parse(r io.Reader) ([]Word, error) {
	var words []Word
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for sc.Scan() {
		if w, ok := ParseLine(sc.Text()); ok {
			words = append(words, w)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read word list: %w", err)
	}
	return words, nil
}

// FormatLine renders w in the import format. Empty parts are omitted.
func FormatLine(w Word) string {
	if w.Definition == "" && w.Notes == "" {
		return w.Term
	}
	line := w.Term + Delimiter + w.Definition
	if w.Notes != "" {
		if w.Definition != "" {
			line += " "
		}
		line += "(" + w.Notes + ")"
	}
	return line
}

// Write renders words to out, one per line.
func Write(out io.Writer, words []Word) error {
	bw := bufio.NewWriter(out)
	for _, w := range words {
		if _, err := bw.WriteString(FormatLine(w) + "\n"); err != nil {
			return fmt.Errorf("write word list: %w", err)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("write word list: %w", err)
	}
	return nil
}
