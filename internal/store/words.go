package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/abhisek/lexiz/internal/wordlist"
)

type wordRepo struct {
	db *sql.DB
}

// queryer is satisfied by *sql.DB and *sql.Tx.
type queryer interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

func clean(w *wordlist.Word) {
	w.Term = strings.TrimSpace(w.Term)
	w.Definition = strings.TrimSpace(w.Definition)
	w.Notes = strings.TrimSpace(w.Notes)
}

func (r *wordRepo) Add(ctx context.Context, w *wordlist.Word) error {
	clean(w)
	if err := wordlist.Validate(w); err != nil {
		return err
	}
	return insertWord(ctx, r.db, w)
}

func insertWord(ctx context.Context, q queryer, w *wordlist.Word) error {
	res, err := q.ExecContext(ctx,
		`INSERT INTO words (list_id, selected, term, definition, notes) VALUES (?, ?, ?, ?, ?)`,
		w.ListID, boolInt(w.Selected), w.Term, w.Definition, w.Notes)
	if err != nil {
		if isForeignKeyErr(err) {
			return fmt.Errorf("list %d: %w", w.ListID, ErrNotFound)
		}
		return fmt.Errorf("insert word: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("insert word: %w", err)
	}
	w.ID = id
	return nil
}

func (r *wordRepo) Update(ctx context.Context, w wordlist.Word) error {
	clean(&w)
	if err := wordlist.Validate(&w); err != nil {
		return err
	}
	res, err := r.db.ExecContext(ctx,
		`UPDATE words SET selected = ?, term = ?, definition = ?, notes = ? WHERE id = ?`,
		boolInt(w.Selected), w.Term, w.Definition, w.Notes, w.ID)
	if err != nil {
		return fmt.Errorf("update word: %w", err)
	}
	return expectOne(res, "word", w.ID)
}

func (r *wordRepo) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM words WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete word: %w", err)
	}
	return expectOne(res, "word", id)
}

func (r *wordRepo) Get(ctx context.Context, id int64) (*wordlist.Word, error) {
	var (
		w   wordlist.Word
		sel int
	)
	err := r.db.QueryRowContext(ctx,
		`SELECT id, list_id, selected, term, definition, notes FROM words WHERE id = ?`, id).
		Scan(&w.ID, &w.ListID, &sel, &w.Term, &w.Definition, &w.Notes)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("word %d: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get word: %w", err)
	}
	w.Selected = sel != 0
	return &w, nil
}

func (r *wordRepo) SetSelected(ctx context.Context, id int64, selected bool) error {
	res, err := r.db.ExecContext(ctx, `UPDATE words SET selected = ? WHERE id = ?`, boolInt(selected), id)
	if err != nil {
		return fmt.Errorf("select word: %w", err)
	}
	return expectOne(res, "word", id)
}

func (r *wordRepo) SetAllSelected(ctx context.Context, listID int64, selected bool) error {
	if _, err := r.db.ExecContext(ctx,
		`UPDATE words SET selected = ? WHERE list_id = ?`, boolInt(selected), listID); err != nil {
		return fmt.Errorf("select words: %w", err)
	}
	return nil
}

func (r *wordRepo) Import(ctx context.Context, listID int64, words []wordlist.Word) (int, error) {
	for i := range words {
		clean(&words[i])
		if err := wordlist.Validate(&words[i]); err != nil {
			return 0, fmt.Errorf("word %d: %w", i+1, err)
		}
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	for i := range words {
		words[i].ListID = listID
		if err := insertWord(ctx, tx, &words[i]); err != nil {
			return 0, err
		}
	}
	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit: %w", err)
	}
	return len(words), nil
}

func (r *wordRepo) ByList(ctx context.Context, listID int64) ([]wordlist.Word, error) {
	return queryWords(ctx, r.db, listID)
}

func queryWords(ctx context.Context, q queryer, listID int64) ([]wordlist.Word, error) {
	rows, err := q.QueryContext(ctx,
		`SELECT id, list_id, selected, term, definition, notes FROM words WHERE list_id = ? ORDER BY id`, listID)
	if err != nil {
		return nil, fmt.Errorf("query words: %w", err)
	}
	defer rows.Close()

	var out []wordlist.Word
	for rows.Next() {
		var (
			w   wordlist.Word
			sel int
		)
		if err := rows.Scan(&w.ID, &w.ListID, &sel, &w.Term, &w.Definition, &w.Notes); err != nil {
			return nil, fmt.Errorf("scan word: %w", err)
		}
		w.Selected = sel != 0
		out = append(out, w)
	}
	return out, rows.Err()
}

func isForeignKeyErr(err error) bool {
	return strings.Contains(err.Error(), "FOREIGN KEY constraint failed")
}
