package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/abhisek/lexiz/internal/wordlist"
)

type listRepo struct {
	db  *sql.DB
	now func() time.Time
}

func (r *listRepo) Create(ctx context.Context, title string) (*wordlist.List, error) {
	l := &wordlist.List{Title: strings.TrimSpace(title)}
	if err := wordlist.Validate(l); err != nil {
		return nil, err
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	if err := titleFree(ctx, tx, l.Title, 0); err != nil {
		return nil, err
	}

	res, err := tx.ExecContext(ctx,
		`INSERT INTO word_lists (title, created_at) VALUES (?, ?)`,
		l.Title, formatTime(r.now()))
	if err != nil {
		return nil, fmt.Errorf("insert list: %w", err)
	}
	if l.ID, err = res.LastInsertId(); err != nil {
		return nil, fmt.Errorf("insert list: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit: %w", err)
	}
	return l, nil
}

func (r *listRepo) Rename(ctx context.Context, id int64, title string) error {
	title = strings.TrimSpace(title)
	if err := wordlist.Validate(&wordlist.List{Title: title}); err != nil {
		return err
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	if err := titleFree(ctx, tx, title, id); err != nil {
		return err
	}
	res, err := tx.ExecContext(ctx, `UPDATE word_lists SET title = ? WHERE id = ?`, title, id)
	if err != nil {
		return fmt.Errorf("rename list: %w", err)
	}
	if err := expectOne(res, "list", id); err != nil {
		return err
	}
	return tx.Commit()
}

func (r *listRepo) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM word_lists WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete list: %w", err)
	}
	return expectOne(res, "list", id)
}

func (r *listRepo) All(ctx context.Context) ([]ListSummary, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT l.id, l.title, l.created_at,
		       COUNT(w.id),
		       COALESCE(SUM(w.selected), 0)
		FROM word_lists l
		LEFT JOIN words w ON w.list_id = l.id
		GROUP BY l.id
		ORDER BY l.title COLLATE NOCASE, l.id`)
	if err != nil {
		return nil, fmt.Errorf("query lists: %w", err)
	}
	defer rows.Close()

	var out []ListSummary
	for rows.Next() {
		var (
			ls      ListSummary
			created string
		)
		if err := rows.Scan(&ls.ID, &ls.Title, &created, &ls.WordCount, &ls.SelectedCount); err != nil {
			return nil, fmt.Errorf("scan list: %w", err)
		}
		if ls.CreatedAt, err = parseTime(created); err != nil {
			return nil, err
		}
		out = append(out, ls)
	}
	return out, rows.Err()
}

func (r *listRepo) Get(ctx context.Context, id int64) (*wordlist.List, error) {
	l := &wordlist.List{ID: id}
	err := r.db.QueryRowContext(ctx, `SELECT title FROM word_lists WHERE id = ?`, id).Scan(&l.Title)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("list %d: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get list: %w", err)
	}
	if l.Words, err = queryWords(ctx, r.db, id); err != nil {
		return nil, err
	}
	return l, nil
}

func (r *listRepo) FindByTitle(ctx context.Context, title string) (*wordlist.List, error) {
	var id int64
	err := r.db.QueryRowContext(ctx,
		`SELECT id FROM word_lists WHERE title = ?`, strings.TrimSpace(title)).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("list %q: %w", title, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("find list: %w", err)
	}
	return r.Get(ctx, id)
}

// titleFree fails with ErrTitleTaken if another list (not self) uses title.
func titleFree(ctx context.Context, tx *sql.Tx, title string, self int64) error {
	var id int64
	err := tx.QueryRowContext(ctx, `SELECT id FROM word_lists WHERE title = ?`, title).Scan(&id)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return nil
	case err != nil:
		return fmt.Errorf("check title: %w", err)
	case id == self:
		return nil
	default:
		return fmt.Errorf("%q: %w", title, ErrTitleTaken)
	}
}

func expectOne(res sql.Result, what string, id int64) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s %d: %w", what, id, err)
	}
	if n == 0 {
		return fmt.Errorf("%s %d: %w", what, id, ErrNotFound)
	}
	return nil
}
