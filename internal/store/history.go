package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/abhisek/lexiz/internal/session"
	"github.com/google/uuid"
)

type historyRepo struct {
	db  *sql.DB
	now func() time.Time
}

func (r *historyRepo) Start(ctx context.Context, listID int64, listTitle string, itemCount int) (string, error) {
	id := uuid.New().String()

	var list any
	if listID != 0 {
		list = listID
	}
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO study_sessions (id, list_id, list_title, item_count, started_at)
		VALUES (?, ?, ?, ?, ?)`,
		id, list, listTitle, itemCount, formatTime(r.now()))
	if err != nil {
		return "", fmt.Errorf("start session: %w", err)
	}
	return id, nil
}

func (r *historyRepo) RecordAnswer(ctx context.Context, rec AnswerRecord) error {
	if rec.AnsweredAt.IsZero() {
		rec.AnsweredAt = r.now()
	}
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO answer_events
			(session_id, sequence, prompt, direction, answer, correct, overridden, answered_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.SessionID, rec.Sequence, rec.Prompt, directionString(rec.Direction), rec.Answer,
		boolInt(rec.Correct), boolInt(rec.Overridden), formatTime(rec.AnsweredAt))
	if err != nil {
		if isForeignKeyErr(err) {
			return fmt.Errorf("session %s: %w", rec.SessionID, ErrNotFound)
		}
		return fmt.Errorf("record answer: %w", err)
	}
	return nil
}

func (r *historyRepo) Finish(ctx context.Context, id string, sum session.Summary, completed bool) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE study_sessions
		SET finished_at = ?, completed = ?, correct_count = ?, total_asked = ?, accuracy = ?
		WHERE id = ?`,
		formatTime(r.now()), boolInt(completed), sum.CorrectCount, sum.TotalAsked, sum.Accuracy, id)
	if err != nil {
		return fmt.Errorf("finish session: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("finish session: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("session %s: %w", id, ErrNotFound)
	}
	return nil
}

func (r *historyRepo) Recent(ctx context.Context, limit int) ([]SessionRecord, error) {
	query := `
		SELECT id, COALESCE(list_id, 0), list_title, item_count, started_at,
		       COALESCE(finished_at, ''), completed, correct_count, total_asked, accuracy
		FROM study_sessions
		ORDER BY started_at DESC, rowid DESC`
	var args []any
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query sessions: %w", err)
	}
	defer rows.Close()

	var out []SessionRecord
	for rows.Next() {
		var (
			rec               SessionRecord
			started, finished string
			completed         int
		)
		if err := rows.Scan(&rec.ID, &rec.ListID, &rec.ListTitle, &rec.ItemCount, &started,
			&finished, &completed, &rec.Summary.CorrectCount, &rec.Summary.TotalAsked,
			&rec.Summary.Accuracy); err != nil {
			return nil, fmt.Errorf("scan session: %w", err)
		}
		if rec.StartedAt, err = parseTime(started); err != nil {
			return nil, err
		}
		if finished != "" {
			if rec.FinishedAt, err = parseTime(finished); err != nil {
				return nil, err
			}
		}
		rec.Completed = completed != 0
		out = append(out, rec)
	}
	return out, rows.Err()
}

func (r *historyRepo) Answers(ctx context.Context, sessionID string) ([]AnswerRecord, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT sequence, prompt, direction, answer, correct, overridden, answered_at
		FROM answer_events
		WHERE session_id = ?
		ORDER BY sequence`, sessionID)
	if err != nil {
		return nil, fmt.Errorf("query answers: %w", err)
	}
	defer rows.Close()

	var out []AnswerRecord
	for rows.Next() {
		var (
			rec                 AnswerRecord
			dir, at             string
			correct, overridden int
		)
		if err := rows.Scan(&rec.Sequence, &rec.Prompt, &dir, &rec.Answer, &correct, &overridden, &at); err != nil {
			return nil, fmt.Errorf("scan answer: %w", err)
		}
		rec.SessionID = sessionID
		rec.Direction = parseDirection(dir)
		rec.Correct = correct != 0
		rec.Overridden = overridden != 0
		if rec.AnsweredAt, err = parseTime(at); err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

func directionString(d session.Direction) string {
	if d == session.DefinitionToTerm {
		return "definition_to_term"
	}
	return "term_to_definition"
}

func parseDirection(s string) session.Direction {
	if s == "definition_to_term" {
		return session.DefinitionToTerm
	}
	return session.TermToDefinition
}
