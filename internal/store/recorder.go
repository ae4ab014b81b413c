package store

import (
	"context"

	"github.com/abhisek/lexiz/internal/session"
	"github.com/sirupsen/logrus"
)

// Recorder writes a session's graded answers and final summary to the
// history. Use Observe as the session observer.
//
// An incorrect answer is held until the session tells whether it was
// overridden, so each prompt yields exactly one answer record.
type Recorder struct {
	ctx  context.Context
	repo HistoryRepo
	log  logrus.FieldLogger

	id       string
	seq      int
	prompt   session.PromptReady
	pending  *session.AnswerOutcome
	finished bool
}

// StartRecording opens a history entry for a session over itemCount items.
func StartRecording(ctx context.Context, repo HistoryRepo, log logrus.FieldLogger, listID int64, listTitle string, itemCount int) (*Recorder, error) {
	id, err := repo.Start(ctx, listID, listTitle, itemCount)
	if err != nil {
		return nil, err
	}
	return &Recorder{
		ctx:  ctx,
		repo: repo,
		log:  log.WithField("session", id),
		id:   id,
	}, nil
}

// ID returns the history session ID.
func (r *Recorder) ID() string { return r.id }

// Observe handles one session event. Write failures are logged, never
// returned, so a broken history cannot interrupt studying.
func (r *Recorder) Observe(ev session.Event) {
	switch e := ev.(type) {
	case session.PromptReady:
		r.flushPending()
		r.prompt = e
	case session.AnswerOutcome:
		if !e.Correct {
			p := e
			r.pending = &p
			return
		}
		r.pending = nil
		r.record(e)
	case session.SessionComplete:
		r.flushPending()
		r.finish(session.Summary{
			CorrectCount: e.CorrectCount,
			TotalAsked:   e.TotalAsked,
			Accuracy:     e.Accuracy,
		}, true)
	}
}

// Abandon closes the history entry for a session left before completion.
// It is a no-op once the session completed.
func (r *Recorder) Abandon(sum session.Summary) {
	r.flushPending()
	r.finish(sum, false)
}

func (r *Recorder) flushPending() {
	if r.pending != nil {
		r.record(*r.pending)
		r.pending = nil
	}
}

func (r *Recorder) record(o session.AnswerOutcome) {
	r.seq++
	err := r.repo.RecordAnswer(r.ctx, AnswerRecord{
		SessionID:  r.id,
		Sequence:   r.seq,
		Prompt:     r.prompt.Text,
		Direction:  r.prompt.Direction,
		Answer:     o.Answer,
		Correct:    o.Correct,
		Overridden: o.Overridden,
	})
	if err != nil {
		r.log.WithError(err).Warn("record answer")
	}
}

func (r *Recorder) finish(sum session.Summary, completed bool) {
	if r.finished {
		return
	}
	r.finished = true
	if err := r.repo.Finish(r.ctx, r.id, sum, completed); err != nil {
		r.log.WithError(err).Warn("finish session")
		return
	}
	r.log.WithFields(logrus.Fields{
		"correct":   sum.CorrectCount,
		"asked":     sum.TotalAsked,
		"completed": completed,
	}).Info("session recorded")
}
