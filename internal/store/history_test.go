package store

import (
	"context"
	"testing"

	"github.com/abhisek/lexiz/internal/logging"
	"github.com/abhisek/lexiz/internal/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHistoryStartFinishRecent(t *testing.T) {
	s := openTestStore(t)
	repo := s.HistoryRepo()
	ctx := context.Background()
	l := newList(t, s, "animals")

	first, err := repo.Start(ctx, l.ID, "animals", 3)
	require.NoError(t, err)
	second, err := repo.Start(ctx, l.ID, "animals", 3)
	require.NoError(t, err)
	assert.NotEqual(t, first, second)

	sum := session.Summary{CorrectCount: 6, TotalAsked: 8, Accuracy: 0.75}
	require.NoError(t, repo.Finish(ctx, first, sum, true))
	require.ErrorIs(t, repo.Finish(ctx, "missing", sum, true), ErrNotFound)

	recent, err := repo.Recent(ctx, 0)
	require.NoError(t, err)
	require.Len(t, recent, 2)
	assert.Equal(t, second, recent[0].ID, "newest first")
	assert.True(t, recent[0].FinishedAt.IsZero())
	assert.False(t, recent[0].Completed)

	assert.Equal(t, first, recent[1].ID)
	assert.True(t, recent[1].Completed)
	assert.Equal(t, sum, recent[1].Summary)
	assert.Equal(t, l.ID, recent[1].ListID)
	assert.Equal(t, 3, recent[1].ItemCount)

	limited, err := repo.Recent(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, limited, 1)
}

func TestHistorySurvivesListDeletion(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	l := newList(t, s, "animals")

	id, err := s.HistoryRepo().Start(ctx, l.ID, "animals", 1)
	require.NoError(t, err)
	require.NoError(t, s.ListRepo().Delete(ctx, l.ID))

	recent, err := s.HistoryRepo().Recent(ctx, 0)
	require.NoError(t, err)
	require.Len(t, recent, 1)
	assert.Equal(t, id, recent[0].ID)
	assert.Equal(t, int64(0), recent[0].ListID)
	assert.Equal(t, "animals", recent[0].ListTitle)
}

func TestRecordAnswerUnknownSession(t *testing.T) {
	s := openTestStore(t)
	err := s.HistoryRepo().RecordAnswer(context.Background(), AnswerRecord{SessionID: "nope", Sequence: 1})
	require.ErrorIs(t, err, ErrNotFound)
}

func TestRecorder_FullSession(t *testing.T) {
	s := openTestStore(t)
	repo := s.HistoryRepo()
	ctx := context.Background()

	rec, err := StartRecording(ctx, repo, logging.Discard(), 0, "adhoc", 1)
	require.NoError(t, err)

	sess := session.New(
		[]session.Item{{Term: "cat", Definition: "feline"}},
		session.WithSeed(1),
		session.WithObserver(rec.Observe),
	)
	require.NoError(t, sess.Start())

	// Wrong and confirmed, wrong and overridden, then correct.
	_, err = sess.SubmitAnswer("dog")
	require.NoError(t, err)
	_, err = sess.ResolveOverride(false) // level 1
	require.NoError(t, err)
	_, err = sess.SubmitAnswer("kitty")
	require.NoError(t, err)
	_, err = sess.ResolveOverride(true) // level 2
	require.NoError(t, err)
	_, err = sess.SubmitAnswer("feline") // 3
	require.NoError(t, err)
	_, err = sess.SubmitAnswer("feline") // 4
	require.NoError(t, err)
	_, err = sess.SubmitAnswer("cat") // 8, complete
	require.NoError(t, err)
	require.Equal(t, session.PhaseComplete, sess.Phase())

	answers, err := repo.Answers(ctx, rec.ID())
	require.NoError(t, err)
	require.Len(t, answers, 5)

	assert.Equal(t, "dog", answers[0].Answer)
	assert.False(t, answers[0].Correct)
	assert.Equal(t, "cat", answers[0].Prompt)
	assert.Equal(t, session.TermToDefinition, answers[0].Direction)

	assert.Equal(t, "kitty", answers[1].Answer)
	assert.True(t, answers[1].Correct)
	assert.True(t, answers[1].Overridden)

	assert.Equal(t, "cat", answers[4].Answer)
	assert.Equal(t, "feline", answers[4].Prompt)
	assert.Equal(t, session.DefinitionToTerm, answers[4].Direction)
	for i, a := range answers {
		assert.Equal(t, i+1, a.Sequence)
	}

	recent, err := repo.Recent(ctx, 1)
	require.NoError(t, err)
	require.Len(t, recent, 1)
	assert.True(t, recent[0].Completed)
	assert.Equal(t, 4, recent[0].Summary.CorrectCount)
	assert.Equal(t, 5, recent[0].Summary.TotalAsked)

	// Completed sessions are not overwritten by a late Abandon.
	rec.Abandon(session.Summary{})
	recent, err = repo.Recent(ctx, 1)
	require.NoError(t, err)
	assert.True(t, recent[0].Completed)
}

func TestRecorder_Abandon(t *testing.T) {
	s := openTestStore(t)
	repo := s.HistoryRepo()
	ctx := context.Background()

	rec, err := StartRecording(ctx, repo, logging.Discard(), 0, "adhoc", 1)
	require.NoError(t, err)
	sess := session.New([]session.Item{{Term: "cat", Definition: "feline"}},
		session.WithObserver(rec.Observe))
	require.NoError(t, sess.Start())
	_, err = sess.SubmitAnswer("dog")
	require.NoError(t, err)

	rec.Abandon(sess.Summary())

	answers, err := repo.Answers(ctx, rec.ID())
	require.NoError(t, err)
	require.Len(t, answers, 1)
	assert.False(t, answers[0].Correct)

	recent, err := repo.Recent(ctx, 1)
	require.NoError(t, err)
	assert.False(t, recent[0].Completed)
	assert.False(t, recent[0].FinishedAt.IsZero())
	assert.Equal(t, 1, recent[0].Summary.TotalAsked)
}
