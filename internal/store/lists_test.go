package store

import (
	"context"
	"testing"

	"github.com/abhisek/lexiz/internal/wordlist"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListCreateAndGet(t *testing.T) {
	s := openTestStore(t)
	repo := s.ListRepo()
	ctx := context.Background()

	l, err := repo.Create(ctx, "  Animals ")
	require.NoError(t, err)
	assert.NotZero(t, l.ID)
	assert.Equal(t, "Animals", l.Title)

	got, err := repo.Get(ctx, l.ID)
	require.NoError(t, err)
	assert.Equal(t, "Animals", got.Title)
	assert.Empty(t, got.Words)

	_, err = repo.Create(ctx, "Animals")
	require.ErrorIs(t, err, ErrTitleTaken)

	_, err = repo.Create(ctx, "")
	require.Error(t, err)
}

func TestListRename(t *testing.T) {
	s := openTestStore(t)
	repo := s.ListRepo()
	ctx := context.Background()

	a, err := repo.Create(ctx, "a")
	require.NoError(t, err)
	_, err = repo.Create(ctx, "b")
	require.NoError(t, err)

	require.NoError(t, repo.Rename(ctx, a.ID, "a"), "renaming to its own title")
	require.ErrorIs(t, repo.Rename(ctx, a.ID, "b"), ErrTitleTaken)
	require.NoError(t, repo.Rename(ctx, a.ID, "c"))
	require.ErrorIs(t, repo.Rename(ctx, 999, "z"), ErrNotFound)

	got, err := repo.FindByTitle(ctx, "c")
	require.NoError(t, err)
	assert.Equal(t, a.ID, got.ID)
}

func TestListDeleteCascadesWords(t *testing.T) {
	s := openTestStore(t)
	lists, words := s.ListRepo(), s.WordRepo()
	ctx := context.Background()

	l, err := lists.Create(ctx, "animals")
	require.NoError(t, err)
	w := &wordlist.Word{ListID: l.ID, Term: "cat", Definition: "feline"}
	require.NoError(t, words.Add(ctx, w))

	require.NoError(t, lists.Delete(ctx, l.ID))
	_, err = lists.Get(ctx, l.ID)
	require.ErrorIs(t, err, ErrNotFound)
	_, err = words.Get(ctx, w.ID)
	require.ErrorIs(t, err, ErrNotFound)

	require.ErrorIs(t, lists.Delete(ctx, l.ID), ErrNotFound)
}

func TestListAllCounts(t *testing.T) {
	s := openTestStore(t)
	lists, words := s.ListRepo(), s.WordRepo()
	ctx := context.Background()

	b, err := lists.Create(ctx, "beta")
	require.NoError(t, err)
	_, err = lists.Create(ctx, "Alpha")
	require.NoError(t, err)

	_, err = words.Import(ctx, b.ID, []wordlist.Word{
		{Term: "one", Selected: true},
		{Term: "two"},
		{Term: "three", Selected: true},
	})
	require.NoError(t, err)

	all, err := lists.All(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "Alpha", all[0].Title)
	assert.Equal(t, 0, all[0].WordCount)
	assert.Equal(t, "beta", all[1].Title)
	assert.Equal(t, 3, all[1].WordCount)
	assert.Equal(t, 2, all[1].SelectedCount)
	assert.False(t, all[1].CreatedAt.IsZero())
}

func TestFindByTitleMissing(t *testing.T) {
	s := openTestStore(t)
	_, err := s.ListRepo().FindByTitle(context.Background(), "nope")
	require.ErrorIs(t, err, ErrNotFound)
}
