package cmd

import (
	"bytes"
	"compress/gzip"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/lexiz/internal/store"
)

// isolate keeps the developer's config, database and API keys out of the test.
func isolate(t *testing.T) string {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("XDG_DATA_HOME", t.TempDir())
	for _, k := range []string{
		"LEXIZ_DB", "LEXIZ_LOG_LEVEL", "LEXIZ_LOG_FORMAT", "LEXIZ_LLM_PROVIDER", "LEXIZ_STUDY_SEED",
		"ANTHROPIC_API_KEY", "OPENAI_API_KEY", "GEMINI_API_KEY", "OPENROUTER_API_KEY",
	} {
		t.Setenv(k, "")
	}
	return filepath.Join(t.TempDir(), "lexiz.db")
}

func execute(t *testing.T, db, stdin string, args ...string) (string, error) {
	t.Helper()
	root := newRootCmd()
	var out, errOut bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetIn(strings.NewReader(stdin))
	root.SetArgs(append([]string{"--db", db}, args...))
	err := root.Execute()
	return out.String(), err
}

func mustExecute(t *testing.T, db, stdin string, args ...string) string {
	t.Helper()
	out, err := execute(t, db, stdin, args...)
	require.NoError(t, err, "lexiz %s", strings.Join(args, " "))
	return out
}

const animals = `cat - feline (purrs)
dog - canine

owl - bird of prey
`

func TestImportCreatesList(t *testing.T) {
	db := isolate(t)

	out := mustExecute(t, db, animals, "import", "animals", "--input", "-")
	assert.Contains(t, out, `Created list "animals" with 3 words`)

	out = mustExecute(t, db, "eel - fish\n", "import", "animals", "-i", "-")
	assert.Contains(t, out, `Imported 1 words into "animals"`)

	out = mustExecute(t, db, "", "list", "ls")
	assert.Contains(t, out, "animals")
	assert.Contains(t, out, "4")

	out = mustExecute(t, db, "", "list", "show", "animals")
	assert.Contains(t, out, "animals (4 words, 0 selected)")
	assert.Contains(t, out, "purrs")
}

func TestImportRequiresInput(t *testing.T) {
	db := isolate(t)
	_, err := execute(t, db, "", "import", "animals")
	require.Error(t, err)

	_, err = execute(t, db, "\n\n", "import", "animals", "--input", "-")
	require.Error(t, err)
}

func TestImportInvalidWordLeavesNoList(t *testing.T) {
	db := isolate(t)

	_, err := execute(t, db, "owl - bird\n - orphan definition\n", "import", "ghost", "--input", "-")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "word 2: invalid word: term is required")

	out := mustExecute(t, db, "", "list", "ls")
	assert.NotContains(t, out, "ghost")
	assert.Contains(t, out, "No lists yet")
}

func TestExportRoundTripGzip(t *testing.T) {
	db := isolate(t)
	mustExecute(t, db, animals, "import", "animals", "--input", "-")

	path := filepath.Join(t.TempDir(), "animals.txt.gz")
	mustExecute(t, db, "", "export", "animals", "--output", path)

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	gzr, err := gzip.NewReader(f)
	require.NoError(t, err)
	var buf bytes.Buffer
	_, err = buf.ReadFrom(gzr)
	require.NoError(t, err)
	assert.Equal(t, "cat - feline (purrs)\ndog - canine\nowl - bird of prey\n", buf.String())

	// A .gz input is decompressed without --gzip.
	out := mustExecute(t, db, "", "import", "copy", "--input", path)
	assert.Contains(t, out, `Created list "copy" with 3 words`)
}

func TestExportStdout(t *testing.T) {
	db := isolate(t)
	mustExecute(t, db, "cat - feline\n", "import", "animals", "--input", "-")

	out := mustExecute(t, db, "", "export", "1")
	assert.Equal(t, "cat - feline\n", out)
}

func TestListLifecycle(t *testing.T) {
	db := isolate(t)

	out := mustExecute(t, db, "", "list", "create", "verbs")
	assert.Contains(t, out, "Created list 1: verbs")

	_, err := execute(t, db, "", "list", "create", "verbs")
	require.ErrorIs(t, err, store.ErrTitleTaken)

	mustExecute(t, db, "", "list", "rename", "verbs", "irregular verbs")
	out = mustExecute(t, db, "", "list", "show", "1")
	assert.Contains(t, out, "irregular verbs (0 words")

	mustExecute(t, db, "", "list", "rm", "irregular verbs")
	_, err = execute(t, db, "", "list", "show", "1")
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestListCreateValidates(t *testing.T) {
	db := isolate(t)
	_, err := execute(t, db, "", "list", "create", strings.Repeat("x", 201))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "title must be at most 200 characters")
}

func TestWordCommands(t *testing.T) {
	db := isolate(t)
	mustExecute(t, db, "", "list", "create", "animals")

	out := mustExecute(t, db, "", "word", "add", "animals", "cat", "feline", "--notes", "purrs")
	assert.Contains(t, out, "Added word 1 to animals: cat - feline (purrs)")
	mustExecute(t, db, "", "word", "add", "animals", "dog", "canine")

	out = mustExecute(t, db, "", "word", "edit", "2", "--definition", "loyal canine")
	assert.Contains(t, out, "Updated word 2: dog - loyal canine")

	out = mustExecute(t, db, "", "word", "select", "1")
	assert.Contains(t, out, "1 words selected")
	out = mustExecute(t, db, "", "list", "show", "animals")
	assert.Contains(t, out, "1 selected")

	mustExecute(t, db, "", "word", "select", "--all", "animals", "--off")
	out = mustExecute(t, db, "", "list", "show", "animals")
	assert.Contains(t, out, "0 selected")

	mustExecute(t, db, "", "word", "rm", "1")
	_, err := execute(t, db, "", "word", "rm", "1")
	require.ErrorIs(t, err, store.ErrNotFound)

	_, err = execute(t, db, "", "word", "rm", "abc")
	require.Error(t, err)
}

func TestStudyPlainRecordsHistory(t *testing.T) {
	db := isolate(t)
	mustExecute(t, db, "cat - feline (purrs)\n", "import", "animals", "--input", "-")

	out := mustExecute(t, db, "feline\ncat\n", "study", "animals", "--plain", "--seed", "1")
	assert.Contains(t, out, "Define: cat")
	assert.Contains(t, out, "Session complete: 2 correct out of 2 asked (100% accuracy)")

	// Input runs out after one answer.
	out = mustExecute(t, db, "feline\n", "study", "animals", "--plain", "--seed", "1")
	assert.Contains(t, out, "Session abandoned")

	out = mustExecute(t, db, "", "stats")
	assert.Contains(t, out, "complete")
	assert.Contains(t, out, "abandoned")
	// The abandoned run drew a second prompt that was never answered.
	assert.Contains(t, out, "2 sessions, 3 correct of 4 prompts asked (75%)")
}

func TestStudyEmptyList(t *testing.T) {
	db := isolate(t)
	mustExecute(t, db, "", "list", "create", "empty")

	_, err := execute(t, db, "", "study", "empty", "--plain")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no items")
}

func TestStatsEmpty(t *testing.T) {
	db := isolate(t)
	out := mustExecute(t, db, "", "stats")
	assert.Contains(t, out, "No sessions yet.")
}

func TestNotesSuggestWithoutProvider(t *testing.T) {
	db := isolate(t)
	mustExecute(t, db, "cat - feline\n", "import", "animals", "--input", "-")

	_, err := execute(t, db, "", "notes", "suggest", "animals")
	require.Error(t, err)
}

func TestNotesSuggestOfflineProvider(t *testing.T) {
	db := isolate(t)
	mustExecute(t, db, "cat - feline\n", "import", "animals", "--input", "-")

	out := mustExecute(t, db, "", "notes", "suggest", "animals", "--provider", "mock")
	assert.Contains(t, out, "No notes suggested.")

	mustExecute(t, db, "dog - canine (barks)\n", "import", "pets", "--input", "-")
	out = mustExecute(t, db, "", "notes", "suggest", "pets", "--provider", "mock")
	assert.Contains(t, out, "Every word already has notes.")
}

func TestVersion(t *testing.T) {
	db := isolate(t)
	out := mustExecute(t, db, "", "version")
	assert.Equal(t, "lexiz (devel)\n", out)
}

func TestInvalidLogLevel(t *testing.T) {
	db := isolate(t)
	_, err := execute(t, db, "", "--log-level", "loud", "version")
	require.Error(t, err)
}
