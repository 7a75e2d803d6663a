package overlay

import (
	"io"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSQLiteBackend(t *testing.T) (*SQLite, string) {
	t.Helper()

	path := filepath.Join(t.TempDir(), "overlay.db")
	backend, err := OpenSQLite(path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = backend.Close() })

	return backend, path
}

func TestSQLite_GetSetRemove(t *testing.T) {
	backend, _ := newSQLiteBackend(t)

	_, ok, err := backend.GetItem("jobeee_likes:thread-onsite")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, backend.SetItem("jobeee_likes:thread-onsite", "3"))

	value, ok, err := backend.GetItem("jobeee_likes:thread-onsite")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "3", value)

	// Upsert replaces the existing value.
	require.NoError(t, backend.SetItem("jobeee_likes:thread-onsite", "4"))
	value, _, err = backend.GetItem("jobeee_likes:thread-onsite")
	require.NoError(t, err)
	assert.Equal(t, "4", value)

	require.NoError(t, backend.RemoveItem("jobeee_likes:thread-onsite"))
	_, ok, err = backend.GetItem("jobeee_likes:thread-onsite")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestSQLite_RemoveAbsentIsNoop(t *testing.T) {
	backend, _ := newSQLiteBackend(t)

	require.NoError(t, backend.RemoveItem("jobeee_likes:never-set"))
}

func TestSQLite_KeysPrefixIsLiteral(t *testing.T) {
	backend, _ := newSQLiteBackend(t)

	require.NoError(t, backend.SetItem("jobeee_comments:a", "x"))
	require.NoError(t, backend.SetItem("jobeee_comments:b", "x"))
	require.NoError(t, backend.SetItem("jobeee_likes:a", "1"))
	// A key that would match "jobeee_" under LIKE's underscore wildcard but
	// not as a literal prefix.
	require.NoError(t, backend.SetItem("jobeeeXcomments:a", "x"))

	keys, err := backend.Keys("jobeee_comments:")
	require.NoError(t, err)
	assert.Equal(t, []string{"jobeee_comments:a", "jobeee_comments:b"}, keys)
}

func TestSQLite_SurvivesReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "overlay.db")

	backend, err := OpenSQLite(path)
	require.NoError(t, err)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	s := New(backend, logger)

	comment, err := s.AddComment("thread-onsite", "You", "durable", "")
	require.NoError(t, err)
	_, err = s.LikeThread("thread-onsite")
	require.NoError(t, err)

	require.NoError(t, backend.Close())

	backend, err = OpenSQLite(path)
	require.NoError(t, err)
	defer backend.Close()

	s = New(backend, logger)

	comments := s.ThreadComments("thread-onsite")
	require.Len(t, comments, 1)
	assert.Equal(t, comment.ID, comments[0].ID)
	assert.Equal(t, 1, s.LocalLikes("thread-onsite"))
}

func TestSQLite_TwoBackendsAreTwoUsers(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	a, _ := newSQLiteBackend(t)
	b, _ := newSQLiteBackend(t)

	userA := New(a, logger)
	userB := New(b, logger)

	_, err := userA.AddComment("thread-onsite", "A", "mine", "")
	require.NoError(t, err)

	assert.Empty(t, userB.ThreadComments("thread-onsite"),
		"one user's overlay must not leak into another's")
}
