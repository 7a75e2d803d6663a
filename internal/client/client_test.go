package client

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/princeofgodman/figma-jobeee/internal/api"
	"github.com/princeofgodman/figma-jobeee/internal/config"
	"github.com/princeofgodman/figma-jobeee/internal/domain"
	"github.com/princeofgodman/figma-jobeee/internal/overlay"
	"github.com/princeofgodman/figma-jobeee/internal/service"
	"github.com/princeofgodman/figma-jobeee/internal/store"
)

// newTestClient spins up a real API server on an httptest listener and wires
// a client with an in-memory overlay against it.
func newTestClient(t *testing.T) *Client {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	st, err := store.New(t.TempDir(), logger)
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })

	cfg := config.ServerConfig{
		PathPrefix:     "/api/v1",
		RequestTimeout: 10 * time.Second,
		RateLimitRPS:   1000,
		RateLimitBurst: 1000,
	}
	srv := httptest.NewServer(api.NewServer(service.NewCatalogService(st, logger), cfg, logger))
	t.Cleanup(srv.Close)

	ov := overlay.New(overlay.NewMemory(), logger)
	return New(srv.URL, cfg.PathPrefix, ov, logger)
}

func TestHealth(t *testing.T) {
	c := newTestClient(t)

	require.NoError(t, c.Health(context.Background()))
}

func TestLoad_SeedsEmptyCatalog(t *testing.T) {
	c := newTestClient(t)
	ctx := context.Background()

	view, err := c.Load(ctx)
	require.NoError(t, err)

	assert.NotEmpty(t, view.Stories, "first load should seed and return stories")
	assert.NotEmpty(t, view.Feed, "first load should seed and return feed items")
}

func TestLoad_UnreachableServer(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	ov := overlay.New(overlay.NewMemory(), logger)

	// Port 1 is never listening, so both parallel fetches fail. A partial
	// view must not come back in that case.
	c := New("http://127.0.0.1:1", "/api/v1", ov, logger)

	view, err := c.Load(context.Background())
	require.Error(t, err)
	assert.Nil(t, view)
}

func TestLoad_DoesNotReseed(t *testing.T) {
	c := newTestClient(t)
	ctx := context.Background()

	first, err := c.Load(ctx)
	require.NoError(t, err)

	second, err := c.Load(ctx)
	require.NoError(t, err)

	assert.Equal(t, len(first.Stories), len(second.Stories))
	assert.Equal(t, len(first.Feed), len(second.Feed))
}

func TestThread_MergesLocalComments(t *testing.T) {
	c := newTestClient(t)
	ctx := context.Background()

	require.NoError(t, c.SeedCatalog(ctx))

	before, err := c.Thread(ctx, "thread-onsite")
	require.NoError(t, err)
	serverCount := len(before.Comments)
	require.Positive(t, serverCount)

	added, err := c.AddComment("thread-onsite", "You", "My two cents", "")
	require.NoError(t, err)
	assert.True(t, added.IsLocal())

	after, err := c.Thread(ctx, "thread-onsite")
	require.NoError(t, err)

	require.Len(t, after.Comments, serverCount+1)
	assert.Equal(t, serverCount+1, after.CommentCount,
		"comment count must reflect the merged list")

	// The fresh local comment sorts after the seeded ones.
	last := after.Comments[len(after.Comments)-1]
	assert.Equal(t, added.ID, last.ID)

	for i := 1; i < len(after.Comments); i++ {
		assert.False(t, after.Comments[i].CreatedAt.Before(after.Comments[i-1].CreatedAt))
	}
}

func TestThread_LocalCommentsStayOffOtherThreads(t *testing.T) {
	c := newTestClient(t)
	ctx := context.Background()

	require.NoError(t, c.SeedCatalog(ctx))

	_, err := c.AddComment("thread-onsite", "You", "On the onsite thread", "")
	require.NoError(t, err)

	other, err := c.Thread(ctx, "thread-remote")
	require.NoError(t, err)

	for _, comment := range other.Comments {
		assert.False(t, comment.IsLocal())
	}
}

func TestThread_DeleteLocalComment(t *testing.T) {
	c := newTestClient(t)
	ctx := context.Background()

	require.NoError(t, c.SeedCatalog(ctx))

	before, err := c.Thread(ctx, "thread-onsite")
	require.NoError(t, err)

	added, err := c.AddComment("thread-onsite", "You", "remove me", "")
	require.NoError(t, err)

	require.NoError(t, c.DeleteComment("thread-onsite", added.ID))

	after, err := c.Thread(ctx, "thread-onsite")
	require.NoError(t, err)
	assert.Equal(t, before.CommentCount, after.CommentCount)
}

func TestThread_NotFound(t *testing.T) {
	c := newTestClient(t)
	ctx := context.Background()

	require.NoError(t, c.SeedCatalog(ctx))

	_, err := c.Thread(ctx, "thread-missing")
	require.Error(t, err)
	assert.True(t, errors.Is(err, store.ErrNotFound), "expected not-found error, got %v", err)
}

func TestLikeThread_FoldedIntoReads(t *testing.T) {
	c := newTestClient(t)
	ctx := context.Background()

	require.NoError(t, c.SeedCatalog(ctx))

	before, err := c.Thread(ctx, "thread-onsite")
	require.NoError(t, err)

	for range 3 {
		_, err := c.LikeThread("thread-onsite")
		require.NoError(t, err)
	}

	after, err := c.Thread(ctx, "thread-onsite")
	require.NoError(t, err)
	assert.Equal(t, before.LikeCount+3, after.LikeCount)

	// The feed view folds in the same local likes.
	feed, err := c.Feed(ctx)
	require.NoError(t, err)

	var found bool
	for _, item := range feed {
		if item.ID != "thread-onsite" {
			continue
		}
		found = true
		assert.Equal(t, after.LikeCount, item.Data.LikeCount)
	}
	require.True(t, found)
}

func TestLikeThread_DoesNotTouchQuizzes(t *testing.T) {
	c := newTestClient(t)
	ctx := context.Background()

	require.NoError(t, c.SeedCatalog(ctx))

	feedBefore, err := c.Feed(ctx)
	require.NoError(t, err)

	quizLikes := map[string]int{}
	for _, item := range feedBefore {
		if item.Type == domain.FeedKindQuiz {
			quizLikes[item.ID] = item.Data.LikeCount
		}
	}
	require.NotEmpty(t, quizLikes)

	for id := range quizLikes {
		// Liking by a quiz id only writes the overlay; quiz feed items
		// must not pick it up.
		_, err := c.LikeThread(id)
		require.NoError(t, err)
	}

	feedAfter, err := c.Feed(ctx)
	require.NoError(t, err)

	for _, item := range feedAfter {
		if want, ok := quizLikes[item.ID]; ok {
			assert.Equal(t, want, item.Data.LikeCount)
		}
	}
}

func TestAddComment_Validation(t *testing.T) {
	c := newTestClient(t)

	_, err := c.AddComment("thread-onsite", "", "content without a name", "")
	require.Error(t, err)
	assert.True(t, errors.Is(err, store.ErrInvalidInput))
}

func TestStories_NoOverlayInfluence(t *testing.T) {
	c := newTestClient(t)
	ctx := context.Background()

	require.NoError(t, c.SeedCatalog(ctx))

	before, err := c.Stories(ctx)
	require.NoError(t, err)

	_, err = c.AddComment("thread-onsite", "You", "hello", "")
	require.NoError(t, err)
	_, err = c.LikeThread("thread-onsite")
	require.NoError(t, err)

	after, err := c.Stories(ctx)
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestAclonas(t *testing.T) {
	c := newTestClient(t)
	ctx := context.Background()

	require.NoError(t, c.SeedCatalog(ctx))

	aclonas, err := c.Aclonas(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, aclonas)

	for _, a := range aclonas {
		assert.NotNil(t, a.Company)
	}
}
