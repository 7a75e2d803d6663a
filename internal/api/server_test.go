package api

import (
	"encoding/json/v2"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/princeofgodman/figma-jobeee/internal/config"
	"github.com/princeofgodman/figma-jobeee/internal/domain"
	"github.com/princeofgodman/figma-jobeee/internal/service"
	"github.com/princeofgodman/figma-jobeee/internal/store"
)

func testServerConfig() config.ServerConfig {
	return config.ServerConfig{
		Port:           "0",
		PathPrefix:     "/api/v1",
		RequestTimeout: 10 * time.Second,
		RateLimitRPS:   1000,
		RateLimitBurst: 1000,
	}
}

func newTestServer(t *testing.T) *Server {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	st, err := store.New(t.TempDir(), logger)
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })

	catalog := service.NewCatalogService(st, logger)
	return NewServer(catalog, testServerConfig(), logger)
}

func doRequest(t *testing.T, s *Server, method, path string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, path, nil)
	w := httptest.NewRecorder()
	s.ServeHTTP(w, req)
	return w
}

func seedServer(t *testing.T, s *Server) {
	t.Helper()

	w := doRequest(t, s, http.MethodPost, "/api/v1/seed")
	require.Equal(t, http.StatusOK, w.Code)
}

func TestHealthCheck(t *testing.T) {
	s := newTestServer(t)

	w := doRequest(t, s, http.MethodGet, "/api/v1/health")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json; charset=utf-8", w.Header().Get("Content-Type"))

	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "ok", body["status"])
}

func TestSeed_Idempotent(t *testing.T) {
	s := newTestServer(t)

	first := doRequest(t, s, http.MethodPost, "/api/v1/seed")
	require.Equal(t, http.StatusOK, first.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(first.Body.Bytes(), &body))
	assert.Equal(t, true, body["success"])

	second := doRequest(t, s, http.MethodPost, "/api/v1/seed")
	require.Equal(t, http.StatusOK, second.Code)

	require.NoError(t, json.Unmarshal(second.Body.Bytes(), &body))
	assert.Equal(t, true, body["success"])

	// Seeding twice must not duplicate catalog entries.
	stories := doRequest(t, s, http.MethodGet, "/api/v1/stories")
	require.Equal(t, http.StatusOK, stories.Code)

	var list []domain.Story
	require.NoError(t, json.Unmarshal(stories.Body.Bytes(), &list))
	assert.Len(t, list, 5)
}

func TestSeed_FailureEnvelope(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	st, err := store.New(t.TempDir(), logger)
	require.NoError(t, err)
	require.NoError(t, st.Close())

	// A closed store makes every write fail, so seeding cannot succeed.
	catalog := service.NewCatalogService(st, logger)
	s := NewServer(catalog, testServerConfig(), logger)

	w := doRequest(t, s, http.MethodPost, "/api/v1/seed")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"success": false, "error": "Failed to seed database"}`, w.Body.String())
}

func TestListStories(t *testing.T) {
	s := newTestServer(t)
	seedServer(t, s)

	w := doRequest(t, s, http.MethodGet, "/api/v1/stories")
	require.Equal(t, http.StatusOK, w.Code)

	var stories []domain.Story
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &stories))
	require.NotEmpty(t, stories)

	for _, story := range stories {
		assert.NotEmpty(t, story.ID)
		require.NotNil(t, story.User, "story %s should have its user attached", story.ID)
		assert.Equal(t, story.UserID, story.User.ID)
	}
}

func TestListStories_EmptyBeforeSeed(t *testing.T) {
	s := newTestServer(t)

	w := doRequest(t, s, http.MethodGet, "/api/v1/stories")
	require.Equal(t, http.StatusOK, w.Code)

	var stories []domain.Story
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &stories))
	assert.Empty(t, stories)
}

func TestListFeed(t *testing.T) {
	s := newTestServer(t)
	seedServer(t, s)

	w := doRequest(t, s, http.MethodGet, "/api/v1/feed")
	require.Equal(t, http.StatusOK, w.Code)

	var items []domain.FeedItem
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &items))
	require.NotEmpty(t, items)

	for i, item := range items {
		assert.Contains(t, []domain.FeedKind{domain.FeedKindThread, domain.FeedKindQuiz}, item.Type)
		require.NotNil(t, item.Data.Company, "feed item %s should have its company attached", item.ID)

		if i > 0 {
			assert.False(t, item.CreatedAt.After(items[i-1].CreatedAt),
				"feed must be sorted newest first")
		}
	}
}

func TestGetThread(t *testing.T) {
	s := newTestServer(t)
	seedServer(t, s)

	w := doRequest(t, s, http.MethodGet, "/api/v1/threads/thread-onsite")
	require.Equal(t, http.StatusOK, w.Code)

	var thread domain.ThreadDetail
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &thread))

	assert.Equal(t, "thread-onsite", thread.ID)
	require.NotNil(t, thread.Company)
	require.NotEmpty(t, thread.Comments)

	for i := 1; i < len(thread.Comments); i++ {
		assert.False(t, thread.Comments[i].CreatedAt.Before(thread.Comments[i-1].CreatedAt),
			"comments must be sorted oldest first")
	}
}

func TestGetThread_NotFound(t *testing.T) {
	s := newTestServer(t)
	seedServer(t, s)

	w := doRequest(t, s, http.MethodGet, "/api/v1/threads/thread-missing")
	require.Equal(t, http.StatusNotFound, w.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "thread not found", body["error"])
}

func TestListAclonas(t *testing.T) {
	s := newTestServer(t)
	seedServer(t, s)

	w := doRequest(t, s, http.MethodGet, "/api/v1/aclonas")
	require.Equal(t, http.StatusOK, w.Code)

	var aclonas []domain.Aclona
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &aclonas))
	require.NotEmpty(t, aclonas)

	for _, a := range aclonas {
		require.NotNil(t, a.Company, "aclona %s should have its company attached", a.ID)
		assert.Equal(t, a.CompanyID, a.Company.ID)
	}
}

func TestCreateComment_Forbidden(t *testing.T) {
	s := newTestServer(t)
	seedServer(t, s)

	before := doRequest(t, s, http.MethodGet, "/api/v1/threads/thread-onsite")
	require.Equal(t, http.StatusOK, before.Code)

	w := doRequest(t, s, http.MethodPost, "/api/v1/threads/thread-onsite/comments")
	assert.Equal(t, http.StatusForbidden, w.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Contains(t, body["error"], "stored locally")

	// The refused write must not touch the catalog.
	after := doRequest(t, s, http.MethodGet, "/api/v1/threads/thread-onsite")
	require.Equal(t, http.StatusOK, after.Code)
	assert.JSONEq(t, before.Body.String(), after.Body.String())
}

func TestLikeThread_Forbidden(t *testing.T) {
	s := newTestServer(t)
	seedServer(t, s)

	before := doRequest(t, s, http.MethodGet, "/api/v1/threads/thread-onsite")
	require.Equal(t, http.StatusOK, before.Code)

	w := doRequest(t, s, http.MethodPost, "/api/v1/threads/thread-onsite/like")
	assert.Equal(t, http.StatusForbidden, w.Code)

	after := doRequest(t, s, http.MethodGet, "/api/v1/threads/thread-onsite")
	require.Equal(t, http.StatusOK, after.Code)
	assert.JSONEq(t, before.Body.String(), after.Body.String())
}

func TestCustomPathPrefix(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	st, err := store.New(t.TempDir(), logger)
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })

	cfg := testServerConfig()
	cfg.PathPrefix = "/make-server-ff00f4a9"

	s := NewServer(service.NewCatalogService(st, logger), cfg, logger)

	w := doRequest(t, s, http.MethodGet, "/make-server-ff00f4a9/health")
	assert.Equal(t, http.StatusOK, w.Code)

	w = doRequest(t, s, http.MethodGet, "/api/v1/health")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRateLimit(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	st, err := store.New(t.TempDir(), logger)
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })

	cfg := testServerConfig()
	cfg.RateLimitRPS = 1
	cfg.RateLimitBurst = 2

	s := NewServer(service.NewCatalogService(st, logger), cfg, logger)

	statuses := make([]int, 0, 5)
	for range 5 {
		w := doRequest(t, s, http.MethodGet, "/api/v1/health")
		statuses = append(statuses, w.Code)
	}

	assert.Equal(t, http.StatusOK, statuses[0])
	assert.Contains(t, statuses, http.StatusTooManyRequests)
}

func TestGetClientIP(t *testing.T) {
	tests := []struct {
		name       string
		remoteAddr string
		headers    map[string]string
		want       string
	}{
		{
			name:       "remote addr only",
			remoteAddr: "192.0.2.10:54321",
			want:       "192.0.2.10",
		},
		{
			name:       "x-forwarded-for single",
			remoteAddr: "10.0.0.1:1234",
			headers:    map[string]string{"X-Forwarded-For": "203.0.113.5"},
			want:       "203.0.113.5",
		},
		{
			name:       "x-forwarded-for chain",
			remoteAddr: "10.0.0.1:1234",
			headers:    map[string]string{"X-Forwarded-For": "203.0.113.5, 10.0.0.2"},
			want:       "203.0.113.5",
		},
		{
			name:       "x-real-ip",
			remoteAddr: "10.0.0.1:1234",
			headers:    map[string]string{"X-Real-IP": "198.51.100.7"},
			want:       "198.51.100.7",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.RemoteAddr = tt.remoteAddr
			for k, v := range tt.headers {
				req.Header.Set(k, v)
			}

			got := getClientIP(req)
			if strings.Contains(got, ":") {
				t.Fatalf("client IP should not contain a port: %s", got)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}
