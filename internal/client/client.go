// Package client is the read side of the application: it fetches catalog data
// over HTTP and merges in the device-local overlay (comments and likes) before
// returning views to the UI layer.
//
// Server data and overlay data never mix at rest. The overlay contributes at
// read time only, so clearing it restores the pristine server state.
package client

import (
	"context"
	"encoding/json/v2"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/princeofgodman/figma-jobeee/internal/domain"
	"github.com/princeofgodman/figma-jobeee/internal/merge"
	"github.com/princeofgodman/figma-jobeee/internal/overlay"
	"github.com/princeofgodman/figma-jobeee/internal/store"
)

const defaultTimeout = 15 * time.Second

// Client talks to the catalog API and the local overlay store.
type Client struct {
	http    *http.Client
	baseURL string
	overlay *overlay.Store
	logger  *slog.Logger
}

// New creates a client for the catalog API at baseURL with routes under
// pathPrefix. The overlay store holds this device's local comments and likes.
func New(baseURL, pathPrefix string, ov *overlay.Store, logger *slog.Logger) *Client {
	return &Client{
		http:    &http.Client{Timeout: defaultTimeout},
		baseURL: strings.TrimRight(baseURL, "/") + pathPrefix,
		overlay: ov,
		logger:  logger,
	}
}

// HomeView is everything the home screen needs in one load.
type HomeView struct {
	Stories []domain.Story    `json:"stories"`
	Feed    []domain.FeedItem `json:"feed"`
}

// Health checks that the catalog API is reachable.
func (c *Client) Health(ctx context.Context) error {
	var body struct {
		Status string `json:"status"`
	}
	if err := c.get(ctx, "/health", &body); err != nil {
		return err
	}
	if body.Status != "ok" {
		return fmt.Errorf("unexpected health status %q", body.Status)
	}
	return nil
}

// SeedCatalog asks the server to populate its sample dataset. Safe to call
// when the catalog is already seeded.
func (c *Client) SeedCatalog(ctx context.Context) error {
	var body struct {
		Success bool `json:"success"`
	}
	if err := c.post(ctx, "/seed", &body); err != nil {
		return err
	}
	if !body.Success {
		return errors.New("seed request did not succeed")
	}
	return nil
}

// Stories returns the story rail. Stories carry no overlay data.
func (c *Client) Stories(ctx context.Context) ([]domain.Story, error) {
	var stories []domain.Story
	if err := c.get(ctx, "/stories", &stories); err != nil {
		return nil, err
	}
	return stories, nil
}

// Feed returns the combined feed with local likes folded into each thread's
// like count.
func (c *Client) Feed(ctx context.Context) ([]domain.FeedItem, error) {
	var items []domain.FeedItem
	if err := c.get(ctx, "/feed", &items); err != nil {
		return nil, err
	}

	for i := range items {
		if items[i].Type != domain.FeedKindThread {
			continue
		}
		items[i].Data.LikeCount = merge.LikeCount(items[i].Data.LikeCount, c.overlay.LocalLikes(items[i].ID))
	}

	return items, nil
}

// Thread returns one thread with server and local comments merged into a
// single chronological list. The comment count reflects the merged list and
// the like count includes this device's likes.
func (c *Client) Thread(ctx context.Context, threadID string) (*domain.ThreadDetail, error) {
	var detail domain.ThreadDetail
	if err := c.get(ctx, "/threads/"+threadID, &detail); err != nil {
		return nil, err
	}

	detail.Comments = merge.Comments(detail.Comments, c.overlay.ThreadComments(threadID))
	detail.CommentCount = len(detail.Comments)
	detail.LikeCount = merge.LikeCount(detail.LikeCount, c.overlay.LocalLikes(threadID))

	return &detail, nil
}

// Aclonas returns the right-panel content.
func (c *Client) Aclonas(ctx context.Context) ([]domain.Aclona, error) {
	var aclonas []domain.Aclona
	if err := c.get(ctx, "/aclonas", &aclonas); err != nil {
		return nil, err
	}
	return aclonas, nil
}

// AddComment stores a comment in the local overlay. Nothing is sent to the
// server; the comment appears in subsequent Thread reads on this device only.
func (c *Client) AddComment(threadID, userName, content, userAvatar string) (*domain.Comment, error) {
	return c.overlay.AddComment(threadID, userName, content, userAvatar)
}

// DeleteComment removes a local comment. Server comments cannot be deleted.
func (c *Client) DeleteComment(threadID, commentID string) error {
	return c.overlay.DeleteComment(threadID, commentID)
}

// LikeThread records one more local like and returns this device's local like
// count for the thread.
func (c *Client) LikeThread(threadID string) (int, error) {
	return c.overlay.LikeThread(threadID)
}

// Load fetches stories and feed in parallel. When both come back empty the
// catalog has never been seeded, so Load seeds it and fetches again.
func (c *Client) Load(ctx context.Context) (*HomeView, error) {
	view, err := c.loadOnce(ctx)
	if err != nil {
		return nil, err
	}

	if len(view.Stories) == 0 && len(view.Feed) == 0 {
		c.logger.Info("catalog empty, seeding")
		if err := c.SeedCatalog(ctx); err != nil {
			return nil, fmt.Errorf("seed empty catalog: %w", err)
		}
		return c.loadOnce(ctx)
	}

	return view, nil
}

// loadOnce runs the stories and feed requests concurrently and joins their
// failures.
func (c *Client) loadOnce(ctx context.Context) (*HomeView, error) {
	var (
		view       HomeView
		storiesErr error
		feedErr    error
	)

	done := make(chan struct{})
	go func() {
		defer close(done)
		view.Stories, storiesErr = c.Stories(ctx)
	}()

	view.Feed, feedErr = c.Feed(ctx)
	<-done

	if err := errors.Join(storiesErr, feedErr); err != nil {
		return nil, err
	}

	return &view, nil
}

// get performs a GET request and decodes the JSON response into out.
func (c *Client) get(ctx context.Context, path string, out any) error {
	return c.do(ctx, http.MethodGet, path, out)
}

// post performs a POST request and decodes the JSON response into out.
func (c *Client) post(ctx context.Context, path string, out any) error {
	return c.do(ctx, http.MethodPost, path, out)
}

func (c *Client) do(ctx context.Context, method, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("build request %s %s: %w", method, path, err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return c.errorFromResponse(resp, method, path)
	}

	if out == nil {
		return nil
	}
	if err := json.UnmarshalRead(resp.Body, out); err != nil {
		return fmt.Errorf("decode %s %s response: %w", method, path, err)
	}
	return nil
}

// errorFromResponse maps an error response back onto the store error
// vocabulary so callers can match with errors.Is.
func (c *Client) errorFromResponse(resp *http.Response, method, path string) error {
	var body struct {
		Error string `json:"error"`
	}
	message := resp.Status
	if err := json.UnmarshalRead(resp.Body, &body); err == nil && body.Error != "" {
		message = body.Error
	}

	switch resp.StatusCode {
	case http.StatusNotFound:
		return store.ErrNotFound.WithMessage(message)
	case http.StatusForbidden:
		return store.ErrForbidden.WithMessage(message)
	case http.StatusBadRequest:
		return store.ErrInvalidInput.WithMessage(message)
	default:
		return fmt.Errorf("%s %s: %s", method, path, message)
	}
}
