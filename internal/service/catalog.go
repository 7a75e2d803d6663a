// Package service contains the catalog read service: stateless queries that
// resolve index lists to entities, attach related records, and sort
// deterministically. The service never writes outside of Seed.
package service

import (
	"context"
	"errors"
	"log/slog"
	"slices"

	"github.com/princeofgodman/figma-jobeee/internal/domain"
	"github.com/princeofgodman/figma-jobeee/internal/store"
)

// CatalogService answers feed, story, thread and aclona queries from the
// key-value catalog store.
type CatalogService struct {
	store  *store.Store
	logger *slog.Logger
}

// NewCatalogService creates a new catalog service.
func NewCatalogService(s *store.Store, logger *slog.Logger) *CatalogService {
	return &CatalogService{store: s, logger: logger}
}

// ListStories returns all stories with their users attached, in index order
// (insertion order from seeding). A story whose user is missing from the
// store is returned with a nil user.
func (s *CatalogService) ListStories(ctx context.Context) ([]domain.Story, error) {
	ids, err := s.store.GetIndex(ctx, store.StoryIndexKey())
	if err != nil {
		return nil, err
	}

	stories, err := store.MultiGet[domain.Story](ctx, s.store, store.Keys(ids, store.StoryKey))
	if err != nil {
		return nil, err
	}

	users, err := s.usersByID(ctx, stories)
	if err != nil {
		return nil, err
	}

	for i := range stories {
		stories[i].User = users[stories[i].UserID]
	}

	return stories, nil
}

// ListFeed returns threads and quizzes as one combined feed, each with its
// company attached, sorted by creation timestamp descending. The sort is
// stable: items sharing a timestamp keep their seed order (threads before
// quizzes).
func (s *CatalogService) ListFeed(ctx context.Context) ([]domain.FeedItem, error) {
	threadIDs, err := s.store.GetIndex(ctx, store.ThreadIndexKey())
	if err != nil {
		return nil, err
	}
	quizIDs, err := s.store.GetIndex(ctx, store.QuizIndexKey())
	if err != nil {
		return nil, err
	}

	threads, err := store.MultiGet[domain.Thread](ctx, s.store, store.Keys(threadIDs, store.ThreadKey))
	if err != nil {
		return nil, err
	}
	quizzes, err := store.MultiGet[domain.Quiz](ctx, s.store, store.Keys(quizIDs, store.QuizKey))
	if err != nil {
		return nil, err
	}

	companyIDs := make([]string, 0, len(threads)+len(quizzes))
	for _, t := range threads {
		companyIDs = append(companyIDs, t.CompanyID)
	}
	for _, q := range quizzes {
		companyIDs = append(companyIDs, q.CompanyID)
	}
	companies, err := s.companiesByID(ctx, companyIDs)
	if err != nil {
		return nil, err
	}

	items := make([]domain.FeedItem, 0, len(threads)+len(quizzes))
	for i := range threads {
		threads[i].Company = companies[threads[i].CompanyID]
		items = append(items, domain.FeedItem{
			ID:        threads[i].ID,
			Type:      domain.FeedKindThread,
			Data:      threads[i].FeedData(),
			CreatedAt: threads[i].CreatedAt,
		})
	}
	for i := range quizzes {
		quizzes[i].Company = companies[quizzes[i].CompanyID]
		items = append(items, domain.FeedItem{
			ID:        quizzes[i].ID,
			Type:      domain.FeedKindQuiz,
			Data:      quizzes[i].FeedData(),
			CreatedAt: quizzes[i].CreatedAt,
		})
	}

	// Newest first; stable so equal timestamps preserve seed order.
	slices.SortStableFunc(items, func(a, b domain.FeedItem) int {
		return b.CreatedAt.Compare(a.CreatedAt)
	})

	return items, nil
}

// GetThread returns one thread with its company and its server-origin
// comments sorted by creation timestamp ascending. Local overlay comments are
// the merge layer's concern and are never attached here.
// Returns store.ErrNotFound for an unknown id.
func (s *CatalogService) GetThread(ctx context.Context, threadID string) (*domain.ThreadDetail, error) {
	thread, err := store.Get[domain.Thread](ctx, s.store, store.ThreadKey(threadID))
	if errors.Is(err, store.ErrNotFound) {
		return nil, store.ErrNotFound.WithMessage("thread not found")
	}
	if err != nil {
		return nil, err
	}

	company, err := store.Get[domain.Company](ctx, s.store, store.CompanyKey(thread.CompanyID))
	if err != nil && !errors.Is(err, store.ErrNotFound) {
		return nil, err
	}
	thread.Company = company // nil on dangling reference

	commentIDs, err := s.store.GetIndex(ctx, store.ThreadCommentsIndexKey(threadID))
	if err != nil {
		return nil, err
	}
	comments, err := store.MultiGet[domain.Comment](ctx, s.store, store.Keys(commentIDs, store.CommentKey))
	if err != nil {
		return nil, err
	}

	slices.SortStableFunc(comments, func(a, b domain.Comment) int {
		return a.CreatedAt.Compare(b.CreatedAt)
	})

	return &domain.ThreadDetail{Thread: *thread, Comments: comments}, nil
}

// ListAclonas returns all aclonas with their companies attached, in index
// order.
func (s *CatalogService) ListAclonas(ctx context.Context) ([]domain.Aclona, error) {
	ids, err := s.store.GetIndex(ctx, store.AclonaIndexKey())
	if err != nil {
		return nil, err
	}

	aclonas, err := store.MultiGet[domain.Aclona](ctx, s.store, store.Keys(ids, store.AclonaKey))
	if err != nil {
		return nil, err
	}

	companyIDs := make([]string, 0, len(aclonas))
	for _, a := range aclonas {
		companyIDs = append(companyIDs, a.CompanyID)
	}
	companies, err := s.companiesByID(ctx, companyIDs)
	if err != nil {
		return nil, err
	}

	for i := range aclonas {
		aclonas[i].Company = companies[aclonas[i].CompanyID]
	}

	return aclonas, nil
}

// usersByID fetches the users referenced by stories, deduplicated.
func (s *CatalogService) usersByID(ctx context.Context, stories []domain.Story) (map[string]*domain.User, error) {
	ids := make([]string, 0, len(stories))
	for _, st := range stories {
		ids = append(ids, st.UserID)
	}

	users, err := store.MultiGet[domain.User](ctx, s.store, store.Keys(dedupe(ids), store.UserKey))
	if err != nil {
		return nil, err
	}

	byID := make(map[string]*domain.User, len(users))
	for i := range users {
		byID[users[i].ID] = &users[i]
	}
	return byID, nil
}

// companiesByID fetches the referenced companies, deduplicated.
func (s *CatalogService) companiesByID(ctx context.Context, ids []string) (map[string]*domain.Company, error) {
	companies, err := store.MultiGet[domain.Company](ctx, s.store, store.Keys(dedupe(ids), store.CompanyKey))
	if err != nil {
		return nil, err
	}

	byID := make(map[string]*domain.Company, len(companies))
	for i := range companies {
		byID[companies[i].ID] = &companies[i]
	}
	return byID, nil
}

// dedupe removes duplicate ids, preserving first-seen order.
func dedupe(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
