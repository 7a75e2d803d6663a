// Package overlay implements the client-owned local overlay store: comments
// the user wrote and likes the user gave, layered over the read-only catalog
// at view time. Overlay data never reaches the server and does not survive
// to other devices.
//
// Known limitation: two concurrent writers sharing one backend race on the
// read-modify-write of a comment list or like counter; last write wins. The
// store is single-writer in practice (one client per backend), so this is
// accepted rather than locked around.
package overlay

import (
	"encoding/json/v2"
	"fmt"
	"log/slog"
	"slices"
	"strconv"
	"time"

	"github.com/princeofgodman/figma-jobeee/internal/domain"
	"github.com/princeofgodman/figma-jobeee/internal/id"
	"github.com/princeofgodman/figma-jobeee/internal/validation"
)

// Storage keys. These names are the durable contract with already-persisted
// user data; changing them orphans every existing comment and like.
const (
	storagePrefix    = "jobeee_"
	commentKeyPrefix = storagePrefix + "comments:"
	likeKeyPrefix    = storagePrefix + "likes:"
)

func commentKey(threadID string) string { return commentKeyPrefix + threadID }
func likeKey(threadID string) string    { return likeKeyPrefix + threadID }

// Store reads and writes local comments and like counters on an injected
// Backend.
type Store struct {
	backend   Backend
	logger    *slog.Logger
	validator *validation.Validator

	// now is swappable for tests.
	now func() time.Time
}

// New creates an overlay store on the given backend.
func New(backend Backend, logger *slog.Logger) *Store {
	return &Store{
		backend:   backend,
		logger:    logger,
		validator: validation.New(),
		now:       time.Now,
	}
}

// ThreadComments returns the local comments for a thread, oldest first.
// Reads never fail the caller: an absent key yields an empty list, and a
// corrupt or unreadable entry is logged and degraded to empty.
func (s *Store) ThreadComments(threadID string) []domain.Comment {
	raw, ok, err := s.backend.GetItem(commentKey(threadID))
	if err != nil {
		s.logger.Warn("failed to read local comments, treating as empty", "thread_id", threadID, "error", err)
		return nil
	}
	if !ok {
		return nil
	}

	var comments []domain.Comment
	if err := json.Unmarshal([]byte(raw), &comments); err != nil {
		s.logger.Warn("corrupt local comment entry, treating as empty", "thread_id", threadID, "error", err)
		return nil
	}
	return comments
}

// AddCommentInput is validated before a comment is created.
type AddCommentInput struct {
	UserName   string `json:"userName" validate:"required,max=80"`
	Content    string `json:"content" validate:"required,max=2000"`
	UserAvatar string `json:"userAvatar" validate:"omitempty,url"`
}

// AddComment creates a local comment on a thread and persists the thread's
// updated list. The generated id lives in the local-comment namespace, so it
// can never collide with a server-origin comment id.
func (s *Store) AddComment(threadID, userName, content, userAvatar string) (*domain.Comment, error) {
	input := AddCommentInput{UserName: userName, Content: content, UserAvatar: userAvatar}
	if err := s.validator.Validate(input); err != nil {
		return nil, err
	}

	commentID, err := id.LocalComment(s.now())
	if err != nil {
		return nil, err
	}

	comment := domain.Comment{
		ID:         commentID,
		ThreadID:   threadID,
		UserName:   userName,
		UserAvatar: userAvatar,
		Content:    content,
		CreatedAt:  s.now().UTC(),
	}

	comments := append(s.ThreadComments(threadID), comment)
	if err := s.persist(threadID, comments); err != nil {
		return nil, err
	}

	return &comment, nil
}

// DeleteComment removes one local comment from a thread. Unknown comment and
// thread ids are no-ops.
func (s *Store) DeleteComment(threadID, commentID string) error {
	comments := s.ThreadComments(threadID)
	filtered := slices.DeleteFunc(comments, func(c domain.Comment) bool {
		return c.ID == commentID
	})
	if len(filtered) == len(comments) {
		return nil
	}
	return s.persist(threadID, filtered)
}

// ClearThreadComments removes all local comments for a thread.
func (s *Store) ClearThreadComments(threadID string) error {
	return s.backend.RemoveItem(commentKey(threadID))
}

// ClearAllComments removes local comments for every thread, leaving like
// counters untouched.
func (s *Store) ClearAllComments() error {
	keys, err := s.backend.Keys(commentKeyPrefix)
	if err != nil {
		return fmt.Errorf("list comment keys: %w", err)
	}
	for _, key := range keys {
		if err := s.backend.RemoveItem(key); err != nil {
			return err
		}
	}
	return nil
}

// LocalLikes returns how many times this client liked a thread. Absent or
// corrupt counters read as zero.
func (s *Store) LocalLikes(threadID string) int {
	raw, ok, err := s.backend.GetItem(likeKey(threadID))
	if err != nil {
		s.logger.Warn("failed to read like counter, treating as zero", "thread_id", threadID, "error", err)
		return 0
	}
	if !ok {
		return 0
	}

	count, err := strconv.Atoi(raw)
	if err != nil || count < 0 {
		s.logger.Warn("corrupt like counter, treating as zero", "thread_id", threadID, "value", raw)
		return 0
	}
	return count
}

// LikeThread increments the local like counter for a thread and returns the
// new local total. The counter only ever increases.
func (s *Store) LikeThread(threadID string) (int, error) {
	count := s.LocalLikes(threadID) + 1
	if err := s.backend.SetItem(likeKey(threadID), strconv.Itoa(count)); err != nil {
		return 0, fmt.Errorf("persist like counter: %w", err)
	}
	return count, nil
}

func (s *Store) persist(threadID string, comments []domain.Comment) error {
	data, err := json.Marshal(comments)
	if err != nil {
		return fmt.Errorf("marshal local comments: %w", err)
	}
	if err := s.backend.SetItem(commentKey(threadID), string(data)); err != nil {
		return fmt.Errorf("persist local comments: %w", err)
	}
	return nil
}
