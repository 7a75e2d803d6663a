package domain

import (
	"strings"
	"time"
)

// LocalCommentPrefix namespaces client-generated comment ids away from seeded
// ones. The two namespaces never collide, so merged lists need no de-dup.
const LocalCommentPrefix = "local-comment-"

// Comment is a single thread comment. Server-origin comments carry a UserID
// and are immutable after seeding; local-origin comments have an id starting
// with LocalCommentPrefix, no UserID, and live only in the client's overlay
// store. UserName and UserAvatar are denormalized onto the record so cards
// render without a user join.
type Comment struct {
	ID         string    `json:"id"`
	ThreadID   string    `json:"threadId"`
	UserID     string    `json:"userId,omitempty"`
	UserName   string    `json:"userName"`
	UserAvatar string    `json:"userAvatar,omitempty"`
	Content    string    `json:"content"`
	CreatedAt  time.Time `json:"createdAt"`
}

// IsLocal reports whether the comment was authored in this client's overlay.
func (c *Comment) IsLocal() bool {
	return strings.HasPrefix(c.ID, LocalCommentPrefix)
}
