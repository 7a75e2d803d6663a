package domain

import "time"

// Thread is a discussion card in the feed.
// LikeCount and CommentCount are static seeded values; the live totals shown
// to a user also include that user's local overlay (see the merge package).
type Thread struct {
	ID           string    `json:"id"`
	CompanyID    string    `json:"companyId"`
	Title        string    `json:"title"`
	Scenario     string    `json:"scenario"`
	Tags         []string  `json:"tags,omitempty"`
	ImageURL     string    `json:"imageUrl,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
	LikeCount    int       `json:"likeCount"`
	CommentCount int       `json:"commentCount"`

	Company *Company `json:"company,omitempty"`
}

// ThreadDetail is a thread with its server-origin comments attached,
// as returned by GET /threads/{id}. Local comments are merged client-side.
type ThreadDetail struct {
	Thread
	Comments []Comment `json:"comments"`
}
