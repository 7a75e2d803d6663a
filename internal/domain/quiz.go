package domain

import "time"

// Quiz is a read-only feed card. Quizzes have no comment or overlay
// relationship; only their like count merges with local state.
type Quiz struct {
	ID          string    `json:"id"`
	CompanyID   string    `json:"companyId"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Tags        []string  `json:"tags,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	LikeCount   int       `json:"likeCount"`

	Company *Company `json:"company,omitempty"`
}
