package domain

import "time"

// Story is one avatar-strip entry at the top of the feed.
// User is attached by the catalog read service; it stays nil when the
// referenced user is missing from the store.
type Story struct {
	ID           string    `json:"id"`
	UserID       string    `json:"userId"`
	ThumbnailURL string    `json:"thumbnailUrl,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`

	User *User `json:"user,omitempty"`
}
