package domain

import "time"

// FeedKind discriminates the payload carried by a feed item.
type FeedKind string

const (
	FeedKindThread FeedKind = "thread"
	FeedKindQuiz   FeedKind = "quiz"
)

// FeedData is the card payload of a feed item: the union of thread and quiz
// fields. Scenario and CommentCount are set for threads, Description for
// quizzes. A flat union keeps the wire shape decodable on both ends without a
// custom marshaler.
type FeedData struct {
	ID           string    `json:"id"`
	CompanyID    string    `json:"companyId"`
	Title        string    `json:"title"`
	Scenario     string    `json:"scenario,omitempty"`
	Description  string    `json:"description,omitempty"`
	Tags         []string  `json:"tags,omitempty"`
	ImageURL     string    `json:"imageUrl,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
	LikeCount    int       `json:"likeCount"`
	CommentCount int       `json:"commentCount,omitempty"`

	Company *Company `json:"company,omitempty"`
}

// FeedItem is one entry of the combined feed, newest first.
type FeedItem struct {
	ID        string    `json:"id"`
	Type      FeedKind  `json:"type"`
	Data      FeedData  `json:"data"`
	CreatedAt time.Time `json:"createdAt"`
}

// FeedData flattens a thread into a feed card payload.
func (t *Thread) FeedData() FeedData {
	return FeedData{
		ID:           t.ID,
		CompanyID:    t.CompanyID,
		Title:        t.Title,
		Scenario:     t.Scenario,
		Tags:         t.Tags,
		ImageURL:     t.ImageURL,
		CreatedAt:    t.CreatedAt,
		LikeCount:    t.LikeCount,
		CommentCount: t.CommentCount,
		Company:      t.Company,
	}
}

// FeedData flattens a quiz into a feed card payload.
func (q *Quiz) FeedData() FeedData {
	return FeedData{
		ID:          q.ID,
		CompanyID:   q.CompanyID,
		Title:       q.Title,
		Description: q.Description,
		Tags:        q.Tags,
		CreatedAt:   q.CreatedAt,
		LikeCount:   q.LikeCount,
		Company:     q.Company,
	}
}
