package domain

// Company owns threads, quizzes and aclonas. Read-only after seeding.
type Company struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Logo string `json:"logo,omitempty"`
}
