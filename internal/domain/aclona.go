package domain

// Aclona is supplementary right-panel content. Read-only.
type Aclona struct {
	ID          string `json:"id"`
	CompanyID   string `json:"companyId"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Duration    int    `json:"duration,omitempty"` // seconds

	Company *Company `json:"company,omitempty"`
}
