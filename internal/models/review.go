package models

// Review represents a public app review
type Review struct {
	ID          int    `json:"id"`
	Stars       int    `json:"stars"`
	Description string `json:"description"`
	FullName    string `json:"full_name"`
	Country     string `json:"country"`
	City        string `json:"city"`
	CreatedAt   string `json:"created_at"`
}

// ReviewRequest represents a review submission
type ReviewRequest struct {
	Stars       int    `json:"stars"`
	Description string `json:"description"`
	FullName    string `json:"full_name"`
	Country     string `json:"country"`
	City        string `json:"city"`
}
