package dto

// PageDTO is the informational page response schema.
type PageDTO struct {
	Slug    string `json:"slug" example:"privacy-policy"`
	Title   string `json:"title" example:"Privacy Policy"`
	Content string `json:"content"`
}

// PageSummaryDTO is the page listing entry schema.
type PageSummaryDTO struct {
	Slug  string `json:"slug" example:"privacy-policy"`
	Title string `json:"title" example:"Privacy Policy"`
}
