package dto

type AddFAQRequest struct {
	Question string `json:"question" validate:"required"`
	Category string `json:"category"`
}

type UpdateFAQRequest struct {
	Question string `json:"question" validate:"required"`
}

type FAQResponse struct {
	ID        string `json:"id"`
	Question  string `json:"question"`
	Category  string `json:"category"`
	DateAdded int64  `json:"dateAdded"`
}
