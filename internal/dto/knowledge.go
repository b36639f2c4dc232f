package dto

type AddKnowledgeRequest struct {
	Question string `json:"question" validate:"required"`
	Answer   string `json:"answer" validate:"required"`
	Category string `json:"category" validate:"required,oneof=enrollment general tuition scholarship policy academics"`
	Source   string `json:"source" validate:"omitempty,oneof=manual pdf system"`
}

type KnowledgeResponse struct {
	ID        string `json:"id"`
	Question  string `json:"question"`
	Answer    string `json:"answer"`
	Category  string `json:"category"`
	Source    string `json:"source"`
	DateAdded int64  `json:"dateAdded"`
}
