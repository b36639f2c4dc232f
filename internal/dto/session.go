package dto

type MessageResponse struct {
	ID        string `json:"id"`
	Role      string `json:"role"`
	Content   string `json:"content"`
	Timestamp int64  `json:"timestamp"`
	IsError   bool   `json:"isError,omitempty"`
	Feedback  *int   `json:"feedback,omitempty"`
}

type SessionResponse struct {
	ID          string            `json:"id"`
	Title       string            `json:"title"`
	LastUpdated int64             `json:"lastUpdated"`
	Messages    []MessageResponse `json:"messages"`
}

type SaveSessionRequest struct {
	ID          string `json:"id" validate:"required"`
	Title       string `json:"title" validate:"required"`
	LastUpdated int64  `json:"lastUpdated"`
}
