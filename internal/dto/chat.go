package dto

// HistoryMessage is one prior turn of the conversation as the client holds it.
type HistoryMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type ChatRequest struct {
	SessionID         string           `json:"sessionId" validate:"required"`
	Message           string           `json:"message" validate:"required"`
	History           []HistoryMessage `json:"history"`
	SystemInstruction string           `json:"systemInstruction"`
}

type ChatResponse struct {
	Response string `json:"response"`
}

type FeedbackRequest struct {
	MessageID string `json:"messageId" validate:"required"`
	Feedback  int    `json:"feedback" validate:"required,oneof=1 -1"`
}
