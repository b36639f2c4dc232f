package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"ccc-smartassist/internal/dto"
	"ccc-smartassist/internal/models"
	"ccc-smartassist/pkg/config"

	"go.uber.org/zap"
)

var (
	// ErrMissingAPIKey means no key is configured at all; the call fails
	// before any network I/O. Non-retryable, surfaced as a configuration
	// problem for the admin.
	ErrMissingAPIKey = errors.New("api key is missing, configure it in settings")

	// ErrQuotaExceeded signals a rate/billing/key rejection from the
	// provider. Callers use it to decide whether to back off or degrade.
	ErrQuotaExceeded = errors.New("quota exceeded or api key rejected")
)

// UpstreamError carries the provider status and message for transport
// failures and non-2xx responses that are not quota rejections.
type UpstreamError struct {
	Status  int
	Message string
}

func (e *UpstreamError) Error() string {
	if e.Status == 0 {
		return fmt.Sprintf("gemini connection error: %s", e.Message)
	}
	return fmt.Sprintf("gemini api error (HTTP %d): %s", e.Status, e.Message)
}

// maxHistoryTurns bounds the context window sent upstream.
const maxHistoryTurns = 10

const restrictedInstruction = `You are the official CCC SmartAssist, an AI assistant for Cainta Catholic College.
IMPORTANT RULES:
1. ANSWER ONLY using the provided OFFICIAL KNOWLEDGE BASE below.
2. If the answer is not contained within the Knowledge Base, politely say: 'I'm sorry, I don't have that specific information in my current database. Please contact the school office directly for more details.'
3. DO NOT use external knowledge or make up information.
4. Keep answers professional and helpful.`

const emptyCandidatesReply = "I apologize, but I am unable to process that query based on my current knowledge base."

// Wire types for the generateContent protocol. This exact shape is the
// integration contract with the generation provider.
type geminiPart struct {
	Text string `json:"text"`
}

type geminiContent struct {
	Role  string       `json:"role,omitempty"`
	Parts []geminiPart `json:"parts"`
}

type geminiGenerationConfig struct {
	Temperature     float64 `json:"temperature"`
	MaxOutputTokens int     `json:"maxOutputTokens"`
}

type geminiRequest struct {
	Contents          []geminiContent        `json:"contents"`
	SystemInstruction geminiContent          `json:"system_instruction"`
	GenerationConfig  geminiGenerationConfig `json:"generationConfig"`
}

type geminiResponse struct {
	Candidates []struct {
		Content struct {
			Parts []geminiPart `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
}

// GeminiService calls the external generation API with a prompt restricted to
// the curated knowledge base. One attempt per call, no retries: backoff and
// degradation are the caller's responsibility.
type GeminiService struct {
	config     *config.GeminiConfig
	httpClient *http.Client
	baseURL    string
	logger     *zap.Logger
}

func NewGeminiService(cfg *config.GeminiConfig, logger *zap.Logger) *GeminiService {
	return &GeminiService{
		config: cfg,
		httpClient: &http.Client{
			// Explicit timeout: upstream calls must not hang on the
			// transport default.
			Timeout: cfg.Timeout,
		},
		baseURL: "https://generativelanguage.googleapis.com/v1beta",
		logger:  logger,
	}
}

// Generate produces an answer grounded in the supplied knowledge base.
// The admin-configured key takes priority over the environment default.
func (s *GeminiService) Generate(
	ctx context.Context,
	apiKey string,
	knowledgeBase []models.KnowledgeItem,
	history []dto.HistoryMessage,
	userMessage string,
	instructionOverride string,
) (string, error) {
	key := apiKey
	if key == "" {
		key = s.config.APIKey
	}
	if key == "" {
		return "", ErrMissingAPIKey
	}

	body := geminiRequest{
		Contents: buildContents(history, userMessage),
		SystemInstruction: geminiContent{
			Parts: []geminiPart{{Text: buildSystemInstruction(knowledgeBase, instructionOverride)}},
		},
		GenerationConfig: s.generationConfig(),
	}

	payload, err := json.Marshal(body)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	endpoint := fmt.Sprintf("%s/models/%s:generateContent?key=%s",
		s.baseURL, s.config.Model, url.QueryEscape(key))

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return "", &UpstreamError{Status: 0, Message: err.Error()}
	}
	defer resp.Body.Close()

	respBody, _ := io.ReadAll(resp.Body)

	if resp.StatusCode != http.StatusOK {
		return "", s.classifyFailure(resp.StatusCode, respBody)
	}

	var result geminiResponse
	if err := json.Unmarshal(respBody, &result); err != nil {
		return "", &UpstreamError{Status: resp.StatusCode, Message: "invalid response body"}
	}

	if len(result.Candidates) == 0 || len(result.Candidates[0].Content.Parts) == 0 {
		s.logger.Warn("Empty candidate list from generation API")
		return emptyCandidatesReply, nil
	}

	text := result.Candidates[0].Content.Parts[0].Text
	s.logger.Info("Generation completed",
		zap.Int("history_turns", len(history)),
		zap.Int("knowledge_items", len(knowledgeBase)),
		zap.Int("answer_length", len(text)),
	)

	return text, nil
}

// classifyFailure separates quota/key rejections from other upstream errors.
func (s *GeminiService) classifyFailure(status int, body []byte) error {
	var parsed geminiResponse
	_ = json.Unmarshal(body, &parsed)

	message := parsed.Error.Message
	if message == "" {
		message = strings.TrimSpace(string(body))
	}

	if status == http.StatusTooManyRequests || isQuotaMessage(message) {
		s.logger.Warn("Generation quota exceeded or key rejected",
			zap.Int("status", status),
			zap.String("message", message),
		)
		return ErrQuotaExceeded
	}

	s.logger.Error("Generation request failed",
		zap.Int("status", status),
		zap.String("message", message),
	)
	return &UpstreamError{Status: status, Message: message}
}

func isQuotaMessage(message string) bool {
	lower := strings.ToLower(message)
	return strings.Contains(lower, "quota") ||
		strings.Contains(lower, "api key") ||
		strings.Contains(lower, "resource_exhausted")
}

// buildContents serializes the bounded history plus the current message.
// History is truncated to the most recent turns; system messages are dropped
// and remaining roles normalized to the two the API accepts.
func buildContents(history []dto.HistoryMessage, userMessage string) []geminiContent {
	recent := history
	if len(recent) > maxHistoryTurns {
		recent = recent[len(recent)-maxHistoryTurns:]
	}

	contents := make([]geminiContent, 0, len(recent)+1)
	for _, msg := range recent {
		if msg.Role == string(models.RoleSystem) {
			continue
		}
		role := "model"
		if msg.Role == "user" || msg.Role == "student" {
			role = "user"
		}
		contents = append(contents, geminiContent{
			Role:  role,
			Parts: []geminiPart{{Text: msg.Content}},
		})
	}

	contents = append(contents, geminiContent{
		Role:  "user",
		Parts: []geminiPart{{Text: userMessage}},
	})

	return contents
}

// buildSystemInstruction concatenates the hard rule block, the serialized
// knowledge base and any caller-supplied persona instruction.
func buildSystemInstruction(knowledgeBase []models.KnowledgeItem, override string) string {
	var builder strings.Builder
	builder.WriteString(restrictedInstruction)
	builder.WriteString("\n\n=== OFFICIAL KNOWLEDGE BASE ===\n")

	for _, item := range knowledgeBase {
		builder.WriteString("--- SOURCE: ")
		builder.WriteString(item.Question)
		builder.WriteString(" ---\n")
		builder.WriteString(item.Answer)
		builder.WriteString("\n\n")
	}

	if override != "" {
		builder.WriteString("\n")
		builder.WriteString(override)
	}

	return builder.String()
}

// generationConfig selects the sampling profile. Strict keeps the assistant
// on the knowledge base; conversational trades determinism for a more human
// persona. Same algorithm either way, only the parameters differ.
func (s *GeminiService) generationConfig() geminiGenerationConfig {
	if s.config.Profile == "conversational" {
		return geminiGenerationConfig{Temperature: 0.7, MaxOutputTokens: 1024}
	}
	return geminiGenerationConfig{Temperature: 0.1, MaxOutputTokens: 1024}
}
