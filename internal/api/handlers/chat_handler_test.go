package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"ccc-smartassist/internal/dto"
	"ccc-smartassist/internal/models"
	"ccc-smartassist/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubRules struct{ rules []models.ManualRule }

func (s *stubRules) ListActive(ctx context.Context) ([]models.ManualRule, error) {
	return s.rules, nil
}

type stubKnowledge struct{}

func (s *stubKnowledge) List(ctx context.Context) ([]models.KnowledgeItem, error) {
	return nil, nil
}

type stubSettings struct{ err error }

func (s *stubSettings) Get(ctx context.Context) (*models.SystemSettings, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &models.SystemSettings{ID: 1, SystemName: "CCC SmartAssist", ThemeColor: "blue"}, nil
}

type stubGenerator struct{ reply string }

func (s *stubGenerator) Generate(ctx context.Context, apiKey string, kb []models.KnowledgeItem,
	history []dto.HistoryMessage, userMessage, instructionOverride string) (string, error) {
	return s.reply, nil
}

type stubTranscripts struct{}

func (s *stubTranscripts) CreateIfAbsent(ctx context.Context, session *models.ChatSession) error {
	return nil
}

func (s *stubTranscripts) InsertMessage(ctx context.Context, msg *models.Message) error {
	return nil
}

func (s *stubTranscripts) Touch(ctx context.Context, id uuid.UUID, lastUpdated int64) error {
	return nil
}

func newChatTestApp(settings *stubSettings, rules []models.ManualRule, llmReply string) *fiber.App {
	chatService := service.NewChatService(
		&stubRules{rules: rules},
		&stubKnowledge{},
		settings,
		&stubGenerator{reply: llmReply},
		&stubTranscripts{},
		"offline",
		zap.NewNop(),
	)
	handler := NewChatHandler(chatService, zap.NewNop())

	app := fiber.New()
	app.Post("/chat", handler.Chat)
	return app
}

func postChat(t *testing.T, app *fiber.App, body dto.ChatRequest) *http.Response {
	t.Helper()

	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/chat", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp
}

func TestChatReturnsRuleAnswer(t *testing.T) {
	rules := []models.ManualRule{
		{ID: uuid.New(), Trigger: "hello", Response: "Hi there, CCCian!", Active: true},
	}
	app := newChatTestApp(&stubSettings{}, rules, "unused")

	resp := postChat(t, app, dto.ChatRequest{
		SessionID: uuid.New().String(),
		Message:   "hello",
	})
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body dto.ChatResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "Hi there, CCCian!", body.Response)
}

func TestChatRejectsEmptyMessage(t *testing.T) {
	app := newChatTestApp(&stubSettings{}, nil, "unused")

	resp := postChat(t, app, dto.ChatRequest{SessionID: uuid.New().String()})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestChatRejectsInvalidSessionID(t *testing.T) {
	app := newChatTestApp(&stubSettings{}, nil, "unused")

	resp := postChat(t, app, dto.ChatRequest{SessionID: "not-a-uuid", Message: "hello"})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestChatResolutionFailureReturnsUplinkMessage(t *testing.T) {
	app := newChatTestApp(&stubSettings{err: errors.New("db down")}, nil, "unused")

	resp := postChat(t, app, dto.ChatRequest{
		SessionID: uuid.New().String(),
		Message:   "hello",
	})
	defer resp.Body.Close()

	require.Equal(t, http.StatusBadGateway, resp.StatusCode)

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, service.UplinkFailedMessage, body["error"])
}
