package service

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"ccc-smartassist/internal/dto"
	"ccc-smartassist/internal/models"
	"ccc-smartassist/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestGeminiService(baseURL string) *GeminiService {
	svc := NewGeminiService(&config.GeminiConfig{
		Model:   "gemini-2.5-flash",
		Profile: "strict",
		Timeout: 5 * time.Second,
	}, zap.NewNop())
	if baseURL != "" {
		svc.baseURL = baseURL
	}
	return svc
}

func successBody(text string) string {
	return `{"candidates":[{"content":{"parts":[{"text":` + jsonString(text) + `}]}}]}`
}

func jsonString(s string) string {
	b, _ := json.Marshal(s)
	return string(b)
}

func TestGenerateFailsFastWithoutKey(t *testing.T) {
	called := false
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	defer server.Close()

	svc := newTestGeminiService(server.URL)

	_, err := svc.Generate(context.Background(), "", nil, nil, "hello", "")
	assert.ErrorIs(t, err, ErrMissingAPIKey)
	assert.False(t, called, "no network I/O expected when the key is missing")
}

func TestGenerateSettingsKeyTakesPriority(t *testing.T) {
	var gotKey string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotKey = r.URL.Query().Get("key")
		w.Write([]byte(successBody("ok")))
	}))
	defer server.Close()

	svc := newTestGeminiService(server.URL)
	svc.config.APIKey = "env-key"

	_, err := svc.Generate(context.Background(), "settings-key", nil, nil, "hello", "")
	require.NoError(t, err)
	assert.Equal(t, "settings-key", gotKey)
}

func TestGenerateReturnsCandidateText(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(successBody("Enrollment opens in June.")))
	}))
	defer server.Close()

	svc := newTestGeminiService(server.URL)

	got, err := svc.Generate(context.Background(), "key", nil, nil, "when is enrollment", "")
	require.NoError(t, err)
	assert.Equal(t, "Enrollment opens in June.", got)
}

func TestGenerateEmptyCandidates(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"candidates":[]}`))
	}))
	defer server.Close()

	svc := newTestGeminiService(server.URL)

	got, err := svc.Generate(context.Background(), "key", nil, nil, "hello", "")
	require.NoError(t, err)
	assert.Equal(t, emptyCandidatesReply, got)
}

func TestGenerateTruncatesHistory(t *testing.T) {
	var captured geminiRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))
		w.Write([]byte(successBody("ok")))
	}))
	defer server.Close()

	svc := newTestGeminiService(server.URL)

	history := make([]dto.HistoryMessage, 15)
	for i := range history {
		role := "user"
		if i%2 == 1 {
			role = "model"
		}
		history[i] = dto.HistoryMessage{Role: role, Content: "turn"}
	}

	_, err := svc.Generate(context.Background(), "key", nil, history, "current question", "")
	require.NoError(t, err)

	// Last 10 history turns plus the current message.
	require.Len(t, captured.Contents, 11)
	last := captured.Contents[len(captured.Contents)-1]
	assert.Equal(t, "user", last.Role)
	assert.Equal(t, "current question", last.Parts[0].Text)
}

func TestGenerateNormalizesRoles(t *testing.T) {
	var captured geminiRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))
		w.Write([]byte(successBody("ok")))
	}))
	defer server.Close()

	svc := newTestGeminiService(server.URL)

	history := []dto.HistoryMessage{
		{Role: "system", Content: "dropped"},
		{Role: "student", Content: "a question"},
		{Role: "assistant", Content: "an answer"},
	}

	_, err := svc.Generate(context.Background(), "key", nil, history, "next", "")
	require.NoError(t, err)

	require.Len(t, captured.Contents, 3)
	assert.Equal(t, "user", captured.Contents[0].Role)
	assert.Equal(t, "model", captured.Contents[1].Role)
}

func TestGenerateSystemInstructionCarriesKnowledge(t *testing.T) {
	var captured geminiRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))
		w.Write([]byte(successBody("ok")))
	}))
	defer server.Close()

	svc := newTestGeminiService(server.URL)

	kb := []models.KnowledgeItem{
		kbItem("Library Hours", "Open 8AM to 6PM."),
	}

	_, err := svc.Generate(context.Background(), "key", kb, nil, "hello", "Answer cheerfully.")
	require.NoError(t, err)

	require.Len(t, captured.SystemInstruction.Parts, 1)
	instruction := captured.SystemInstruction.Parts[0].Text
	assert.Contains(t, instruction, "OFFICIAL KNOWLEDGE BASE")
	assert.Contains(t, instruction, "--- SOURCE: Library Hours ---")
	assert.Contains(t, instruction, "Open 8AM to 6PM.")
	assert.Contains(t, instruction, "Answer cheerfully.")

	assert.Equal(t, 0.1, captured.GenerationConfig.Temperature)
	assert.Equal(t, 1024, captured.GenerationConfig.MaxOutputTokens)
}

func TestGenerateConversationalProfile(t *testing.T) {
	var captured geminiRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))
		w.Write([]byte(successBody("ok")))
	}))
	defer server.Close()

	svc := newTestGeminiService(server.URL)
	svc.config.Profile = "conversational"

	_, err := svc.Generate(context.Background(), "key", nil, nil, "hello", "")
	require.NoError(t, err)
	assert.Equal(t, 0.7, captured.GenerationConfig.Temperature)
}

func TestGenerateClassifiesQuotaErrors(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
	}{
		{"rate limited", http.StatusTooManyRequests, `{"error":{"message":"rate limit"}}`},
		{"quota message", http.StatusForbidden, `{"error":{"message":"Quota exceeded for this project"}}`},
		{"bad key", http.StatusBadRequest, `{"error":{"message":"API key not valid"}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			}))
			defer server.Close()

			svc := newTestGeminiService(server.URL)

			_, err := svc.Generate(context.Background(), "key", nil, nil, "hello", "")
			assert.ErrorIs(t, err, ErrQuotaExceeded)
		})
	}
}

func TestGenerateUpstreamError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"error":{"message":"internal failure"}}`))
	}))
	defer server.Close()

	svc := newTestGeminiService(server.URL)

	_, err := svc.Generate(context.Background(), "key", nil, nil, "hello", "")

	var upstream *UpstreamError
	require.True(t, errors.As(err, &upstream))
	assert.Equal(t, http.StatusInternalServerError, upstream.Status)
	assert.Equal(t, "internal failure", upstream.Message)
}

func TestGenerateTransportError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // refuse connections

	svc := newTestGeminiService(server.URL)

	_, err := svc.Generate(context.Background(), "key", nil, nil, "hello", "")

	var upstream *UpstreamError
	require.True(t, errors.As(err, &upstream))
	assert.Equal(t, 0, upstream.Status)
}
