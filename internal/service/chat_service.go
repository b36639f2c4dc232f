package service

import (
	"context"
	"fmt"
	"time"

	"ccc-smartassist/internal/dto"
	"ccc-smartassist/internal/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// UplinkFailedMessage is the client-visible placeholder used when resolution
// itself breaks (not when the LLM degrades). Turns that end here are never
// persisted as real exchanges.
const UplinkFailedMessage = "System uplink failed. Please check your connection and try again."

const maintenancePrefix = "I'm currently undergoing maintenance. Error: "

// sessionTitleLength caps the title derived from the first user message.
const sessionTitleLength = 30

// Resolution paths, logged with every resolved turn.
const (
	pathRule    = "rule"
	pathLLM     = "llm"
	pathOffline = "offline"
	pathApology = "apology"
)

// Collaborator interfaces of the resolver. The concrete repositories and the
// Gemini service satisfy them; tests substitute in-memory fakes.
type RuleSource interface {
	ListActive(ctx context.Context) ([]models.ManualRule, error)
}

type KnowledgeSource interface {
	List(ctx context.Context) ([]models.KnowledgeItem, error)
}

type SettingsSource interface {
	Get(ctx context.Context) (*models.SystemSettings, error)
}

type Generator interface {
	Generate(ctx context.Context, apiKey string, knowledgeBase []models.KnowledgeItem,
		history []dto.HistoryMessage, userMessage, instructionOverride string) (string, error)
}

type TranscriptStore interface {
	CreateIfAbsent(ctx context.Context, session *models.ChatSession) error
	InsertMessage(ctx context.Context, msg *models.Message) error
	Touch(ctx context.Context, id uuid.UUID, lastUpdated int64) error
}

// ChatService resolves each incoming chat message through a fixed pipeline:
// manual rules first, then the remote model, then local degradation. Stages
// are tried strictly in order and short-circuit on first success; one attempt
// per stage per turn, no retries.
type ChatService struct {
	rules       RuleSource
	knowledge   KnowledgeSource
	settings    SettingsSource
	llm         Generator
	transcripts TranscriptStore
	matcher     *RuleMatcher
	fallback    *OfflineFallback
	degradeMode string
	logger      *zap.Logger
}

func NewChatService(
	rules RuleSource,
	knowledge KnowledgeSource,
	settings SettingsSource,
	llm Generator,
	transcripts TranscriptStore,
	degradeMode string,
	logger *zap.Logger,
) *ChatService {
	return &ChatService{
		rules:       rules,
		knowledge:   knowledge,
		settings:    settings,
		llm:         llm,
		transcripts: transcripts,
		matcher:     NewRuleMatcher(),
		fallback:    NewOfflineFallback(),
		degradeMode: degradeMode,
		logger:      logger,
	}
}

// Resolve answers one chat turn. userID is nil for guests, whose turns are
// never persisted. The rule/knowledge/settings snapshots are loaded once at
// turn start; a refresh mid-turn does not affect an in-flight resolution.
func (s *ChatService) Resolve(
	ctx context.Context,
	sessionID uuid.UUID,
	userID *uuid.UUID,
	message string,
	history []dto.HistoryMessage,
	instructionOverride string,
) (string, error) {
	settings, err := s.settings.Get(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to load settings: %w", err)
	}

	rules, err := s.rules.ListActive(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to load rules: %w", err)
	}

	knowledgeBase, err := s.knowledge.List(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to load knowledge base: %w", err)
	}

	answer, path := s.resolveAnswer(ctx, settings.APIKey, message, history, instructionOverride, rules, knowledgeBase)

	if userID != nil {
		if err := s.persistTurn(ctx, sessionID, *userID, message, answer); err != nil {
			return "", fmt.Errorf("failed to persist chat turn: %w", err)
		}
	}

	s.logger.Info("Chat turn resolved",
		zap.String("session_id", sessionID.String()),
		zap.String("path", path),
		zap.Bool("guest", userID == nil),
	)

	return answer, nil
}

func (s *ChatService) resolveAnswer(
	ctx context.Context,
	apiKey string,
	message string,
	history []dto.HistoryMessage,
	instructionOverride string,
	rules []models.ManualRule,
	knowledgeBase []models.KnowledgeItem,
) (string, string) {
	// Fast path: exact match first so a precise rule beats a broader
	// substring rule stored earlier, then the storage-order substring scan.
	if response, ok := s.matcher.MatchExact(message, rules); ok {
		return response, pathRule
	}
	if response, ok := s.matcher.MatchSubstring(message, rules); ok {
		return response, pathRule
	}

	text, err := s.llm.Generate(ctx, apiKey, knowledgeBase, history, message, instructionOverride)
	if err == nil {
		return text, pathLLM
	}

	// Any gateway failure degrades to a user-facing answer; a raw transport
	// error is never the chat reply.
	s.logger.Warn("Generation failed, degrading", zap.Error(err), zap.String("mode", s.degradeMode))

	if s.degradeMode == "apology" {
		return maintenancePrefix + err.Error(), pathApology
	}
	return s.fallback.Answer(message, knowledgeBase), pathOffline
}

// persistTurn stores the inbound user message and the outbound answer and
// bumps the owning session. The session row is created on the first message
// of a conversation, titled from that message.
func (s *ChatService) persistTurn(ctx context.Context, sessionID, userID uuid.UUID, message, answer string) error {
	now := time.Now().UnixMilli()

	session := &models.ChatSession{
		ID:          sessionID,
		UserID:      userID,
		Title:       deriveTitle(message),
		LastUpdated: now,
	}
	if err := s.transcripts.CreateIfAbsent(ctx, session); err != nil {
		return err
	}

	userMsg := &models.Message{
		ID:        uuid.New(),
		SessionID: sessionID,
		Role:      models.RoleUser,
		Content:   message,
		Timestamp: now,
	}
	if err := s.transcripts.InsertMessage(ctx, userMsg); err != nil {
		return err
	}

	botMsg := &models.Message{
		ID:        uuid.New(),
		SessionID: sessionID,
		Role:      models.RoleModel,
		Content:   answer,
		// Transcripts sort by timestamp; the reply must sort after the
		// prompt even when both land on the same millisecond.
		Timestamp: now + 1,
	}
	if err := s.transcripts.InsertMessage(ctx, botMsg); err != nil {
		return err
	}

	return s.transcripts.Touch(ctx, sessionID, now)
}

func deriveTitle(message string) string {
	runes := []rune(message)
	if len(runes) > sessionTitleLength {
		return string(runes[:sessionTitleLength])
	}
	return message
}
