package handlers

import (
	"ccc-smartassist/internal/dto"
	"ccc-smartassist/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type ChatHandler struct {
	chatService *service.ChatService
	logger      *zap.Logger
}

func NewChatHandler(chatService *service.ChatService, logger *zap.Logger) *ChatHandler {
	return &ChatHandler{
		chatService: chatService,
		logger:      logger,
	}
}

// Chat godoc
// @Summary Resolve a chat message
// @Description Answers a chat turn via manual rules, the LLM, or the offline fallback. Guests may chat; only authenticated users get their conversation persisted.
// @Tags chat
// @Accept json
// @Produce json
// @Param request body dto.ChatRequest true "Chat request"
// @Success 200 {object} dto.ChatResponse
// @Failure 400 {object} map[string]string
// @Failure 502 {object} map[string]string
// @Router /chat [post]
func (h *ChatHandler) Chat(c *fiber.Ctx) error {
	var req dto.ChatRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}
	if req.Message == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Message is required",
		})
	}

	sessionID, err := uuid.Parse(req.SessionID)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid session id",
		})
	}

	// Guests resolve without persistence.
	var userID *uuid.UUID
	if id, err := getUserID(c); err == nil {
		userID = &id
	}

	answer, err := h.chatService.Resolve(c.Context(), sessionID, userID, req.Message, req.History, req.SystemInstruction)
	if err != nil {
		h.logger.Error("Chat resolution failed", zap.Error(err),
			zap.String("session_id", sessionID.String()),
		)
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
			"error": service.UplinkFailedMessage,
		})
	}

	return c.JSON(dto.ChatResponse{Response: answer})
}
