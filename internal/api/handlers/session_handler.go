package handlers

import (
	"ccc-smartassist/internal/dto"
	"ccc-smartassist/internal/models"
	"ccc-smartassist/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type SessionHandler struct {
	sessionService *service.SessionService
	logger         *zap.Logger
}

func NewSessionHandler(sessionService *service.SessionService, logger *zap.Logger) *SessionHandler {
	return &SessionHandler{
		sessionService: sessionService,
		logger:         logger,
	}
}

// List godoc
// @Summary List chat sessions with transcripts
// @Description Returns the caller's sessions; admins may pass admin=true for the portal-wide view
// @Tags sessions
// @Produce json
// @Param admin query bool false "Admin view (all users)"
// @Security Bearer
// @Success 200 {array} dto.SessionResponse
// @Router /sessions [get]
func (h *SessionHandler) List(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Unauthorized",
		})
	}

	adminView := isAdmin(c) && c.Query("admin") == "true"

	sessions, err := h.sessionService.List(c.Context(), userID, adminView)
	if err != nil {
		h.logger.Error("Failed to list sessions", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to load sessions",
		})
	}

	resp := make([]dto.SessionResponse, 0, len(sessions))
	for _, s := range sessions {
		resp = append(resp, toSessionResponse(s))
	}
	return c.JSON(resp)
}

// Save godoc
// @Summary Create or rename a chat session
// @Tags sessions
// @Accept json
// @Produce json
// @Param request body dto.SaveSessionRequest true "Session"
// @Security Bearer
// @Success 200 {object} map[string]string
// @Router /sessions [post]
func (h *SessionHandler) Save(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Unauthorized",
		})
	}

	var req dto.SaveSessionRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	sessionID, err := uuid.Parse(req.ID)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid session id",
		})
	}

	if err := h.sessionService.Save(c.Context(), sessionID, userID, req.Title, req.LastUpdated); err != nil {
		h.logger.Error("Failed to save session", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to save session",
		})
	}

	return c.JSON(fiber.Map{"status": "success"})
}

// Delete godoc
// @Summary Delete a chat session
// @Tags sessions
// @Produce json
// @Param id path string true "Session ID"
// @Security Bearer
// @Success 200 {object} map[string]string
// @Router /sessions/{id} [delete]
func (h *SessionHandler) Delete(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Unauthorized",
		})
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid id",
		})
	}

	if err := h.sessionService.Delete(c.Context(), id, userID, isAdmin(c)); err != nil {
		h.logger.Error("Failed to delete session", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to delete session",
		})
	}

	return c.JSON(fiber.Map{"status": "success"})
}

// Feedback godoc
// @Summary Record feedback on an assistant message
// @Tags sessions
// @Accept json
// @Produce json
// @Param request body dto.FeedbackRequest true "Feedback (1 or -1)"
// @Security Bearer
// @Success 200 {object} map[string]string
// @Router /feedback [post]
func (h *SessionHandler) Feedback(c *fiber.Ctx) error {
	var req dto.FeedbackRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}
	if req.Feedback != 1 && req.Feedback != -1 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Feedback must be 1 or -1",
		})
	}

	messageID, err := uuid.Parse(req.MessageID)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid message id",
		})
	}

	if err := h.sessionService.SetFeedback(c.Context(), messageID, req.Feedback); err != nil {
		h.logger.Error("Failed to record feedback", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to record feedback",
		})
	}

	return c.JSON(fiber.Map{"status": "success"})
}

func toSessionResponse(s *models.ChatSession) dto.SessionResponse {
	messages := make([]dto.MessageResponse, 0, len(s.Messages))
	for _, m := range s.Messages {
		messages = append(messages, dto.MessageResponse{
			ID:        m.ID.String(),
			Role:      string(m.Role),
			Content:   m.Content,
			Timestamp: m.Timestamp,
			IsError:   m.IsError,
			Feedback:  m.Feedback,
		})
	}

	return dto.SessionResponse{
		ID:          s.ID.String(),
		Title:       s.Title,
		LastUpdated: s.LastUpdated,
		Messages:    messages,
	}
}
