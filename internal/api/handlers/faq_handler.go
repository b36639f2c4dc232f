package handlers

import (
	"errors"

	"ccc-smartassist/internal/dto"
	"ccc-smartassist/internal/models"
	"ccc-smartassist/internal/repository"
	"ccc-smartassist/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type FAQHandler struct {
	faqService *service.FAQService
	logger     *zap.Logger
}

func NewFAQHandler(faqService *service.FAQService, logger *zap.Logger) *FAQHandler {
	return &FAQHandler{
		faqService: faqService,
		logger:     logger,
	}
}

// List godoc
// @Summary List FAQ questions
// @Tags faqs
// @Produce json
// @Success 200 {array} dto.FAQResponse
// @Router /faqs [get]
func (h *FAQHandler) List(c *fiber.Ctx) error {
	faqs, err := h.faqService.List(c.Context())
	if err != nil {
		h.logger.Error("Failed to list FAQs", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to load FAQs",
		})
	}

	resp := make([]dto.FAQResponse, 0, len(faqs))
	for _, faq := range faqs {
		resp = append(resp, toFAQResponse(&faq))
	}
	return c.JSON(resp)
}

// Add godoc
// @Summary Add an FAQ question
// @Tags faqs
// @Accept json
// @Produce json
// @Param request body dto.AddFAQRequest true "FAQ"
// @Security Bearer
// @Success 201 {object} dto.FAQResponse
// @Failure 400 {object} map[string]string
// @Router /faqs [post]
func (h *FAQHandler) Add(c *fiber.Ctx) error {
	var req dto.AddFAQRequest
	if err := c.BodyParser(&req); err != nil || req.Question == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Question is required",
		})
	}

	faq, err := h.faqService.Add(c.Context(), &req)
	if err != nil {
		h.logger.Error("Failed to add FAQ", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to add FAQ",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(toFAQResponse(faq))
}

// Update godoc
// @Summary Update an FAQ question
// @Tags faqs
// @Accept json
// @Produce json
// @Param id path string true "FAQ ID"
// @Param request body dto.UpdateFAQRequest true "Updated question"
// @Security Bearer
// @Success 200 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /faqs/{id} [put]
func (h *FAQHandler) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid id",
		})
	}

	var req dto.UpdateFAQRequest
	if err := c.BodyParser(&req); err != nil || req.Question == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Question is required",
		})
	}

	if err := h.faqService.Update(c.Context(), id, req.Question); err != nil {
		if errors.Is(err, repository.ErrFAQNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "FAQ not found",
			})
		}
		h.logger.Error("Failed to update FAQ", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to update FAQ",
		})
	}

	return c.JSON(fiber.Map{"status": "success"})
}

// Delete godoc
// @Summary Delete an FAQ question
// @Tags faqs
// @Produce json
// @Param id path string true "FAQ ID"
// @Security Bearer
// @Success 200 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /faqs/{id} [delete]
func (h *FAQHandler) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid id",
		})
	}

	if err := h.faqService.Delete(c.Context(), id); err != nil {
		if errors.Is(err, repository.ErrFAQNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "FAQ not found",
			})
		}
		h.logger.Error("Failed to delete FAQ", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to delete FAQ",
		})
	}

	return c.JSON(fiber.Map{"status": "success"})
}

// Suggestions godoc
// @Summary List suggested questions for the chat landing screen
// @Tags faqs
// @Produce json
// @Success 200 {array} string
// @Router /suggestions [get]
func (h *FAQHandler) Suggestions(c *fiber.Ctx) error {
	suggestions, err := h.faqService.Suggestions(c.Context())
	if err != nil {
		h.logger.Error("Failed to load suggestions", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to load suggestions",
		})
	}
	return c.JSON(suggestions)
}

func toFAQResponse(faq *models.FAQ) dto.FAQResponse {
	return dto.FAQResponse{
		ID:        faq.ID.String(),
		Question:  faq.Question,
		Category:  faq.Category,
		DateAdded: faq.DateAdded,
	}
}
