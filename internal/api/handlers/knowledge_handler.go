package handlers

import (
	"errors"
	"io"

	"ccc-smartassist/internal/dto"
	"ccc-smartassist/internal/models"
	"ccc-smartassist/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type KnowledgeHandler struct {
	knowledgeService *service.KnowledgeService
	logger           *zap.Logger
}

func NewKnowledgeHandler(knowledgeService *service.KnowledgeService, logger *zap.Logger) *KnowledgeHandler {
	return &KnowledgeHandler{
		knowledgeService: knowledgeService,
		logger:           logger,
	}
}

// List godoc
// @Summary List knowledge base items
// @Tags knowledge
// @Produce json
// @Success 200 {array} dto.KnowledgeResponse
// @Router /knowledge [get]
func (h *KnowledgeHandler) List(c *fiber.Ctx) error {
	items, err := h.knowledgeService.List(c.Context())
	if err != nil {
		h.logger.Error("Failed to list knowledge base", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to load knowledge base",
		})
	}

	resp := make([]dto.KnowledgeResponse, 0, len(items))
	for _, item := range items {
		resp = append(resp, toKnowledgeResponse(&item))
	}
	return c.JSON(resp)
}

// Add godoc
// @Summary Add a knowledge item
// @Tags knowledge
// @Accept json
// @Produce json
// @Param request body dto.AddKnowledgeRequest true "Knowledge item"
// @Security Bearer
// @Success 201 {object} dto.KnowledgeResponse
// @Failure 400 {object} map[string]string
// @Router /knowledge [post]
func (h *KnowledgeHandler) Add(c *fiber.Ctx) error {
	var req dto.AddKnowledgeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}
	if req.Question == "" || req.Answer == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Question and answer are required",
		})
	}

	item, err := h.knowledgeService.Add(c.Context(), &req)
	if err != nil {
		h.logger.Error("Failed to add knowledge item", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to add knowledge item",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(toKnowledgeResponse(item))
}

// Upload godoc
// @Summary Import knowledge from a PDF
// @Description Extracts the text of an uploaded PDF and stores it as a knowledge item
// @Tags knowledge
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "PDF document"
// @Param title formData string true "Knowledge item title"
// @Param category formData string false "Category (defaults to general)"
// @Security Bearer
// @Success 201 {object} dto.KnowledgeResponse
// @Failure 400 {object} map[string]string
// @Router /knowledge/upload [post]
func (h *KnowledgeHandler) Upload(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "File is required",
		})
	}

	title := c.FormValue("title")
	if title == "" {
		title = fileHeader.Filename
	}
	category := c.FormValue("category", string(models.CategoryGeneral))

	file, err := fileHeader.Open()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Failed to read file",
		})
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Failed to read file",
		})
	}

	item, err := h.knowledgeService.ImportPDF(c.Context(), title, category, data)
	if err != nil {
		if errors.Is(err, service.ErrEmptyDocument) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Document contains no extractable text",
			})
		}
		h.logger.Error("PDF import failed", zap.Error(err), zap.String("file", fileHeader.Filename))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to import document",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(toKnowledgeResponse(item))
}

// Delete godoc
// @Summary Delete a knowledge item
// @Tags knowledge
// @Produce json
// @Param id path string true "Knowledge item ID"
// @Security Bearer
// @Success 200 {object} map[string]string
// @Router /knowledge/{id} [delete]
func (h *KnowledgeHandler) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid id",
		})
	}

	if err := h.knowledgeService.Delete(c.Context(), id); err != nil {
		h.logger.Error("Failed to delete knowledge item", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to delete knowledge item",
		})
	}

	return c.JSON(fiber.Map{"status": "success"})
}

func toKnowledgeResponse(item *models.KnowledgeItem) dto.KnowledgeResponse {
	return dto.KnowledgeResponse{
		ID:        item.ID.String(),
		Question:  item.Question,
		Answer:    item.Answer,
		Category:  string(item.Category),
		Source:    string(item.Source),
		DateAdded: item.DateAdded,
	}
}
