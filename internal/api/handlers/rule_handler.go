package handlers

import (
	"ccc-smartassist/internal/dto"
	"ccc-smartassist/internal/models"
	"ccc-smartassist/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type RuleHandler struct {
	ruleService *service.RuleService
	logger      *zap.Logger
}

func NewRuleHandler(ruleService *service.RuleService, logger *zap.Logger) *RuleHandler {
	return &RuleHandler{
		ruleService: ruleService,
		logger:      logger,
	}
}

// List godoc
// @Summary List manual rules
// @Tags rules
// @Produce json
// @Success 200 {array} dto.RuleResponse
// @Router /rules [get]
func (h *RuleHandler) List(c *fiber.Ctx) error {
	rules, err := h.ruleService.List(c.Context())
	if err != nil {
		h.logger.Error("Failed to list rules", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to load rules",
		})
	}

	resp := make([]dto.RuleResponse, 0, len(rules))
	for _, rule := range rules {
		resp = append(resp, toRuleResponse(&rule))
	}
	return c.JSON(resp)
}

// Add godoc
// @Summary Add a manual rule
// @Tags rules
// @Accept json
// @Produce json
// @Param request body dto.AddRuleRequest true "Rule"
// @Security Bearer
// @Success 201 {object} dto.RuleResponse
// @Failure 400 {object} map[string]string
// @Router /rules [post]
func (h *RuleHandler) Add(c *fiber.Ctx) error {
	var req dto.AddRuleRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}
	if req.Trigger == "" || req.Response == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Trigger and response are required",
		})
	}

	rule, err := h.ruleService.Add(c.Context(), &req)
	if err != nil {
		h.logger.Error("Failed to add rule", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to add rule",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(toRuleResponse(rule))
}

// Delete godoc
// @Summary Delete a manual rule
// @Tags rules
// @Produce json
// @Param id path string true "Rule ID"
// @Security Bearer
// @Success 200 {object} map[string]string
// @Router /rules/{id} [delete]
func (h *RuleHandler) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid id",
		})
	}

	if err := h.ruleService.Delete(c.Context(), id); err != nil {
		h.logger.Error("Failed to delete rule", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to delete rule",
		})
	}

	return c.JSON(fiber.Map{"status": "success"})
}

func toRuleResponse(rule *models.ManualRule) dto.RuleResponse {
	return dto.RuleResponse{
		ID:       rule.ID.String(),
		Trigger:  rule.Trigger,
		Response: rule.Response,
		Active:   rule.Active,
	}
}
