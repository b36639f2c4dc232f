package handlers

import (
	"errors"

	"ccc-smartassist/internal/dto"
	"ccc-smartassist/internal/models"
	"ccc-smartassist/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type AdminHandler struct {
	adminService *service.AdminService
	logger       *zap.Logger
}

func NewAdminHandler(adminService *service.AdminService, logger *zap.Logger) *AdminHandler {
	return &AdminHandler{
		adminService: adminService,
		logger:       logger,
	}
}

// Stats godoc
// @Summary Portal usage statistics
// @Tags admin
// @Produce json
// @Security Bearer
// @Success 200 {object} dto.StatsResponse
// @Router /admin/stats [get]
func (h *AdminHandler) Stats(c *fiber.Ctx) error {
	stats, err := h.adminService.Stats(c.Context())
	if err != nil {
		h.logger.Error("Failed to compute stats", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to load statistics",
		})
	}
	return c.JSON(stats)
}

// ListUsers godoc
// @Summary List registered users
// @Tags admin
// @Produce json
// @Security Bearer
// @Success 200 {array} dto.ProfileResponse
// @Router /admin/users [get]
func (h *AdminHandler) ListUsers(c *fiber.Ctx) error {
	users, err := h.adminService.ListUsers(c.Context())
	if err != nil {
		h.logger.Error("Failed to list users", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to load users",
		})
	}

	resp := make([]dto.ProfileResponse, 0, len(users))
	for _, user := range users {
		resp = append(resp, toProfileResponse(user))
	}
	return c.JSON(resp)
}

// UpdateUser godoc
// @Summary Update any user's profile
// @Tags admin
// @Accept json
// @Produce json
// @Param id path string true "User ID"
// @Param request body dto.UpdateProfileRequest true "Profile fields"
// @Security Bearer
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Router /admin/users/{id} [put]
func (h *AdminHandler) UpdateUser(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid id",
		})
	}

	var req dto.UpdateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	if err := h.adminService.UpdateProfile(c.Context(), id, &req); err != nil {
		h.logger.Error("Failed to update user", zap.Error(err), zap.String("user_id", id.String()))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to update user",
		})
	}

	return c.JSON(fiber.Map{"status": "success"})
}

// DeleteUser godoc
// @Summary Delete a user account
// @Tags admin
// @Produce json
// @Param id path string true "User ID"
// @Security Bearer
// @Success 200 {object} map[string]string
// @Router /admin/users/{id} [delete]
func (h *AdminHandler) DeleteUser(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid id",
		})
	}

	// Admins cannot remove their own account.
	if callerID, err := getUserID(c); err == nil && callerID == id {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cannot delete your own account",
		})
	}

	if err := h.adminService.DeleteUser(c.Context(), id); err != nil {
		h.logger.Error("Failed to delete user", zap.Error(err), zap.String("user_id", id.String()))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to delete user",
		})
	}

	return c.JSON(fiber.Map{"status": "success"})
}

// GetProfile godoc
// @Summary Get the caller's profile
// @Tags profile
// @Produce json
// @Security Bearer
// @Success 200 {object} dto.ProfileResponse
// @Router /profile [get]
func (h *AdminHandler) GetProfile(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Unauthorized",
		})
	}

	user, err := h.adminService.GetProfile(c.Context(), userID)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "User not found",
			})
		}
		h.logger.Error("Failed to load profile", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to load profile",
		})
	}

	return c.JSON(toProfileResponse(user))
}

// UpdateProfile godoc
// @Summary Update the caller's profile
// @Tags profile
// @Accept json
// @Produce json
// @Param request body dto.UpdateProfileRequest true "Profile fields"
// @Security Bearer
// @Success 200 {object} map[string]string
// @Router /profile [put]
func (h *AdminHandler) UpdateProfile(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Unauthorized",
		})
	}

	var req dto.UpdateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	if err := h.adminService.UpdateProfile(c.Context(), userID, &req); err != nil {
		h.logger.Error("Failed to update profile", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to update profile",
		})
	}

	return c.JSON(fiber.Map{"status": "success"})
}

// GetSettings godoc
// @Summary Get public branding settings
// @Tags settings
// @Produce json
// @Success 200 {object} dto.SettingsResponse
// @Router /settings [get]
func (h *AdminHandler) GetSettings(c *fiber.Ctx) error {
	settings, err := h.adminService.GetSettings(c.Context())
	if err != nil {
		h.logger.Error("Failed to load settings", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to load settings",
		})
	}

	return c.JSON(dto.SettingsResponse{
		SystemName: settings.SystemName,
		ThemeColor: settings.ThemeColor,
	})
}

// GetAdminSettings godoc
// @Summary Get full system settings including the API key
// @Tags admin
// @Produce json
// @Security Bearer
// @Success 200 {object} dto.AdminSettingsResponse
// @Router /admin/settings [get]
func (h *AdminHandler) GetAdminSettings(c *fiber.Ctx) error {
	settings, err := h.adminService.GetSettings(c.Context())
	if err != nil {
		h.logger.Error("Failed to load settings", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to load settings",
		})
	}

	return c.JSON(dto.AdminSettingsResponse{
		SystemName: settings.SystemName,
		ThemeColor: settings.ThemeColor,
		APIKey:     settings.APIKey,
	})
}

// UpdateSettings godoc
// @Summary Update system settings
// @Tags admin
// @Accept json
// @Produce json
// @Param request body dto.UpdateSettingsRequest true "Settings"
// @Security Bearer
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Router /admin/settings [post]
func (h *AdminHandler) UpdateSettings(c *fiber.Ctx) error {
	var req dto.UpdateSettingsRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}
	if req.SystemName == "" || req.ThemeColor == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "System name and theme color are required",
		})
	}

	if err := h.adminService.UpdateSettings(c.Context(), &req); err != nil {
		h.logger.Error("Failed to update settings", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to update settings",
		})
	}

	return c.JSON(fiber.Map{"status": "success"})
}

func toProfileResponse(user *models.User) dto.ProfileResponse {
	return dto.ProfileResponse{
		ID:        user.ID.String(),
		Username:  user.Username,
		Role:      string(user.Role),
		FullName:  user.FullName,
		Email:     user.Email,
		StudentID: user.StudentID,
		Course:    user.Course,
		YearLevel: user.YearLevel,
	}
}
