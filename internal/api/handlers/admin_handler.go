package handlers

import (
	"errors"

	"finwise/internal/dto"
	"finwise/internal/service"

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

// Register godoc
// @Summary Register a new admin
// @Tags admin
// @Accept json
// @Produce json
// @Param request body dto.AdminRegisterRequest true "Admin registration request"
// @Success 201 {object} dto.AdminAuthResponse
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /api/admin/register [post]
func (h *AdminHandler) Register(c *fiber.Ctx) error {
	var req dto.AdminRegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}
	if req.Name == "" || req.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "name and password are required",
		})
	}

	resp, err := h.adminService.Register(c.Context(), &req)
	if err != nil {
		if errors.Is(err, service.ErrAdminExists) {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{
				"error": "Admin already exists",
			})
		}
		h.logger.Error("Admin registration failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Admin registration failed",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(resp)
}

// Login godoc
// @Summary Login admin
// @Tags admin
// @Accept json
// @Produce json
// @Param request body dto.AdminLoginRequest true "Admin login request"
// @Success 200 {object} dto.AdminAuthResponse
// @Failure 401 {object} map[string]string
// @Router /api/admin/login [post]
func (h *AdminHandler) Login(c *fiber.Ctx) error {
	var req dto.AdminLoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	resp, err := h.adminService.Login(c.Context(), &req)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Invalid credentials",
			})
		}
		h.logger.Error("Admin login failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Admin login failed",
		})
	}

	return c.JSON(resp)
}

// Profile godoc
// @Summary Get own admin profile
// @Tags admin
// @Produce json
// @Security Bearer
// @Success 200 {object} dto.AdminResponse
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /api/admin/profile [get]
func (h *AdminHandler) Profile(c *fiber.Ctx) error {
	adminID, err := getUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Unauthorized",
		})
	}

	resp, err := h.adminService.Profile(c.Context(), adminID)
	if err != nil {
		if errors.Is(err, service.ErrAdminNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Admin not found",
			})
		}
		h.logger.Error("Failed to load admin profile", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to load admin profile",
		})
	}

	return c.JSON(resp)
}

// ListUsers godoc
// @Summary List all users
// @Tags admin
// @Produce json
// @Security Bearer
// @Success 200 {object} dto.UserListResponse
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /api/admin/users [get]
func (h *AdminHandler) ListUsers(c *fiber.Ctx) error {
	resp, err := h.adminService.ListUsers(c.Context())
	if err != nil {
		h.logger.Error("Failed to list users", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to list users",
		})
	}

	return c.JSON(resp)
}

// DeleteUser godoc
// @Summary Delete a user and all their records
// @Tags admin
// @Produce json
// @Param id path string true "User ID"
// @Security Bearer
// @Success 200 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /api/admin/users/{id} [delete]
func (h *AdminHandler) DeleteUser(c *fiber.Ctx) error {
	userID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid user ID",
		})
	}

	if err := h.adminService.DeleteUser(c.Context(), userID); err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "User not found",
			})
		}
		h.logger.Error("Failed to delete user", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to delete user",
		})
	}

	return c.JSON(fiber.Map{"message": "User deleted successfully"})
}
