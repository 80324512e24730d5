package handlers

import (
	"errors"

	"finwise/internal/dto"
	"finwise/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type IncomeHandler struct {
	incomeService *service.IncomeService
	logger        *zap.Logger
}

func NewIncomeHandler(incomeService *service.IncomeService, logger *zap.Logger) *IncomeHandler {
	return &IncomeHandler{
		incomeService: incomeService,
		logger:        logger,
	}
}

// Create godoc
// @Summary Add an income record
// @Tags income
// @Accept json
// @Produce json
// @Param request body dto.CreateIncomeRequest true "Income record"
// @Security Bearer
// @Success 201 {object} dto.IncomeResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /api/income [post]
func (h *IncomeHandler) Create(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Unauthorized",
		})
	}

	var req dto.CreateIncomeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	resp, err := h.incomeService.Create(c.Context(), userID, &req)
	if err != nil {
		if errors.Is(err, service.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": err.Error(),
			})
		}
		h.logger.Error("Failed to add income", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to add income",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(resp)
}

// List godoc
// @Summary List own income records
// @Tags income
// @Produce json
// @Security Bearer
// @Success 200 {object} dto.IncomeListResponse
// @Failure 401 {object} map[string]string
// @Router /api/income [get]
func (h *IncomeHandler) List(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Unauthorized",
		})
	}

	resp, err := h.incomeService.List(c.Context(), userID)
	if err != nil {
		h.logger.Error("Failed to list income", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to list income",
		})
	}

	return c.JSON(resp)
}

// Update godoc
// @Summary Update an income record
// @Tags income
// @Accept json
// @Produce json
// @Param id path string true "Record ID"
// @Param request body dto.UpdateIncomeRequest true "Income record"
// @Security Bearer
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /api/income/{id} [put]
func (h *IncomeHandler) Update(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Unauthorized",
		})
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid record ID",
		})
	}

	var req dto.UpdateIncomeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	if err := h.incomeService.Update(c.Context(), userID, id, &req); err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidInput):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": err.Error(),
			})
		case errors.Is(err, service.ErrRecordNotFound):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Record not found",
			})
		}
		h.logger.Error("Failed to update income", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to update income",
		})
	}

	return c.JSON(fiber.Map{"message": "Income updated successfully"})
}

// Delete godoc
// @Summary Delete an income record
// @Tags income
// @Produce json
// @Param id path string true "Record ID"
// @Security Bearer
// @Success 200 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /api/income/{id} [delete]
func (h *IncomeHandler) Delete(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Unauthorized",
		})
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid record ID",
		})
	}

	if err := h.incomeService.Delete(c.Context(), userID, id); err != nil {
		if errors.Is(err, service.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Record not found",
			})
		}
		h.logger.Error("Failed to delete income", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to delete income",
		})
	}

	return c.JSON(fiber.Map{"message": "Income deleted successfully"})
}
