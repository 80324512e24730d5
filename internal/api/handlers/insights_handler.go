package handlers

import (
	"errors"

	"finwise/internal/charts"
	"finwise/internal/finance"
	"finwise/internal/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type InsightsHandler struct {
	insightsService *service.InsightsService
	renderer        *charts.Renderer
	logger          *zap.Logger
}

func NewInsightsHandler(insightsService *service.InsightsService, renderer *charts.Renderer, logger *zap.Logger) *InsightsHandler {
	return &InsightsHandler{
		insightsService: insightsService,
		renderer:        renderer,
		logger:          logger,
	}
}

// Recommendations godoc
// @Summary Get financial summary and recommendations
// @Description Monthly income, expenses, savings rate, per-category totals and rule-based budgeting recommendations
// @Tags insights
// @Produce json
// @Security Bearer
// @Success 200 {object} dto.SummaryResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /api/recommendations [get]
func (h *InsightsHandler) Recommendations(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Unauthorized",
		})
	}

	resp, err := h.insightsService.Summary(c.Context(), userID)
	if err != nil {
		if errors.Is(err, finance.ErrInvalidRecord) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": err.Error(),
			})
		}
		h.logger.Error("Failed to compute summary", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to compute summary",
		})
	}

	return c.JSON(resp)
}

// Visualization godoc
// @Summary Get chart-ready expense series
// @Description Monthly and per-category expense totals over the trailing 180 days
// @Tags insights
// @Produce json
// @Security Bearer
// @Success 200 {object} dto.VisualizationResponse
// @Failure 401 {object} map[string]string
// @Router /api/visualization [get]
func (h *InsightsHandler) Visualization(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Unauthorized",
		})
	}

	resp, err := h.insightsService.Visualization(c.Context(), userID)
	if err != nil {
		if errors.Is(err, finance.ErrInvalidRecord) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": err.Error(),
			})
		}
		h.logger.Error("Failed to compute visualization", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to compute visualization",
		})
	}

	return c.JSON(resp)
}

// MonthlyChart godoc
// @Summary Export the monthly expense chart as PNG
// @Tags insights
// @Produce png
// @Security Bearer
// @Success 200 {file} binary
// @Success 204 "no data in window"
// @Failure 401 {object} map[string]string
// @Router /api/visualization/chart/monthly [get]
func (h *InsightsHandler) MonthlyChart(c *fiber.Ctx) error {
	return h.renderChart(c, h.renderer.MonthlyExpenses)
}

// CategoryChart godoc
// @Summary Export the category breakdown chart as PNG
// @Tags insights
// @Produce png
// @Security Bearer
// @Success 200 {file} binary
// @Success 204 "no data in window"
// @Failure 401 {object} map[string]string
// @Router /api/visualization/chart/category [get]
func (h *InsightsHandler) CategoryChart(c *fiber.Ctx) error {
	return h.renderChart(c, h.renderer.CategoryBreakdown)
}

func (h *InsightsHandler) renderChart(c *fiber.Ctx, render func(*finance.Visualization) ([]byte, error)) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Unauthorized",
		})
	}

	viz, err := h.insightsService.VisualizationSeries(c.Context(), userID)
	if err != nil {
		if errors.Is(err, finance.ErrInvalidRecord) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": err.Error(),
			})
		}
		h.logger.Error("Failed to compute visualization", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to compute visualization",
		})
	}

	png, err := render(viz)
	if err != nil {
		h.logger.Error("Failed to render chart", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to render chart",
		})
	}
	if png == nil {
		return c.SendStatus(fiber.StatusNoContent)
	}

	c.Set(fiber.HeaderContentType, "image/png")
	return c.Send(png)
}
