package handlers

import (
	"errors"

	"finwise/internal/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type ReceiptHandler struct {
	receiptService *service.ReceiptService
	logger         *zap.Logger
}

func NewReceiptHandler(receiptService *service.ReceiptService, logger *zap.Logger) *ReceiptHandler {
	return &ReceiptHandler{
		receiptService: receiptService,
		logger:         logger,
	}
}

// Upload godoc
// @Summary Upload a receipt for text extraction
// @Description Extract a candidate amount and date from a receipt image or PDF. The result is a suggestion for the user to confirm, not a stored expense.
// @Tags receipts
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Receipt file (pdf, png, jpg, jpeg; max 5MB)"
// @Security Bearer
// @Success 200 {object} dto.ParsedReceiptResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /api/upload-receipt [post]
func (h *ReceiptHandler) Upload(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Unauthorized",
		})
	}

	file, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "File is required",
		})
	}

	src, err := file.Open()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Failed to open file",
		})
	}
	defer src.Close()

	result, err := h.receiptService.ProcessReceipt(c.Context(), userID, src, file.Filename, file.Size)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUnsupportedFormat):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Unsupported file format (supported: pdf, png, jpg, jpeg)",
			})
		case errors.Is(err, service.ErrFileTooLarge):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "File exceeds the upload size limit",
			})
		}
		h.logger.Error("Failed to process receipt", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to process receipt",
		})
	}

	return c.JSON(result)
}
