package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"finwise/internal/dto"
	"finwise/internal/finance"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrUnsupportedFormat = errors.New("unsupported file format")
	ErrFileTooLarge      = errors.New("file too large")
)

// ReceiptService turns an uploaded receipt into candidate expense
// fields. The file is kept on disk only for the duration of text
// extraction.
type ReceiptService struct {
	ocrService *OCRService
	uploadDir  string
	maxBytes   int64
	logger     *zap.Logger
}

func NewReceiptService(ocrService *OCRService, uploadDir string, maxBytes int64, logger *zap.Logger) *ReceiptService {
	if err := os.MkdirAll(uploadDir, 0755); err != nil {
		logger.Warn("Failed to create upload directory", zap.Error(err))
	}

	return &ReceiptService{
		ocrService: ocrService,
		uploadDir:  uploadDir,
		maxBytes:   maxBytes,
		logger:     logger,
	}
}

// ProcessReceipt saves the upload, extracts its text and parses out a
// candidate amount and date. Extraction failures degrade to an empty
// text so the caller always gets a structurally valid suggestion.
func (s *ReceiptService) ProcessReceipt(ctx context.Context, userID uuid.UUID, file io.Reader, fileName string, size int64) (*dto.ParsedReceiptResponse, error) {
	if !SupportedFormat(fileName) {
		return nil, ErrUnsupportedFormat
	}
	if size > s.maxBytes {
		return nil, ErrFileTooLarge
	}

	filePath := filepath.Join(s.uploadDir, uuid.New().String()+filepath.Ext(fileName))
	if err := s.saveFile(filePath, file); err != nil {
		return nil, err
	}
	defer os.Remove(filePath)

	text, err := s.ocrService.ExtractText(filePath)
	if err != nil {
		// Best-effort: the parser degrades to a zero amount and the
		// current date, the user reviews the suggestion either way.
		s.logger.Warn("Text extraction failed",
			zap.String("user_id", userID.String()),
			zap.String("file", fileName),
			zap.Error(err),
		)
		text = ""
	}
	text = sanitizeUTF8(text)

	result := finance.ParseReceipt(text, time.Now())

	s.logger.Info("Receipt processed",
		zap.String("user_id", userID.String()),
		zap.String("file", fileName),
		zap.Float64("amount", result.Amount),
		zap.String("date", result.Date),
	)

	return &dto.ParsedReceiptResponse{
		Amount:  result.Amount,
		Date:    result.Date,
		RawText: result.RawText,
	}, nil
}

func (s *ReceiptService) saveFile(filePath string, file io.Reader) error {
	dst, err := os.Create(filePath)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, io.LimitReader(file, s.maxBytes+1)); err != nil {
		os.Remove(filePath)
		return fmt.Errorf("failed to save file: %w", err)
	}
	return nil
}
