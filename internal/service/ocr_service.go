package service

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/gen2brain/go-fitz"
	"github.com/otiai10/gosseract/v2"
	"go.uber.org/zap"
)

var supportedFormats = []string{".jpg", ".jpeg", ".png", ".pdf"}

// OCRService extracts raw text from uploaded documents. PDFs go
// through go-fitz for direct text extraction, images through the
// tesseract engine.
type OCRService struct {
	logger *zap.Logger
}

func NewOCRService(logger *zap.Logger) *OCRService {
	return &OCRService{
		logger: logger,
	}
}

// SupportedFormat reports whether the file extension can be processed.
func SupportedFormat(fileName string) bool {
	ext := strings.ToLower(filepath.Ext(fileName))
	for _, format := range supportedFormats {
		if ext == format {
			return true
		}
	}
	return false
}

// ExtractText extracts text from an image or PDF file.
func (s *OCRService) ExtractText(filePath string) (string, error) {
	ext := strings.ToLower(filepath.Ext(filePath))
	if !SupportedFormat(filePath) {
		return "", fmt.Errorf("unsupported file format: %s (supported: jpg, jpeg, png, pdf)", ext)
	}

	var (
		text string
		err  error
	)
	if ext == ".pdf" {
		text, err = s.extractTextFromPDF(filePath)
	} else {
		text, err = s.extractTextFromImage(filePath)
	}
	if err != nil {
		return "", err
	}

	text = strings.TrimSpace(text)

	s.logger.Info("OCR extraction completed",
		zap.String("file", filePath),
		zap.String("method", extractionMethod(ext)),
		zap.Int("text_length", len(text)),
	)

	if text == "" {
		return "", fmt.Errorf("no text extracted from %s", ext)
	}

	return text, nil
}

// extractTextFromPDF extracts text from PDF using the go-fitz library.
func (s *OCRService) extractTextFromPDF(pdfPath string) (string, error) {
	doc, err := fitz.New(pdfPath)
	if err != nil {
		return "", fmt.Errorf("failed to open PDF: %w", err)
	}
	defer doc.Close()

	var textBuilder strings.Builder
	for i := 0; i < doc.NumPage(); i++ {
		pageText, err := doc.Text(i)
		if err != nil {
			s.logger.Warn("Failed to extract text from page",
				zap.Int("page", i+1),
				zap.String("file", pdfPath),
				zap.Error(err),
			)
			continue
		}
		if pageText != "" {
			textBuilder.WriteString(pageText)
			textBuilder.WriteString("\n")
		}
	}

	return textBuilder.String(), nil
}

// extractTextFromImage runs tesseract over the image.
func (s *OCRService) extractTextFromImage(imagePath string) (string, error) {
	client := gosseract.NewClient()
	defer client.Close()

	if err := client.SetImage(imagePath); err != nil {
		return "", fmt.Errorf("failed to load image: %w", err)
	}

	text, err := client.Text()
	if err != nil {
		return "", fmt.Errorf("failed to run OCR: %w", err)
	}

	return text, nil
}

func extractionMethod(ext string) string {
	if ext == ".pdf" {
		return "go-fitz"
	}
	return "tesseract"
}
