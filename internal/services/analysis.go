package services

import (
	"context"
	"fmt"
	"time"

	"github.com/docuinsight/document-insight-api/internal/analyzer"
	"github.com/docuinsight/document-insight-api/internal/config"
	"github.com/docuinsight/document-insight-api/internal/extractor"
	"github.com/docuinsight/document-insight-api/internal/intake"
	"github.com/docuinsight/document-insight-api/internal/models"
	"github.com/docuinsight/document-insight-api/internal/preview"
	"github.com/docuinsight/document-insight-api/internal/storage"
	"github.com/docuinsight/document-insight-api/internal/utils"
)

type AnalysisService interface {
	// Analyze runs one full pass for a validated submission: store the
	// document, extract its text, generate the insight. Each stage failure
	// is terminal for the run; nothing is retried.
	Analyze(ctx context.Context, sub *models.DocumentSubmission, prompt string, params models.InferenceParams) (*models.AnalysisResult, error)
}

type analysisService struct {
	storage   storage.Storage
	extractor extractor.Extractor
	analyzer  analyzer.Analyzer
	provider  string
	logger    *utils.Logger
}

func NewService(ctx context.Context, cfg *config.Config, logger *utils.Logger) (AnalysisService, error) {
	store, err := storage.NewS3Storage(ctx, cfg.AWSRegion, cfg.S3Bucket)
	if err != nil {
		return nil, fmt.Errorf("init storage: %w", err)
	}

	ext, err := extractor.NewTextractExtractor(ctx, cfg.AWSRegion, cfg.S3Bucket)
	if err != nil {
		return nil, fmt.Errorf("init extractor: %w", err)
	}

	var gen analyzer.Analyzer
	switch cfg.GenerationProvider {
	case config.ProviderOpenAI:
		gen = analyzer.NewOpenAIAnalyzer(cfg.OpenAIAPIKey, cfg.OpenAIModel, cfg.OpenAIBaseURL)
	default:
		gen, err = analyzer.NewBedrockAnalyzer(ctx, cfg.AWSRegion, cfg.ModelID)
		if err != nil {
			return nil, fmt.Errorf("init analyzer: %w", err)
		}
	}

	return &analysisService{
		storage:   store,
		extractor: ext,
		analyzer:  gen,
		provider:  cfg.GenerationProvider,
		logger:    logger,
	}, nil
}

func (s *analysisService) Analyze(ctx context.Context, sub *models.DocumentSubmission, prompt string, params models.InferenceParams) (*models.AnalysisResult, error) {
	start := time.Now()

	// Single-page restriction for PDFs, checked locally before any upload.
	if intake.IsPDF(sub) {
		info, err := preview.InspectPDF(sub.Data)
		if err != nil {
			s.logger.Warn("Unreadable PDF upload", "filename", sub.Filename, "error", err)
			return nil, utils.NewBadRequestError("The uploaded PDF could not be read")
		}
		if info.PageCount > 1 {
			return nil, utils.NewBadRequestError("Multi-page documents are not supported. Please upload a single-page document")
		}
	}

	if err := s.storage.Upload(ctx, sub.ObjectKey, sub.Data, sub.ContentType); err != nil {
		s.logger.Error("Failed to store document", "error", err, "key", sub.ObjectKey)
		return nil, utils.NewStorageError(err)
	}

	extractStart := time.Now()
	text, err := s.extractor.Extract(ctx, sub.ObjectKey)
	extractElapsed := time.Since(extractStart)
	if err != nil {
		s.logger.Error("Text extraction failed", "error", err, "key", sub.ObjectKey)
		return nil, utils.NewExtractionError(err)
	}

	// An empty extraction result still goes to the model; it is asked to
	// comment on the absence of content instead of the run short-circuiting.
	generateStart := time.Now()
	insight, err := s.analyzer.Generate(ctx, prompt, text, params)
	generateElapsed := time.Since(generateStart)
	if err != nil {
		s.logger.Error("Insight generation failed", "error", err, "key", sub.ObjectKey)
		return nil, utils.NewGenerationError(err)
	}

	s.logger.Info("Document analyzed",
		"id", sub.ID,
		"filename", sub.Filename,
		"text_length", len(text),
		"extraction_seconds", extractElapsed.Seconds(),
		"generation_seconds", generateElapsed.Seconds())

	return &models.AnalysisResult{
		ID:                sub.ID,
		ObjectKey:         sub.ObjectKey,
		Filename:          sub.Filename,
		ContentType:       sub.ContentType,
		Prompt:            prompt,
		ExtractedText:     text,
		Insight:           insight,
		ExtractionSeconds: extractElapsed.Seconds(),
		GenerationSeconds: generateElapsed.Seconds(),
		TotalSeconds:      time.Since(start).Seconds(),
		Provider:          s.provider,
		Model:             s.analyzer.Model(),
	}, nil
}
