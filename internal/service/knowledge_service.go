package service

import (
	"context"
	"time"

	"ccc-smartassist/internal/dto"
	"ccc-smartassist/internal/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// KnowledgeStore is the knowledge base storage. *repository.KnowledgeRepository
// satisfies it; tests substitute fakes.
type KnowledgeStore interface {
	Create(ctx context.Context, item *models.KnowledgeItem) error
	List(ctx context.Context) ([]models.KnowledgeItem, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// TextExtractor turns an uploaded document into plain text. *PDFService
// satisfies it.
type TextExtractor interface {
	ExtractText(data []byte) (string, error)
}

type KnowledgeService struct {
	knowledgeRepo KnowledgeStore
	pdfService    TextExtractor
	logger        *zap.Logger
}

func NewKnowledgeService(knowledgeRepo KnowledgeStore, pdfService TextExtractor, logger *zap.Logger) *KnowledgeService {
	return &KnowledgeService{
		knowledgeRepo: knowledgeRepo,
		pdfService:    pdfService,
		logger:        logger,
	}
}

func (s *KnowledgeService) List(ctx context.Context) ([]models.KnowledgeItem, error) {
	return s.knowledgeRepo.List(ctx)
}

func (s *KnowledgeService) Add(ctx context.Context, req *dto.AddKnowledgeRequest) (*models.KnowledgeItem, error) {
	source := models.KnowledgeSource(req.Source)
	if source == "" {
		source = models.SourceManual
	}

	item := &models.KnowledgeItem{
		ID:        uuid.New(),
		Question:  req.Question,
		Answer:    req.Answer,
		Category:  models.KnowledgeCategory(req.Category),
		Source:    source,
		DateAdded: time.Now().UnixMilli(),
	}

	if err := s.knowledgeRepo.Create(ctx, item); err != nil {
		return nil, err
	}

	s.logger.Info("Knowledge item added",
		zap.String("id", item.ID.String()),
		zap.String("category", string(item.Category)),
		zap.String("source", string(item.Source)),
	)

	return item, nil
}

// ImportPDF extracts the text of an uploaded PDF and stores it as a single
// knowledge item titled after the document.
func (s *KnowledgeService) ImportPDF(ctx context.Context, title, category string, data []byte) (*models.KnowledgeItem, error) {
	text, err := s.pdfService.ExtractText(data)
	if err != nil {
		return nil, err
	}

	item := &models.KnowledgeItem{
		ID:        uuid.New(),
		Question:  title,
		Answer:    text,
		Category:  models.KnowledgeCategory(category),
		Source:    models.SourcePDF,
		DateAdded: time.Now().UnixMilli(),
	}

	if err := s.knowledgeRepo.Create(ctx, item); err != nil {
		return nil, err
	}

	s.logger.Info("Knowledge imported from PDF",
		zap.String("id", item.ID.String()),
		zap.String("title", title),
		zap.Int("text_length", len(text)),
	)

	return item, nil
}

func (s *KnowledgeService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.knowledgeRepo.Delete(ctx, id)
}
