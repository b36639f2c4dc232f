package service

import (
	"context"
	"time"

	"ccc-smartassist/internal/dto"
	"ccc-smartassist/internal/models"
	"ccc-smartassist/internal/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// maxSuggestions caps the FAQ questions surfaced on the chat landing screen.
const maxSuggestions = 8

type FAQService struct {
	faqRepo *repository.FAQRepository
	logger  *zap.Logger
}

func NewFAQService(faqRepo *repository.FAQRepository, logger *zap.Logger) *FAQService {
	return &FAQService{
		faqRepo: faqRepo,
		logger:  logger,
	}
}

func (s *FAQService) List(ctx context.Context) ([]models.FAQ, error) {
	return s.faqRepo.List(ctx)
}

func (s *FAQService) Add(ctx context.Context, req *dto.AddFAQRequest) (*models.FAQ, error) {
	category := req.Category
	if category == "" {
		category = "general"
	}

	faq := &models.FAQ{
		ID:        uuid.New(),
		Question:  req.Question,
		Category:  category,
		DateAdded: time.Now().UnixMilli(),
	}

	if err := s.faqRepo.Create(ctx, faq); err != nil {
		return nil, err
	}

	return faq, nil
}

func (s *FAQService) Update(ctx context.Context, id uuid.UUID, question string) error {
	return s.faqRepo.Update(ctx, id, question)
}

func (s *FAQService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.faqRepo.Delete(ctx, id)
}

// Suggestions returns the questions offered as conversation starters.
func (s *FAQService) Suggestions(ctx context.Context) ([]string, error) {
	faqs, err := s.faqRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	suggestions := make([]string, 0, maxSuggestions)
	for _, faq := range faqs {
		if len(suggestions) == maxSuggestions {
			break
		}
		suggestions = append(suggestions, faq.Question)
	}

	return suggestions, nil
}
