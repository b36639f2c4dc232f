package service

import (
	"context"
	"strings"

	"ccc-smartassist/internal/dto"
	"ccc-smartassist/internal/models"
	"ccc-smartassist/internal/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type RuleService struct {
	ruleRepo *repository.RuleRepository
	logger   *zap.Logger
}

func NewRuleService(ruleRepo *repository.RuleRepository, logger *zap.Logger) *RuleService {
	return &RuleService{
		ruleRepo: ruleRepo,
		logger:   logger,
	}
}

func (s *RuleService) List(ctx context.Context) ([]models.ManualRule, error) {
	return s.ruleRepo.List(ctx)
}

func (s *RuleService) Add(ctx context.Context, req *dto.AddRuleRequest) (*models.ManualRule, error) {
	rule := &models.ManualRule{
		ID: uuid.New(),
		// Triggers are stored lowercase-normalized; matching is
		// case-insensitive either way.
		Trigger:  strings.ToLower(strings.TrimSpace(req.Trigger)),
		Response: req.Response,
		Active:   req.Active,
	}

	if err := s.ruleRepo.Create(ctx, rule); err != nil {
		return nil, err
	}

	s.logger.Info("Manual rule added",
		zap.String("id", rule.ID.String()),
		zap.String("trigger", rule.Trigger),
		zap.Bool("active", rule.Active),
	)

	return rule, nil
}

func (s *RuleService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.ruleRepo.Delete(ctx, id)
}
