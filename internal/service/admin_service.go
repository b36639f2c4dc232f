package service

import (
	"context"
	"errors"

	"ccc-smartassist/internal/dto"
	"ccc-smartassist/internal/models"
	"ccc-smartassist/internal/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

// UserDirectory is the account storage the administrative surface needs.
// *repository.UserRepository satisfies it; tests substitute fakes.
type UserDirectory interface {
	List(ctx context.Context) ([]*models.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	UpdateProfile(ctx context.Context, id uuid.UUID, fields map[string]interface{}) error
	Delete(ctx context.Context, id uuid.UUID) error
	Count(ctx context.Context) (int, error)
}

// SettingsStore extends the read-only SettingsSource with the admin write path.
type SettingsStore interface {
	Get(ctx context.Context) (*models.SystemSettings, error)
	Update(ctx context.Context, systemName, themeColor, apiKey string) error
}

// AdminService covers the administrative surface: user management, portal
// statistics and system settings.
type AdminService struct {
	userRepo      UserDirectory
	knowledgeRepo *repository.KnowledgeRepository
	ruleRepo      *repository.RuleRepository
	sessionRepo   *repository.SessionRepository
	settingsRepo  SettingsStore
	logger        *zap.Logger
}

func NewAdminService(
	userRepo UserDirectory,
	knowledgeRepo *repository.KnowledgeRepository,
	ruleRepo *repository.RuleRepository,
	sessionRepo *repository.SessionRepository,
	settingsRepo SettingsStore,
	logger *zap.Logger,
) *AdminService {
	return &AdminService{
		userRepo:      userRepo,
		knowledgeRepo: knowledgeRepo,
		ruleRepo:      ruleRepo,
		sessionRepo:   sessionRepo,
		settingsRepo:  settingsRepo,
		logger:        logger,
	}
}

func (s *AdminService) Stats(ctx context.Context) (*dto.StatsResponse, error) {
	kbCount, err := s.knowledgeRepo.Count(ctx)
	if err != nil {
		return nil, err
	}
	ruleCount, err := s.ruleRepo.Count(ctx)
	if err != nil {
		return nil, err
	}
	sessionCount, err := s.sessionRepo.CountSessions(ctx)
	if err != nil {
		return nil, err
	}
	messageCount, err := s.sessionRepo.CountMessages(ctx)
	if err != nil {
		return nil, err
	}
	userCount, err := s.userRepo.Count(ctx)
	if err != nil {
		return nil, err
	}

	return &dto.StatsResponse{
		KBCount:      kbCount,
		RuleCount:    ruleCount,
		SessionCount: sessionCount,
		MessageCount: messageCount,
		UserCount:    userCount,
	}, nil
}

func (s *AdminService) ListUsers(ctx context.Context) ([]*models.User, error) {
	return s.userRepo.List(ctx)
}

func (s *AdminService) GetProfile(ctx context.Context, id uuid.UUID) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

// UpdateProfile applies the provided profile fields only; credentials and
// role cannot be changed through this path.
func (s *AdminService) UpdateProfile(ctx context.Context, id uuid.UUID, req *dto.UpdateProfileRequest) error {
	fields := map[string]interface{}{}
	if req.FullName != nil {
		fields["full_name"] = *req.FullName
	}
	if req.Email != nil {
		fields["email"] = *req.Email
	}
	if req.StudentID != nil {
		fields["student_id"] = *req.StudentID
	}
	if req.Course != nil {
		fields["course"] = *req.Course
	}
	if req.YearLevel != nil {
		fields["year_level"] = *req.YearLevel
	}

	return s.userRepo.UpdateProfile(ctx, id, fields)
}

func (s *AdminService) DeleteUser(ctx context.Context, id uuid.UUID) error {
	return s.userRepo.Delete(ctx, id)
}

func (s *AdminService) GetSettings(ctx context.Context) (*models.SystemSettings, error) {
	return s.settingsRepo.Get(ctx)
}

func (s *AdminService) UpdateSettings(ctx context.Context, req *dto.UpdateSettingsRequest) error {
	if err := s.settingsRepo.Update(ctx, req.SystemName, req.ThemeColor, req.APIKey); err != nil {
		return err
	}

	s.logger.Info("System settings updated",
		zap.String("system_name", req.SystemName),
		zap.String("theme_color", req.ThemeColor),
		zap.Bool("api_key_set", req.APIKey != ""),
	)
	return nil
}
