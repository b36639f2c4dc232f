package service

import (
	"context"
	"time"

	"ccc-smartassist/internal/models"
	"ccc-smartassist/internal/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// adminSessionListLimit caps the all-users session listing for admins.
const adminSessionListLimit = 100

type SessionService struct {
	sessionRepo *repository.SessionRepository
	logger      *zap.Logger
}

func NewSessionService(sessionRepo *repository.SessionRepository, logger *zap.Logger) *SessionService {
	return &SessionService{
		sessionRepo: sessionRepo,
		logger:      logger,
	}
}

// List returns the user's own sessions with full transcripts. Admins asking
// for the admin view get the most recent sessions across all users.
func (s *SessionService) List(ctx context.Context, userID uuid.UUID, adminView bool) ([]*models.ChatSession, error) {
	if adminView {
		return s.sessionRepo.ListAll(ctx, adminSessionListLimit)
	}
	return s.sessionRepo.ListByUser(ctx, userID)
}

// Save upserts a session shell: creates it when absent, otherwise renames it.
// The chat pipeline owns message persistence; this only maintains metadata.
func (s *SessionService) Save(ctx context.Context, id, userID uuid.UUID, title string, lastUpdated int64) error {
	if lastUpdated == 0 {
		lastUpdated = time.Now().UnixMilli()
	}

	session := &models.ChatSession{
		ID:          id,
		UserID:      userID,
		Title:       title,
		LastUpdated: lastUpdated,
	}
	if err := s.sessionRepo.CreateIfAbsent(ctx, session); err != nil {
		return err
	}

	return s.sessionRepo.Rename(ctx, id, title, lastUpdated)
}

func (s *SessionService) Delete(ctx context.Context, id, userID uuid.UUID, isAdmin bool) error {
	return s.sessionRepo.Delete(ctx, id, userID, isAdmin)
}

func (s *SessionService) SetFeedback(ctx context.Context, messageID uuid.UUID, feedback int) error {
	return s.sessionRepo.UpdateFeedback(ctx, messageID, feedback)
}
