package service

import (
	"strings"
	"time"

	"news-dashboard/internal/domain"
	apperrors "news-dashboard/pkg/errors"

	"github.com/google/uuid"
)

const minPasswordLength = 6

type sessionService struct {
	sessionRepo domain.SessionRepository
	logger      domain.Logger
}

// NewSessionService creates the session lifecycle service.
func NewSessionService(sessionRepo domain.SessionRepository, logger domain.Logger) domain.SessionService {
	return &sessionService{
		sessionRepo: sessionRepo,
		logger:      logger,
	}
}

// SignIn validates the credentials, then persists a fresh session,
// overwriting any prior one.
func (s *sessionService) SignIn(userID, password, email string) (*domain.Session, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, apperrors.NewValidationError("User ID is required")
	}
	if strings.TrimSpace(password) == "" {
		return nil, apperrors.NewValidationError("Password is required")
	}
	if len(password) < minPasswordLength {
		return nil, apperrors.NewValidationError("Password must be at least 6 characters")
	}

	session := &domain.Session{
		UserID:    userID,
		Email:     email,
		Provider:  domain.ProviderLocal,
		Token:     uuid.NewString(),
		CreatedAt: time.Now(),
	}
	if err := s.sessionRepo.Save(session); err != nil {
		return nil, apperrors.NewPersistenceError("Failed to persist session", err)
	}

	s.logger.Info("User signed in", "user_id", userID)
	return session, nil
}

// Restore persists a session handed over by an external identity provider.
func (s *sessionService) Restore(session *domain.Session) error {
	if session == nil || session.UserID == "" {
		return apperrors.NewValidationError("Session user is required")
	}
	session.Provider = domain.ProviderExternal
	if session.Token == "" {
		session.Token = uuid.NewString()
	}
	if session.CreatedAt.IsZero() {
		session.CreatedAt = time.Now()
	}
	if err := s.sessionRepo.Save(session); err != nil {
		return apperrors.NewPersistenceError("Failed to persist session", err)
	}
	s.logger.Info("External session restored", "user_id", session.UserID)
	return nil
}

// Current returns the persisted session, nil when signed out.
func (s *sessionService) Current() (*domain.Session, error) {
	session, err := s.sessionRepo.Load()
	if err != nil {
		return nil, apperrors.NewPersistenceError("Failed to read session", err)
	}
	return session, nil
}

// SignOut deletes the persisted session; idempotent.
func (s *sessionService) SignOut() error {
	if err := s.sessionRepo.Delete(); err != nil {
		return apperrors.NewPersistenceError("Failed to delete session", err)
	}
	s.logger.Info("User signed out")
	return nil
}

// Validate resolves a bearer token against the persisted session.
func (s *sessionService) Validate(token string) (*domain.Session, error) {
	if token == "" {
		return nil, apperrors.NewAuthRequiredError("Sign in required")
	}
	session, err := s.Current()
	if err != nil {
		return nil, err
	}
	if session == nil || session.Token != token {
		return nil, apperrors.NewAuthRequiredError("Sign in required")
	}
	return session, nil
}
