package service

import (
	"context"
	"time"

	"news-dashboard/internal/domain"
)

type engagementService struct {
	sender         domain.EngagementSender
	engagementRepo domain.EngagementRepository
	timeout        time.Duration
	logger         domain.Logger
	async          bool
}

// NewEngagementService creates the fire-and-forget engagement logger.
func NewEngagementService(
	sender domain.EngagementSender,
	engagementRepo domain.EngagementRepository,
	timeout time.Duration,
	logger domain.Logger,
) domain.EngagementService {
	return &engagementService{
		sender:         sender,
		engagementRepo: engagementRepo,
		timeout:        timeout,
		logger:         logger,
		async:          true,
	}
}

// LogLike records a like. Without a user it is a silent no-op.
func (s *engagementService) LogLike(userID string, article domain.Article) {
	s.log(userID, article, domain.EngagementLike)
}

// LogRead records a read. Without a user it is a silent no-op.
func (s *engagementService) LogRead(userID string, article domain.Article) {
	s.log(userID, article, domain.EngagementRead)
}

func (s *engagementService) log(userID string, article domain.Article, kind domain.EngagementKind) {
	if userID == "" {
		return
	}
	event := &domain.EngagementEvent{
		UserID:    userID,
		ArticleID: article.ID,
		Kind:      kind,
		Snapshot: domain.ArticleSnapshot{
			Title:      article.Title,
			Summary:    article.Summary,
			URL:        article.URL,
			SourceName: article.SourceName,
			Category:   article.Category,
		},
		Timestamp: time.Now(),
	}
	if s.async {
		go s.dispatch(event)
		return
	}
	s.dispatch(event)
}

// dispatch transmits and stores the event. Failures are logged for
// diagnostics and never surfaced or retried.
func (s *engagementService) dispatch(event *domain.EngagementEvent) {
	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	if err := s.sender.Send(ctx, event); err != nil {
		s.logger.Warn("Engagement send failed", "kind", event.Kind, "error", err)
	}

	var err error
	switch event.Kind {
	case domain.EngagementLike:
		err = s.engagementRepo.AppendLike(ctx, event)
	case domain.EngagementRead:
		err = s.engagementRepo.AppendRead(ctx, event)
	}
	if err != nil {
		s.logger.Warn("Engagement store failed", "kind", event.Kind, "error", err)
	}
}
