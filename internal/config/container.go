package config

import (
	"news-dashboard/internal/domain"
	"news-dashboard/internal/repository"
	"news-dashboard/internal/service"
	"news-dashboard/pkg/logger"
)

// Container holds all application dependencies
type Container struct {
	Config            domain.Config
	Logger            domain.Logger
	LocalStore        *repository.LocalStore
	DocumentStore     domain.DocumentStoreClient
	SessionService    domain.SessionService
	PreferenceService domain.PreferenceService
	FeedService       domain.FeedService
	DashboardService  domain.DashboardService
	EngagementService domain.EngagementService
}

// NewContainer creates a new dependency injection container
func NewContainer() (*Container, error) {
	config := NewConfig()
	appLogger := logger.NewLogger(config.GetLogLevel())

	// Locally persisted records: the session and, when no document store is
	// configured, the preference and read-history fallbacks.
	localStore, err := repository.NewLocalStore(config.GetDataDir(), appLogger)
	if err != nil {
		return nil, err
	}

	documentStore := repository.NewSupabaseClient(config, appLogger)
	if documentStore.Enabled() {
		if err := documentStore.Initialize(); err != nil {
			return nil, err
		}
	} else {
		appLogger.Warn("Document store not configured, using local records")
	}

	var preferenceRepo domain.PreferenceRepository = localStore
	var engagementRepo domain.EngagementRepository = localStore
	if documentStore.Enabled() {
		preferenceRepo = repository.NewSupabasePreferenceRepository(documentStore, appLogger)
		engagementRepo = repository.NewSupabaseEngagementRepository(documentStore, appLogger)
	}

	searcher := repository.NewEventRegistryClient(config, appLogger)
	recommender := repository.NewRecommenderClient(config, appLogger)
	engagementSender := repository.NewEngagementClient(config, appLogger)

	sessionService := service.NewSessionService(localStore, appLogger)
	preferenceService := service.NewPreferenceService(preferenceRepo, config.GetRequestTimeout(), appLogger)
	feedService := service.NewFeedService(searcher, recommender, engagementRepo, config.GetRequestTimeout(), appLogger)
	dashboardService := service.NewDashboardService(feedService, appLogger)
	engagementService := service.NewEngagementService(engagementSender, engagementRepo, config.GetRequestTimeout(), appLogger)

	return &Container{
		Config:            config,
		Logger:            appLogger,
		LocalStore:        localStore,
		DocumentStore:     documentStore,
		SessionService:    sessionService,
		PreferenceService: preferenceService,
		FeedService:       feedService,
		DashboardService:  dashboardService,
		EngagementService: engagementService,
	}, nil
}
