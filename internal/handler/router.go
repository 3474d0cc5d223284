package handler

import (
	"net/http"

	"news-dashboard/internal/config"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
)

// NewRouter creates a new HTTP router with all routes configured
func NewRouter(container *config.Container) http.Handler {
	router := mux.NewRouter()

	// API prefix
	api := router.PathPrefix("/api/v1").Subrouter()

	// Health check endpoint (no auth required)
	router.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok","service":"news-dashboard"}`))
	}).Methods("GET")

	// Initialize handlers
	authHandler := NewAuthHandler(container.SessionService, container.DashboardService, container.Logger)
	preferenceHandler := NewPreferenceHandler(container.PreferenceService, container.Logger)
	dashboardHandler := NewDashboardHandler(container.DashboardService, container.FeedService, container.Logger)
	engagementHandler := NewEngagementHandler(container.EngagementService, container.Logger)

	// Sign-in is the only unauthenticated operation
	api.HandleFunc("/auth/login", authHandler.Login).Methods("POST")

	// Protected routes (require an active session)
	protected := api.PathPrefix("").Subrouter()
	protected.Use(SessionMiddleware(container.SessionService, container.Logger))

	// Auth routes (protected)
	protected.HandleFunc("/auth/session", authHandler.GetSession).Methods("GET")
	protected.HandleFunc("/auth/logout", authHandler.Logout).Methods("POST")

	// Preference routes (protected)
	protected.HandleFunc("/preferences", preferenceHandler.GetPreferences).Methods("GET")
	protected.HandleFunc("/preferences", preferenceHandler.UpdatePreferences).Methods("PUT")

	// Dashboard and feed routes (protected)
	protected.HandleFunc("/dashboard", dashboardHandler.GetDashboard).Methods("GET")
	protected.HandleFunc("/dashboard/tab", dashboardHandler.SelectTab).Methods("POST")
	protected.HandleFunc("/dashboard/refresh", dashboardHandler.Refresh).Methods("POST")
	protected.HandleFunc("/feeds/{tab}", dashboardHandler.GetFeed).Methods("GET")

	// Engagement routes (protected)
	protected.HandleFunc("/engagement/like", engagementHandler.LogLike).Methods("POST")
	protected.HandleFunc("/engagement/read", engagementHandler.LogRead).Methods("POST")

	// Configure CORS
	c := cors.New(cors.Options{
		AllowedOrigins: []string{
			"http://localhost:5173",
			"http://localhost:3000",
		},
		AllowedMethods: []string{
			http.MethodGet,
			http.MethodPost,
			http.MethodPut,
			http.MethodDelete,
			http.MethodOptions,
		},
		AllowedHeaders: []string{
			"Accept",
			"Authorization",
			"Content-Type",
			"X-CSRF-Token",
		},
		AllowCredentials: true,
		MaxAge:           300, // Maximum value not ignored by any of major browsers
	})

	return c.Handler(router)
}
