package handler

import (
	"net/http"

	"github.com/Dan9191/expense-forecast/internal/config"
	"github.com/Dan9191/expense-forecast/internal/middleware"
	"github.com/gorilla/mux"
	"github.com/rs/cors"
)

// NewRouter registers all routes and wraps them with CORS
func NewRouter(h *Handler, cfg *config.Config) http.Handler {
	r := mux.NewRouter()
	// Public routes
	r.HandleFunc("/health", h.Health).Methods("GET")

	// Protected routes
	authRouter := r.PathPrefix("/").Subrouter()
	authRouter.Use(middleware.AuthMiddleware(cfg))
	authRouter.HandleFunc("/predictions", h.ListPredictions).Methods("GET")
	authRouter.HandleFunc("/predictions/weekly", h.WeeklyPrediction).Methods("GET")
	authRouter.HandleFunc("/predictions/monthly", h.MonthlyPrediction).Methods("GET")
	authRouter.HandleFunc("/predictions/accuracy", h.PredictionAccuracy).Methods("GET")
	authRouter.HandleFunc("/analytics/weekly-spending", h.WeeklySpending).Methods("GET")
	authRouter.HandleFunc("/analytics/top-expenses", h.TopExpenses).Methods("GET")
	authRouter.HandleFunc("/analytics/category-spending", h.CategorySpending).Methods("GET")

	c := cors.New(cors.Options{
		AllowedOrigins:   cfg.CORSOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodOptions},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
	})
	return c.Handler(r)
}
