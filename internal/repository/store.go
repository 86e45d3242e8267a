package repository

import (
	"context"
	"errors"
	"time"

	"github.com/Dan9191/expense-forecast/internal/forecast"
	"github.com/Dan9191/expense-forecast/internal/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

//go:generate mockgen -source=store.go -destination=store_mock.go -package=repository

// ErrNotFound is returned when a record does not exist or cannot be updated
var ErrNotFound = errors.New("record not found")

// Store defines the data operations used by the service
type Store interface {
	// Expense reads
	ListObservations(ctx context.Context, userID int64) ([]forecast.Observation, error)
	ListExpensesBetween(ctx context.Context, userID int64, from, to time.Time) ([]models.Expense, error)

	// Prediction log operations
	CreatePredictionLog(ctx context.Context, log *models.PredictionLog) error
	ListPredictionLogs(ctx context.Context, userID int64, periodType string, limit int) ([]models.PredictionLog, error)
	ListUnreconciledPredictions(ctx context.Context, targetBefore time.Time) ([]models.PredictionLog, error)
	SetPredictionActual(ctx context.Context, id uuid.UUID, actual decimal.Decimal) error
}
