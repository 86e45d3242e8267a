package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/Dan9191/expense-forecast/internal/forecast"
	"github.com/Dan9191/expense-forecast/internal/models"
	"github.com/Dan9191/expense-forecast/internal/repository"
	"github.com/sirupsen/logrus"
)

const (
	defaultListLimit = 20
	maxListLimit     = 100
)

// Service handles business logic
type Service struct {
	repo       repository.Store
	forecaster *forecast.Forecaster
	log        *logrus.Logger
}

// NewService initializes a new service
func NewService(repo repository.Store, log *logrus.Logger) *Service {
	return &Service{
		repo:       repo,
		forecaster: forecast.NewForecaster(repo, log),
		log:        log,
	}
}

// PredictNext forecasts the user's spend for the period following their last
// recorded bucket
func (s *Service) PredictNext(ctx context.Context, userID int64, period forecast.Period) (*models.ForecastResult, error) {
	logger := s.log.WithFields(logrus.Fields{"user_id": userID, "period": period})

	observations, err := s.repo.ListObservations(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load expenses: %w", err)
	}

	result, err := s.forecaster.Forecast(ctx, userID, observations, period)
	if err != nil {
		if errors.Is(err, forecast.ErrRecordPrediction) {
			logger.Errorf("Prediction computed but not recorded: %v", err)
		}
		return result, err
	}

	if !result.Success {
		logger.Infof("Not enough data for prediction (%d expenses)", len(observations))
		return result, nil
	}
	logger.Infof("Predicted %s for period starting %s", result.Prediction, result.NextPeriod)
	return result, nil
}

// ListPredictions returns the user's most recent prediction logs. An empty
// period lists every period type.
func (s *Service) ListPredictions(ctx context.Context, userID int64, period string, limit int) ([]models.PredictionLog, error) {
	if period != "" {
		if _, err := forecast.ParsePeriod(period); err != nil {
			return nil, err
		}
	}
	if limit <= 0 {
		limit = defaultListLimit
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}

	logs, err := s.repo.ListPredictionLogs(ctx, userID, period, limit)
	if err != nil {
		return nil, err
	}
	if logs == nil {
		logs = []models.PredictionLog{}
	}
	return logs, nil
}
