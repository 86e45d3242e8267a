package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Dan9191/expense-forecast/internal/forecast"
	"github.com/Dan9191/expense-forecast/internal/models"
	"github.com/Dan9191/expense-forecast/internal/repository"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

// accuracySample bounds how many recent logs feed the accuracy summary
const accuracySample = 500

// ReconcilePredictions fills in the realized spend of every prediction whose
// target window has fully elapsed by asOf. It returns the number of logs updated.
func (s *Service) ReconcilePredictions(ctx context.Context, asOf time.Time) (int, error) {
	pending, err := s.repo.ListUnreconciledPredictions(ctx, asOf)
	if err != nil {
		return 0, fmt.Errorf("failed to load pending predictions: %w", err)
	}

	var errs []error
	reconciled := 0
	for _, p := range pending {
		logger := s.log.WithFields(logrus.Fields{"prediction_id": p.ID, "user_id": p.UserID})

		period, err := forecast.ParsePeriod(p.PeriodType)
		if err != nil {
			logger.Warnf("Skipping prediction: %v", err)
			continue
		}
		end := p.TargetPeriodStart.AddDate(0, 0, period.Horizon())
		if end.After(asOf) {
			continue
		}

		expenses, err := s.repo.ListExpensesBetween(ctx, p.UserID, p.TargetPeriodStart, end)
		if err != nil {
			errs = append(errs, err)
			logger.Errorf("Failed to load actual spend: %v", err)
			continue
		}
		actual := decimal.Zero
		for _, e := range expenses {
			actual = actual.Add(e.Amount)
		}

		err = s.repo.SetPredictionActual(ctx, p.ID, actual)
		if errors.Is(err, repository.ErrNotFound) {
			// reconciled by another run
			continue
		}
		if err != nil {
			errs = append(errs, err)
			logger.Errorf("Failed to store actual spend: %v", err)
			continue
		}
		reconciled++
	}

	s.log.Infof("Reconciled %d of %d pending predictions", reconciled, len(pending))
	return reconciled, errors.Join(errs...)
}

// PredictionAccuracy compares reconciled predictions with their realized spend
func (s *Service) PredictionAccuracy(ctx context.Context, userID int64, period string) (*models.PredictionAccuracy, error) {
	if period != "" {
		if _, err := forecast.ParsePeriod(period); err != nil {
			return nil, err
		}
	}

	logs, err := s.repo.ListPredictionLogs(ctx, userID, period, accuracySample)
	if err != nil {
		return nil, err
	}

	hundred := decimal.NewFromInt(100)
	var absSum, pctSum decimal.Decimal
	var count, pctCount int
	for _, l := range logs {
		if l.ActualAmount == nil {
			continue
		}
		diff := l.PredictedAmount.Sub(*l.ActualAmount).Abs()
		absSum = absSum.Add(diff)
		count++
		if !l.ActualAmount.IsZero() {
			pctSum = pctSum.Add(diff.Div(l.ActualAmount.Abs()).Mul(hundred))
			pctCount++
		}
	}

	accuracy := &models.PredictionAccuracy{
		PeriodType:         period,
		Reconciled:         count,
		MeanAbsoluteError:  decimal.Zero,
		MeanAbsolutePctErr: decimal.Zero,
	}
	if count > 0 {
		accuracy.MeanAbsoluteError = absSum.Div(decimal.NewFromInt(int64(count))).Round(2)
	}
	if pctCount > 0 {
		accuracy.MeanAbsolutePctErr = pctSum.Div(decimal.NewFromInt(int64(pctCount))).Round(2)
	}
	return accuracy, nil
}
