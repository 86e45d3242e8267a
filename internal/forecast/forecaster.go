package forecast

import (
	"context"
	"errors"
	"fmt"

	"github.com/Dan9191/expense-forecast/internal/models"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

// MinBuckets is the number of buckets required before a trend is fitted
const MinBuckets = 3

const dateLayout = "2006-01-02"

// ErrRecordPrediction wraps failures of the prediction log write
var ErrRecordPrediction = errors.New("failed to record prediction")

// Recorder persists prediction logs. Implementations set the log ID and PredictedOn.
type Recorder interface {
	CreatePredictionLog(ctx context.Context, log *models.PredictionLog) error
}

// Forecaster predicts next-period spend from a user's expense history
type Forecaster struct {
	recorder Recorder
	log      *logrus.Logger
}

// NewForecaster initializes a new forecaster
func NewForecaster(recorder Recorder, log *logrus.Logger) *Forecaster {
	return &Forecaster{recorder: recorder, log: log}
}

// Forecast buckets the observations, fits a linear trend and extrapolates one
// horizon past the last bucket. Successful predictions are written to the
// recorder; when that write fails the computed result is still returned along
// with an error wrapping ErrRecordPrediction.
func (f *Forecaster) Forecast(ctx context.Context, userID int64, observations []Observation, period Period) (*models.ForecastResult, error) {
	if len(observations) == 0 {
		return notEnoughData(period), nil
	}

	buckets := BucketObservations(observations, period)
	if len(buckets) < MinBuckets {
		return notEnoughData(period), nil
	}

	points := SeriesPoints(buckets)
	model, err := Fit(points)
	if err != nil {
		return nil, fmt.Errorf("failed to fit trend: %w", err)
	}

	horizon := period.Horizon()
	lastT := points[len(points)-1].T
	prediction := decimal.NewFromFloat(model.Predict(lastT + float64(horizon))).Round(2)
	nextPeriod := buckets[len(buckets)-1].PeriodStart.AddDate(0, 0, horizon)

	result := &models.ForecastResult{
		Success:    true,
		Prediction: &prediction,
		History:    history(buckets),
		NextPeriod: nextPeriod.Format(dateLayout),
	}

	entry := &models.PredictionLog{
		UserID:            userID,
		PeriodType:        string(period),
		PredictedAmount:   prediction,
		TargetPeriodStart: nextPeriod,
	}
	if err := f.recorder.CreatePredictionLog(ctx, entry); err != nil {
		return result, fmt.Errorf("%w: %v", ErrRecordPrediction, err)
	}

	f.log.WithFields(logrus.Fields{
		"user_id":       userID,
		"period":        period,
		"prediction_id": entry.ID,
		"buckets":       len(buckets),
	}).Debugf("Predicted %s for period starting %s", prediction, result.NextPeriod)
	return result, nil
}

func notEnoughData(period Period) *models.ForecastResult {
	return &models.ForecastResult{
		Success: false,
		Message: fmt.Sprintf("Not enough %s data to make predictions. At least %d data points required.", period, MinBuckets),
		History: []models.HistoryPoint{},
	}
}

func history(buckets []Bucket) []models.HistoryPoint {
	points := make([]models.HistoryPoint, len(buckets))
	for i, b := range buckets {
		actual := b.TotalAmount
		points[i] = models.HistoryPoint{
			Period: b.PeriodStart.Format(dateLayout),
			Actual: &actual,
		}
	}
	return points
}
