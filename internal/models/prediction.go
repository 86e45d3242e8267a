package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PredictionLog is an immutable record of a forecast made at a point in time
type PredictionLog struct {
	ID                uuid.UUID        `json:"id"`
	UserID            int64            `json:"user_id"`
	PeriodType        string           `json:"period_type"`
	PredictedAmount   decimal.Decimal  `json:"predicted_amount"`
	ActualAmount      *decimal.Decimal `json:"actual_amount"` // Filled by reconciliation
	PredictedOn       time.Time        `json:"predicted_on"`
	TargetPeriodStart time.Time        `json:"target_period_start"`
}

// ForecastResult is the caller-facing outcome of a forecast request
type ForecastResult struct {
	Success    bool             `json:"success"`
	Message    string           `json:"message,omitempty"`
	Prediction *decimal.Decimal `json:"prediction"`
	History    []HistoryPoint   `json:"history"`
	NextPeriod string           `json:"next_period,omitempty"` // Format: YYYY-MM-DD
}

// HistoryPoint represents one bucket of the historical series
type HistoryPoint struct {
	Period    string           `json:"period"` // Format: YYYY-MM-DD
	Actual    *decimal.Decimal `json:"actual"`
	Predicted *decimal.Decimal `json:"predicted"`
}

// PredictionAccuracy summarizes reconciled predictions
type PredictionAccuracy struct {
	PeriodType         string          `json:"period_type,omitempty"`
	Reconciled         int             `json:"reconciled"`
	MeanAbsoluteError  decimal.Decimal `json:"mean_absolute_error"`
	MeanAbsolutePctErr decimal.Decimal `json:"mean_absolute_percentage_error"`
}
