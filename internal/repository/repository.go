package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Dan9191/expense-forecast/internal/forecast"
	"github.com/Dan9191/expense-forecast/internal/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Repository provides PostgreSQL-backed storage
type Repository struct {
	db *sql.DB
}

// NewRepository initializes a new repository
func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

// ListObservations returns the amount and date of every expense of a user
func (r *Repository) ListObservations(ctx context.Context, userID int64) ([]forecast.Observation, error) {
	query := `
		SELECT amount, date
		FROM finance.expenses
		WHERE user_id = $1
		ORDER BY date`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list observations: %w", err)
	}
	defer rows.Close()

	var observations []forecast.Observation
	for rows.Next() {
		var o forecast.Observation
		if err := rows.Scan(&o.Amount, &o.Date); err != nil {
			return nil, fmt.Errorf("failed to scan observation: %w", err)
		}
		observations = append(observations, o)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list observations: %w", err)
	}
	return observations, nil
}

// ListExpensesBetween returns expenses dated in [from, to)
func (r *Repository) ListExpensesBetween(ctx context.Context, userID int64, from, to time.Time) ([]models.Expense, error) {
	query := `
		SELECT id, user_id, account_id, amount, category, description, date
		FROM finance.expenses
		WHERE user_id = $1 AND date >= $2 AND date < $3
		ORDER BY date`
	rows, err := r.db.QueryContext(ctx, query, userID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list expenses: %w", err)
	}
	defer rows.Close()

	var expenses []models.Expense
	for rows.Next() {
		var e models.Expense
		if err := rows.Scan(&e.ID, &e.UserID, &e.AccountID, &e.Amount, &e.Category, &e.Description, &e.Date); err != nil {
			return nil, fmt.Errorf("failed to scan expense: %w", err)
		}
		expenses = append(expenses, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list expenses: %w", err)
	}
	return expenses, nil
}

// CreatePredictionLog inserts a prediction log entry
func (r *Repository) CreatePredictionLog(ctx context.Context, log *models.PredictionLog) error {
	log.ID = uuid.New()
	query := `
		INSERT INTO finance.prediction_logs (id, user_id, period_type, predicted_amount, target_period_start, predicted_on)
		VALUES ($1, $2, $3, $4, $5, CURRENT_TIMESTAMP)
		RETURNING predicted_on`
	err := r.db.QueryRowContext(ctx, query, log.ID, log.UserID, log.PeriodType, log.PredictedAmount, log.TargetPeriodStart).
		Scan(&log.PredictedOn)
	if err != nil {
		return fmt.Errorf("failed to create prediction log: %w", err)
	}
	return nil
}

// ListPredictionLogs returns the latest prediction logs of a user. An empty
// periodType matches every period.
func (r *Repository) ListPredictionLogs(ctx context.Context, userID int64, periodType string, limit int) ([]models.PredictionLog, error) {
	query := `
		SELECT id, user_id, period_type, predicted_amount, actual_amount, predicted_on, target_period_start
		FROM finance.prediction_logs
		WHERE user_id = $1 AND ($2 = '' OR period_type = $2)
		ORDER BY predicted_on DESC
		LIMIT $3`
	rows, err := r.db.QueryContext(ctx, query, userID, periodType, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list prediction logs: %w", err)
	}
	defer rows.Close()
	return scanPredictionLogs(rows)
}

// ListUnreconciledPredictions returns logs without an actual amount whose
// target period starts before targetBefore
func (r *Repository) ListUnreconciledPredictions(ctx context.Context, targetBefore time.Time) ([]models.PredictionLog, error) {
	query := `
		SELECT id, user_id, period_type, predicted_amount, actual_amount, predicted_on, target_period_start
		FROM finance.prediction_logs
		WHERE actual_amount IS NULL AND target_period_start < $1
		ORDER BY predicted_on`
	rows, err := r.db.QueryContext(ctx, query, targetBefore)
	if err != nil {
		return nil, fmt.Errorf("failed to list unreconciled predictions: %w", err)
	}
	defer rows.Close()
	return scanPredictionLogs(rows)
}

// SetPredictionActual records the realized amount of a prediction once
func (r *Repository) SetPredictionActual(ctx context.Context, id uuid.UUID, actual decimal.Decimal) error {
	query := `
		UPDATE finance.prediction_logs
		SET actual_amount = $2
		WHERE id = $1 AND actual_amount IS NULL`
	res, err := r.db.ExecContext(ctx, query, id, actual)
	if err != nil {
		return fmt.Errorf("failed to set prediction actual: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to set prediction actual: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func scanPredictionLogs(rows *sql.Rows) ([]models.PredictionLog, error) {
	var logs []models.PredictionLog
	for rows.Next() {
		var l models.PredictionLog
		var actual decimal.NullDecimal
		if err := rows.Scan(&l.ID, &l.UserID, &l.PeriodType, &l.PredictedAmount, &actual, &l.PredictedOn, &l.TargetPeriodStart); err != nil {
			return nil, fmt.Errorf("failed to scan prediction log: %w", err)
		}
		if actual.Valid {
			l.ActualAmount = &actual.Decimal
		}
		logs = append(logs, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read prediction logs: %w", err)
	}
	return logs, nil
}
