package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/Dan9191/expense-forecast/internal/forecast"
	"github.com/Dan9191/expense-forecast/internal/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// MemoryStore implements Store with in-memory storage
type MemoryStore struct {
	mu sync.RWMutex

	expenses    []models.Expense
	predictions []models.PredictionLog
	nextID      int64
	now         func() time.Time
}

// NewMemoryStore creates a new in-memory store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{now: time.Now}
}

// AddExpense stores an expense and assigns its ID
func (m *MemoryStore) AddExpense(expense models.Expense) models.Expense {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.nextID++
	expense.ID = m.nextID
	m.expenses = append(m.expenses, expense)
	return expense
}

func (m *MemoryStore) ListObservations(ctx context.Context, userID int64) ([]forecast.Observation, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var observations []forecast.Observation
	for _, e := range m.sortedExpenses() {
		if e.UserID == userID {
			observations = append(observations, forecast.Observation{Amount: e.Amount, Date: e.Date})
		}
	}
	return observations, nil
}

func (m *MemoryStore) ListExpensesBetween(ctx context.Context, userID int64, from, to time.Time) ([]models.Expense, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var expenses []models.Expense
	for _, e := range m.sortedExpenses() {
		if e.UserID != userID || e.Date.Before(from) || !e.Date.Before(to) {
			continue
		}
		expenses = append(expenses, e)
	}
	return expenses, nil
}

func (m *MemoryStore) CreatePredictionLog(ctx context.Context, log *models.PredictionLog) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	log.ID = uuid.New()
	log.PredictedOn = m.now()
	m.predictions = append(m.predictions, *log)
	return nil
}

func (m *MemoryStore) ListPredictionLogs(ctx context.Context, userID int64, periodType string, limit int) ([]models.PredictionLog, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var logs []models.PredictionLog
	// newest first
	for i := len(m.predictions) - 1; i >= 0; i-- {
		p := m.predictions[i]
		if p.UserID != userID || (periodType != "" && p.PeriodType != periodType) {
			continue
		}
		logs = append(logs, copyPrediction(p))
		if limit > 0 && len(logs) == limit {
			break
		}
	}
	return logs, nil
}

func (m *MemoryStore) ListUnreconciledPredictions(ctx context.Context, targetBefore time.Time) ([]models.PredictionLog, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var logs []models.PredictionLog
	for _, p := range m.predictions {
		if p.ActualAmount == nil && p.TargetPeriodStart.Before(targetBefore) {
			logs = append(logs, copyPrediction(p))
		}
	}
	return logs, nil
}

func (m *MemoryStore) SetPredictionActual(ctx context.Context, id uuid.UUID, actual decimal.Decimal) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i := range m.predictions {
		if m.predictions[i].ID != id {
			continue
		}
		if m.predictions[i].ActualAmount != nil {
			return ErrNotFound
		}
		m.predictions[i].ActualAmount = &actual
		return nil
	}
	return ErrNotFound
}

// sortedExpenses must be called with the lock held
func (m *MemoryStore) sortedExpenses() []models.Expense {
	expenses := make([]models.Expense, len(m.expenses))
	copy(expenses, m.expenses)
	sort.SliceStable(expenses, func(i, j int) bool {
		return expenses[i].Date.Before(expenses[j].Date)
	})
	return expenses
}

func copyPrediction(p models.PredictionLog) models.PredictionLog {
	if p.ActualAmount != nil {
		actual := *p.ActualAmount
		p.ActualAmount = &actual
	}
	return p
}
