package service

import (
	"context"
	"sort"
	"time"

	"github.com/Dan9191/expense-forecast/internal/forecast"
	"github.com/Dan9191/expense-forecast/internal/models"
	"github.com/shopspring/decimal"
)

const topExpensesLimit = 5

// WeeklySpending returns daily totals from Monday to Sunday of the week containing today
func (s *Service) WeeklySpending(ctx context.Context, userID int64, today time.Time) ([]models.DaySpending, error) {
	start := forecast.Weekly.Start(today)
	expenses, err := s.repo.ListExpensesBetween(ctx, userID, start, start.AddDate(0, 0, 7))
	if err != nil {
		return nil, err
	}

	totals := make(map[string]decimal.Decimal)
	for _, e := range expenses {
		totals[e.Date.Format("2006-01-02")] = totals[e.Date.Format("2006-01-02")].Add(e.Amount)
	}

	days := make([]models.DaySpending, 7)
	for i := range days {
		d := start.AddDate(0, 0, i)
		key := d.Format("2006-01-02")
		days[i] = models.DaySpending{Day: d.Format("Mon"), Amount: totals[key], Date: key}
	}
	return days, nil
}

// TopExpenses returns the largest expenses of the current month
func (s *Service) TopExpenses(ctx context.Context, userID int64, today time.Time) ([]models.TopExpense, error) {
	expenses, err := s.monthExpenses(ctx, userID, today)
	if err != nil {
		return nil, err
	}

	sort.SliceStable(expenses, func(i, j int) bool {
		return expenses[i].Amount.GreaterThan(expenses[j].Amount)
	})
	if len(expenses) > topExpensesLimit {
		expenses = expenses[:topExpensesLimit]
	}

	top := make([]models.TopExpense, len(expenses))
	for i, e := range expenses {
		name := e.Description
		if name == "" {
			name = e.Category
		}
		top[i] = models.TopExpense{
			Name:     name,
			Amount:   e.Amount,
			Date:     e.Date.Format("2006-01-02"),
			Category: e.Category,
		}
	}
	return top, nil
}

// CategorySpending returns current month totals per category with their share
// of the month's spend
func (s *Service) CategorySpending(ctx context.Context, userID int64, today time.Time) ([]models.CategorySpending, error) {
	expenses, err := s.monthExpenses(ctx, userID, today)
	if err != nil {
		return nil, err
	}

	totals := make(map[string]decimal.Decimal)
	total := decimal.Zero
	for _, e := range expenses {
		totals[e.Category] = totals[e.Category].Add(e.Amount)
		total = total.Add(e.Amount)
	}

	categories := make([]models.CategorySpending, 0, len(totals))
	for category, amount := range totals {
		pct := decimal.Zero
		if total.IsPositive() {
			pct = amount.Div(total).Mul(decimal.NewFromInt(100)).Round(2)
		}
		categories = append(categories, models.CategorySpending{Category: category, Amount: amount, Percentage: pct})
	}
	sort.Slice(categories, func(i, j int) bool {
		if !categories[i].Amount.Equal(categories[j].Amount) {
			return categories[i].Amount.GreaterThan(categories[j].Amount)
		}
		return categories[i].Category < categories[j].Category
	})
	return categories, nil
}

func (s *Service) monthExpenses(ctx context.Context, userID int64, today time.Time) ([]models.Expense, error) {
	start := forecast.Monthly.Start(today)
	return s.repo.ListExpensesBetween(ctx, userID, start, start.AddDate(0, 1, 0))
}
