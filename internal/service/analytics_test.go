package service

import (
	"context"
	"testing"
	"time"

	"github.com/Dan9191/expense-forecast/internal/models"
	"github.com/Dan9191/expense-forecast/internal/repository"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seededService(t *testing.T) *Service {
	t.Helper()
	store := repository.NewMemoryStore()
	add := func(amount, category, description string, d time.Time) {
		store.AddExpense(models.Expense{
			UserID:      1,
			Amount:      decimal.RequireFromString(amount),
			Category:    category,
			Description: description,
			Date:        d,
		})
	}
	add("12.00", "Food", "lunch", date(2024, 5, 13))
	add("8.00", "Food", "", date(2024, 5, 13))
	add("60.00", "Fuel", "", date(2024, 5, 15))
	add("900.00", "Rent", "May rent", date(2024, 5, 1))
	add("5.00", "Food", "coffee", date(2024, 5, 19))
	add("30.00", "Fun", "cinema", date(2024, 5, 20)) // next week
	add("44.00", "Fun", "", date(2024, 4, 30))       // previous month
	store.AddExpense(models.Expense{UserID: 2, Amount: decimal.NewFromInt(1000), Category: "Rent", Date: date(2024, 5, 14)})
	return NewService(store, testLogger())
}

func TestWeeklySpending(t *testing.T) {
	svc := seededService(t)

	// Thursday 2024-05-16
	days, err := svc.WeeklySpending(context.Background(), 1, time.Date(2024, 5, 16, 15, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	require.Len(t, days, 7)

	assert.Equal(t, "Mon", days[0].Day)
	assert.Equal(t, "2024-05-13", days[0].Date)
	assert.True(t, decimal.NewFromInt(20).Equal(days[0].Amount))
	assert.True(t, days[1].Amount.IsZero())
	assert.True(t, decimal.NewFromInt(60).Equal(days[2].Amount))
	assert.Equal(t, "Sun", days[6].Day)
	assert.True(t, decimal.NewFromInt(5).Equal(days[6].Amount))
}

func TestTopExpenses(t *testing.T) {
	svc := seededService(t)

	top, err := svc.TopExpenses(context.Background(), 1, date(2024, 5, 16))
	require.NoError(t, err)
	require.Len(t, top, 5)
	assert.Equal(t, "May rent", top[0].Name)
	assert.Equal(t, "Fuel", top[1].Name) // falls back to category
	assert.Equal(t, "2024-05-15", top[1].Date)
	assert.Equal(t, "Fun", top[2].Category)
	assert.Equal(t, "lunch", top[3].Name)
	assert.Equal(t, "Food", top[4].Name)
}

func TestCategorySpending(t *testing.T) {
	svc := seededService(t)

	categories, err := svc.CategorySpending(context.Background(), 1, date(2024, 5, 16))
	require.NoError(t, err)
	require.Len(t, categories, 4)

	// total 1015
	assert.Equal(t, "Rent", categories[0].Category)
	assert.True(t, decimal.RequireFromString("88.67").Equal(categories[0].Percentage), "got %s", categories[0].Percentage)
	assert.Equal(t, "Fuel", categories[1].Category)
	assert.Equal(t, "Fun", categories[2].Category)
	assert.Equal(t, "Food", categories[3].Category)
	assert.True(t, decimal.NewFromInt(25).Equal(categories[3].Amount))
	assert.True(t, decimal.RequireFromString("2.46").Equal(categories[3].Percentage), "got %s", categories[3].Percentage)

	empty, err := svc.CategorySpending(context.Background(), 3, date(2024, 5, 16))
	require.NoError(t, err)
	assert.Empty(t, empty)
}
