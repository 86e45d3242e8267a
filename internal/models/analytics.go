package models

import "github.com/shopspring/decimal"

// DaySpending represents total spending for one day of the current week
type DaySpending struct {
	Day    string          `json:"day"` // Mon, Tue, ...
	Amount decimal.Decimal `json:"amount"`
	Date   string          `json:"date"` // Format: YYYY-MM-DD
}

// TopExpense represents one of the largest expenses of the current month
type TopExpense struct {
	Name     string          `json:"name"`
	Amount   decimal.Decimal `json:"amount"`
	Date     string          `json:"date"`
	Category string          `json:"category"`
}

// CategorySpending represents month-to-date spending for a category
type CategorySpending struct {
	Category   string          `json:"category"`
	Amount     decimal.Decimal `json:"amount"`
	Percentage decimal.Decimal `json:"percentage"`
}
