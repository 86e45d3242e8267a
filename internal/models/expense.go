package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Expense represents a recorded expense of a user
type Expense struct {
	ID          int64           `json:"id"`
	UserID      int64           `json:"user_id"`
	AccountID   int64           `json:"account_id"`
	Amount      decimal.Decimal `json:"amount"`
	Category    string          `json:"category"`
	Description string          `json:"description"`
	Date        time.Time       `json:"date"`
}
