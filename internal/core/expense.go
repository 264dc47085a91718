package core

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// NewExpense validates and builds a business expense. The date defaults to
// today when omitted; unknown categories fall back to "other".
func NewExpense(id, description, amount, date string, category ExpenseCategory, now time.Time) (*Expense, error) {
	description = strings.TrimSpace(description)
	if description == "" {
		return nil, errors.New("expense description is required")
	}

	amt, err := decimal.NewFromString(strings.TrimSpace(amount))
	if err != nil {
		return nil, fmt.Errorf("invalid expense amount %q: %w", amount, err)
	}
	if amt.IsNegative() {
		return nil, errors.New("expense amount cannot be negative")
	}

	if strings.TrimSpace(date) == "" {
		date = now.Format("2006-01-02")
	}

	switch category {
	case ExpenseTransport, ExpenseMarketing, ExpenseSupplies, ExpenseOther:
	default:
		category = ExpenseOther
	}

	return &Expense{
		ID:          id,
		Description: description,
		Amount:      amt,
		Date:        strings.TrimSpace(date),
		Category:    category,
	}, nil
}
