package core

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

var (
	ErrInvalidAmount = errors.New("invalid amount")
	ErrEmptyCategory = errors.New("empty category")
)

type (
	// ExpenseRow mirrors one row of the Expenses sheet. Field order matches
	// the sheet's column order: Date, Day, Category, Amount, Notes. Values
	// stay as stored text; parsing happens at aggregation time so one bad
	// cell never poisons a whole read.
	ExpenseRow struct {
		Date     string
		Day      string
		Category string
		Amount   string
		Notes    string
	}

	// EarningRow mirrors one row of the Earnings sheet: Date, Day, Amount, Notes.
	EarningRow struct {
		Date   string
		Day    string
		Amount string
		Notes  string
	}
)

// ParseAmount parses a decimal amount as stored in a sheet cell.
// Signed values are accepted; currency symbols are not.
func ParseAmount(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Decimal{}, ErrInvalidAmount
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("%w: %q", ErrInvalidAmount, s)
	}
	return d, nil
}

// NewExpenseRow stamps now's date and weekday name onto a fresh expense row.
func NewExpenseRow(now time.Time, amount decimal.Decimal, category, notes string) ExpenseRow {
	return ExpenseRow{
		Date:     now.Format(DateLayout),
		Day:      now.Weekday().String(),
		Category: category,
		Amount:   amount.String(),
		Notes:    notes,
	}
}

// NewEarningRow stamps now's date and weekday name onto a fresh earning row.
func NewEarningRow(now time.Time, amount decimal.Decimal, notes string) EarningRow {
	return EarningRow{
		Date:   now.Format(DateLayout),
		Day:    now.Weekday().String(),
		Amount: amount.String(),
		Notes:  notes,
	}
}

func (r ExpenseRow) Validate() error {
	if _, err := ParseDate(r.Date); err != nil {
		return err
	}
	if strings.TrimSpace(r.Category) == "" {
		return ErrEmptyCategory
	}
	if _, err := ParseAmount(r.Amount); err != nil {
		return err
	}
	return nil
}

func (r EarningRow) Validate() error {
	if _, err := ParseDate(r.Date); err != nil {
		return err
	}
	if _, err := ParseAmount(r.Amount); err != nil {
		return err
	}
	return nil
}
