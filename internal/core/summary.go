package core

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// WeeklySummary is a derived aggregate over one week span. It is recomputed
// on every request and never stored.
type WeeklySummary struct {
	Span     WeekSpan
	Earnings decimal.Decimal
	Expenses decimal.Decimal
	Balance  decimal.Decimal
}

// RowSkip describes a row excluded from a summary because its date or
// amount could not be parsed.
type RowSkip struct {
	Set    string // "earnings" or "expenses"
	Index  int    // zero-based position within the row-set
	Reason error
}

// Summarize totals both row-sets over span, inclusive on both ends.
// Rows whose date or amount fail to parse are skipped and reported, never
// fatal: one malformed row must not block a weekly summary.
func Summarize(span WeekSpan, earnings []EarningRow, expenses []ExpenseRow) (WeeklySummary, []RowSkip) {
	var skips []RowSkip

	totalEarnings := decimal.Zero
	for i, row := range earnings {
		amt, in, err := amountInSpan(span, row.Date, row.Amount)
		if err != nil {
			skips = append(skips, RowSkip{Set: "earnings", Index: i, Reason: err})
			continue
		}
		if in {
			totalEarnings = totalEarnings.Add(amt)
		}
	}

	totalExpenses := decimal.Zero
	for i, row := range expenses {
		amt, in, err := amountInSpan(span, row.Date, row.Amount)
		if err != nil {
			skips = append(skips, RowSkip{Set: "expenses", Index: i, Reason: err})
			continue
		}
		if in {
			totalExpenses = totalExpenses.Add(amt)
		}
	}

	return WeeklySummary{
		Span:     span,
		Earnings: totalEarnings,
		Expenses: totalExpenses,
		Balance:  totalEarnings.Sub(totalExpenses),
	}, skips
}

// amountInSpan parses a row's date and, when it falls within span, its
// amount. Amounts of out-of-span rows are never parsed, so a bad amount on
// an old row is not an error.
func amountInSpan(span WeekSpan, date, amount string) (decimal.Decimal, bool, error) {
	d, err := ParseDate(date)
	if err != nil {
		return decimal.Decimal{}, false, err
	}
	if !span.Contains(d) {
		return decimal.Decimal{}, false, nil
	}
	amt, err := ParseAmount(amount)
	if err != nil {
		return decimal.Decimal{}, false, err
	}
	return amt, true, nil
}

// Format renders the summary as the chat reply body.
func (s WeeklySummary) Format() string {
	return fmt.Sprintf(
		"📊 Weekly Summary (%s → %s)\nEarnings: ₹%s\nExpenses: ₹%s\nBalance Left: ₹%s",
		s.Span.Start.Format(DateLayout),
		s.Span.End.Format(DateLayout),
		s.Earnings, s.Expenses, s.Balance,
	)
}
