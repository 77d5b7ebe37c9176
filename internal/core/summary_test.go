package core

import (
	"errors"
	"testing"
	"time"
)

func weekOfJune2024(t *testing.T) WeekSpan {
	t.Helper()
	span := WeekOf(time.Date(2024, 6, 5, 0, 0, 0, 0, time.UTC))
	if span.Start.Format(DateLayout) != "2024-06-03" || span.End.Format(DateLayout) != "2024-06-09" {
		t.Fatalf("unexpected span %v..%v", span.Start, span.End)
	}
	return span
}

func TestSummarizeWeekScenario(t *testing.T) {
	span := weekOfJune2024(t)
	earnings := []EarningRow{
		{Date: "2024-06-03", Day: "Monday", Amount: "100", Notes: "salary"},
		{Date: "2024-06-09", Day: "Sunday", Amount: "200", Notes: "freelance"},
	}
	expenses := []ExpenseRow{
		{Date: "2024-06-05", Day: "Wednesday", Category: "food", Amount: "50", Notes: "groceries"},
	}

	sum, skips := Summarize(span, earnings, expenses)
	if len(skips) != 0 {
		t.Fatalf("expected no skips, got %v", skips)
	}
	if sum.Earnings.String() != "300" || sum.Expenses.String() != "50" || sum.Balance.String() != "250" {
		t.Fatalf("expected 300/50/250, got %s/%s/%s", sum.Earnings, sum.Expenses, sum.Balance)
	}
}

func TestSummarizeExcludesRowsOutsideSpan(t *testing.T) {
	span := weekOfJune2024(t)
	earnings := []EarningRow{
		{Date: "2024-06-02", Amount: "1000"}, // sunday before the span
		{Date: "2024-06-10", Amount: "1000"}, // monday after the span
		{Date: "2024-06-03", Amount: "100"},  // span start, inclusive
		{Date: "2024-06-09", Amount: "200"},  // span end, inclusive
	}
	sum, skips := Summarize(span, earnings, nil)
	if len(skips) != 0 {
		t.Fatalf("expected no skips, got %v", skips)
	}
	if sum.Earnings.String() != "300" {
		t.Fatalf("expected 300, got %s", sum.Earnings)
	}
}

func TestSummarizeSkipsMalformedRows(t *testing.T) {
	span := weekOfJune2024(t)
	earnings := []EarningRow{
		{Date: "2024-06-03", Amount: "100"},
		{Date: "2024-13-45", Amount: "100"},  // invalid in all formats
		{Date: "2024-06-04", Amount: "lots"}, // unparseable amount
	}
	expenses := []ExpenseRow{
		{Date: "2024-06-05", Category: "food", Amount: "50"},
	}

	sum, skips := Summarize(span, earnings, expenses)
	if sum.Earnings.String() != "100" || sum.Expenses.String() != "50" || sum.Balance.String() != "50" {
		t.Fatalf("expected 100/50/50, got %s/%s/%s", sum.Earnings, sum.Expenses, sum.Balance)
	}
	if len(skips) != 2 {
		t.Fatalf("expected 2 skips, got %v", skips)
	}
	if skips[0].Set != "earnings" || skips[0].Index != 1 || !errors.Is(skips[0].Reason, ErrDateFormat) {
		t.Fatalf("unexpected first skip %+v", skips[0])
	}
	if skips[1].Index != 2 || !errors.Is(skips[1].Reason, ErrInvalidAmount) {
		t.Fatalf("unexpected second skip %+v", skips[1])
	}
}

func TestSummarizeMalformedRowDoesNotChangeTotals(t *testing.T) {
	span := weekOfJune2024(t)
	valid := []EarningRow{
		{Date: "2024-06-03", Amount: "10.50"},
		{Date: "2024-06-04", Amount: "20.25"},
	}
	base, _ := Summarize(span, valid, nil)
	withBad, _ := Summarize(span, append(append([]EarningRow{}, valid...), EarningRow{Date: "not a date", Amount: "99"}), nil)
	if !base.Earnings.Equal(withBad.Earnings) {
		t.Fatalf("malformed row changed total: %s vs %s", base.Earnings, withBad.Earnings)
	}
}

func TestWeeklySummaryFormat(t *testing.T) {
	span := weekOfJune2024(t)
	sum, _ := Summarize(span,
		[]EarningRow{{Date: "2024-06-03", Amount: "300"}},
		[]ExpenseRow{{Date: "2024-06-05", Category: "food", Amount: "50"}},
	)
	want := "📊 Weekly Summary (2024-06-03 → 2024-06-09)\nEarnings: ₹300\nExpenses: ₹50\nBalance Left: ₹250"
	if got := sum.Format(); got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}
