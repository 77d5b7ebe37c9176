package ledger

import (
	"context"

	"ledgerbot/internal/core"
)

// Ports for the spreadsheet-backed row store. Rows are append-only; there is
// no update or delete path.
type (
	ExpenseAppender interface {
		AppendExpense(ctx context.Context, row core.ExpenseRow) error
	}

	EarningAppender interface {
		AppendEarning(ctx context.Context, row core.EarningRow) error
	}

	// Reader returns every stored row of a set as text; date-range
	// filtering and amount parsing happen in core.
	Reader interface {
		Expenses(ctx context.Context) ([]core.ExpenseRow, error)
		Earnings(ctx context.Context) ([]core.EarningRow, error)
	}
)
