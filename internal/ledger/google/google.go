package google

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"ledgerbot/internal/core"
	ports "ledgerbot/internal/ledger"

	goption "google.golang.org/api/option"
	gsheet "google.golang.org/api/sheets/v4"
)

// Client reads and appends ledger rows in a Google Sheets spreadsheet with
// one worksheet per row-set.
type Client struct {
	svc           *gsheet.Service
	spreadsheetID string
	expensesSheet string
	earningsSheet string
}

// Ensure interface conformance
var (
	_ ports.ExpenseAppender = (*Client)(nil)
	_ ports.EarningAppender = (*Client)(nil)
	_ ports.Reader          = (*Client)(nil)
)

// New creates a Sheets client for the given spreadsheet using service
// account credentials.
func New(ctx context.Context, spreadsheetID, expensesSheet, earningsSheet string, credentialsJSON []byte) (*Client, error) {
	if strings.TrimSpace(spreadsheetID) == "" {
		return nil, errors.New("missing spreadsheet ID")
	}
	if expensesSheet == "" {
		expensesSheet = "Expenses"
	}
	if earningsSheet == "" {
		earningsSheet = "Earnings"
	}
	if len(credentialsJSON) == 0 {
		return nil, errors.New("missing service account credentials")
	}

	svc, err := gsheet.NewService(ctx,
		goption.WithCredentialsJSON(credentialsJSON),
		goption.WithScopes(gsheet.SpreadsheetsScope))
	if err != nil {
		return nil, fmt.Errorf("create sheets service: %w", err)
	}

	return &Client{
		svc:           svc,
		spreadsheetID: spreadsheetID,
		expensesSheet: expensesSheet,
		earningsSheet: earningsSheet,
	}, nil
}

// AppendExpense appends one row to the expenses worksheet in column order
// Date, Day, Category, Amount, Notes.
func (c *Client) AppendExpense(ctx context.Context, row core.ExpenseRow) error {
	if err := row.Validate(); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}
	return c.appendRow(ctx, c.expensesSheet, []any{row.Date, row.Day, row.Category, row.Amount, row.Notes})
}

// AppendEarning appends one row to the earnings worksheet in column order
// Date, Day, Amount, Notes.
func (c *Client) AppendEarning(ctx context.Context, row core.EarningRow) error {
	if err := row.Validate(); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}
	return c.appendRow(ctx, c.earningsSheet, []any{row.Date, row.Day, row.Amount, row.Notes})
}

func (c *Client) appendRow(ctx context.Context, sheetName string, values []any) error {
	if c.svc == nil {
		return errors.New("sheets service not initialized")
	}
	rng := fmt.Sprintf("%s!A:A", sheetName)
	vr := &gsheet.ValueRange{Values: [][]any{values}}
	_, err := c.svc.Spreadsheets.Values.Append(c.spreadsheetID, rng, vr).
		ValueInputOption("USER_ENTERED").
		InsertDataOption("INSERT_ROWS").
		Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("append to sheet %s: %w", sheetName, err)
	}
	return nil
}

// Expenses returns every row of the expenses worksheet, header excluded.
// Cells stay as stored text; nothing is parsed here.
func (c *Client) Expenses(ctx context.Context) ([]core.ExpenseRow, error) {
	rows, err := c.readRows(ctx, c.expensesSheet, "A2:E")
	if err != nil {
		return nil, err
	}
	out := make([]core.ExpenseRow, 0, len(rows))
	for _, cols := range rows {
		out = append(out, core.ExpenseRow{
			Date:     col(cols, 0),
			Day:      col(cols, 1),
			Category: col(cols, 2),
			Amount:   col(cols, 3),
			Notes:    col(cols, 4),
		})
	}
	return out, nil
}

// Earnings returns every row of the earnings worksheet, header excluded.
func (c *Client) Earnings(ctx context.Context) ([]core.EarningRow, error) {
	rows, err := c.readRows(ctx, c.earningsSheet, "A2:D")
	if err != nil {
		return nil, err
	}
	out := make([]core.EarningRow, 0, len(rows))
	for _, cols := range rows {
		out = append(out, core.EarningRow{
			Date:   col(cols, 0),
			Day:    col(cols, 1),
			Amount: col(cols, 2),
			Notes:  col(cols, 3),
		})
	}
	return out, nil
}

func (c *Client) readRows(ctx context.Context, sheetName, span string) ([][]string, error) {
	if c.svc == nil {
		return nil, errors.New("sheets service not initialized")
	}
	rng := fmt.Sprintf("%s!%s", sheetName, span)
	resp, err := c.svc.Spreadsheets.Values.Get(c.spreadsheetID, rng).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", rng, err)
	}
	var out [][]string
	for _, row := range resp.Values {
		cols := toStrings(row)
		if allEmpty(cols) {
			continue
		}
		out = append(out, cols)
	}
	return out, nil
}

func toStrings(in []interface{}) []string {
	out := make([]string, len(in))
	for i, v := range in {
		out[i] = strings.TrimSpace(fmt.Sprint(v))
	}
	return out
}

func allEmpty(cols []string) bool {
	for _, c := range cols {
		if c != "" {
			return false
		}
	}
	return true
}

func col(cols []string, idx int) string {
	if idx < 0 || idx >= len(cols) {
		return ""
	}
	return cols[idx]
}
