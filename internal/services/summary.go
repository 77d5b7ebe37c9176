package services

import (
	"context"
	"fmt"

	"ledgerbot/internal/core"
	"ledgerbot/internal/ledger"
	"ledgerbot/internal/log"
)

// SummaryService computes weekly summaries over the ledger store.
type SummaryService struct {
	reader ledger.Reader
	logger *log.Logger
}

func NewSummaryService(reader ledger.Reader, logger *log.Logger) *SummaryService {
	return &SummaryService{reader: reader, logger: logger}
}

// WeekSummary fetches both row-sets and totals them over span. Rows that
// fail to parse are logged and skipped; only store read failures surface as
// errors.
func (s *SummaryService) WeekSummary(ctx context.Context, span core.WeekSpan) (core.WeeklySummary, error) {
	earnings, err := s.reader.Earnings(ctx)
	if err != nil {
		return core.WeeklySummary{}, fmt.Errorf("read earnings: %w", err)
	}
	expenses, err := s.reader.Expenses(ctx)
	if err != nil {
		return core.WeeklySummary{}, fmt.Errorf("read expenses: %w", err)
	}

	summary, skips := core.Summarize(span, earnings, expenses)
	for _, skip := range skips {
		s.logger.WarnContext(ctx, "Skipping unparseable ledger row",
			log.FieldRowSet, skip.Set,
			log.FieldRowIndex, skip.Index,
			log.FieldError, skip.Reason.Error())
	}
	return summary, nil
}
