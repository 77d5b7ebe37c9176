package bot

import (
	"context"
	"fmt"
	"strings"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"ledgerbot/internal/core"
	"ledgerbot/internal/ledger"
	"ledgerbot/internal/log"
	"ledgerbot/internal/services"
)

const (
	welcomeText = "👋 Welcome to Finance Tracker!\n\n" +
		"Commands:\n" +
		"/spend <amount> <category> <notes>\n" +
		"/earn <amount> <notes>\n" +
		"/summary"

	spendUsage   = "⚠️ Usage: /spend <amount> <category> <notes>"
	earnUsage    = "⚠️ Usage: /earn <amount> <notes>"
	summaryError = "⚠️ Error while calculating summary."
)

// Bot dispatches chat commands to the ledger and summary services.
type Bot struct {
	api      *tgbotapi.BotAPI
	expenses ledger.ExpenseAppender
	earnings ledger.EarningAppender
	summary  *services.SummaryService
	logger   *log.Logger
	now      func() time.Time
}

func New(
	api *tgbotapi.BotAPI,
	expenses ledger.ExpenseAppender,
	earnings ledger.EarningAppender,
	summary *services.SummaryService,
	logger *log.Logger,
) *Bot {
	return &Bot{
		api:      api,
		expenses: expenses,
		earnings: earnings,
		summary:  summary,
		logger:   logger,
		now:      time.Now,
	}
}

// Run consumes updates until ctx is cancelled. Each command is handled to
// completion before the next; failures never stop the loop.
func (b *Bot) Run(ctx context.Context) error {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 30
	updates := b.api.GetUpdatesChan(u)

	for {
		select {
		case <-ctx.Done():
			b.api.StopReceivingUpdates()
			return nil
		case update, ok := <-updates:
			if !ok {
				return nil
			}
			if update.Message == nil || !update.Message.IsCommand() {
				continue
			}
			reply := b.dispatch(ctx, update.Message)
			if reply == "" {
				continue
			}
			if _, err := b.api.Send(tgbotapi.NewMessage(update.Message.Chat.ID, reply)); err != nil {
				b.logger.ErrorContext(ctx, "Failed to send reply",
					log.FieldChatID, update.Message.Chat.ID,
					log.FieldCommand, update.Message.Command(),
					log.FieldError, err.Error())
			}
		}
	}
}

// Push sends text to a chat outside of any command exchange. Used by the
// weekly summary scheduler.
func (b *Bot) Push(chatID int64, text string) error {
	_, err := b.api.Send(tgbotapi.NewMessage(chatID, text))
	return err
}

func (b *Bot) dispatch(ctx context.Context, msg *tgbotapi.Message) string {
	switch msg.Command() {
	case "start":
		return welcomeText
	case "spend":
		return b.handleSpend(ctx, msg.CommandArguments())
	case "earn":
		return b.handleEarn(ctx, msg.CommandArguments())
	case "summary":
		return b.handleSummary(ctx)
	default:
		return ""
	}
}

// handleSpend appends an expense row for today. Malformed input or a store
// failure both come back as the usage hint; no partial row is ever written.
func (b *Bot) handleSpend(ctx context.Context, args string) string {
	fields := strings.Fields(args)
	if len(fields) < 2 {
		return spendUsage
	}
	amount, err := core.ParseAmount(fields[0])
	if err != nil {
		return spendUsage
	}
	category := fields[1]
	notes := strings.Join(fields[2:], " ")

	row := core.NewExpenseRow(b.now(), amount, category, notes)
	if err := b.expenses.AppendExpense(ctx, row); err != nil {
		b.logger.ErrorContext(ctx, "Failed to append expense row",
			log.FieldAmount, amount.String(),
			log.FieldCategory, category,
			log.FieldError, err.Error())
		return spendUsage
	}
	return fmt.Sprintf("✅ Expense logged: ₹%s (%s) - %s", amount, category, notes)
}

// handleEarn appends an earning row for today.
func (b *Bot) handleEarn(ctx context.Context, args string) string {
	fields := strings.Fields(args)
	if len(fields) < 1 {
		return earnUsage
	}
	amount, err := core.ParseAmount(fields[0])
	if err != nil {
		return earnUsage
	}
	notes := strings.Join(fields[1:], " ")

	row := core.NewEarningRow(b.now(), amount, notes)
	if err := b.earnings.AppendEarning(ctx, row); err != nil {
		b.logger.ErrorContext(ctx, "Failed to append earning row",
			log.FieldAmount, amount.String(),
			log.FieldError, err.Error())
		return earnUsage
	}
	return fmt.Sprintf("✅ Earning logged: ₹%s - %s", amount, notes)
}

// handleSummary replies with the current week's totals. Internal failures
// are swallowed into a generic error reply.
func (b *Bot) handleSummary(ctx context.Context) string {
	span := core.WeekOf(b.now())
	sum, err := b.summary.WeekSummary(ctx, span)
	if err != nil {
		b.logger.ErrorContext(ctx, "Failed to compute weekly summary",
			log.FieldWeekStart, span.Start.Format(core.DateLayout),
			log.FieldWeekEnd, span.End.Format(core.DateLayout),
			log.FieldError, err.Error())
		return summaryError
	}
	return sum.Format()
}
