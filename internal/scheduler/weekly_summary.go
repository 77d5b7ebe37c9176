// Package scheduler runs the recurring weekly summary push.
package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/go-co-op/gocron"

	"ledgerbot/internal/core"
	"ledgerbot/internal/log"
	"ledgerbot/internal/services"
)

// Notifier pushes a message to a fixed chat.
type Notifier interface {
	Push(chatID int64, text string) error
}

type WeeklySummaryConfig struct {
	Weekday  time.Weekday
	At       string // "HH:MM" in Location
	Location *time.Location
	ChatID   int64
}

// WeeklySummaryService pushes the just-completed week's summary to one
// fixed chat on a weekly trigger.
type WeeklySummaryService struct {
	scheduler *gocron.Scheduler
	summary   *services.SummaryService
	notifier  Notifier
	config    WeeklySummaryConfig
	logger    *log.Logger
	now       func() time.Time
}

func NewWeeklySummaryService(
	summary *services.SummaryService,
	notifier Notifier,
	cfg WeeklySummaryConfig,
	logger *log.Logger,
) *WeeklySummaryService {
	loc := cfg.Location
	if loc == nil {
		loc = time.Local
	}
	return &WeeklySummaryService{
		scheduler: gocron.NewScheduler(loc),
		summary:   summary,
		notifier:  notifier,
		config:    cfg,
		logger:    logger,
		now:       func() time.Time { return time.Now().In(loc) },
	}
}

// Start schedules the weekly job and runs the scheduler in the background
// until ctx is cancelled.
func (s *WeeklySummaryService) Start(ctx context.Context) error {
	s.logger.Info("Starting weekly summary scheduler",
		"weekday", s.config.Weekday.String(),
		"at", s.config.At,
		log.FieldChatID, s.config.ChatID)

	_, err := s.scheduler.Every(1).Week().Weekday(s.config.Weekday).At(s.config.At).Do(func() {
		s.SendWeeklySummary(context.Background())
	})
	if err != nil {
		return fmt.Errorf("schedule weekly summary: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		s.logger.Info("Stopping weekly summary scheduler")
		s.scheduler.Stop()
	}()

	return nil
}

// SendWeeklySummary reports on the week that ended the day before the
// trigger date. Failures are logged only: the job never retries within the
// same trigger and never messages anyone about its own errors.
func (s *WeeklySummaryService) SendWeeklySummary(ctx context.Context) {
	lastWeekEnd := s.now().AddDate(0, 0, -1)
	span := core.WeekOf(lastWeekEnd)

	sum, err := s.summary.WeekSummary(ctx, span)
	if err != nil {
		s.logger.ErrorContext(ctx, "Weekly summary computation failed",
			log.FieldWeekStart, span.Start.Format(core.DateLayout),
			log.FieldWeekEnd, span.End.Format(core.DateLayout),
			log.FieldError, err.Error())
		return
	}

	if err := s.notifier.Push(s.config.ChatID, sum.Format()); err != nil {
		s.logger.ErrorContext(ctx, "Weekly summary push failed",
			log.FieldChatID, s.config.ChatID,
			log.FieldError, err.Error())
		return
	}

	s.logger.InfoContext(ctx, "Weekly summary pushed",
		log.FieldChatID, s.config.ChatID,
		log.FieldWeekStart, span.Start.Format(core.DateLayout),
		log.FieldWeekEnd, span.End.Format(core.DateLayout))
}
