package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"CleanSort/internal/model"
)

// DigestService — периодическая сводка по напоминаниям. Живёт вне
// движка: движок не опрашивает часы сам, опрос — забота окружения.
type DigestService struct {
	reminders *ReminderService
	logger    *zap.SugaredLogger
	cron      *cron.Cron
}

// NewDigestService создаёт сервис сводок.
func NewDigestService(reminders *ReminderService, logger *zap.SugaredLogger) *DigestService {
	return &DigestService{
		reminders: reminders,
		logger:    logger,
		cron:      cron.New(),
	}
}

// Start регистрирует периодическую задачу и запускает планировщик.
// Нулевой интервал отключает сводки.
func (s *DigestService) Start(interval time.Duration) error {
	if interval <= 0 {
		s.logger.Infow("reminder digest disabled")
		return nil
	}
	spec := fmt.Sprintf("@every %ds", int(interval.Seconds()))
	if _, err := s.cron.AddFunc(spec, s.run); err != nil {
		return fmt.Errorf("schedule digest: %w", err)
	}
	s.cron.Start()
	s.logger.Infow("reminder digest scheduled", "interval", interval.String())
	return nil
}

// Stop останавливает планировщик и дожидается текущей задачи.
func (s *DigestService) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
}

func (s *DigestService) run() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	summary, err := s.Summary(ctx)
	if err != nil {
		s.logger.Errorw("digest run failed", "error", err)
		return
	}
	if summary == "" {
		return
	}
	s.logger.Infow("reminder digest", "summary", summary)
}

// Summary строит человекочитаемую сводку просроченных и ближайших
// напоминаний. Пустая строка — нечего сообщать.
func (s *DigestService) Summary(ctx context.Context) (string, error) {
	views, err := s.reminders.List(ctx)
	if err != nil {
		return "", err
	}

	var overdue, upcoming []ReminderView
	for _, v := range views {
		switch v.DerivedStatus {
		case model.StatusOverdue:
			overdue = append(overdue, v)
		case model.StatusUpcoming:
			upcoming = append(upcoming, v)
		}
	}
	if len(overdue) == 0 && len(upcoming) == 0 {
		return "", nil
	}

	var b strings.Builder
	if len(overdue) > 0 {
		b.WriteString(fmt.Sprintf("overdue (%d):", len(overdue)))
		for _, v := range overdue {
			b.WriteString(fmt.Sprintf(" %s [%s, due %s];", v.ItemName, v.Category, v.EffectiveDueAt.Format("2006-01-02")))
		}
	}
	if len(upcoming) > 0 {
		if b.Len() > 0 {
			b.WriteString(" ")
		}
		b.WriteString(fmt.Sprintf("upcoming (%d):", len(upcoming)))
		for _, v := range upcoming {
			b.WriteString(fmt.Sprintf(" %s [%s, due %s];", v.ItemName, v.Category, v.EffectiveDueAt.Format("2006-01-02")))
		}
	}
	return strings.TrimSuffix(b.String(), ";"), nil
}
