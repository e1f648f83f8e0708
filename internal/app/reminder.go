package app

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/NathanFontaine1981/Talbiyah.ai-sub011/internal/service"
)

// reminderWindow is how far ahead of its start an interview gets a reminder.
const reminderWindow = 24 * time.Hour

// Reminder runs the periodic day-ahead reminder pass. It only reads
// interview state; delivery failures are logged inside the facade and
// never affect bookings.
type Reminder struct {
	facade   *service.Facade
	logger   *zap.Logger
	interval time.Duration
	stopChan chan struct{}
}

func NewReminder(facade *service.Facade, interval time.Duration, logger *zap.Logger) *Reminder {
	return &Reminder{
		facade:   facade,
		logger:   logger,
		interval: interval,
		stopChan: make(chan struct{}),
	}
}

// Start launches the reminder loop.
func (r *Reminder) Start(ctx context.Context) {
	r.logger.Info("Starting reminder loop", zap.Duration("interval", r.interval))
	go r.run(ctx)
}

// Stop halts the loop.
func (r *Reminder) Stop() {
	r.logger.Info("Stopping reminder loop")
	close(r.stopChan)
}

func (r *Reminder) run(ctx context.Context) {
	// First pass right at startup.
	r.sendDue(ctx)

	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			r.sendDue(ctx)
		case <-r.stopChan:
			r.logger.Info("Reminder loop stopped")
			return
		case <-ctx.Done():
			r.logger.Info("Reminder loop cancelled")
			return
		}
	}
}

func (r *Reminder) sendDue(ctx context.Context) {
	sent, err := r.facade.SendDueReminders(ctx, reminderWindow)
	if err != nil {
		r.logger.Error("Reminder pass failed", zap.Error(err))
		return
	}
	if sent > 0 {
		r.logger.Info("Reminder pass completed", zap.Int("sent", sent))
	}
}
