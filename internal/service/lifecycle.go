package service

import (
	"context"
	"fmt"
	"math"
	"time"

	"go.uber.org/zap"

	"github.com/NathanFontaine1981/Talbiyah.ai-sub011/internal/model"
)

// Stats are derived on demand from the interview set; nothing here is a
// stored counter. AverageOverallRating is nil until at least one interview
// carries an overall rating, and is rounded to one decimal for display.
type Stats struct {
	TotalCount           int      `json:"total_count"`
	UpcomingCount        int      `json:"upcoming_count"`
	CompletedThisMonth   int      `json:"completed_this_month"`
	AverageOverallRating *float64 `json:"average_overall_rating"`
}

// InterviewLifecycle enforces the interview status machine and computes
// the aggregate views over the interview set.
type InterviewLifecycle struct {
	interviews  InterviewStore
	coordinator *BookingCoordinator
	logger      *zap.Logger
	now         func() time.Time
}

func NewInterviewLifecycle(interviews InterviewStore, coordinator *BookingCoordinator, logger *zap.Logger) *InterviewLifecycle {
	return &InterviewLifecycle{
		interviews:  interviews,
		coordinator: coordinator,
		logger:      logger,
		now:         time.Now,
	}
}

// MarkInProgress moves a scheduled interview into in_progress.
func (l *InterviewLifecycle) MarkInProgress(ctx context.Context, interviewID string) error {
	if err := l.interviews.TransitionStatus(ctx, interviewID, model.StatusInProgress, model.TransitionSources(model.StatusInProgress)...); err != nil {
		return fmt.Errorf("mark in progress: %w", err)
	}

	l.logger.Info("Interview started", zap.String("interview_id", interviewID))
	return nil
}

// Complete concludes the interview with ratings and notes, stamping
// completed_at. Legal from scheduled or in_progress. Every rating is
// individually optional; an interview only counts toward the average once
// an overall rating exists, which is a reporting convention enforced in
// Stats rather than here.
func (l *InterviewLifecycle) Complete(ctx context.Context, interviewID string, ratings model.Ratings, notes, aiSummary string) error {
	if err := ratings.Validate(); err != nil {
		return err
	}

	if err := l.interviews.Complete(ctx, interviewID, ratings, notes, aiSummary, l.now(), model.CompletableStatuses...); err != nil {
		return fmt.Errorf("complete interview: %w", err)
	}

	l.logger.Info("Interview completed", zap.String("interview_id", interviewID))
	return nil
}

// MarkNoShow records that the candidate never joined. Legal only from scheduled.
func (l *InterviewLifecycle) MarkNoShow(ctx context.Context, interviewID string) error {
	if err := l.interviews.TransitionStatus(ctx, interviewID, model.StatusNoShow, model.TransitionSources(model.StatusNoShow)...); err != nil {
		return fmt.Errorf("mark no show: %w", err)
	}

	l.logger.Info("Interview marked as no-show", zap.String("interview_id", interviewID))
	return nil
}

// Cancel delegates to the booking coordinator so a linked slot is released
// together with the status change.
func (l *InterviewLifecycle) Cancel(ctx context.Context, interviewID string) error {
	return l.coordinator.CancelBooking(ctx, interviewID)
}

// Stats computes the aggregate views over the full interview set.
func (l *InterviewLifecycle) Stats(ctx context.Context) (*Stats, error) {
	interviews, err := l.interviews.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list interviews: %w", err)
	}

	now := l.now()
	stats := &Stats{TotalCount: len(interviews)}

	ratingSum, ratedCount := 0, 0
	for _, iv := range interviews {
		if iv.Status == model.StatusScheduled {
			stats.UpcomingCount++
		}
		if iv.Status == model.StatusCompleted && iv.CompletedAt != nil {
			completed := iv.CompletedAt.In(now.Location())
			if completed.Year() == now.Year() && completed.Month() == now.Month() {
				stats.CompletedThisMonth++
			}
		}
		if iv.Overall != nil {
			ratingSum += *iv.Overall
			ratedCount++
		}
	}

	if ratedCount > 0 {
		avg := math.Round(float64(ratingSum)/float64(ratedCount)*10) / 10
		stats.AverageOverallRating = &avg
	}

	return stats, nil
}
