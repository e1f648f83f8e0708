package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/NathanFontaine1981/Talbiyah.ai-sub011/internal/model"
	"github.com/NathanFontaine1981/Talbiyah.ai-sub011/internal/timegrid"
)

// UpcomingInterview is an interview enriched with its countdown, computed
// against the wall clock at listing time.
type UpcomingInterview struct {
	*model.Interview
	StartsIn string `json:"starts_in"`
}

// Facade is the single surface the surrounding application and external
// collaborators call. It never exposes storage handles; everything goes
// through the catalog, coordinator and lifecycle underneath.
type Facade struct {
	catalog     *SlotCatalog
	coordinator *BookingCoordinator
	lifecycle   *InterviewLifecycle
	interviews  InterviewStore
	rooms       RoomProvisioner
	invites     InviteTokenIssuer
	notifier    NotificationSender
	logger      *zap.Logger
	now         func() time.Time
}

func NewFacade(
	catalog *SlotCatalog,
	coordinator *BookingCoordinator,
	lifecycle *InterviewLifecycle,
	interviews InterviewStore,
	rooms RoomProvisioner,
	invites InviteTokenIssuer,
	notifier NotificationSender,
	logger *zap.Logger,
) *Facade {
	return &Facade{
		catalog:     catalog,
		coordinator: coordinator,
		lifecycle:   lifecycle,
		interviews:  interviews,
		rooms:       rooms,
		invites:     invites,
		notifier:    notifier,
		logger:      logger,
		now:         time.Now,
	}
}

// CreateSlot publishes a slot on the admin's grid.
func (f *Facade) CreateSlot(ctx context.Context, adminID, date, startTime string, durationMinutes int) (*model.InterviewSlot, error) {
	return f.catalog.CreateSlot(ctx, adminID, date, startTime, durationMinutes)
}

// DeleteSlot removes an unbooked slot.
func (f *Facade) DeleteSlot(ctx context.Context, slotID string) error {
	return f.catalog.DeleteSlot(ctx, slotID)
}

// ListSlotsForRange returns the slots between two dates inclusive.
func (f *Facade) ListSlotsForRange(ctx context.Context, from, to string) ([]*model.InterviewSlot, error) {
	return f.catalog.ListSlots(ctx, from, to)
}

// FindSlot resolves a grid cell for an admin.
func (f *Facade) FindSlot(ctx context.Context, adminID, date, startTime string) (*model.InterviewSlot, error) {
	return f.catalog.FindSlot(ctx, adminID, date, startTime)
}

// DayGrid renders an admin's bookable grid for one date.
func (f *Facade) DayGrid(ctx context.Context, adminID, date string, durationMinutes int) ([]*GridCell, error) {
	return f.catalog.DayGrid(ctx, adminID, date, durationMinutes)
}

// BookSlot claims a slot for a candidate. The booking confirmation is
// fire-and-forget: a delivery failure never unwinds the booking.
func (f *Facade) BookSlot(ctx context.Context, slotID, candidateID string) (*model.Interview, error) {
	iv, err := f.coordinator.BookSlot(ctx, slotID, candidateID)
	if err != nil {
		return nil, err
	}

	go func() {
		if err := f.notifier.SendReminder(context.Background(), iv); err != nil {
			f.logger.Warn("Reminder delivery failed",
				zap.String("interview_id", iv.ID),
				zap.Error(err),
			)
		}
	}()

	return iv, nil
}

// ScheduleInterview creates an interview directly, without a slot grid
// entry. The timezone is stored opaquely.
func (f *Facade) ScheduleInterview(ctx context.Context, candidateID, date, startTime string, durationMinutes int, timezone string) (*model.Interview, error) {
	if !model.IsAllowedDuration(durationMinutes) {
		return nil, model.ErrInvalidDuration
	}
	if !timegrid.ValidDate(date) {
		return nil, fmt.Errorf("%w: %q", model.ErrInvalidDate, date)
	}
	if _, err := timegrid.TimeToMinutes(startTime); err != nil {
		return nil, fmt.Errorf("%w: %q", model.ErrInvalidTime, startTime)
	}

	iv := &model.Interview{
		ID:              uuid.NewString(),
		CandidateID:     candidateID,
		ScheduledDate:   date,
		ScheduledTime:   startTime,
		DurationMinutes: durationMinutes,
		Timezone:        timezone,
		Status:          model.StatusScheduled,
	}

	if err := f.interviews.Create(ctx, iv); err != nil {
		return nil, fmt.Errorf("create interview: %w", err)
	}

	f.logger.Info("Interview scheduled directly",
		zap.String("interview_id", iv.ID),
		zap.String("candidate_id", candidateID),
		zap.String("date", date),
		zap.String("start_time", startTime),
	)

	return iv, nil
}

// CancelInterview cancels the interview and releases any linked slot.
func (f *Facade) CancelInterview(ctx context.Context, interviewID string) error {
	return f.lifecycle.Cancel(ctx, interviewID)
}

// StartSession provisions the video room (once) and moves the interview to
// in_progress. If provisioning fails the interview stays scheduled and the
// admin can retry.
func (f *Facade) StartSession(ctx context.Context, interviewID string) (*model.Interview, error) {
	iv, err := f.interviews.GetByID(ctx, interviewID)
	if err != nil {
		return nil, fmt.Errorf("get interview: %w", err)
	}
	if iv == nil {
		return nil, model.ErrInterviewNotFound
	}

	if iv.RoomReference == nil {
		ref, err := f.rooms.Provision(ctx, interviewID)
		if err != nil {
			return nil, fmt.Errorf("provision room: %w", err)
		}
		if err := f.interviews.SetRoomReference(ctx, interviewID, ref); err != nil {
			return nil, fmt.Errorf("set room reference: %w", err)
		}
		iv.RoomReference = &ref
	}

	if err := f.lifecycle.MarkInProgress(ctx, interviewID); err != nil {
		return nil, err
	}

	iv.Status = model.StatusInProgress
	return iv, nil
}

// CompleteInterview records the outcome of a finished session.
func (f *Facade) CompleteInterview(ctx context.Context, interviewID string, ratings model.Ratings, notes, aiSummary string) error {
	return f.lifecycle.Complete(ctx, interviewID, ratings, notes, aiSummary)
}

// MarkNoShow records a candidate no-show.
func (f *Facade) MarkNoShow(ctx context.Context, interviewID string) error {
	return f.lifecycle.MarkNoShow(ctx, interviewID)
}

// IssueInvite mints a one-time booking token for a candidate.
func (f *Facade) IssueInvite(ctx context.Context, candidateID string) (string, error) {
	token, err := f.invites.Issue(ctx, candidateID)
	if err != nil {
		return "", fmt.Errorf("issue invite: %w", err)
	}

	f.logger.Info("Invite issued", zap.String("candidate_id", candidateID))
	return token, nil
}

// ListUpcomingInterviews returns scheduled interviews ascending by start,
// each with a freshly computed countdown.
func (f *Facade) ListUpcomingInterviews(ctx context.Context) ([]*UpcomingInterview, error) {
	interviews, err := f.interviews.ListUpcoming(ctx)
	if err != nil {
		return nil, fmt.Errorf("list upcoming interviews: %w", err)
	}

	now := f.now()
	out := make([]*UpcomingInterview, 0, len(interviews))
	for _, iv := range interviews {
		startsIn, err := timegrid.Countdown(iv.ScheduledDate, iv.ScheduledTime, now)
		if err != nil {
			return nil, fmt.Errorf("countdown for interview %s: %w", iv.ID, err)
		}
		out = append(out, &UpcomingInterview{Interview: iv, StartsIn: startsIn})
	}

	return out, nil
}

// FinishedInterview pairs a concluded interview with its presentation mapping.
type FinishedInterview struct {
	*model.Interview
	StatusDisplay model.StatusDisplay `json:"status_display"`
}

// ListCompletedInterviews returns concluded interviews (completed, no-show
// or cancelled), most recent first.
func (f *Facade) ListCompletedInterviews(ctx context.Context) ([]*FinishedInterview, error) {
	interviews, err := f.interviews.ListFinished(ctx)
	if err != nil {
		return nil, fmt.Errorf("list finished interviews: %w", err)
	}

	out := make([]*FinishedInterview, 0, len(interviews))
	for _, iv := range interviews {
		out = append(out, &FinishedInterview{Interview: iv, StatusDisplay: model.DisplayFor(iv.Status)})
	}

	return out, nil
}

// ComputeStats derives the aggregate counters and average rating.
func (f *Facade) ComputeStats(ctx context.Context) (*Stats, error) {
	return f.lifecycle.Stats(ctx)
}

// SendDueReminders sends a reminder for every scheduled interview starting
// within the given window. Delivery failures are logged and skipped; the
// pass never mutates interview state.
func (f *Facade) SendDueReminders(ctx context.Context, within time.Duration) (int, error) {
	interviews, err := f.interviews.ListUpcoming(ctx)
	if err != nil {
		return 0, fmt.Errorf("list upcoming interviews: %w", err)
	}

	now := f.now()
	sent := 0
	for _, iv := range interviews {
		start, err := timegrid.At(iv.ScheduledDate, iv.ScheduledTime, now.Location())
		if err != nil {
			f.logger.Warn("Skipping interview with unparseable schedule",
				zap.String("interview_id", iv.ID),
				zap.Error(err),
			)
			continue
		}
		if start.Before(now) || start.Sub(now) > within {
			continue
		}
		if err := f.notifier.SendReminder(ctx, iv); err != nil {
			f.logger.Warn("Reminder delivery failed",
				zap.String("interview_id", iv.ID),
				zap.Error(err),
			)
			continue
		}
		sent++
	}

	return sent, nil
}
