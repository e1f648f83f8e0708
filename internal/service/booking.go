package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/NathanFontaine1981/Talbiyah.ai-sub011/internal/model"
)

// BookingCoordinator is the exclusivity engine: it turns a free slot into a
// booked slot plus a scheduled interview, and reverses the pair on
// cancellation. The only guard against double booking is the store's
// conditional update on is_booked; no lock is held across calls.
type BookingCoordinator struct {
	slots      SlotStore
	interviews InterviewStore
	logger     *zap.Logger
}

func NewBookingCoordinator(slots SlotStore, interviews InterviewStore, logger *zap.Logger) *BookingCoordinator {
	return &BookingCoordinator{
		slots:      slots,
		interviews: interviews,
		logger:     logger,
	}
}

// BookSlot claims the slot for candidateID and creates the interview in
// scheduled status. Under N concurrent calls exactly one succeeds; the
// rest observe model.ErrSlotAlreadyBooked. If the interview insert fails
// after the claim, the slot is released again so no slot is ever left
// booked without an interview.
func (b *BookingCoordinator) BookSlot(ctx context.Context, slotID, candidateID string) (*model.Interview, error) {
	slot, err := b.slots.GetByID(ctx, slotID)
	if err != nil {
		return nil, fmt.Errorf("get slot: %w", err)
	}
	if slot == nil {
		return nil, model.ErrSlotNotFound
	}

	if err := b.slots.Book(ctx, slotID, candidateID); err != nil {
		return nil, fmt.Errorf("book slot: %w", err)
	}

	iv := &model.Interview{
		ID:              uuid.NewString(),
		CandidateID:     candidateID,
		SlotID:          &slotID,
		ScheduledDate:   slot.Date,
		ScheduledTime:   slot.StartTime,
		DurationMinutes: slot.DurationMinutes,
		Status:          model.StatusScheduled,
	}

	if err := b.interviews.Create(ctx, iv); err != nil {
		if relErr := b.slots.Release(ctx, slotID); relErr != nil {
			b.logger.Error("Failed to release slot after interview insert failure",
				zap.String("slot_id", slotID),
				zap.Error(relErr),
			)
		}
		return nil, fmt.Errorf("create interview: %w", err)
	}

	b.logger.Info("Slot booked",
		zap.String("slot_id", slotID),
		zap.String("interview_id", iv.ID),
		zap.String("candidate_id", candidateID),
		zap.String("date", slot.Date),
		zap.String("start_time", slot.StartTime),
	)

	return iv, nil
}

// CancelBooking cancels the interview and, when it was claimed from the
// grid, releases the slot and clears the link. This is the only permitted
// reversal of a booked slot. Legal from scheduled or in_progress.
func (b *BookingCoordinator) CancelBooking(ctx context.Context, interviewID string) error {
	iv, err := b.interviews.GetByID(ctx, interviewID)
	if err != nil {
		return fmt.Errorf("get interview: %w", err)
	}
	if iv == nil {
		return model.ErrInterviewNotFound
	}

	if err := b.interviews.TransitionStatus(ctx, interviewID, model.StatusCancelled, model.CancellableStatuses...); err != nil {
		return fmt.Errorf("cancel interview: %w", err)
	}

	if iv.SlotID != nil {
		if err := b.interviews.UnlinkSlot(ctx, interviewID); err != nil {
			return fmt.Errorf("unlink slot: %w", err)
		}
		if err := b.slots.Release(ctx, *iv.SlotID); err != nil {
			return fmt.Errorf("release slot: %w", err)
		}
	}

	b.logger.Info("Booking cancelled",
		zap.String("interview_id", interviewID),
		zap.String("candidate_id", iv.CandidateID),
	)

	return nil
}
