package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/NathanFontaine1981/Talbiyah.ai-sub011/internal/model"
	"github.com/NathanFontaine1981/Talbiyah.ai-sub011/internal/timegrid"
)

// SlotCatalog owns the set of published interview slots: creation with
// end-time derivation, range listing, grid lookup and guarded deletion.
type SlotCatalog struct {
	slots  SlotStore
	logger *zap.Logger
}

func NewSlotCatalog(slots SlotStore, logger *zap.Logger) *SlotCatalog {
	return &SlotCatalog{
		slots:  slots,
		logger: logger,
	}
}

// CreateSlot publishes a slot for adminID at (date, startTime). The end
// time is derived from the duration; a slot that would run past midnight
// is rejected rather than silently wrapped.
func (c *SlotCatalog) CreateSlot(ctx context.Context, adminID, date, startTime string, durationMinutes int) (*model.InterviewSlot, error) {
	if !model.IsAllowedDuration(durationMinutes) {
		return nil, model.ErrInvalidDuration
	}
	if !timegrid.ValidDate(date) {
		return nil, fmt.Errorf("%w: %q", model.ErrInvalidDate, date)
	}
	if _, err := timegrid.TimeToMinutes(startTime); err != nil {
		return nil, fmt.Errorf("%w: %q", model.ErrInvalidTime, startTime)
	}

	crosses, err := timegrid.CrossesMidnight(startTime, durationMinutes)
	if err != nil {
		return nil, err
	}
	if crosses {
		return nil, model.ErrSlotCrossesMidnight
	}

	endTime, err := timegrid.AddMinutes(startTime, durationMinutes)
	if err != nil {
		return nil, err
	}

	slot := &model.InterviewSlot{
		ID:              uuid.NewString(),
		AdminID:         adminID,
		Date:            date,
		StartTime:       startTime,
		EndTime:         endTime,
		DurationMinutes: durationMinutes,
	}

	if err := c.slots.Create(ctx, slot); err != nil {
		return nil, fmt.Errorf("create slot: %w", err)
	}

	c.logger.Info("Slot created",
		zap.String("slot_id", slot.ID),
		zap.String("admin_id", adminID),
		zap.String("date", date),
		zap.String("start_time", startTime),
		zap.Int("duration_minutes", durationMinutes),
	)

	return slot, nil
}

// GridCell is one position on an admin's day grid: a potential start time,
// its 12-hour label, and the published slot occupying it (nil while empty).
type GridCell struct {
	StartTime string               `json:"start_time"`
	Label     string               `json:"label"`
	Slot      *model.InterviewSlot `json:"slot"`
}

// DayGrid renders the admin's bookable grid for one date: every start time
// the working day allows for the given duration, with published slots
// filled in.
func (c *SlotCatalog) DayGrid(ctx context.Context, adminID, date string, durationMinutes int) ([]*GridCell, error) {
	if !model.IsAllowedDuration(durationMinutes) {
		return nil, model.ErrInvalidDuration
	}
	if !timegrid.ValidDate(date) {
		return nil, fmt.Errorf("%w: %q", model.ErrInvalidDate, date)
	}

	slots, err := c.slots.ListRange(ctx, date, date)
	if err != nil {
		return nil, fmt.Errorf("list slots: %w", err)
	}

	byStart := make(map[string]*model.InterviewSlot, len(slots))
	for _, slot := range slots {
		if slot.AdminID == adminID {
			byStart[slot.StartTime] = slot
		}
	}

	starts := timegrid.GenerateDaySlots(durationMinutes, timegrid.DefaultDayStartHour, timegrid.DefaultDayEndHour)
	cells := make([]*GridCell, 0, len(starts))
	for _, start := range starts {
		label, err := timegrid.Format12Hour(start)
		if err != nil {
			return nil, err
		}
		cells = append(cells, &GridCell{
			StartTime: start,
			Label:     label,
			Slot:      byStart[start],
		})
	}

	return cells, nil
}

// ListSlots returns all slots with from <= date <= to, ordered by (date, start time).
func (c *SlotCatalog) ListSlots(ctx context.Context, from, to string) ([]*model.InterviewSlot, error) {
	if !timegrid.ValidDate(from) || !timegrid.ValidDate(to) {
		return nil, fmt.Errorf("%w: range %q..%q", model.ErrInvalidDate, from, to)
	}
	return c.slots.ListRange(ctx, from, to)
}

// FindSlot looks up an admin's slot by grid position. Returns nil when the
// cell is empty.
func (c *SlotCatalog) FindSlot(ctx context.Context, adminID, date, startTime string) (*model.InterviewSlot, error) {
	return c.slots.Find(ctx, adminID, date, startTime)
}

// DeleteSlot removes an unbooked slot. Deleting a booked slot is a protocol
// violation surfaced as model.ErrSlotBooked, never a silent no-op.
func (c *SlotCatalog) DeleteSlot(ctx context.Context, slotID string) error {
	if err := c.slots.Delete(ctx, slotID); err != nil {
		return fmt.Errorf("delete slot: %w", err)
	}

	c.logger.Info("Slot deleted", zap.String("slot_id", slotID))
	return nil
}
