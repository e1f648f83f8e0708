package service

import (
	"context"
	"time"

	"github.com/NathanFontaine1981/Talbiyah.ai-sub011/internal/model"
)

// SlotStore is the persistence contract for interview slots. Book, Release
// and Delete are atomic conditional updates: implementations must guard on
// is_booked in the same statement that flips it, never with a separate
// read-then-write pair.
type SlotStore interface {
	Create(ctx context.Context, slot *model.InterviewSlot) error
	GetByID(ctx context.Context, id string) (*model.InterviewSlot, error)
	Find(ctx context.Context, adminID, date, startTime string) (*model.InterviewSlot, error)
	ListRange(ctx context.Context, from, to string) ([]*model.InterviewSlot, error)

	// Book flips the slot to booked for candidateID only if it is currently
	// free. Exactly one concurrent caller may succeed; the rest observe
	// model.ErrSlotAlreadyBooked.
	Book(ctx context.Context, id, candidateID string) error

	// Release reverses Book: clears is_booked and the candidate reference.
	Release(ctx context.Context, id string) error

	// Delete removes the slot only while it is unbooked; a booked slot
	// yields model.ErrSlotBooked.
	Delete(ctx context.Context, id string) error
}

// InterviewStore is the persistence contract for interviews. Status moves
// are conditional on the current status so that an illegal transition can
// never be written, regardless of interleaving.
type InterviewStore interface {
	Create(ctx context.Context, iv *model.Interview) error
	GetByID(ctx context.Context, id string) (*model.Interview, error)

	// ListUpcoming returns scheduled interviews ordered by (date, time) ascending.
	ListUpcoming(ctx context.Context) ([]*model.Interview, error)
	// ListFinished returns interviews in a terminal status, most recently
	// concluded first.
	ListFinished(ctx context.Context) ([]*model.Interview, error)
	// ListAll returns every interview; the aggregate statistics are derived
	// from this set, never from stored counters.
	ListAll(ctx context.Context) ([]*model.Interview, error)

	// TransitionStatus moves the interview to status only if its current
	// status is one of from. Otherwise model.ErrIllegalStatusTransition.
	TransitionStatus(ctx context.Context, id string, to model.InterviewStatus, from ...model.InterviewStatus) error

	// Complete transitions to completed and records ratings, notes, summary
	// and the completion timestamp in the same conditional update.
	Complete(ctx context.Context, id string, r model.Ratings, notes, aiSummary string, completedAt time.Time, from ...model.InterviewStatus) error

	SetRoomReference(ctx context.Context, id, ref string) error

	// UnlinkSlot clears the interview's slot reference (cancellation side effect).
	UnlinkSlot(ctx context.Context, id string) error
}
