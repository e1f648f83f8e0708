// Package memory provides in-memory slot and interview stores with the
// same conditional-update semantics as the PostgreSQL repositories. They
// back the service tests and the STORE=memory development mode.
package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/NathanFontaine1981/Talbiyah.ai-sub011/internal/model"
)

type SlotStore struct {
	mu    sync.Mutex
	slots map[string]*model.InterviewSlot
}

func NewSlotStore() *SlotStore {
	return &SlotStore{slots: make(map[string]*model.InterviewSlot)}
}

func (s *SlotStore) Create(_ context.Context, slot *model.InterviewSlot) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.slots {
		if existing.AdminID == slot.AdminID && existing.Date == slot.Date && existing.StartTime == slot.StartTime {
			return model.ErrDuplicateSlot
		}
	}

	slot.CreatedAt = time.Now()
	cp := *slot
	s.slots[slot.ID] = &cp
	return nil
}

func (s *SlotStore) GetByID(_ context.Context, id string) (*model.InterviewSlot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	slot, ok := s.slots[id]
	if !ok {
		return nil, nil
	}
	cp := *slot
	return &cp, nil
}

func (s *SlotStore) Find(_ context.Context, adminID, date, startTime string) (*model.InterviewSlot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, slot := range s.slots {
		if slot.AdminID == adminID && slot.Date == date && slot.StartTime == startTime {
			cp := *slot
			return &cp, nil
		}
	}
	return nil, nil
}

func (s *SlotStore) ListRange(_ context.Context, from, to string) ([]*model.InterviewSlot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []*model.InterviewSlot
	for _, slot := range s.slots {
		if slot.Date >= from && slot.Date <= to {
			cp := *slot
			out = append(out, &cp)
		}
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].Date != out[j].Date {
			return out[i].Date < out[j].Date
		}
		return out[i].StartTime < out[j].StartTime
	})

	return out, nil
}

// Book performs the check-and-flip under the store mutex, mirroring the
// SQL conditional update: exactly one concurrent caller wins.
func (s *SlotStore) Book(_ context.Context, id, candidateID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	slot, ok := s.slots[id]
	if !ok {
		return model.ErrSlotNotFound
	}
	if slot.IsBooked {
		return model.ErrSlotAlreadyBooked
	}

	slot.IsBooked = true
	candidate := candidateID
	slot.BookedByCandidateID = &candidate
	return nil
}

func (s *SlotStore) Release(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	slot, ok := s.slots[id]
	if !ok {
		return model.ErrSlotNotFound
	}

	slot.IsBooked = false
	slot.BookedByCandidateID = nil
	return nil
}

func (s *SlotStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	slot, ok := s.slots[id]
	if !ok {
		return model.ErrSlotNotFound
	}
	if slot.IsBooked {
		return model.ErrSlotBooked
	}

	delete(s.slots, id)
	return nil
}

type InterviewStore struct {
	mu         sync.Mutex
	interviews map[string]*model.Interview
}

func NewInterviewStore() *InterviewStore {
	return &InterviewStore{interviews: make(map[string]*model.Interview)}
}

func (s *InterviewStore) Create(_ context.Context, iv *model.Interview) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	iv.CreatedAt = now
	iv.UpdatedAt = now
	cp := *iv
	s.interviews[iv.ID] = &cp
	return nil
}

func (s *InterviewStore) GetByID(_ context.Context, id string) (*model.Interview, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	iv, ok := s.interviews[id]
	if !ok {
		return nil, nil
	}
	cp := *iv
	return &cp, nil
}

func (s *InterviewStore) ListUpcoming(_ context.Context) ([]*model.Interview, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []*model.Interview
	for _, iv := range s.interviews {
		if iv.Status == model.StatusScheduled {
			cp := *iv
			out = append(out, &cp)
		}
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].ScheduledDate != out[j].ScheduledDate {
			return out[i].ScheduledDate < out[j].ScheduledDate
		}
		return out[i].ScheduledTime < out[j].ScheduledTime
	})

	return out, nil
}

func (s *InterviewStore) ListFinished(_ context.Context) ([]*model.Interview, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []*model.Interview
	for _, iv := range s.interviews {
		if iv.Status.IsTerminal() {
			cp := *iv
			out = append(out, &cp)
		}
	}

	concludedAt := func(iv *model.Interview) time.Time {
		if iv.CompletedAt != nil {
			return *iv.CompletedAt
		}
		return iv.UpdatedAt
	}
	sort.Slice(out, func(i, j int) bool {
		return concludedAt(out[i]).After(concludedAt(out[j]))
	})

	return out, nil
}

func (s *InterviewStore) ListAll(_ context.Context) ([]*model.Interview, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]*model.Interview, 0, len(s.interviews))
	for _, iv := range s.interviews {
		cp := *iv
		out = append(out, &cp)
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})

	return out, nil
}

func (s *InterviewStore) TransitionStatus(_ context.Context, id string, to model.InterviewStatus, from ...model.InterviewStatus) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	iv, err := s.lockedTransitionCheck(id, to, from)
	if err != nil {
		return err
	}

	iv.Status = to
	iv.UpdatedAt = time.Now()
	return nil
}

func (s *InterviewStore) Complete(_ context.Context, id string, r model.Ratings, notes, aiSummary string, completedAt time.Time, from ...model.InterviewStatus) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	iv, err := s.lockedTransitionCheck(id, model.StatusCompleted, from)
	if err != nil {
		return err
	}

	iv.Status = model.StatusCompleted
	iv.Ratings = r
	iv.Notes = notes
	iv.AISummary = aiSummary
	at := completedAt
	iv.CompletedAt = &at
	iv.UpdatedAt = time.Now()
	return nil
}

func (s *InterviewStore) SetRoomReference(_ context.Context, id, ref string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	iv, ok := s.interviews[id]
	if !ok {
		return model.ErrInterviewNotFound
	}

	room := ref
	iv.RoomReference = &room
	iv.UpdatedAt = time.Now()
	return nil
}

func (s *InterviewStore) UnlinkSlot(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	iv, ok := s.interviews[id]
	if !ok {
		return model.ErrInterviewNotFound
	}

	iv.SlotID = nil
	iv.UpdatedAt = time.Now()
	return nil
}

// lockedTransitionCheck resolves the interview and verifies its current
// status is one of from. Callers hold s.mu.
func (s *InterviewStore) lockedTransitionCheck(id string, to model.InterviewStatus, from []model.InterviewStatus) (*model.Interview, error) {
	iv, ok := s.interviews[id]
	if !ok {
		return nil, model.ErrInterviewNotFound
	}

	for _, f := range from {
		if iv.Status == f {
			return iv, nil
		}
	}
	return nil, fmt.Errorf("%w: %s -> %s", model.ErrIllegalStatusTransition, iv.Status, to)
}
