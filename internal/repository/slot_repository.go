package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/NathanFontaine1981/Talbiyah.ai-sub011/internal/model"
	"github.com/NathanFontaine1981/Talbiyah.ai-sub011/internal/service"
)

// uniqueViolation is the PostgreSQL error code for a unique constraint breach.
const uniqueViolation = "23505"

type SlotRepository struct {
	pool *pgxpool.Pool
}

var _ service.SlotStore = (*SlotRepository)(nil)

func NewSlotRepository(pool *pgxpool.Pool) *SlotRepository {
	return &SlotRepository{pool: pool}
}

// Create inserts a new slot. A collision on (admin_id, date, start_time)
// surfaces as model.ErrDuplicateSlot.
func (r *SlotRepository) Create(ctx context.Context, slot *model.InterviewSlot) error {
	query := `
		INSERT INTO interview_slots (id, admin_id, date, start_time, end_time, duration_minutes, is_booked, booked_by_candidate_id)
		VALUES ($1, $2, $3, $4, $5, $6, FALSE, NULL)
		RETURNING created_at
	`

	err := r.pool.QueryRow(
		ctx, query,
		slot.ID,
		slot.AdminID,
		slot.Date,
		slot.StartTime,
		slot.EndTime,
		slot.DurationMinutes,
	).Scan(&slot.CreatedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return model.ErrDuplicateSlot
		}
		return fmt.Errorf("insert slot: %w", err)
	}

	return nil
}

// GetByID returns the slot or nil when it does not exist.
func (r *SlotRepository) GetByID(ctx context.Context, id string) (*model.InterviewSlot, error) {
	query := `
		SELECT id, admin_id, date, start_time, end_time, duration_minutes, is_booked, booked_by_candidate_id, created_at
		FROM interview_slots
		WHERE id = $1
	`

	return r.scanOne(r.pool.QueryRow(ctx, query, id))
}

// Find looks up an admin's slot by grid position, nil when absent.
func (r *SlotRepository) Find(ctx context.Context, adminID, date, startTime string) (*model.InterviewSlot, error) {
	query := `
		SELECT id, admin_id, date, start_time, end_time, duration_minutes, is_booked, booked_by_candidate_id, created_at
		FROM interview_slots
		WHERE admin_id = $1 AND date = $2 AND start_time = $3
	`

	return r.scanOne(r.pool.QueryRow(ctx, query, adminID, date, startTime))
}

// ListRange returns slots with from <= date <= to ordered by (date, start_time).
func (r *SlotRepository) ListRange(ctx context.Context, from, to string) ([]*model.InterviewSlot, error) {
	query := `
		SELECT id, admin_id, date, start_time, end_time, duration_minutes, is_booked, booked_by_candidate_id, created_at
		FROM interview_slots
		WHERE date >= $1 AND date <= $2
		ORDER BY date, start_time
	`

	rows, err := r.pool.Query(ctx, query, from, to)
	if err != nil {
		return nil, fmt.Errorf("list slots: %w", err)
	}
	defer rows.Close()

	var slots []*model.InterviewSlot
	for rows.Next() {
		var slot model.InterviewSlot
		err := rows.Scan(
			&slot.ID,
			&slot.AdminID,
			&slot.Date,
			&slot.StartTime,
			&slot.EndTime,
			&slot.DurationMinutes,
			&slot.IsBooked,
			&slot.BookedByCandidateID,
			&slot.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan slot: %w", err)
		}
		slots = append(slots, &slot)
	}

	return slots, rows.Err()
}

// Book claims the slot for a candidate. The free check and the flip happen
// in one statement; the affected-row count decides who won the race.
func (r *SlotRepository) Book(ctx context.Context, id, candidateID string) error {
	query := `
		UPDATE interview_slots
		SET is_booked = TRUE, booked_by_candidate_id = $1
		WHERE id = $2 AND is_booked = FALSE
	`

	result, err := r.pool.Exec(ctx, query, candidateID, id)
	if err != nil {
		return fmt.Errorf("book slot: %w", err)
	}

	if result.RowsAffected() == 0 {
		exists, err := r.exists(ctx, id)
		if err != nil {
			return err
		}
		if !exists {
			return model.ErrSlotNotFound
		}
		return model.ErrSlotAlreadyBooked
	}

	return nil
}

// Release reverses a booking, clearing the candidate reference.
func (r *SlotRepository) Release(ctx context.Context, id string) error {
	query := `
		UPDATE interview_slots
		SET is_booked = FALSE, booked_by_candidate_id = NULL
		WHERE id = $1
	`

	result, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("release slot: %w", err)
	}

	if result.RowsAffected() == 0 {
		return model.ErrSlotNotFound
	}

	return nil
}

// Delete removes the slot only while unbooked. is_booked is re-checked in
// the delete statement itself, so a slot claimed between the caller's read
// and this call survives.
func (r *SlotRepository) Delete(ctx context.Context, id string) error {
	query := `
		DELETE FROM interview_slots
		WHERE id = $1 AND is_booked = FALSE
	`

	result, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("delete slot: %w", err)
	}

	if result.RowsAffected() == 0 {
		exists, err := r.exists(ctx, id)
		if err != nil {
			return err
		}
		if !exists {
			return model.ErrSlotNotFound
		}
		return model.ErrSlotBooked
	}

	return nil
}

func (r *SlotRepository) exists(ctx context.Context, id string) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM interview_slots WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check slot exists: %w", err)
	}
	return exists, nil
}

func (r *SlotRepository) scanOne(row pgx.Row) (*model.InterviewSlot, error) {
	var slot model.InterviewSlot
	err := row.Scan(
		&slot.ID,
		&slot.AdminID,
		&slot.Date,
		&slot.StartTime,
		&slot.EndTime,
		&slot.DurationMinutes,
		&slot.IsBooked,
		&slot.BookedByCandidateID,
		&slot.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get slot: %w", err)
	}
	return &slot, nil
}
