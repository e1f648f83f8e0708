package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/NathanFontaine1981/Talbiyah.ai-sub011/internal/model"
	"github.com/NathanFontaine1981/Talbiyah.ai-sub011/internal/service"
)

const interviewColumns = `id, candidate_id, slot_id, scheduled_date, scheduled_time, duration_minutes, timezone, status,
		room_reference, teaching_demo_rating, communication_rating, knowledge_rating, personality_rating, overall_rating,
		notes, ai_summary, completed_at, created_at, updated_at`

type InterviewRepository struct {
	pool *pgxpool.Pool
}

var _ service.InterviewStore = (*InterviewRepository)(nil)

func NewInterviewRepository(pool *pgxpool.Pool) *InterviewRepository {
	return &InterviewRepository{pool: pool}
}

// Create inserts a new interview.
func (r *InterviewRepository) Create(ctx context.Context, iv *model.Interview) error {
	query := `
		INSERT INTO interviews (id, candidate_id, slot_id, scheduled_date, scheduled_time, duration_minutes, timezone, status, notes, ai_summary)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING created_at, updated_at
	`

	err := r.pool.QueryRow(
		ctx, query,
		iv.ID,
		iv.CandidateID,
		iv.SlotID,
		iv.ScheduledDate,
		iv.ScheduledTime,
		iv.DurationMinutes,
		iv.Timezone,
		iv.Status,
		iv.Notes,
		iv.AISummary,
	).Scan(&iv.CreatedAt, &iv.UpdatedAt)

	if err != nil {
		return fmt.Errorf("insert interview: %w", err)
	}

	return nil
}

// GetByID returns the interview or nil when it does not exist.
func (r *InterviewRepository) GetByID(ctx context.Context, id string) (*model.Interview, error) {
	query := `SELECT ` + interviewColumns + ` FROM interviews WHERE id = $1`

	iv, err := scanInterview(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get interview by id: %w", err)
	}

	return iv, nil
}

// ListUpcoming returns scheduled interviews ordered by (date, time) ascending.
func (r *InterviewRepository) ListUpcoming(ctx context.Context) ([]*model.Interview, error) {
	query := `
		SELECT ` + interviewColumns + `
		FROM interviews
		WHERE status = $1
		ORDER BY scheduled_date, scheduled_time
	`

	return r.list(ctx, query, model.StatusScheduled)
}

// ListFinished returns interviews in a terminal status, most recently
// concluded first. Cancelled and no-show interviews have no completed_at,
// so the last status change stands in as their conclusion time.
func (r *InterviewRepository) ListFinished(ctx context.Context) ([]*model.Interview, error) {
	query := `
		SELECT ` + interviewColumns + `
		FROM interviews
		WHERE status = ANY($1)
		ORDER BY COALESCE(completed_at, updated_at) DESC
	`

	terminal := []string{
		string(model.StatusCompleted),
		string(model.StatusCancelled),
		string(model.StatusNoShow),
	}
	return r.list(ctx, query, terminal)
}

// ListAll returns every interview.
func (r *InterviewRepository) ListAll(ctx context.Context) ([]*model.Interview, error) {
	query := `SELECT ` + interviewColumns + ` FROM interviews ORDER BY created_at`
	return r.list(ctx, query)
}

// TransitionStatus moves the interview to a new status with the legality
// check folded into the update itself.
func (r *InterviewRepository) TransitionStatus(ctx context.Context, id string, to model.InterviewStatus, from ...model.InterviewStatus) error {
	query := `
		UPDATE interviews
		SET status = $1, updated_at = now()
		WHERE id = $2 AND status = ANY($3)
	`

	result, err := r.pool.Exec(ctx, query, to, id, statusStrings(from))
	if err != nil {
		return fmt.Errorf("update interview status: %w", err)
	}

	if result.RowsAffected() == 0 {
		return r.transitionFailure(ctx, id, to)
	}

	return nil
}

// Complete transitions to completed and records the outcome in the same
// conditional update.
func (r *InterviewRepository) Complete(ctx context.Context, id string, rat model.Ratings, notes, aiSummary string, completedAt time.Time, from ...model.InterviewStatus) error {
	query := `
		UPDATE interviews
		SET status = $1,
		    teaching_demo_rating = $2,
		    communication_rating = $3,
		    knowledge_rating = $4,
		    personality_rating = $5,
		    overall_rating = $6,
		    notes = $7,
		    ai_summary = $8,
		    completed_at = $9,
		    updated_at = now()
		WHERE id = $10 AND status = ANY($11)
	`

	result, err := r.pool.Exec(ctx, query,
		model.StatusCompleted,
		rat.TeachingDemo,
		rat.Communication,
		rat.Knowledge,
		rat.Personality,
		rat.Overall,
		notes,
		aiSummary,
		completedAt,
		id,
		statusStrings(from),
	)
	if err != nil {
		return fmt.Errorf("complete interview: %w", err)
	}

	if result.RowsAffected() == 0 {
		return r.transitionFailure(ctx, id, model.StatusCompleted)
	}

	return nil
}

// SetRoomReference stores the externally provisioned room handle.
func (r *InterviewRepository) SetRoomReference(ctx context.Context, id, ref string) error {
	query := `
		UPDATE interviews
		SET room_reference = $1, updated_at = now()
		WHERE id = $2
	`

	result, err := r.pool.Exec(ctx, query, ref, id)
	if err != nil {
		return fmt.Errorf("set room reference: %w", err)
	}

	if result.RowsAffected() == 0 {
		return model.ErrInterviewNotFound
	}

	return nil
}

// UnlinkSlot clears the interview's slot reference.
func (r *InterviewRepository) UnlinkSlot(ctx context.Context, id string) error {
	query := `
		UPDATE interviews
		SET slot_id = NULL, updated_at = now()
		WHERE id = $1
	`

	result, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("unlink slot: %w", err)
	}

	if result.RowsAffected() == 0 {
		return model.ErrInterviewNotFound
	}

	return nil
}

// transitionFailure distinguishes a missing interview from one whose
// current status forbids the move.
func (r *InterviewRepository) transitionFailure(ctx context.Context, id string, to model.InterviewStatus) error {
	var current model.InterviewStatus
	err := r.pool.QueryRow(ctx, `SELECT status FROM interviews WHERE id = $1`, id).Scan(&current)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.ErrInterviewNotFound
		}
		return fmt.Errorf("get interview status: %w", err)
	}
	return fmt.Errorf("%w: %s -> %s", model.ErrIllegalStatusTransition, current, to)
}

func (r *InterviewRepository) list(ctx context.Context, query string, args ...interface{}) ([]*model.Interview, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list interviews: %w", err)
	}
	defer rows.Close()

	var interviews []*model.Interview
	for rows.Next() {
		iv, err := scanInterview(rows)
		if err != nil {
			return nil, fmt.Errorf("scan interview: %w", err)
		}
		interviews = append(interviews, iv)
	}

	return interviews, rows.Err()
}

func scanInterview(row pgx.Row) (*model.Interview, error) {
	var iv model.Interview
	err := row.Scan(
		&iv.ID,
		&iv.CandidateID,
		&iv.SlotID,
		&iv.ScheduledDate,
		&iv.ScheduledTime,
		&iv.DurationMinutes,
		&iv.Timezone,
		&iv.Status,
		&iv.RoomReference,
		&iv.TeachingDemo,
		&iv.Communication,
		&iv.Knowledge,
		&iv.Personality,
		&iv.Overall,
		&iv.Notes,
		&iv.AISummary,
		&iv.CompletedAt,
		&iv.CreatedAt,
		&iv.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &iv, nil
}

func statusStrings(statuses []model.InterviewStatus) []string {
	out := make([]string, len(statuses))
	for i, s := range statuses {
		out[i] = string(s)
	}
	return out
}
