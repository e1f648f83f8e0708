package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/NathanFontaine1981/Talbiyah.ai-sub011/internal/model"
	"github.com/NathanFontaine1981/Talbiyah.ai-sub011/internal/service"
)

type Handler struct {
	facade *service.Facade
	logger *zap.Logger
}

type createSlotRequest struct {
	AdminID         string `json:"admin_id" binding:"required"`
	Date            string `json:"date" binding:"required"`
	StartTime       string `json:"start_time" binding:"required"`
	DurationMinutes int    `json:"duration_minutes" binding:"required"`
}

// POST /api/slots
func (h *Handler) CreateSlot(c *gin.Context) {
	var req createSlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	slot, err := h.facade.CreateSlot(c.Request.Context(), req.AdminID, req.Date, req.StartTime, req.DurationMinutes)
	if err != nil {
		h.fail(c, err)
		return
	}

	c.JSON(http.StatusCreated, slot)
}

// GET /api/slots?from=YYYY-MM-DD&to=YYYY-MM-DD
func (h *Handler) ListSlots(c *gin.Context) {
	from, to := c.Query("from"), c.Query("to")
	if from == "" || to == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "from and to are required"})
		return
	}

	slots, err := h.facade.ListSlotsForRange(c.Request.Context(), from, to)
	if err != nil {
		h.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, slots)
}

// GET /api/slots/grid?admin_id=&date=&start_time=
func (h *Handler) FindSlot(c *gin.Context) {
	adminID, date, startTime := c.Query("admin_id"), c.Query("date"), c.Query("start_time")
	if adminID == "" || date == "" || startTime == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "admin_id, date and start_time are required"})
		return
	}

	slot, err := h.facade.FindSlot(c.Request.Context(), adminID, date, startTime)
	if err != nil {
		h.fail(c, err)
		return
	}
	if slot == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": model.ErrSlotNotFound.Error()})
		return
	}

	c.JSON(http.StatusOK, slot)
}

// GET /api/slots/day?admin_id=&date=&duration_minutes=
func (h *Handler) DayGrid(c *gin.Context) {
	adminID, date := c.Query("admin_id"), c.Query("date")
	if adminID == "" || date == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "admin_id and date are required"})
		return
	}
	duration, err := strconv.Atoi(c.DefaultQuery("duration_minutes", "30"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "duration_minutes must be an integer"})
		return
	}

	cells, err := h.facade.DayGrid(c.Request.Context(), adminID, date, duration)
	if err != nil {
		h.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, cells)
}

// DELETE /api/slots/:id
func (h *Handler) DeleteSlot(c *gin.Context) {
	if err := h.facade.DeleteSlot(c.Request.Context(), c.Param("id")); err != nil {
		h.fail(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

type bookSlotRequest struct {
	CandidateID string `json:"candidate_id" binding:"required"`
}

// POST /api/slots/:id/book
func (h *Handler) BookSlot(c *gin.Context) {
	var req bookSlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	iv, err := h.facade.BookSlot(c.Request.Context(), c.Param("id"), req.CandidateID)
	if err != nil {
		h.fail(c, err)
		return
	}

	c.JSON(http.StatusCreated, iv)
}

type scheduleInterviewRequest struct {
	CandidateID     string `json:"candidate_id" binding:"required"`
	Date            string `json:"date" binding:"required"`
	StartTime       string `json:"start_time" binding:"required"`
	DurationMinutes int    `json:"duration_minutes" binding:"required"`
	Timezone        string `json:"timezone"`
}

// POST /api/interviews
func (h *Handler) ScheduleInterview(c *gin.Context) {
	var req scheduleInterviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	iv, err := h.facade.ScheduleInterview(c.Request.Context(), req.CandidateID, req.Date, req.StartTime, req.DurationMinutes, req.Timezone)
	if err != nil {
		h.fail(c, err)
		return
	}

	c.JSON(http.StatusCreated, iv)
}

// GET /api/interviews/upcoming
func (h *Handler) ListUpcoming(c *gin.Context) {
	interviews, err := h.facade.ListUpcomingInterviews(c.Request.Context())
	if err != nil {
		h.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, interviews)
}

// GET /api/interviews/completed?status=
func (h *Handler) ListCompleted(c *gin.Context) {
	var filter model.InterviewStatus
	if raw := c.Query("status"); raw != "" {
		parsed, err := model.ParseStatus(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		filter = parsed
	}

	interviews, err := h.facade.ListCompletedInterviews(c.Request.Context())
	if err != nil {
		h.fail(c, err)
		return
	}

	if filter != "" {
		filtered := make([]*service.FinishedInterview, 0, len(interviews))
		for _, iv := range interviews {
			if iv.Status == filter {
				filtered = append(filtered, iv)
			}
		}
		interviews = filtered
	}

	c.JSON(http.StatusOK, interviews)
}

// POST /api/interviews/:id/start
func (h *Handler) StartSession(c *gin.Context) {
	iv, err := h.facade.StartSession(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, iv)
}

type completeInterviewRequest struct {
	Ratings   model.Ratings `json:"ratings"`
	Notes     string        `json:"notes"`
	AISummary string        `json:"ai_summary"`
}

// POST /api/interviews/:id/complete
func (h *Handler) CompleteInterview(c *gin.Context) {
	var req completeInterviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.facade.CompleteInterview(c.Request.Context(), c.Param("id"), req.Ratings, req.Notes, req.AISummary); err != nil {
		h.fail(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// POST /api/interviews/:id/no-show
func (h *Handler) MarkNoShow(c *gin.Context) {
	if err := h.facade.MarkNoShow(c.Request.Context(), c.Param("id")); err != nil {
		h.fail(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// POST /api/interviews/:id/cancel
func (h *Handler) CancelInterview(c *gin.Context) {
	if err := h.facade.CancelInterview(c.Request.Context(), c.Param("id")); err != nil {
		h.fail(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

type issueInviteRequest struct {
	CandidateID string `json:"candidate_id" binding:"required"`
}

// POST /api/invites
func (h *Handler) IssueInvite(c *gin.Context) {
	var req issueInviteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	token, err := h.facade.IssueInvite(c.Request.Context(), req.CandidateID)
	if err != nil {
		h.fail(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"token": token})
}

// GET /api/stats
func (h *Handler) Stats(c *gin.Context) {
	stats, err := h.facade.ComputeStats(c.Request.Context())
	if err != nil {
		h.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, stats)
}

// fail maps domain errors to HTTP statuses. Everything in the domain
// taxonomy is surfaced to the caller; only unexpected storage failures
// become a 500.
func (h *Handler) fail(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, model.ErrSlotNotFound), errors.Is(err, model.ErrInterviewNotFound):
		status = http.StatusNotFound
	case errors.Is(err, model.ErrDuplicateSlot),
		errors.Is(err, model.ErrSlotAlreadyBooked),
		errors.Is(err, model.ErrSlotBooked),
		errors.Is(err, model.ErrIllegalStatusTransition):
		status = http.StatusConflict
	case errors.Is(err, model.ErrInvalidDuration),
		errors.Is(err, model.ErrInvalidRating),
		errors.Is(err, model.ErrInvalidDate),
		errors.Is(err, model.ErrInvalidTime),
		errors.Is(err, model.ErrSlotCrossesMidnight):
		status = http.StatusBadRequest
	}

	if status == http.StatusInternalServerError {
		h.logger.Error("Request failed", zap.String("path", c.FullPath()), zap.Error(err))
	}

	c.JSON(status, gin.H{"error": err.Error()})
}
