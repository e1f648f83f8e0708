package http

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/NathanFontaine1981/Talbiyah.ai-sub011/internal/app"
	"github.com/NathanFontaine1981/Talbiyah.ai-sub011/internal/model"
	"github.com/NathanFontaine1981/Talbiyah.ai-sub011/internal/repository/memory"
	"github.com/NathanFontaine1981/Talbiyah.ai-sub011/internal/service"
)

func newTestRouter(t *testing.T) (*gin.Engine, *service.Facade) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	logger := zap.NewNop()
	slots := memory.NewSlotStore()
	interviews := memory.NewInterviewStore()
	catalog := service.NewSlotCatalog(slots, logger)
	coordinator := service.NewBookingCoordinator(slots, interviews, logger)
	lifecycle := service.NewInterviewLifecycle(interviews, coordinator, logger)

	facade := service.NewFacade(
		catalog,
		coordinator,
		lifecycle,
		interviews,
		app.UUIDRoomProvisioner{},
		app.UUIDInviteIssuer{},
		&app.LogNotifier{Logger: logger},
		logger,
	)

	return NewRouter(facade, "test", logger), facade
}

func doRequest(t *testing.T, router *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestCreateSlotEndpoint(t *testing.T) {
	router, _ := newTestRouter(t)

	w := doRequest(t, router, http.MethodPost, "/api/slots", gin.H{
		"admin_id":         "admin-1",
		"date":             "2026-09-01",
		"start_time":       "09:00",
		"duration_minutes": 30,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var slot model.InterviewSlot
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &slot))
	require.Equal(t, "09:30", slot.EndTime)
}

func TestCreateSlotMalformedInputIsBadRequest(t *testing.T) {
	router, _ := newTestRouter(t)

	w := doRequest(t, router, http.MethodPost, "/api/slots", gin.H{
		"admin_id":         "admin-1",
		"date":             "not-a-date",
		"start_time":       "09:00",
		"duration_minutes": 30,
	})
	require.Equal(t, http.StatusBadRequest, w.Code)

	w = doRequest(t, router, http.MethodPost, "/api/slots", gin.H{
		"admin_id":         "admin-1",
		"date":             "2026-09-01",
		"start_time":       "9am",
		"duration_minutes": 30,
	})
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestListSlotsMalformedRangeIsBadRequest(t *testing.T) {
	router, _ := newTestRouter(t)

	w := doRequest(t, router, http.MethodGet, "/api/slots?from=garbage&to=alsogarbage", nil)
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestScheduleInterviewMalformedInputIsBadRequest(t *testing.T) {
	router, _ := newTestRouter(t)

	w := doRequest(t, router, http.MethodPost, "/api/interviews", gin.H{
		"candidate_id":     "candidate-1",
		"date":             "someday",
		"start_time":       "11:00",
		"duration_minutes": 60,
	})
	require.Equal(t, http.StatusBadRequest, w.Code)

	w = doRequest(t, router, http.MethodPost, "/api/interviews", gin.H{
		"candidate_id":     "candidate-1",
		"date":             "2026-09-10",
		"start_time":       "eleven",
		"duration_minutes": 60,
	})
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestBookSlotConflictIsConflict(t *testing.T) {
	router, facade := newTestRouter(t)
	ctx := context.Background()

	slot, err := facade.CreateSlot(ctx, "admin-1", "2026-09-01", "09:00", 30)
	require.NoError(t, err)

	w := doRequest(t, router, http.MethodPost, "/api/slots/"+slot.ID+"/book", gin.H{"candidate_id": "candidate-1"})
	require.Equal(t, http.StatusCreated, w.Code)

	w = doRequest(t, router, http.MethodPost, "/api/slots/"+slot.ID+"/book", gin.H{"candidate_id": "candidate-2"})
	require.Equal(t, http.StatusConflict, w.Code)
}

func TestListCompletedStatusFilter(t *testing.T) {
	router, facade := newTestRouter(t)
	ctx := context.Background()

	done, err := facade.ScheduleInterview(ctx, "candidate-1", "2026-09-10", "10:00", 30, "")
	require.NoError(t, err)
	require.NoError(t, facade.CompleteInterview(ctx, done.ID, model.Ratings{}, "", ""))

	gone, err := facade.ScheduleInterview(ctx, "candidate-2", "2026-09-10", "11:00", 30, "")
	require.NoError(t, err)
	require.NoError(t, facade.MarkNoShow(ctx, gone.ID))

	w := doRequest(t, router, http.MethodGet, "/api/interviews/completed?status=no_show", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var listed []*service.FinishedInterview
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &listed))
	require.Len(t, listed, 1)
	require.Equal(t, gone.ID, listed[0].ID)

	w = doRequest(t, router, http.MethodGet, "/api/interviews/completed?status=done", nil)
	require.Equal(t, http.StatusBadRequest, w.Code)
}
