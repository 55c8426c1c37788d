package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/mediserve-hris/attendance-backend-go/internal/domain/attendance"
	"github.com/mediserve-hris/attendance-backend-go/internal/handler/http/middleware"
	"github.com/mediserve-hris/attendance-backend-go/internal/handler/http/response"
)

type AttendanceHandler interface {
	ListPeriodAttendance(w http.ResponseWriter, r *http.Request)
	SubmitManualEntry(w http.ResponseWriter, r *http.Request)
	GetManualEntry(w http.ResponseWriter, r *http.Request)
}

type AttendanceHandlerImpl struct {
	attendanceService attendance.AttendanceService
}

// ListPeriodAttendance implements AttendanceHandler.
func (h *AttendanceHandlerImpl) ListPeriodAttendance(w http.ResponseWriter, r *http.Request) {
	scheduleID := chi.URLParam(r, "scheduleID")
	if scheduleID == "" {
		response.BadRequest(w, "Schedule period ID is required", nil)
		return
	}

	role, err := middleware.RoleFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	query := r.URL.Query()
	// Malformed page/limit values fall back to the defaults applied by
	// request validation.
	page, _ := strconv.Atoi(query.Get("page"))
	limit, _ := strconv.Atoi(query.Get("limit"))

	req := attendance.ListRequest{
		SchedulePeriodID: scheduleID,
		Search:           query.Get("search"),
		Page:             page,
		Limit:            limit,
	}

	list, err := h.attendanceService.ListPeriodAttendance(r.Context(), req, role)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, list)
}

// SubmitManualEntry implements AttendanceHandler.
func (h *AttendanceHandlerImpl) SubmitManualEntry(w http.ResponseWriter, r *http.Request) {
	var req attendance.ManualEntryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("SubmitManualEntry decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	role, err := middleware.RoleFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	createdBy, err := middleware.UserIDFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	entry, err := h.attendanceService.SubmitManualEntry(r.Context(), req, role, createdBy)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Manual entry recorded successfully", entry)
}

// GetManualEntry implements AttendanceHandler.
func (h *AttendanceHandlerImpl) GetManualEntry(w http.ResponseWriter, r *http.Request) {
	entryID := chi.URLParam(r, "entryID")
	if entryID == "" {
		response.BadRequest(w, "Manual entry ID is required", nil)
		return
	}

	entry, err := h.attendanceService.GetManualEntry(r.Context(), entryID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, entry)
}

func NewAttendanceHandler(attendanceService attendance.AttendanceService) AttendanceHandler {
	return &AttendanceHandlerImpl{attendanceService: attendanceService}
}
