package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/mediserve-hris/attendance-backend-go/internal/domain/schedule"
	"github.com/mediserve-hris/attendance-backend-go/internal/handler/http/response"
)

type DutyScheduleHandler interface {
	GetDepartmentSchedules(w http.ResponseWriter, r *http.Request)
}

type DutyScheduleHandlerImpl struct {
	scheduleService schedule.DutyScheduleService
}

// GetDepartmentSchedules implements DutyScheduleHandler.
func (h *DutyScheduleHandlerImpl) GetDepartmentSchedules(w http.ResponseWriter, r *http.Request) {
	departmentID := chi.URLParam(r, "departmentID")
	if departmentID == "" {
		response.BadRequest(w, "Department ID is required", nil)
		return
	}

	req := schedule.CatalogRequest{
		DepartmentID: departmentID,
		Date:         r.URL.Query().Get("date"),
	}

	selection, err := h.scheduleService.GetDepartmentSchedules(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, selection)
}

func NewDutyScheduleHandler(scheduleService schedule.DutyScheduleService) DutyScheduleHandler {
	return &DutyScheduleHandlerImpl{scheduleService: scheduleService}
}
