package http

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/jhex-consulting/hrms-backend-go/internal/domain/attendance"
	"github.com/jhex-consulting/hrms-backend-go/internal/domain/auth"
	"github.com/jhex-consulting/hrms-backend-go/internal/handler/http/response"
)

type AttendanceHandler interface {
	CheckIn(w http.ResponseWriter, r *http.Request)
	CheckOut(w http.ResponseWriter, r *http.Request)
	GetToday(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
}

type AttendanceHandlerImpl struct {
	attendanceService attendance.AttendanceService
}

func NewAttendanceHandler(attendanceService attendance.AttendanceService) AttendanceHandler {
	return &AttendanceHandlerImpl{attendanceService: attendanceService}
}

// CheckIn implements AttendanceHandler.
func (h *AttendanceHandlerImpl) CheckIn(w http.ResponseWriter, r *http.Request) {
	principal, err := auth.PrincipalFromContext(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	// Body is optional; notes only.
	var checkInReq attendance.CheckInRequest
	if err := json.NewDecoder(r.Body).Decode(&checkInReq); err != nil && !errors.Is(err, io.EOF) {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.attendanceService.CheckIn(r.Context(), principal, checkInReq)
	if err != nil {
		slog.Error("CheckIn service error", "error", err, "employee_id", principal.EmployeeID)
		response.HandleError(w, err)
		return
	}

	slog.Info("Employee checked in", "employee_id", principal.EmployeeID, "status", result.Status)
	response.Created(w, "Checked in", result)
}

// CheckOut implements AttendanceHandler.
func (h *AttendanceHandlerImpl) CheckOut(w http.ResponseWriter, r *http.Request) {
	principal, err := auth.PrincipalFromContext(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var checkOutReq attendance.CheckOutRequest
	if err := json.NewDecoder(r.Body).Decode(&checkOutReq); err != nil && !errors.Is(err, io.EOF) {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.attendanceService.CheckOut(r.Context(), principal, checkOutReq)
	if err != nil {
		slog.Error("CheckOut service error", "error", err, "employee_id", principal.EmployeeID)
		response.HandleError(w, err)
		return
	}

	slog.Info("Employee checked out", "employee_id", principal.EmployeeID, "status", result.Status)
	response.SuccessWithMessage(w, "Checked out", result)
}

// GetToday implements AttendanceHandler.
func (h *AttendanceHandlerImpl) GetToday(w http.ResponseWriter, r *http.Request) {
	principal, err := auth.PrincipalFromContext(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.attendanceService.GetToday(r.Context(), principal)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// List implements AttendanceHandler.
func (h *AttendanceHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	principal, err := auth.PrincipalFromContext(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	query := attendance.RecordQuery{
		StartDate:    r.URL.Query().Get("start_date"),
		EndDate:      r.URL.Query().Get("end_date"),
		EmployeeID:   r.URL.Query().Get("employee_id"),
		DepartmentID: r.URL.Query().Get("department_id"),
	}

	result, err := h.attendanceService.ListRecords(r.Context(), principal, query)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
