package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jhex-consulting/hrms-backend-go/internal/domain/attendance"
	"github.com/jhex-consulting/hrms-backend-go/internal/domain/auth"
	"github.com/jhex-consulting/hrms-backend-go/internal/handler/http/response"
	"github.com/jhex-consulting/hrms-backend-go/internal/service/master"
)

type MasterHandler interface {
	ListDepartments(w http.ResponseWriter, r *http.Request)
	ListRoles(w http.ResponseWriter, r *http.Request)
	GetAttendanceSettings(w http.ResponseWriter, r *http.Request)
	UpsertAttendanceSettings(w http.ResponseWriter, r *http.Request)
}

type MasterHandlerImpl struct {
	masterService master.MasterService
}

func NewMasterHandler(masterService master.MasterService) MasterHandler {
	return &MasterHandlerImpl{masterService: masterService}
}

// ListDepartments implements MasterHandler.
func (h *MasterHandlerImpl) ListDepartments(w http.ResponseWriter, r *http.Request) {
	result, err := h.masterService.ListDepartments(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// ListRoles implements MasterHandler.
func (h *MasterHandlerImpl) ListRoles(w http.ResponseWriter, r *http.Request) {
	result, err := h.masterService.ListRoles(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// GetAttendanceSettings implements MasterHandler.
func (h *MasterHandlerImpl) GetAttendanceSettings(w http.ResponseWriter, r *http.Request) {
	principal, err := auth.PrincipalFromContext(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.masterService.GetAttendanceSettings(r.Context(), principal, chi.URLParam(r, "departmentID"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// UpsertAttendanceSettings implements MasterHandler.
func (h *MasterHandlerImpl) UpsertAttendanceSettings(w http.ResponseWriter, r *http.Request) {
	principal, err := auth.PrincipalFromContext(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var upsertReq attendance.UpsertSettingsRequest
	if err := json.NewDecoder(r.Body).Decode(&upsertReq); err != nil {
		slog.Error("Upsert settings decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	departmentID := chi.URLParam(r, "departmentID")
	result, err := h.masterService.UpsertAttendanceSettings(r.Context(), principal, departmentID, upsertReq)
	if err != nil {
		slog.Error("Upsert settings service error", "error", err, "department_id", departmentID)
		response.HandleError(w, err)
		return
	}

	slog.Info("Attendance settings updated", "department_id", departmentID, "by", principal.EmployeeID)
	response.SuccessWithMessage(w, "Attendance settings saved", result)
}
