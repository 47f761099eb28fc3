package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jhex-consulting/hrms-backend-go/internal/domain/auth"
	"github.com/jhex-consulting/hrms-backend-go/internal/domain/payroll"
	"github.com/jhex-consulting/hrms-backend-go/internal/handler/http/response"
)

type PayrollHandler interface {
	Generate(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	Payslip(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	BulkAction(w http.ResponseWriter, r *http.Request)
	MarkSent(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type PayrollHandlerImpl struct {
	payrollService payroll.PayrollService
}

func NewPayrollHandler(payrollService payroll.PayrollService) PayrollHandler {
	return &PayrollHandlerImpl{payrollService: payrollService}
}

// Generate implements PayrollHandler.
func (h *PayrollHandlerImpl) Generate(w http.ResponseWriter, r *http.Request) {
	principal, err := auth.PrincipalFromContext(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var generateReq payroll.GeneratePayrollRequest
	if err := json.NewDecoder(r.Body).Decode(&generateReq); err != nil {
		slog.Error("Generate payroll decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.payrollService.Generate(r.Context(), principal, generateReq)
	if err != nil {
		slog.Error("Generate payroll service error", "error", err, "month", generateReq.Month)
		response.HandleError(w, err)
		return
	}

	slog.Info("Payroll generated",
		"month", generateReq.Month,
		"success", result.Success,
		"errors", len(result.Errors),
		"generated_by", principal.EmployeeID,
	)
	response.Created(w, "Payroll generation completed", result)
}

// List implements PayrollHandler.
func (h *PayrollHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	principal, err := auth.PrincipalFromContext(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	query := payroll.PayrollQuery{
		Month:        r.URL.Query().Get("month"),
		Year:         r.URL.Query().Get("year"),
		EmployeeID:   r.URL.Query().Get("employee_id"),
		DepartmentID: r.URL.Query().Get("department_id"),
		Status:       r.URL.Query().Get("status"),
	}

	result, err := h.payrollService.List(r.Context(), principal, query)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Get implements PayrollHandler.
func (h *PayrollHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	principal, err := auth.PrincipalFromContext(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.payrollService.Get(r.Context(), principal, chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Payslip implements PayrollHandler.
func (h *PayrollHandlerImpl) Payslip(w http.ResponseWriter, r *http.Request) {
	principal, err := auth.PrincipalFromContext(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.payrollService.Payslip(r.Context(), principal, chi.URLParam(r, "id"))
	if err != nil {
		slog.Error("Payslip service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Update implements PayrollHandler.
func (h *PayrollHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	principal, err := auth.PrincipalFromContext(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var updateReq payroll.UpdatePayrollRequest
	if err := json.NewDecoder(r.Body).Decode(&updateReq); err != nil {
		slog.Error("Update payroll decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.payrollService.Update(r.Context(), principal, chi.URLParam(r, "id"), updateReq)
	if err != nil {
		slog.Error("Update payroll service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Payroll record updated", result)
}

// BulkAction implements PayrollHandler.
func (h *PayrollHandlerImpl) BulkAction(w http.ResponseWriter, r *http.Request) {
	principal, err := auth.PrincipalFromContext(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var bulkReq payroll.BulkActionRequest
	if err := json.NewDecoder(r.Body).Decode(&bulkReq); err != nil {
		slog.Error("Bulk payroll decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.payrollService.BulkAction(r.Context(), principal, bulkReq)
	if err != nil {
		slog.Error("Bulk payroll service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Payroll bulk action", "action", bulkReq.Action, "updated", result.Updated, "total", result.Total)
	response.SuccessWithMessage(w, "Bulk action completed", result)
}

// MarkSent implements PayrollHandler.
func (h *PayrollHandlerImpl) MarkSent(w http.ResponseWriter, r *http.Request) {
	principal, err := auth.PrincipalFromContext(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	id := chi.URLParam(r, "id")
	result, err := h.payrollService.MarkSent(r.Context(), principal, id)
	if err != nil {
		slog.Error("MarkSent service error", "error", err, "payroll_id", id)
		response.HandleError(w, err)
		return
	}

	slog.Info("Payroll marked as sent", "payroll_id", id, "by", principal.EmployeeID)
	response.SuccessWithMessage(w, "Payroll marked as sent", result)
}

// Delete implements PayrollHandler.
func (h *PayrollHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	principal, err := auth.PrincipalFromContext(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	if err := h.payrollService.Delete(r.Context(), principal, chi.URLParam(r, "id")); err != nil {
		slog.Error("Delete payroll service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Payroll record deleted", nil)
}
