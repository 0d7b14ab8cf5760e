package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/kerjapedia/hrms-backend-go/internal/domain/payroll"
	"github.com/kerjapedia/hrms-backend-go/internal/handler/http/response"
)

type PayrollHandler interface {
	GeneratePayslip(w http.ResponseWriter, r *http.Request)
	GetPayslip(w http.ResponseWriter, r *http.Request)
	GetMyPayslips(w http.ResponseWriter, r *http.Request)
	ListPayslips(w http.ResponseWriter, r *http.Request)
}

type PayrollHandlerImpl struct {
	payrollService payroll.PayrollService
}

func NewPayrollHandler(payrollService payroll.PayrollService) PayrollHandler {
	return &PayrollHandlerImpl{payrollService: payrollService}
}

// GeneratePayslip implements PayrollHandler.
func (p *PayrollHandlerImpl) GeneratePayslip(w http.ResponseWriter, r *http.Request) {
	var req payroll.GeneratePayslipRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("GeneratePayslip decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	created, err := p.payrollService.GeneratePayslip(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Payslip generated successfully", created)
}

// GetPayslip implements PayrollHandler. Employees may only read their own
// payslips.
func (p *PayrollHandlerImpl) GetPayslip(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Payslip ID is required", nil)
		return
	}

	payslip, err := p.payrollService.GetPayslip(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	claims, err := claimsFromContext(r.Context())
	if err != nil {
		response.Unauthorized(w, err.Error())
		return
	}
	if !claims.isAdmin() && claims.EmployeeID != payslip.EmployeeID {
		response.Forbidden(w, "Access denied")
		return
	}

	response.Success(w, payslip)
}

// GetMyPayslips implements PayrollHandler.
func (p *PayrollHandlerImpl) GetMyPayslips(w http.ResponseWriter, r *http.Request) {
	claims, err := claimsFromContext(r.Context())
	if err != nil {
		response.Unauthorized(w, err.Error())
		return
	}
	if claims.EmployeeID == "" {
		response.Forbidden(w, "No employee record linked to this account")
		return
	}

	payslips, err := p.payrollService.ListByEmployee(r.Context(), claims.EmployeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, payslips)
}

// ListPayslips implements PayrollHandler.
func (p *PayrollHandlerImpl) ListPayslips(w http.ResponseWriter, r *http.Request) {
	var period *string
	if raw := r.URL.Query().Get("period"); raw != "" {
		period = &raw
	}

	payslips, err := p.payrollService.ListPayslips(r.Context(), period)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, payslips)
}
