package http

import (
	"net/http"

	"github.com/sitepay/sitepay-backend-go/internal/domain/payroll"
	"github.com/sitepay/sitepay-backend-go/internal/handler/http/response"
)

type PayrollHandler interface {
	GetSalaryOverview(w http.ResponseWriter, r *http.Request)
	GetLaborCostReport(w http.ResponseWriter, r *http.Request)
}

type payrollHandlerImpl struct {
	payrollService payroll.Service
	reportService  payroll.ReportService
}

func NewPayrollHandler(payrollService payroll.Service, reportService payroll.ReportService) PayrollHandler {
	return &payrollHandlerImpl{
		payrollService: payrollService,
		reportService:  reportService,
	}
}

// GetSalaryOverview implements PayrollHandler.
func (h *payrollHandlerImpl) GetSalaryOverview(w http.ResponseWriter, r *http.Request) {
	result, err := h.payrollService.GetSalaryOverview(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// GetLaborCostReport implements PayrollHandler.
func (h *payrollHandlerImpl) GetLaborCostReport(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	req := payroll.LaborCostReportRequest{
		StartDate: query.Get("start_date"),
		EndDate:   query.Get("end_date"),
		SiteID:    query.Get("site_id"),
	}

	result, err := h.reportService.BuildLaborCostReport(r.Context(), &req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
