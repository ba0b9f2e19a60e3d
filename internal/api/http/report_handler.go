package http

import (
	"net/http"

	"rentafleet-backend/internal/service"
)

type ReportHandler struct {
	reportService     service.ReportService
	reconcilerService service.ReconcilerService
}

func NewReportHandler(reportService service.ReportService, reconcilerService service.ReconcilerService) *ReportHandler {
	return &ReportHandler{reportService: reportService, reconcilerService: reconcilerService}
}

func (h *ReportHandler) RentalsByClient(w http.ResponseWriter, r *http.Request) {
	summaries, err := h.reportService.RentalsByClient(r.Context())
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, summaries)
}

func (h *ReportHandler) ClientRentalDetail(w http.ResponseWriter, r *http.Request) {
	clientID, ok := pathID(w, r, "client_id")
	if !ok {
		return
	}
	details, err := h.reportService.ClientRentalDetail(r.Context(), clientID)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, details)
}

func (h *ReportHandler) MostRentedVehicles(w http.ResponseWriter, r *http.Request) {
	usage, err := h.reportService.MostRentedVehicles(r.Context())
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, usage)
}

// RevenueByPeriod groups revenue by ?period=month|quarter|year.
func (h *ReportHandler) RevenueByPeriod(w http.ResponseWriter, r *http.Request) {
	period := r.URL.Query().Get("period")
	if period == "" {
		period = "month"
	}
	revenue, err := h.reportService.RevenueByPeriod(r.Context(), period)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, revenue)
}

func (h *ReportHandler) DashboardStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.reportService.DashboardStats(r.Context())
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, stats)
}

// Reconcile triggers an on-demand status reconciliation pass. An optional
// ?date=YYYY-MM-DD overrides the reference date.
func (h *ReportHandler) Reconcile(w http.ResponseWriter, r *http.Request) {
	report, err := h.reconcilerService.ReconcileVehicleStatuses(r.Context(), r.URL.Query().Get("date"))
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, report)
}
