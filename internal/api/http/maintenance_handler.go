package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-playground/validator"

	"rentafleet-backend/internal/domain"
	"rentafleet-backend/internal/service"
)

type MaintenanceHandler struct {
	maintenanceService service.MaintenanceService
	validate           *validator.Validate
}

func NewMaintenanceHandler(maintenanceService service.MaintenanceService) *MaintenanceHandler {
	return &MaintenanceHandler{maintenanceService: maintenanceService, validate: newValidator()}
}

type maintenanceRequest struct {
	VehicleID int32   `json:"vehicle_id" validate:"required,gt=0"`
	StartDate string  `json:"start_date" validate:"required,dateformat"`
	EndDate   string  `json:"end_date" validate:"required,dateformat"`
	Category  string  `json:"category" validate:"omitempty,oneof=PREVENTIVE CORRECTIVE"`
	Cost      float64 `json:"cost" validate:"gte=0"`
	Notes     string  `json:"notes"`
}

func (h *MaintenanceHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req maintenanceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		writeValidationError(w, err.(validator.ValidationErrors))
		return
	}

	m := &domain.Maintenance{
		VehicleID: req.VehicleID,
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
		Category:  domain.MaintenanceCategory(req.Category),
		Cost:      req.Cost,
		Notes:     req.Notes,
	}
	if err := h.maintenanceService.CreateMaintenance(r.Context(), m); err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, m)
}

func (h *MaintenanceHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	m, err := h.maintenanceService.GetMaintenance(r.Context(), id)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, m)
}

func (h *MaintenanceHandler) List(w http.ResponseWriter, r *http.Request) {
	ms, err := h.maintenanceService.ListMaintenances(r.Context())
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, ms)
}

func (h *MaintenanceHandler) ListByVehicle(w http.ResponseWriter, r *http.Request) {
	vehicleID, ok := pathID(w, r, "vehicle_id")
	if !ok {
		return
	}
	ms, err := h.maintenanceService.ListMaintenancesByVehicle(r.Context(), vehicleID)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, ms)
}

func (h *MaintenanceHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	var req maintenanceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		writeValidationError(w, err.(validator.ValidationErrors))
		return
	}

	m := &domain.Maintenance{
		ID:        id,
		VehicleID: req.VehicleID,
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
		Category:  domain.MaintenanceCategory(req.Category),
		Cost:      req.Cost,
		Notes:     req.Notes,
	}
	if err := h.maintenanceService.UpdateMaintenance(r.Context(), m); err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, m)
}

func (h *MaintenanceHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	if err := h.maintenanceService.DeleteMaintenance(r.Context(), id); err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]int32{"deleted": id})
}
