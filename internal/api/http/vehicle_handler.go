package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-playground/validator"

	"rentafleet-backend/internal/domain"
	"rentafleet-backend/internal/service"
)

type VehicleHandler struct {
	vehicleService service.VehicleService
	availability   service.AvailabilityService
	validate       *validator.Validate
}

func NewVehicleHandler(vehicleService service.VehicleService, availability service.AvailabilityService) *VehicleHandler {
	return &VehicleHandler{
		vehicleService: vehicleService,
		availability:   availability,
		validate:       newValidator(),
	}
}

type vehicleRequest struct {
	Plate     string  `json:"plate" validate:"required,plate"`
	Make      string  `json:"make" validate:"required"`
	Model     string  `json:"model" validate:"required"`
	Category  string  `json:"category"`
	DailyRate float64 `json:"daily_rate" validate:"gte=0"`
	Status    string  `json:"status" validate:"omitempty,oneof=AVAILABLE RENTED MAINTENANCE"`
}

func (h *VehicleHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req vehicleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		writeValidationError(w, err.(validator.ValidationErrors))
		return
	}

	vehicle := &domain.Vehicle{
		Plate:     req.Plate,
		Make:      req.Make,
		Model:     req.Model,
		Category:  req.Category,
		DailyRate: req.DailyRate,
		Status:    domain.VehicleStatus(req.Status),
	}
	if err := h.vehicleService.CreateVehicle(r.Context(), vehicle); err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, vehicle)
}

func (h *VehicleHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	vehicle, err := h.vehicleService.GetVehicle(r.Context(), id)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, vehicle)
}

func (h *VehicleHandler) List(w http.ResponseWriter, r *http.Request) {
	vehicles, err := h.vehicleService.ListVehicles(r.Context())
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, vehicles)
}

func (h *VehicleHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	var req vehicleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		writeValidationError(w, err.(validator.ValidationErrors))
		return
	}

	vehicle := &domain.Vehicle{
		ID:        id,
		Plate:     req.Plate,
		Make:      req.Make,
		Model:     req.Model,
		Category:  req.Category,
		DailyRate: req.DailyRate,
		Status:    domain.VehicleStatus(req.Status),
	}
	if err := h.vehicleService.UpdateVehicle(r.Context(), vehicle); err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, vehicle)
}

func (h *VehicleHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	if err := h.vehicleService.DeleteVehicle(r.Context(), id); err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]int32{"deleted": id})
}

type availabilityResponse struct {
	VehicleID     int32  `json:"vehicle_id"`
	StartDate     string `json:"start_date"`
	EndDate       string `json:"end_date"`
	Available     bool   `json:"available"`
	InMaintenance bool   `json:"in_maintenance"`
}

// CheckAvailability answers whether the vehicle is free of rental and
// maintenance conflicts over ?start=YYYY-MM-DD&end=YYYY-MM-DD.
func (h *VehicleHandler) CheckAvailability(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	start := r.URL.Query().Get("start")
	end := r.URL.Query().Get("end")
	if start == "" || end == "" {
		writeError(w, http.StatusBadRequest, "start and end query parameters are required")
		return
	}

	available, err := h.availability.IsVehicleAvailable(r.Context(), id, start, end)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	inMaintenance, err := h.availability.IsVehicleInMaintenance(r.Context(), id, start, end)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, availabilityResponse{
		VehicleID:     id,
		StartDate:     start,
		EndDate:       end,
		Available:     available,
		InMaintenance: inMaintenance,
	})
}
