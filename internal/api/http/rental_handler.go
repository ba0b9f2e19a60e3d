package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-playground/validator"

	"rentafleet-backend/internal/domain"
	"rentafleet-backend/internal/service"
)

type RentalHandler struct {
	rentalService service.RentalService
	validate      *validator.Validate
}

func NewRentalHandler(rentalService service.RentalService) *RentalHandler {
	return &RentalHandler{rentalService: rentalService, validate: newValidator()}
}

type rentalRequest struct {
	StartDate  string `json:"start_date" validate:"required,dateformat"`
	EndDate    string `json:"end_date" validate:"required,dateformat"`
	ClientID   int32  `json:"client_id" validate:"required,gt=0"`
	VehicleID  int32  `json:"vehicle_id" validate:"required,gt=0"`
	EmployeeID *int32 `json:"employee_id" validate:"omitempty,gt=0"`
}

func (h *RentalHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req rentalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		writeValidationError(w, err.(validator.ValidationErrors))
		return
	}

	rental, err := h.rentalService.RegisterRental(r.Context(), req.StartDate, req.EndDate, req.ClientID, req.VehicleID, req.EmployeeID)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, rental)
}

func (h *RentalHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	rental, err := h.rentalService.GetRental(r.Context(), id)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rental)
}

func (h *RentalHandler) List(w http.ResponseWriter, r *http.Request) {
	rentals, err := h.rentalService.ListRentals(r.Context())
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rentals)
}

func (h *RentalHandler) ListByClient(w http.ResponseWriter, r *http.Request) {
	clientID, ok := pathID(w, r, "client_id")
	if !ok {
		return
	}
	rentals, err := h.rentalService.ListRentalsByClient(r.Context(), clientID)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rentals)
}

func (h *RentalHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	var req rentalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		writeValidationError(w, err.(validator.ValidationErrors))
		return
	}

	rental := &domain.Rental{
		ID:         id,
		StartDate:  req.StartDate,
		EndDate:    req.EndDate,
		ClientID:   req.ClientID,
		VehicleID:  req.VehicleID,
		EmployeeID: req.EmployeeID,
	}
	updated, err := h.rentalService.UpdateRental(r.Context(), rental)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

func (h *RentalHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	if err := h.rentalService.DeleteRental(r.Context(), id); err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]int32{"deleted": id})
}
