package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-playground/validator"

	"rentafleet-backend/internal/domain"
	"rentafleet-backend/internal/service"
)

type FineHandler struct {
	fineService service.FineService
	validate    *validator.Validate
}

func NewFineHandler(fineService service.FineService) *FineHandler {
	return &FineHandler{fineService: fineService, validate: newValidator()}
}

type fineRequest struct {
	RentalID    int32   `json:"rental_id" validate:"required,gt=0"`
	Description string  `json:"description" validate:"required"`
	Amount      float64 `json:"amount" validate:"gte=0"`
}

func (h *FineHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req fineRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		writeValidationError(w, err.(validator.ValidationErrors))
		return
	}

	fine := &domain.Fine{
		RentalID:    req.RentalID,
		Description: req.Description,
		Amount:      req.Amount,
	}
	if err := h.fineService.CreateFine(r.Context(), fine); err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, fine)
}

func (h *FineHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	fine, err := h.fineService.GetFine(r.Context(), id)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, fine)
}

func (h *FineHandler) ListByRental(w http.ResponseWriter, r *http.Request) {
	rentalID, ok := pathID(w, r, "rental_id")
	if !ok {
		return
	}
	fines, err := h.fineService.ListFinesByRental(r.Context(), rentalID)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, fines)
}

func (h *FineHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	var req fineRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		writeValidationError(w, err.(validator.ValidationErrors))
		return
	}

	fine := &domain.Fine{
		ID:          id,
		RentalID:    req.RentalID,
		Description: req.Description,
		Amount:      req.Amount,
	}
	if err := h.fineService.UpdateFine(r.Context(), fine); err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, fine)
}

func (h *FineHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	if err := h.fineService.DeleteFine(r.Context(), id); err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]int32{"deleted": id})
}
