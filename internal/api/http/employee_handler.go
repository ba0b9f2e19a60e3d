package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-playground/validator"

	"rentafleet-backend/internal/domain"
	"rentafleet-backend/internal/service"
)

type EmployeeHandler struct {
	employeeService service.EmployeeService
	validate        *validator.Validate
}

func NewEmployeeHandler(employeeService service.EmployeeService) *EmployeeHandler {
	return &EmployeeHandler{employeeService: employeeService, validate: newValidator()}
}

type employeeRequest struct {
	FirstName  string  `json:"first_name" validate:"required"`
	LastName   string  `json:"last_name" validate:"required"`
	NationalID *string `json:"national_id" validate:"omitempty,dni"`
	Role       string  `json:"role"`
	Phone      string  `json:"phone"`
	Email      string  `json:"email" validate:"omitempty,email"`
	Password   string  `json:"password" validate:"omitempty,min=8"`
}

func (h *EmployeeHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req employeeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		writeValidationError(w, err.(validator.ValidationErrors))
		return
	}

	employee := &domain.Employee{
		FirstName:  req.FirstName,
		LastName:   req.LastName,
		NationalID: req.NationalID,
		Role:       req.Role,
		Phone:      req.Phone,
		Email:      req.Email,
	}
	if err := h.employeeService.CreateEmployee(r.Context(), employee, req.Password); err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, employee)
}

func (h *EmployeeHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	employee, err := h.employeeService.GetEmployee(r.Context(), id)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, employee)
}

func (h *EmployeeHandler) List(w http.ResponseWriter, r *http.Request) {
	employees, err := h.employeeService.ListEmployees(r.Context())
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, employees)
}

func (h *EmployeeHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	var req employeeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		writeValidationError(w, err.(validator.ValidationErrors))
		return
	}

	employee := &domain.Employee{
		ID:         id,
		FirstName:  req.FirstName,
		LastName:   req.LastName,
		NationalID: req.NationalID,
		Role:       req.Role,
		Phone:      req.Phone,
		Email:      req.Email,
	}
	if err := h.employeeService.UpdateEmployee(r.Context(), employee); err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, employee)
}

func (h *EmployeeHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	if err := h.employeeService.DeleteEmployee(r.Context(), id); err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]int32{"deleted": id})
}
