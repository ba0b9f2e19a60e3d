package service

import (
	"context"

	"golang.org/x/crypto/bcrypt"

	"rentafleet-backend/internal/domain"
	"rentafleet-backend/internal/repository"
)

type employeeService struct {
	employeeRepo repository.EmployeeRepository
}

func NewEmployeeService(employeeRepo repository.EmployeeRepository) EmployeeService {
	return &employeeService{employeeRepo: employeeRepo}
}

func (s *employeeService) CreateEmployee(ctx context.Context, employee *domain.Employee, password string) error {
	if password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		employee.PasswordHash = string(hash)
	}
	return s.employeeRepo.Create(ctx, employee)
}

func (s *employeeService) GetEmployee(ctx context.Context, id int32) (*domain.Employee, error) {
	return s.employeeRepo.GetByID(ctx, id)
}

func (s *employeeService) ListEmployees(ctx context.Context) ([]domain.Employee, error) {
	return s.employeeRepo.List(ctx)
}

func (s *employeeService) UpdateEmployee(ctx context.Context, employee *domain.Employee) error {
	return s.employeeRepo.Update(ctx, employee)
}

// DeleteEmployee removes an employee; rentals that reference them keep their
// row with the reference nulled (FK ON DELETE SET NULL).
func (s *employeeService) DeleteEmployee(ctx context.Context, id int32) error {
	return s.employeeRepo.Delete(ctx, id)
}
