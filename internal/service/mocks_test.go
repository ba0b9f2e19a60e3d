package service

import (
	"context"

	"github.com/stretchr/testify/mock"

	"rentafleet-backend/internal/domain"
)

type MockClientRepo struct{ mock.Mock }

func (m *MockClientRepo) Create(ctx context.Context, client *domain.Client) error {
	return m.Called(ctx, client).Error(0)
}

func (m *MockClientRepo) GetByID(ctx context.Context, id int32) (*domain.Client, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Client), args.Error(1)
}

func (m *MockClientRepo) List(ctx context.Context) ([]domain.Client, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Client), args.Error(1)
}

func (m *MockClientRepo) Update(ctx context.Context, client *domain.Client) error {
	return m.Called(ctx, client).Error(0)
}

func (m *MockClientRepo) Delete(ctx context.Context, id int32) error {
	return m.Called(ctx, id).Error(0)
}

type MockEmployeeRepo struct{ mock.Mock }

func (m *MockEmployeeRepo) Create(ctx context.Context, employee *domain.Employee) error {
	return m.Called(ctx, employee).Error(0)
}

func (m *MockEmployeeRepo) GetByID(ctx context.Context, id int32) (*domain.Employee, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Employee), args.Error(1)
}

func (m *MockEmployeeRepo) GetByEmail(ctx context.Context, email string) (*domain.Employee, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Employee), args.Error(1)
}

func (m *MockEmployeeRepo) List(ctx context.Context) ([]domain.Employee, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Employee), args.Error(1)
}

func (m *MockEmployeeRepo) Update(ctx context.Context, employee *domain.Employee) error {
	return m.Called(ctx, employee).Error(0)
}

func (m *MockEmployeeRepo) Delete(ctx context.Context, id int32) error {
	return m.Called(ctx, id).Error(0)
}

type MockVehicleRepo struct{ mock.Mock }

func (m *MockVehicleRepo) Create(ctx context.Context, vehicle *domain.Vehicle) error {
	return m.Called(ctx, vehicle).Error(0)
}

func (m *MockVehicleRepo) GetByID(ctx context.Context, id int32) (*domain.Vehicle, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Vehicle), args.Error(1)
}

func (m *MockVehicleRepo) GetByPlate(ctx context.Context, plate string) (*domain.Vehicle, error) {
	args := m.Called(ctx, plate)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Vehicle), args.Error(1)
}

func (m *MockVehicleRepo) List(ctx context.Context) ([]domain.Vehicle, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Vehicle), args.Error(1)
}

func (m *MockVehicleRepo) Update(ctx context.Context, vehicle *domain.Vehicle) error {
	return m.Called(ctx, vehicle).Error(0)
}

func (m *MockVehicleRepo) UpdateStatus(ctx context.Context, id int32, status domain.VehicleStatus) error {
	return m.Called(ctx, id, status).Error(0)
}

func (m *MockVehicleRepo) Delete(ctx context.Context, id int32) error {
	return m.Called(ctx, id).Error(0)
}

type MockRentalRepo struct{ mock.Mock }

func (m *MockRentalRepo) Create(ctx context.Context, rental *domain.Rental) error {
	return m.Called(ctx, rental).Error(0)
}

func (m *MockRentalRepo) CreateWithStatus(ctx context.Context, rental *domain.Rental, newStatus *domain.VehicleStatus) error {
	return m.Called(ctx, rental, newStatus).Error(0)
}

func (m *MockRentalRepo) GetByID(ctx context.Context, id int32) (*domain.Rental, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Rental), args.Error(1)
}

func (m *MockRentalRepo) List(ctx context.Context) ([]domain.Rental, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Rental), args.Error(1)
}

func (m *MockRentalRepo) ListByVehicle(ctx context.Context, vehicleID int32) ([]domain.Rental, error) {
	args := m.Called(ctx, vehicleID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Rental), args.Error(1)
}

func (m *MockRentalRepo) ListByClient(ctx context.Context, clientID int32) ([]domain.Rental, error) {
	args := m.Called(ctx, clientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Rental), args.Error(1)
}

func (m *MockRentalRepo) Update(ctx context.Context, rental *domain.Rental) error {
	return m.Called(ctx, rental).Error(0)
}

func (m *MockRentalRepo) Delete(ctx context.Context, id int32) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockRentalRepo) CountOverlapping(ctx context.Context, vehicleID int32, start, end string, excludeID int32) (int32, error) {
	args := m.Called(ctx, vehicleID, start, end, excludeID)
	return args.Get(0).(int32), args.Error(1)
}

func (m *MockRentalRepo) CountActiveOn(ctx context.Context, vehicleID int32, refDate string) (int32, error) {
	args := m.Called(ctx, vehicleID, refDate)
	return args.Get(0).(int32), args.Error(1)
}

type MockMaintenanceRepo struct{ mock.Mock }

func (m *MockMaintenanceRepo) Create(ctx context.Context, mt *domain.Maintenance) error {
	return m.Called(ctx, mt).Error(0)
}

func (m *MockMaintenanceRepo) GetByID(ctx context.Context, id int32) (*domain.Maintenance, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Maintenance), args.Error(1)
}

func (m *MockMaintenanceRepo) List(ctx context.Context) ([]domain.Maintenance, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Maintenance), args.Error(1)
}

func (m *MockMaintenanceRepo) ListByVehicle(ctx context.Context, vehicleID int32) ([]domain.Maintenance, error) {
	args := m.Called(ctx, vehicleID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Maintenance), args.Error(1)
}

func (m *MockMaintenanceRepo) Update(ctx context.Context, mt *domain.Maintenance) error {
	return m.Called(ctx, mt).Error(0)
}

func (m *MockMaintenanceRepo) Delete(ctx context.Context, id int32) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockMaintenanceRepo) CountOverlapping(ctx context.Context, vehicleID int32, start, end string) (int32, error) {
	args := m.Called(ctx, vehicleID, start, end)
	return args.Get(0).(int32), args.Error(1)
}

func (m *MockMaintenanceRepo) CountActiveOn(ctx context.Context, vehicleID int32, refDate string) (int32, error) {
	args := m.Called(ctx, vehicleID, refDate)
	return args.Get(0).(int32), args.Error(1)
}

type MockEmailService struct{ mock.Mock }

func (m *MockEmailService) SendRentalConfirmation(ctx context.Context, toEmail, toName, plate, startDate, endDate string, totalCost float64) error {
	return m.Called(ctx, toEmail, toName, plate, startDate, endDate, totalCost).Error(0)
}
