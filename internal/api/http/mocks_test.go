package http

import (
	"context"

	"github.com/stretchr/testify/mock"

	"rentafleet-backend/internal/domain"
)

type MockRentalService struct{ mock.Mock }

func (m *MockRentalService) RegisterRental(ctx context.Context, start, end string, clientID, vehicleID int32, employeeID *int32) (*domain.Rental, error) {
	args := m.Called(ctx, start, end, clientID, vehicleID, employeeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Rental), args.Error(1)
}

func (m *MockRentalService) GetRental(ctx context.Context, id int32) (*domain.Rental, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Rental), args.Error(1)
}

func (m *MockRentalService) ListRentals(ctx context.Context) ([]domain.Rental, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Rental), args.Error(1)
}

func (m *MockRentalService) ListRentalsByClient(ctx context.Context, clientID int32) ([]domain.Rental, error) {
	args := m.Called(ctx, clientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Rental), args.Error(1)
}

func (m *MockRentalService) UpdateRental(ctx context.Context, rental *domain.Rental) (*domain.Rental, error) {
	args := m.Called(ctx, rental)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Rental), args.Error(1)
}

func (m *MockRentalService) DeleteRental(ctx context.Context, id int32) error {
	return m.Called(ctx, id).Error(0)
}

type MockAvailabilityService struct{ mock.Mock }

func (m *MockAvailabilityService) IsVehicleAvailable(ctx context.Context, vehicleID int32, start, end string) (bool, error) {
	args := m.Called(ctx, vehicleID, start, end)
	return args.Bool(0), args.Error(1)
}

func (m *MockAvailabilityService) IsVehicleInMaintenance(ctx context.Context, vehicleID int32, start, end string) (bool, error) {
	args := m.Called(ctx, vehicleID, start, end)
	return args.Bool(0), args.Error(1)
}

type MockVehicleService struct{ mock.Mock }

func (m *MockVehicleService) CreateVehicle(ctx context.Context, vehicle *domain.Vehicle) error {
	return m.Called(ctx, vehicle).Error(0)
}

func (m *MockVehicleService) GetVehicle(ctx context.Context, id int32) (*domain.Vehicle, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Vehicle), args.Error(1)
}

func (m *MockVehicleService) ListVehicles(ctx context.Context) ([]domain.Vehicle, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Vehicle), args.Error(1)
}

func (m *MockVehicleService) UpdateVehicle(ctx context.Context, vehicle *domain.Vehicle) error {
	return m.Called(ctx, vehicle).Error(0)
}

func (m *MockVehicleService) DeleteVehicle(ctx context.Context, id int32) error {
	return m.Called(ctx, id).Error(0)
}
