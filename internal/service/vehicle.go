package service

import (
	"context"

	"rentafleet-backend/internal/domain"
	"rentafleet-backend/internal/repository"
)

type vehicleService struct {
	vehicleRepo repository.VehicleRepository
}

func NewVehicleService(vehicleRepo repository.VehicleRepository) VehicleService {
	return &vehicleService{vehicleRepo: vehicleRepo}
}

func (s *vehicleService) CreateVehicle(ctx context.Context, vehicle *domain.Vehicle) error {
	vehicle.Plate = domain.NormalizePlate(vehicle.Plate)
	if vehicle.Status == "" {
		vehicle.Status = domain.VehicleStatusAvailable
	}
	return s.vehicleRepo.Create(ctx, vehicle)
}

func (s *vehicleService) GetVehicle(ctx context.Context, id int32) (*domain.Vehicle, error) {
	return s.vehicleRepo.GetByID(ctx, id)
}

func (s *vehicleService) ListVehicles(ctx context.Context) ([]domain.Vehicle, error) {
	return s.vehicleRepo.List(ctx)
}

func (s *vehicleService) UpdateVehicle(ctx context.Context, vehicle *domain.Vehicle) error {
	vehicle.Plate = domain.NormalizePlate(vehicle.Plate)
	return s.vehicleRepo.Update(ctx, vehicle)
}

// DeleteVehicle fails with an integrity error while rentals reference the
// vehicle (FK ON DELETE RESTRICT); maintenance records cascade away.
func (s *vehicleService) DeleteVehicle(ctx context.Context, id int32) error {
	return s.vehicleRepo.Delete(ctx, id)
}
