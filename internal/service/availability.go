package service

import (
	"context"

	"rentafleet-backend/internal/repository"
)

type availabilityService struct {
	rentalRepo      repository.RentalRepository
	maintenanceRepo repository.MaintenanceRepository
}

func NewAvailabilityService(rentalRepo repository.RentalRepository, maintenanceRepo repository.MaintenanceRepository) AvailabilityService {
	return &availabilityService{
		rentalRepo:      rentalRepo,
		maintenanceRepo: maintenanceRepo,
	}
}

// IsVehicleAvailable reports whether the vehicle is free of conflicting
// rentals and maintenance windows in [start, end]. It does not look at the
// vehicle's cached status column; that is the registrar's concern.
func (s *availabilityService) IsVehicleAvailable(ctx context.Context, vehicleID int32, start, end string) (bool, error) {
	rentals, err := s.rentalRepo.CountOverlapping(ctx, vehicleID, start, end, 0)
	if err != nil {
		return false, err
	}
	if rentals > 0 {
		return false, nil
	}

	maintenances, err := s.maintenanceRepo.CountOverlapping(ctx, vehicleID, start, end)
	if err != nil {
		return false, err
	}
	return maintenances == 0, nil
}

// IsVehicleInMaintenance reports whether a maintenance window overlaps the
// period. Exposed separately so callers can tell a maintenance conflict from
// a rental conflict when building error messages.
func (s *availabilityService) IsVehicleInMaintenance(ctx context.Context, vehicleID int32, start, end string) (bool, error) {
	count, err := s.maintenanceRepo.CountOverlapping(ctx, vehicleID, start, end)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
