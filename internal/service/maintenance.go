package service

import (
	"context"
	"time"

	"rentafleet-backend/internal/domain"
	"rentafleet-backend/internal/logger"
	"rentafleet-backend/internal/repository"
	"rentafleet-backend/internal/utils"
)

type maintenanceService struct {
	maintenanceRepo repository.MaintenanceRepository
	vehicleRepo     repository.VehicleRepository
	rentalRepo      repository.RentalRepository
	now             func() time.Time
}

func NewMaintenanceService(
	maintenanceRepo repository.MaintenanceRepository,
	vehicleRepo repository.VehicleRepository,
	rentalRepo repository.RentalRepository,
) MaintenanceService {
	return &maintenanceService{
		maintenanceRepo: maintenanceRepo,
		vehicleRepo:     vehicleRepo,
		rentalRepo:      rentalRepo,
		now:             time.Now,
	}
}

func (s *maintenanceService) CreateMaintenance(ctx context.Context, m *domain.Maintenance) error {
	startDate, err := utils.ParseDate(m.StartDate)
	if err != nil {
		return domain.ErrInvalidDateRange
	}
	endDate, err := utils.ParseDate(m.EndDate)
	if err != nil {
		return domain.ErrInvalidDateRange
	}
	if endDate.Before(startDate) {
		return domain.ErrInvalidDateRange
	}

	vehicle, err := s.vehicleRepo.GetByID(ctx, m.VehicleID)
	if err != nil {
		return err
	}

	if err := s.maintenanceRepo.Create(ctx, m); err != nil {
		return err
	}

	// A window still open today takes an idle vehicle out of service right
	// away instead of waiting for the nightly pass. Rented vehicles keep
	// their status; the reconciler resolves the priority later.
	today := s.now().Truncate(24 * time.Hour)
	if vehicle.Status.Is(domain.VehicleStatusAvailable) && !endDate.Before(today) {
		if err := s.vehicleRepo.UpdateStatus(ctx, m.VehicleID, domain.VehicleStatusMaintenance); err != nil {
			logger.Warn("Failed to flip vehicle to maintenance", "vehicle_id", m.VehicleID, "error", err)
		}
	}

	return nil
}

func (s *maintenanceService) GetMaintenance(ctx context.Context, id int32) (*domain.Maintenance, error) {
	return s.maintenanceRepo.GetByID(ctx, id)
}

func (s *maintenanceService) ListMaintenances(ctx context.Context) ([]domain.Maintenance, error) {
	return s.maintenanceRepo.List(ctx)
}

func (s *maintenanceService) ListMaintenancesByVehicle(ctx context.Context, vehicleID int32) ([]domain.Maintenance, error) {
	return s.maintenanceRepo.ListByVehicle(ctx, vehicleID)
}

func (s *maintenanceService) UpdateMaintenance(ctx context.Context, m *domain.Maintenance) error {
	startDate, err := utils.ParseDate(m.StartDate)
	if err != nil {
		return domain.ErrInvalidDateRange
	}
	endDate, err := utils.ParseDate(m.EndDate)
	if err != nil {
		return domain.ErrInvalidDateRange
	}
	if endDate.Before(startDate) {
		return domain.ErrInvalidDateRange
	}
	if err := s.maintenanceRepo.Update(ctx, m); err != nil {
		return err
	}
	s.repairVehicleStatus(ctx, m.VehicleID)
	return nil
}

func (s *maintenanceService) DeleteMaintenance(ctx context.Context, id int32) error {
	m, err := s.maintenanceRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.maintenanceRepo.Delete(ctx, id); err != nil {
		return err
	}
	s.repairVehicleStatus(ctx, m.VehicleID)
	return nil
}

// repairVehicleStatus re-derives one vehicle's status after a maintenance
// record changed. Failures are logged, not propagated: the record change
// already committed and the nightly reconciler will catch the status up.
func (s *maintenanceService) repairVehicleStatus(ctx context.Context, vehicleID int32) {
	vehicle, err := s.vehicleRepo.GetByID(ctx, vehicleID)
	if err != nil {
		logger.Warn("Failed to load vehicle for status repair", "vehicle_id", vehicleID, "error", err)
		return
	}

	refDate := s.now().Format(utils.DateLayout)
	activeRentals, err := s.rentalRepo.CountActiveOn(ctx, vehicleID, refDate)
	if err != nil {
		logger.Warn("Failed to count active rentals", "vehicle_id", vehicleID, "error", err)
		return
	}
	activeMaintenance, err := s.maintenanceRepo.CountActiveOn(ctx, vehicleID, refDate)
	if err != nil {
		logger.Warn("Failed to count active maintenance", "vehicle_id", vehicleID, "error", err)
		return
	}

	desired := desiredVehicleStatus(activeRentals, activeMaintenance)
	if vehicle.Status.Is(desired) {
		return
	}
	if err := s.vehicleRepo.UpdateStatus(ctx, vehicleID, desired); err != nil {
		logger.Warn("Failed to repair vehicle status", "vehicle_id", vehicleID, "error", err)
	}
}
