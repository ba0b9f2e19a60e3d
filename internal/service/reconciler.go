package service

import (
	"context"
	"time"

	"rentafleet-backend/internal/domain"
	"rentafleet-backend/internal/logger"
	"rentafleet-backend/internal/repository"
	"rentafleet-backend/internal/utils"
)

// desiredVehicleStatus applies the reconciliation priority: an active rental
// wins over an active maintenance window, which wins over idle.
func desiredVehicleStatus(activeRentals, activeMaintenance int32) domain.VehicleStatus {
	switch {
	case activeRentals > 0:
		return domain.VehicleStatusRented
	case activeMaintenance > 0:
		return domain.VehicleStatusMaintenance
	default:
		return domain.VehicleStatusAvailable
	}
}

type reconcilerService struct {
	vehicleRepo     repository.VehicleRepository
	rentalRepo      repository.RentalRepository
	maintenanceRepo repository.MaintenanceRepository
	now             func() time.Time
}

func NewReconcilerService(
	vehicleRepo repository.VehicleRepository,
	rentalRepo repository.RentalRepository,
	maintenanceRepo repository.MaintenanceRepository,
) ReconcilerService {
	return &reconcilerService{
		vehicleRepo:     vehicleRepo,
		rentalRepo:      rentalRepo,
		maintenanceRepo: maintenanceRepo,
		now:             time.Now,
	}
}

func (s *reconcilerService) ReconcileVehicleStatuses(ctx context.Context, referenceDate string) (*domain.ReconciliationReport, error) {
	refDate, err := s.resolveReferenceDate(referenceDate)
	if err != nil {
		return nil, err
	}

	vehicles, err := s.vehicleRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	report := &domain.ReconciliationReport{ReferenceDate: refDate}
	for _, vehicle := range vehicles {
		transition, err := s.reconcileOne(ctx, &vehicle, refDate)
		if err != nil {
			return nil, err
		}
		if transition != nil {
			report.Transitions = append(report.Transitions, *transition)
		} else {
			report.Unchanged++
		}
	}

	logger.Info("Vehicle status reconciliation finished",
		"reference_date", refDate,
		"transitions", len(report.Transitions),
		"unchanged", report.Unchanged)
	return report, nil
}

func (s *reconcilerService) ReconcileVehicle(ctx context.Context, vehicleID int32, referenceDate string) (domain.VehicleStatus, error) {
	refDate, err := s.resolveReferenceDate(referenceDate)
	if err != nil {
		return "", err
	}

	vehicle, err := s.vehicleRepo.GetByID(ctx, vehicleID)
	if err != nil {
		return "", err
	}

	transition, err := s.reconcileOne(ctx, vehicle, refDate)
	if err != nil {
		return "", err
	}
	if transition != nil {
		return transition.NewStatus, nil
	}
	return vehicle.Status, nil
}

// reconcileOne derives the vehicle's status for the reference date and
// persists it when it differs from the stored value. Returns the transition,
// or nil when the stored status was already correct.
func (s *reconcilerService) reconcileOne(ctx context.Context, vehicle *domain.Vehicle, refDate string) (*domain.StatusTransition, error) {
	activeRentals, err := s.rentalRepo.CountActiveOn(ctx, vehicle.ID, refDate)
	if err != nil {
		return nil, err
	}

	// A maintenance window counts as active from the moment it is recorded
	// until its end date passes, even when it starts in the future.
	activeMaintenance, err := s.maintenanceRepo.CountActiveOn(ctx, vehicle.ID, refDate)
	if err != nil {
		return nil, err
	}

	desired := desiredVehicleStatus(activeRentals, activeMaintenance)
	if vehicle.Status.Is(desired) {
		return nil, nil
	}

	if err := s.vehicleRepo.UpdateStatus(ctx, vehicle.ID, desired); err != nil {
		return nil, err
	}

	logger.Debug("Vehicle status transition",
		"vehicle_id", vehicle.ID,
		"plate", vehicle.Plate,
		"old_status", vehicle.Status,
		"new_status", desired)

	return &domain.StatusTransition{
		VehicleID:         vehicle.ID,
		Plate:             vehicle.Plate,
		OldStatus:         vehicle.Status,
		NewStatus:         desired,
		ActiveRentals:     activeRentals,
		ActiveMaintenance: activeMaintenance,
	}, nil
}

func (s *reconcilerService) resolveReferenceDate(referenceDate string) (string, error) {
	if referenceDate == "" {
		return s.now().Format(utils.DateLayout), nil
	}
	if _, err := utils.ParseDate(referenceDate); err != nil {
		return "", domain.ErrInvalidDateRange
	}
	return referenceDate, nil
}
