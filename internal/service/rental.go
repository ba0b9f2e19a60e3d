package service

import (
	"context"
	"time"

	"rentafleet-backend/internal/domain"
	"rentafleet-backend/internal/logger"
	"rentafleet-backend/internal/repository"
	"rentafleet-backend/internal/utils"
)

type rentalService struct {
	rentalRepo      repository.RentalRepository
	clientRepo      repository.ClientRepository
	employeeRepo    repository.EmployeeRepository
	vehicleRepo     repository.VehicleRepository
	maintenanceRepo repository.MaintenanceRepository
	availability    AvailabilityService
	emailSvc        EmailService
	now             func() time.Time
}

func NewRentalService(
	rentalRepo repository.RentalRepository,
	clientRepo repository.ClientRepository,
	employeeRepo repository.EmployeeRepository,
	vehicleRepo repository.VehicleRepository,
	maintenanceRepo repository.MaintenanceRepository,
	availability AvailabilityService,
	emailSvc EmailService,
) RentalService {
	return &rentalService{
		rentalRepo:      rentalRepo,
		clientRepo:      clientRepo,
		employeeRepo:    employeeRepo,
		vehicleRepo:     vehicleRepo,
		maintenanceRepo: maintenanceRepo,
		availability:    availability,
		emailSvc:        emailSvc,
		now:             time.Now,
	}
}

func (s *rentalService) RegisterRental(ctx context.Context, start, end string, clientID, vehicleID int32, employeeID *int32) (*domain.Rental, error) {
	// Validation is fail-fast in a fixed order so callers get the most
	// specific error first and nothing is written on failure.
	client, err := s.clientRepo.GetByID(ctx, clientID)
	if err != nil {
		return nil, err
	}

	if employeeID != nil {
		if _, err := s.employeeRepo.GetByID(ctx, *employeeID); err != nil {
			return nil, err
		}
	}

	vehicle, err := s.vehicleRepo.GetByID(ctx, vehicleID)
	if err != nil {
		return nil, err
	}

	if !vehicle.Status.Is(domain.VehicleStatusAvailable) {
		return nil, &domain.VehicleStatusError{Status: vehicle.Status}
	}

	available, err := s.availability.IsVehicleAvailable(ctx, vehicleID, start, end)
	if err != nil {
		return nil, err
	}
	if !available {
		inMaintenance, err := s.availability.IsVehicleInMaintenance(ctx, vehicleID, start, end)
		if err != nil {
			return nil, err
		}
		kind := domain.ConflictRental
		if inMaintenance {
			kind = domain.ConflictMaintenance
		}
		return nil, &domain.PeriodConflictError{Kind: kind}
	}

	cost, err := utils.ComputeRentalCost(vehicle.DailyRate, start, end)
	if err != nil {
		return nil, err
	}

	rental := &domain.Rental{
		StartDate:  start,
		EndDate:    end,
		TotalCost:  cost,
		ClientID:   clientID,
		VehicleID:  vehicleID,
		EmployeeID: employeeID,
	}

	// A rental that has already started flips the vehicle to RENTED now.
	// Future rentals leave it AVAILABLE; the nightly reconciler picks the
	// transition up on or after the start date.
	var newStatus *domain.VehicleStatus
	startDate, _ := utils.ParseDate(start)
	if !startDate.After(s.today()) {
		status := domain.VehicleStatusRented
		newStatus = &status
	}

	if err := s.rentalRepo.CreateWithStatus(ctx, rental, newStatus); err != nil {
		return nil, err
	}

	if s.emailSvc != nil && client.Email != "" {
		// Best effort: a failed confirmation email never fails the rental.
		if err := s.emailSvc.SendRentalConfirmation(ctx, client.Email, client.FirstName, vehicle.Plate, start, end, cost); err != nil {
			logger.Warn("Failed to send rental confirmation", "rental_id", rental.ID, "error", err)
		}
	}

	return rental, nil
}

func (s *rentalService) GetRental(ctx context.Context, id int32) (*domain.Rental, error) {
	return s.rentalRepo.GetByID(ctx, id)
}

func (s *rentalService) ListRentals(ctx context.Context) ([]domain.Rental, error) {
	return s.rentalRepo.List(ctx)
}

func (s *rentalService) ListRentalsByClient(ctx context.Context, clientID int32) ([]domain.Rental, error) {
	return s.rentalRepo.ListByClient(ctx, clientID)
}

func (s *rentalService) UpdateRental(ctx context.Context, rental *domain.Rental) (*domain.Rental, error) {
	existing, err := s.rentalRepo.GetByID(ctx, rental.ID)
	if err != nil {
		return nil, err
	}

	if _, err := s.clientRepo.GetByID(ctx, rental.ClientID); err != nil {
		return nil, err
	}
	if rental.EmployeeID != nil {
		if _, err := s.employeeRepo.GetByID(ctx, *rental.EmployeeID); err != nil {
			return nil, err
		}
	}
	vehicle, err := s.vehicleRepo.GetByID(ctx, rental.VehicleID)
	if err != nil {
		return nil, err
	}

	if err := s.checkPeriodExcluding(ctx, rental.VehicleID, rental.StartDate, rental.EndDate, rental.ID); err != nil {
		return nil, err
	}

	cost, err := utils.ComputeRentalCost(vehicle.DailyRate, rental.StartDate, rental.EndDate)
	if err != nil {
		return nil, err
	}
	rental.TotalCost = cost

	if err := s.rentalRepo.Update(ctx, rental); err != nil {
		return nil, err
	}

	// The edit may have moved the rental off its vehicle or out of "today",
	// so both affected vehicles get their status re-derived.
	s.repairVehicleStatus(ctx, existing.VehicleID)
	if rental.VehicleID != existing.VehicleID {
		s.repairVehicleStatus(ctx, rental.VehicleID)
	}

	return rental, nil
}

func (s *rentalService) DeleteRental(ctx context.Context, id int32) error {
	rental, err := s.rentalRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.rentalRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.repairVehicleStatus(ctx, rental.VehicleID)
	return nil
}

// checkPeriodExcluding applies the overlap rule against all rentals for the
// vehicle except the one being edited, then against maintenance windows.
func (s *rentalService) checkPeriodExcluding(ctx context.Context, vehicleID int32, start, end string, excludeID int32) error {
	startDate, err := utils.ParseDate(start)
	if err != nil {
		return domain.ErrInvalidDateRange
	}
	endDate, err := utils.ParseDate(end)
	if err != nil {
		return domain.ErrInvalidDateRange
	}

	others, err := s.rentalRepo.ListByVehicle(ctx, vehicleID)
	if err != nil {
		return err
	}
	for _, other := range others {
		if other.ID == excludeID {
			continue
		}
		otherStart, err := utils.ParseDate(other.StartDate)
		if err != nil {
			return err
		}
		otherEnd, err := utils.ParseDate(other.EndDate)
		if err != nil {
			return err
		}
		if utils.Overlaps(startDate, endDate, otherStart, otherEnd) {
			return &domain.PeriodConflictError{Kind: domain.ConflictRental}
		}
	}

	maintenances, err := s.maintenanceRepo.CountOverlapping(ctx, vehicleID, start, end)
	if err != nil {
		return err
	}
	if maintenances > 0 {
		return &domain.PeriodConflictError{Kind: domain.ConflictMaintenance}
	}
	return nil
}

// repairVehicleStatus re-derives one vehicle's status from its remaining
// rental and maintenance records. Failures are logged, not propagated: the
// status is a derived value and the next reconciliation pass self-heals it.
func (s *rentalService) repairVehicleStatus(ctx context.Context, vehicleID int32) {
	today := s.today().Format(utils.DateLayout)

	vehicle, err := s.vehicleRepo.GetByID(ctx, vehicleID)
	if err != nil {
		logger.Warn("Status repair: vehicle lookup failed", "vehicle_id", vehicleID, "error", err)
		return
	}

	activeRentals, err := s.rentalRepo.CountActiveOn(ctx, vehicleID, today)
	if err != nil {
		logger.Warn("Status repair: rental count failed", "vehicle_id", vehicleID, "error", err)
		return
	}
	activeMaintenance, err := s.maintenanceRepo.CountActiveOn(ctx, vehicleID, today)
	if err != nil {
		logger.Warn("Status repair: maintenance count failed", "vehicle_id", vehicleID, "error", err)
		return
	}

	desired := desiredVehicleStatus(activeRentals, activeMaintenance)
	if vehicle.Status.Is(desired) {
		return
	}
	if err := s.vehicleRepo.UpdateStatus(ctx, vehicleID, desired); err != nil {
		logger.Warn("Status repair: update failed", "vehicle_id", vehicleID, "error", err)
	}
}

func (s *rentalService) today() time.Time {
	return s.now().Truncate(24 * time.Hour)
}
