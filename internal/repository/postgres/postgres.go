package postgres

import (
	"database/sql"
	"errors"

	"rentafleet-backend/internal/domain"
	"rentafleet-backend/internal/repository"

	"github.com/lib/pq"
)

type Store struct {
	db *sql.DB
	repository.ClientRepository
	repository.EmployeeRepository
	repository.VehicleRepository
	repository.RentalRepository
	repository.MaintenanceRepository
	repository.FineRepository
	repository.ReportRepository
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db:                    db,
		ClientRepository:      NewClientRepository(db),
		EmployeeRepository:    NewEmployeeRepository(db),
		VehicleRepository:     NewVehicleRepository(db),
		RentalRepository:      NewRentalRepository(db),
		MaintenanceRepository: NewMaintenanceRepository(db),
		FineRepository:        NewFineRepository(db),
		ReportRepository:      NewReportRepository(db),
	}
}

// Postgres error classes for constraint violations.
const (
	pqClassForeignKeyViolation = "23503"
	pqClassUniqueViolation     = "23505"
	pqClassExclusionViolation  = "23P01"
)

// mapConstraintError converts lib/pq constraint violations into
// domain.IntegrityError so callers never see driver internals.
func mapConstraintError(err error) error {
	if err == nil {
		return nil
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch string(pqErr.Code) {
		case pqClassForeignKeyViolation, pqClassUniqueViolation, pqClassExclusionViolation:
			return &domain.IntegrityError{Constraint: pqErr.Constraint, Err: errors.New(pqErr.Message)}
		}
	}
	return err
}
