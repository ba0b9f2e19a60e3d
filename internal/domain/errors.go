package domain

import (
	"errors"
	"fmt"
)

var (
	ErrClientNotFound      = errors.New("client not found")
	ErrEmployeeNotFound    = errors.New("employee not found")
	ErrVehicleNotFound     = errors.New("vehicle not found")
	ErrRentalNotFound      = errors.New("rental not found")
	ErrMaintenanceNotFound = errors.New("maintenance record not found")
	ErrFineNotFound        = errors.New("fine not found")

	// ErrInvalidDateRange covers both unparseable dates and end-before-start ranges.
	ErrInvalidDateRange = errors.New("end date must be on or after start date")

	ErrInvalidCredentials = errors.New("invalid email or password")
)

// VehicleStatusError is returned when a rental is attempted against a vehicle
// whose stored status is anything other than AVAILABLE. Status carries the
// actual current value so callers can explain the rejection.
type VehicleStatusError struct {
	Status VehicleStatus
}

func (e *VehicleStatusError) Error() string {
	return fmt.Sprintf("vehicle is not available for rental: current status is %s", e.Status)
}

// ConflictKind identifies what kind of interval blocked a requested period.
type ConflictKind string

const (
	ConflictRental      ConflictKind = "rental"
	ConflictMaintenance ConflictKind = "maintenance"
)

// PeriodConflictError is returned when a requested date range overlaps an
// existing rental or maintenance window for the same vehicle.
type PeriodConflictError struct {
	Kind ConflictKind
}

func (e *PeriodConflictError) Error() string {
	if e.Kind == ConflictMaintenance {
		return "vehicle has a maintenance window scheduled in the requested period"
	}
	return "vehicle is already rented in the requested period"
}

// IntegrityError wraps a database constraint violation, e.g. deleting a client
// that still has rentals, or two concurrent registrations hitting the
// no-overlap exclusion constraint.
type IntegrityError struct {
	Constraint string
	Err        error
}

func (e *IntegrityError) Error() string {
	if e.Constraint != "" {
		return fmt.Sprintf("integrity violation (%s): %v", e.Constraint, e.Err)
	}
	return fmt.Sprintf("integrity violation: %v", e.Err)
}

func (e *IntegrityError) Unwrap() error {
	return e.Err
}
