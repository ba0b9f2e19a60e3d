package repository

import (
	"context"

	"rentafleet-backend/internal/domain"
)

type ClientRepository interface {
	Create(ctx context.Context, client *domain.Client) error
	GetByID(ctx context.Context, id int32) (*domain.Client, error)
	List(ctx context.Context) ([]domain.Client, error)
	Update(ctx context.Context, client *domain.Client) error
	Delete(ctx context.Context, id int32) error
}

type EmployeeRepository interface {
	Create(ctx context.Context, employee *domain.Employee) error
	GetByID(ctx context.Context, id int32) (*domain.Employee, error)
	GetByEmail(ctx context.Context, email string) (*domain.Employee, error)
	List(ctx context.Context) ([]domain.Employee, error)
	Update(ctx context.Context, employee *domain.Employee) error
	Delete(ctx context.Context, id int32) error
}

type VehicleRepository interface {
	Create(ctx context.Context, vehicle *domain.Vehicle) error
	GetByID(ctx context.Context, id int32) (*domain.Vehicle, error)
	GetByPlate(ctx context.Context, plate string) (*domain.Vehicle, error)
	List(ctx context.Context) ([]domain.Vehicle, error)
	Update(ctx context.Context, vehicle *domain.Vehicle) error
	UpdateStatus(ctx context.Context, id int32, status domain.VehicleStatus) error
	Delete(ctx context.Context, id int32) error
}

type RentalRepository interface {
	// Create inserts a rental without touching the vehicle row. Used by tests
	// and data repair; the registration path goes through CreateWithStatus.
	Create(ctx context.Context, rental *domain.Rental) error
	// CreateWithStatus inserts a rental and applies the vehicle status change
	// in one serializable transaction, re-checking the overlap inside the
	// transaction so two concurrent registrations cannot both pass the
	// availability check. A nil newStatus leaves the vehicle row untouched.
	CreateWithStatus(ctx context.Context, rental *domain.Rental, newStatus *domain.VehicleStatus) error
	GetByID(ctx context.Context, id int32) (*domain.Rental, error)
	List(ctx context.Context) ([]domain.Rental, error)
	ListByVehicle(ctx context.Context, vehicleID int32) ([]domain.Rental, error)
	ListByClient(ctx context.Context, clientID int32) ([]domain.Rental, error)
	Update(ctx context.Context, rental *domain.Rental) error
	Delete(ctx context.Context, id int32) error
	// CountOverlapping counts rentals for the vehicle whose inclusive interval
	// overlaps [start, end] under the non-strict rule. excludeID skips one
	// rental (the one being edited); pass 0 to count all.
	CountOverlapping(ctx context.Context, vehicleID int32, start, end string, excludeID int32) (int32, error)
	// CountActiveOn counts rentals containing the reference date,
	// i.e. start_date <= ref <= end_date.
	CountActiveOn(ctx context.Context, vehicleID int32, refDate string) (int32, error)
}

type MaintenanceRepository interface {
	Create(ctx context.Context, m *domain.Maintenance) error
	GetByID(ctx context.Context, id int32) (*domain.Maintenance, error)
	List(ctx context.Context) ([]domain.Maintenance, error)
	ListByVehicle(ctx context.Context, vehicleID int32) ([]domain.Maintenance, error)
	Update(ctx context.Context, m *domain.Maintenance) error
	Delete(ctx context.Context, id int32) error
	CountOverlapping(ctx context.Context, vehicleID int32, start, end string) (int32, error)
	// CountActiveOn counts maintenance windows not yet finished on the
	// reference date (end_date >= ref). A window scheduled to start in the
	// future already counts as active.
	CountActiveOn(ctx context.Context, vehicleID int32, refDate string) (int32, error)
}

type FineRepository interface {
	Create(ctx context.Context, fine *domain.Fine) error
	GetByID(ctx context.Context, id int32) (*domain.Fine, error)
	ListByRental(ctx context.Context, rentalID int32) ([]domain.Fine, error)
	Update(ctx context.Context, fine *domain.Fine) error
	Delete(ctx context.Context, id int32) error
}

type ReportRepository interface {
	RentalsByClient(ctx context.Context) ([]domain.ClientRentalSummary, error)
	ClientRentalDetail(ctx context.Context, clientID int32) ([]domain.ClientRentalDetail, error)
	MostRentedVehicles(ctx context.Context) ([]domain.VehicleUsageSummary, error)
	RevenueByPeriod(ctx context.Context, period string) ([]domain.RevenuePeriod, error)
	DashboardStats(ctx context.Context) (*domain.DashboardStats, error)
}
