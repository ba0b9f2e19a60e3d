package service

import (
	"context"

	"rentafleet-backend/internal/domain"
)

type AuthService interface {
	Login(ctx context.Context, email, password string) (string, string, error) // access, refresh
	Refresh(ctx context.Context, refreshToken string) (string, string, error)
}

type ClientService interface {
	CreateClient(ctx context.Context, client *domain.Client) error
	GetClient(ctx context.Context, id int32) (*domain.Client, error)
	ListClients(ctx context.Context) ([]domain.Client, error)
	UpdateClient(ctx context.Context, client *domain.Client) error
	DeleteClient(ctx context.Context, id int32) error
}

type EmployeeService interface {
	CreateEmployee(ctx context.Context, employee *domain.Employee, password string) error
	GetEmployee(ctx context.Context, id int32) (*domain.Employee, error)
	ListEmployees(ctx context.Context) ([]domain.Employee, error)
	UpdateEmployee(ctx context.Context, employee *domain.Employee) error
	DeleteEmployee(ctx context.Context, id int32) error
}

type VehicleService interface {
	CreateVehicle(ctx context.Context, vehicle *domain.Vehicle) error
	GetVehicle(ctx context.Context, id int32) (*domain.Vehicle, error)
	ListVehicles(ctx context.Context) ([]domain.Vehicle, error)
	UpdateVehicle(ctx context.Context, vehicle *domain.Vehicle) error
	DeleteVehicle(ctx context.Context, id int32) error
}

// AvailabilityService answers interval-conflict questions for one vehicle.
// Both checks use the non-strict overlap rule: intervals conflict unless one
// ends strictly before the other starts.
type AvailabilityService interface {
	IsVehicleAvailable(ctx context.Context, vehicleID int32, start, end string) (bool, error)
	IsVehicleInMaintenance(ctx context.Context, vehicleID int32, start, end string) (bool, error)
}

type RentalService interface {
	// RegisterRental validates referenced entities and vehicle state, prices
	// the rental, persists it and flips the vehicle to RENTED when the rental
	// has already started. All writes happen in one transaction.
	RegisterRental(ctx context.Context, start, end string, clientID, vehicleID int32, employeeID *int32) (*domain.Rental, error)
	GetRental(ctx context.Context, id int32) (*domain.Rental, error)
	ListRentals(ctx context.Context) ([]domain.Rental, error)
	ListRentalsByClient(ctx context.Context, clientID int32) ([]domain.Rental, error)
	// UpdateRental re-validates and re-prices an existing rental. The overlap
	// check ignores the rental's own current interval.
	UpdateRental(ctx context.Context, rental *domain.Rental) (*domain.Rental, error)
	// DeleteRental removes a rental (fines cascade) and re-derives the
	// vehicle's status from the remaining records.
	DeleteRental(ctx context.Context, id int32) error
}

// ReconcilerService recomputes vehicle statuses from stored rental and
// maintenance intervals relative to a reference date.
type ReconcilerService interface {
	// ReconcileVehicleStatuses runs the full batch pass. An empty
	// referenceDate means "today". Idempotent: a second run with the same
	// data and date reports no transitions.
	ReconcileVehicleStatuses(ctx context.Context, referenceDate string) (*domain.ReconciliationReport, error)
	// ReconcileVehicle derives and persists the authoritative status of a
	// single vehicle, returning the derived status.
	ReconcileVehicle(ctx context.Context, vehicleID int32, referenceDate string) (domain.VehicleStatus, error)
}

type MaintenanceService interface {
	CreateMaintenance(ctx context.Context, m *domain.Maintenance) error
	GetMaintenance(ctx context.Context, id int32) (*domain.Maintenance, error)
	ListMaintenances(ctx context.Context) ([]domain.Maintenance, error)
	ListMaintenancesByVehicle(ctx context.Context, vehicleID int32) ([]domain.Maintenance, error)
	UpdateMaintenance(ctx context.Context, m *domain.Maintenance) error
	DeleteMaintenance(ctx context.Context, id int32) error
}

type FineService interface {
	CreateFine(ctx context.Context, fine *domain.Fine) error
	GetFine(ctx context.Context, id int32) (*domain.Fine, error)
	ListFinesByRental(ctx context.Context, rentalID int32) ([]domain.Fine, error)
	UpdateFine(ctx context.Context, fine *domain.Fine) error
	DeleteFine(ctx context.Context, id int32) error
}

type ReportService interface {
	RentalsByClient(ctx context.Context) ([]domain.ClientRentalSummary, error)
	ClientRentalDetail(ctx context.Context, clientID int32) ([]domain.ClientRentalDetail, error)
	MostRentedVehicles(ctx context.Context) ([]domain.VehicleUsageSummary, error)
	RevenueByPeriod(ctx context.Context, period string) ([]domain.RevenuePeriod, error)
	DashboardStats(ctx context.Context) (*domain.DashboardStats, error)
}

type EmailService interface {
	SendRentalConfirmation(ctx context.Context, toEmail, toName, plate, startDate, endDate string, totalCost float64) error
}
