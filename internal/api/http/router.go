package http

import (
	"net/http"

	"github.com/gorilla/mux"

	"rentafleet-backend/internal/security"
	"rentafleet-backend/internal/service"
)

// RouterDeps bundles the services the API needs.
type RouterDeps struct {
	TokenManager security.TokenManager
	Auth         service.AuthService
	Clients      service.ClientService
	Employees    service.EmployeeService
	Vehicles     service.VehicleService
	Availability service.AvailabilityService
	Rentals      service.RentalService
	Maintenances service.MaintenanceService
	Fines        service.FineService
	Reports      service.ReportService
	Reconciler   service.ReconcilerService
}

// NewRouter builds the full API surface. Everything under /api/v1 except
// login/refresh and the health check requires a valid access token.
func NewRouter(deps RouterDeps) *mux.Router {
	authHandler := NewAuthHandler(deps.Auth)
	clientHandler := NewClientHandler(deps.Clients)
	employeeHandler := NewEmployeeHandler(deps.Employees)
	vehicleHandler := NewVehicleHandler(deps.Vehicles, deps.Availability)
	rentalHandler := NewRentalHandler(deps.Rentals)
	maintenanceHandler := NewMaintenanceHandler(deps.Maintenances)
	fineHandler := NewFineHandler(deps.Fines)
	reportHandler := NewReportHandler(deps.Reports, deps.Reconciler)

	r := mux.NewRouter()
	r.Use(RequestIDMiddleware, LoggingMiddleware)

	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
	}).Methods(http.MethodGet)

	api := r.PathPrefix("/api/v1").Subrouter()
	api.HandleFunc("/auth/login", authHandler.Login).Methods(http.MethodPost)
	api.HandleFunc("/auth/refresh", authHandler.Refresh).Methods(http.MethodPost)

	protected := api.NewRoute().Subrouter()
	protected.Use(AuthMiddleware(deps.TokenManager))

	protected.HandleFunc("/clients", clientHandler.Create).Methods(http.MethodPost)
	protected.HandleFunc("/clients", clientHandler.List).Methods(http.MethodGet)
	protected.HandleFunc("/clients/{id:[0-9]+}", clientHandler.Get).Methods(http.MethodGet)
	protected.HandleFunc("/clients/{id:[0-9]+}", clientHandler.Update).Methods(http.MethodPut)
	protected.HandleFunc("/clients/{id:[0-9]+}", clientHandler.Delete).Methods(http.MethodDelete)
	protected.HandleFunc("/clients/{client_id:[0-9]+}/rentals", rentalHandler.ListByClient).Methods(http.MethodGet)

	protected.HandleFunc("/employees", employeeHandler.Create).Methods(http.MethodPost)
	protected.HandleFunc("/employees", employeeHandler.List).Methods(http.MethodGet)
	protected.HandleFunc("/employees/{id:[0-9]+}", employeeHandler.Get).Methods(http.MethodGet)
	protected.HandleFunc("/employees/{id:[0-9]+}", employeeHandler.Update).Methods(http.MethodPut)
	protected.HandleFunc("/employees/{id:[0-9]+}", employeeHandler.Delete).Methods(http.MethodDelete)

	protected.HandleFunc("/vehicles", vehicleHandler.Create).Methods(http.MethodPost)
	protected.HandleFunc("/vehicles", vehicleHandler.List).Methods(http.MethodGet)
	protected.HandleFunc("/vehicles/{id:[0-9]+}", vehicleHandler.Get).Methods(http.MethodGet)
	protected.HandleFunc("/vehicles/{id:[0-9]+}", vehicleHandler.Update).Methods(http.MethodPut)
	protected.HandleFunc("/vehicles/{id:[0-9]+}", vehicleHandler.Delete).Methods(http.MethodDelete)
	protected.HandleFunc("/vehicles/{id:[0-9]+}/availability", vehicleHandler.CheckAvailability).Methods(http.MethodGet)
	protected.HandleFunc("/vehicles/{vehicle_id:[0-9]+}/maintenances", maintenanceHandler.ListByVehicle).Methods(http.MethodGet)

	protected.HandleFunc("/rentals", rentalHandler.Register).Methods(http.MethodPost)
	protected.HandleFunc("/rentals", rentalHandler.List).Methods(http.MethodGet)
	protected.HandleFunc("/rentals/{id:[0-9]+}", rentalHandler.Get).Methods(http.MethodGet)
	protected.HandleFunc("/rentals/{id:[0-9]+}", rentalHandler.Update).Methods(http.MethodPut)
	protected.HandleFunc("/rentals/{id:[0-9]+}", rentalHandler.Delete).Methods(http.MethodDelete)
	protected.HandleFunc("/rentals/{rental_id:[0-9]+}/fines", fineHandler.ListByRental).Methods(http.MethodGet)

	protected.HandleFunc("/maintenances", maintenanceHandler.Create).Methods(http.MethodPost)
	protected.HandleFunc("/maintenances", maintenanceHandler.List).Methods(http.MethodGet)
	protected.HandleFunc("/maintenances/{id:[0-9]+}", maintenanceHandler.Get).Methods(http.MethodGet)
	protected.HandleFunc("/maintenances/{id:[0-9]+}", maintenanceHandler.Update).Methods(http.MethodPut)
	protected.HandleFunc("/maintenances/{id:[0-9]+}", maintenanceHandler.Delete).Methods(http.MethodDelete)

	protected.HandleFunc("/fines", fineHandler.Create).Methods(http.MethodPost)
	protected.HandleFunc("/fines/{id:[0-9]+}", fineHandler.Get).Methods(http.MethodGet)
	protected.HandleFunc("/fines/{id:[0-9]+}", fineHandler.Update).Methods(http.MethodPut)
	protected.HandleFunc("/fines/{id:[0-9]+}", fineHandler.Delete).Methods(http.MethodDelete)

	protected.HandleFunc("/reports/rentals-by-client", reportHandler.RentalsByClient).Methods(http.MethodGet)
	protected.HandleFunc("/reports/clients/{client_id:[0-9]+}/rentals", reportHandler.ClientRentalDetail).Methods(http.MethodGet)
	protected.HandleFunc("/reports/most-rented-vehicles", reportHandler.MostRentedVehicles).Methods(http.MethodGet)
	protected.HandleFunc("/reports/revenue", reportHandler.RevenueByPeriod).Methods(http.MethodGet)
	protected.HandleFunc("/reports/dashboard", reportHandler.DashboardStats).Methods(http.MethodGet)
	protected.HandleFunc("/reconcile", reportHandler.Reconcile).Methods(http.MethodPost)

	return r
}
