package domain

// StatusTransition records one vehicle whose status changed during a
// reconciliation pass.
type StatusTransition struct {
	VehicleID         int32         `json:"vehicle_id"`
	Plate             string        `json:"plate"`
	OldStatus         VehicleStatus `json:"old_status"`
	NewStatus         VehicleStatus `json:"new_status"`
	ActiveRentals     int32         `json:"active_rentals"`
	ActiveMaintenance int32         `json:"active_maintenance"`
}

// ReconciliationReport summarizes one full pass of the status reconciler.
type ReconciliationReport struct {
	ReferenceDate string             `json:"reference_date"`
	Transitions   []StatusTransition `json:"transitions"`
	Unchanged     int32              `json:"unchanged"`
}

// ClientRentalSummary is one row of the rentals-per-client report.
type ClientRentalSummary struct {
	ClientID     int32   `json:"client_id"`
	ClientName   string  `json:"client_name"`
	TotalRentals int32   `json:"total_rentals"`
	TotalBilled  float64 `json:"total_billed"`
}

// ClientRentalDetail is one row of a single client's rental history.
type ClientRentalDetail struct {
	RentalID     int32   `json:"rental_id"`
	StartDate    string  `json:"start_date"`
	EndDate      string  `json:"end_date"`
	TotalCost    float64 `json:"total_cost"`
	Vehicle      string  `json:"vehicle"`
	EmployeeName *string `json:"employee_name,omitempty"`
}

// VehicleUsageSummary is one row of the most-rented-vehicles report.
type VehicleUsageSummary struct {
	VehicleID   int32   `json:"vehicle_id"`
	Plate       string  `json:"plate"`
	Description string  `json:"description"`
	TimesRented int32   `json:"times_rented"`
	TotalBilled float64 `json:"total_billed"`
}

// RevenuePeriod is one bucket of the revenue-by-period report.
type RevenuePeriod struct {
	Period      string  `json:"period"`
	Rentals     int32   `json:"rentals"`
	TotalBilled float64 `json:"total_billed"`
}

// DashboardStats carries the headline counters for the landing view.
type DashboardStats struct {
	Clients     int32   `json:"clients"`
	Vehicles    int32   `json:"vehicles"`
	Employees   int32   `json:"employees"`
	Rentals     int32   `json:"rentals"`
	TotalBilled float64 `json:"total_billed"`
}
