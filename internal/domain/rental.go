package domain

// Rental binds one vehicle to one client for an inclusive [StartDate, EndDate]
// calendar-date range. TotalCost is computed once at registration (or re-priced
// on an explicit edit) and never recalculated from live vehicle rates.
type Rental struct {
	ID         int32   `json:"id"`
	StartDate  string  `json:"start_date"`
	EndDate    string  `json:"end_date"`
	TotalCost  float64 `json:"total_cost"`
	ClientID   int32   `json:"client_id"`
	VehicleID  int32   `json:"vehicle_id"`
	EmployeeID *int32  `json:"employee_id,omitempty"`
	CreatedOn  string  `json:"created_on"`
}
