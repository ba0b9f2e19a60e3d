package domain

type MaintenanceCategory string

const (
	MaintenanceCategoryPreventive MaintenanceCategory = "PREVENTIVE"
	MaintenanceCategoryCorrective MaintenanceCategory = "CORRECTIVE"
)

type Maintenance struct {
	ID        int32               `json:"id"`
	VehicleID int32               `json:"vehicle_id"`
	StartDate string              `json:"start_date"`
	EndDate   string              `json:"end_date"`
	Category  MaintenanceCategory `json:"category"`
	Cost      float64             `json:"cost"`
	Notes     string              `json:"notes"`
	CreatedOn string              `json:"created_on"`
}
