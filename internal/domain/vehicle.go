package domain

import "strings"

type VehicleStatus string

const (
	VehicleStatusAvailable   VehicleStatus = "AVAILABLE"
	VehicleStatusRented      VehicleStatus = "RENTED"
	VehicleStatusMaintenance VehicleStatus = "MAINTENANCE"
)

// Is compares statuses case-insensitively. Rows migrated from older systems may
// carry lowercase or mixed-case values, so equality on the raw string is not safe.
func (s VehicleStatus) Is(other VehicleStatus) bool {
	return strings.EqualFold(string(s), string(other))
}

type VehicleCategory string

const (
	VehicleCategorySedan     VehicleCategory = "SEDAN"
	VehicleCategoryHatchback VehicleCategory = "HATCHBACK"
	VehicleCategoryPickup    VehicleCategory = "PICKUP"
	VehicleCategorySUV       VehicleCategory = "SUV"
	VehicleCategoryVan       VehicleCategory = "VAN"
)

type Vehicle struct {
	ID                  int32         `json:"id"`
	Plate               string        `json:"plate"`
	Make                string        `json:"make"`
	Model               string        `json:"model"`
	Category            string        `json:"category"`
	DailyRate           float64       `json:"daily_rate"`
	Status              VehicleStatus `json:"status"`
	LastMaintenanceDate *string       `json:"last_maintenance_date,omitempty"`
	CreatedOn           string        `json:"created_on"`
}

// NormalizePlate uppercases and trims a plate so the unique index treats
// "abc-123" and "ABC-123" as the same vehicle.
func NormalizePlate(plate string) string {
	return strings.ToUpper(strings.TrimSpace(plate))
}
