package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"rentafleet-backend/internal/domain"
	"rentafleet-backend/internal/repository"
)

type reportRepository struct {
	db *sql.DB
}

func NewReportRepository(db *sql.DB) repository.ReportRepository {
	return &reportRepository{db: db}
}

func (r *reportRepository) RentalsByClient(ctx context.Context) ([]domain.ClientRentalSummary, error) {
	query := `
	SELECT c.id,
	       c.first_name || ' ' || c.last_name AS client_name,
	       COUNT(rt.id) AS total_rentals,
	       COALESCE(SUM(rt.total_cost), 0) AS total_billed
	FROM clients c
	LEFT JOIN rentals rt ON rt.client_id = c.id
	GROUP BY c.id, c.first_name, c.last_name
	ORDER BY total_rentals DESC, client_name`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var summaries []domain.ClientRentalSummary
	for rows.Next() {
		var s domain.ClientRentalSummary
		if err := rows.Scan(&s.ClientID, &s.ClientName, &s.TotalRentals, &s.TotalBilled); err != nil {
			return nil, err
		}
		summaries = append(summaries, s)
	}
	return summaries, rows.Err()
}

func (r *reportRepository) ClientRentalDetail(ctx context.Context, clientID int32) ([]domain.ClientRentalDetail, error) {
	query := `
	SELECT rt.id, rt.start_date, rt.end_date, rt.total_cost,
	       v.plate || ' - ' || v.make || ' ' || v.model AS vehicle,
	       e.first_name || ' ' || e.last_name AS employee_name
	FROM rentals rt
	JOIN vehicles v ON rt.vehicle_id = v.id
	LEFT JOIN employees e ON rt.employee_id = e.id
	WHERE rt.client_id = $1
	ORDER BY rt.start_date DESC`
	rows, err := r.db.QueryContext(ctx, query, clientID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var details []domain.ClientRentalDetail
	for rows.Next() {
		var d domain.ClientRentalDetail
		if err := rows.Scan(&d.RentalID, &d.StartDate, &d.EndDate, &d.TotalCost, &d.Vehicle, &d.EmployeeName); err != nil {
			return nil, err
		}
		details = append(details, d)
	}
	return details, rows.Err()
}

func (r *reportRepository) MostRentedVehicles(ctx context.Context) ([]domain.VehicleUsageSummary, error) {
	query := `
	SELECT v.id, v.plate,
	       v.make || ' ' || v.model AS description,
	       COUNT(rt.id) AS times_rented,
	       COALESCE(SUM(rt.total_cost), 0) AS total_billed
	FROM vehicles v
	LEFT JOIN rentals rt ON rt.vehicle_id = v.id
	GROUP BY v.id, v.plate, v.make, v.model
	ORDER BY times_rented DESC, total_billed DESC`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var summaries []domain.VehicleUsageSummary
	for rows.Next() {
		var s domain.VehicleUsageSummary
		if err := rows.Scan(&s.VehicleID, &s.Plate, &s.Description, &s.TimesRented, &s.TotalBilled); err != nil {
			return nil, err
		}
		summaries = append(summaries, s)
	}
	return summaries, rows.Err()
}

func (r *reportRepository) RevenueByPeriod(ctx context.Context, period string) ([]domain.RevenuePeriod, error) {
	var bucket string
	switch period {
	case "month", "":
		bucket = `to_char(start_date, 'YYYY-MM')`
	case "quarter":
		bucket = `to_char(start_date, 'YYYY') || '-Q' || to_char(start_date, 'Q')`
	case "year":
		bucket = `to_char(start_date, 'YYYY')`
	default:
		return nil, fmt.Errorf("unknown period %q, expected month, quarter or year", period)
	}

	query := `
	SELECT ` + bucket + ` AS period,
	       COUNT(*) AS rentals,
	       COALESCE(SUM(total_cost), 0) AS total_billed
	FROM rentals
	GROUP BY period
	ORDER BY period`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var periods []domain.RevenuePeriod
	for rows.Next() {
		var p domain.RevenuePeriod
		if err := rows.Scan(&p.Period, &p.Rentals, &p.TotalBilled); err != nil {
			return nil, err
		}
		periods = append(periods, p)
	}
	return periods, rows.Err()
}

func (r *reportRepository) DashboardStats(ctx context.Context) (*domain.DashboardStats, error) {
	stats := &domain.DashboardStats{}
	query := `
	SELECT (SELECT COUNT(*) FROM clients),
	       (SELECT COUNT(*) FROM vehicles),
	       (SELECT COUNT(*) FROM employees),
	       (SELECT COUNT(*) FROM rentals),
	       COALESCE((SELECT SUM(total_cost) FROM rentals), 0)`
	err := r.db.QueryRowContext(ctx, query).
		Scan(&stats.Clients, &stats.Vehicles, &stats.Employees, &stats.Rentals, &stats.TotalBilled)
	if err != nil {
		return nil, err
	}
	return stats, nil
}
