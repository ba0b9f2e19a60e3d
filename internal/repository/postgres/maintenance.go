package postgres

import (
	"context"
	"database/sql"
	"errors"

	"rentafleet-backend/internal/domain"
	"rentafleet-backend/internal/repository"
)

type maintenanceRepository struct {
	db *sql.DB
}

func NewMaintenanceRepository(db *sql.DB) repository.MaintenanceRepository {
	return &maintenanceRepository{db: db}
}

const maintenanceColumns = `id, vehicle_id, start_date, end_date, category, cost, notes, created_on`

// Create inserts a maintenance window and stamps the vehicle's
// last_maintenance_date in the same transaction.
func (r *maintenanceRepository) Create(ctx context.Context, m *domain.Maintenance) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	err = tx.QueryRowContext(ctx,
		`INSERT INTO maintenances (vehicle_id, start_date, end_date, category, cost, notes)
		 VALUES ($1, $2, $3, $4, $5, $6) RETURNING id, created_on`,
		m.VehicleID, m.StartDate, m.EndDate, m.Category, m.Cost, m.Notes).
		Scan(&m.ID, &m.CreatedOn)
	if err != nil {
		return mapConstraintError(err)
	}

	res, err := tx.ExecContext(ctx,
		`UPDATE vehicles SET last_maintenance_date = $1 WHERE id = $2`, m.EndDate, m.VehicleID)
	if err != nil {
		return err
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrVehicleNotFound
	}

	return tx.Commit()
}

func (r *maintenanceRepository) GetByID(ctx context.Context, id int32) (*domain.Maintenance, error) {
	m := &domain.Maintenance{}
	query := `SELECT ` + maintenanceColumns + ` FROM maintenances WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).
		Scan(&m.ID, &m.VehicleID, &m.StartDate, &m.EndDate, &m.Category, &m.Cost, &m.Notes, &m.CreatedOn)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrMaintenanceNotFound
	}
	if err != nil {
		return nil, err
	}
	return m, nil
}

func (r *maintenanceRepository) List(ctx context.Context) ([]domain.Maintenance, error) {
	return r.queryMaintenances(ctx, `SELECT `+maintenanceColumns+` FROM maintenances ORDER BY start_date DESC`)
}

func (r *maintenanceRepository) ListByVehicle(ctx context.Context, vehicleID int32) ([]domain.Maintenance, error) {
	return r.queryMaintenances(ctx, `SELECT `+maintenanceColumns+` FROM maintenances WHERE vehicle_id = $1 ORDER BY start_date`, vehicleID)
}

func (r *maintenanceRepository) queryMaintenances(ctx context.Context, query string, args ...interface{}) ([]domain.Maintenance, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []domain.Maintenance
	for rows.Next() {
		var m domain.Maintenance
		if err := rows.Scan(&m.ID, &m.VehicleID, &m.StartDate, &m.EndDate, &m.Category, &m.Cost, &m.Notes, &m.CreatedOn); err != nil {
			return nil, err
		}
		records = append(records, m)
	}
	return records, rows.Err()
}

func (r *maintenanceRepository) Update(ctx context.Context, m *domain.Maintenance) error {
	query := `UPDATE maintenances SET start_date=$1, end_date=$2, category=$3, cost=$4, notes=$5 WHERE id=$6`
	res, err := r.db.ExecContext(ctx, query, m.StartDate, m.EndDate, m.Category, m.Cost, m.Notes, m.ID)
	if err != nil {
		return mapConstraintError(err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrMaintenanceNotFound
	}
	return nil
}

func (r *maintenanceRepository) Delete(ctx context.Context, id int32) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM maintenances WHERE id = $1`, id)
	if err != nil {
		return err
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrMaintenanceNotFound
	}
	return nil
}

func (r *maintenanceRepository) CountOverlapping(ctx context.Context, vehicleID int32, start, end string) (int32, error) {
	var count int32
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM maintenances WHERE vehicle_id = $1 AND NOT (end_date < $2 OR start_date > $3)`,
		vehicleID, start, end).Scan(&count)
	if err != nil {
		return 0, err
	}
	return count, nil
}

// CountActiveOn counts windows not yet finished on the reference date. The
// start date is deliberately not checked: a scheduled window blocks the
// vehicle from the moment it is recorded.
func (r *maintenanceRepository) CountActiveOn(ctx context.Context, vehicleID int32, refDate string) (int32, error) {
	var count int32
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM maintenances WHERE vehicle_id = $1 AND end_date >= $2`,
		vehicleID, refDate).Scan(&count)
	if err != nil {
		return 0, err
	}
	return count, nil
}
