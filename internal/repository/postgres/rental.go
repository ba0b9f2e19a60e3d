package postgres

import (
	"context"
	"database/sql"
	"errors"

	"rentafleet-backend/internal/domain"
	"rentafleet-backend/internal/repository"
)

type rentalRepository struct {
	db *sql.DB
}

func NewRentalRepository(db *sql.DB) repository.RentalRepository {
	return &rentalRepository{db: db}
}

const rentalColumns = `id, start_date, end_date, total_cost, client_id, vehicle_id, employee_id, created_on`

// The non-strict overlap rule: two inclusive intervals conflict unless one
// ends strictly before the other begins.
const overlapCondition = `NOT (end_date < $2 OR start_date > $3)`

func (r *rentalRepository) Create(ctx context.Context, rt *domain.Rental) error {
	query := `INSERT INTO rentals (start_date, end_date, total_cost, client_id, vehicle_id, employee_id)
	          VALUES ($1, $2, $3, $4, $5, $6) RETURNING id, created_on`
	err := r.db.QueryRowContext(ctx, query, rt.StartDate, rt.EndDate, rt.TotalCost, rt.ClientID, rt.VehicleID, rt.EmployeeID).
		Scan(&rt.ID, &rt.CreatedOn)
	return mapConstraintError(err)
}

func (r *rentalRepository) CreateWithStatus(ctx context.Context, rt *domain.Rental, newStatus *domain.VehicleStatus) error {
	// Serializable so the overlap re-check and the insert are atomic with
	// respect to concurrent registrations for the same vehicle. The exclusion
	// constraint on rentals is the backstop if two transactions still race.
	tx, err := r.db.BeginTx(ctx, &sql.TxOptions{Isolation: sql.LevelSerializable})
	if err != nil {
		return err
	}
	defer tx.Rollback()

	var conflicts int32
	err = tx.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM rentals WHERE vehicle_id = $1 AND `+overlapCondition,
		rt.VehicleID, rt.StartDate, rt.EndDate).Scan(&conflicts)
	if err != nil {
		return err
	}
	if conflicts > 0 {
		return &domain.PeriodConflictError{Kind: domain.ConflictRental}
	}

	err = tx.QueryRowContext(ctx,
		`INSERT INTO rentals (start_date, end_date, total_cost, client_id, vehicle_id, employee_id)
		 VALUES ($1, $2, $3, $4, $5, $6) RETURNING id, created_on`,
		rt.StartDate, rt.EndDate, rt.TotalCost, rt.ClientID, rt.VehicleID, rt.EmployeeID).
		Scan(&rt.ID, &rt.CreatedOn)
	if err != nil {
		return mapConstraintError(err)
	}

	if newStatus != nil {
		if _, err := tx.ExecContext(ctx, `UPDATE vehicles SET status = $1 WHERE id = $2`, *newStatus, rt.VehicleID); err != nil {
			return err
		}
	}

	return tx.Commit()
}

func (r *rentalRepository) GetByID(ctx context.Context, id int32) (*domain.Rental, error) {
	rt := &domain.Rental{}
	query := `SELECT ` + rentalColumns + ` FROM rentals WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).
		Scan(&rt.ID, &rt.StartDate, &rt.EndDate, &rt.TotalCost, &rt.ClientID, &rt.VehicleID, &rt.EmployeeID, &rt.CreatedOn)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrRentalNotFound
	}
	if err != nil {
		return nil, err
	}
	return rt, nil
}

func (r *rentalRepository) List(ctx context.Context) ([]domain.Rental, error) {
	return r.queryRentals(ctx, `SELECT `+rentalColumns+` FROM rentals ORDER BY start_date DESC`)
}

func (r *rentalRepository) ListByVehicle(ctx context.Context, vehicleID int32) ([]domain.Rental, error) {
	return r.queryRentals(ctx, `SELECT `+rentalColumns+` FROM rentals WHERE vehicle_id = $1 ORDER BY start_date`, vehicleID)
}

func (r *rentalRepository) ListByClient(ctx context.Context, clientID int32) ([]domain.Rental, error) {
	return r.queryRentals(ctx, `SELECT `+rentalColumns+` FROM rentals WHERE client_id = $1 ORDER BY start_date DESC`, clientID)
}

func (r *rentalRepository) queryRentals(ctx context.Context, query string, args ...interface{}) ([]domain.Rental, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var rentals []domain.Rental
	for rows.Next() {
		var rt domain.Rental
		if err := rows.Scan(&rt.ID, &rt.StartDate, &rt.EndDate, &rt.TotalCost, &rt.ClientID, &rt.VehicleID, &rt.EmployeeID, &rt.CreatedOn); err != nil {
			return nil, err
		}
		rentals = append(rentals, rt)
	}
	return rentals, rows.Err()
}

func (r *rentalRepository) Update(ctx context.Context, rt *domain.Rental) error {
	query := `UPDATE rentals SET start_date=$1, end_date=$2, total_cost=$3, client_id=$4, vehicle_id=$5, employee_id=$6 WHERE id=$7`
	res, err := r.db.ExecContext(ctx, query, rt.StartDate, rt.EndDate, rt.TotalCost, rt.ClientID, rt.VehicleID, rt.EmployeeID, rt.ID)
	if err != nil {
		return mapConstraintError(err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrRentalNotFound
	}
	return nil
}

// Delete removes a rental; its fines cascade away at the database level.
func (r *rentalRepository) Delete(ctx context.Context, id int32) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM rentals WHERE id = $1`, id)
	if err != nil {
		return mapConstraintError(err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrRentalNotFound
	}
	return nil
}

func (r *rentalRepository) CountOverlapping(ctx context.Context, vehicleID int32, start, end string, excludeID int32) (int32, error) {
	query := `SELECT COUNT(*) FROM rentals WHERE vehicle_id = $1 AND ` + overlapCondition
	args := []interface{}{vehicleID, start, end}
	if excludeID != 0 {
		query += ` AND id <> $4`
		args = append(args, excludeID)
	}

	var count int32
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

func (r *rentalRepository) CountActiveOn(ctx context.Context, vehicleID int32, refDate string) (int32, error) {
	var count int32
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM rentals WHERE vehicle_id = $1 AND start_date <= $2 AND end_date >= $2`,
		vehicleID, refDate).Scan(&count)
	if err != nil {
		return 0, err
	}
	return count, nil
}
