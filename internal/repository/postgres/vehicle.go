package postgres

import (
	"context"
	"database/sql"
	"errors"

	"rentafleet-backend/internal/domain"
	"rentafleet-backend/internal/repository"
)

type vehicleRepository struct {
	db *sql.DB
}

func NewVehicleRepository(db *sql.DB) repository.VehicleRepository {
	return &vehicleRepository{db: db}
}

func (r *vehicleRepository) Create(ctx context.Context, v *domain.Vehicle) error {
	v.Plate = domain.NormalizePlate(v.Plate)
	if v.Status == "" {
		v.Status = domain.VehicleStatusAvailable
	}
	query := `INSERT INTO vehicles (plate, make, model, category, daily_rate, status, last_maintenance_date)
	          VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id, created_on`
	err := r.db.QueryRowContext(ctx, query, v.Plate, v.Make, v.Model, v.Category, v.DailyRate, v.Status, v.LastMaintenanceDate).
		Scan(&v.ID, &v.CreatedOn)
	return mapConstraintError(err)
}

func (r *vehicleRepository) GetByID(ctx context.Context, id int32) (*domain.Vehicle, error) {
	v := &domain.Vehicle{}
	query := `SELECT id, plate, make, model, category, daily_rate, status, last_maintenance_date, created_on FROM vehicles WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).
		Scan(&v.ID, &v.Plate, &v.Make, &v.Model, &v.Category, &v.DailyRate, &v.Status, &v.LastMaintenanceDate, &v.CreatedOn)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrVehicleNotFound
	}
	if err != nil {
		return nil, err
	}
	return v, nil
}

func (r *vehicleRepository) GetByPlate(ctx context.Context, plate string) (*domain.Vehicle, error) {
	v := &domain.Vehicle{}
	query := `SELECT id, plate, make, model, category, daily_rate, status, last_maintenance_date, created_on FROM vehicles WHERE plate = $1`
	err := r.db.QueryRowContext(ctx, query, domain.NormalizePlate(plate)).
		Scan(&v.ID, &v.Plate, &v.Make, &v.Model, &v.Category, &v.DailyRate, &v.Status, &v.LastMaintenanceDate, &v.CreatedOn)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrVehicleNotFound
	}
	if err != nil {
		return nil, err
	}
	return v, nil
}

func (r *vehicleRepository) List(ctx context.Context) ([]domain.Vehicle, error) {
	query := `SELECT id, plate, make, model, category, daily_rate, status, last_maintenance_date, created_on
	          FROM vehicles ORDER BY make, model`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var vehicles []domain.Vehicle
	for rows.Next() {
		var v domain.Vehicle
		if err := rows.Scan(&v.ID, &v.Plate, &v.Make, &v.Model, &v.Category, &v.DailyRate, &v.Status, &v.LastMaintenanceDate, &v.CreatedOn); err != nil {
			return nil, err
		}
		vehicles = append(vehicles, v)
	}
	return vehicles, rows.Err()
}

func (r *vehicleRepository) Update(ctx context.Context, v *domain.Vehicle) error {
	v.Plate = domain.NormalizePlate(v.Plate)
	query := `UPDATE vehicles SET plate=$1, make=$2, model=$3, category=$4, daily_rate=$5, status=$6, last_maintenance_date=$7 WHERE id=$8`
	res, err := r.db.ExecContext(ctx, query, v.Plate, v.Make, v.Model, v.Category, v.DailyRate, v.Status, v.LastMaintenanceDate, v.ID)
	if err != nil {
		return mapConstraintError(err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrVehicleNotFound
	}
	return nil
}

func (r *vehicleRepository) UpdateStatus(ctx context.Context, id int32, status domain.VehicleStatus) error {
	res, err := r.db.ExecContext(ctx, `UPDATE vehicles SET status = $1 WHERE id = $2`, status, id)
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
	return nil
}

func (r *vehicleRepository) Delete(ctx context.Context, id int32) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM vehicles WHERE id = $1`, id)
	if err != nil {
		// FK RESTRICT on rentals; maintenance rows cascade away.
		return mapConstraintError(err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrVehicleNotFound
	}
	return nil
}
