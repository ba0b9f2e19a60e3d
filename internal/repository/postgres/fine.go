package postgres

import (
	"context"
	"database/sql"
	"errors"

	"rentafleet-backend/internal/domain"
	"rentafleet-backend/internal/repository"
)

type fineRepository struct {
	db *sql.DB
}

func NewFineRepository(db *sql.DB) repository.FineRepository {
	return &fineRepository{db: db}
}

func (r *fineRepository) Create(ctx context.Context, f *domain.Fine) error {
	query := `INSERT INTO fines (rental_id, description, amount) VALUES ($1, $2, $3) RETURNING id, created_on`
	err := r.db.QueryRowContext(ctx, query, f.RentalID, f.Description, f.Amount).Scan(&f.ID, &f.CreatedOn)
	return mapConstraintError(err)
}

func (r *fineRepository) GetByID(ctx context.Context, id int32) (*domain.Fine, error) {
	f := &domain.Fine{}
	query := `SELECT id, rental_id, description, amount, created_on FROM fines WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).
		Scan(&f.ID, &f.RentalID, &f.Description, &f.Amount, &f.CreatedOn)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrFineNotFound
	}
	if err != nil {
		return nil, err
	}
	return f, nil
}

func (r *fineRepository) ListByRental(ctx context.Context, rentalID int32) ([]domain.Fine, error) {
	query := `SELECT id, rental_id, description, amount, created_on FROM fines WHERE rental_id = $1 ORDER BY id`
	rows, err := r.db.QueryContext(ctx, query, rentalID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var fines []domain.Fine
	for rows.Next() {
		var f domain.Fine
		if err := rows.Scan(&f.ID, &f.RentalID, &f.Description, &f.Amount, &f.CreatedOn); err != nil {
			return nil, err
		}
		fines = append(fines, f)
	}
	return fines, rows.Err()
}

func (r *fineRepository) Update(ctx context.Context, f *domain.Fine) error {
	res, err := r.db.ExecContext(ctx, `UPDATE fines SET description=$1, amount=$2 WHERE id=$3`, f.Description, f.Amount, f.ID)
	if err != nil {
		return err
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrFineNotFound
	}
	return nil
}

func (r *fineRepository) Delete(ctx context.Context, id int32) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM fines WHERE id = $1`, id)
	if err != nil {
		return err
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrFineNotFound
	}
	return nil
}
