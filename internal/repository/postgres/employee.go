package postgres

import (
	"context"
	"database/sql"
	"errors"

	"rentafleet-backend/internal/domain"
	"rentafleet-backend/internal/repository"
)

type employeeRepository struct {
	db *sql.DB
}

func NewEmployeeRepository(db *sql.DB) repository.EmployeeRepository {
	return &employeeRepository{db: db}
}

func (r *employeeRepository) Create(ctx context.Context, e *domain.Employee) error {
	query := `INSERT INTO employees (first_name, last_name, national_id, role, phone, email, password_hash)
	          VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id, created_on`
	err := r.db.QueryRowContext(ctx, query, e.FirstName, e.LastName, e.NationalID, e.Role, e.Phone, e.Email, e.PasswordHash).
		Scan(&e.ID, &e.CreatedOn)
	return mapConstraintError(err)
}

func (r *employeeRepository) GetByID(ctx context.Context, id int32) (*domain.Employee, error) {
	e := &domain.Employee{}
	query := `SELECT id, first_name, last_name, national_id, role, phone, email, password_hash, created_on FROM employees WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).
		Scan(&e.ID, &e.FirstName, &e.LastName, &e.NationalID, &e.Role, &e.Phone, &e.Email, &e.PasswordHash, &e.CreatedOn)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrEmployeeNotFound
	}
	if err != nil {
		return nil, err
	}
	return e, nil
}

func (r *employeeRepository) GetByEmail(ctx context.Context, email string) (*domain.Employee, error) {
	e := &domain.Employee{}
	query := `SELECT id, first_name, last_name, national_id, role, phone, email, password_hash, created_on FROM employees WHERE email = $1`
	err := r.db.QueryRowContext(ctx, query, email).
		Scan(&e.ID, &e.FirstName, &e.LastName, &e.NationalID, &e.Role, &e.Phone, &e.Email, &e.PasswordHash, &e.CreatedOn)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrEmployeeNotFound
	}
	if err != nil {
		return nil, err
	}
	return e, nil
}

func (r *employeeRepository) List(ctx context.Context) ([]domain.Employee, error) {
	query := `SELECT id, first_name, last_name, national_id, role, phone, email, password_hash, created_on
	          FROM employees ORDER BY last_name, first_name`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var employees []domain.Employee
	for rows.Next() {
		var e domain.Employee
		if err := rows.Scan(&e.ID, &e.FirstName, &e.LastName, &e.NationalID, &e.Role, &e.Phone, &e.Email, &e.PasswordHash, &e.CreatedOn); err != nil {
			return nil, err
		}
		employees = append(employees, e)
	}
	return employees, rows.Err()
}

func (r *employeeRepository) Update(ctx context.Context, e *domain.Employee) error {
	query := `UPDATE employees SET first_name=$1, last_name=$2, national_id=$3, role=$4, phone=$5, email=$6, password_hash=$7 WHERE id=$8`
	res, err := r.db.ExecContext(ctx, query, e.FirstName, e.LastName, e.NationalID, e.Role, e.Phone, e.Email, e.PasswordHash, e.ID)
	if err != nil {
		return mapConstraintError(err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrEmployeeNotFound
	}
	return nil
}

// Delete removes an employee. Rentals that reference the employee keep
// existing with a nulled employee_id (FK ON DELETE SET NULL).
func (r *employeeRepository) Delete(ctx context.Context, id int32) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM employees WHERE id = $1`, id)
	if err != nil {
		return mapConstraintError(err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrEmployeeNotFound
	}
	return nil
}
