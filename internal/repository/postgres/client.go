package postgres

import (
	"context"
	"database/sql"
	"errors"

	"rentafleet-backend/internal/domain"
	"rentafleet-backend/internal/repository"
)

type clientRepository struct {
	db *sql.DB
}

func NewClientRepository(db *sql.DB) repository.ClientRepository {
	return &clientRepository{db: db}
}

func (r *clientRepository) Create(ctx context.Context, c *domain.Client) error {
	query := `INSERT INTO clients (first_name, last_name, national_id, phone, address, email)
	          VALUES ($1, $2, $3, $4, $5, $6) RETURNING id, created_on`
	err := r.db.QueryRowContext(ctx, query, c.FirstName, c.LastName, c.NationalID, c.Phone, c.Address, c.Email).
		Scan(&c.ID, &c.CreatedOn)
	return mapConstraintError(err)
}

func (r *clientRepository) GetByID(ctx context.Context, id int32) (*domain.Client, error) {
	c := &domain.Client{}
	query := `SELECT id, first_name, last_name, national_id, phone, address, email, created_on FROM clients WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).
		Scan(&c.ID, &c.FirstName, &c.LastName, &c.NationalID, &c.Phone, &c.Address, &c.Email, &c.CreatedOn)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrClientNotFound
	}
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (r *clientRepository) List(ctx context.Context) ([]domain.Client, error) {
	query := `SELECT id, first_name, last_name, national_id, phone, address, email, created_on
	          FROM clients ORDER BY last_name, first_name`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var clients []domain.Client
	for rows.Next() {
		var c domain.Client
		if err := rows.Scan(&c.ID, &c.FirstName, &c.LastName, &c.NationalID, &c.Phone, &c.Address, &c.Email, &c.CreatedOn); err != nil {
			return nil, err
		}
		clients = append(clients, c)
	}
	return clients, rows.Err()
}

func (r *clientRepository) Update(ctx context.Context, c *domain.Client) error {
	query := `UPDATE clients SET first_name=$1, last_name=$2, national_id=$3, phone=$4, address=$5, email=$6 WHERE id=$7`
	res, err := r.db.ExecContext(ctx, query, c.FirstName, c.LastName, c.NationalID, c.Phone, c.Address, c.Email, c.ID)
	if err != nil {
		return mapConstraintError(err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrClientNotFound
	}
	return nil
}

func (r *clientRepository) Delete(ctx context.Context, id int32) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM clients WHERE id = $1`, id)
	if err != nil {
		// FK RESTRICT on rentals surfaces here when the client has history.
		return mapConstraintError(err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrClientNotFound
	}
	return nil
}
