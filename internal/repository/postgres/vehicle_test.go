package postgres

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"

	"rentafleet-backend/internal/domain"
)

func TestVehicleRepository_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := NewVehicleRepository(db)
	ctx := context.Background()

	t.Run("Plate normalized before insert", func(t *testing.T) {
		vehicle := &domain.Vehicle{
			Plate:     " abc-123 ",
			Make:      "Toyota",
			Model:     "Corolla",
			Category:  "SEDAN",
			DailyRate: 5000,
		}

		mock.ExpectQuery("INSERT INTO vehicles").
			WithArgs("ABC-123", "Toyota", "Corolla", "SEDAN", 5000.0, domain.VehicleStatusAvailable, nil).
			WillReturnRows(sqlmock.NewRows([]string{"id", "created_on"}).AddRow(1, "2025-01-01T00:00:00Z"))

		err := repo.Create(ctx, vehicle)
		assert.NoError(t, err)
		assert.Equal(t, "ABC-123", vehicle.Plate)
		assert.Equal(t, domain.VehicleStatusAvailable, vehicle.Status)
	})

	t.Run("Duplicate plate", func(t *testing.T) {
		vehicle := &domain.Vehicle{Plate: "ABC-123", Make: "Toyota", Model: "Corolla"}

		mock.ExpectQuery("INSERT INTO vehicles").
			WithArgs("ABC-123", "Toyota", "Corolla", "", 0.0, domain.VehicleStatusAvailable, nil).
			WillReturnError(&pq.Error{Code: "23505", Constraint: "vehicles_plate_key"})

		err := repo.Create(ctx, vehicle)

		var integrityErr *domain.IntegrityError
		assert.ErrorAs(t, err, &integrityErr)
		assert.Equal(t, "vehicles_plate_key", integrityErr.Constraint)
	})
}

func TestVehicleRepository_GetByPlate(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := NewVehicleRepository(db)
	ctx := context.Background()

	rows := sqlmock.NewRows([]string{"id", "plate", "make", "model", "category", "daily_rate", "status", "last_maintenance_date", "created_on"}).
		AddRow(1, "ABC-123", "Toyota", "Corolla", "SEDAN", 5000.0, "AVAILABLE", nil, "2025-01-01T00:00:00Z")

	// Lookup uppercases the plate so case does not matter to callers.
	mock.ExpectQuery(`SELECT (.+) FROM vehicles WHERE plate = \$1`).
		WithArgs("ABC-123").
		WillReturnRows(rows)

	vehicle, err := repo.GetByPlate(ctx, "abc-123")
	assert.NoError(t, err)
	assert.Equal(t, int32(1), vehicle.ID)
	assert.Nil(t, vehicle.LastMaintenanceDate)
}

func TestVehicleRepository_UpdateStatus(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := NewVehicleRepository(db)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		mock.ExpectExec("UPDATE vehicles SET status").
			WithArgs(domain.VehicleStatusRented, int32(1)).
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, repo.UpdateStatus(ctx, 1, domain.VehicleStatusRented))
	})

	t.Run("Missing vehicle", func(t *testing.T) {
		mock.ExpectExec("UPDATE vehicles SET status").
			WithArgs(domain.VehicleStatusRented, int32(99)).
			WillReturnResult(sqlmock.NewResult(0, 0))

		assert.ErrorIs(t, repo.UpdateStatus(ctx, 99, domain.VehicleStatusRented), domain.ErrVehicleNotFound)
	})
}

func TestVehicleRepository_Delete(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := NewVehicleRepository(db)
	ctx := context.Background()

	t.Run("Blocked by rental reference", func(t *testing.T) {
		mock.ExpectExec("DELETE FROM vehicles").
			WithArgs(int32(1)).
			WillReturnError(&pq.Error{Code: "23503", Constraint: "rentals_vehicle_id_fkey"})

		err := repo.Delete(ctx, 1)

		var integrityErr *domain.IntegrityError
		assert.ErrorAs(t, err, &integrityErr)
		assert.Equal(t, "rentals_vehicle_id_fkey", integrityErr.Constraint)
	})
}
