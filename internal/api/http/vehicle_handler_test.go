package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"rentafleet-backend/internal/domain"
)

func TestVehicleHandler_CheckAvailability(t *testing.T) {
	t.Run("Available", func(t *testing.T) {
		vehicleSvc := new(MockVehicleService)
		availability := new(MockAvailabilityService)
		handler := NewVehicleHandler(vehicleSvc, availability)

		availability.On("IsVehicleAvailable", mock.Anything, int32(1), "2025-05-01", "2025-05-03").Return(true, nil)
		availability.On("IsVehicleInMaintenance", mock.Anything, int32(1), "2025-05-01", "2025-05-03").Return(false, nil)

		req := httptest.NewRequest(http.MethodGet, "/api/v1/vehicles/1/availability?start=2025-05-01&end=2025-05-03", nil)
		req = mux.SetURLVars(req, map[string]string{"id": "1"})
		rec := httptest.NewRecorder()
		handler.CheckAvailability(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)

		var resp struct {
			Data availabilityResponse `json:"data"`
		}
		assert.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
		assert.True(t, resp.Data.Available)
		assert.False(t, resp.Data.InMaintenance)
	})

	t.Run("Blocked by maintenance", func(t *testing.T) {
		vehicleSvc := new(MockVehicleService)
		availability := new(MockAvailabilityService)
		handler := NewVehicleHandler(vehicleSvc, availability)

		availability.On("IsVehicleAvailable", mock.Anything, int32(1), "2025-05-01", "2025-05-03").Return(false, nil)
		availability.On("IsVehicleInMaintenance", mock.Anything, int32(1), "2025-05-01", "2025-05-03").Return(true, nil)

		req := httptest.NewRequest(http.MethodGet, "/api/v1/vehicles/1/availability?start=2025-05-01&end=2025-05-03", nil)
		req = mux.SetURLVars(req, map[string]string{"id": "1"})
		rec := httptest.NewRecorder()
		handler.CheckAvailability(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)

		var resp struct {
			Data availabilityResponse `json:"data"`
		}
		assert.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
		assert.False(t, resp.Data.Available)
		assert.True(t, resp.Data.InMaintenance)
	})

	t.Run("Missing query parameters", func(t *testing.T) {
		vehicleSvc := new(MockVehicleService)
		availability := new(MockAvailabilityService)
		handler := NewVehicleHandler(vehicleSvc, availability)

		req := httptest.NewRequest(http.MethodGet, "/api/v1/vehicles/1/availability", nil)
		req = mux.SetURLVars(req, map[string]string{"id": "1"})
		rec := httptest.NewRecorder()
		handler.CheckAvailability(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		availability.AssertNotCalled(t, "IsVehicleAvailable", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestVehicleHandler_Create(t *testing.T) {
	t.Run("Valid plate formats accepted", func(t *testing.T) {
		for _, plate := range []string{"ABC-123", "AB-123-CD", "abc-123"} {
			vehicleSvc := new(MockVehicleService)
			handler := NewVehicleHandler(vehicleSvc, new(MockAvailabilityService))
			vehicleSvc.On("CreateVehicle", mock.Anything, mock.AnythingOfType("*domain.Vehicle")).Return(nil)

			rec := postJSON(t, handler.Create, "/api/v1/vehicles", map[string]any{
				"plate":      plate,
				"make":       "Toyota",
				"model":      "Corolla",
				"category":   "SEDAN",
				"daily_rate": 5000,
			})
			assert.Equal(t, http.StatusCreated, rec.Code, "plate %q should be accepted", plate)
		}
	})

	t.Run("Bad plate rejected", func(t *testing.T) {
		vehicleSvc := new(MockVehicleService)
		handler := NewVehicleHandler(vehicleSvc, new(MockAvailabilityService))

		rec := postJSON(t, handler.Create, "/api/v1/vehicles", map[string]any{
			"plate":      "NOT A PLATE",
			"make":       "Toyota",
			"model":      "Corolla",
			"daily_rate": 5000,
		})
		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		vehicleSvc.AssertNotCalled(t, "CreateVehicle", mock.Anything, mock.Anything)
	})

	t.Run("Duplicate plate surfaces as 409", func(t *testing.T) {
		vehicleSvc := new(MockVehicleService)
		handler := NewVehicleHandler(vehicleSvc, new(MockAvailabilityService))
		vehicleSvc.On("CreateVehicle", mock.Anything, mock.AnythingOfType("*domain.Vehicle")).
			Return(&domain.IntegrityError{Constraint: "vehicles_plate_key"})

		rec := postJSON(t, handler.Create, "/api/v1/vehicles", map[string]any{
			"plate":      "ABC-123",
			"make":       "Toyota",
			"model":      "Corolla",
			"daily_rate": 5000,
		})
		assert.Equal(t, http.StatusConflict, rec.Code)
	})
}
