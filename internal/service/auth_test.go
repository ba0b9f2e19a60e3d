package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"

	"rentafleet-backend/internal/domain"
	"rentafleet-backend/internal/security"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func TestAuthService_Login(t *testing.T) {
	ctx := context.Background()
	tokens := security.NewTokenManager(testSecret, time.Hour, 24*time.Hour)

	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret-pass"), bcrypt.DefaultCost)
	assert.NoError(t, err)
	employee := &domain.Employee{
		ID:           1,
		Email:        "admin@test.com",
		Role:         "admin",
		PasswordHash: string(hash),
	}

	t.Run("Success", func(t *testing.T) {
		employeeRepo := new(MockEmployeeRepo)
		employeeRepo.On("GetByEmail", ctx, "admin@test.com").Return(employee, nil)
		svc := NewAuthService(employeeRepo, tokens)

		access, refresh, err := svc.Login(ctx, "admin@test.com", "s3cret-pass")
		assert.NoError(t, err)
		assert.NotEmpty(t, access)
		assert.NotEmpty(t, refresh)

		claims, err := tokens.ValidateToken(access)
		assert.NoError(t, err)
		assert.Equal(t, int32(1), claims.EmployeeID)
		assert.Equal(t, security.TokenTypeAccess, claims.Type)
	})

	t.Run("Wrong password", func(t *testing.T) {
		employeeRepo := new(MockEmployeeRepo)
		employeeRepo.On("GetByEmail", ctx, "admin@test.com").Return(employee, nil)
		svc := NewAuthService(employeeRepo, tokens)

		_, _, err := svc.Login(ctx, "admin@test.com", "wrong")
		assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	})

	t.Run("Unknown email", func(t *testing.T) {
		employeeRepo := new(MockEmployeeRepo)
		employeeRepo.On("GetByEmail", ctx, "nobody@test.com").Return(nil, domain.ErrEmployeeNotFound)
		svc := NewAuthService(employeeRepo, tokens)

		_, _, err := svc.Login(ctx, "nobody@test.com", "whatever")
		// Lookup failures collapse into invalid credentials so the endpoint
		// does not reveal which emails exist.
		assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	})

	t.Run("Account without password", func(t *testing.T) {
		employeeRepo := new(MockEmployeeRepo)
		employeeRepo.On("GetByEmail", ctx, "seed@test.com").Return(&domain.Employee{ID: 2, Email: "seed@test.com"}, nil)
		svc := NewAuthService(employeeRepo, tokens)

		_, _, err := svc.Login(ctx, "seed@test.com", "")
		assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	})
}

func TestAuthService_Refresh(t *testing.T) {
	ctx := context.Background()
	tokens := security.NewTokenManager(testSecret, time.Hour, 24*time.Hour)
	employee := &domain.Employee{ID: 1, Email: "admin@test.com", Role: "admin"}

	t.Run("Success", func(t *testing.T) {
		employeeRepo := new(MockEmployeeRepo)
		employeeRepo.On("GetByID", ctx, int32(1)).Return(employee, nil)
		svc := NewAuthService(employeeRepo, tokens)

		refreshToken, err := tokens.GenerateRefreshToken(1, "admin@test.com")
		assert.NoError(t, err)

		access, refresh, err := svc.Refresh(ctx, refreshToken)
		assert.NoError(t, err)
		assert.NotEmpty(t, access)
		assert.NotEmpty(t, refresh)
	})

	t.Run("Access token rejected", func(t *testing.T) {
		employeeRepo := new(MockEmployeeRepo)
		svc := NewAuthService(employeeRepo, tokens)

		accessToken, err := tokens.GenerateAccessToken(1, "admin@test.com", "admin")
		assert.NoError(t, err)

		_, _, err = svc.Refresh(ctx, accessToken)
		assert.ErrorIs(t, err, security.ErrWrongTokenType)
	})

	t.Run("Garbage token rejected", func(t *testing.T) {
		employeeRepo := new(MockEmployeeRepo)
		svc := NewAuthService(employeeRepo, tokens)

		_, _, err := svc.Refresh(ctx, "not.a.token")
		assert.Error(t, err)
	})
}
