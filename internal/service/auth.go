package service

import (
	"context"

	"golang.org/x/crypto/bcrypt"

	"rentafleet-backend/internal/domain"
	"rentafleet-backend/internal/repository"
	"rentafleet-backend/internal/security"
)

type authService struct {
	employeeRepo repository.EmployeeRepository
	tokens       security.TokenManager
}

func NewAuthService(employeeRepo repository.EmployeeRepository, tokens security.TokenManager) AuthService {
	return &authService{
		employeeRepo: employeeRepo,
		tokens:       tokens,
	}
}

func (s *authService) Login(ctx context.Context, email, password string) (string, string, error) {
	employee, err := s.employeeRepo.GetByEmail(ctx, email)
	if err != nil {
		return "", "", domain.ErrInvalidCredentials
	}

	if employee.PasswordHash == "" {
		// Seeded or imported accounts without a password cannot log in until
		// an administrator sets one.
		return "", "", domain.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(employee.PasswordHash), []byte(password)); err != nil {
		return "", "", domain.ErrInvalidCredentials
	}

	return s.generateTokens(employee)
}

func (s *authService) Refresh(ctx context.Context, refreshToken string) (string, string, error) {
	claims, err := s.tokens.ValidateToken(refreshToken)
	if err != nil {
		return "", "", err
	}
	if claims.Type != security.TokenTypeRefresh {
		return "", "", security.ErrWrongTokenType
	}

	employee, err := s.employeeRepo.GetByID(ctx, claims.EmployeeID)
	if err != nil {
		return "", "", domain.ErrInvalidCredentials
	}

	return s.generateTokens(employee)
}

func (s *authService) generateTokens(employee *domain.Employee) (string, string, error) {
	access, err := s.tokens.GenerateAccessToken(employee.ID, employee.Email, employee.Role)
	if err != nil {
		return "", "", err
	}
	refresh, err := s.tokens.GenerateRefreshToken(employee.ID, employee.Email)
	if err != nil {
		return "", "", err
	}
	return access, refresh, nil
}
