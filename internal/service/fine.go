package service

import (
	"context"

	"rentafleet-backend/internal/domain"
	"rentafleet-backend/internal/repository"
)

type fineService struct {
	fineRepo   repository.FineRepository
	rentalRepo repository.RentalRepository
}

func NewFineService(fineRepo repository.FineRepository, rentalRepo repository.RentalRepository) FineService {
	return &fineService{fineRepo: fineRepo, rentalRepo: rentalRepo}
}

func (s *fineService) CreateFine(ctx context.Context, fine *domain.Fine) error {
	if _, err := s.rentalRepo.GetByID(ctx, fine.RentalID); err != nil {
		return err
	}
	return s.fineRepo.Create(ctx, fine)
}

func (s *fineService) GetFine(ctx context.Context, id int32) (*domain.Fine, error) {
	return s.fineRepo.GetByID(ctx, id)
}

func (s *fineService) ListFinesByRental(ctx context.Context, rentalID int32) ([]domain.Fine, error) {
	return s.fineRepo.ListByRental(ctx, rentalID)
}

func (s *fineService) UpdateFine(ctx context.Context, fine *domain.Fine) error {
	return s.fineRepo.Update(ctx, fine)
}

func (s *fineService) DeleteFine(ctx context.Context, id int32) error {
	return s.fineRepo.Delete(ctx, id)
}
