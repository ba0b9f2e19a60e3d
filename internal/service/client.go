package service

import (
	"context"

	"rentafleet-backend/internal/domain"
	"rentafleet-backend/internal/repository"
)

type clientService struct {
	clientRepo repository.ClientRepository
}

func NewClientService(clientRepo repository.ClientRepository) ClientService {
	return &clientService{clientRepo: clientRepo}
}

func (s *clientService) CreateClient(ctx context.Context, client *domain.Client) error {
	return s.clientRepo.Create(ctx, client)
}

func (s *clientService) GetClient(ctx context.Context, id int32) (*domain.Client, error) {
	return s.clientRepo.GetByID(ctx, id)
}

func (s *clientService) ListClients(ctx context.Context) ([]domain.Client, error) {
	return s.clientRepo.List(ctx)
}

func (s *clientService) UpdateClient(ctx context.Context, client *domain.Client) error {
	return s.clientRepo.Update(ctx, client)
}

// DeleteClient removes a client. The FK RESTRICT on rentals makes the store
// reject clients with rental history; the IntegrityError passes through.
func (s *clientService) DeleteClient(ctx context.Context, id int32) error {
	return s.clientRepo.Delete(ctx, id)
}
