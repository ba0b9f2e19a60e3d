package service

import (
	"context"

	"rentafleet-backend/internal/domain"
	"rentafleet-backend/internal/repository"
)

type reportService struct {
	reportRepo repository.ReportRepository
}

func NewReportService(reportRepo repository.ReportRepository) ReportService {
	return &reportService{reportRepo: reportRepo}
}

func (s *reportService) RentalsByClient(ctx context.Context) ([]domain.ClientRentalSummary, error) {
	return s.reportRepo.RentalsByClient(ctx)
}

func (s *reportService) ClientRentalDetail(ctx context.Context, clientID int32) ([]domain.ClientRentalDetail, error) {
	return s.reportRepo.ClientRentalDetail(ctx, clientID)
}

func (s *reportService) MostRentedVehicles(ctx context.Context) ([]domain.VehicleUsageSummary, error) {
	return s.reportRepo.MostRentedVehicles(ctx)
}

func (s *reportService) RevenueByPeriod(ctx context.Context, period string) ([]domain.RevenuePeriod, error) {
	return s.reportRepo.RevenueByPeriod(ctx, period)
}

func (s *reportService) DashboardStats(ctx context.Context) (*domain.DashboardStats, error) {
	return s.reportRepo.DashboardStats(ctx)
}
