package service

import (
	"context"

	"digiraksha/internal/repository"
)

type HealthService interface {
	// CountTables pings the database by counting its public tables.
	CountTables(ctx context.Context) (int, error)
}

type healthService struct {
	tablesRepo repository.TablesRepository
}

func NewHealthService(tablesRepo repository.TablesRepository) HealthService {
	return &healthService{tablesRepo: tablesRepo}
}

func (h *healthService) CountTables(ctx context.Context) (int, error) {
	return h.tablesRepo.CountTablesDB(ctx)
}
