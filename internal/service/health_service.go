package service

import (
	"context"

	"schoolfeedback/internal/repository"
)

type Health struct {
	Status string `json:"status"`
	Tables int    `json:"tables"`
}

type HealthService interface {
	Check(ctx context.Context) (*Health, error)
}

type healthService struct {
	db         Pinger
	schemaRepo repository.SchemaRepository
}

func NewHealthService(db Pinger, schemaRepo repository.SchemaRepository) HealthService {
	return &healthService{db: db, schemaRepo: schemaRepo}
}

func (h *healthService) Check(ctx context.Context) (*Health, error) {
	if err := h.db.HealthCheck(ctx); err != nil {
		return nil, err
	}

	tables, err := h.schemaRepo.CountTables(ctx)
	if err != nil {
		return nil, err
	}

	return &Health{Status: "ok", Tables: tables}, nil
}
