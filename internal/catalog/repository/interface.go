package repository

import (
	"context"

	"estimator_backend/internal/catalog/domain"
)

// Provider is the read side of the catalog store. Each read returns an
// empty slice, never an error, when nothing matches the filter.
type Provider interface {
	ListToolHire(ctx context.Context, filter domain.Filter) ([]domain.ToolHireItem, error)
	ListLaborCosts(ctx context.Context, filter domain.Filter) ([]domain.LaborCost, error)
	ListMaterialCosts(ctx context.Context, filter domain.Filter) ([]domain.MaterialCost, error)
	ListBuildingRegulations(ctx context.Context, filter domain.Filter) ([]domain.BuildingRegulation, error)
	ListRegionalMultipliers(ctx context.Context) (domain.RegionalMultipliers, error)
}
