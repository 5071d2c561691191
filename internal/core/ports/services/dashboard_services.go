package services

import (
	"context"

	"github.com/yalejo-dev/gyie_backend/internal/dto"
)

// DashboardSvcFacade projects ledger entries into the dashboard table shape.
type DashboardSvcFacade interface {
	// ProjectForDisplay builds the initial-load view over the whole
	// ledger, with dot-grouped totals.
	ProjectForDisplay(ctx context.Context) (*dto.DashboardResponse, error)

	// Project builds the refreshed view for a filtered subset, with raw
	// totals.
	Project(ctx context.Context, criteria dto.FilterCriteria) (*dto.FilteredDashboardResponse, error)
}
