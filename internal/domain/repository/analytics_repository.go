package repository

import "context"

// AnalyticsRepository consultas read-only de agregados para el dashboard.
type AnalyticsRepository interface {
	CountEnquiries(ctx context.Context) (int64, error)
	CountEnquiriesByStatus(ctx context.Context) (map[string]int64, error)
	CountFranchises(ctx context.Context) (int64, error)
	// CountActiveFranchises cuenta franquicias con contrato aceptado.
	CountActiveFranchises(ctx context.Context) (int64, error)
	CountUsers(ctx context.Context) (int64, error)
}
