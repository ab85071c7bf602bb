package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/upl-snipe/partner-api/internal/domain/entity"
	"github.com/upl-snipe/partner-api/internal/domain/repository"
)

var _ repository.AnalyticsRepository = (*AnalyticsRepo)(nil)

// AnalyticsRepo agregados read-only para el dashboard. Siempre sobre el pool:
// las estadísticas no participan en transacciones.
type AnalyticsRepo struct {
	pool *pgxpool.Pool
}

// NewAnalyticsRepository construye el adaptador de agregados.
func NewAnalyticsRepository(pool *pgxpool.Pool) *AnalyticsRepo {
	return &AnalyticsRepo{pool: pool}
}

// CountEnquiries total de solicitudes recibidas.
func (r *AnalyticsRepo) CountEnquiries(ctx context.Context) (int64, error) {
	return r.countQuery(ctx, `SELECT COUNT(*) FROM franchise_enquiries`)
}

// CountEnquiriesByStatus desglose de solicitudes por estado.
func (r *AnalyticsRepo) CountEnquiriesByStatus(ctx context.Context) (map[string]int64, error) {
	rows, err := r.pool.Query(ctx, `SELECT status, COUNT(*) FROM franchise_enquiries GROUP BY status`)
	if err != nil {
		return nil, fmt.Errorf("count enquiries by status: %w", err)
	}
	defer rows.Close()
	breakdown := make(map[string]int64)
	for rows.Next() {
		var status string
		var n int64
		if err := rows.Scan(&status, &n); err != nil {
			return nil, fmt.Errorf("scan status count: %w", err)
		}
		breakdown[status] = n
	}
	return breakdown, rows.Err()
}

// CountFranchises total de franquicias aprovisionadas.
func (r *AnalyticsRepo) CountFranchises(ctx context.Context) (int64, error) {
	return r.countQuery(ctx, `SELECT COUNT(*) FROM franchises`)
}

// CountActiveFranchises franquicias con contrato aceptado.
func (r *AnalyticsRepo) CountActiveFranchises(ctx context.Context) (int64, error) {
	return r.countQuery(ctx, `SELECT COUNT(*) FROM franchises WHERE agreement_status = $1`,
		entity.AgreementStatusAccepted)
}

// CountUsers total de usuarios registrados.
func (r *AnalyticsRepo) CountUsers(ctx context.Context) (int64, error) {
	return r.countQuery(ctx, `SELECT COUNT(*) FROM users`)
}

func (r *AnalyticsRepo) countQuery(ctx context.Context, query string, args ...any) (int64, error) {
	var n int64
	if err := r.pool.QueryRow(ctx, query, args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("analytics count: %w", err)
	}
	return n, nil
}
