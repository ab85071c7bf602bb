package postgres

import (
	"context"
	"fmt"

	"github.com/upl-snipe/partner-api/internal/domain/entity"
	"github.com/upl-snipe/partner-api/internal/domain/repository"
)

var _ repository.AgreementLogRepository = (*AgreementLogRepo)(nil)

// AgreementLogRepo implementación append-only del log de aceptaciones.
type AgreementLogRepo struct {
	q Querier
}

// NewAgreementLogRepository construye el adaptador. Pasar pool o tx (Querier).
func NewAgreementLogRepository(q Querier) *AgreementLogRepo {
	return &AgreementLogRepo{q: q}
}

// Append inserta una entrada de auditoría. Nunca actualiza ni borra.
func (r *AgreementLogRepo) Append(ctx context.Context, log *entity.AgreementLog) error {
	query := `
		INSERT INTO agreement_logs (id, franchise_id, agreement_version, accepted_at,
			signature_data, ip_address, user_agent, pdf_url)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(ctx, query,
		log.ID, log.FranchiseID, log.AgreementVersion, log.AcceptedAt,
		log.SignatureData, log.IPAddress, log.UserAgent, log.PDFURL,
	)
	if err != nil {
		return fmt.Errorf("insert agreement log: %w", err)
	}
	return nil
}

// ListByFranchise lista las entradas de una franquicia, más recientes primero.
func (r *AgreementLogRepo) ListByFranchise(ctx context.Context, franchiseID string) ([]*entity.AgreementLog, error) {
	rows, err := r.q.Query(ctx, `
		SELECT id, franchise_id, agreement_version, accepted_at,
			signature_data, ip_address, user_agent, pdf_url
		FROM agreement_logs
		WHERE franchise_id = $1
		ORDER BY accepted_at DESC`, franchiseID)
	if err != nil {
		return nil, fmt.Errorf("list agreement logs: %w", err)
	}
	defer rows.Close()
	var list []*entity.AgreementLog
	for rows.Next() {
		var l entity.AgreementLog
		if err := rows.Scan(&l.ID, &l.FranchiseID, &l.AgreementVersion, &l.AcceptedAt,
			&l.SignatureData, &l.IPAddress, &l.UserAgent, &l.PDFURL); err != nil {
			return nil, fmt.Errorf("scan agreement log: %w", err)
		}
		list = append(list, &l)
	}
	return list, rows.Err()
}
